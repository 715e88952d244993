// Package typed provides a type-safe generic view over a rawvec.Vector.
//
// Vec[T] stores values of T directly in the vector's contiguous byte block,
// reinterpreting []T as raw records. T must be a fixed-size, pointer-free
// type (integers, floats, bools, and arrays/structs of those): the byte
// block is not scanned by the garbage collector, so a pointer stored there
// would keep nothing alive.
package typed

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/hupe1980/rawvec"
)

// Vec is a growable contiguous sequence of T backed by a rawvec.Vector.
// Like the underlying vector, it is not internally synchronized.
type Vec[T any] struct {
	raw *rawvec.Vector
}

// New creates a vector of T with the given initial capacity. Panics when T
// is zero-sized or contains pointers.
func New[T any](initialCapacity int, opts ...rawvec.Option) *Vec[T] {
	typ := reflect.TypeOf((*T)(nil)).Elem()
	if !pointerFree(typ) {
		panic(fmt.Sprintf("typed: %s contains pointers and cannot live in record storage", typ))
	}

	var zero T
	size := int(unsafe.Sizeof(zero))
	if size == 0 {
		panic(fmt.Sprintf("typed: %s is zero-sized", typ))
	}

	return &Vec[T]{raw: rawvec.New(initialCapacity, size, opts...)}
}

// Len returns the number of values in the vector.
func (v *Vec[T]) Len() int { return v.raw.Len() }

// Cap returns the number of values the vector can hold without reallocating.
func (v *Vec[T]) Cap() int { return v.raw.Cap() }

// IsEmpty reports whether the vector holds no values.
func (v *Vec[T]) IsEmpty() bool { return v.raw.IsEmpty() }

// Reserve ensures room for extra more values beyond the current length.
func (v *Vec[T]) Reserve(extra int) { v.raw.Reserve(extra) }

// Push appends values to the end of the vector.
func (v *Vec[T]) Push(items ...T) {
	v.raw.Push(recordBytes(items))
}

// Insert places values at the given index, shifting later values right.
// Panics when index is outside [0, Len()].
func (v *Vec[T]) Insert(index int, items ...T) {
	v.raw.Insert(index, recordBytes(items))
}

// Slice copies len(dst) values starting at index into dst. Panics when the
// range extends past Len(); an empty dst is always valid.
func (v *Vec[T]) Slice(index int, dst []T) {
	v.raw.Slice(index, recordBytes(dst))
}

// Extend appends a copy of other's values, leaving other untouched.
func (v *Vec[T]) Extend(other *Vec[T]) {
	v.raw.Extend(other.raw)
}

// Remove deletes count values starting at index, shifting later values left.
// Panics when the range extends past Len(); a zero count is a no-op.
func (v *Vec[T]) Remove(index, count int) {
	v.raw.Remove(index, count)
}

// At returns the value at index by copy, with false when index is out of
// range.
func (v *Vec[T]) At(index int) (T, bool) {
	b := v.raw.At(index)
	if b == nil {
		var zero T
		return zero, false
	}
	return *(*T)(unsafe.Pointer(&b[0])), true
}

// AtMut returns a pointer to the value at index, or nil when index is out of
// range. The pointer aliases the backing block and stays valid only until
// the next mutating call.
func (v *Vec[T]) AtMut(index int) *T {
	b := v.raw.At(index)
	if b == nil {
		return nil
	}
	return (*T)(unsafe.Pointer(&b[0]))
}

// First returns the first value, with false when the vector is empty.
func (v *Vec[T]) First() (T, bool) {
	return v.At(0)
}

// Last returns the last value, with false when the vector is empty.
func (v *Vec[T]) Last() (T, bool) {
	return v.At(v.raw.Len() - 1)
}

// Clear resets the length to zero without releasing storage.
func (v *Vec[T]) Clear() { v.raw.Clear() }

// Free returns the backing block to the allocator; the vector reverts to the
// unallocated empty state and may be reused.
func (v *Vec[T]) Free() { v.raw.Free() }

// Raw exposes the underlying type-erased vector.
func (v *Vec[T]) Raw() *rawvec.Vector { return v.raw }

func (v *Vec[T]) String() string {
	return v.raw.String()
}

// recordBytes reinterprets a value slice as its backing bytes.
func recordBytes[T any](items []T) []byte {
	if len(items) == 0 {
		return nil
	}
	size := int(unsafe.Sizeof(items[0]))
	return unsafe.Slice((*byte)(unsafe.Pointer(&items[0])), len(items)*size)
}

// pointerFree reports whether values of t can be stored in unscanned byte
// memory.
func pointerFree(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return pointerFree(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if !pointerFree(t.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
