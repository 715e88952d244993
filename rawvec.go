package rawvec

import (
	"fmt"

	"github.com/hupe1980/rawvec/internal/conv"
)

// Vector is a growable contiguous sequence of fixed-size byte records.
//
// The zero Vector is not usable; construct one with New. A vector built with
// zero initial capacity holds no backing block until the first growing
// mutation.
type Vector struct {
	elemSize int
	length   int
	data     []byte // exactly Cap()*elemSize bytes, nil while unallocated
	alloc    Allocator
}

// New creates a vector for records of elemSize bytes.
//
// With a zero initialCapacity the vector performs no allocation at all;
// otherwise room for initialCapacity records is allocated up front and the
// length starts at zero. Panics if elemSize is less than 1, if
// initialCapacity is negative, or if allocation fails.
func New(initialCapacity, elemSize int, opts ...Option) *Vector {
	if elemSize < 1 {
		panic(fmt.Sprintf("rawvec: element size must be at least 1, got %d", elemSize))
	}
	if initialCapacity < 0 {
		panic(fmt.Sprintf("rawvec: negative initial capacity %d", initialCapacity))
	}

	v := &Vector{elemSize: elemSize, alloc: defaultAllocator}
	for _, opt := range opts {
		opt(v)
	}

	if initialCapacity > 0 {
		v.data = v.allocBlock(initialCapacity)
	}
	return v
}

// Len returns the number of records currently in the vector.
func (v *Vector) Len() int { return v.length }

// Cap returns the number of records the vector can hold without
// reallocating.
func (v *Vector) Cap() int {
	if v.data == nil {
		return 0
	}
	return len(v.data) / v.elemSize
}

// ElemSize returns the fixed byte size of every record.
func (v *Vector) ElemSize() int { return v.elemSize }

// IsEmpty reports whether the vector holds no records.
func (v *Vector) IsEmpty() bool { return v.length == 0 }

// Reserve ensures the vector can hold extra more records beyond its current
// length without further reallocation. It is a no-op when enough capacity
// already exists; otherwise the vector grows geometrically (roughly 2.5x the
// current capacity, plus extra), the live records are copied over, and the
// old block is returned to the allocator.
//
// A reallocating Reserve invalidates every view previously obtained from At,
// First, or Last.
func (v *Vector) Reserve(extra int) {
	if extra < 0 {
		panic(fmt.Sprintf("rawvec: negative reserve %d", extra))
	}
	capacity := v.Cap()
	if v.length+extra <= capacity {
		return
	}

	newCapacity := capacity + capacity/2*3 + extra
	block := v.allocBlock(newCapacity)
	copy(block, v.data[:v.length*v.elemSize])
	v.releaseBlock()
	v.data = block
}

// Insert places the records in elems at the given index, shifting the
// records at and after index to the right. The record count is
// len(elems)/ElemSize(); elems must be an exact multiple of the element
// size. Inserting at index Len() appends.
//
// An empty elems is a complete no-op, whatever the index. Panics when index
// is outside [0, Len()] or when elems is not a whole number of records.
func (v *Vector) Insert(index int, elems []byte) {
	count := v.recordCount("insert", elems)
	if count == 0 {
		return
	}

	v.Reserve(count)
	if index < 0 || index > v.length {
		panic(fmt.Sprintf("rawvec: insert index %d out of range [0, %d]", index, v.length))
	}

	at := index * v.elemSize
	if tail := (v.length - index) * v.elemSize; tail > 0 {
		copy(v.data[at+count*v.elemSize:], v.data[at:at+tail])
	}
	copy(v.data[at:], elems)
	v.length += count
}

// Push appends the records in elems to the end of the vector. Like Insert,
// elems must be an exact multiple of the element size, and an empty elems is
// a no-op.
func (v *Vector) Push(elems []byte) {
	v.Insert(v.length, elems)
}

// Slice copies len(dst)/ElemSize() records starting at index into dst, which
// must be an exact multiple of the element size. An empty dst is always
// valid, for any index, even on an empty vector. Panics when the requested
// range extends past Len().
func (v *Vector) Slice(index int, dst []byte) {
	count := v.recordCount("slice", dst)
	if count == 0 {
		return
	}
	if index < 0 || index+count > v.length {
		panic(fmt.Sprintf("rawvec: slice range [%d, %d) exceeds length %d", index, index+count, v.length))
	}

	from := index * v.elemSize
	copy(dst, v.data[from:from+count*v.elemSize])
}

// Extend appends a copy of other's records to this vector. The two vectors
// must share the same element size (panic otherwise); other is left
// untouched and the two remain independent afterwards. Extending a vector
// with itself doubles its contents.
func (v *Vector) Extend(other *Vector) {
	if other.elemSize != v.elemSize {
		panic(fmt.Sprintf("rawvec: extend element size mismatch: %d != %d", other.elemSize, v.elemSize))
	}
	if other.length == 0 {
		return
	}

	if other == v {
		// Self-extend must not read from the block Reserve releases.
		n := v.length * v.elemSize
		v.Reserve(v.length)
		copy(v.data[n:], v.data[:n])
		v.length *= 2
		return
	}
	v.Push(other.data[:other.length*other.elemSize])
}

// Remove deletes count records starting at index, shifting the records after
// the removed range to the left. Capacity is never reduced. A zero count is
// a no-op; panics when the range extends past Len().
func (v *Vector) Remove(index, count int) {
	if count == 0 {
		return
	}
	if index < 0 || count < 0 || index+count > v.length {
		panic(fmt.Sprintf("rawvec: remove range [%d, %d) exceeds length %d", index, index+count, v.length))
	}

	to := index * v.elemSize
	from := (index + count) * v.elemSize
	copy(v.data[to:], v.data[from:v.length*v.elemSize])
	v.length -= count
}

// At returns a view of the record at index, or nil when index is out of
// range. The view aliases the backing block: writes through it modify the
// vector, and it stays valid only until the next mutating call.
func (v *Vector) At(index int) []byte {
	if index < 0 || index >= v.length {
		return nil
	}
	off := index * v.elemSize
	return v.data[off : off+v.elemSize : off+v.elemSize]
}

// First returns a view of the first record, or nil when the vector is empty.
func (v *Vector) First() []byte {
	return v.At(0)
}

// Last returns a view of the last record, or nil when the vector is empty.
func (v *Vector) Last() []byte {
	return v.At(v.length - 1)
}

// Clear resets the length to zero without releasing or shrinking the backing
// block. Existing views become logically stale but the memory stays mapped.
func (v *Vector) Clear() {
	v.length = 0
}

// Free returns the backing block to the allocator and resets the vector to
// the unallocated empty state. The element size is retained, so the vector
// may be reused afterwards; all previously obtained views are invalid.
func (v *Vector) Free() {
	v.releaseBlock()
	v.length = 0
}

func (v *Vector) String() string {
	return fmt.Sprintf("Vector{len: %d, cap: %d, elemSize: %d}", v.length, v.Cap(), v.elemSize)
}

// recordCount converts a byte buffer length to a record count, panicking on
// buffers that are not a whole number of records.
func (v *Vector) recordCount(op string, buf []byte) int {
	if len(buf)%v.elemSize != 0 {
		panic(fmt.Sprintf("rawvec: %s buffer of %d bytes is not a multiple of element size %d", op, len(buf), v.elemSize))
	}
	return len(buf) / v.elemSize
}

// allocBlock obtains a zeroed block holding exactly capacity records.
// Allocation failure and size overflow are both fatal.
func (v *Vector) allocBlock(capacity int) []byte {
	size, err := conv.MulInt(capacity, v.elemSize)
	if err != nil {
		panic(fmt.Sprintf("rawvec: block size overflow: %v", err))
	}
	block, err := v.alloc.Alloc(size)
	if err != nil {
		panic(fmt.Sprintf("rawvec: allocation of %d bytes failed: %v", size, err))
	}
	return block
}

func (v *Vector) releaseBlock() {
	if v.data == nil {
		return
	}
	if err := v.alloc.Free(v.data); err != nil {
		panic(fmt.Sprintf("rawvec: release of %d bytes failed: %v", len(v.data), err))
	}
	v.data = nil
}
