// Package rawvec provides a type-erased, growable, contiguous record
// container.
//
// A Vector stores fixed-size byte records packed back to back in a single
// heap block, giving O(1) indexed access and amortized O(1) appends. One
// implementation serves elements of any fixed size: callers fix the element
// size at construction and move records in and out as raw bytes. For a
// type-safe view over the same storage, see the typed subpackage.
//
// # Quick Start
//
//	v := rawvec.New(0, 8) // empty, unallocated, 8-byte records
//	v.Push(record)        // allocates on first growth
//	b := v.At(3)          // view of record 3, nil if out of range
//	v.Free()
//
// # Storage Model
//
// An empty vector with zero capacity holds no heap block at all; the first
// growing mutation allocates one. When the vector runs out of room it
// reallocates to roughly 2.5x the current capacity, copies the live records,
// and releases the old block. Backing memory comes from a pluggable
// Allocator; the default allocates on the Go heap, and MmapAllocator obtains
// off-heap anonymous mappings instead.
//
// # Views and Invalidation
//
// At, First, and Last return views directly into the backing block. A view
// is valid only until the next mutating call on the vector: any operation
// that can reallocate (Push, Insert, Extend, Reserve) or release storage
// (Free) invalidates every previously obtained view.
//
// # Error Model
//
// The container fails fast. Out-of-range arguments to Insert, Remove, and
// Slice, element-size mismatches, and allocation failures all panic; these
// are programming errors, not runtime conditions. Positional lookup is the
// one soft path: At, First, and Last return nil for a position that does not
// exist, because probing past the end is a routine outcome rather than a
// contract violation.
//
// # Thread Safety
//
// Vectors are not internally synchronized. Callers sharing a vector across
// goroutines must serialize all access externally, including reads that are
// concurrent with a mutation.
package rawvec
