package rawvec

import (
	"errors"
	"fmt"
	"sync"

	"github.com/hupe1980/rawvec/internal/mmap"
)

// ErrUnknownBlock is returned when an allocator is asked to free a block it
// did not hand out.
var ErrUnknownBlock = errors.New("rawvec: unknown block")

// Allocator provides backing storage for vectors.
//
// Implementations must return zeroed blocks of exactly the requested size.
// Allocators may be shared between vectors and must then be safe for
// concurrent use; the vectors themselves remain externally synchronized.
type Allocator interface {
	// Alloc returns a zeroed block of exactly size bytes.
	Alloc(size int) ([]byte, error)
	// Free releases a block previously returned by Alloc.
	Free(block []byte) error
}

// defaultAllocator hands out GC-managed heap blocks.
var defaultAllocator Allocator = heapAllocator{}

type heapAllocator struct{}

func (heapAllocator) Alloc(size int) ([]byte, error) {
	return make([]byte, size), nil
}

// Free is a no-op; the garbage collector reclaims heap blocks.
func (heapAllocator) Free([]byte) error { return nil }

// MmapAllocator serves blocks from off-heap anonymous mappings, keeping bulk
// record storage out of the garbage collector's working set. Close unmaps
// anything still outstanding.
//
// The allocator is safe for concurrent use.
type MmapAllocator struct {
	mu       sync.Mutex
	mappings map[*byte]*mmap.Mapping
}

// NewMmapAllocator creates an allocator backed by anonymous mappings.
func NewMmapAllocator() *MmapAllocator {
	return &MmapAllocator{mappings: make(map[*byte]*mmap.Mapping)}
}

// Alloc maps a fresh anonymous region of the given size.
func (a *MmapAllocator) Alloc(size int) ([]byte, error) {
	if size <= 0 {
		return nil, nil
	}

	m, err := mmap.MapAnon(size)
	if err != nil {
		return nil, fmt.Errorf("rawvec: anonymous mapping of %d bytes failed: %w", size, err)
	}

	block := m.Bytes()
	a.mu.Lock()
	a.mappings[&block[0]] = m
	a.mu.Unlock()
	return block, nil
}

// Free unmaps the region backing block. The block must have been returned by
// Alloc on this allocator and must not be accessed afterwards.
func (a *MmapAllocator) Free(block []byte) error {
	if len(block) == 0 {
		return nil
	}

	a.mu.Lock()
	m, ok := a.mappings[&block[0]]
	if ok {
		delete(a.mappings, &block[0])
	}
	a.mu.Unlock()

	if !ok {
		return ErrUnknownBlock
	}
	return m.Close()
}

// Close unmaps every block still outstanding. Vectors still holding blocks
// from this allocator must not be used afterwards.
func (a *MmapAllocator) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	var firstErr error
	for key, m := range a.mappings {
		if err := m.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		delete(a.mappings, key)
	}
	return firstErr
}
