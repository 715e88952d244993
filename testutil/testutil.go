// Package testutil provides deterministic random data for container tests.
package testutil

import (
	"math/rand"
	"sync"
)

// RNG encapsulates a seeded random number generator.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// FillBytes fills dst with random bytes.
// Locks only once per call (preferred over byte-at-a-time loops).
func (r *RNG) FillBytes(dst []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range dst {
		dst[i] = byte(r.rand.Intn(256))
	}
}

// Records generates count random fixed-size records in a single packed
// buffer of count*size bytes.
func (r *RNG) Records(count, size int) []byte {
	buf := make([]byte, count*size)
	r.FillBytes(buf)
	return buf
}

// Int32s generates count random int32 values.
func (r *RNG) Int32s(count int) []int32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]int32, count)
	for i := range out {
		out[i] = r.rand.Int31()
	}
	return out
}
