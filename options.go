package rawvec

// Option is a configuration option for a Vector.
type Option func(*Vector)

// WithAllocator sets the allocator that provides the vector's backing
// storage. The allocator must stay in place for the vector's whole lifetime,
// since Free returns the backing block to it.
func WithAllocator(alloc Allocator) Option {
	return func(v *Vector) {
		if alloc != nil {
			v.alloc = alloc
		}
	}
}
