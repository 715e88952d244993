package rawvec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeapAllocator(t *testing.T) {
	block, err := defaultAllocator.Alloc(128)
	require.NoError(t, err)
	require.Len(t, block, 128)

	for _, b := range block {
		require.Zero(t, b)
	}

	assert.NoError(t, defaultAllocator.Free(block))
}

func TestMmapAllocator(t *testing.T) {
	t.Run("alloc and free", func(t *testing.T) {
		a := NewMmapAllocator()
		defer a.Close()

		block, err := a.Alloc(1 << 16)
		require.NoError(t, err)
		require.Len(t, block, 1<<16)

		block[0] = 0xAB
		block[len(block)-1] = 0xCD

		require.NoError(t, a.Free(block))
	})

	t.Run("zero size", func(t *testing.T) {
		a := NewMmapAllocator()
		defer a.Close()

		block, err := a.Alloc(0)
		require.NoError(t, err)
		assert.Nil(t, block)
		assert.NoError(t, a.Free(block))
	})

	t.Run("unknown block", func(t *testing.T) {
		a := NewMmapAllocator()
		defer a.Close()

		err := a.Free(make([]byte, 16))
		assert.ErrorIs(t, err, ErrUnknownBlock)
	})

	t.Run("close releases outstanding blocks", func(t *testing.T) {
		a := NewMmapAllocator()

		_, err := a.Alloc(4096)
		require.NoError(t, err)
		_, err = a.Alloc(4096)
		require.NoError(t, err)

		assert.NoError(t, a.Close())
	})
}

func TestVector_WithMmapAllocator(t *testing.T) {
	a := NewMmapAllocator()
	defer a.Close()

	v := New(2, 4, WithAllocator(a))
	v.Push(u32recs(1, 2))

	// Force a few reallocations through the mapping allocator.
	for i := uint32(3); i <= 100; i++ {
		v.Push(u32recs(i))
	}
	require.Equal(t, 100, v.Len())

	for i := 0; i < 100; i++ {
		require.Equal(t, uint32(i+1), u32at(v, i))
	}

	v.Free()
	assert.Equal(t, 0, v.Cap())
}
