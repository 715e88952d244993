package rawvec_test

import (
	"encoding/binary"
	"fmt"

	"github.com/hupe1980/rawvec"
)

func ExampleVector() {
	v := rawvec.New(0, 4) // 4-byte records, no allocation yet
	defer v.Free()

	rec := make([]byte, 4)
	for _, n := range []uint32{10, 20, 30} {
		binary.LittleEndian.PutUint32(rec, n)
		v.Push(rec)
	}

	fmt.Println(v.Len(), binary.LittleEndian.Uint32(v.First()), binary.LittleEndian.Uint32(v.Last()))
	// Output: 3 10 30
}

func ExampleVector_Slice() {
	v := rawvec.New(8, 2)
	defer v.Free()

	v.Push([]byte{1, 0, 2, 0, 3, 0})

	buf := make([]byte, 2*2)
	v.Slice(1, buf)
	fmt.Println(buf)
	// Output: [2 0 3 0]
}

func ExampleWithAllocator() {
	alloc := rawvec.NewMmapAllocator()
	defer alloc.Close()

	v := rawvec.New(1024, 16, rawvec.WithAllocator(alloc))
	fmt.Println(v.Cap(), v.Len())
	v.Free()
	// Output: 1024 0
}
