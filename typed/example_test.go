package typed_test

import (
	"fmt"

	"github.com/hupe1980/rawvec/typed"
)

func ExampleVec() {
	v := typed.New[int32](0)
	defer v.Free()

	v.Push(1, 2, 3)
	v.Insert(1, 10)

	if p := v.AtMut(0); p != nil {
		*p = 100
	}

	last, _ := v.Last()
	fmt.Println(v.Len(), last)

	out := make([]int32, v.Len())
	v.Slice(0, out)
	fmt.Println(out)
	// Output:
	// 4 3
	// [100 10 2 3]
}
