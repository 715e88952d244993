// Package conv provides checked integer arithmetic for size computations.
package conv

import (
	"fmt"
	"math"
)

// MulInt multiplies two non-negative ints, failing instead of wrapping on
// overflow.
func MulInt(a, b int) (int, error) {
	if a < 0 || b < 0 {
		return 0, fmt.Errorf("integer overflow: %d * %d has a negative operand", a, b)
	}
	if a == 0 || b == 0 {
		return 0, nil
	}
	if a > math.MaxInt/b {
		return 0, fmt.Errorf("integer overflow: %d * %d exceeds int range", a, b)
	}
	return a * b, nil
}
