package circ

import (
	"fmt"

	"github.com/jvlmdr/go-toep/toep"
)

// Machine epsilon for float64.
const machEps = 2.220446049250313e-16

func clone(x []float64) []float64 {
	y := make([]float64, len(x))
	copy(y, x)
	return y
}

// mod gives the positive remainder.
func mod(a, b int) int {
	return ((a % b) + b) % b
}

func checkIndex(i, j, rows, cols int) {
	if i < 0 || i >= rows || j < 0 || j >= cols {
		panic(fmt.Errorf("%w: entry (%d, %d) of %dx%d matrix", toep.ErrRange, i, j, rows, cols))
	}
}
