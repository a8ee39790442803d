package toep

import (
	"fmt"

	"github.com/jvlmdr/lin-go/mat"
)

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func clone(x []float64) []float64 {
	y := make([]float64, len(x))
	copy(y, x)
	return y
}

// reverse returns a copy of x in reverse order.
func reverse(x []float64) []float64 {
	n := len(x)
	y := make([]float64, n)
	for i := range x {
		y[n-1-i] = x[i]
	}
	return y
}

// lagVec resizes a lag vector to length n, truncating or padding with zeros.
func lagVec(ve []float64, n int) []float64 {
	out := make([]float64, n)
	copy(out, ve)
	return out
}

func checkIndex(i, j, rows, cols int) {
	if i < 0 || i >= rows || j < 0 || j >= cols {
		panic(fmt.Errorf("%w: entry (%d, %d) of %dx%d matrix", ErrRange, i, j, rows, cols))
	}
}

// matrixOf instantiates the dense matrix of any structured operator.
// Takes O(mn) time. For inspection and testing, not used by fast paths.
func matrixOf(a mat.Const) *mat.Mat {
	rows, cols := a.Dims()
	s := mat.New(rows, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			s.Set(i, j, a.At(i, j))
		}
	}
	return s
}
