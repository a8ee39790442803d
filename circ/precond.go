package circ

import (
	"fmt"

	"github.com/jvlmdr/lin-go/mat"

	"github.com/jvlmdr/go-toep/toep"
)

// Strang builds the circulant that copies the central band of a square
// Toeplitz-like matrix: the head of the period comes from the first column,
// the tail mirrors the first row.
func Strang(a mat.Const) (*Circulant, error) {
	n, m := a.Dims()
	if n != m {
		return nil, fmt.Errorf("%w: Strang preconditioner of %dx%d matrix", toep.ErrNotSupported, n, m)
	}
	v := make([]float64, n)
	for i := 0; i <= n/2; i++ {
		v[i] = a.At(i, 0)
	}
	for i := n/2 + 1; i < n; i++ {
		v[i] = a.At(0, n-i)
	}
	return New(v, toep.Col, n)
}

// Chan builds the circulant closest to a square Toeplitz-like matrix in
// Frobenius norm: each period entry averages the two diagonals that wrap to
// it, weighted by their lengths.
func Chan(a mat.Const) (*Circulant, error) {
	n, m := a.Dims()
	if n != m {
		return nil, fmt.Errorf("%w: Chan preconditioner of %dx%d matrix", toep.ErrNotSupported, n, m)
	}
	v := make([]float64, n)
	v[0] = a.At(0, 0)
	for i := 1; i < n; i++ {
		v[i] = (float64(n-i)*a.At(i, 0) + float64(i)*a.At(0, n-i)) / float64(n)
	}
	return New(v, toep.Col, n)
}
