package circ

import (
	"fmt"
	"math/cmplx"

	"github.com/jvlmdr/go-toep/toep"
)

// errIfSingular reports an eigenvalue whose magnitude is negligible relative
// to the largest one.
func (c *Circulant) errIfSingular() error {
	L := c.order()
	var maxAbs float64
	for i := 0; i < L; i++ {
		if a := cmplx.Abs(c.eig.At(i)); a > maxAbs {
			maxAbs = a
		}
	}
	tol := float64(L) * machEps * maxAbs
	for i := 0; i < L; i++ {
		if cmplx.Abs(c.eig.At(i)) <= tol {
			return fmt.Errorf("%w: eigenvalue %d is negligible (magnitude %g, largest %g)",
				toep.ErrSingular, i, cmplx.Abs(c.eig.At(i)), maxAbs)
		}
	}
	return nil
}

// InvMul solves c x = b by dividing by the eigenvalues in the Fourier
// domain. Requires a square matrix with no numerically zero eigenvalue.
func (c *Circulant) InvMul(b []float64) ([]float64, error) {
	rows, cols := c.Dims()
	if rows != cols {
		return nil, fmt.Errorf("%w: division by %dx%d matrix", toep.ErrNotSupported, rows, cols)
	}
	if len(b) != rows {
		return nil, fmt.Errorf("%w: right-hand side has length %d, want %d", toep.ErrDim, len(b), rows)
	}
	if err := c.errIfSingular(); err != nil {
		return nil, err
	}
	L := c.order()
	for i := 0; i < L; i++ {
		c.work.Set(i, complex(b[i], 0))
	}
	c.fwd.Execute()
	for i := 0; i < L; i++ {
		c.work.Set(i, c.work.At(i)/c.eig.At(i))
	}
	c.bwd.Execute()
	x := make([]float64, rows)
	for i := range x {
		x[i] = real(c.work.At(i)) / float64(L)
	}
	return x, nil
}
