package circ

import (
	"fmt"

	"github.com/jvlmdr/go-toep/toep"
)

// Wrap lengths below this use direct summation instead of the transform.
const fftMinLen = 512

// MulAddTo computes y <- alpha c x + beta y. The operand is zero-padded to
// the wrap length, multiplied by the eigenvalues in the Fourier domain, and
// the first rows entries of the inverse transform taken.
func (c *Circulant) MulAddTo(y []float64, alpha float64, x []float64, beta float64) error {
	rows, cols := c.Dims()
	if len(x) != cols {
		return fmt.Errorf("%w: operand has length %d, want %d", toep.ErrDim, len(x), cols)
	}
	if len(y) != rows {
		return fmt.Errorf("%w: result has length %d, want %d", toep.ErrDim, len(y), rows)
	}
	L := c.order()
	if L < fftMinLen {
		for i := 0; i < rows; i++ {
			var s float64
			for j := 0; j < cols; j++ {
				s += c.p[mod(i-j, L)] * x[j]
			}
			y[i] = beta*y[i] + alpha*s
		}
		return nil
	}
	for i := 0; i < L; i++ {
		var v complex128
		if i < len(x) {
			v = complex(x[i], 0)
		}
		c.work.Set(i, v)
	}
	c.fwd.Execute()
	for i := 0; i < L; i++ {
		c.work.Set(i, c.eig.At(i)*c.work.At(i))
	}
	c.bwd.Execute()
	s := alpha / float64(L)
	for i := range y {
		y[i] = beta*y[i] + s*real(c.work.At(i))
	}
	return nil
}

// Mul computes c times x.
func (c *Circulant) Mul(x []float64) ([]float64, error) {
	rows, _ := c.Dims()
	y := make([]float64, rows)
	if err := c.MulAddTo(y, 1, x, 0); err != nil {
		return nil, err
	}
	return y, nil
}
