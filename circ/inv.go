package circ

import (
	"fmt"
	"math/cmplx"

	"github.com/jvlmdr/go-toep/toep"
)

// Inv returns the inverse, the circulant whose eigenvalues are the
// elementwise reciprocals. Requires a square matrix with no numerically zero
// eigenvalue.
func (c *Circulant) Inv() (*Circulant, error) {
	rows, cols := c.Dims()
	if rows != cols {
		return nil, fmt.Errorf("%w: inverse of %dx%d matrix", toep.ErrNotSupported, rows, cols)
	}
	if err := c.errIfSingular(); err != nil {
		return nil, err
	}
	L := c.order()
	eigs := make([]complex128, L)
	for i := range eigs {
		eigs[i] = 1 / c.eig.At(i)
	}
	return fromEigs(eigs)
}

// AdjMul returns the circulant a* b, whose eigenvalues are the conjugated
// eigenvalues of a times those of b. Both operands must be square and of the
// same order.
func (a *Circulant) AdjMul(b *Circulant) (*Circulant, error) {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ar != ac {
		return nil, fmt.Errorf("%w: adjoint product of %dx%d matrix", toep.ErrNotSupported, ar, ac)
	}
	if br != bc {
		return nil, fmt.Errorf("%w: adjoint product of %dx%d matrix", toep.ErrNotSupported, br, bc)
	}
	if ar != br {
		return nil, fmt.Errorf("%w: adjoint product of orders %d and %d", toep.ErrDim, ar, br)
	}
	eigs := make([]complex128, a.order())
	for i := range eigs {
		eigs[i] = cmplx.Conj(a.eig.At(i)) * b.eig.At(i)
	}
	return fromEigs(eigs)
}
