package toep

import (
	"io"

	"github.com/jvlmdr/go-cg/cg"
)

// InvMulConjGrad solves s x = b by unpreconditioned conjugate gradient,
// using the fast multiplier to apply the matrix. The symmetric matrix is
// assumed positive definite by convention of use. x is the initial guess and
// may be nil for zero. Progress is written to debug if it is non-nil.
//
// For an inspectable convergence result and circulant preconditioning, see
// the solvers in package circ.
func InvMulConjGrad(s *Symmetric, b, x []float64, tol float64, iter int, debug io.Writer) ([]float64, error) {
	rows, cols := s.Dims()
	if err := errIfNotSquare("solve", rows, cols); err != nil {
		return nil, err
	}
	if err := errIfBadLen("right-hand side", len(b), rows); err != nil {
		return nil, err
	}
	if x == nil {
		x = make([]float64, rows)
	} else if err := errIfBadLen("initial guess", len(x), rows); err != nil {
		return nil, err
	}
	a := func(v []float64) []float64 {
		w, err := s.Mul(v)
		if err != nil {
			panic(err)
		}
		return w
	}
	return cg.Solve(a, b, x, tol, iter, debug)
}
