package circ

import (
	"fmt"
	"io"

	"github.com/jvlmdr/go-toep/solve"
	"github.com/jvlmdr/go-toep/toep"
)

// mulFunc adapts a fast multiplier to the solver.
func mulFunc(mul func([]float64) ([]float64, error)) solve.Func {
	return func(v []float64) []float64 {
		w, err := mul(v)
		if err != nil {
			panic(err)
		}
		return w
	}
}

// invMulFunc adapts a preconditioner to the solver. A singular circulant
// falls back to the identity: a preconditioner must not make the solve fail.
func invMulFunc(c *Circulant) solve.Func {
	if c == nil || c.errIfSingular() != nil {
		return nil
	}
	return mulFunc(c.InvMul)
}

func errIfNotSolvable(rows, cols, n int) error {
	if rows != cols {
		return fmt.Errorf("%w: solve with %dx%d matrix", toep.ErrNotSupported, rows, cols)
	}
	if n != rows {
		return fmt.Errorf("%w: right-hand side has length %d, want %d", toep.ErrDim, n, rows)
	}
	return nil
}

// SymmetricInvMulPCG solves s x = b by preconditioned conjugate gradient
// with a Strang circulant preconditioner built from the lag vector. The
// matrix is assumed positive definite by convention of use. x is the initial
// guess and may be nil for zero; non-positive tol and iter select the solver
// defaults. Progress is written to debug if it is non-nil.
func SymmetricInvMulPCG(s *toep.Symmetric, b, x []float64, tol float64, iter int, debug io.Writer) (*solve.Result, error) {
	rows, cols := s.Dims()
	if err := errIfNotSolvable(rows, cols, len(b)); err != nil {
		return nil, err
	}
	m, err := Strang(s)
	if err != nil {
		return nil, err
	}
	return solve.PCG(mulFunc(s.Mul), b, invMulFunc(m), x, tol, iter, debug)
}

// ToeplitzInvMulCGS solves t x = b by preconditioned conjugate gradient
// squared with a Strang circulant preconditioner. The matrix need not be
// symmetric. Arguments are as for SymmetricInvMulPCG.
func ToeplitzInvMulCGS(t *toep.Toeplitz, b, x []float64, tol float64, iter int, debug io.Writer) (*solve.Result, error) {
	rows, cols := t.Dims()
	if err := errIfNotSolvable(rows, cols, len(b)); err != nil {
		return nil, err
	}
	m, err := Strang(t)
	if err != nil {
		return nil, err
	}
	return solve.PCGS(mulFunc(t.Mul), b, invMulFunc(m), x, tol, iter, debug)
}

// TriangularInvMulCGS solves t x = b by preconditioned conjugate gradient
// squared with a Chan circulant preconditioner, which remains a useful
// approximation when one triangle is structurally zero. Arguments are as for
// SymmetricInvMulPCG.
func TriangularInvMulCGS(t *toep.Triangular, b, x []float64, tol float64, iter int, debug io.Writer) (*solve.Result, error) {
	rows, cols := t.Dims()
	if err := errIfNotSolvable(rows, cols, len(b)); err != nil {
		return nil, err
	}
	m, err := Chan(t)
	if err != nil {
		return nil, err
	}
	return solve.PCGS(mulFunc(t.Mul), b, invMulFunc(m), x, tol, iter, debug)
}
