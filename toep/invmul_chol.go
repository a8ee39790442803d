package toep

import (
	"github.com/jvlmdr/lin-go/lapack"
)

// InvMulChol solves s x = b by instantiating the dense matrix and using
// Cholesky factorization. Takes O(n^2) memory and O(n^3) time; intended for
// small systems and as a reference for the fast paths.
func InvMulChol(s *Symmetric, b []float64) ([]float64, error) {
	rows, cols := s.Dims()
	if err := errIfNotSquare("solve", rows, cols); err != nil {
		return nil, err
	}
	if err := errIfBadLen("right-hand side", len(b), rows); err != nil {
		return nil, err
	}
	return lapack.SolvePosDef(s.Matrix(), b)
}
