package toep

import (
	"github.com/jvlmdr/lin-go/mat"

	"github.com/jvlmdr/go-toep/levin"
)

// InvMulLevinson solves s x = b by the Levinson recursion on the lag vector.
// Takes O(n^2) time and O(n) memory without instantiating the matrix.
// The recursion requires every leading minor to be nonsingular, which holds
// for positive-definite matrices.
func InvMulLevinson(s *Symmetric, b []float64) ([]float64, error) {
	rows, cols := s.Dims()
	if err := errIfNotSquare("solve", rows, cols); err != nil {
		return nil, err
	}
	if err := errIfBadLen("right-hand side", len(b), rows); err != nil {
		return nil, err
	}
	return levin.Solve(lagVec(s.ve, rows), b)
}

// InvMulLevinsonMat solves s X = B column by column.
func InvMulLevinsonMat(s *Symmetric, bs *mat.Mat) (*mat.Mat, error) {
	rows, cols := s.Dims()
	if err := errIfNotSquare("solve", rows, cols); err != nil {
		return nil, err
	}
	return levin.SolveMat(lagVec(s.ve, rows), bs)
}
