/*
Package levin solves symmetric Toeplitz systems by the Levinson recursion.

The system is described by its vector of lags (an autocovariance sequence in
the statistical setting) and solved against a general right-hand side in
O(n^2) time and O(n) memory. Every leading minor must be nonsingular, which
holds for positive-definite matrices.
*/
package levin

import (
	"errors"
	"fmt"

	"github.com/jvlmdr/lin-go/mat"
)

// ErrSingular indicates a numerically singular leading minor.
var ErrSingular = errors.New("levin: singular leading minor")

// Solve computes x with T x = b, where T is the n x n symmetric Toeplitz
// matrix whose first column is r, extended with zeros if r is shorter than b.
func Solve(r, b []float64) ([]float64, error) {
	n := len(b)
	if n == 0 {
		return nil, errors.New("levin: empty system")
	}
	if len(r) == 0 || r[0] == 0 {
		return nil, fmt.Errorf("%w: zero leading lag", ErrSingular)
	}
	// Normalize so that the diagonal is one.
	t := make([]float64, n)
	for i := 0; i < n && i < len(r); i++ {
		t[i] = r[i] / r[0]
	}

	x := make([]float64, n)
	x[0] = b[0] / r[0]
	if n == 1 {
		return x, nil
	}

	// y solves the Yule-Walker system of each leading minor.
	y := make([]float64, n)
	y[0] = -t[1]
	alpha := -t[1]
	beta := 1.0
	for k := 1; ; k++ {
		beta = (1 - alpha*alpha) * beta
		if beta == 0 {
			return nil, fmt.Errorf("%w: order %d", ErrSingular, k)
		}
		var s float64
		for i := 0; i < k; i++ {
			s += t[k-i] * x[i]
		}
		mu := (b[k]/r[0] - s) / beta
		for i := 0; i < k; i++ {
			x[i] += mu * y[k-1-i]
		}
		x[k] = mu
		if k == n-1 {
			break
		}
		var w float64
		for i := 0; i < k; i++ {
			w += t[k-i] * y[i]
		}
		alpha = -(t[k+1] + w) / beta
		for i, j := 0, k-1; i <= j; i, j = i+1, j-1 {
			yi := y[i] + alpha*y[j]
			yj := y[j] + alpha*y[i]
			y[i], y[j] = yi, yj
		}
		y[k] = alpha
	}
	return x, nil
}

// SolveMat solves T X = B column by column.
func SolveMat(r []float64, bs *mat.Mat) (*mat.Mat, error) {
	xs := mat.New(bs.Rows, bs.Cols)
	b := make([]float64, bs.Rows)
	for j := 0; j < bs.Cols; j++ {
		for i := range b {
			b[i] = bs.At(i, j)
		}
		x, err := Solve(r, b)
		if err != nil {
			return nil, err
		}
		for i := range x {
			xs.Set(i, j, x[i])
		}
	}
	return xs, nil
}
