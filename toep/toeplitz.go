package toep

import (
	"fmt"

	"github.com/jvlmdr/lin-go/mat"
)

// Toeplitz is a matrix that is constant along each diagonal, described by its
// first column and first row.
type Toeplitz struct {
	col, row []float64
	op       *mulerFFT
}

// New creates a Toeplitz matrix from its first column and first row.
// Both describe the top-left entry; they must agree there.
func New(col, row []float64) (*Toeplitz, error) {
	if len(col) == 0 || len(row) == 0 {
		return nil, fmt.Errorf("%w: empty generating vector", ErrInvalid)
	}
	if col[0] != row[0] {
		return nil, fmt.Errorf("%w: corner disagrees: column %g, row %g", ErrInvalid, col[0], row[0])
	}
	t := &Toeplitz{col: clone(col), row: clone(row)}
	t.op = newMulerFFT(len(t.col), len(t.row), embedToeplitz(t.col, t.row))
	return t, nil
}

func (t *Toeplitz) Dims() (rows, cols int) {
	return len(t.col), len(t.row)
}

// At returns the entry in row i, column j.
func (t *Toeplitz) At(i, j int) float64 {
	checkIndex(i, j, len(t.col), len(t.row))
	if i >= j {
		return t.col[i-j]
	}
	return t.row[j-i]
}

// Col returns a copy of the first column.
func (t *Toeplitz) Col() []float64 { return clone(t.col) }

// Row returns a copy of the first row.
func (t *Toeplitz) Row() []float64 { return clone(t.row) }

// Matrix instantiates the dense matrix.
func (t *Toeplitz) Matrix() *mat.Mat { return matrixOf(t) }

// LowerTri extracts the triangle on and below the k-th diagonal, k <= 0,
// with everything above it zeroed.
func (t *Toeplitz) LowerTri(k int) (*Triangular, error) {
	if k > 0 {
		return nil, fmt.Errorf("%w: positive diagonal %d for lower triangle", ErrInvalid, k)
	}
	ve := clone(t.col)
	for d := 0; d < -k && d < len(ve); d++ {
		ve[d] = 0
	}
	return NewTriangular(Lower, ve, len(t.row))
}

// UpperTri extracts the triangle on and above the k-th diagonal, k >= 0,
// with everything below it zeroed.
func (t *Toeplitz) UpperTri(k int) (*Triangular, error) {
	if k < 0 {
		return nil, fmt.Errorf("%w: negative diagonal %d for upper triangle", ErrInvalid, k)
	}
	ve := clone(t.row)
	for d := 0; d < k && d < len(ve); d++ {
		ve[d] = 0
	}
	return NewTriangular(Upper, ve, len(t.col))
}
