package toep

import (
	"fmt"

	"github.com/jvlmdr/lin-go/mat"
)

// Orient selects whether a generating vector describes the first column or
// the first row of a matrix.
type Orient int

const (
	Col Orient = iota
	Row
)

func (o Orient) String() string {
	switch o {
	case Col:
		return "col"
	case Row:
		return "row"
	}
	return fmt.Sprintf("orient(%d)", int(o))
}

// Symmetric is a symmetric Toeplitz matrix described by its vector of lags:
// the entry in row i, column j is ve[|i-j|], zero beyond the last lag.
// The orientation says whether ve runs down the first column or along the
// first row; k is the other dimension.
type Symmetric struct {
	ve     []float64
	orient Orient
	k      int
	op     *mulerFFT
}

// NewSymmetric creates a symmetric Toeplitz matrix from its lag vector.
func NewSymmetric(ve []float64, orient Orient, k int) (*Symmetric, error) {
	if len(ve) == 0 {
		return nil, fmt.Errorf("%w: empty lag vector", ErrInvalid)
	}
	if k <= 0 {
		return nil, fmt.Errorf("%w: non-positive dimension %d", ErrInvalid, k)
	}
	if orient != Col && orient != Row {
		return nil, fmt.Errorf("%w: unknown orientation %d", ErrInvalid, int(orient))
	}
	s := &Symmetric{ve: clone(ve), orient: orient, k: k}
	rows, cols := s.Dims()
	s.op = newMulerFFT(rows, cols, embedToeplitz(lagVec(s.ve, rows), lagVec(s.ve, cols)))
	return s, nil
}

func (s *Symmetric) Dims() (rows, cols int) {
	if s.orient == Col {
		return len(s.ve), s.k
	}
	return s.k, len(s.ve)
}

// At returns the entry in row i, column j.
func (s *Symmetric) At(i, j int) float64 {
	rows, cols := s.Dims()
	checkIndex(i, j, rows, cols)
	d := abs(i - j)
	if d >= len(s.ve) {
		return 0
	}
	return s.ve[d]
}

// Lags returns a copy of the lag vector.
func (s *Symmetric) Lags() []float64 { return clone(s.ve) }

// Matrix instantiates the dense matrix.
func (s *Symmetric) Matrix() *mat.Mat { return matrixOf(s) }

// AddLambdaI returns a copy with lambda added to the main diagonal.
// Useful for regularizing a covariance before solving.
func (s *Symmetric) AddLambdaI(lambda float64) *Symmetric {
	ve := clone(s.ve)
	ve[0] += lambda
	r, err := NewSymmetric(ve, s.orient, s.k)
	if err != nil {
		panic(err)
	}
	return r
}
