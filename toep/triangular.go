package toep

import (
	"fmt"

	"github.com/jvlmdr/lin-go/mat"
)

// Kind selects which triangle of a triangular Toeplitz matrix is structurally
// zero.
type Kind int

const (
	// Lower keeps the triangle on and below the main diagonal.
	Lower Kind = iota
	// Upper keeps the triangle on and above the main diagonal.
	Upper
)

func (k Kind) String() string {
	switch k {
	case Lower:
		return "lower"
	case Upper:
		return "upper"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Triangular is a Toeplitz matrix with one triangle structurally zero.
// For Lower, ve runs down the first column and k is the number of columns;
// for Upper, ve runs along the first row and k is the number of rows.
type Triangular struct {
	ve   []float64
	kind Kind
	k    int
	op   *mulerFFT
}

// NewTriangular creates a triangular Toeplitz matrix from one side's
// generating vector.
func NewTriangular(kind Kind, ve []float64, k int) (*Triangular, error) {
	if len(ve) == 0 {
		return nil, fmt.Errorf("%w: empty generating vector", ErrInvalid)
	}
	if k <= 0 {
		return nil, fmt.Errorf("%w: non-positive dimension %d", ErrInvalid, k)
	}
	if kind != Lower && kind != Upper {
		return nil, fmt.Errorf("%w: unknown kind %d", ErrInvalid, int(kind))
	}
	t := &Triangular{ve: clone(ve), kind: kind, k: k}
	rows, cols := t.Dims()
	col := make([]float64, rows)
	row := make([]float64, cols)
	if kind == Lower {
		copy(col, t.ve)
		row[0] = t.ve[0]
	} else {
		copy(row, t.ve)
		col[0] = t.ve[0]
	}
	t.op = newMulerFFT(rows, cols, embedToeplitz(col, row))
	return t, nil
}

func (t *Triangular) Dims() (rows, cols int) {
	if t.kind == Lower {
		return len(t.ve), t.k
	}
	return t.k, len(t.ve)
}

// At returns the entry in row i, column j.
func (t *Triangular) At(i, j int) float64 {
	rows, cols := t.Dims()
	checkIndex(i, j, rows, cols)
	d := i - j
	if t.kind == Upper {
		d = j - i
	}
	if d < 0 || d >= len(t.ve) {
		return 0
	}
	return t.ve[d]
}

// Kind reports which triangle is populated.
func (t *Triangular) Kind() Kind { return t.kind }

// Gen returns a copy of the generating vector.
func (t *Triangular) Gen() []float64 { return clone(t.ve) }

// Matrix instantiates the dense matrix.
func (t *Triangular) Matrix() *mat.Mat { return matrixOf(t) }
