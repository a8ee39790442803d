package toep

import (
	"fmt"

	"github.com/jvlmdr/lin-go/mat"
)

// Hankel is a matrix that is constant along each anti-diagonal, stored as a
// column-reversed view of a Toeplitz matrix. It performs no transform work of
// its own: entry access and multiplication forward to the underlying Toeplitz
// matrix after reversing the operand.
type Hankel struct {
	t *Toeplitz
}

// NewHankel creates a Hankel matrix from its first column and last row.
// The last entry of the column and the first entry of the row describe the
// same entry and must agree.
func NewHankel(col, row []float64) (*Hankel, error) {
	if len(col) == 0 || len(row) == 0 {
		return nil, fmt.Errorf("%w: empty generating vector", ErrInvalid)
	}
	if col[len(col)-1] != row[0] {
		return nil, fmt.Errorf("%w: endpoint disagrees: column %g, row %g", ErrInvalid, col[len(col)-1], row[0])
	}
	// Anti-diagonal values a[i+j], then H(i, j) = T(i, n-1-j) for the
	// Toeplitz matrix with column a[n-1:] and row a[n-1], ..., a[0].
	n := len(row)
	a := append(clone(col), row[1:]...)
	t, err := New(a[n-1:], reverse(a[:n]))
	if err != nil {
		return nil, err
	}
	return &Hankel{t}, nil
}

func (h *Hankel) Dims() (rows, cols int) { return h.t.Dims() }

// At returns the entry in row i, column j.
func (h *Hankel) At(i, j int) float64 {
	rows, cols := h.t.Dims()
	checkIndex(i, j, rows, cols)
	return h.t.At(i, cols-1-j)
}

// Toeplitz returns the underlying Toeplitz matrix.
func (h *Hankel) Toeplitz() *Toeplitz { return h.t }

// Matrix instantiates the dense matrix.
func (h *Hankel) Matrix() *mat.Mat { return matrixOf(h) }

// Mul computes h times x by multiplying the underlying Toeplitz matrix by
// the reversed operand.
func (h *Hankel) Mul(x []float64) ([]float64, error) {
	_, cols := h.t.Dims()
	if err := errIfBadLen("operand", len(x), cols); err != nil {
		return nil, err
	}
	return h.t.Mul(reverse(x))
}

// MulAddTo computes y <- alpha h x + beta y.
func (h *Hankel) MulAddTo(y []float64, alpha float64, x []float64, beta float64) error {
	_, cols := h.t.Dims()
	if err := errIfBadLen("operand", len(x), cols); err != nil {
		return err
	}
	return h.t.MulAddTo(y, alpha, reverse(x), beta)
}
