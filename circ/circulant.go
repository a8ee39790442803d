package circ

import (
	"fmt"

	"github.com/jvlmdr/go-fftw/fftw"
	"github.com/jvlmdr/lin-go/mat"

	"github.com/jvlmdr/go-toep/toep"
)

// Circulant is a Toeplitz matrix whose diagonals wrap: the entry in row i,
// column j is p[(i-j) mod L] with L = max(rows, cols), where the period p is
// the generating vector or its reverse-with-wrap depending on orientation.
// The transform coefficients of the period are the eigenvalues of the square
// operator and are computed once at construction.
type Circulant struct {
	v      []float64
	orient toep.Orient
	k      int
	// Period of the wrap, column-oriented, length max(rows, cols).
	p []float64
	// Transform coefficients of p.
	eig  *fftw.Array
	work *fftw.Array
	fwd  *fftw.Plan
	bwd  *fftw.Plan
}

// New creates a circulant matrix from one generating vector. The orientation
// says whether v runs down the first column or along the first row; k is the
// other dimension.
func New(v []float64, orient toep.Orient, k int) (*Circulant, error) {
	if len(v) == 0 {
		return nil, fmt.Errorf("%w: empty generating vector", toep.ErrInvalid)
	}
	if k <= 0 {
		return nil, fmt.Errorf("%w: non-positive dimension %d", toep.ErrInvalid, k)
	}
	if orient != toep.Col && orient != toep.Row {
		return nil, fmt.Errorf("%w: unknown orientation %d", toep.ErrInvalid, int(orient))
	}
	c := &Circulant{v: clone(v), orient: orient, k: k}
	rows, cols := c.Dims()
	L := max(rows, cols)
	c.p = make([]float64, L)
	if orient == toep.Col {
		copy(c.p, c.v)
	} else {
		c.p[0] = c.v[0]
		for j := 1; j < len(c.v); j++ {
			c.p[L-j] = c.v[j]
		}
	}
	a := fftw.NewArray(L)
	for i, x := range c.p {
		a.Set(i, complex(x, 0))
	}
	c.eig = fftw.FFT(a)
	c.work = fftw.NewArray(L)
	c.fwd = fftw.NewPlan(c.work, c.work, fftw.Forward, fftw.Estimate)
	c.bwd = fftw.NewPlan(c.work, c.work, fftw.Backward, fftw.Estimate)
	return c, nil
}

// fromEigs builds the square circulant whose transform coefficients are eigs.
func fromEigs(eigs []complex128) (*Circulant, error) {
	L := len(eigs)
	a := fftw.NewArray(L)
	for i, x := range eigs {
		a.Set(i, x)
	}
	a = fftw.IFFT(a)
	v := make([]float64, L)
	for i := range v {
		v[i] = real(a.At(i)) / float64(L)
	}
	return New(v, toep.Col, L)
}

func (c *Circulant) Dims() (rows, cols int) {
	if c.orient == toep.Col {
		return len(c.v), c.k
	}
	return c.k, len(c.v)
}

// order is the wrap length max(rows, cols).
func (c *Circulant) order() int { return len(c.p) }

// At returns the entry in row i, column j.
func (c *Circulant) At(i, j int) float64 {
	rows, cols := c.Dims()
	checkIndex(i, j, rows, cols)
	return c.p[mod(i-j, c.order())]
}

// Gen returns a copy of the generating vector.
func (c *Circulant) Gen() []float64 { return clone(c.v) }

// Eig returns the i-th transform coefficient, the i-th eigenvalue when the
// matrix is square.
func (c *Circulant) Eig(i int) complex128 { return c.eig.At(i) }

// Matrix instantiates the dense matrix.
func (c *Circulant) Matrix() *mat.Mat {
	rows, cols := c.Dims()
	s := mat.New(rows, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			s.Set(i, j, c.At(i, j))
		}
	}
	return s
}
