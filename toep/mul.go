package toep

import (
	"fmt"

	"github.com/jvlmdr/lin-go/mat"
)

// mulAddDirect accumulates y <- alpha A x + beta y by explicit summation.
// Exact in the absence of a transform; used below the FFT cutoff.
func mulAddDirect(y []float64, alpha float64, a mat.Const, x []float64, beta float64) {
	rows, cols := a.Dims()
	for i := 0; i < rows; i++ {
		var s float64
		for j := 0; j < cols; j++ {
			s += a.At(i, j) * x[j]
		}
		y[i] = beta*y[i] + alpha*s
	}
}

func mulAddTo(a mat.Const, op *mulerFFT, y []float64, alpha float64, x []float64, beta float64) error {
	rows, cols := a.Dims()
	if err := errIfBadLen("operand", len(x), cols); err != nil {
		return err
	}
	if err := errIfBadLen("result", len(y), rows); err != nil {
		return err
	}
	if op.n < fftMinLen {
		mulAddDirect(y, alpha, a, x, beta)
		return nil
	}
	op.mulAddTo(y, alpha, x, beta)
	return nil
}

func mulVec(a mat.Const, op *mulerFFT, x []float64) ([]float64, error) {
	rows, _ := a.Dims()
	y := make([]float64, rows)
	if err := mulAddTo(a, op, y, 1, x, 0); err != nil {
		return nil, err
	}
	return y, nil
}

// mulMat applies the operator to every column of xs.
// The scratch buffer is reused across columns.
func mulMat(a mat.Const, op *mulerFFT, xs *mat.Mat) (*mat.Mat, error) {
	rows, cols := a.Dims()
	if xs.Rows != cols {
		return nil, fmt.Errorf("%w: operand has %d rows, want %d", ErrDim, xs.Rows, cols)
	}
	ys := mat.New(rows, xs.Cols)
	x := make([]float64, cols)
	y := make([]float64, rows)
	for j := 0; j < xs.Cols; j++ {
		for i := range x {
			x[i] = xs.At(i, j)
		}
		if err := mulAddTo(a, op, y, 1, x, 0); err != nil {
			return nil, err
		}
		for i := range y {
			ys.Set(i, j, y[i])
		}
	}
	return ys, nil
}

// MulAddTo computes y <- alpha t x + beta y.
func (t *Toeplitz) MulAddTo(y []float64, alpha float64, x []float64, beta float64) error {
	return mulAddTo(t, t.op, y, alpha, x, beta)
}

// Mul computes t times x.
func (t *Toeplitz) Mul(x []float64) ([]float64, error) { return mulVec(t, t.op, x) }

// MulMat computes t times xs, column by column.
func (t *Toeplitz) MulMat(xs *mat.Mat) (*mat.Mat, error) { return mulMat(t, t.op, xs) }

// MulAddTo computes y <- alpha s x + beta y.
func (s *Symmetric) MulAddTo(y []float64, alpha float64, x []float64, beta float64) error {
	return mulAddTo(s, s.op, y, alpha, x, beta)
}

// Mul computes s times x.
func (s *Symmetric) Mul(x []float64) ([]float64, error) { return mulVec(s, s.op, x) }

// MulMat computes s times xs, column by column.
func (s *Symmetric) MulMat(xs *mat.Mat) (*mat.Mat, error) { return mulMat(s, s.op, xs) }

// MulAddTo computes y <- alpha t x + beta y.
func (t *Triangular) MulAddTo(y []float64, alpha float64, x []float64, beta float64) error {
	return mulAddTo(t, t.op, y, alpha, x, beta)
}

// Mul computes t times x.
func (t *Triangular) Mul(x []float64) ([]float64, error) { return mulVec(t, t.op, x) }

// MulMat computes t times xs, column by column.
func (t *Triangular) MulMat(xs *mat.Mat) (*mat.Mat, error) { return mulMat(t, t.op, xs) }
