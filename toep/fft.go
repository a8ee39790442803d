package toep

import (
	"github.com/jvlmdr/go-fftw/fftw"
)

// Embedding lengths below fftMinLen use direct summation instead of the
// transform. Performance cutoff, not a correctness boundary.
const fftMinLen = 512

// fftLen returns the smallest integer >= n with no prime factor above 5.
func fftLen(n int) int {
	if n < 1 {
		return 1
	}
	for k := n; ; k++ {
		m := k
		for _, p := range []int{2, 3, 5} {
			for m%p == 0 {
				m /= p
			}
		}
		if m == 1 {
			return k
		}
	}
}

// mulerFFT multiplies a structured matrix by a vector in the Fourier domain.
// It holds the transform of the circulant embedding of the matrix together
// with a scratch buffer and plans for both directions, built once at
// construction and reused for the life of the matrix.
//
// The scratch buffer makes a muler unsafe for concurrent use.
type mulerFFT struct {
	rows, cols int
	// Embedding length.
	n int
	// Forward transform of the circulant embedding.
	chat *fftw.Array
	work *fftw.Array
	fwd  *fftw.Plan
	bwd  *fftw.Plan
}

func newMulerFFT(rows, cols int, emb []float64) *mulerFFT {
	op := &mulerFFT{rows: rows, cols: cols, n: len(emb)}
	c := fftw.NewArray(op.n)
	for i, x := range emb {
		c.Set(i, complex(x, 0))
	}
	op.chat = fftw.FFT(c)
	op.work = fftw.NewArray(op.n)
	op.fwd = fftw.NewPlan(op.work, op.work, fftw.Forward, fftw.Estimate)
	op.bwd = fftw.NewPlan(op.work, op.work, fftw.Backward, fftw.Estimate)
	return op
}

// mulAddTo computes y <- alpha A x + beta y through the Fourier domain.
// Transforms are unnormalized; the inverse pass is scaled by 1/n here.
func (op *mulerFFT) mulAddTo(y []float64, alpha float64, x []float64, beta float64) {
	for i := 0; i < op.n; i++ {
		var v complex128
		if i < len(x) {
			v = complex(x[i], 0)
		}
		op.work.Set(i, v)
	}
	op.fwd.Execute()
	for i := 0; i < op.n; i++ {
		op.work.Set(i, op.chat.At(i)*op.work.At(i))
	}
	op.bwd.Execute()
	s := alpha / float64(op.n)
	for i := range y {
		y[i] = beta*y[i] + s*real(op.work.At(i))
	}
}

// embedToeplitz lays out the generating vectors of an m x n Toeplitz matrix
// as a circulant of length fftLen(m+n-1): the column in the head of the
// period, the tail of the row wrapped onto the end.
func embedToeplitz(col, row []float64) []float64 {
	m, n := len(col), len(row)
	emb := make([]float64, fftLen(m+n-1))
	copy(emb, col)
	for j := 1; j < n; j++ {
		emb[len(emb)-j] = row[j]
	}
	return emb
}
