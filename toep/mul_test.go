package toep

import (
	"math/rand"
	"testing"
	"time"

	"github.com/jvlmdr/lin-go/mat"
	"github.com/stretchr/testify/require"
)

// Sizes straddling the transform cutoff force both code paths to agree with
// direct summation.
func TestToeplitz_mulVsNaive(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	cases := []struct{ m, n int }{
		{1, 1},
		{10, 8},
		{40, 30},
		{260, 300}, // embedding 576, above the cutoff
		{513, 400},
	}
	for _, c := range cases {
		tt := randToeplitz(rng, c.m, c.n)
		x := randVec(rng, c.n)
		start := time.Now()
		want := mulNaive(tt, x)
		t.Logf("%dx%d naive: %v", c.m, c.n, time.Since(start))
		start = time.Now()
		got, err := tt.Mul(x)
		t.Logf("%dx%d fast: %v", c.m, c.n, time.Since(start))
		require.NoError(t, err)
		testSliceEq(t, want, got)
	}
}

func TestSymmetric_mulVsNaive(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for _, c := range []struct{ n, k int }{{12, 12}, {12, 20}, {300, 280}} {
		s, err := NewSymmetric(randVec(rng, c.n), Col, c.k)
		require.NoError(t, err)
		x := randVec(rng, c.k)
		got, err := s.Mul(x)
		require.NoError(t, err)
		testSliceEq(t, mulNaive(s, x), got)
	}
}

func TestTriangular_mulVsNaive(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for _, kind := range []Kind{Lower, Upper} {
		for _, c := range []struct{ n, k int }{{9, 9}, {15, 7}, {320, 320}} {
			tr, err := NewTriangular(kind, randVec(rng, c.n), c.k)
			require.NoError(t, err)
			_, cols := tr.Dims()
			x := randVec(rng, cols)
			got, err := tr.Mul(x)
			require.NoError(t, err)
			testSliceEq(t, mulNaive(tr, x), got)
		}
	}
}

func TestHankel_mulVsNaive(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	col := randVec(rng, 6)
	row := randVec(rng, 5)
	row[0] = col[len(col)-1]
	h, err := NewHankel(col, row)
	require.NoError(t, err)
	// Entries are constant along anti-diagonals.
	a := append(clone(col), row[1:]...)
	rows, cols := h.Dims()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if !epsEq(a[i+j], h.At(i, j), eps) {
				t.Errorf("at (%d, %d): want %g, got %g", i, j, a[i+j], h.At(i, j))
			}
		}
	}
	x := randVec(rng, cols)
	got, err := h.Mul(x)
	require.NoError(t, err)
	testSliceEq(t, mulNaive(h, x), got)
}

func TestHankel_endpointMismatch(t *testing.T) {
	_, err := NewHankel([]float64{1, 2}, []float64{3, 4})
	require.ErrorIs(t, err, ErrInvalid)
}

func TestMulAddTo(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for _, c := range []struct{ m, n int }{{20, 15}, {260, 300}} {
		tt := randToeplitz(rng, c.m, c.n)
		x := randVec(rng, c.n)
		y0 := randVec(rng, c.m)

		const alpha, beta = 2.5, -0.75
		ax := mulNaive(tt, x)
		want := make([]float64, c.m)
		for i := range want {
			want[i] = alpha*ax[i] + beta*y0[i]
		}

		y := clone(y0)
		require.NoError(t, tt.MulAddTo(y, alpha, x, beta))
		testSliceEq(t, want, y)
	}
}

func TestMul_dimensionMismatch(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	tt := randToeplitz(rng, 4, 6)
	_, err := tt.Mul(make([]float64, 5))
	require.ErrorIs(t, err, ErrDim)
	err = tt.MulAddTo(make([]float64, 3), 1, make([]float64, 6), 0)
	require.ErrorIs(t, err, ErrDim)
}

// Columnwise application must agree with one multiply per column even though
// the scratch buffer is shared.
func TestMulMat(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	tt := randToeplitz(rng, 9, 6)
	xs := mat.New(6, 4)
	for j := 0; j < xs.Cols; j++ {
		for i := 0; i < xs.Rows; i++ {
			xs.Set(i, j, 2*rng.Float64()-1)
		}
	}
	ys, err := tt.MulMat(xs)
	require.NoError(t, err)
	for j := 0; j < xs.Cols; j++ {
		x := make([]float64, xs.Rows)
		for i := range x {
			x[i] = xs.At(i, j)
		}
		want, err := tt.Mul(x)
		require.NoError(t, err)
		for i := range want {
			if !epsEq(want[i], ys.At(i, j), eps) {
				t.Errorf("at (%d, %d): want %g, got %g", i, j, want[i], ys.At(i, j))
			}
		}
	}

	_, err = tt.MulMat(mat.New(5, 2))
	require.ErrorIs(t, err, ErrDim)
}

func benchmarkMul(b *testing.B, m, n int) {
	rng := rand.New(rand.NewSource(1))
	tt := randToeplitz(rng, m, n)
	x := randVec(rng, n)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tt.Mul(x); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMul_small(b *testing.B) { benchmarkMul(b, 64, 64) }
func BenchmarkMul_large(b *testing.B) { benchmarkMul(b, 2048, 2048) }
