package toep

import (
	"math"
	"math/rand"
	"testing"

	"github.com/jvlmdr/lin-go/mat"
)

const eps = 1e-9

func epsEq(want, got, eps float64) bool {
	return math.Abs(want-got) <= eps
}

func testSliceEq(t *testing.T, want, got []float64) {
	t.Helper()
	if len(want) != len(got) {
		t.Fatalf("lengths differ: want %d, got %d", len(want), len(got))
	}
	for i := range want {
		if !epsEq(want[i], got[i], eps) {
			t.Errorf("at %d: want %.6g, got %.6g", i, want[i], got[i])
		}
	}
}

func testMatEq(t *testing.T, want, got mat.Const) {
	t.Helper()
	m, n := want.Dims()
	p, q := got.Dims()
	if m != p || n != q {
		t.Fatalf("matrix sizes differ: want %dx%d, got %dx%d", m, n, p, q)
	}
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			u, v := want.At(i, j), got.At(i, j)
			if !epsEq(u, v, eps) {
				t.Errorf("at (%d, %d): want %.6g, got %.6g", i, j, u, v)
			}
		}
	}
}

func randVec(rng *rand.Rand, n int) []float64 {
	x := make([]float64, n)
	for i := range x {
		x[i] = 2*rng.Float64() - 1
	}
	return x
}

func randToeplitz(rng *rand.Rand, m, n int) *Toeplitz {
	col := randVec(rng, m)
	row := randVec(rng, n)
	row[0] = col[0]
	t, err := New(col, row)
	if err != nil {
		panic(err)
	}
	return t
}

// mulNaive multiplies by explicit summation over entry access.
func mulNaive(a mat.Const, x []float64) []float64 {
	rows, cols := a.Dims()
	y := make([]float64, rows)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			y[i] += a.At(i, j) * x[j]
		}
	}
	return y
}
