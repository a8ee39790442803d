package circ

import (
	"math"
	"math/rand"
	"testing"
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

func randVec(rng *rand.Rand, n int) []float64 {
	x := make([]float64, n)
	for i := range x {
		x[i] = 2*rng.Float64() - 1
	}
	return x
}

// randWellCond draws a diagonally dominant generating vector, keeping every
// eigenvalue away from zero.
func randWellCond(rng *rand.Rand, n int) []float64 {
	v := randVec(rng, n)
	v[0] = float64(n)
	return v
}
