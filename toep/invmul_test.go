package toep

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// ar1Lags gives the autocovariance sequence of an AR(1) process, a standard
// positive-definite symmetric Toeplitz generator.
func ar1Lags(n int, rho float64) []float64 {
	ve := make([]float64, n)
	for i := range ve {
		ve[i] = math.Pow(rho, float64(i))
	}
	return ve
}

func TestInvMulLevinson(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	const n = 40
	s, err := NewSymmetric(ar1Lags(n, 0.6), Col, n)
	require.NoError(t, err)
	want := randVec(rng, n)
	b, err := s.Mul(want)
	require.NoError(t, err)
	got, err := InvMulLevinson(s, b)
	require.NoError(t, err)
	testSliceEq(t, want, got)
}

func TestInvMulChol(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	const n = 30
	s, err := NewSymmetric(ar1Lags(n, 0.5), Col, n)
	require.NoError(t, err)
	want := randVec(rng, n)
	b, err := s.Mul(want)
	require.NoError(t, err)
	got, err := InvMulChol(s, b)
	require.NoError(t, err)
	testSliceEq(t, want, got)
}

// Levinson and Cholesky must agree on the same system.
func TestInvMulLevinson_vsChol(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	const n = 25
	s, err := NewSymmetric(ar1Lags(n, 0.8), Col, n)
	require.NoError(t, err)
	b := randVec(rng, n)
	x, err := InvMulLevinson(s, b)
	require.NoError(t, err)
	y, err := InvMulChol(s, b)
	require.NoError(t, err)
	testSliceEq(t, y, x)
}

func TestInvMulConjGrad(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	const n = 50
	s, err := NewSymmetric(ar1Lags(n, 0.4), Col, n)
	require.NoError(t, err)
	want := randVec(rng, n)
	b, err := s.Mul(want)
	require.NoError(t, err)
	got, err := InvMulConjGrad(s, b, nil, 1e-12, 10*n, nil)
	require.NoError(t, err)
	if len(got) != n {
		t.Fatalf("solution length: want %d, got %d", n, len(got))
	}
	for i := range want {
		if !epsEq(want[i], got[i], 1e-6) {
			t.Errorf("at %d: want %.6g, got %.6g", i, want[i], got[i])
		}
	}
}

func TestInvMul_rectangular(t *testing.T) {
	s, err := NewSymmetric([]float64{2, 1}, Col, 5)
	require.NoError(t, err)
	_, err = InvMulLevinson(s, make([]float64, 2))
	require.ErrorIs(t, err, ErrNotSupported)
	_, err = InvMulChol(s, make([]float64, 2))
	require.ErrorIs(t, err, ErrNotSupported)
	_, err = InvMulConjGrad(s, make([]float64, 2), nil, 0, 0, nil)
	require.ErrorIs(t, err, ErrNotSupported)
}
