package toep

import (
	"bytes"
	"encoding/json"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToeplitzCSV_roundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	want := randToeplitz(rng, 5, 7)

	var buf bytes.Buffer
	require.NoError(t, EncodeToeplitzCSV(&buf, want))
	got, err := DecodeToeplitzCSV(&buf)
	require.NoError(t, err)
	testMatEq(t, want, got)
}

func TestToeplitzJSON_roundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	want := randToeplitz(rng, 4, 3)

	p, err := json.Marshal(want)
	require.NoError(t, err)
	var got *Toeplitz
	require.NoError(t, json.Unmarshal(p, &got))
	testMatEq(t, want, got)

	// The cached transform must be rebuilt on decode.
	x := randVec(rng, 3)
	y, err := got.Mul(x)
	require.NoError(t, err)
	testSliceEq(t, mulNaive(want, x), y)
}

func TestToeplitzExt_files(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	want := randToeplitz(rng, 6, 6)
	dir := t.TempDir()

	for _, name := range []string{"t.csv", "t.json"} {
		fname := dir + "/" + name
		require.NoError(t, SaveToeplitzExt(fname, want))
		got, err := LoadToeplitzExt(fname)
		require.NoError(t, err)
		testMatEq(t, want, got)
	}
}

func TestVectorExt_files(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	want := randVec(rng, 9)
	dir := t.TempDir()

	for _, name := range []string{"x.csv", "x.json"} {
		fname := dir + "/" + name
		require.NoError(t, SaveVectorExt(fname, want))
		got, err := LoadVectorExt(fname)
		require.NoError(t, err)
		testSliceEq(t, want, got)
	}
}
