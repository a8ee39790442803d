package toep

import "fmt"

// Inversion switches from the O(n^2) recurrence to doubling above this
// length. Performance cutoff, not a correctness boundary.
const invBaseLen = 64

// Inv computes the inverse of a square triangular Toeplitz matrix as another
// triangular Toeplitz matrix of the same kind. The generating vector of the
// inverse is found by a doubling recursion in O(n log n): each level inverts
// the leading half and obtains the trailing half from two structured
// multiplies, never forming a dense block.
func (t *Triangular) Inv() (*Triangular, error) {
	rows, cols := t.Dims()
	if err := errIfNotSquare("inverse", rows, cols); err != nil {
		return nil, err
	}
	if t.ve[0] == 0 {
		return nil, fmt.Errorf("%w: zero leading generating entry", ErrSingular)
	}
	b, err := invGen(t.ve)
	if err != nil {
		return nil, err
	}
	return NewTriangular(t.kind, b, t.k)
}

// invGen computes the generating vector of the inverse of the lower
// triangular Toeplitz matrix generated by a. The same recursion serves the
// upper kind by transposition.
func invGen(a []float64) ([]float64, error) {
	n := len(a)
	if n <= invBaseLen {
		return invGenDirect(a), nil
	}
	if n&(n-1) != 0 {
		// Pad to a power of two, invert, truncate.
		N := 1
		for N < n {
			N <<= 1
		}
		b, err := invGen(lagVec(a, N))
		if err != nil {
			return nil, err
		}
		return b[:n:n], nil
	}
	half := n / 2
	a1, err := invGen(a[:half])
	if err != nil {
		return nil, err
	}
	// Block form for the lower triangle:
	//	A = [ A1  0  ]    inv(A) = [ inv(A1)              0       ]
	//	    [ A21 A1 ]             [ -inv(A1) A21 inv(A1) inv(A1) ]
	// The first column of inv(A1) is a1, so the trailing half of the
	// inverse generating vector is -L(a1) (A21 a1), with A21 the general
	// Toeplitz block drawn from a[half:].
	row := make([]float64, half)
	row[0] = a[half]
	for j := 1; j < half; j++ {
		row[j] = a[half-j]
	}
	cross, err := New(clone(a[half:]), row)
	if err != nil {
		return nil, err
	}
	u, err := cross.Mul(a1)
	if err != nil {
		return nil, err
	}
	l1, err := NewTriangular(Lower, a1, half)
	if err != nil {
		return nil, err
	}
	v, err := l1.Mul(u)
	if err != nil {
		return nil, err
	}
	b := make([]float64, n)
	copy(b, a1)
	for i := range v {
		b[half+i] = -v[i]
	}
	return b, nil
}

// invGenDirect solves L b = e0 by forward substitution in O(n^2).
func invGenDirect(a []float64) []float64 {
	n := len(a)
	b := make([]float64, n)
	b[0] = 1 / a[0]
	for k := 1; k < n; k++ {
		var s float64
		for i := 0; i < k; i++ {
			s += a[k-i] * b[i]
		}
		b[k] = -s / a[0]
	}
	return b
}

// InvMulDirect solves t x = b by explicit inversion of the triangular
// matrix. Preferable for small and moderate systems; large ones are usually
// better served by the iterative path in package circ.
func InvMulDirect(t *Triangular, b []float64) ([]float64, error) {
	inv, err := t.Inv()
	if err != nil {
		return nil, err
	}
	return inv.Mul(b)
}
