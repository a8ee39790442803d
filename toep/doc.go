/*
Package toep provides structured matrices of the Toeplitz family with fast
multiplication and solving in the Fourier domain.

A matrix is described by its generating vectors rather than its entries.
Multiplication embeds the matrix in a circulant operator of sufficient size
and applies cached forward and inverse transforms, taking O(N log N) time
instead of O(mn):

	t, err := toep.New([]float64{2, 1, 0}, []float64{2, 3, 4})
	if err != nil {
		return err
	}
	y, err := t.Mul(x)

Triangular Toeplitz matrices can be inverted explicitly in O(n log n) by a
doubling recursion:

	inv, err := tri.Inv()

General and symmetric systems are solved iteratively with circulant
preconditioners; see package circ.

Matrices are immutable after construction.  Multiplication reuses an internal
transform scratch buffer, so concurrent calls on the same instance must be
serialized by the caller.  Distinct instances are independent.
*/
package toep
