/*
Package circ addresses circulant matrices, which the discrete Fourier
transform diagonalizes: multiplication, division, inversion and adjoint
products all reduce to elementwise arithmetic on the transform coefficients.

Circulant approximations of Toeplitz matrices (Strang, Chan) serve as
preconditioners for the iterative Toeplitz solvers in this package; they are
never exact substitutes for the operators they approximate.

As in package toep, instances are immutable after construction apart from an
internal transform scratch buffer, so concurrent calls on the same instance
must be serialized by the caller.
*/
package circ
