/*
Package solve provides matrix-free preconditioned iterative solvers.

The solvers touch the system only through two primitives, apply-operator and
apply-preconditioner-inverse, both plain functions from vector to vector.
Exhausting the iteration cap is not an error: the Result carries the best
iterate found together with its residual norm and an explicit convergence
flag. Errors are reserved for structural failures such as a recurrence
breakdown.
*/
package solve

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/gonum/floats"
)

// Func applies a linear operator to a vector, returning a new vector.
type Func func(x []float64) []float64

// Result reports the outcome of an iterative solve. When Converged is false
// the iteration cap was reached first; X is still the best iterate found.
type Result struct {
	X          []float64
	Iterations int
	// Residual is the Euclidean norm of b - A x at X.
	Residual  float64
	Converged bool
}

// DefaultTol is the default relative residual tolerance, about 100 times
// machine epsilon.
const DefaultTol = 2.220446049250313e-14

// ErrBreakdown indicates a zero inner product in a recurrence, so that no
// further progress is possible from the current iterate.
var ErrBreakdown = errors.New("solve: recurrence breakdown")

func clone(x []float64) []float64 {
	y := make([]float64, len(x))
	copy(y, x)
	return y
}

func identity(x []float64) []float64 { return clone(x) }

// Convergence is declared when the residual norm falls below tol times the
// norm of b (or tol itself for zero b).
func threshold(b []float64, tol float64) float64 {
	if tol <= 0 {
		tol = DefaultTol
	}
	return tol * math.Max(1, floats.Norm(b, 2))
}

func initGuess(b, x []float64) ([]float64, error) {
	if x == nil {
		return make([]float64, len(b)), nil
	}
	if len(x) != len(b) {
		return nil, fmt.Errorf("solve: initial guess has length %d, want %d", len(x), len(b))
	}
	return clone(x), nil
}

// PCG solves a x = b for a symmetric positive-definite operator by
// preconditioned conjugate gradient. cinv applies the preconditioner
// inverse and may be nil for none. x is the initial guess and may be nil for
// zero. Non-positive tol and iter select the defaults (DefaultTol, 2n).
// Progress is written to debug if it is non-nil.
func PCG(a Func, b []float64, cinv Func, x []float64, tol float64, iter int, debug io.Writer) (*Result, error) {
	n := len(b)
	if n == 0 {
		return nil, errors.New("solve: empty system")
	}
	x, err := initGuess(b, x)
	if err != nil {
		return nil, err
	}
	if cinv == nil {
		cinv = identity
	}
	if iter <= 0 {
		iter = 2 * n
	}
	thresh := threshold(b, tol)

	r := make([]float64, n)
	floats.SubTo(r, b, a(x))
	z := cinv(r)
	p := clone(z)
	rz := floats.Dot(r, z)
	res := floats.Norm(r, 2)
	best := clone(x)
	bestRes := res

	var k int
	for k = 0; k < iter && res > thresh; k++ {
		ap := a(p)
		pap := floats.Dot(p, ap)
		if pap == 0 {
			return nil, fmt.Errorf("%w: p'Ap = 0 at iteration %d", ErrBreakdown, k)
		}
		alpha := rz / pap
		floats.AddScaled(x, alpha, p)
		floats.AddScaled(r, -alpha, ap)
		res = floats.Norm(r, 2)
		if debug != nil {
			fmt.Fprintf(debug, "pcg: iter %d: residual %g\n", k+1, res)
		}
		if res < bestRes {
			bestRes = res
			copy(best, x)
		}
		if res <= thresh {
			k++
			break
		}
		z = cinv(r)
		rzNext := floats.Dot(r, z)
		if rz == 0 {
			return nil, fmt.Errorf("%w: r'z = 0 at iteration %d", ErrBreakdown, k)
		}
		beta := rzNext / rz
		rz = rzNext
		for i := range p {
			p[i] = z[i] + beta*p[i]
		}
	}
	return &Result{X: best, Iterations: k, Residual: bestRes, Converged: bestRes <= thresh}, nil
}

// PCGS solves a x = b for a general (not necessarily symmetric) operator by
// preconditioned conjugate gradient squared. Arguments are as for PCG.
func PCGS(a Func, b []float64, cinv Func, x []float64, tol float64, iter int, debug io.Writer) (*Result, error) {
	n := len(b)
	if n == 0 {
		return nil, errors.New("solve: empty system")
	}
	x, err := initGuess(b, x)
	if err != nil {
		return nil, err
	}
	if cinv == nil {
		cinv = identity
	}
	if iter <= 0 {
		iter = 2 * n
	}
	thresh := threshold(b, tol)

	r := make([]float64, n)
	floats.SubTo(r, b, a(x))
	// Fixed shadow residual.
	rt := clone(r)
	res := floats.Norm(r, 2)
	best := clone(x)
	bestRes := res

	var (
		p, q    []float64
		rhoPrev float64
		u       = make([]float64, n)
		t       = make([]float64, n)
	)
	var k int
	for k = 0; k < iter && res > thresh; k++ {
		rho := floats.Dot(rt, r)
		if rho == 0 {
			return nil, fmt.Errorf("%w: rho = 0 at iteration %d", ErrBreakdown, k)
		}
		if k == 0 {
			u = clone(r)
			p = clone(u)
			q = make([]float64, n)
		} else {
			beta := rho / rhoPrev
			// u = r + beta q
			for i := range u {
				u[i] = r[i] + beta*q[i]
			}
			// p = u + beta (q + beta p)
			for i := range p {
				p[i] = u[i] + beta*(q[i]+beta*p[i])
			}
		}
		phat := cinv(p)
		vhat := a(phat)
		sigma := floats.Dot(rt, vhat)
		if sigma == 0 {
			return nil, fmt.Errorf("%w: rt'Ap = 0 at iteration %d", ErrBreakdown, k)
		}
		alpha := rho / sigma
		for i := range q {
			q[i] = u[i] - alpha*vhat[i]
		}
		floats.AddTo(t, u, q)
		uhat := cinv(t)
		floats.AddScaled(x, alpha, uhat)
		qhat := a(uhat)
		floats.AddScaled(r, -alpha, qhat)
		rhoPrev = rho
		res = floats.Norm(r, 2)
		if debug != nil {
			fmt.Fprintf(debug, "pcgs: iter %d: residual %g\n", k+1, res)
		}
		if res < bestRes {
			bestRes = res
			copy(best, x)
		}
	}
	return &Result{X: best, Iterations: k, Residual: bestRes, Converged: bestRes <= thresh}, nil
}
