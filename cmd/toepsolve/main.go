package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/jvlmdr/go-toep/circ"
	"github.com/jvlmdr/go-toep/solve"
	"github.com/jvlmdr/go-toep/toep"
)

func init() {
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage:", os.Args[0], "[flags] matrix.(csv|json) rhs.(csv|json) soln.(csv|json)")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Solves the square Toeplitz system given by its generating vectors.")
		flag.PrintDefaults()
	}
}

func main() {
	var (
		form    = flag.String("form", "general", "Structure of the matrix {general, symmetric, lower, upper}")
		tol     = flag.Float64("tol", 0, "Residual tolerance relative to the right-hand side (0 for default)")
		iter    = flag.Int("iter", 0, "Iteration cap (0 for default)")
		verbose = flag.Bool("verbose", false, "Print solver progress to stderr")
	)
	flag.Parse()
	if flag.NArg() != 3 {
		flag.Usage()
		os.Exit(1)
	}
	matFile, rhsFile, outFile := flag.Arg(0), flag.Arg(1), flag.Arg(2)

	t, err := toep.LoadToeplitzExt(matFile)
	if err != nil {
		log.Fatalln("load matrix:", err)
	}
	b, err := toep.LoadVectorExt(rhsFile)
	if err != nil {
		log.Fatalln("load right-hand side:", err)
	}
	var debug io.Writer
	if *verbose {
		debug = os.Stderr
	}

	r, err := solveForm(*form, t, b, *tol, *iter, debug)
	if err != nil {
		log.Fatalln("solve:", err)
	}
	if r.Converged {
		log.Printf("converged after %d iterations (residual %g)", r.Iterations, r.Residual)
	} else {
		log.Printf("no convergence after %d iterations (residual %g)", r.Iterations, r.Residual)
	}

	if err := toep.SaveVectorExt(outFile, r.X); err != nil {
		log.Fatalln("save solution:", err)
	}
}

func solveForm(form string, t *toep.Toeplitz, b []float64, tol float64, iter int, debug io.Writer) (*solve.Result, error) {
	switch form {
	case "general":
		return circ.ToeplitzInvMulCGS(t, b, nil, tol, iter, debug)
	case "symmetric":
		_, cols := t.Dims()
		s, err := toep.NewSymmetric(t.Col(), toep.Col, cols)
		if err != nil {
			return nil, err
		}
		return circ.SymmetricInvMulPCG(s, b, nil, tol, iter, debug)
	case "lower":
		tri, err := t.LowerTri(0)
		if err != nil {
			return nil, err
		}
		return circ.TriangularInvMulCGS(tri, b, nil, tol, iter, debug)
	case "upper":
		tri, err := t.UpperTri(0)
		if err != nil {
			return nil, err
		}
		return circ.TriangularInvMulCGS(tri, b, nil, tol, iter, debug)
	default:
		return nil, fmt.Errorf("unknown form: %q", form)
	}
}
