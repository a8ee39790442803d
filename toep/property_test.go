package toep

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// genVec draws generating vectors of modest length and magnitude.
func genVec() gopter.Gen {
	return gen.SliceOf(gen.Float64Range(-5, 5))
}

func TestToeplitz_properties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("dense entries agree with entry access", prop.ForAll(
		func(col, row []float64) bool {
			if len(col) == 0 || len(row) == 0 {
				return true
			}
			row[0] = col[0]
			tt, err := New(col, row)
			if err != nil {
				return false
			}
			s := tt.Matrix()
			for i := 0; i < len(col); i++ {
				for j := 0; j < len(row); j++ {
					if s.At(i, j) != tt.At(i, j) {
						return false
					}
				}
			}
			return true
		},
		genVec(), genVec(),
	))

	properties.Property("fast multiply agrees with direct summation", prop.ForAll(
		func(col, row []float64) bool {
			if len(col) == 0 || len(row) == 0 {
				return true
			}
			row[0] = col[0]
			tt, err := New(col, row)
			if err != nil {
				return false
			}
			x := make([]float64, len(row))
			for i := range x {
				x[i] = 1
			}
			got, err := tt.Mul(x)
			if err != nil {
				return false
			}
			want := mulNaive(tt, x)
			for i := range want {
				if !epsEq(want[i], got[i], 1e-8) {
					return false
				}
			}
			return true
		},
		genVec(), genVec(),
	))

	properties.TestingRun(t)
}
