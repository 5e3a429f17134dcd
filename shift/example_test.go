package shift_test

import (
	"fmt"

	"github.com/katalvlaran/zshift/matrix"
	"github.com/katalvlaran/zshift/shift"
)

// ExampleRun fits one Vasicek factor per observed matrix against a supplied baseline.
func ExampleRun() {
	stable := matrix.MustFromRows([][]float64{{0.5, 0.5}})
	observed := []*matrix.Dense{
		matrix.MustFromRows([][]float64{{0.3, 0.7}}),
		matrix.MustFromRows([][]float64{{0.7, 0.3}}),
	}

	est, err := shift.Run(shift.Request{
		Methodology: shift.Vasicek,
		Stable:      stable,
		Observed:    observed,
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, e := range est {
		fmt.Printf("matrix %d: z=%.3f\n", e.Index+1, e.Z)
	}
	// Output:
	// matrix 1: z=1.049
	// matrix 2: z=-1.049
}

// ExampleComputeBinBoundaries shows the thresholds of a symmetric row.
func ExampleComputeBinBoundaries() {
	bins, _ := shift.ComputeBinBoundaries(matrix.MustFromRows([][]float64{{0.5, 0.5}}))
	fmt.Printf("%v %.4f %v\n", bins[0][0], bins[0][1]+0, bins[0][2])
	// Output:
	// -Inf 0.0000 +Inf
}
