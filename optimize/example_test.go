package optimize_test

import (
	"fmt"

	"github.com/katalvlaran/zshift/optimize"
)

// ExampleGoldenSection minimizes a shifted parabola.
func ExampleGoldenSection() {
	z, err := optimize.GoldenSection(func(z float64) float64 {
		return (z - 3) * (z - 3)
	}, -10, 10, optimize.DefaultTolerance)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%.4f\n", z)
	// Output:
	// 3.0000
}
