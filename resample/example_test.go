package resample_test

import (
	"fmt"

	"github.com/cwbudde/algo-interp/resample"
	"github.com/cwbudde/algo-interp/table"
)

func ExampleGrid_Resample() {
	// A sparse table of x = 1/(1+t), resampled onto a uniform
	// half-unit grid.
	ts := []float64{0, 1, 2, 3, 4}
	xs := make([]float64, len(ts))
	for i, t := range ts {
		xs[i] = 1 / (1 + t)
	}

	tab, err := table.New(ts, xs)
	if err != nil {
		panic(err)
	}

	grid := resample.Grid{Start: 0, Step: 0.5, Count: 9}
	out, err := grid.Resample(tab)
	if err != nil {
		panic(err)
	}

	fmt.Printf("%d samples\n", len(out))
	fmt.Printf("f(0.5) = %.6f\n", out[1])
	fmt.Printf("f(1.5) = %.6f\n", out[3])

	// Output:
	// 9 samples
	// f(0.5) = 0.666667
	// f(1.5) = 0.400000
}
