package resample

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-interp/rational"
	"github.com/cwbudde/algo-interp/table"
)

// Errors returned by grid validation and resampling.
var (
	ErrInvalidStep  = errors.New("resample: step must be positive")
	ErrInvalidCount = errors.New("resample: count must be positive")
	ErrPole         = errors.New("resample: interpolant has a pole on the grid")
)

// Grid describes a uniform sequence of query points
// Start, Start+Step, ..., Start+(Count-1)*Step.
type Grid struct {
	Start float64 // first query point
	Step  float64 // spacing between query points, > 0
	Count int     // number of query points, > 0
}

// Validate checks that the grid parameters are valid.
func (g *Grid) Validate() error {
	if g.Step <= 0 {
		return ErrInvalidStep
	}

	if g.Count <= 0 {
		return ErrInvalidCount
	}

	return nil
}

// Resample evaluates the rational interpolant of tab at every grid point.
//
// Grid points outside the table's t range are still evaluated: the
// interpolation window clamps to the nearest table edge, which is the
// only extrapolation behavior the algorithm defines. A pole on the grid
// aborts with [ErrPole] wrapping the offending abscissa.
func (g *Grid) Resample(tab *table.Table, opts ...rational.Option) ([]float64, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}

	in := rational.New(opts...)
	if err := in.Bind(tab); err != nil {
		return nil, err
	}

	out := make([]float64, g.Count)
	for k := range out {
		t := g.Start + g.Step*float64(k)

		v, err := in.Interpolate(t)
		if err != nil {
			return nil, err
		}

		if math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: t = %g", ErrPole, t)
		}

		out[k] = v
	}

	return out, nil
}
