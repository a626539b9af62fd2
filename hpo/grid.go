package hpo

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/symgo-ml/symgo/pkg/errors"
)

// gridSteps is the per-dimension resolution: n points in one dimension,
// sqrt(n) per axis in two.
func gridSteps(dims, nTestSamples int) (int, error) {
	switch dims {
	case 1:
		return nTestSamples, nil
	case 2:
		return int(math.Sqrt(float64(nTestSamples))), nil
	default:
		return 0, errors.NewValueError("hpo.TestGrid",
			"only 1- and 2-dimensional spaces are supported")
	}
}

// dimensionSpacing builds the evaluation points of one parameter: steps
// values spread over the interval, inset by half a step from each bound
// so grid points never sit on the bounds themselves. Log parameters are
// spaced in log space. Integer parameters collapse to their unique
// truncated values, so the dimension may end up shorter than steps.
func dimensionSpacing(p Parameter, steps int) []float64 {
	lower, upper := p.bounds()
	inset := 0.5 * (upper - lower) / float64(steps)
	lo, hi := lower+inset, upper-inset

	points := make([]float64, steps)
	if steps == 1 {
		points[0] = lo
	} else {
		step := (hi - lo) / float64(steps-1)
		for i := range points {
			points[i] = lo + float64(i)*step
		}
	}
	if p.Log {
		for i, v := range points {
			points[i] = math.Exp(v)
		}
	}

	if p.Integer {
		seen := map[float64]bool{}
		var ints []float64
		for _, v := range points {
			t := math.Trunc(v)
			if !seen[t] {
				seen[t] = true
				ints = append(ints, t)
			}
		}
		sort.Float64s(ints)
		return ints
	}
	return points
}

// TestGrid builds the shared held-out evaluation grid of a space: a
// midpoint-inset linear (or log) spacing per dimension, and in two
// dimensions the full cross product of both spacings, flattened to one
// row per grid point.
func TestGrid(space Space, nTestSamples int) (*mat.Dense, error) {
	if err := space.Validate(); err != nil {
		return nil, err
	}
	steps, err := gridSteps(len(space), nTestSamples)
	if err != nil {
		return nil, err
	}
	if steps < 1 {
		return nil, errors.NewValueError("hpo.TestGrid", "grid resolution must be at least 1")
	}

	dims := make([][]float64, len(space))
	for i, p := range space {
		dims[i] = dimensionSpacing(p, steps)
	}

	if len(space) == 1 {
		X := mat.NewDense(len(dims[0]), 1, nil)
		for i, v := range dims[0] {
			X.Set(i, 0, v)
		}
		return X, nil
	}

	// Cross product with the second dimension as the outer loop, matching
	// a row-major flattened meshgrid.
	d0, d1 := dims[0], dims[1]
	X := mat.NewDense(len(d0)*len(d1), 2, nil)
	for n, v1 := range d1 {
		for m, v0 := range d0 {
			row := n*len(d0) + m
			X.Set(row, 0, v0)
			X.Set(row, 1, v1)
		}
	}
	return X, nil
}
