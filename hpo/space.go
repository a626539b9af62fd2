// Package hpo provides the hyperparameter-space collaborators that
// surrogate explanations are built around: parameter spaces, uniform
// random sampling, evaluation grids and the synthetic benchmark
// functions used to validate fitted expressions against a known ground
// truth.
package hpo

import (
	"math"

	"github.com/symgo-ml/symgo/pkg/errors"
)

// Parameter describes one hyperparameter dimension. Log parameters are
// sampled and gridded uniformly in log space. Integer parameters are
// rounded to whole values after sampling.
type Parameter struct {
	Name    string
	Lower   float64
	Upper   float64
	Log     bool
	Integer bool
}

// Space is an ordered list of parameters. The order fixes the column
// layout of every sample matrix derived from it.
type Space []Parameter

// Validate checks the bounds of every parameter.
func (s Space) Validate() error {
	if len(s) == 0 {
		return errors.NewValueError("hpo.Space", "space has no parameters")
	}
	for _, p := range s {
		if p.Lower >= p.Upper {
			return errors.NewValueError("hpo.Space",
				"parameter "+p.Name+" has lower bound >= upper bound")
		}
		if p.Log && p.Lower <= 0 {
			return errors.NewValueError("hpo.Space",
				"log parameter "+p.Name+" requires a positive lower bound")
		}
	}
	return nil
}

// bounds returns the sampling interval of p, in log space when the
// parameter is log scaled.
func (p Parameter) bounds() (lower, upper float64) {
	if p.Log {
		return math.Log(p.Lower), math.Log(p.Upper)
	}
	return p.Lower, p.Upper
}

// fromSampled maps a value drawn from the sampling interval back to the
// parameter scale, applying the integer rounding.
func (p Parameter) fromSampled(v float64) float64 {
	if p.Log {
		v = math.Exp(v)
	}
	if p.Integer {
		v = math.Round(v)
	}
	return v
}
