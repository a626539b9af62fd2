package hpo

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// Sampler draws training configurations from a parameter space. One row
// per configuration, one column per parameter, in space order.
type Sampler interface {
	Sample(space Space, n int) (*mat.Dense, error)
}

// RandomSampler draws configurations uniformly at random, in log space
// for log parameters. The seed makes runs reproducible.
type RandomSampler struct {
	Seed int64
}

func (r RandomSampler) Sample(space Space, n int) (*mat.Dense, error) {
	if err := space.Validate(); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(r.Seed))
	X := mat.NewDense(n, len(space), nil)
	for i := 0; i < n; i++ {
		for j, p := range space {
			lower, upper := p.bounds()
			v := lower + rng.Float64()*(upper-lower)
			X.Set(i, j, p.fromSampled(v))
		}
	}
	return X, nil
}
