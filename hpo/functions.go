package hpo

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/symgo-ml/symgo/pkg/errors"
)

// Function is a synthetic benchmark with a known closed form, used to
// validate fitted expressions against ground truth.
type Function struct {
	Name       string
	Expression string
	Space      Space
	Apply      func(x []float64) float64
}

// Evaluate applies the function to every row of X.
func (f Function) Evaluate(X *mat.Dense) (*mat.VecDense, error) {
	rows, cols := X.Dims()
	if cols != len(f.Space) {
		return nil, errors.NewDimensionError("hpo.Function.Evaluate", len(f.Space), cols, 1)
	}
	y := mat.NewVecDense(rows, nil)
	for i := 0; i < rows; i++ {
		y.SetVec(i, f.Apply(mat.Row(nil, i, X)))
	}
	return y, nil
}

func unitSpace(lower, upper float64) Space {
	return Space{{Name: "X0", Lower: lower, Upper: upper}}
}

// Functions1D returns the one-dimensional benchmark registry.
func Functions1D() []Function {
	return []Function{
		{
			Name:       "Linear",
			Expression: "x",
			Space:      unitSpace(0.01, 1),
			Apply:      func(x []float64) float64 { return x[0] },
		},
		{
			Name:       "Quadratic",
			Expression: "x**2",
			Space:      unitSpace(-1, 1),
			Apply:      func(x []float64) float64 { return x[0] * x[0] },
		},
		{
			Name:       "Polynom",
			Expression: "x**3",
			Space:      unitSpace(-1, 1),
			Apply:      func(x []float64) float64 { return x[0] * x[0] * x[0] },
		},
		{
			Name:       "Square Root",
			Expression: "sqrt(x)",
			Space:      unitSpace(0.01, 1),
			Apply:      func(x []float64) float64 { return math.Sqrt(x[0]) },
		},
		{
			Name:       "Log",
			Expression: "log(x)",
			Space:      unitSpace(0.01, 1),
			Apply:      func(x []float64) float64 { return math.Log(x[0]) },
		},
		{
			Name:       "Sine Curve",
			Expression: "sin(2*x)",
			Space:      unitSpace(0.01, 2*math.Pi),
			Apply:      func(x []float64) float64 { return math.Sin(2 * x[0]) },
		},
	}
}

// Functions2D returns the two-dimensional benchmark registry.
func Functions2D() []Function {
	return []Function{
		{
			Name:       "Linear 2D",
			Expression: "2*X0 + X1",
			Space: Space{
				{Name: "X0", Lower: -1, Upper: 1},
				{Name: "X1", Lower: -1, Upper: 1},
			},
			Apply: func(x []float64) float64 { return 2*x[0] + x[1] },
		},
		{
			Name:       "Branin",
			Expression: "(X1 - 5.1/(4*pi**2)*X0**2 + 5/pi*X0 - 6)**2 + 10*(1 - 1/(8*pi))*cos(X0) + 10",
			Space: Space{
				{Name: "X0", Lower: -5, Upper: 10},
				{Name: "X1", Lower: 0, Upper: 15},
			},
			Apply: func(x []float64) float64 {
				b := 5.1 / (4 * math.Pi * math.Pi)
				c := 5 / math.Pi
				t := 1 / (8 * math.Pi)
				inner := x[1] - b*x[0]*x[0] + c*x[0] - 6
				return inner*inner + 10*(1-t)*math.Cos(x[0]) + 10
			},
		},
		{
			Name:       "Camelback",
			Expression: "(4 - 2.1*X0**2 + X0**4/3)*X0**2 + X0*X1 + (-4 + 4*X1**2)*X1**2",
			Space: Space{
				{Name: "X0", Lower: -3, Upper: 3},
				{Name: "X1", Lower: -2, Upper: 2},
			},
			Apply: func(x []float64) float64 {
				x0sq := x[0] * x[0]
				x1sq := x[1] * x[1]
				return (4-2.1*x0sq+x0sq*x0sq/3)*x0sq + x[0]*x[1] + (-4+4*x1sq)*x1sq
			},
		},
	}
}
