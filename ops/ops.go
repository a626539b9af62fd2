// Package ops defines the fixed primitive operator set shared by the
// symbolic search and the expression parser.
//
// All operators follow standard mathematical semantics over float64, with
// division by zero yielding Inf/NaN per IEEE 754 rather than an error: the
// search procedure treats such individuals as low-fitness, not invalid. The
// one exception is exp, which is clipped so extreme inputs never overflow
// to Inf.
package ops

import (
	"math"

	"github.com/symgo-ml/symgo/pkg/errors"
)

// Arities of the primitive operators.
const (
	Arity1 = 1
	Arity2 = 2
)

// ExpCap is the element-wise ceiling applied by the clipped exp operator.
const ExpCap = 100000.0

// Func is a primitive operator: a name, a fixed arity and a scalar kernel
// applied element-wise by Apply.
type Func struct {
	Name  string
	Arity int
	fn    func(args ...float64) float64
}

// At evaluates the operator at a single point.
func (f Func) At(args ...float64) float64 {
	return f.fn(args...)
}

// Apply evaluates the operator element-wise over equally sized slices.
func (f Func) Apply(args ...[]float64) ([]float64, error) {
	if len(args) != f.Arity {
		return nil, errors.NewValueError(f.Name, "wrong number of arguments")
	}
	n := len(args[0])
	for _, a := range args[1:] {
		if len(a) != n {
			return nil, errors.NewDimensionError(f.Name, n, len(a), 0)
		}
	}

	out := make([]float64, n)
	scratch := make([]float64, f.Arity)
	for i := 0; i < n; i++ {
		for j, a := range args {
			scratch[j] = a[i]
		}
		out[i] = f.fn(scratch...)
	}
	return out, nil
}

// SafeExp is exp clipped to ExpCap, so exp of extreme inputs never produces
// Inf and never panics.
func SafeExp(x float64) float64 {
	v := math.Exp(x)
	if v > ExpCap {
		return ExpCap
	}
	return v
}

var (
	// Add, Sub, Mul, Div are the binary arithmetic operators.
	Add = Func{Name: "add", Arity: Arity2, fn: func(a ...float64) float64 { return a[0] + a[1] }}
	Sub = Func{Name: "sub", Arity: Arity2, fn: func(a ...float64) float64 { return a[0] - a[1] }}
	Mul = Func{Name: "mul", Arity: Arity2, fn: func(a ...float64) float64 { return a[0] * a[1] }}
	Div = Func{Name: "div", Arity: Arity2, fn: func(a ...float64) float64 { return a[0] / a[1] }}

	// Sqrt, Log, Sin, Cos, Abs follow the standard library definitions.
	Sqrt = Func{Name: "sqrt", Arity: Arity1, fn: func(a ...float64) float64 { return math.Sqrt(a[0]) }}
	Log  = Func{Name: "log", Arity: Arity1, fn: func(a ...float64) float64 { return math.Log(a[0]) }}
	Sin  = Func{Name: "sin", Arity: Arity1, fn: func(a ...float64) float64 { return math.Sin(a[0]) }}
	Cos  = Func{Name: "cos", Arity: Arity1, fn: func(a ...float64) float64 { return math.Cos(a[0]) }}
	Abs  = Func{Name: "abs", Arity: Arity1, fn: func(a ...float64) float64 { return math.Abs(a[0]) }}

	// Exp is the clipped exponential.
	Exp = Func{Name: "exp", Arity: Arity1, fn: func(a ...float64) float64 { return SafeExp(a[0]) }}
)

// functionSet lists the operators available to the symbolic search, in the
// order the search configuration declares them.
var functionSet = []Func{Add, Sub, Mul, Div, Sqrt, Log, Sin, Cos, Abs, Exp}

// FunctionSet returns the fixed operator set.
func FunctionSet() []Func {
	set := make([]Func, len(functionSet))
	copy(set, functionSet)
	return set
}

// Lookup returns the operator with the given name, if it exists.
func Lookup(name string) (Func, bool) {
	for _, f := range functionSet {
		if f.Name == name {
			return f, true
		}
	}
	return Func{}, false
}
