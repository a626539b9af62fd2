package expr

import (
	"math"

	"github.com/symgo-ml/symgo/ops"
	"github.com/symgo-ml/symgo/pkg/errors"
)

// Eval evaluates the tree element-wise over the given variable bindings.
// All bound slices must share one length; the result has that length.
// Operators evaluate through the ops algebra, so exp is clipped here exactly
// as it is during the symbolic search.
func Eval(node Node, vars map[string][]float64) ([]float64, error) {
	n := -1
	for name, values := range vars {
		if n == -1 {
			n = len(values)
		} else if len(values) != n {
			return nil, errors.NewDimensionError("expr.Eval: "+name, n, len(values), 0)
		}
	}
	if n == -1 {
		n = 1
	}
	return eval(node, vars, n)
}

func eval(node Node, vars map[string][]float64, n int) ([]float64, error) {
	switch e := node.(type) {
	case *Const:
		out := make([]float64, n)
		for i := range out {
			out[i] = e.Val
		}
		return out, nil

	case *Var:
		values, ok := vars[e.Name]
		if !ok {
			return nil, errors.NewValueError("expr.Eval", "unbound variable "+e.Name)
		}
		out := make([]float64, n)
		copy(out, values)
		return out, nil

	case *Unary:
		child, err := eval(e.Child, vars, n)
		if err != nil {
			return nil, err
		}
		if e.Op == OpNeg {
			for i := range child {
				child[i] = -child[i]
			}
			return child, nil
		}
		return unaryFunc(e.Op).Apply(child)

	case *Binary:
		left, err := eval(e.Left, vars, n)
		if err != nil {
			return nil, err
		}
		right, err := eval(e.Right, vars, n)
		if err != nil {
			return nil, err
		}
		if e.Op == OpPow {
			for i := range left {
				left[i] = math.Pow(left[i], right[i])
			}
			return left, nil
		}
		return binaryFunc(e.Op).Apply(left, right)

	default:
		return nil, errors.NewValueError("expr.Eval", "unsupported node")
	}
}

func unaryFunc(op UnaryOp) ops.Func {
	switch op {
	case OpSqrt:
		return ops.Sqrt
	case OpLog:
		return ops.Log
	case OpSin:
		return ops.Sin
	case OpCos:
		return ops.Cos
	case OpAbs:
		return ops.Abs
	default:
		return ops.Exp
	}
}

func binaryFunc(op BinaryOp) ops.Func {
	switch op {
	case OpAdd:
		return ops.Add
	case OpSub:
		return ops.Sub
	case OpMul:
		return ops.Mul
	default:
		return ops.Div
	}
}
