package expr

import (
	"math"

	"github.com/symgo-ml/symgo/ops"
)

// maxSimplifyPasses caps the fixpoint iteration. Expressions under the
// conversion length guard converge in a handful of passes.
const maxSimplifyPasses = 20

// Simplify applies rewrite rules until the tree stops changing. Constants
// fold through the operator algebra (the clipped exp included), so folding
// agrees with evaluation. Rewrites only remove or preserve operator
// applications, never add them.
func Simplify(node Node) Node {
	for i := 0; i < maxSimplifyPasses; i++ {
		next := simplifyOnce(node)
		if next.String() == node.String() {
			return next
		}
		node = next
	}
	return node
}

func simplifyOnce(node Node) Node {
	switch n := node.(type) {
	case *Const, *Var:
		return node

	case *Unary:
		child := simplifyOnce(n.Child)

		// Double negation.
		if n.Op == OpNeg {
			if inner, ok := child.(*Unary); ok && inner.Op == OpNeg {
				return inner.Child
			}
			if c, ok := child.(*Const); ok {
				return &Const{Val: -c.Val}
			}
		}

		if c, ok := child.(*Const); ok {
			if folded, ok := foldUnary(n.Op, c.Val); ok {
				return &Const{Val: folded}
			}
		}

		return &Unary{Op: n.Op, Child: child}

	case *Binary:
		left := simplifyOnce(n.Left)
		right := simplifyOnce(n.Right)

		lc, lok := left.(*Const)
		rc, rok := right.(*Const)

		if lok && rok {
			if folded, ok := foldBinary(n.Op, lc.Val, rc.Val); ok {
				return &Const{Val: folded}
			}
		}

		switch n.Op {
		case OpAdd:
			if rok && rc.Val == 0 {
				return left
			}
			if lok && lc.Val == 0 {
				return right
			}
			// x + (-k) = x - k
			if rok && rc.Val < 0 {
				return &Binary{Op: OpSub, Left: left, Right: &Const{Val: -rc.Val}}
			}
			// x + neg(y) = x - y
			if ru, ok := right.(*Unary); ok && ru.Op == OpNeg {
				return &Binary{Op: OpSub, Left: left, Right: ru.Child}
			}

		case OpSub:
			if rok && rc.Val == 0 {
				return left
			}
			if lok && lc.Val == 0 {
				return simplifyOnce(&Unary{Op: OpNeg, Child: right})
			}
			// x - (-k) = x + k
			if rok && rc.Val < 0 {
				return &Binary{Op: OpAdd, Left: left, Right: &Const{Val: -rc.Val}}
			}
			// x - neg(y) = x + y
			if ru, ok := right.(*Unary); ok && ru.Op == OpNeg {
				return &Binary{Op: OpAdd, Left: left, Right: ru.Child}
			}
			// x - x = 0 (structural equality)
			if left.String() == right.String() {
				return &Const{Val: 0}
			}

		case OpMul:
			if (rok && rc.Val == 0) || (lok && lc.Val == 0) {
				return &Const{Val: 0}
			}
			if rok && rc.Val == 1 {
				return left
			}
			if lok && lc.Val == 1 {
				return right
			}
			if rok && rc.Val == -1 {
				return simplifyOnce(&Unary{Op: OpNeg, Child: left})
			}
			if lok && lc.Val == -1 {
				return simplifyOnce(&Unary{Op: OpNeg, Child: right})
			}

		case OpDiv:
			if rok && rc.Val == 1 {
				return left
			}
			if rok && rc.Val == -1 {
				return simplifyOnce(&Unary{Op: OpNeg, Child: left})
			}
			if lok && lc.Val == 0 {
				return &Const{Val: 0}
			}
			// x / x = 1 (structural equality)
			if left.String() == right.String() {
				return &Const{Val: 1}
			}

		case OpPow:
			if rok && rc.Val == 0 {
				return &Const{Val: 1}
			}
			if rok && rc.Val == 1 {
				return left
			}
			if lok && lc.Val == 1 {
				return &Const{Val: 1}
			}
			if lok && lc.Val == 0 && rok && rc.Val > 0 {
				return &Const{Val: 0}
			}
		}

		return &Binary{Op: n.Op, Left: left, Right: right}

	default:
		return node
	}
}

// foldUnary evaluates a unary operator on a constant. Folding is skipped
// when the result would be non-finite (log or sqrt outside the domain), so
// degenerate literals never enter the tree.
func foldUnary(op UnaryOp, v float64) (float64, bool) {
	var out float64
	switch op {
	case OpNeg:
		out = -v
	case OpSqrt:
		out = ops.Sqrt.At(v)
	case OpLog:
		out = ops.Log.At(v)
	case OpSin:
		out = ops.Sin.At(v)
	case OpCos:
		out = ops.Cos.At(v)
	case OpAbs:
		out = ops.Abs.At(v)
	case OpExp:
		out = ops.Exp.At(v)
	default:
		return 0, false
	}
	if math.IsNaN(out) || math.IsInf(out, 0) {
		return 0, false
	}
	return out, true
}

func foldBinary(op BinaryOp, a, b float64) (float64, bool) {
	var out float64
	switch op {
	case OpAdd:
		out = ops.Add.At(a, b)
	case OpSub:
		out = ops.Sub.At(a, b)
	case OpMul:
		out = ops.Mul.At(a, b)
	case OpDiv:
		if b == 0 {
			return 0, false
		}
		out = ops.Div.At(a, b)
	case OpPow:
		out = math.Pow(a, b)
	default:
		return 0, false
	}
	if math.IsNaN(out) || math.IsInf(out, 0) {
		return 0, false
	}
	return out, true
}
