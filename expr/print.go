package expr

import (
	"fmt"
	"math"
	"strconv"
)

var unaryNames = map[UnaryOp]string{
	OpNeg:  "neg",
	OpSqrt: "sqrt",
	OpLog:  "log",
	OpSin:  "sin",
	OpCos:  "cos",
	OpAbs:  "abs",
	OpExp:  "exp",
}

var binaryNames = map[BinaryOp]string{
	OpAdd: "add",
	OpSub: "sub",
	OpMul: "mul",
	OpDiv: "div",
	OpPow: "pow",
}

var binarySymbols = map[BinaryOp]string{
	OpAdd: " + ",
	OpSub: " - ",
	OpMul: "*",
	OpDiv: "/",
	OpPow: "**",
}

// Operator precedence for parenthesization. Atoms sit above every operator.
const (
	precAdd  = 1
	precMul  = 2
	precUn   = 3
	precPow  = 4
	precAtom = 5
)

func precedence(node Node) int {
	switch n := node.(type) {
	case *Const:
		if n.Val < 0 {
			return precUn
		}
		return precAtom
	case *Var:
		return precAtom
	case *Unary:
		if n.Op == OpNeg {
			return precUn
		}
		return precAtom // rendered as a function call
	case *Binary:
		switch n.Op {
		case OpAdd, OpSub:
			return precAdd
		case OpMul, OpDiv:
			return precMul
		default:
			return precPow
		}
	}
	return precAtom
}

// FormatFloat renders a literal the way the expression text expects:
// integral values print without a decimal point.
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func (c *Const) String() string {
	return FormatFloat(c.Val)
}

func (v *Var) String() string {
	return v.Name
}

func (u *Unary) String() string {
	if u.Op == OpNeg {
		child := u.Child.String()
		if precedence(u.Child) < precAtom {
			return "-(" + child + ")"
		}
		return "-" + child
	}
	return fmt.Sprintf("%s(%s)", unaryNames[u.Op], u.Child.String())
}

func (b *Binary) String() string {
	left := b.Left.String()
	right := b.Right.String()

	p := precedence(b)
	// Pow associates to the right, so a pow on the left needs parentheses.
	// Sub, div and pow are not associative on the right.
	if precedence(b.Left) < p || (b.Op == OpPow && precedence(b.Left) == p) {
		left = "(" + left + ")"
	}
	if precedence(b.Right) < p || (precedence(b.Right) == p && b.Op != OpAdd && b.Op != OpMul) {
		right = "(" + right + ")"
	}
	return left + binarySymbols[b.Op] + right
}

// PrefixString renders the tree in the operator-prefix call form used by
// genetic program representations, e.g. add(mul(X0, 0.5), X1).
func PrefixString(node Node) string {
	switch n := node.(type) {
	case *Const:
		return FormatFloat(n.Val)
	case *Var:
		return n.Name
	case *Unary:
		return fmt.Sprintf("%s(%s)", unaryNames[n.Op], PrefixString(n.Child))
	case *Binary:
		return fmt.Sprintf("%s(%s, %s)", binaryNames[n.Op], PrefixString(n.Left), PrefixString(n.Right))
	default:
		return ""
	}
}

func roundTo(v float64, decimals int) float64 {
	if decimals < 0 {
		return v
	}
	scale := math.Pow(10, float64(decimals))
	return math.Round(v*scale) / scale
}
