// Package expr implements the algebraic expression trees backing symbolic
// surrogate explanations: a tokenizing parser restricted to the fixed
// operator grammar, a rewrite-rule simplifier, literal rounding, symbol
// substitution and vectorized evaluation through the ops operator set.
package expr

// Node is an immutable algebraic expression tree node.
type Node interface {
	// String renders the node as infix text.
	String() string
	// Clone returns a deep copy.
	Clone() Node
	// NodeCount returns the total number of nodes in the subtree.
	NodeCount() int
}

// UnaryOp identifies a unary operation.
type UnaryOp int

const (
	OpNeg UnaryOp = iota
	OpSqrt
	OpLog
	OpSin
	OpCos
	OpAbs
	OpExp
)

// BinaryOp identifies a binary operation.
type BinaryOp int

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
	OpPow
)

// Const is a floating-point literal.
type Const struct {
	Val float64
}

// Var is a named variable, such as X0, X1, x, or a pursuit projection P1.
type Var struct {
	Name string
}

// Unary applies a unary operation to a child expression.
type Unary struct {
	Op    UnaryOp
	Child Node
}

// Binary applies a binary operation to two child expressions.
type Binary struct {
	Op          BinaryOp
	Left, Right Node
}

func (c *Const) Clone() Node { return &Const{Val: c.Val} }
func (v *Var) Clone() Node   { return &Var{Name: v.Name} }
func (u *Unary) Clone() Node {
	return &Unary{Op: u.Op, Child: u.Child.Clone()}
}
func (b *Binary) Clone() Node {
	return &Binary{Op: b.Op, Left: b.Left.Clone(), Right: b.Right.Clone()}
}

func (c *Const) NodeCount() int { return 1 }
func (v *Var) NodeCount() int   { return 1 }
func (u *Unary) NodeCount() int { return 1 + u.Child.NodeCount() }
func (b *Binary) NodeCount() int {
	return 1 + b.Left.NodeCount() + b.Right.NodeCount()
}

// OperationCount returns the number of primitive operator applications
// (non-leaf nodes) in the tree.
func OperationCount(node Node) int {
	switch n := node.(type) {
	case *Const, *Var:
		return 0
	case *Unary:
		return 1 + OperationCount(n.Child)
	case *Binary:
		return 1 + OperationCount(n.Left) + OperationCount(n.Right)
	default:
		return 0
	}
}

// Walk visits every node in pre-order.
func Walk(node Node, visit func(Node)) {
	visit(node)
	switch n := node.(type) {
	case *Unary:
		Walk(n.Child, visit)
	case *Binary:
		Walk(n.Left, visit)
		Walk(n.Right, visit)
	}
}

// SubstituteVar returns a copy of the tree with every variable named name
// replaced by a clone of replacement.
func SubstituteVar(node Node, name string, replacement Node) Node {
	switch n := node.(type) {
	case *Const:
		return n.Clone()
	case *Var:
		if n.Name == name {
			return replacement.Clone()
		}
		return n.Clone()
	case *Unary:
		return &Unary{Op: n.Op, Child: SubstituteVar(n.Child, name, replacement)}
	case *Binary:
		return &Binary{
			Op:    n.Op,
			Left:  SubstituteVar(n.Left, name, replacement),
			Right: SubstituteVar(n.Right, name, replacement),
		}
	default:
		return node
	}
}

// RoundLiterals returns a copy of the tree with every floating literal, at
// any depth, rounded to the given number of decimals. Rounding an already
// rounded tree is a no-op.
func RoundLiterals(node Node, decimals int) Node {
	switch n := node.(type) {
	case *Const:
		return &Const{Val: roundTo(n.Val, decimals)}
	case *Var:
		return n.Clone()
	case *Unary:
		return &Unary{Op: n.Op, Child: RoundLiterals(n.Child, decimals)}
	case *Binary:
		return &Binary{
			Op:    n.Op,
			Left:  RoundLiterals(n.Left, decimals),
			Right: RoundLiterals(n.Right, decimals),
		}
	default:
		return node
	}
}
