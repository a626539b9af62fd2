// Package symb converts fitted symbolic surrogate models into canonical,
// simplified, rounded algebraic expressions and derives a reproducible
// operation-count complexity metric from them.
//
// Three model variants are supported: genetic programs (textual prefix
// representation over positional variables X0, X1, ...), symbolic
// meta-models (closed-form expression), and symbolic pursuit models
// (closed-form expression over learned projection symbols P1, P2, ... with
// one ridge function per projection). The fitting procedures themselves are
// external; this package only consumes their results.
package symb

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/symgo-ml/symgo/expr"
	"github.com/symgo-ml/symgo/pkg/errors"
)

// ModelKind tags a fitted symbolic model variant.
type ModelKind string

const (
	KindGeneticProgram ModelKind = "genetic_program"
	KindMetaModel      ModelKind = "meta_model"
	KindPursuitModel   ModelKind = "pursuit_model"
)

// Model is a fitted symbolic surrogate model. Fitting happens externally;
// the pipeline only needs the textual expression, the raw program size and
// predictions.
type Model interface {
	// Kind identifies the model variant.
	Kind() ModelKind
	// ExpressionText returns the model's own textual representation:
	// operator-prefix program text for genetic programs, the expression's
	// string form for meta and pursuit models.
	ExpressionText() string
	// RawLength returns the size of the fitted model tree before any
	// normalization.
	RawLength() int
	// Predict evaluates the model on a samples-by-features matrix.
	Predict(X *mat.Dense) (*mat.VecDense, error)
}

// GeneticProgram owns the program tree evolved by a genetic-programming
// symbolic regressor.
type GeneticProgram struct {
	program expr.Node
}

// NewGeneticProgram wraps a fitted program tree.
func NewGeneticProgram(program expr.Node) *GeneticProgram {
	return &GeneticProgram{program: program}
}

// ParseGeneticProgram builds a GeneticProgram from operator-prefix program
// text, e.g. "add(mul(X0, 0.5), X1)".
func ParseGeneticProgram(text string) (*GeneticProgram, error) {
	program, err := expr.Parse(text)
	if err != nil {
		return nil, err
	}
	return &GeneticProgram{program: program}, nil
}

func (g *GeneticProgram) Kind() ModelKind { return KindGeneticProgram }

func (g *GeneticProgram) ExpressionText() string { return expr.PrefixString(g.program) }

func (g *GeneticProgram) RawLength() int { return g.program.NodeCount() }

func (g *GeneticProgram) Predict(X *mat.Dense) (*mat.VecDense, error) {
	return predictExpr(g.program, X)
}

// MetaModel exposes a closed-form expression fitted by a symbolic
// meta-model.
type MetaModel struct {
	expression expr.Node
}

// NewMetaModel wraps the fitted expression.
func NewMetaModel(expression expr.Node) *MetaModel {
	return &MetaModel{expression: expression}
}

func (m *MetaModel) Kind() ModelKind { return KindMetaModel }

func (m *MetaModel) ExpressionText() string { return m.expression.String() }

func (m *MetaModel) RawLength() int { return m.expression.NodeCount() }

func (m *MetaModel) Predict(X *mat.Dense) (*mat.VecDense, error) {
	return predictExpr(m.expression, X)
}

// PursuitModel exposes a closed-form expression over projection symbols
// P1..Pn plus one learned ridge-function expression per projection. Every
// projection symbol appearing in the top-level expression must have a ridge
// entry; NewPursuitModel enforces the invariant.
type PursuitModel struct {
	expression expr.Node
	ridges     []expr.Node // ridges[i] replaces P{i+1}
}

// NewPursuitModel wraps the fitted top-level expression and its ridge
// functions, in projection-index order.
func NewPursuitModel(expression expr.Node, ridges []expr.Node) (*PursuitModel, error) {
	var missing string
	expr.Walk(expression, func(n expr.Node) {
		v, ok := n.(*expr.Var)
		if !ok || missing != "" {
			return
		}
		var idx int
		if _, err := fmt.Sscanf(v.Name, "P%d", &idx); err == nil {
			if idx < 1 || idx > len(ridges) {
				missing = v.Name
			}
		}
	})
	if missing != "" {
		return nil, errors.NewValueError("NewPursuitModel",
			fmt.Sprintf("projection symbol %s has no ridge function", missing))
	}
	return &PursuitModel{expression: expression, ridges: ridges}, nil
}

func (p *PursuitModel) Kind() ModelKind { return KindPursuitModel }

func (p *PursuitModel) ExpressionText() string { return p.expression.String() }

func (p *PursuitModel) RawLength() int {
	n := p.expression.NodeCount()
	for _, ridge := range p.ridges {
		n += ridge.NodeCount()
	}
	return n
}

// Projections returns the ridge-function expressions in projection-index
// order (entry i corresponds to symbol P{i+1}).
func (p *PursuitModel) Projections() []expr.Node {
	out := make([]expr.Node, len(p.ridges))
	for i, ridge := range p.ridges {
		out[i] = ridge.Clone()
	}
	return out
}

func (p *PursuitModel) Predict(X *mat.Dense) (*mat.VecDense, error) {
	substituted := p.expression
	for i, ridge := range p.ridges {
		substituted = expr.SubstituteVar(substituted, fmt.Sprintf("P%d", i+1), ridge)
	}
	return predictExpr(substituted, X)
}

// predictExpr evaluates an expression over the columns of X bound to the
// positional variables X0..X{d-1} (and x as an alias in one dimension).
func predictExpr(node expr.Node, X *mat.Dense) (*mat.VecDense, error) {
	rows, cols := X.Dims()
	vars := make(map[string][]float64, cols+1)
	for j := 0; j < cols; j++ {
		col := make([]float64, rows)
		mat.Col(col, j, X)
		vars[fmt.Sprintf("X%d", j)] = col
	}
	if cols == 1 {
		vars["x"] = vars["X0"]
	}

	out, err := expr.Eval(node, vars)
	if err != nil {
		return nil, err
	}
	return mat.NewVecDense(len(out), out), nil
}
