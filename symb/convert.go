package symb

import (
	"fmt"
	"unicode/utf8"

	"github.com/symgo-ml/symgo/expr"
	"github.com/symgo-ml/symgo/pkg/errors"
)

// MaxTextLength is the conversion length guard, in characters: textual
// programs longer than this are returned raw instead of parsed, trading completeness for
// robustness on pathological expressions.
const MaxTextLength = 500

// ComplexityUnknown is the sentinel operation count for degraded
// conversions. Aggregations must exclude records carrying it.
const ComplexityUnknown = -1

// NoRounding disables literal rounding when passed as the decimals argument
// of Convert.
const NoRounding = -1

// Conversion is the result of normalizing a fitted model: either a
// canonical expression tree or, past the length guard, the raw program text
// as a degraded value.
type Conversion struct {
	Expr expr.Node
	Raw  string
}

// Degraded reports whether the conversion holds raw text instead of a
// parsed expression.
func (c Conversion) Degraded() bool { return c.Expr == nil }

// String renders the canonical expression, or the raw text for degraded
// conversions.
func (c Conversion) String() string {
	if c.Degraded() {
		return c.Raw
	}
	return c.Expr.String()
}

// OperationCount returns the number of primitive operator applications in
// the canonical expression, or ComplexityUnknown for degraded conversions.
func (c Conversion) OperationCount() int {
	if c.Degraded() {
		return ComplexityUnknown
	}
	return expr.OperationCount(c.Expr)
}

// Convert normalizes a fitted symbolic model into a simplified, optionally
// rounded expression.
//
// The model's textual form is parsed against the fixed operator grammar and
// simplified. For one-dimensional inputs the variable X0 is renamed to x.
// For pursuit models every projection symbol is substituted with its ridge
// function, in index order, before rounding so newly introduced literals are
// rounded too. decimals >= 0 rounds every floating literal at any depth;
// NoRounding leaves literals untouched.
//
// Texts longer than MaxTextLength are returned raw as a degraded Conversion
// without error. An unsupported model variant is a caller bug and fails
// with UnknownModelKindError; parse failures propagate for the caller to
// handle at the sweep level.
func Convert(model Model, nDim, decimals int) (Conversion, error) {
	if model == nil {
		return Conversion{}, errors.NewUnknownModelKindError("Convert", "<nil>")
	}
	switch model.Kind() {
	case KindGeneticProgram, KindMetaModel, KindPursuitModel:
	default:
		return Conversion{}, errors.NewUnknownModelKindError("Convert", string(model.Kind()))
	}

	text := model.ExpressionText()
	if n := utf8.RuneCountInString(text); n > MaxTextLength {
		errors.Warn(errors.Newf(
			"expression of length %d too long to convert, returning raw string", n))
		return Conversion{Raw: text}, nil
	}

	node, err := expr.Parse(text)
	if err != nil {
		return Conversion{}, err
	}
	node = expr.Simplify(node)

	if nDim == 1 {
		node = expr.SubstituteVar(node, "X0", &expr.Var{Name: "x"})
	}

	if pursuit, ok := model.(*PursuitModel); ok {
		for i, ridge := range pursuit.Projections() {
			node = expr.SubstituteVar(node, fmt.Sprintf("P%d", i+1), ridge)
		}
	}

	if decimals >= 0 {
		node = expr.RoundLiterals(node, decimals)
	}

	return Conversion{Expr: node}, nil
}

// Readable converts a model to a short plot-label expression: three
// decimals when the rendering stays compact, one decimal otherwise, and an
// empty string when even that is too long or conversion fails.
func Readable(model Model, nDim int) string {
	const compact, loose = 70, 80
	limit := compact
	if nDim > 1 {
		limit = loose
	}

	for _, decimals := range []int{3, 1} {
		conv, err := Convert(model, nDim, decimals)
		if err != nil {
			return ""
		}
		if s := conv.String(); len(s) < limit {
			return s
		}
	}
	return ""
}
