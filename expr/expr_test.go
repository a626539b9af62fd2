package expr

import (
	"math"
	"testing"

	"github.com/symgo-ml/symgo/pkg/errors"
)

func mustParse(t *testing.T, text string) Node {
	t.Helper()
	node, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", text, err)
	}
	return node
}

func TestParsePrefixForm(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "genetic program", text: "add(mul(X0, 0.5), X1)", want: "X0*0.5 + X1"},
		{name: "bracketed variable indices", text: "sub(X[0], X[1])", want: "X0 - X1"},
		{name: "nested unary", text: "sqrt(abs(X0))", want: "sqrt(abs(X0))"},
		{name: "neg call", text: "neg(X0)", want: "-X0"},
		{name: "pow call", text: "pow(X0, 2)", want: "X0**2"},
		{name: "clipped exp call", text: "exp(X0)", want: "exp(X0)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mustParse(t, tt.text).String()
			if got != tt.want {
				t.Errorf("Parse(%q).String() = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestParseInfixForm(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "precedence", text: "1 + 2*X0", want: "1 + 2*X0"},
		{name: "parenthesized", text: "(1 + X0)*X1", want: "(1 + X0)*X1"},
		{name: "power right assoc", text: "X0**2**3", want: "X0**(2**3)"},
		{name: "caret power", text: "X0^2", want: "X0**2"},
		{name: "unary minus", text: "-X0 + 3", want: "-X0 + 3"},
		{name: "scientific literal", text: "1.5e-3*X0", want: "0.0015*X0"},
		{name: "projection symbols", text: "3/(1 + exp(-P1))", want: "3/(1 + exp(-P1))"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mustParse(t, tt.text).String()
			if got != tt.want {
				t.Errorf("Parse(%q).String() = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "unknown function", text: "tan(X0)"},
		{name: "wrong arity", text: "add(X0)"},
		{name: "dangling operator", text: "X0 +"},
		{name: "unbalanced parens", text: "(X0 + 1"},
		{name: "stray character", text: "X0 $ 2"},
		{name: "trailing garbage", text: "X0 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.text)
			if err == nil {
				t.Fatalf("Parse(%q) should fail", tt.text)
			}
			var parseErr *errors.ParseError
			if !errors.As(err, &parseErr) {
				t.Errorf("error is not a ParseError: %v", err)
			}
		})
	}
}

func TestStringParseRoundTrip(t *testing.T) {
	corpus := []string{
		"add(mul(X0, 0.5), sub(X1, 1.25))",
		"div(sin(X0), cos(X1))",
		"neg(sqrt(abs(X0)))",
		"mul(add(X0, X1), add(X0, X1))",
		"sub(exp(X0), log(X1))",
		"pow(add(X0, 1), 3)",
	}

	for _, text := range corpus {
		node := Simplify(mustParse(t, text))
		again := mustParse(t, node.String())
		if again.String() != node.String() {
			t.Errorf("round trip of %q: %q != %q", text, again.String(), node.String())
		}
		// Algebraic equivalence spot check at a few points.
		for _, x := range []float64{0.5, 1.7, 3.0} {
			vars := map[string][]float64{"X0": {x}, "X1": {x + 0.5}}
			a, err1 := Eval(node, vars)
			b, err2 := Eval(again, vars)
			if err1 != nil || err2 != nil {
				t.Fatalf("eval failed: %v %v", err1, err2)
			}
			if math.Abs(a[0]-b[0]) > 1e-9 {
				t.Errorf("%q differs from reparse at x=%v: %v vs %v", text, x, a[0], b[0])
			}
		}
	}
}

func TestSimplify(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "add zero", text: "add(X0, 0)", want: "X0"},
		{name: "mul one", text: "mul(1, X0)", want: "X0"},
		{name: "mul zero", text: "mul(X0, 0)", want: "0"},
		{name: "self subtraction", text: "sub(X0, X0)", want: "0"},
		{name: "self division", text: "div(X0, X0)", want: "1"},
		{name: "double negation", text: "neg(neg(X0))", want: "X0"},
		{name: "constant folding", text: "add(2, mul(3, 4))", want: "14"},
		{name: "fold through exp clip", text: "exp(100)", want: "100000"},
		{name: "add negative constant", text: "add(X0, -2)", want: "X0 - 2"},
		{name: "sub negative constant", text: "sub(X0, -2)", want: "X0 + 2"},
		{name: "pow zero", text: "pow(X0, 0)", want: "1"},
		{name: "pow one", text: "pow(X0, 1)", want: "X0"},
		{name: "div by negative one", text: "div(X0, -1)", want: "-X0"},
		{name: "nested", text: "mul(add(X0, 0), div(X1, X1))", want: "X0"},
		{name: "log outside domain kept", text: "log(-1)", want: "log(-1)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Simplify(mustParse(t, tt.text)).String()
			if got != tt.want {
				t.Errorf("Simplify(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestSimplifyNeverIncreasesOperationCount(t *testing.T) {
	corpus := []string{
		"add(mul(X0, 1), 0)",
		"div(mul(X0, X1), mul(X0, X1))",
		"sub(add(X0, X1), add(X0, X1))",
		"exp(mul(X0, 0))",
		"add(sin(X0), mul(cos(X1), 1))",
		"sqrt(abs(mul(X0, X0)))",
		"pow(add(X0, 0), 1)",
	}
	for _, text := range corpus {
		raw := mustParse(t, text)
		simplified := Simplify(raw)
		if OperationCount(simplified) > OperationCount(raw) {
			t.Errorf("simplification increased operation count for %q: %d > %d",
				text, OperationCount(simplified), OperationCount(raw))
		}
	}
}

func TestRoundLiterals(t *testing.T) {
	node := mustParse(t, "add(mul(X0, 0.123456), sin(add(X1, 2.718281828)))")
	rounded := RoundLiterals(node, 3)

	want := "X0*0.123 + sin(X1 + 2.718)"
	if rounded.String() != want {
		t.Errorf("RoundLiterals = %q, want %q", rounded.String(), want)
	}

	// Idempotent: rounding the rounded tree is a no-op.
	again := RoundLiterals(rounded, 3)
	if again.String() != rounded.String() {
		t.Errorf("rounding is not idempotent: %q != %q", again.String(), rounded.String())
	}
}

func TestRoundLiteralsDepth(t *testing.T) {
	// Literals introduced arbitrarily deep must be rounded too.
	node := mustParse(t, "div(1, add(1, exp(mul(-1.987654, X0))))")
	rounded := RoundLiterals(node, 2)

	found := false
	Walk(rounded, func(n Node) {
		if c, ok := n.(*Const); ok && c.Val == -1.99 {
			found = true
		}
	})
	if !found {
		t.Errorf("deep literal not rounded: %s", rounded.String())
	}
}

func TestSubstituteVar(t *testing.T) {
	node := mustParse(t, "add(X0, mul(X0, X1))")
	renamed := SubstituteVar(node, "X0", &Var{Name: "x"})

	if renamed.String() != "x + x*X1" {
		t.Errorf("SubstituteVar = %q, want %q", renamed.String(), "x + x*X1")
	}
	// Original tree untouched.
	if node.String() != "X0 + X0*X1" {
		t.Errorf("source tree mutated: %q", node.String())
	}
}

func TestEvalClippedExp(t *testing.T) {
	node := mustParse(t, "exp(X0)")
	out, err := Eval(node, map[string][]float64{"X0": {0, 1e10}})
	if err != nil {
		t.Fatalf("Eval failed: %v", err)
	}
	if out[0] != 1 {
		t.Errorf("exp(0) = %v, want 1", out[0])
	}
	if out[1] != 100000 {
		t.Errorf("exp(1e10) = %v, want exactly 100000", out[1])
	}
}

func TestEvalUnboundVariable(t *testing.T) {
	node := mustParse(t, "add(X0, X1)")
	if _, err := Eval(node, map[string][]float64{"X0": {1}}); err == nil {
		t.Error("Eval with unbound variable should fail")
	}
}

func TestPrefixString(t *testing.T) {
	node := mustParse(t, "add(mul(X0, 0.5), X1)")
	want := "add(mul(X0, 0.5), X1)"
	if got := PrefixString(node); got != want {
		t.Errorf("PrefixString = %q, want %q", got, want)
	}
}

func TestNodeCount(t *testing.T) {
	node := mustParse(t, "add(mul(X0, 0.5), X1)")
	if got := node.NodeCount(); got != 5 {
		t.Errorf("NodeCount = %d, want 5", got)
	}
	if got := OperationCount(node); got != 2 {
		t.Errorf("OperationCount = %d, want 2", got)
	}
}
