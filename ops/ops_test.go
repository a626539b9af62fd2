package ops

import (
	"math"
	"testing"
)

func TestSafeExpClipped(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  float64
	}{
		{name: "extreme input clips to cap", input: 1e10, want: 100000},
		{name: "positive infinity clips to cap", input: math.Inf(1), want: 100000},
		{name: "moderate input is exact", input: 1.0, want: math.E},
		{name: "zero", input: 0.0, want: 1.0},
		{name: "large negative underflows to zero", input: -1e10, want: 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SafeExp(tt.input)
			if math.IsInf(got, 0) || math.IsNaN(got) {
				t.Fatalf("SafeExp(%v) = %v, must be finite", tt.input, got)
			}
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("SafeExp(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestExpOperatorVectorized(t *testing.T) {
	out, err := Exp.Apply([]float64{0, 1e10, -2})
	if err != nil {
		t.Fatalf("Exp.Apply returned error: %v", err)
	}
	if out[0] != 1.0 {
		t.Errorf("exp(0) = %v, want 1", out[0])
	}
	if out[1] != 100000 {
		t.Errorf("exp(1e10) = %v, want exactly 100000", out[1])
	}
	if math.Abs(out[2]-math.Exp(-2)) > 1e-15 {
		t.Errorf("exp(-2) = %v, want %v", out[2], math.Exp(-2))
	}
}

func TestDivFollowsFloatConvention(t *testing.T) {
	out, err := Div.Apply([]float64{1, -1, 0}, []float64{0, 0, 0})
	if err != nil {
		t.Fatalf("Div.Apply returned error: %v", err)
	}
	if !math.IsInf(out[0], 1) {
		t.Errorf("1/0 = %v, want +Inf", out[0])
	}
	if !math.IsInf(out[1], -1) {
		t.Errorf("-1/0 = %v, want -Inf", out[1])
	}
	if !math.IsNaN(out[2]) {
		t.Errorf("0/0 = %v, want NaN", out[2])
	}
}

func TestApplyValidation(t *testing.T) {
	if _, err := Add.Apply([]float64{1, 2}); err == nil {
		t.Error("Add with one argument should fail")
	}
	if _, err := Add.Apply([]float64{1, 2}, []float64{1}); err == nil {
		t.Error("Add with mismatched lengths should fail")
	}
}

func TestFunctionSet(t *testing.T) {
	set := FunctionSet()
	wantNames := []string{"add", "sub", "mul", "div", "sqrt", "log", "sin", "cos", "abs", "exp"}
	if len(set) != len(wantNames) {
		t.Fatalf("FunctionSet has %d operators, want %d", len(set), len(wantNames))
	}
	for i, f := range set {
		if f.Name != wantNames[i] {
			t.Errorf("FunctionSet[%d] = %q, want %q", i, f.Name, wantNames[i])
		}
		wantArity := Arity2
		if i >= 4 {
			wantArity = Arity1
		}
		if f.Arity != wantArity {
			t.Errorf("%s arity = %d, want %d", f.Name, f.Arity, wantArity)
		}
	}
}

func TestLookup(t *testing.T) {
	if f, ok := Lookup("mul"); !ok || f.Name != "mul" {
		t.Errorf("Lookup(mul) = %+v, %v", f, ok)
	}
	if _, ok := Lookup("tan"); ok {
		t.Error("Lookup(tan) should not resolve")
	}
}
