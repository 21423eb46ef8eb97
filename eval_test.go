package calc_test

import (
	"errors"
	"math"
	"testing"

	"github.com/athagen/calc"
)

func evalInt(t *testing.T, src string) int64 {
	t.Helper()
	v, err := calc.Calculate(src, calc.Options{})
	if err != nil {
		t.Fatalf("%q failed to evaluate: %v", src, err)
	}
	if !v.IsInt() {
		t.Fatalf("%q: want integer result, got float %v", src, v)
	}
	return v.Int64()
}

func evalFloat(t *testing.T, src string) float64 {
	t.Helper()
	v, err := calc.Calculate(src, calc.Options{})
	if err != nil {
		t.Fatalf("%q failed to evaluate: %v", src, err)
	}
	if v.IsInt() {
		t.Fatalf("%q: want float result, got integer %v", src, v)
	}
	return v.Float64()
}

func TestEvalInt(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want int64
	}{
		{"num", "42", 42},
		{"add", "4+5+6", 15},
		{"sub", "4-5-6", -7},
		{"mul", "4*5*6", 120},
		{"precedence", "2+3*4", 14},
		{"parens", "(2+3)*4", 20},
		{"mod", "10 % 3", 1},
		{"mod-negative", "-10 % 3", -1},
		{"neg", "-5", -5},
		{"pos", "+5", 5},
		{"double-neg", "--5", 5},
		{"abs-int", "abs(-3)", 3},
		{"abs-int-pos", "abs(3)", 3},
		{"max-int", "9223372036854775806 + 1", math.MaxInt64},
		{"min-int-mod", "(-9223372036854775807 - 1) % -1", 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := evalInt(t, c.src); got != c.want {
				t.Errorf("%q: want %d, got %d", c.src, c.want, got)
			}
		})
	}
}

func TestEvalFloat(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want float64
	}{
		// division always yields a float, even for exact integer quotients
		{"div-int", "6 / 2", 3},
		{"div", "1 / 4", 0.25},
		{"promote-add", "1 + 2.5", 3.5},
		{"promote-mul", "2 * 1.5", 3},
		{"pow-right-assoc", "2 ^ 3 ^ 2", 512},
		{"pow-int-operands", "2 ^ 3", 8},
		{"pow-fractional", "4 ^ 0.5", 2},
		{"neg-pow", "-2 ^ 2", -4},
		{"parens-neg-pow", "(-2) ^ 2", 4},
		{"pi", "pi", math.Pi},
		{"e", "e", math.E},
		{"pow-func", "pow(2, 3)", 8},
		{"sqrt", "sqrt(9)", 3},
		{"abs-float", "abs(-3.5)", 3.5},
		{"sin", "sin(0)", 0},
		{"cos", "cos(0)", 1},
		{"tan", "tan(0)", 0},
		{"ln-e", "ln(e)", 1},
		{"log", "log(1000)", 3},
		{"exponent-literal", "1.5e2 + 0.5", 150.5},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := evalFloat(t, c.src)
			if got != c.want && math.Abs(got-c.want) > 1e-12 {
				t.Errorf("%q: want %g, got %g", c.src, c.want, got)
			}
		})
	}
}

func TestEvalFaults(t *testing.T) {
	var (
		divZero  *calc.DivideByZeroError
		floatMod *calc.FloatModuloError
		overflow *calc.OverflowError
		domain   *calc.DomainError
		arity    *calc.ArityError
		name     *calc.NameError
	)
	cases := []struct {
		name   string
		src    string
		target any
	}{
		{"div-zero-int", "1 / 0", &divZero},
		{"div-zero-float", "1 / 0.0", &divZero},
		{"div-zero-expr", "1 / (2 - 2)", &divZero},
		{"mod-zero", "5 % 0", &divZero},
		{"mod-float-rhs", "10 % 2.0", &floatMod},
		{"mod-float-lhs", "10.0 % 2", &floatMod},
		{"add-overflow", "9223372036854775807 + 1", &overflow},
		{"sub-overflow", "-9223372036854775807 - 2", &overflow},
		{"mul-overflow", "9223372036854775807 * 2", &overflow},
		{"neg-overflow", "-(-9223372036854775807 - 1)", &overflow},
		{"abs-overflow", "abs(-9223372036854775807 - 1)", &overflow},
		{"sqrt-negative", "sqrt(-1)", &domain},
		{"log-zero", "log(0)", &domain},
		{"ln-zero", "ln(0)", &domain},
		{"ln-negative", "ln(-2.5)", &domain},
		{"arity-low", "pow(1)", &arity},
		{"arity-high", "sqrt(1, 2)", &arity},
		{"arity-zero", "sqrt()", &arity},
		{"unknown-variable", "foo", &name},
		{"unknown-in-expr", "1 + bar * 2", &name},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := calc.Calculate(c.src, calc.Options{})
			if err == nil {
				t.Fatalf("%q: want error, got none", c.src)
			}
			if !errors.As(err, c.target) {
				t.Errorf("%q: wrong error type: %v", c.src, err)
			}
		})
	}
}

// Faults do not short-circuit past the first failing subtree: arguments
// evaluate left to right and the first fault wins.
func TestEvalFaultOrder(t *testing.T) {
	_, err := calc.Calculate("pow(foo, 1/0)", calc.Options{})
	var ne *calc.NameError
	if !errors.As(err, &ne) {
		t.Fatalf("want NameError from the first argument, got %v", err)
	}
	if ne.Name != "foo" {
		t.Errorf("want foo, got %q", ne.Name)
	}
}

func TestEvalFaultPositions(t *testing.T) {
	cases := []struct {
		src string
		off int
	}{
		{"1 / 0", 2},
		{"10 % 2.0", 3},
		{"foo", 0},
		{"1 + foo", 4},
		{"sqrt(-1)", 0},
		{"1 + sqrt(-1)", 4},
	}
	for _, c := range cases {
		_, err := calc.Calculate(c.src, calc.Options{})
		var ie calc.InputError
		if !errors.As(err, &ie) {
			t.Errorf("%q: error carries no position: %v", c.src, err)
			continue
		}
		if ie.Pos() != c.off {
			t.Errorf("%q: fault at %d, want %d", c.src, ie.Pos(), c.off)
		}
	}
}

// Unknown names fault at evaluation, not at parse time, unless they are
// called like a function.
func TestUnknownNameSplit(t *testing.T) {
	_, err := calc.Calculate("foo", calc.Options{})
	var ne *calc.NameError
	if !errors.As(err, &ne) {
		t.Fatalf("bare foo: want NameError, got %v", err)
	}
	_, err = calc.Calculate("foo(1)", calc.Options{})
	var pe *calc.PrimaryError
	if !errors.As(err, &pe) {
		t.Fatalf("foo(1): want PrimaryError, got %v", err)
	}
}

// NaN propagates as a value, not a fault: the power operator has no domain
// restriction.
func TestEvalPowNaN(t *testing.T) {
	v, err := calc.Calculate("(-2) ^ 0.5", calc.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if v.IsInt() || !math.IsNaN(v.Float64()) {
		t.Errorf("want float NaN, got %v", v)
	}
}
