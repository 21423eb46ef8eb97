package calc

import (
	"math"
	"strconv"
)

// builtin is one entry in the function whitelist: a fixed arity and the
// evaluation rule. The same table tells the parser which identifiers may be
// called and tells the evaluator how to dispatch.
type builtin struct {
	arity int
	apply func(pos int, args []Value) (Value, error)
}

var builtins = map[string]builtin{
	"abs":  {1, applyAbs},
	"sqrt": {1, guarded("sqrt", func(x float64) bool { return x >= 0 }, math.Sqrt)},
	"pow":  {2, applyPow},
	"sin":  {1, monadic(math.Sin)},
	"cos":  {1, monadic(math.Cos)},
	"tan":  {1, monadic(math.Tan)},
	"log":  {1, guarded("log", func(x float64) bool { return x > 0 }, math.Log10)},
	"ln":   {1, guarded("ln", func(x float64) bool { return x > 0 }, math.Log)},
}

// consts are the named constants the evaluator resolves bare identifiers
// against; any other name is an unknown variable.
var consts = map[string]float64{
	"pi": math.Pi,
	"e":  math.E,
}

// monadic wraps a float function of one variable with no domain
// restriction. The argument is promoted to float.
func monadic(f func(float64) float64) func(int, []Value) (Value, error) {
	return func(pos int, args []Value) (Value, error) {
		return Float(f(args[0].Float64())), nil
	}
}

// guarded wraps a float function of one variable whose domain is limited by
// a predicate.
func guarded(name string, ok func(float64) bool, f func(float64) float64) func(int, []Value) (Value, error) {
	return func(pos int, args []Value) (Value, error) {
		x := args[0].Float64()
		if !ok(x) {
			return Value{}, &DomainError{Off: pos, Func: name, X: args[0]}
		}
		return Float(f(x)), nil
	}
}

// applyAbs preserves the integer type of its argument; every other builtin
// produces a float.
func applyAbs(pos int, args []Value) (Value, error) {
	v := args[0]
	if !v.IsInt() {
		return Float(math.Abs(v.Float64())), nil
	}
	n := v.Int64()
	if n >= 0 {
		return v, nil
	}
	if n == math.MinInt64 {
		return Value{}, &OverflowError{Off: pos, Op: "abs"}
	}
	return Int(-n), nil
}

func applyPow(pos int, args []Value) (Value, error) {
	return Float(math.Pow(args[0].Float64(), args[1].Float64())), nil
}

// DomainError is an error returned when a function is called on an argument
// outside its domain.
type DomainError struct {
	// Off is the byte offset of the call.
	Off int
	// Func is the name of the function.
	Func string
	// X is the out-of-domain argument.
	X Value
}

func (err *DomainError) Error() string {
	return err.X.String() + " outside domain of " + err.Func
}

func (err *DomainError) Pos() int {
	return err.Off
}

// ArityError is an error from calling a function with the wrong number of
// arguments.
type ArityError struct {
	// Off is the byte offset of the call.
	Off int
	// Func is the name of the function.
	Func string
	// Arity is the argument count Func requires.
	Arity int
	// Len is the number of arguments the call supplied.
	Len int
}

func (err *ArityError) Error() string {
	return "wrong argument count for " + err.Func + ": want " +
		strconv.Itoa(err.Arity) + ", got " + strconv.Itoa(err.Len)
}

func (err *ArityError) Pos() int {
	return err.Off
}
