package calc

import "strconv"

// Value is the result of evaluating an expression: either a 64-bit signed
// integer or a 64-bit float. Values are immutable; arithmetic always
// produces a new Value. The zero Value is the float 0.
type Value struct {
	f     float64
	i     int64
	isInt bool
}

// Int returns an integer Value.
func Int(v int64) Value {
	return Value{i: v, isInt: true}
}

// Float returns a float Value.
func Float(v float64) Value {
	return Value{f: v}
}

// IsInt reports whether v holds an integer.
func (v Value) IsInt() bool {
	return v.isInt
}

// Int64 returns the integer held by v, or zero if v holds a float.
func (v Value) Int64() int64 {
	return v.i
}

// Float64 returns the float held by v, promoting an integer.
func (v Value) Float64() float64 {
	if v.isInt {
		return float64(v.i)
	}
	return v.f
}

// String renders v the way the debug printers label numbers: integers in
// plain decimal and floats in shortest %g form.
func (v Value) String() string {
	if v.isInt {
		return strconv.FormatInt(v.i, 10)
	}
	return strconv.FormatFloat(v.f, 'g', -1, 64)
}
