package calc

import (
	"math"
	"strconv"
)

// Eval walks the tree and produces the expression's value. Evaluation is
// pure recursion over the immutable arena: each node is visited at most
// once and nothing is shared or retained between calls, so distinct Eval
// calls are independent.
func (e *Expr) Eval() (Value, error) {
	return e.eval(e.root)
}

func (e *Expr) eval(i int) (Value, error) {
	n := &e.nodes[i]
	switch n.kind {
	case nodeNum:
		return n.val, nil
	case nodeName:
		if c, ok := consts[n.name]; ok {
			return Float(c), nil
		}
		return Value{}, &NameError{Off: n.pos, Name: n.name}
	case nodeCall:
		fn, ok := builtins[n.name]
		if !ok {
			panic("calc: call of unknown function " + n.name)
		}
		if len(n.args) != fn.arity {
			return Value{}, &ArityError{Off: n.pos, Func: n.name, Arity: fn.arity, Len: len(n.args)}
		}
		args := make([]Value, len(n.args))
		for k, a := range n.args {
			v, err := e.eval(a)
			if err != nil {
				return Value{}, err
			}
			args[k] = v
		}
		return fn.apply(n.pos, args)
	case nodePos:
		return e.eval(n.left)
	case nodeNeg:
		v, err := e.eval(n.left)
		if err != nil {
			return Value{}, err
		}
		if !v.IsInt() {
			return Float(-v.Float64()), nil
		}
		x := v.Int64()
		if x == math.MinInt64 {
			return Value{}, &OverflowError{Off: n.pos, Op: "-"}
		}
		return Int(-x), nil
	case nodeAdd, nodeSub, nodeMul, nodeDiv, nodeMod, nodePow:
		l, err := e.eval(n.left)
		if err != nil {
			return Value{}, err
		}
		r, err := e.eval(n.right)
		if err != nil {
			return Value{}, err
		}
		return combine(n.kind, n.pos, l, r)
	default:
		panic("calc: invalid AST node " + n.kind.String())
	}
}

// combine applies a binary operator under the promotion rules: + - * stay
// integer when both operands are integers (checked for overflow), / and ^
// always compute in float, and % is integer-only.
func combine(kind nodeKind, pos int, l, r Value) (Value, error) {
	switch kind {
	case nodeAdd, nodeSub, nodeMul:
		if l.IsInt() && r.IsInt() {
			return intArith(kind, pos, l.Int64(), r.Int64())
		}
		x, y := l.Float64(), r.Float64()
		switch kind {
		case nodeAdd:
			return Float(x + y), nil
		case nodeSub:
			return Float(x - y), nil
		default:
			return Float(x * y), nil
		}
	case nodeDiv:
		y := r.Float64()
		if y == 0 {
			return Value{}, &DivideByZeroError{Off: pos, Op: "/"}
		}
		return Float(l.Float64() / y), nil
	case nodeMod:
		if !l.IsInt() || !r.IsInt() {
			return Value{}, &FloatModuloError{Off: pos}
		}
		y := r.Int64()
		if y == 0 {
			return Value{}, &DivideByZeroError{Off: pos, Op: "%"}
		}
		return Int(l.Int64() % y), nil
	case nodePow:
		return Float(math.Pow(l.Float64(), r.Float64())), nil
	}
	panic("calc: invalid operator " + kind.String())
}

// intArith performs checked 64-bit integer addition, subtraction, and
// multiplication.
func intArith(kind nodeKind, pos int, x, y int64) (Value, error) {
	switch kind {
	case nodeAdd:
		if (y > 0 && x > math.MaxInt64-y) || (y < 0 && x < math.MinInt64-y) {
			return Value{}, &OverflowError{Off: pos, Op: "+"}
		}
		return Int(x + y), nil
	case nodeSub:
		if (y < 0 && x > math.MaxInt64+y) || (y > 0 && x < math.MinInt64+y) {
			return Value{}, &OverflowError{Off: pos, Op: "-"}
		}
		return Int(x - y), nil
	case nodeMul:
		if x == 0 || y == 0 {
			return Int(0), nil
		}
		if (x == -1 && y == math.MinInt64) || (y == -1 && x == math.MinInt64) {
			return Value{}, &OverflowError{Off: pos, Op: "*"}
		}
		r := x * y
		if r/y != x {
			return Value{}, &OverflowError{Off: pos, Op: "*"}
		}
		return Int(r), nil
	}
	panic("calc: invalid integer operator " + kind.String())
}

// DivideByZeroError indicates division or remainder by zero.
type DivideByZeroError struct {
	// Off is the byte offset of the operator.
	Off int
	// Op is "/" or "%".
	Op string
}

func (err *DivideByZeroError) Error() string {
	return "division by zero"
}

func (err *DivideByZeroError) Pos() int {
	return err.Off
}

// FloatModuloError indicates a % whose operands are not both integers.
type FloatModuloError struct {
	// Off is the byte offset of the operator.
	Off int
}

func (err *FloatModuloError) Error() string {
	return "remainder requires integer operands"
}

func (err *FloatModuloError) Pos() int {
	return err.Off
}

// OverflowError indicates checked integer arithmetic exceeding 64 bits.
type OverflowError struct {
	// Off is the byte offset of the operator or call.
	Off int
	// Op is the operator or function that overflowed.
	Op string
}

func (err *OverflowError) Error() string {
	return "integer overflow in " + err.Op
}

func (err *OverflowError) Pos() int {
	return err.Off
}

// NameError is an error from a bare identifier that names no constant.
type NameError struct {
	// Off is the byte offset of the identifier.
	Off int
	// Name is the unknown name.
	Name string
}

func (err *NameError) Error() string {
	return "undefined variable: " + strconv.Quote(err.Name)
}

func (err *NameError) Pos() int {
	return err.Off
}
