package calc

// InputError is an error with position information. Every fault produced by
// scanning, parsing, or evaluating an expression implements InputError.
type InputError interface {
	error
	// Pos returns the byte offset into the source of the token that caused
	// the error.
	Pos() int
}

// PrimaryError indicates a token where a primary expression was required:
// at the start of the input, after an operator or open parenthesis, or an
// identifier called like a function without being one.
type PrimaryError struct {
	// Off is the byte offset of the unexpected token.
	Off int
	// Found is the kind of token actually found.
	Found tokenKind
}

func (err *PrimaryError) Error() string {
	return "expected expression, found " + err.Found.String()
}

func (err *PrimaryError) Pos() int {
	return err.Off
}

// ParenError indicates a missing close parenthesis.
type ParenError struct {
	// Off is the byte offset where the close parenthesis should have been.
	Off int
	// Found is the kind of token actually found, possibly eof.
	Found tokenKind
}

func (err *ParenError) Error() string {
	return "expected ')', found " + err.Found.String()
}

func (err *ParenError) Pos() int {
	return err.Off
}

// TrailingError indicates unconsumed tokens after a complete expression.
type TrailingError struct {
	// Off is the byte offset of the first unconsumed token.
	Off int
	// Found is the kind of that token.
	Found tokenKind
}

func (err *TrailingError) Error() string {
	return "unexpected " + err.Found.String() + " after expression"
}

func (err *TrailingError) Pos() int {
	return err.Off
}

var (
	_ InputError = (*BadCharError)(nil)
	_ InputError = (*BadNumberError)(nil)
	_ InputError = (*PrimaryError)(nil)
	_ InputError = (*ParenError)(nil)
	_ InputError = (*TrailingError)(nil)
	_ InputError = (*DivideByZeroError)(nil)
	_ InputError = (*FloatModuloError)(nil)
	_ InputError = (*OverflowError)(nil)
	_ InputError = (*NameError)(nil)
	_ InputError = (*ArityError)(nil)
	_ InputError = (*DomainError)(nil)
)
