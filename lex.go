package calc

import "strconv"

// tokenKind identifies a lexical class. Each operator gets its own kind so
// that the parser and the token printer can switch on it directly.
type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenNum is an integer or float literal.
	tokenNum
	// tokenIdent is a constant, variable, or function name.
	tokenIdent
	tokenAdd
	tokenSub
	tokenMul
	tokenDiv
	tokenMod
	tokenPow
	tokenLParen
	tokenRParen
	tokenComma
	// tokenEOF terminates every token sequence; its span is the
	// one-past-end offset.
	tokenEOF
)

var kindNames = [...]string{
	tokenNone:   "none",
	tokenNum:    "number",
	tokenIdent:  "ident",
	tokenAdd:    "add",
	tokenSub:    "sub",
	tokenMul:    "mul",
	tokenDiv:    "div",
	tokenMod:    "mod",
	tokenPow:    "pow",
	tokenLParen: "lparen",
	tokenRParen: "rparen",
	tokenComma:  "comma",
	tokenEOF:    "eof",
}

func (k tokenKind) String() string {
	return kindNames[k]
}

// token is one lexical unit. start and end are byte offsets into the
// source, forming the half-open span [start, end). Tokens are produced once
// by scan and read-only thereafter.
type token struct {
	val   Value  // numbers only
	text  string // identifiers only
	kind  tokenKind
	start int
	end   int
}

// String renders the token as the debug printer shows it: the kind name,
// with the payload in parentheses for numbers and identifiers.
func (t token) String() string {
	switch t.kind {
	case tokenNum:
		return "number(" + t.val.String() + ")"
	case tokenIdent:
		return "ident(" + t.text + ")"
	default:
		return t.kind.String()
	}
}

// scan tokenizes the whole source eagerly. On success the returned sequence
// always ends with an eof token.
func scan(src string) ([]token, error) {
	toks := make([]token, 0, 16)
	i := 0
	for i < len(src) {
		c := src[i]
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n' || c == '\v' || c == '\f':
			i++
		case isDigit(c) || c == '.':
			tok, next, err := scanNum(src, i)
			if err != nil {
				return nil, err
			}
			toks = append(toks, tok)
			i = next
		case isLetter(c):
			j := i + 1
			for j < len(src) && (isLetter(src[j]) || isDigit(src[j]) || src[j] == '_') {
				j++
			}
			toks = append(toks, token{kind: tokenIdent, text: src[i:j], start: i, end: j})
			i = j
		default:
			k := punctKind(c)
			if k == tokenNone {
				return nil, &BadCharError{Off: i, Char: c}
			}
			toks = append(toks, token{kind: k, start: i, end: i + 1})
			i++
		}
	}
	return append(toks, token{kind: tokenEOF, start: len(src), end: len(src)}), nil
}

// scanNum scans a numeric literal beginning at start. The exponent marker is
// consumed only when at least one digit follows it; otherwise the e/E is
// left for the next token, so "1e" scans as the number 1 followed by the
// identifier e.
func scanNum(src string, start int) (token, int, error) {
	i := start
	digits := false
	for i < len(src) && isDigit(src[i]) {
		i++
		digits = true
	}
	isFloat := false
	if i < len(src) && src[i] == '.' {
		isFloat = true
		i++
		for i < len(src) && isDigit(src[i]) {
			i++
			digits = true
		}
	}
	if !digits {
		return token{}, 0, &BadNumberError{Off: start, Text: src[start:i]}
	}
	if i < len(src) && (src[i] == 'e' || src[i] == 'E') {
		j := i + 1
		if j < len(src) && (src[j] == '+' || src[j] == '-') {
			j++
		}
		if j < len(src) && isDigit(src[j]) {
			for j < len(src) && isDigit(src[j]) {
				j++
			}
			i = j
			isFloat = true
		}
	}
	text := src[start:i]
	tok := token{kind: tokenNum, start: start, end: i}
	if isFloat {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return token{}, 0, &BadNumberError{Off: start, Text: text}
		}
		tok.val = Float(f)
	} else {
		n, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			// Out of range for int64.
			return token{}, 0, &BadNumberError{Off: start, Text: text}
		}
		tok.val = Int(n)
	}
	return tok, i, nil
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

// punctKind maps a single-character token to its kind, or tokenNone if the
// byte starts no token.
func punctKind(c byte) tokenKind {
	switch c {
	case '+':
		return tokenAdd
	case '-':
		return tokenSub
	case '*':
		return tokenMul
	case '/':
		return tokenDiv
	case '%':
		return tokenMod
	case '^':
		return tokenPow
	case '(':
		return tokenLParen
	case ')':
		return tokenRParen
	case ',':
		return tokenComma
	}
	return tokenNone
}

// BadCharError indicates a byte that begins no token. It implements
// InputError.
type BadCharError struct {
	// Off is the byte offset of the character.
	Off int
	// Char is the rejected byte.
	Char byte
}

func (err *BadCharError) Error() string {
	return "invalid character " + strconv.QuoteRune(rune(err.Char))
}

func (err *BadCharError) Pos() int {
	return err.Off
}

// BadNumberError indicates a malformed or out-of-range numeric literal. It
// implements InputError.
type BadNumberError struct {
	// Off is the byte offset of the start of the literal.
	Off int
	// Text is the rejected literal text.
	Text string
}

func (err *BadNumberError) Error() string {
	return "invalid number " + strconv.Quote(err.Text)
}

func (err *BadNumberError) Pos() int {
	return err.Off
}
