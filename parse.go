package calc

// Grammar, lowest precedence first. ^ is right-associative and binds
// tighter than unary sign, so -2^2 negates the whole power.
//
//	Expr    = AddSub
//	AddSub  = MulDiv { ("+" | "-") MulDiv }
//	MulDiv  = Prefix { ("*" | "/" | "%") Prefix }
//	Prefix  = { "+" | "-" } Power
//	Power   = Primary [ "^" Prefix ]
//	Primary = number | "(" Expr ")" | func "(" [ Expr { "," Expr } ] ")" | name

// parser advances a cursor over the scanned token sequence. It never
// mutates tokens; the cursor clamps at the trailing eof marker.
type parser struct {
	toks []token
	cur  int
	expr *Expr
}

// parse builds the AST for a scanned token sequence. The sequence must end
// with an eof token, which parse requires to directly follow the
// expression.
func parse(toks []token) (*Expr, error) {
	p := parser{toks: toks, expr: &Expr{}}
	root, err := p.addSub()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.kind != tokenEOF {
		return nil, &TrailingError{Off: tok.start, Found: tok.kind}
	}
	p.expr.root = root
	return p.expr, nil
}

func (p *parser) peek() token {
	return p.toks[p.cur]
}

func (p *parser) next() token {
	tok := p.toks[p.cur]
	if p.cur < len(p.toks)-1 {
		p.cur++
	}
	return tok
}

func (p *parser) addSub() (int, error) {
	l, err := p.mulDiv()
	if err != nil {
		return 0, err
	}
	for {
		tok := p.peek()
		var kind nodeKind
		switch tok.kind {
		case tokenAdd:
			kind = nodeAdd
		case tokenSub:
			kind = nodeSub
		default:
			return l, nil
		}
		p.next()
		r, err := p.mulDiv()
		if err != nil {
			return 0, err
		}
		l = p.expr.add(node{kind: kind, pos: tok.start, left: l, right: r})
	}
}

func (p *parser) mulDiv() (int, error) {
	l, err := p.prefix()
	if err != nil {
		return 0, err
	}
	for {
		tok := p.peek()
		var kind nodeKind
		switch tok.kind {
		case tokenMul:
			kind = nodeMul
		case tokenDiv:
			kind = nodeDiv
		case tokenMod:
			kind = nodeMod
		default:
			return l, nil
		}
		p.next()
		r, err := p.prefix()
		if err != nil {
			return 0, err
		}
		l = p.expr.add(node{kind: kind, pos: tok.start, left: l, right: r})
	}
}

// prefix parses zero or more unary signs in front of a power. Each sign
// becomes its own node, so "--x" is pos-free double negation.
func (p *parser) prefix() (int, error) {
	tok := p.peek()
	var kind nodeKind
	switch tok.kind {
	case tokenAdd:
		kind = nodePos
	case tokenSub:
		kind = nodeNeg
	default:
		return p.power()
	}
	p.next()
	child, err := p.prefix()
	if err != nil {
		return 0, err
	}
	return p.expr.add(node{kind: kind, pos: tok.start, left: child}), nil
}

// power parses Primary [ "^" Prefix ]. The exponent re-enters the sign
// level, which makes ^ right-associative and allows 2^-3.
func (p *parser) power() (int, error) {
	l, err := p.primary()
	if err != nil {
		return 0, err
	}
	tok := p.peek()
	if tok.kind != tokenPow {
		return l, nil
	}
	p.next()
	r, err := p.prefix()
	if err != nil {
		return 0, err
	}
	return p.expr.add(node{kind: nodePow, pos: tok.start, left: l, right: r}), nil
}

func (p *parser) primary() (int, error) {
	tok := p.next()
	switch tok.kind {
	case tokenNum:
		return p.expr.add(node{kind: nodeNum, pos: tok.start, val: tok.val}), nil
	case tokenLParen:
		inner, err := p.addSub()
		if err != nil {
			return 0, err
		}
		end := p.peek()
		if end.kind != tokenRParen {
			return 0, &ParenError{Off: end.start, Found: end.kind}
		}
		p.next()
		return inner, nil
	case tokenIdent:
		if p.peek().kind != tokenLParen {
			// A bare identifier is a variable reference; whether it names
			// a constant is decided at evaluation.
			return p.expr.add(node{kind: nodeName, pos: tok.start, name: tok.text}), nil
		}
		if _, ok := builtins[tok.text]; !ok {
			// Only whitelisted names may be called.
			return 0, &PrimaryError{Off: tok.start, Found: tok.kind}
		}
		return p.call(tok)
	default:
		return 0, &PrimaryError{Off: tok.start, Found: tok.kind}
	}
}

// call parses the parenthesized argument list of a builtin. Arity is not
// checked here; the evaluator rejects calls with the wrong count.
func (p *parser) call(fn token) (int, error) {
	p.next() // the open paren
	var args []int
	if p.peek().kind != tokenRParen {
		for {
			a, err := p.addSub()
			if err != nil {
				return 0, err
			}
			args = append(args, a)
			if p.peek().kind != tokenComma {
				break
			}
			p.next()
		}
	}
	end := p.peek()
	if end.kind != tokenRParen {
		return 0, &ParenError{Off: end.start, Found: end.kind}
	}
	p.next()
	return p.expr.add(node{kind: nodeCall, pos: fn.start, name: fn.text, args: args}), nil
}
