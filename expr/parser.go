package expr

import "strings"

// Compile parses src into an Expression. The returned error is always a
// *ParseError; match its cause with errors.Is against the Err* sentinels.
func Compile(src string) (*Expression, error) {
	if strings.TrimSpace(src) == "" {
		return nil, &ParseError{Pos: 0, Token: src, Err: ErrEmptyExpression}
	}
	toks, err := lex(src)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	root, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if t := p.peek(); t.kind != tokEOF {
		return nil, p.unexpected(t)
	}
	return &Expression{src: src, root: root}, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(src string) *Expression {
	e, err := Compile(src)
	if err != nil {
		panic(err)
	}
	return e
}

type parser struct {
	toks []token
	i    int
}

func (p *parser) peek() token { return p.toks[p.i] }

func (p *parser) next() token {
	t := p.toks[p.i]
	if t.kind != tokEOF {
		p.i++
	}
	return t
}

// unexpected classifies a token that cannot appear where it stands.
func (p *parser) unexpected(t token) error {
	switch {
	case t.kind == tokRParen:
		return &ParseError{Pos: t.pos, Token: t.text, Err: ErrUnbalancedParens}
	case t.startsOperand():
		return &ParseError{Pos: t.pos, Token: t.text, Err: ErrImplicitMultiplication}
	}
	return &ParseError{Pos: t.pos, Token: t.display(), Err: ErrUnexpectedToken}
}

// expr := term (('+'|'-') term)*
func (p *parser) parseExpr() (Node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		var op Op
		switch p.peek().kind {
		case tokPlus:
			op = OpAdd
		case tokMinus:
			op = OpSub
		default:
			return left, nil
		}
		p.next()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = Binary{Op: op, Left: left, Right: right}
	}
}

// term := unary (('*'|'/') unary)*
func (p *parser) parseTerm() (Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		var op Op
		switch p.peek().kind {
		case tokStar:
			op = OpMul
		case tokSlash:
			op = OpDiv
		default:
			return left, nil
		}
		p.next()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = Binary{Op: op, Left: left, Right: right}
	}
}

// unary := ('-'|'+') unary | power
func (p *parser) parseUnary() (Node, error) {
	switch p.peek().kind {
	case tokMinus:
		p.next()
		arg, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return Unary{Op: OpNeg, Arg: arg}, nil
	case tokPlus:
		p.next()
		return p.parseUnary()
	}
	return p.parsePower()
}

// power := primary ('**' unary)?
func (p *parser) parsePower() (Node, error) {
	base, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	if p.peek().kind == tokPow {
		p.next()
		exp, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		base = Binary{Op: OpPow, Left: base, Right: exp}
	}
	if t := p.peek(); t.startsOperand() {
		return nil, &ParseError{Pos: t.pos, Token: t.text, Err: ErrImplicitMultiplication}
	}
	return base, nil
}

// primary := NUMBER | 'x' | CONST | FUNC '(' expr ')' | '(' expr ')'
func (p *parser) parsePrimary() (Node, error) {
	t := p.next()
	switch t.kind {
	case tokNumber:
		return Number{Value: t.num}, nil
	case tokLParen:
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.closeParen(t); err != nil {
			return nil, err
		}
		return inner, nil
	case tokIdent:
		return p.parseIdent(t)
	case tokRParen:
		return nil, &ParseError{Pos: t.pos, Token: t.text, Err: ErrUnbalancedParens}
	}
	return nil, &ParseError{Pos: t.pos, Token: t.display(), Err: ErrUnexpectedToken}
}

func (p *parser) parseIdent(t token) (Node, error) {
	if t.text == "x" {
		return Variable{}, nil
	}
	if v, known := constants[t.text]; known {
		return Constant{Name: t.text, Value: v}, nil
	}
	if _, known := functions[t.text]; !known {
		return nil, &ParseError{Pos: t.pos, Token: t.text, Err: ErrUnknownIdentifier}
	}
	open := p.next()
	if open.kind != tokLParen {
		return nil, &ParseError{Pos: open.pos, Token: open.display(), Err: ErrUnexpectedToken}
	}
	arg, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.closeParen(open); err != nil {
		return nil, err
	}
	return Call{Fn: t.text, Arg: arg}, nil
}

// closeParen consumes the ')' matching open.
func (p *parser) closeParen(open token) error {
	t := p.peek()
	switch t.kind {
	case tokRParen:
		p.next()
		return nil
	case tokEOF:
		return &ParseError{Pos: open.pos, Token: open.text, Err: ErrUnbalancedParens}
	}
	return p.unexpected(t)
}
