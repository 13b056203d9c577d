package expr

import (
	"strconv"
)

// Expr is a parsed, immutable expression in x.
type Expr struct {
	root Node
	src  string
}

// Eval evaluates the expression at x.
func (e *Expr) Eval(x float64) (float64, error) {
	v, err := e.root.Eval(x)
	if err != nil {
		return 0, err
	}
	if !finite(v) {
		return 0, &DomainError{X: x, Op: "eval", Wrapped: ErrNonFinite}
	}
	return v, nil
}

// String returns the canonical rendering of the tree.
func (e *Expr) String() string { return e.root.String() }

// Source returns the text the expression was parsed from.
func (e *Expr) Source() string { return e.src }

// Root returns the top node of the tree.
func (e *Expr) Root() Node { return e.root }

type parseOptions struct {
	coefficient bool
}

// ParseOption adjusts the accepted grammar.
type ParseOption func(*parseOptions)

// AllowCoefficient accepts a number literal directly followed by x as a
// product, e.g. "3x^2" is read as 3*(x^2).
func AllowCoefficient() ParseOption {
	return func(o *parseOptions) { o.coefficient = true }
}

// Parse builds an expression tree from text.
func Parse(text string, opts ...ParseOption) (*Expr, error) {
	var o parseOptions
	for _, opt := range opts {
		opt(&o)
	}

	toks, err := tokenize(text)
	if err != nil {
		return nil, err
	}
	p := &parser{src: text, toks: toks, coefficient: o.coefficient}
	if p.peek().kind == tokEOF {
		return nil, p.fail(p.peek(), "empty expression")
	}

	root, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	switch t := p.peek(); t.kind {
	case tokEOF:
	case tokRParen:
		return nil, p.fail(t, "unbalanced parentheses")
	case tokIdent, tokNumber, tokLParen:
		return nil, p.fail(t, "unexpected "+t.String()+" (implicit multiplication is not supported, use '*')")
	default:
		return nil, p.fail(t, "unexpected "+t.String())
	}
	return &Expr{root: root, src: text}, nil
}

// MustParse is like Parse but panics on malformed input.
func MustParse(text string, opts ...ParseOption) *Expr {
	e, err := Parse(text, opts...)
	if err != nil {
		panic(err)
	}
	return e
}

type parser struct {
	src         string
	toks        []token
	i           int
	coefficient bool
}

func (p *parser) peek() token { return p.toks[p.i] }

func (p *parser) next() token {
	t := p.toks[p.i]
	if t.kind != tokEOF {
		p.i++
	}
	return t
}

func (p *parser) isOp(ops string) (Op, bool) {
	t := p.peek()
	if t.kind != tokOp {
		return 0, false
	}
	for i := 0; i < len(ops); i++ {
		if t.text[0] == ops[i] {
			return Op(ops[i]), true
		}
	}
	return 0, false
}

func (p *parser) fail(t token, msg string) error {
	return &ParseError{Input: p.src, Pos: t.pos, Msg: msg}
}

func (p *parser) parseExpr() (Node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := p.isOp("+-")
		if !ok {
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

func (p *parser) parseTerm() (Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := p.isOp("*/")
		if !ok {
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

func (p *parser) parseUnary() (Node, error) {
	if op, ok := p.isOp("+-"); ok {
		p.next()
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return Unary{Op: op, X: x}, nil
	}
	return p.parsePower()
}

func (p *parser) parsePower() (Node, error) {
	if p.coefficient && p.peek().kind == tokNumber {
		if nt := p.toks[p.i+1]; nt.kind == tokIdent && nt.text == "x" {
			c, err := p.number(p.next())
			if err != nil {
				return nil, err
			}
			rest, err := p.parsePower()
			if err != nil {
				return nil, err
			}
			return Binary{Op: OpMul, Left: c, Right: rest}, nil
		}
	}

	base, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	if _, ok := p.isOp("^"); !ok {
		return base, nil
	}
	p.next()
	exp, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return Binary{Op: OpPow, Left: base, Right: exp}, nil
}

func (p *parser) parsePrimary() (Node, error) {
	t := p.next()
	switch t.kind {
	case tokNumber:
		return p.number(t)
	case tokIdent:
		if t.text == "x" {
			return Var{}, nil
		}
		if v, ok := constants[t.text]; ok {
			return Num{Value: v, Name: t.text}, nil
		}
		if _, ok := functions[t.text]; !ok {
			return nil, p.fail(t, "unknown identifier "+t.text)
		}
		if p.peek().kind != tokLParen {
			return nil, p.fail(p.peek(), "expected '(' after "+t.text)
		}
		p.next()
		if p.peek().kind == tokRParen {
			return nil, p.fail(p.peek(), "empty argument list for "+t.text)
		}
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.next().kind != tokRParen {
			return nil, p.fail(t, "unbalanced parentheses in call to "+t.text)
		}
		return Call{Fn: t.text, Arg: arg}, nil
	case tokLParen:
		if p.peek().kind == tokRParen {
			return nil, p.fail(p.peek(), "empty parentheses")
		}
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.next().kind != tokRParen {
			return nil, p.fail(t, "unbalanced parentheses")
		}
		return inner, nil
	case tokRParen:
		return nil, p.fail(t, "unbalanced parentheses")
	case tokEOF:
		return nil, p.fail(t, "unexpected end of input")
	default:
		return nil, p.fail(t, "unexpected operator "+t.text)
	}
}

func (p *parser) number(t token) (Node, error) {
	v, err := strconv.ParseFloat(t.text, 64)
	if err != nil {
		return nil, p.fail(t, "invalid number "+t.text)
	}
	return Num{Value: v}, nil
}
