package expr

import (
	"math"
	"strconv"
)

// Op identifies a unary or binary operator.
type Op byte

const (
	OpAdd Op = '+'
	OpSub Op = '-'
	OpMul Op = '*'
	OpDiv Op = '/'
	OpPow Op = '^'
)

type precedence int

const (
	addPrecedence precedence = iota
	mulPrecedence
	negPrecedence
	powPrecedence
	atomicPrecedence
)

// Node is one vertex of a parsed expression tree.
type Node interface {
	Eval(x float64) (float64, error)
	String() string
	precedence() precedence
}

// Num is a numeric literal or a named constant.
type Num struct {
	Value float64
	// Name is "pi" or "e" for constants, empty for literals.
	Name string
}

// Var is the integration variable x.
type Var struct{}

// Unary applies a sign to its operand.
type Unary struct {
	Op Op
	X  Node
}

// Binary applies an arithmetic operator.
type Binary struct {
	Op          Op
	Left, Right Node
}

// Call applies one of the whitelisted functions.
type Call struct {
	Fn  string
	Arg Node
}

var functions = map[string]func(float64) float64{
	"sin":  math.Sin,
	"cos":  math.Cos,
	"tan":  math.Tan,
	"exp":  math.Exp,
	"ln":   math.Log,
	"sqrt": math.Sqrt,
}

var constants = map[string]float64{
	"pi": math.Pi,
	"e":  math.E,
}

func (n Num) Eval(float64) (float64, error) { return n.Value, nil }
func (n Num) precedence() precedence        { return atomicPrecedence }

func (n Num) String() string {
	if n.Name != "" {
		return n.Name
	}
	return strconv.FormatFloat(n.Value, 'g', -1, 64)
}

func (Var) Eval(x float64) (float64, error) { return x, nil }
func (Var) String() string                  { return "x" }
func (Var) precedence() precedence          { return atomicPrecedence }

func (u Unary) Eval(x float64) (float64, error) {
	v, err := u.X.Eval(x)
	if err != nil {
		return 0, err
	}
	if u.Op == OpSub {
		return -v, nil
	}
	return v, nil
}

func (u Unary) String() string {
	return string(u.Op) + wrap(u.X, u.X.precedence() < negPrecedence)
}

func (Unary) precedence() precedence { return negPrecedence }

func (b Binary) Eval(x float64) (float64, error) {
	l, err := b.Left.Eval(x)
	if err != nil {
		return 0, err
	}
	r, err := b.Right.Eval(x)
	if err != nil {
		return 0, err
	}

	var v float64
	switch b.Op {
	case OpAdd:
		v = l + r
	case OpSub:
		v = l - r
	case OpMul:
		v = l * r
	case OpDiv:
		if r == 0 {
			return 0, &DomainError{X: x, Op: "/", Wrapped: ErrDivisionByZero}
		}
		v = l / r
	case OpPow:
		v = math.Pow(l, r)
	}
	if !finite(v) {
		return 0, &DomainError{X: x, Op: string(b.Op), Wrapped: ErrNonFinite}
	}
	return v, nil
}

func (b Binary) String() string {
	p := b.precedence()
	lp, rp := b.Left.precedence(), b.Right.precedence()

	left := wrap(b.Left, lp < p || (b.Op == OpPow && lp == p))
	right := wrap(b.Right, rp < p || (rp == p && (b.Op == OpSub || b.Op == OpDiv)))
	return left + string(b.Op) + right
}

func (b Binary) precedence() precedence {
	switch b.Op {
	case OpAdd, OpSub:
		return addPrecedence
	case OpMul, OpDiv:
		return mulPrecedence
	default:
		return powPrecedence
	}
}

func (c Call) Eval(x float64) (float64, error) {
	a, err := c.Arg.Eval(x)
	if err != nil {
		return 0, err
	}
	if c.Fn == "ln" && a <= 0 {
		return 0, &DomainError{X: x, Op: "ln", Wrapped: ErrLogDomain}
	}
	v := functions[c.Fn](a)
	if !finite(v) {
		return 0, &DomainError{X: x, Op: c.Fn, Wrapped: ErrNonFinite}
	}
	return v, nil
}

func (c Call) String() string       { return c.Fn + "(" + c.Arg.String() + ")" }
func (Call) precedence() precedence { return atomicPrecedence }

func wrap(n Node, parens bool) string {
	if parens {
		return "(" + n.String() + ")"
	}
	return n.String()
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
