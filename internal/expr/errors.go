package expr

import (
	"errors"
	"fmt"
)

var (
	// ErrParse is wrapped by every ParseError.
	ErrParse = errors.New("expr: malformed expression")

	// ErrDivisionByZero indicates a zero denominator.
	ErrDivisionByZero = errors.New("expr: division by zero")

	// ErrLogDomain indicates ln of a non-positive value.
	ErrLogDomain = errors.New("expr: logarithm of non-positive value")

	// ErrNonFinite indicates an evaluation that produced NaN or Inf.
	ErrNonFinite = errors.New("expr: non-finite result")
)

// ParseError reports malformed input together with the offending text.
type ParseError struct {
	Input string
	Pos   int
	Msg   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("expr: cannot parse %q at offset %d: %s", e.Input, e.Pos, e.Msg)
}

func (e *ParseError) Unwrap() error {
	return ErrParse
}

// DomainError reports a point where the expression is undefined.
type DomainError struct {
	X       float64
	Op      string
	Wrapped error
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s (%s at x=%g)", e.Wrapped.Error(), e.Op, e.X)
}

func (e *DomainError) Unwrap() error {
	return e.Wrapped
}

// IsDomainError reports whether err is a per-point evaluation failure.
func IsDomainError(err error) bool {
	var de *DomainError
	return errors.As(err, &de)
}
