package expr

// Func is anything that can be evaluated at a point.
type Func interface {
	Eval(x float64) (float64, error)
}

// FuncOf adapts a plain Go function. Non-finite results are reported as
// domain errors, the same as for parsed expressions.
type FuncOf func(float64) float64

func (f FuncOf) Eval(x float64) (float64, error) {
	v := f(x)
	if !finite(v) {
		return 0, &DomainError{X: x, Op: "call", Wrapped: ErrNonFinite}
	}
	return v, nil
}
