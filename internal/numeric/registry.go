package numeric

import (
	"fmt"
	"sort"

	"github.com/san-kum/integralab/internal/expr"
)

// Rule is a quadrature rule over a partitioned interval.
type Rule interface {
	Name() string
	Integrate(f expr.Func, a, b float64, n int) Approximation
}

var rules = map[string]func() Rule{
	"midpoint":  func() Rule { return NewMidpoint() },
	"left":      func() Rule { return NewLeft() },
	"right":     func() Rule { return NewRight() },
	"trapezoid": func() Rule { return NewTrapezoid() },
	"simpson":   func() Rule { return NewSimpson() },
}

// NewRule looks up a rule by name. An empty name selects midpoint.
func NewRule(name string) (Rule, error) {
	if name == "" {
		return NewMidpoint(), nil
	}
	fn, ok := rules[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownRule, name)
	}
	return fn(), nil
}

func RuleNames() []string {
	names := make([]string, 0, len(rules))
	for name := range rules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
