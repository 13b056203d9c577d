package symbolic

import (
	"github.com/san-kum/integralab/internal/expr"
)

// Kind tags a rule variant.
type Kind int

const (
	ExactMatch Kind = iota
	PowerPattern
)

func (k Kind) String() string {
	if k == PowerPattern {
		return "power-pattern"
	}
	return "exact"
}

// Rule is one row of the integration table.
type Rule struct {
	Name    string
	Kind    Kind
	Key     string
	Formula string
	LaTeX   string

	canonical string
}

var rules = []Rule{
	{Name: "x", Kind: ExactMatch, Key: "x", Formula: "x^2/2 + C", LaTeX: `\frac{x^2}{2} + C`},
	{Name: "x^2", Kind: ExactMatch, Key: "x^2", Formula: "x^3/3 + C", LaTeX: `\frac{x^3}{3} + C`},
	{Name: "x^3", Kind: ExactMatch, Key: "x^3", Formula: "x^4/4 + C", LaTeX: `\frac{x^4}{4} + C`},
	{Name: "x^n", Kind: ExactMatch, Key: "x^n", Formula: "x^(n+1)/(n+1) + C (n ≠ -1)", LaTeX: `\frac{x^{n+1}}{n+1} + C \quad (n \neq -1)`},
	{Name: "sin", Kind: ExactMatch, Key: "sin(x)", Formula: "-cos(x) + C", LaTeX: `-\cos(x) + C`},
	{Name: "cos", Kind: ExactMatch, Key: "cos(x)", Formula: "sin(x) + C", LaTeX: `\sin(x) + C`},
	{Name: "exp", Kind: ExactMatch, Key: "e^x", Formula: "e^x + C", LaTeX: `e^x + C`},
	{Name: "a^x", Kind: ExactMatch, Key: "a^x", Formula: "a^x/ln(a) + C", LaTeX: `\frac{a^x}{\ln a} + C`},
	{Name: "reciprocal", Kind: ExactMatch, Key: "1/x", Formula: "ln|x| + C", LaTeX: `\ln|x| + C`},
	{Name: "sec^2", Kind: ExactMatch, Key: "sec^2(x)", Formula: "tan(x) + C", LaTeX: `\tan(x) + C`},
	{Name: "power", Kind: PowerPattern},
}

func init() {
	for i := range rules {
		if rules[i].Kind != ExactMatch {
			continue
		}
		if e, err := expr.Parse(rules[i].Key, expr.AllowCoefficient()); err == nil {
			rules[i].canonical = e.String()
		}
	}
}

// Rules returns a copy of the table in match order.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}

func (r Rule) matchesExact(n expr.Normalized, canonical string) bool {
	if n.Text == r.Key {
		return true
	}
	return canonical != "" && canonical == r.canonical
}
