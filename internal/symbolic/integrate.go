package symbolic

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/san-kum/integralab/internal/expr"
)

// ErrEmptyExpression is returned when normalization left nothing to integrate.
var ErrEmptyExpression = errors.New("symbolic: empty expression")

// Result is the answer to one integration query.
type Result struct {
	Integrand string   `json:"integrand"`
	Formula   string   `json:"formula"`
	LaTeX     string   `json:"latex"`
	Steps     []string `json:"steps"`
	Matched   bool     `json:"matched"`
	Rule      string   `json:"rule,omitempty"`
}

// IntegrateText normalizes raw user text and integrates it.
func IntegrateText(raw string) (Result, error) {
	return Integrate(expr.Normalize(raw))
}

// Integrate matches n against the rule table. Text that matches no rule and
// does not parse either is reported as a *expr.ParseError.
func Integrate(n expr.Normalized) (Result, error) {
	if n.Empty() {
		return Result{}, ErrEmptyExpression
	}

	parsed, perr := expr.Parse(n.Text, expr.AllowCoefficient())
	canonical := ""
	if perr == nil {
		canonical = parsed.String()
	}

	for _, r := range rules {
		switch r.Kind {
		case ExactMatch:
			if r.matchesExact(n, canonical) {
				return exactResult(n, r), nil
			}
		case PowerPattern:
			if perr != nil {
				continue
			}
			if c, k, ok := decompose(parsed.Root()); ok {
				return powerResult(n, r, c, k), nil
			}
		}
	}

	if perr != nil {
		return Result{}, perr
	}
	return guidance(n), nil
}

func exactResult(n expr.Normalized, r Rule) Result {
	return Result{
		Integrand: n.Display,
		Formula:   r.Formula,
		LaTeX:     r.LaTeX,
		Matched:   true,
		Rule:      r.Name,
		Steps: []string{
			"Identify the integrand as " + n.Display,
			fmt.Sprintf("Apply the basic integration formula ∫ %s dx = %s", r.Key, r.Formula),
			"Add the constant of integration C",
		},
	}
}

func powerResult(n expr.Normalized, r Rule, coef float64, power int) Result {
	coefText := strconv.FormatFloat(coef, 'g', -1, 64)

	if power == -1 {
		prefix := ""
		if coef != 1 {
			prefix = coefText + " "
		}
		return Result{
			Integrand: n.Display,
			Formula:   prefix + "ln|x| + C",
			LaTeX:     prefix + `\ln|x| + C`,
			Matched:   true,
			Rule:      r.Name,
			Steps: []string{
				"Extract the coefficient " + coefText,
				"Apply the reciprocal rule ∫ 1/x dx = ln|x| + C",
				"Multiply by the coefficient " + coefText,
			},
		}
	}

	newPower := power + 1
	prefix := coefficientPrefix(coef / float64(newPower))
	return Result{
		Integrand: n.Display,
		Formula:   prefix + powerTerm(newPower) + " + C",
		LaTeX:     prefix + powerTermLaTeX(newPower) + " + C",
		Matched:   true,
		Rule:      r.Name,
		Steps: []string{
			"Apply the power rule ∫ x^n dx = x^(n+1)/(n+1) + C",
			fmt.Sprintf("Here n = %d, so ∫ x^%d dx = x^(%d+1)/(%d+1) + C", power, power, power, power),
			"Multiply by the coefficient " + coefText,
		},
	}
}

func guidance(n expr.Normalized) Result {
	return Result{
		Integrand: n.Display,
		Formula:   "∫ " + n.Display + " dx",
		LaTeX:     `\int ` + n.Display + `\, dx`,
		Matched:   false,
		Steps: []string{
			"Check whether a basic integration formula applies directly",
			"Try substitution for composite functions",
			"Try integration by parts for products of functions",
			"Try trigonometric identities for trigonometric integrands",
		},
	}
}

// decompose recognizes c*x^k, c*x, x^k and x.
func decompose(n expr.Node) (coef float64, power int, ok bool) {
	coef = 1
	if b, isBin := n.(expr.Binary); isBin && b.Op == expr.OpMul {
		c, isNum := b.Left.(expr.Num)
		if !isNum || c.Name != "" {
			return 0, 0, false
		}
		coef = c.Value
		n = b.Right
	}

	switch v := n.(type) {
	case expr.Var:
		return coef, 1, true
	case expr.Binary:
		if v.Op != expr.OpPow {
			return 0, 0, false
		}
		if _, isVar := v.Left.(expr.Var); !isVar {
			return 0, 0, false
		}
		k, isInt := integerLiteral(v.Right)
		if !isInt {
			return 0, 0, false
		}
		return coef, k, true
	}
	return 0, 0, false
}

func integerLiteral(n expr.Node) (int, bool) {
	sign := 1
	if u, ok := n.(expr.Unary); ok {
		if u.Op == expr.OpSub {
			sign = -1
		}
		n = u.X
	}
	num, ok := n.(expr.Num)
	if !ok || num.Name != "" || num.Value != math.Trunc(num.Value) || num.Value > 1e6 {
		return 0, false
	}
	return sign * int(num.Value), true
}

// coefficientPrefix shows two decimals with a trailing ".00" trimmed and
// drops a unit coefficient entirely.
func coefficientPrefix(c float64) string {
	s := strings.TrimSuffix(strconv.FormatFloat(c, 'f', 2, 64), ".00")
	switch s {
	case "1":
		return ""
	case "-1":
		return "-"
	}
	return s + " "
}

func powerTerm(k int) string {
	switch {
	case k == 1:
		return "x"
	case k < 0:
		return fmt.Sprintf("x^(%d)", k)
	}
	return fmt.Sprintf("x^%d", k)
}

func powerTermLaTeX(k int) string {
	if k == 1 {
		return "x"
	}
	return fmt.Sprintf("x^{%d}", k)
}
