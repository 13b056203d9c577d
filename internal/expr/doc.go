// Package expr turns user-typed integrands into something the rest of the
// lab can work with.
//
// The package has two halves:
//
//   - [Normalize]: canonicalizes raw text (whitespace, directive phrases such
//     as "compute" or "the integral of", a trailing "dx", case folding)
//   - [Parse]: builds an immutable syntax tree ([Expr]) over a small
//     whitelisted grammar and evaluates it at a point with [Expr.Eval]
//
// # Grammar
//
//	expr    := term (('+'|'-') term)*
//	term    := unary (('*'|'/') unary)*
//	unary   := '-' unary | '+' unary | power
//	power   := primary ('^' unary)?
//	primary := number | 'x' | 'pi' | 'e' | fn '(' expr ')' | '(' expr ')'
//	fn      := sin | cos | tan | exp | ln | sqrt
//
// '^' binds tighter than unary minus, so -x^2 is -(x^2), and it is right
// associative. Implicit multiplication is not part of the grammar: "2x" is a
// [ParseError] and callers must write "2*x". [AllowCoefficient] relaxes this
// for a single number directly followed by x, which is how textbook power
// terms like "3x^2" are written.
//
// # Errors
//
// Parsing fails with a [*ParseError]. Evaluation never panics; points where
// the function is undefined return a [*DomainError] so batch callers can skip
// the point and carry on.
package expr
