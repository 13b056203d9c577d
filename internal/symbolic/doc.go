// Package symbolic finds closed-form antiderivatives for elementary integrands
// and explains how they were obtained.
//
// Matching walks a static, ordered table of [Rule] values; the first match
// wins:
//
//   - ExactMatch rows: canonical antiderivatives such as x^2, sin(x), e^x,
//     1/x, sec^2(x), compared against the normalized text and, when the text
//     parses, against the canonical rendering of its syntax tree
//   - the PowerPattern row: c*x^k with a real literal c and integer k,
//     decomposed structurally from the parsed tree
//
// Anything else yields a Result with Matched == false and generic guidance.
// That is a normal outcome, not an error.
package symbolic
