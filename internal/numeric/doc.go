// Package numeric samples functions and approximates definite integrals.
//
//   - [SampleFunc]: evaluates a function on an even grid, marking points where
//     it is undefined as absent instead of failing
//   - [Midpoint]: the midpoint Riemann sum used for shaded-area readouts
//   - [Rule]: a registry of quadrature rules (midpoint, left, right,
//     trapezoid, simpson) for side-by-side comparison
//
// # Degradation policy
//
// A point where evaluation fails contributes nothing: sampling records an
// absent [Sample] and the quadrature rules treat the value as zero, counting
// it in [Approximation.Skipped]. Neither aborts the pass.
//
// # Orientation
//
// All rules integrate over [min(a,b), max(a,b)] and negate the result when
// b < a, so swapping the limits flips the sign exactly.
package numeric
