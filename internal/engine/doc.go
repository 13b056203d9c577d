// Package engine is the request/response surface of integralab.
//
// An [Engine] accepts expression text, parses it once per request and hands
// the result to the symbolic, numeric, viz and animate packages. Parse
// failures are returned to the caller; evaluation failures at individual
// points are absorbed by the numeric layer and only logged.
//
// # Grammar boundary
//
// The numeric path does not accept implicit multiplication: write 2*x, not
// 2x. Only the symbolic path accepts the coefficient shorthand.
package engine
