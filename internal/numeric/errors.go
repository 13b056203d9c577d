package numeric

import "errors"

var (
	// ErrInvalidRange indicates non-finite bounds or xMin >= xMax.
	ErrInvalidRange = errors.New("numeric: invalid range")

	// ErrInvalidCount indicates a sample count below one.
	ErrInvalidCount = errors.New("numeric: sample count must be positive")

	// ErrUnknownRule indicates a quadrature rule name not in the registry.
	ErrUnknownRule = errors.New("numeric: unknown rule")
)
