package figure

import "errors"

// Domain errors for figure construction.
var (
	// ErrDimensionMismatch indicates x, y and color sequences of unequal length.
	ErrDimensionMismatch = errors.New("figure: x, y and color counts differ")

	// ErrTooFewPoints indicates fewer than two points; no segment can be formed.
	ErrTooFewPoints = errors.New("figure: need at least two points")
)
