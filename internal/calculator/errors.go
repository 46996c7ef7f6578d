package calculator

import "errors"

var (
	// ErrInvalidPeriod is returned when a window or span is not positive.
	ErrInvalidPeriod = errors.New("period must be positive")
	// ErrInsufficientData is returned when the input is shorter than the indicator window.
	ErrInsufficientData = errors.New("not enough data")
)
