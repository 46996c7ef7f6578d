package analysis

import (
	"errors"
	"fmt"
)

// InputErrorCode identifies why a raw series was rejected.
type InputErrorCode int

const (
	ErrCodeEmptySeries InputErrorCode = iota + 100
	ErrCodeInvalidPrice
	ErrCodeInvalidVolume
	ErrCodeNonMonotonicDate
)

func (c InputErrorCode) String() string {
	switch c {
	case ErrCodeEmptySeries:
		return "empty_series"
	case ErrCodeInvalidPrice:
		return "invalid_price"
	case ErrCodeInvalidVolume:
		return "invalid_volume"
	case ErrCodeNonMonotonicDate:
		return "non_monotonic_date"
	default:
		return "unknown"
	}
}

// InputError reports a malformed price series. It is fatal to the analysis call.
type InputError struct {
	Code    InputErrorCode
	Index   int // offending bar, -1 for series-level problems
	Message string
}

func newInputError(code InputErrorCode, index int, format string, args ...any) *InputError {
	return &InputError{Code: code, Index: index, Message: fmt.Sprintf(format, args...)}
}

func (e *InputError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("invalid input [%s] at bar %d: %s", e.Code, e.Index, e.Message)
	}
	return fmt.Sprintf("invalid input [%s]: %s", e.Code, e.Message)
}

// IsInputError reports whether err's chain contains an *InputError.
func IsInputError(err error) bool {
	var ie *InputError
	return errors.As(err, &ie)
}

// InputErrorCodeOf returns the code of the first *InputError in err's chain.
func InputErrorCodeOf(err error) (InputErrorCode, bool) {
	var ie *InputError
	if errors.As(err, &ie) {
		return ie.Code, true
	}
	return 0, false
}
