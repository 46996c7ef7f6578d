package calculator

import (
	"errors"
	"fmt"
)

// MACD holds the latest MACD line, signal line and their difference.
type MACD struct {
	Line   float64
	Signal float64
	Diff   float64
}

// CalculateMACD computes MACD(fast, slow, signal) on closing prices.
// It requires at least `slow` prices; with exactly `slow` prices the signal
// equals the line and the difference is zero.
func CalculateMACD(prices []float64, fast, slow, signal int) (MACD, error) {
	if fast <= 0 || slow <= 0 || signal <= 0 {
		return MACD{}, ErrInvalidPeriod
	}
	if fast >= slow {
		return MACD{}, errors.New("fast span must be shorter than slow span")
	}
	if len(prices) < slow {
		return MACD{}, fmt.Errorf("MACD(%d,%d,%d) on %d prices: %w", fast, slow, signal, len(prices), ErrInsufficientData)
	}

	fastEMA := EMASeries(prices, fast)
	slowEMA := EMASeries(prices, slow)
	line := make([]float64, len(prices))
	for i := range prices {
		line[i] = fastEMA[i] - slowEMA[i]
	}
	// The line is only defined once the slow EMA has a full window, so the
	// signal EMA starts at line[slow-1].
	signalLine := EMASeries(line[slow-1:], signal)

	last := len(prices) - 1
	sig := signalLine[len(signalLine)-1]
	return MACD{
		Line:   line[last],
		Signal: sig,
		Diff:   line[last] - sig,
	}, nil
}
