package calculator

import (
	"fmt"

	"github.com/markcheno/go-talib"
)

// CalculateSMA computes the simple moving average of the last `period` prices.
func CalculateSMA(prices []float64, period int) (float64, error) {
	if period <= 0 {
		return 0, ErrInvalidPeriod
	}
	if len(prices) < period {
		return 0, fmt.Errorf("SMA(%d) on %d prices: %w", period, len(prices), ErrInsufficientData)
	}
	sma := talib.Sma(prices, period)
	return sma[len(sma)-1], nil
}

// EMASeries returns the exponential moving average of prices for the given span.
// The smoothing factor is 2/(span+1) and the average is seeded with the first price,
// so every element is defined; callers gate on length themselves.
func EMASeries(prices []float64, span int) []float64 {
	return ewm(prices, 2.0/float64(span+1))
}

// ewm is a recursive exponentially weighted mean seeded with the first value.
func ewm(values []float64, alpha float64) []float64 {
	out := make([]float64, len(values))
	if len(values) == 0 {
		return out
	}
	out[0] = values[0]
	for i := 1; i < len(values); i++ {
		out[i] = alpha*values[i] + (1-alpha)*out[i-1]
	}
	return out
}
