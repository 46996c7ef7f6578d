package calculator

import (
	"fmt"
	"math"
)

// TradingDaysPerYear annualizes daily statistics.
const TradingDaysPerYear = 252

// CalculateVolatility returns the annualized sample standard deviation of daily
// percentage changes over the trailing window. The window uses the last `period`
// returns, or every available return when the series holds exactly `period` prices.
func CalculateVolatility(prices []float64, period int) (float64, error) {
	if period <= 1 {
		return 0, ErrInvalidPeriod
	}
	if len(prices) < period {
		return 0, fmt.Errorf("volatility(%d) on %d prices: %w", period, len(prices), ErrInsufficientData)
	}

	n := period
	if n > len(prices)-1 {
		n = len(prices) - 1
	}
	returns := make([]float64, n)
	start := len(prices) - n
	for i := 0; i < n; i++ {
		prev := prices[start+i-1]
		returns[i] = (prices[start+i] - prev) / prev
	}

	mean := 0.0
	for _, r := range returns {
		mean += r
	}
	mean /= float64(n)

	ss := 0.0
	for _, r := range returns {
		d := r - mean
		ss += d * d
	}
	std := math.Sqrt(ss / float64(n-1))
	return std * math.Sqrt(TradingDaysPerYear), nil
}

// CalculateMomentum returns close[t] - close[t-period]. When the series holds
// exactly `period` prices the oldest price is used as the reference.
func CalculateMomentum(prices []float64, period int) (float64, error) {
	if period <= 0 {
		return 0, ErrInvalidPeriod
	}
	if len(prices) < period {
		return 0, fmt.Errorf("momentum(%d) on %d prices: %w", period, len(prices), ErrInsufficientData)
	}
	last := len(prices) - 1
	ref := last - period
	if ref < 0 {
		ref = 0
	}
	return prices[last] - prices[ref], nil
}
