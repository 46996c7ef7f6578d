package calculator

import (
	"fmt"

	"github.com/markcheno/go-talib"
)

// Bands holds the latest Bollinger Band values.
type Bands struct {
	Upper  float64
	Middle float64
	Lower  float64
}

// CalculateBollinger computes Bollinger Bands as SMA(period) ± k population standard deviations.
func CalculateBollinger(prices []float64, period int, k float64) (Bands, error) {
	if period <= 0 {
		return Bands{}, ErrInvalidPeriod
	}
	if len(prices) < period {
		return Bands{}, fmt.Errorf("Bollinger(%d) on %d prices: %w", period, len(prices), ErrInsufficientData)
	}
	upper, middle, lower := talib.BBands(prices, period, k, k, talib.SMA)
	last := len(prices) - 1
	return Bands{Upper: upper[last], Middle: middle[last], Lower: lower[last]}, nil
}
