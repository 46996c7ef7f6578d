package calculator

import "fmt"

// CalculateRSI computes the Wilder-smoothed RSI over the given period.
// Average gain and loss are recursive means with alpha 1/period seeded at the
// first bar (which carries no change), so the value is defined from `period` prices.
// Returns 100 when there were no losses.
func CalculateRSI(prices []float64, period int) (float64, error) {
	if period <= 0 {
		return 0, ErrInvalidPeriod
	}
	if len(prices) < period {
		return 0, fmt.Errorf("RSI(%d) on %d prices: %w", period, len(prices), ErrInsufficientData)
	}

	alpha := 1.0 / float64(period)
	var avgGain, avgLoss float64
	for i := 1; i < len(prices); i++ {
		change := prices[i] - prices[i-1]
		gain, loss := 0.0, 0.0
		if change > 0 {
			gain = change
		} else {
			loss = -change
		}
		avgGain = alpha*gain + (1-alpha)*avgGain
		avgLoss = alpha*loss + (1-alpha)*avgLoss
	}

	if avgLoss == 0 {
		return 100.0, nil
	}
	rs := avgGain / avgLoss
	return 100.0 - 100.0/(1.0+rs), nil
}
