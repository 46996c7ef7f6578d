package strategy

import "TechSentinel/internal/model"

// Signal thresholds.
const (
	StrongOversoldRSI   = 30.0
	OversoldRSI         = 40.0
	StrongOverboughtRSI = 70.0
	OverboughtRSI       = 60.0
)

// GenerateSignal combines RSI(14), MACD(12,26,9) diff and Bollinger position.
// Strong rules are strictly narrower than their plain counterparts and must be checked first.
func GenerateSignal(ind model.IndicatorSet) model.SignalLabel {
	if ind.CurrentPrice.IsNone() || ind.RSI14.IsNone() || ind.MACDDiff.IsNone() ||
		ind.BollingerUpper.IsNone() || ind.BollingerLower.IsNone() {
		return model.SignalInsufficientData
	}
	return generateSignal(
		ind.CurrentPrice.Unwrap(),
		ind.RSI14.Unwrap(),
		ind.MACDDiff.Unwrap(),
		ind.BollingerLower.Unwrap(),
		ind.BollingerUpper.Unwrap(),
	)
}

func generateSignal(price, rsi, macdDiff, lower, upper float64) model.SignalLabel {
	switch {
	case rsi < StrongOversoldRSI && macdDiff > 0 && price < lower:
		return model.SignalStrongBuy
	case rsi < OversoldRSI && macdDiff > 0:
		return model.SignalBuy
	case rsi > StrongOverboughtRSI && macdDiff < 0 && price > upper:
		return model.SignalStrongSell
	case rsi > OverboughtRSI && macdDiff < 0:
		return model.SignalSell
	default:
		return model.SignalHold
	}
}
