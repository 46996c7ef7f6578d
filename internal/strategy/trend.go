package strategy

import "TechSentinel/internal/model"

// ClassifyTrend maps the latest close against SMA50 and SMA200.
// Rules are checked in order and the first match wins:
//
//	price > sma50 > sma200            Strong Uptrend
//	price > sma50, sma50 < sma200     Potential Uptrend
//	price < sma50 < sma200            Strong Downtrend
//	price < sma50, sma50 > sma200     Potential Downtrend
//	otherwise                         Neutral
//
// The rule set is not exhaustive: sma50 == sma200 with price off sma50 falls through to Neutral.
func ClassifyTrend(ind model.IndicatorSet) model.TrendLabel {
	if ind.CurrentPrice.IsNone() || ind.SMA50.IsNone() || ind.SMA200.IsNone() {
		return model.TrendInsufficientData
	}
	return classifyTrend(ind.CurrentPrice.Unwrap(), ind.SMA50.Unwrap(), ind.SMA200.Unwrap())
}

func classifyTrend(price, sma50, sma200 float64) model.TrendLabel {
	switch {
	case price > sma50 && sma50 > sma200:
		return model.TrendStrongUptrend
	case price > sma50 && sma50 < sma200:
		return model.TrendPotentialUptrend
	case price < sma50 && sma50 < sma200:
		return model.TrendStrongDowntrend
	case price < sma50 && sma50 > sma200:
		return model.TrendPotentialDowntrend
	default:
		return model.TrendNeutral
	}
}
