package model

import "github.com/moznion/go-optional"

// Indicator names used in flattened output and storage.
const (
	IndicatorSMA20          = "sma20"
	IndicatorSMA50          = "sma50"
	IndicatorSMA200         = "sma200"
	IndicatorMACDLine       = "macd_line"
	IndicatorMACDSignal     = "macd_signal"
	IndicatorMACDDiff       = "macd_diff_12_26_9"
	IndicatorMACDDiffAlt    = "macd_diff_10_20_9"
	IndicatorRSI14          = "rsi14"
	IndicatorBollingerUpper = "bollinger_upper"
	IndicatorBollingerLower = "bollinger_lower"
	IndicatorBollingerMid   = "bollinger_mid"
	IndicatorOBV            = "obv"
	IndicatorVolatility20   = "volatility20_annualized"
	IndicatorMomentum20     = "momentum20"
	IndicatorCurrentPrice   = "current_price"
)

// IndicatorSet holds the latest value of every indicator.
// A field is None when the series was shorter than that indicator's window;
// None is never the same thing as a computed zero.
type IndicatorSet struct {
	SMA20          optional.Option[float64] `json:"sma20"`
	SMA50          optional.Option[float64] `json:"sma50"`
	SMA200         optional.Option[float64] `json:"sma200"`
	MACDLine       optional.Option[float64] `json:"macd_line"`
	MACDSignal     optional.Option[float64] `json:"macd_signal"`
	MACDDiff       optional.Option[float64] `json:"macd_diff_12_26_9"`
	MACDDiffAlt    optional.Option[float64] `json:"macd_diff_10_20_9"`
	RSI14          optional.Option[float64] `json:"rsi14"`
	BollingerUpper optional.Option[float64] `json:"bollinger_upper"`
	BollingerLower optional.Option[float64] `json:"bollinger_lower"`
	BollingerMid   optional.Option[float64] `json:"bollinger_mid"`
	OBV            optional.Option[float64] `json:"obv"`
	Volatility20   optional.Option[float64] `json:"volatility20_annualized"`
	Momentum20     optional.Option[float64] `json:"momentum20"`
	CurrentPrice   optional.Option[float64] `json:"current_price"`
}

// IndicatorEntry is one named indicator value.
type IndicatorEntry struct {
	Name  string
	Value optional.Option[float64]
}

// Entries lists every indicator in a stable order.
func (s IndicatorSet) Entries() []IndicatorEntry {
	return []IndicatorEntry{
		{IndicatorCurrentPrice, s.CurrentPrice},
		{IndicatorSMA20, s.SMA20},
		{IndicatorSMA50, s.SMA50},
		{IndicatorSMA200, s.SMA200},
		{IndicatorMACDLine, s.MACDLine},
		{IndicatorMACDSignal, s.MACDSignal},
		{IndicatorMACDDiff, s.MACDDiff},
		{IndicatorMACDDiffAlt, s.MACDDiffAlt},
		{IndicatorRSI14, s.RSI14},
		{IndicatorBollingerUpper, s.BollingerUpper},
		{IndicatorBollingerLower, s.BollingerLower},
		{IndicatorBollingerMid, s.BollingerMid},
		{IndicatorOBV, s.OBV},
		{IndicatorVolatility20, s.Volatility20},
		{IndicatorMomentum20, s.Momentum20},
	}
}
