package analysis

import (
	"github.com/moznion/go-optional"

	"TechSentinel/internal/calculator"
	"TechSentinel/internal/model"
)

// Indicator windows. Each indicator is present only when the series holds at
// least its window of bars.
const (
	SMAShortWindow  = 20
	SMAMediumWindow = 50
	SMALongWindow   = 200

	MACDFast   = 12
	MACDSlow   = 26
	MACDSignal = 9

	MACDAltFast   = 10
	MACDAltSlow   = 20
	MACDAltSignal = 9

	RSIWindow        = 14
	BollingerWindow  = 20
	BollingerK       = 2.0
	VolatilityWindow = 20
	MomentumWindow   = 20
)

// ComputeIndicators derives the latest indicator values from a validated series.
// Every indicator is gated on the series length alone, independent of the others.
func ComputeIndicators(series model.PriceSeries) model.IndicatorSet {
	closes := series.Closes()
	var set model.IndicatorSet

	if len(closes) > 0 {
		set.CurrentPrice = optional.Some(closes[len(closes)-1])
	}

	set.SMA20 = gate(calculator.CalculateSMA(closes, SMAShortWindow))
	set.SMA50 = gate(calculator.CalculateSMA(closes, SMAMediumWindow))
	set.SMA200 = gate(calculator.CalculateSMA(closes, SMALongWindow))

	if macd, err := calculator.CalculateMACD(closes, MACDFast, MACDSlow, MACDSignal); err == nil {
		set.MACDLine = optional.Some(macd.Line)
		set.MACDSignal = optional.Some(macd.Signal)
		set.MACDDiff = optional.Some(macd.Diff)
	}
	if macd, err := calculator.CalculateMACD(closes, MACDAltFast, MACDAltSlow, MACDAltSignal); err == nil {
		set.MACDDiffAlt = optional.Some(macd.Diff)
	}

	set.RSI14 = gate(calculator.CalculateRSI(closes, RSIWindow))

	if bands, err := calculator.CalculateBollinger(closes, BollingerWindow, BollingerK); err == nil {
		set.BollingerUpper = optional.Some(bands.Upper)
		set.BollingerMid = optional.Some(bands.Middle)
		set.BollingerLower = optional.Some(bands.Lower)
	}

	set.OBV = gate(calculator.CalculateOBV(closes, series.Volumes()))
	set.Volatility20 = gate(calculator.CalculateVolatility(closes, VolatilityWindow))
	set.Momentum20 = gate(calculator.CalculateMomentum(closes, MomentumWindow))

	return set
}

func gate(v float64, err error) optional.Option[float64] {
	if err != nil {
		return optional.None[float64]()
	}
	return optional.Some(v)
}
