package strategy

import (
	"testing"

	"github.com/moznion/go-optional"
	"github.com/stretchr/testify/assert"

	"TechSentinel/internal/model"
)

func signalInputs(price, rsi, macdDiff, lower, upper float64) model.IndicatorSet {
	return model.IndicatorSet{
		CurrentPrice:   optional.Some(price),
		RSI14:          optional.Some(rsi),
		MACDDiff:       optional.Some(macdDiff),
		BollingerLower: optional.Some(lower),
		BollingerUpper: optional.Some(upper),
	}
}

func TestGenerateSignal_Rules(t *testing.T) {
	tests := []struct {
		name                                string
		price, rsi, macdDiff, lower, upper float64
		want                                model.SignalLabel
	}{
		{"strong buy wins over buy", 90, 25, 0.5, 95, 110, model.SignalStrongBuy},
		{"buy when price inside bands", 100, 25, 0.5, 95, 110, model.SignalBuy},
		{"buy at rsi 35", 100, 35, 0.1, 95, 110, model.SignalBuy},
		{"strong sell wins over sell", 115, 75, -0.5, 95, 110, model.SignalStrongSell},
		{"sell when price inside bands", 105, 75, -0.5, 95, 110, model.SignalSell},
		{"sell at rsi 65", 105, 65, -0.2, 95, 110, model.SignalSell},
		{"hold on neutral rsi", 100, 50, 0.5, 95, 110, model.SignalHold},
		{"hold when macd disagrees with oversold", 90, 25, -0.5, 95, 110, model.SignalHold},
		{"hold when macd disagrees with overbought", 115, 75, 0.5, 95, 110, model.SignalHold},
		{"hold on zero macd", 90, 25, 0, 95, 110, model.SignalHold},
		{"rsi exactly 30 is only buy", 90, 30, 0.5, 95, 110, model.SignalBuy},
		{"rsi exactly 40 holds", 90, 40, 0.5, 95, 110, model.SignalHold},
		{"rsi exactly 70 is only sell", 115, 70, -0.5, 95, 110, model.SignalSell},
		{"rsi exactly 60 holds", 115, 60, -0.5, 95, 110, model.SignalHold},
		{"price on lower band is only buy", 95, 25, 0.5, 95, 110, model.SignalBuy},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GenerateSignal(signalInputs(tt.price, tt.rsi, tt.macdDiff, tt.lower, tt.upper))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGenerateSignal_InsufficientData(t *testing.T) {
	full := signalInputs(90, 25, 0.5, 95, 110)

	missing := []func(*model.IndicatorSet){
		func(s *model.IndicatorSet) { s.RSI14 = optional.None[float64]() },
		func(s *model.IndicatorSet) { s.MACDDiff = optional.None[float64]() },
		func(s *model.IndicatorSet) { s.BollingerLower = optional.None[float64]() },
		func(s *model.IndicatorSet) { s.BollingerUpper = optional.None[float64]() },
	}
	for _, drop := range missing {
		ind := full
		drop(&ind)
		assert.Equal(t, model.SignalInsufficientData, GenerateSignal(ind))
	}
}

func TestGenerateSignal_AltMACDIsNotUsed(t *testing.T) {
	ind := signalInputs(100, 35, 0.5, 95, 110)
	ind.MACDDiffAlt = optional.Some(-3.0)
	assert.Equal(t, model.SignalBuy, GenerateSignal(ind))
}
