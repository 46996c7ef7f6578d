package strategy

import (
	"testing"

	"github.com/moznion/go-optional"
	"github.com/stretchr/testify/assert"

	"TechSentinel/internal/model"
)

func indicators(price, sma50, sma200 float64) model.IndicatorSet {
	return model.IndicatorSet{
		CurrentPrice: optional.Some(price),
		SMA50:        optional.Some(sma50),
		SMA200:       optional.Some(sma200),
	}
}

func TestClassifyTrend_Rules(t *testing.T) {
	tests := []struct {
		name                 string
		price, sma50, sma200 float64
		want                 model.TrendLabel
	}{
		{"strong uptrend", 110, 105, 100, model.TrendStrongUptrend},
		{"potential uptrend", 110, 95, 100, model.TrendPotentialUptrend},
		{"strong downtrend", 90, 95, 100, model.TrendStrongDowntrend},
		{"potential downtrend", 95, 100, 90, model.TrendPotentialDowntrend},
		{"all equal", 100, 100, 100, model.TrendNeutral},
		{"price above, sma50 equals sma200", 110, 100, 100, model.TrendNeutral},
		{"price below, sma50 equals sma200", 90, 100, 100, model.TrendNeutral},
		{"price on sma50, rising averages", 100, 100, 90, model.TrendNeutral},
		{"price above both, sma50 below", 120, 100, 110, model.TrendPotentialUptrend},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyTrend(indicators(tt.price, tt.sma50, tt.sma200)))
		})
	}
}

func TestClassifyTrend_InsufficientData(t *testing.T) {
	ind := indicators(110, 105, 100)
	ind.SMA200 = optional.None[float64]()
	assert.Equal(t, model.TrendInsufficientData, ClassifyTrend(ind))

	ind = indicators(110, 105, 100)
	ind.SMA50 = optional.None[float64]()
	assert.Equal(t, model.TrendInsufficientData, ClassifyTrend(ind))

	assert.Equal(t, model.TrendInsufficientData, ClassifyTrend(model.IndicatorSet{}))
}
