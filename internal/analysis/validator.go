package analysis

import (
	"math"

	"TechSentinel/internal/model"
)

// Validate checks the raw series and returns it unchanged when it is well formed:
// non-empty, positive finite prices, non-negative finite volume and strictly
// increasing calendar days.
func Validate(series model.PriceSeries) (model.PriceSeries, error) {
	if len(series.Bars) == 0 {
		return series, newInputError(ErrCodeEmptySeries, -1, "series has no bars")
	}

	var prevDay int64
	for i, b := range series.Bars {
		for _, p := range [...]struct {
			name  string
			value float64
		}{{"open", b.Open}, {"high", b.High}, {"low", b.Low}, {"close", b.Close}} {
			if math.IsNaN(p.value) || math.IsInf(p.value, 0) || p.value <= 0 {
				return series, newInputError(ErrCodeInvalidPrice, i, "%s must be positive and finite, got %v", p.name, p.value)
			}
		}
		if math.IsNaN(b.Volume) || math.IsInf(b.Volume, 0) || b.Volume < 0 {
			return series, newInputError(ErrCodeInvalidVolume, i, "volume must be non-negative and finite, got %v", b.Volume)
		}

		day := calendarDay(b)
		if i > 0 && day <= prevDay {
			return series, newInputError(ErrCodeNonMonotonicDate, i, "date %s does not follow %s",
				b.Time.Format("2006-01-02"), series.Bars[i-1].Time.Format("2006-01-02"))
		}
		prevDay = day
	}
	return series, nil
}

// calendarDay maps a bar to a day ordinal in the bar's own location.
func calendarDay(b model.Bar) int64 {
	y, m, d := b.Time.Date()
	return int64(y)*10000 + int64(m)*100 + int64(d)
}
