package model

import "time"

// ExtremumSet holds recent turning points, oldest first.
type ExtremumSet struct {
	Support    []float64 `json:"support"`
	Resistance []float64 `json:"resistance"`
}

// AnalysisSnapshot is the engine's output for one series.
type AnalysisSnapshot struct {
	Symbol     string       `json:"symbol"`
	Period     string       `json:"period"`
	AsOf       time.Time    `json:"as_of"`
	Bars       int          `json:"bars"`
	Indicators IndicatorSet `json:"indicators"`
	Extrema    ExtremumSet  `json:"extrema"`
	Trend      TrendLabel   `json:"trend"`
	Signal     SignalLabel  `json:"signal"`
}

// Flatten renders the snapshot as a single-level key/value map.
// Absent indicators map to nil so encoders emit null rather than zero.
func (s *AnalysisSnapshot) Flatten() map[string]any {
	out := map[string]any{
		"symbol":            s.Symbol,
		"period":            s.Period,
		"as_of":             s.AsOf.Format("2006-01-02"),
		"bars":              s.Bars,
		"trend":             string(s.Trend),
		"signal":            string(s.Signal),
		"support_levels":    nonNil(s.Extrema.Support),
		"resistance_levels": nonNil(s.Extrema.Resistance),
	}
	for _, e := range s.Indicators.Entries() {
		if e.Value.IsSome() {
			out[e.Name] = e.Value.Unwrap()
		} else {
			out[e.Name] = nil
		}
	}
	return out
}

func nonNil(levels []float64) []float64 {
	if levels == nil {
		return []float64{}
	}
	return levels
}
