package analysis

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TechSentinel/internal/model"
)

func TestFlatten_AbsentIsNull(t *testing.T) {
	snap, err := Analyze(wavySeries(30))
	require.NoError(t, err)

	flat := snap.Flatten()
	assert.Nil(t, flat[model.IndicatorSMA50])
	assert.Nil(t, flat[model.IndicatorSMA200])
	assert.NotNil(t, flat[model.IndicatorSMA20])
	assert.Equal(t, string(model.TrendInsufficientData), flat["trend"])
	assert.Equal(t, string(snap.Signal), flat["signal"])
	assert.NotNil(t, flat["support_levels"])

	raw, err := json.Marshal(flat)
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	v, ok := decoded[model.IndicatorSMA200]
	assert.True(t, ok, "absent indicator keeps its key")
	assert.Nil(t, v)
	assert.IsType(t, float64(0), decoded[model.IndicatorSMA20])
}

func TestSnapshot_JSONRoundTripKeepsAbsence(t *testing.T) {
	snap, err := Analyze(wavySeries(30))
	require.NoError(t, err)

	raw, err := json.Marshal(snap)
	require.NoError(t, err)

	var back model.AnalysisSnapshot
	require.NoError(t, json.Unmarshal(raw, &back))

	assert.True(t, back.Indicators.SMA200.IsNone())
	assert.True(t, back.Indicators.SMA50.IsNone())
	require.True(t, back.Indicators.SMA20.IsSome())
	assert.Equal(t, snap.Indicators.SMA20.Unwrap(), back.Indicators.SMA20.Unwrap())
	assert.Equal(t, snap.Trend, back.Trend)
	assert.Equal(t, snap.Signal, back.Signal)
}

func TestSnapshot_ZeroIsNotAbsent(t *testing.T) {
	closes := make([]float64, 30)
	for i := range closes {
		closes[i] = 50
	}
	snap, err := Analyze(seriesFromCloses(closes))
	require.NoError(t, err)

	require.True(t, snap.Indicators.Momentum20.IsSome())
	assert.Equal(t, 0.0, snap.Indicators.Momentum20.Unwrap())

	flat := snap.Flatten()
	assert.Equal(t, 0.0, flat[model.IndicatorMomentum20])
}
