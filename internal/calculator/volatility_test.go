package calculator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateVolatility(t *testing.T) {
	// last three returns: +10%, -10%, +10%
	vol, err := CalculateVolatility([]float64{100, 110, 99, 108.9}, 3)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(0.04/3.0*252), vol, 1e-9)
}

func TestCalculateVolatility_ExactWindowUsesAvailableReturns(t *testing.T) {
	// two returns: +10%, -10%
	vol, err := CalculateVolatility([]float64{100, 110, 99}, 3)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(0.02*252), vol, 1e-9)
}

func TestCalculateVolatility_ConstantGrowthIsZero(t *testing.T) {
	prices := make([]float64, 30)
	prices[0] = 100
	for i := 1; i < len(prices); i++ {
		prices[i] = prices[i-1] * 1.01
	}
	vol, err := CalculateVolatility(prices, 20)
	require.NoError(t, err)
	assert.InDelta(t, 0, vol, 1e-9)
}

func TestCalculateVolatility_Gating(t *testing.T) {
	_, err := CalculateVolatility(ramp(1, 19), 20)
	assert.ErrorIs(t, err, ErrInsufficientData)

	_, err = CalculateVolatility(ramp(1, 20), 20)
	assert.NoError(t, err)

	_, err = CalculateVolatility(ramp(1, 20), 1)
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestCalculateMomentum(t *testing.T) {
	m, err := CalculateMomentum(ramp(1, 25), 20)
	require.NoError(t, err)
	assert.Equal(t, 20.0, m)

	m, err = CalculateMomentum(ramp(1, 20), 20)
	require.NoError(t, err)
	assert.Equal(t, 19.0, m)

	_, err = CalculateMomentum(ramp(1, 19), 20)
	assert.ErrorIs(t, err, ErrInsufficientData)
}
