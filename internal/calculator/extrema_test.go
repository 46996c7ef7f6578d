package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocalMaxima(t *testing.T) {
	assert.Equal(t, []int{1, 3}, localMaxima([]float64{1, 3, 2, 5, 4}))
	assert.Equal(t, []int{1}, localMaxima([]float64{1, 2, 2, 1}))
	assert.Equal(t, []int{2}, localMaxima([]float64{1, 2, 2, 2, 1}))
	assert.Empty(t, localMaxima([]float64{1, 2, 2}), "plateau touching the end is not a peak")
	assert.Empty(t, localMaxima([]float64{5, 4, 3}), "endpoints are never peaks")
	assert.Empty(t, localMaxima([]float64{1, 2}))
	assert.Empty(t, localMaxima(nil))
}

func TestFindTroughs(t *testing.T) {
	assert.Equal(t, []int{1}, FindTroughs([]float64{3, 1, 2}, 1))
	assert.Equal(t, []int{1, 3}, FindTroughs([]float64{3, 1, 2, 0, 4}, 1))
}

func TestFindPeaks_SawtoothSpacing(t *testing.T) {
	// peaks every 10 bars at 9, 19, ..., 89
	values := make([]float64, 100)
	for i := range values {
		values[i] = float64(i % 10)
	}
	peaks := FindPeaks(values, 20)
	assert.Equal(t, []int{9, 29, 49, 69, 89}, peaks)
	for i := 1; i < len(peaks); i++ {
		assert.GreaterOrEqual(t, peaks[i]-peaks[i-1], 20)
	}
}

func TestFindPeaks_EarliestWins(t *testing.T) {
	// a higher peak 5 bars after the first is still suppressed
	values := []float64{0, 5, 0, 0, 0, 0, 9, 0}
	assert.Equal(t, []int{1}, FindPeaks(values, 20))
	assert.Equal(t, []int{1, 6}, FindPeaks(values, 5))
}
