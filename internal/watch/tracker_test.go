package watch

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/moznion/go-optional"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TechSentinel/internal/logger"
	"TechSentinel/internal/model"
)

func snapshot(symbol string, trend model.TrendLabel, signal model.SignalLabel, price float64) *model.AnalysisSnapshot {
	return &model.AnalysisSnapshot{
		Symbol:     symbol,
		Trend:      trend,
		Signal:     signal,
		Indicators: model.IndicatorSet{CurrentPrice: optional.Some(price)},
	}
}

func newTracker(t *testing.T) (*Tracker, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "state", "watch.json")
	tr, err := NewTracker(path, logger.Nop())
	require.NoError(t, err)
	return tr, path
}

func TestTracker_FirstObservationIsNotAChange(t *testing.T) {
	tr, _ := newTracker(t)

	transition, changed := tr.Observe(snapshot("AAPL", model.TrendStrongUptrend, model.SignalBuy, 190))
	assert.False(t, changed)
	assert.Equal(t, model.TrendStrongUptrend, transition.FromTrend)
	assert.Equal(t, []string{"AAPL"}, tr.Symbols())
}

func TestTracker_DetectsTransitions(t *testing.T) {
	tr, _ := newTracker(t)
	tr.Observe(snapshot("AAPL", model.TrendStrongUptrend, model.SignalHold, 190))

	_, changed := tr.Observe(snapshot("AAPL", model.TrendStrongUptrend, model.SignalHold, 191))
	assert.False(t, changed, "same labels, different price")

	transition, changed := tr.Observe(snapshot("AAPL", model.TrendStrongUptrend, model.SignalSell, 185))
	require.True(t, changed)
	assert.False(t, transition.TrendChanged())
	assert.True(t, transition.SignalChanged())
	assert.Equal(t, model.SignalHold, transition.FromSignal)
	assert.Equal(t, model.SignalSell, transition.ToSignal)
	assert.Equal(t, 185.0, transition.Price)

	transition, changed = tr.Observe(snapshot("AAPL", model.TrendStrongDowntrend, model.SignalSell, 170))
	require.True(t, changed)
	assert.True(t, transition.TrendChanged())
	assert.Equal(t, model.TrendStrongUptrend, transition.FromTrend)
}

func TestTracker_PersistsAcrossRestarts(t *testing.T) {
	tr, path := newTracker(t)
	tr.Observe(snapshot("MSFT", model.TrendNeutral, model.SignalHold, 400))
	tr.CompleteScan(time.Date(2025, 3, 3, 22, 30, 0, 0, time.UTC))

	reloaded, err := NewTracker(path, logger.Nop())
	require.NoError(t, err)
	state := reloaded.State()
	assert.Equal(t, 1, state.Scans)
	require.Contains(t, state.Symbols, "MSFT")
	assert.Equal(t, model.SignalHold, state.Symbols["MSFT"].Signal)

	_, changed := reloaded.Observe(snapshot("MSFT", model.TrendNeutral, model.SignalStrongBuy, 380))
	assert.True(t, changed)
}

func TestTracker_StateIsACopy(t *testing.T) {
	tr, _ := newTracker(t)
	tr.Observe(snapshot("AAPL", model.TrendStrongUptrend, model.SignalBuy, 190))

	state := tr.State()
	delete(state.Symbols, "AAPL")
	assert.Equal(t, []string{"AAPL"}, tr.Symbols())
}

func TestTracker_ConcurrentObserve(t *testing.T) {
	tr, _ := newTracker(t)
	symbols := []string{"A", "B", "C", "D", "E", "F", "G", "H"}

	var wg sync.WaitGroup
	for _, s := range symbols {
		wg.Add(1)
		go func(sym string) {
			defer wg.Done()
			tr.Observe(snapshot(sym, model.TrendNeutral, model.SignalHold, 1))
		}(s)
	}
	wg.Wait()

	assert.Equal(t, symbols, tr.Symbols())
}

func TestLoadState_MissingFile(t *testing.T) {
	state, err := LoadState(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.NotNil(t, state.Symbols)
	assert.Zero(t, state.Scans)
}

func TestMemoryTracker_WritesNothing(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	tr := NewMemoryTracker(logger.Nop())
	tr.Observe(snapshot("AAPL", model.TrendStrongUptrend, model.SignalBuy, 190))
	_, changed := tr.Observe(snapshot("AAPL", model.TrendStrongDowntrend, model.SignalSell, 170))
	tr.CompleteScan(time.Now())

	assert.True(t, changed)
	assert.Equal(t, 1, tr.State().Scans)
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
