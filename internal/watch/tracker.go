package watch

import (
	"maps"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"TechSentinel/internal/logger"
	"TechSentinel/internal/model"
)

// Tracker remembers the last trend and signal seen for each symbol and
// reports when either moves. Safe for concurrent use.
type Tracker struct {
	mu       sync.Mutex
	state    *model.WatchState
	filePath string
	log      *logger.Logger
}

// NewTracker creates a Tracker, loading existing state from disk.
func NewTracker(filePath string, log *logger.Logger) (*Tracker, error) {
	state, err := LoadState(filePath)
	if err != nil {
		return nil, err
	}
	return &Tracker{state: state, filePath: filePath, log: log.Named("watch")}, nil
}

// NewMemoryTracker creates a Tracker that keeps its state in memory only.
func NewMemoryTracker(log *logger.Logger) *Tracker {
	return &Tracker{
		state: &model.WatchState{Symbols: map[string]model.SymbolState{}},
		log:   log.Named("watch"),
	}
}

// Observe records snap and returns the transition from the previous labels.
// changed is false for the first observation of a symbol and when neither
// label moved.
func (t *Tracker) Observe(snap *model.AnalysisSnapshot) (model.Transition, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := time.Now()
	price := snap.Indicators.CurrentPrice.Unwrap()
	tr := model.Transition{
		Symbol:   snap.Symbol,
		ToTrend:  snap.Trend,
		ToSignal: snap.Signal,
		Price:    price,
		At:       now,
	}

	prev, seen := t.state.Symbols[snap.Symbol]
	if seen {
		tr.FromTrend = prev.Trend
		tr.FromSignal = prev.Signal
	} else {
		tr.FromTrend = snap.Trend
		tr.FromSignal = snap.Signal
	}

	t.state.Symbols[snap.Symbol] = model.SymbolState{
		Trend:      snap.Trend,
		Signal:     snap.Signal,
		Price:      price,
		ObservedAt: now,
	}
	t.save()

	return tr, seen && (tr.TrendChanged() || tr.SignalChanged())
}

// CompleteScan bumps the scan counter once a full watchlist pass finishes.
func (t *Tracker) CompleteScan(at time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.state.Scans++
	t.state.LastScan = at
	t.save()
}

// State returns a copy of the current watch state.
func (t *Tracker) State() model.WatchState {
	t.mu.Lock()
	defer t.mu.Unlock()

	cp := *t.state
	cp.Symbols = maps.Clone(t.state.Symbols)
	return cp
}

// Symbols returns the tracked symbols in sorted order.
func (t *Tracker) Symbols() []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]string, 0, len(t.state.Symbols))
	for s := range t.state.Symbols {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

func (t *Tracker) save() {
	if t.filePath == "" {
		return
	}
	if err := SaveState(t.filePath, t.state); err != nil {
		t.log.Error("failed to save watch state", zap.String("file", t.filePath), zap.Error(err))
	}
}
