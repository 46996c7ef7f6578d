package model

import "time"

// SymbolState is the last classification seen for a watched symbol.
type SymbolState struct {
	Trend      TrendLabel  `json:"trend"`
	Signal     SignalLabel `json:"signal"`
	Price      float64     `json:"price"`
	ObservedAt time.Time   `json:"observed_at"`
}

// WatchState tracks the latest labels for every watched symbol.
type WatchState struct {
	Symbols   map[string]SymbolState `json:"symbols"`
	Scans     int                    `json:"scans"`
	LastScan  time.Time              `json:"last_scan"`
	UpdatedAt time.Time              `json:"updated_at"`
}

// Transition describes a change of trend or signal between two scans.
type Transition struct {
	Symbol     string
	FromTrend  TrendLabel
	ToTrend    TrendLabel
	FromSignal SignalLabel
	ToSignal   SignalLabel
	Price      float64
	At         time.Time
}

// TrendChanged reports whether the trend label moved.
func (t Transition) TrendChanged() bool { return t.FromTrend != t.ToTrend }

// SignalChanged reports whether the signal label moved.
func (t Transition) SignalChanged() bool { return t.FromSignal != t.ToSignal }

// ScanResult is the outcome of analyzing one watchlist symbol.
type ScanResult struct {
	Symbol   string
	Snapshot *AnalysisSnapshot
	Err      error

	// Transition is set when the scan moved the symbol's trend or signal.
	Transition *Transition
}
