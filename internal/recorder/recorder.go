package recorder

import (
	"time"

	"github.com/google/uuid"

	"TechSentinel/internal/model"
)

// HistoryRow is one stored snapshot summary.
type HistoryRow struct {
	RunID     string
	Timestamp time.Time
	AsOf      string
	Price     *float64
	RSI       *float64
	Trend     model.TrendLabel
	Signal    model.SignalLabel
}

// Recorder persists historical data for analysis.
type Recorder interface {
	RecordSnapshot(runID string, snap *model.AnalysisSnapshot) error
	RecordTransition(runID string, tr model.Transition) error
	History(symbol string, limit int) ([]HistoryRow, error)
	Close() error
}

// NewRunID returns an identifier grouping all rows written by one scan.
func NewRunID() string {
	return uuid.NewString()
}
