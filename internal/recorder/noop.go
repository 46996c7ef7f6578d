package recorder

import "TechSentinel/internal/model"

// NoopRecorder is a no-op implementation used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordSnapshot(_ string, _ *model.AnalysisSnapshot) error { return nil }
func (n *NoopRecorder) RecordTransition(_ string, _ model.Transition) error      { return nil }
func (n *NoopRecorder) History(_ string, _ int) ([]HistoryRow, error)            { return nil, nil }
func (n *NoopRecorder) Close() error                                             { return nil }
