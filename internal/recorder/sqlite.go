package recorder

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/moznion/go-optional"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"TechSentinel/internal/logger"
	"TechSentinel/internal/model"
)

// SQLiteRecorder persists historical data to a SQLite database.
type SQLiteRecorder struct {
	db  *sql.DB
	mu  sync.Mutex
	log *logger.Logger
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string, log *logger.Logger) (*SQLiteRecorder, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so dashboards can read while scans write.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db, log: log.Named("recorder")}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	r.log.Info("sqlite recorder opened", zap.String("path", dbPath))
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS snapshots (
			id                 INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id             TEXT NOT NULL,
			timestamp          INTEGER NOT NULL,
			symbol             TEXT NOT NULL,
			period             TEXT,
			as_of              TEXT,
			bars               INTEGER,
			current_price      REAL,
			sma20              REAL,
			sma50              REAL,
			sma200             REAL,
			macd_line          REAL,
			macd_signal        REAL,
			macd_diff          REAL,
			macd_diff_alt      REAL,
			rsi14              REAL,
			bollinger_upper    REAL,
			bollinger_mid      REAL,
			bollinger_lower    REAL,
			obv                REAL,
			volatility20       REAL,
			momentum20         REAL,
			support_levels     TEXT,
			resistance_levels  TEXT,
			trend              TEXT,
			signal             TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_snapshots_symbol_ts ON snapshots(symbol, timestamp)`,
		`CREATE INDEX IF NOT EXISTS idx_snapshots_run ON snapshots(run_id)`,

		`CREATE TABLE IF NOT EXISTS transitions (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id      TEXT NOT NULL,
			timestamp   INTEGER NOT NULL,
			symbol      TEXT NOT NULL,
			from_trend  TEXT,
			to_trend    TEXT,
			from_signal TEXT,
			to_signal   TEXT,
			price       REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_transitions_ts ON transitions(timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// nullable maps an absent indicator to SQL NULL.
func nullable(v optional.Option[float64]) any {
	if v.IsNone() {
		return nil
	}
	return v.Unwrap()
}

func levels(v []float64) (string, error) {
	if v == nil {
		v = []float64{}
	}
	b, err := json.Marshal(v)
	return string(b), err
}

func (r *SQLiteRecorder) RecordSnapshot(runID string, snap *model.AnalysisSnapshot) error {
	support, err := levels(snap.Extrema.Support)
	if err != nil {
		return err
	}
	resistance, err := levels(snap.Extrema.Resistance)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	ind := snap.Indicators
	_, err = r.db.Exec(`INSERT INTO snapshots
		(run_id, timestamp, symbol, period, as_of, bars,
		 current_price, sma20, sma50, sma200,
		 macd_line, macd_signal, macd_diff, macd_diff_alt, rsi14,
		 bollinger_upper, bollinger_mid, bollinger_lower,
		 obv, volatility20, momentum20,
		 support_levels, resistance_levels, trend, signal)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		runID, time.Now().Unix(), snap.Symbol, snap.Period, snap.AsOf.Format("2006-01-02"), snap.Bars,
		nullable(ind.CurrentPrice), nullable(ind.SMA20), nullable(ind.SMA50), nullable(ind.SMA200),
		nullable(ind.MACDLine), nullable(ind.MACDSignal), nullable(ind.MACDDiff), nullable(ind.MACDDiffAlt),
		nullable(ind.RSI14),
		nullable(ind.BollingerUpper), nullable(ind.BollingerMid), nullable(ind.BollingerLower),
		nullable(ind.OBV), nullable(ind.Volatility20), nullable(ind.Momentum20),
		support, resistance, string(snap.Trend), string(snap.Signal),
	)
	return err
}

func (r *SQLiteRecorder) RecordTransition(runID string, tr model.Transition) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO transitions
		(run_id, timestamp, symbol, from_trend, to_trend, from_signal, to_signal, price)
		VALUES (?,?,?,?,?,?,?,?)`,
		runID, tr.At.Unix(), tr.Symbol,
		string(tr.FromTrend), string(tr.ToTrend),
		string(tr.FromSignal), string(tr.ToSignal),
		tr.Price,
	)
	return err
}

// History returns the most recent snapshots for symbol, newest first.
func (r *SQLiteRecorder) History(symbol string, limit int) ([]HistoryRow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows, err := r.db.Query(`SELECT run_id, timestamp, as_of, current_price, rsi14, trend, signal
		FROM snapshots WHERE symbol = ? ORDER BY timestamp DESC, id DESC LIMIT ?`, symbol, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []HistoryRow
	for rows.Next() {
		var (
			row           HistoryRow
			ts            int64
			price, rsi    sql.NullFloat64
			trend, signal string
		)
		if err := rows.Scan(&row.RunID, &ts, &row.AsOf, &price, &rsi, &trend, &signal); err != nil {
			return nil, err
		}
		row.Timestamp = time.Unix(ts, 0)
		if price.Valid {
			row.Price = &price.Float64
		}
		if rsi.Valid {
			row.RSI = &rsi.Float64
		}
		row.Trend = model.TrendLabel(trend)
		row.Signal = model.SignalLabel(signal)
		out = append(out, row)
	}
	return out, rows.Err()
}

func (r *SQLiteRecorder) Close() error {
	r.log.Info("closing sqlite recorder")
	return r.db.Close()
}
