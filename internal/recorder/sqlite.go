package recorder

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	"FinanceHub/internal/model"
)

// SQLiteRecorder persists sector history to a SQLite database.
type SQLiteRecorder struct {
	db  *sql.DB
	mu  sync.Mutex
	log zerolog.Logger
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string, log zerolog.Logger) (*SQLiteRecorder, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL lets dashboards read while the scheduler writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db, log: log.With().Str("component", "recorder").Logger()}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	r.log.Info().Str("path", dbPath).Msg("sqlite recorder opened")
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS sector_snapshots (
			id             TEXT PRIMARY KEY,
			timestamp      INTEGER NOT NULL,
			average_score  REAL,
			sentiment      TEXT,
			analyzed_count INTEGER,
			warning_count  INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_snapshots_ts ON sector_snapshots(timestamp)`,

		`CREATE TABLE IF NOT EXISTS entity_scores (
			id               INTEGER PRIMARY KEY AUTOINCREMENT,
			snapshot_id      TEXT NOT NULL REFERENCES sector_snapshots(id),
			position         INTEGER,
			name             TEXT,
			symbol           TEXT,
			health_score     INTEGER,
			status           TEXT,
			current_price    REAL,
			price_change_pct REAL,
			volatility       REAL,
			pe_ratio         REAL,
			pb_ratio         REAL,
			dividend_yield   REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_entity_snapshot ON entity_scores(snapshot_id)`,
		`CREATE INDEX IF NOT EXISTS idx_entity_symbol ON entity_scores(symbol)`,

		`CREATE TABLE IF NOT EXISTS sector_warnings (
			id             INTEGER PRIMARY KEY AUTOINCREMENT,
			snapshot_id    TEXT NOT NULL REFERENCES sector_snapshots(id),
			level          TEXT,
			indicator      TEXT,
			description    TEXT,
			recommendation TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_warning_snapshot ON sector_warnings(snapshot_id)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// nullable maps an unavailable optional to SQL NULL.
func nullable(v float64, ok bool) sql.NullFloat64 {
	return sql.NullFloat64{Float64: v, Valid: ok}
}

// RecordSnapshot writes the snapshot header, entity rows and warnings in one transaction.
func (r *SQLiteRecorder) RecordSnapshot(ctx context.Context, snap *SectorSnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ov := snap.Overview
	warnCount := 0
	if snap.Warnings != nil {
		warnCount = len(snap.Warnings.Warnings)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `INSERT INTO sector_snapshots
		(id, timestamp, average_score, sentiment, analyzed_count, warning_count)
		VALUES (?,?,?,?,?,?)`,
		snap.ID, ov.Timestamp.Unix(), ov.AverageScore, string(ov.Sentiment), ov.AnalyzedCount, warnCount,
	); err != nil {
		return fmt.Errorf("insert snapshot: %w", err)
	}

	for i, e := range ov.Entities {
		m, h := e.Metrics, e.Health
		pe, peOK := m.PERatio.Get()
		pb, pbOK := m.PBRatio.Get()
		if _, err := tx.ExecContext(ctx, `INSERT INTO entity_scores
			(snapshot_id, position, name, symbol, health_score, status,
			 current_price, price_change_pct, volatility, pe_ratio, pb_ratio, dividend_yield)
			VALUES (?,?,?,?,?,?,?,?,?,?,?,?)`,
			snap.ID, i, e.Name, e.Symbol, h.Score, string(h.Status),
			m.CurrentPrice, m.PriceChangePct, m.VolatilityAnnualized,
			nullable(pe, peOK), nullable(pb, pbOK), m.DividendYieldPct,
		); err != nil {
			return fmt.Errorf("insert entity %s: %w", e.Name, err)
		}
	}

	if snap.Warnings != nil {
		for _, w := range snap.Warnings.Warnings {
			if _, err := tx.ExecContext(ctx, `INSERT INTO sector_warnings
				(snapshot_id, level, indicator, description, recommendation)
				VALUES (?,?,?,?,?)`,
				snap.ID, string(w.Level), w.Indicator, w.Description, w.Recommendation,
			); err != nil {
				return fmt.Errorf("insert warning: %w", err)
			}
		}
	}

	return tx.Commit()
}

// RecentSnapshots returns up to limit snapshot headers, newest first.
func (r *SQLiteRecorder) RecentSnapshots(ctx context.Context, limit int) ([]SnapshotSummary, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.db.QueryContext(ctx, `SELECT id, timestamp, average_score, sentiment, analyzed_count, warning_count
		FROM sector_snapshots ORDER BY timestamp DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query snapshots: %w", err)
	}
	defer rows.Close()

	out := []SnapshotSummary{}
	for rows.Next() {
		var (
			s         SnapshotSummary
			ts        int64
			sentiment string
		)
		if err := rows.Scan(&s.ID, &ts, &s.AverageScore, &sentiment, &s.AnalyzedCount, &s.WarningCount); err != nil {
			return nil, fmt.Errorf("scan snapshot: %w", err)
		}
		s.Timestamp = time.Unix(ts, 0)
		s.Sentiment = model.Sentiment(sentiment)
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *SQLiteRecorder) Close() error {
	r.log.Info().Msg("closing sqlite recorder")
	return r.db.Close()
}
