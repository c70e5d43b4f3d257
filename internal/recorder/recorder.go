package recorder

import (
	"context"
	"time"

	"FinanceHub/internal/model"
)

// SectorSnapshot is one scheduled sector evaluation.
type SectorSnapshot struct {
	ID       string
	Overview *model.SectorOverview
	Warnings *model.WarningIndicators
}

// SnapshotSummary is the stored header of a snapshot.
type SnapshotSummary struct {
	ID            string          `json:"id"`
	Timestamp     time.Time       `json:"timestamp"`
	AverageScore  float64         `json:"average_score"`
	Sentiment     model.Sentiment `json:"sentiment"`
	AnalyzedCount int             `json:"analyzed_count"`
	WarningCount  int             `json:"warning_count"`
}

// Recorder persists sector snapshot history. History is append-only and
// never feeds back into scoring.
type Recorder interface {
	RecordSnapshot(ctx context.Context, snap *SectorSnapshot) error
	RecentSnapshots(ctx context.Context, limit int) ([]SnapshotSummary, error)
	Close() error
}
