package recorder

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FinanceHub/internal/model"
)

func testSnapshot(id string, ts time.Time, avg float64) *SectorSnapshot {
	ov := &model.SectorOverview{
		Entities: []model.EntityAnalysis{
			{
				Name:    "HDFC Bank",
				Symbol:  "HDFCBANK.NS",
				Metrics: &model.DerivedMetrics{CurrentPrice: 1650, PERatio: model.Some(18.2)},
				Health:  &model.HealthScoreResult{Score: 72, Status: model.StatusGood},
			},
			{
				Name:    "IDBI Bank",
				Symbol:  "IDBI.NS",
				Metrics: &model.DerivedMetrics{CurrentPrice: 80},
				Health:  &model.HealthScoreResult{Score: 31, Status: model.StatusPoor},
			},
		},
		AverageScore:  avg,
		Sentiment:     model.SentimentBearish,
		AnalyzedCount: 2,
		Timestamp:     ts,
	}
	return &SectorSnapshot{
		ID:       id,
		Overview: ov,
		Warnings: &model.WarningIndicators{Warnings: []model.Warning{{Level: model.WarningHigh, Indicator: "Low Sector Health Score"}}},
	}
}

func TestSQLiteRecorder_RoundTrip(t *testing.T) {
	r, err := NewSQLiteRecorder(filepath.Join(t.TempDir(), "history.db"), zerolog.Nop())
	require.NoError(t, err)
	defer r.Close()

	ctx := context.Background()
	base := time.Date(2024, 6, 3, 16, 0, 0, 0, time.UTC)
	require.NoError(t, r.RecordSnapshot(ctx, testSnapshot("a", base, 51.5)))
	require.NoError(t, r.RecordSnapshot(ctx, testSnapshot("b", base.Add(24*time.Hour), 48)))

	got, err := r.RecentSnapshots(ctx, 10)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "b", got[0].ID, "newest first")
	assert.Equal(t, 48.0, got[0].AverageScore)
	assert.Equal(t, model.SentimentBearish, got[0].Sentiment)
	assert.Equal(t, 2, got[0].AnalyzedCount)
	assert.Equal(t, 1, got[0].WarningCount)

	var entities int
	require.NoError(t, r.db.QueryRow(`SELECT COUNT(*) FROM entity_scores WHERE snapshot_id = 'a'`).Scan(&entities))
	assert.Equal(t, 2, entities)

	var pbNull int
	require.NoError(t, r.db.QueryRow(`SELECT COUNT(*) FROM entity_scores WHERE pb_ratio IS NULL`).Scan(&pbNull))
	assert.Equal(t, 4, pbNull, "unavailable ratios are stored as NULL")

	limited, err := r.RecentSnapshots(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestSQLiteRecorder_DuplicateIDRollsBack(t *testing.T) {
	r, err := NewSQLiteRecorder(filepath.Join(t.TempDir(), "history.db"), zerolog.Nop())
	require.NoError(t, err)
	defer r.Close()

	ctx := context.Background()
	require.NoError(t, r.RecordSnapshot(ctx, testSnapshot("dup", time.Now(), 60)))
	assert.Error(t, r.RecordSnapshot(ctx, testSnapshot("dup", time.Now(), 60)))

	var entities int
	require.NoError(t, r.db.QueryRow(`SELECT COUNT(*) FROM entity_scores`).Scan(&entities))
	assert.Equal(t, 2, entities)
}

func TestNoopRecorder(t *testing.T) {
	var r Recorder = NewNoopRecorder()
	assert.NoError(t, r.RecordSnapshot(context.Background(), testSnapshot("x", time.Now(), 1)))
	got, err := r.RecentSnapshots(context.Background(), 5)
	assert.NoError(t, err)
	assert.Empty(t, got)
	assert.NoError(t, r.Close())
}
