package sector

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FinanceHub/internal/collector"
	"FinanceHub/internal/model"
)

func testRoster() []model.Entity {
	return []model.Entity{
		{Name: "Alpha Bank", Symbol: "ALPHA.NS"},
		{Name: "Beta Bank", Symbol: "BETA.NS"},
		{Name: "Gamma Bank", Symbol: "GAMMA.NS"},
		{Name: "Delta Bank", Symbol: "DELTA.NS"},
	}
}

func newTestAggregator(mock *collector.MockFetcher) *Aggregator {
	col := collector.NewCollector(mock, time.Second, 0, zerolog.Nop())
	return NewAggregator(testRoster(), col, zerolog.Nop(), Options{Concurrency: 2})
}

func overviewWithScores(scores ...int) *model.SectorOverview {
	ov := &model.SectorOverview{Timestamp: time.Now()}
	total := 0
	for _, s := range scores {
		ov.Entities = append(ov.Entities, model.EntityAnalysis{Health: &model.HealthScoreResult{Score: s}})
		total += s
	}
	ov.AnalyzedCount = len(scores)
	ov.AverageScore = float64(total) / float64(len(scores))
	return ov
}

func hasLevel(w *model.WarningIndicators, level model.WarningLevel) bool {
	for _, x := range w.Warnings {
		if x.Level == level {
			return true
		}
	}
	return false
}

func TestClassifySentiment(t *testing.T) {
	tests := []struct {
		avg   float64
		want  model.Sentiment
		color string
	}{
		{70, model.SentimentBullish, "green"},
		{69.99, model.SentimentNeutral, "blue"},
		{50, model.SentimentNeutral, "blue"},
		{49.99, model.SentimentBearish, "red"},
		{0, model.SentimentBearish, "red"},
	}
	for _, tt := range tests {
		got, color := ClassifySentiment(tt.avg)
		assert.Equal(t, tt.want, got, "avg %.2f", tt.avg)
		assert.Equal(t, tt.color, color, "avg %.2f", tt.avg)
	}
}

func TestWarnings(t *testing.T) {
	t.Run("forty percent poor raises medium", func(t *testing.T) {
		w := Warnings(overviewWithScores(30, 35, 80, 90, 85))
		assert.True(t, hasLevel(w, model.WarningMedium))
		assert.False(t, hasLevel(w, model.WarningHigh), "average is 64")
	})

	t.Run("average 45 raises high", func(t *testing.T) {
		w := Warnings(overviewWithScores(45, 45, 45, 45))
		assert.True(t, hasLevel(w, model.WarningHigh))
		assert.False(t, hasLevel(w, model.WarningMedium))
		assert.Equal(t, 45.0, w.SectorHealthScore)
	})

	t.Run("both may fire", func(t *testing.T) {
		w := Warnings(overviewWithScores(20, 30, 60, 70))
		assert.True(t, hasLevel(w, model.WarningHigh))
		assert.True(t, hasLevel(w, model.WarningMedium))
		require.Len(t, w.Warnings, 2)
		assert.Equal(t, "2 out of 4 banks show poor health", w.Warnings[1].Description)
	})

	t.Run("exactly thirty percent is not more than", func(t *testing.T) {
		w := Warnings(overviewWithScores(10, 20, 30, 90, 90, 90, 90, 90, 90, 90))
		assert.False(t, hasLevel(w, model.WarningMedium))
	})

	t.Run("healthy sector", func(t *testing.T) {
		w := Warnings(overviewWithScores(80, 75, 60))
		assert.Empty(t, w.Warnings)
		assert.NotNil(t, w.Warnings)
	})
}

func TestOverview_ExcludesFailuresAndKeepsOrder(t *testing.T) {
	mock := &collector.MockFetcher{
		Bars: map[string][]model.OHLCV{
			"ALPHA.NS": collector.GenerateBars(100, 1, 60),
			"GAMMA.NS": collector.GenerateBars(200, -1, 60),
			"DELTA.NS": collector.GenerateBars(50, 0.5, 60),
		},
		Errors: map[string]error{"BETA.NS": errors.New("supplier down")},
	}
	agg := newTestAggregator(mock)

	ov, err := agg.Overview(context.Background())
	require.NoError(t, err)
	require.Equal(t, 3, ov.AnalyzedCount)
	require.Len(t, ov.Entities, 3)

	assert.Equal(t, "Alpha Bank", ov.Entities[0].Name)
	assert.Equal(t, "Gamma Bank", ov.Entities[1].Name)
	assert.Equal(t, "Delta Bank", ov.Entities[2].Name)

	total := 0
	for _, e := range ov.Entities {
		require.NotNil(t, e.Health)
		assert.Equal(t, e.Name, e.Metrics.Name)
		total += e.Health.Score
	}
	assert.InDelta(t, float64(total)/3, ov.AverageScore, 1e-9)

	_, ok := ov.Entity("Beta Bank")
	assert.False(t, ok)
}

func TestOverview_NoData(t *testing.T) {
	mock := &collector.MockFetcher{Bars: map[string][]model.OHLCV{}}
	agg := newTestAggregator(mock)

	_, err := agg.Overview(context.Background())
	assert.ErrorIs(t, err, model.ErrNoData)
}

func TestOverview_ShortSeriesExcluded(t *testing.T) {
	mock := &collector.MockFetcher{Bars: map[string][]model.OHLCV{
		"ALPHA.NS": collector.GenerateBars(100, 1, 1),
		"BETA.NS":  collector.GenerateBars(100, 1, 10),
	}}
	agg := newTestAggregator(mock)

	ov, err := agg.Overview(context.Background())
	require.NoError(t, err)
	require.Len(t, ov.Entities, 1)
	assert.Equal(t, "Beta Bank", ov.Entities[0].Name)
}

func TestAnalyzeEntity(t *testing.T) {
	mock := &collector.MockFetcher{
		Bars:   map[string][]model.OHLCV{"ALPHA.NS": collector.GenerateBars(100, 1, 60)},
		Errors: map[string]error{"BETA.NS": errors.New("timeout")},
	}
	agg := newTestAggregator(mock)

	t.Run("unknown entity", func(t *testing.T) {
		_, err := agg.AnalyzeEntity(context.Background(), "Nowhere Bank")
		assert.ErrorIs(t, err, model.ErrEntityNotFound)
	})

	t.Run("scored entity", func(t *testing.T) {
		res, err := agg.AnalyzeEntity(context.Background(), "Alpha Bank")
		require.NoError(t, err)
		require.NotNil(t, res.Metrics)
		require.NotNil(t, res.Health)
		assert.Equal(t, "ALPHA.NS", res.Metrics.Symbol)
	})

	t.Run("supplier failure is tagged", func(t *testing.T) {
		res, err := agg.AnalyzeEntity(context.Background(), "Beta Bank")
		require.NoError(t, err)
		assert.Nil(t, res.Metrics)

		raw, err := json.Marshal(res)
		require.NoError(t, err)
		var body map[string]map[string]interface{}
		require.NoError(t, json.Unmarshal(raw, &body))
		assert.Equal(t, "Failed to fetch data for Beta Bank", body["bank_data"]["error"])
		assert.Contains(t, body["health_analysis"], "error")
	})
}
