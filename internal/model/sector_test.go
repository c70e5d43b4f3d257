package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSectorOverview_MarshalJSONRoundsAverage(t *testing.T) {
	ov := &SectorOverview{
		Entities:      []EntityAnalysis{},
		AverageScore:  194.0 / 3,
		Sentiment:     SentimentNeutral,
		AnalyzedCount: 3,
		Timestamp:     time.Date(2024, 3, 1, 16, 0, 0, 0, time.UTC),
	}

	data, err := json.Marshal(ov)
	require.NoError(t, err)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, 64.67, out["average_sector_score"])
	assert.Equal(t, "Neutral", out["sector_sentiment"])
	assert.Equal(t, 3.0, out["total_banks_analyzed"])
	assert.Contains(t, out, "sector_overview")

	assert.InDelta(t, 194.0/3, ov.AverageScore, 1e-12, "in-memory value keeps full precision")
}
