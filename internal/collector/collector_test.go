package collector

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FinanceHub/internal/model"
)

func series(closes ...float64) *model.PriceSeries {
	bars := make([]model.OHLCV, len(closes))
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	for i, c := range closes {
		bars[i] = model.OHLCV{
			Time:   start.AddDate(0, 0, i),
			Open:   c,
			High:   c * 1.01,
			Low:    c * 0.99,
			Close:  c,
			Volume: 100,
		}
	}
	return &model.PriceSeries{Symbol: "TEST.NS", DailyBars: bars}
}

func TestNormalize_InsufficientData(t *testing.T) {
	_, err := Normalize(series(100), nil)
	assert.ErrorIs(t, err, model.ErrInsufficientData)

	_, err = Normalize(nil, nil)
	assert.ErrorIs(t, err, model.ErrInsufficientData)
}

func TestNormalize_ZeroPreviousClose(t *testing.T) {
	_, err := Normalize(series(0, 100), nil)
	assert.ErrorIs(t, err, model.ErrInsufficientData)
}

func TestNormalize_TwoEqualBars(t *testing.T) {
	m, err := Normalize(series(100, 100), nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, m.VolatilityAnnualized)
	assert.False(t, math.IsNaN(m.VolatilityAnnualized))
	assert.Equal(t, 0.0, m.PriceChange)
	assert.Equal(t, 0.0, m.PriceChangePct)
	assert.Equal(t, 100.0, m.MA20)
	assert.Equal(t, 100.0, m.MA50)
}

func TestNormalize_Metrics(t *testing.T) {
	m, err := Normalize(series(100, 104, 102, 110), nil)
	require.NoError(t, err)

	assert.Equal(t, "TEST.NS", m.Name, "falls back to symbol without a profile name")
	assert.Equal(t, 110.0, m.CurrentPrice)
	assert.InDelta(t, 8.0, m.PriceChange, 1e-9)
	assert.InDelta(t, 8.0/102*100, m.PriceChangePct, 1e-9)
	assert.InDelta(t, 104.0, m.MA20, 1e-9)
	assert.InDelta(t, 110*1.01, m.High52w, 1e-9)
	assert.InDelta(t, 100*0.99, m.Low52w, 1e-9)
	assert.Greater(t, m.VolatilityAnnualized, 0.0)
	assert.Equal(t, 100.0, m.AvgVolume20)
}

func TestNormalize_OptionalFields(t *testing.T) {
	m, err := Normalize(series(100, 101), &model.Profile{
		ShortName:  "Test Bank",
		TrailingPE: model.Some(12.5),
		MarketCap:  model.Some(2e11),
	})
	require.NoError(t, err)

	assert.Equal(t, "Test Bank", m.Name)
	pe, ok := m.PERatio.Get()
	assert.True(t, ok)
	assert.Equal(t, 12.5, pe)
	assert.False(t, m.PBRatio.Available(), "absent P/B stays unavailable, never 0")
	assert.Equal(t, 0.0, m.DividendYieldPct, "absent dividend yield merges into 0")

	m, err = Normalize(series(100, 101), &model.Profile{DividendYield: model.Some(0.035)})
	require.NoError(t, err)
	assert.InDelta(t, 3.5, m.DividendYieldPct, 1e-9)
}

func TestCollector_RetriesOnce(t *testing.T) {
	mock := &MockFetcher{
		Bars:      map[string][]model.OHLCV{"A": GenerateBars(100, 1, 30)},
		FailFirst: 1,
	}
	c := NewCollector(mock, time.Second, 1, zerolog.Nop())
	c.RetryBackoff = 0

	m, err := c.Collect(context.Background(), "A", model.Period1y)
	require.NoError(t, err)
	assert.Equal(t, 2, mock.Calls("A"))
	assert.InDelta(t, 129.0, m.CurrentPrice, 1e-9)
}

func TestCollector_ExhaustedRetriesIsSupplierFailure(t *testing.T) {
	mock := &MockFetcher{Errors: map[string]error{"A": errors.New("boom")}}
	c := NewCollector(mock, time.Second, 1, zerolog.Nop())
	c.RetryBackoff = 0

	_, err := c.Collect(context.Background(), "A", model.Period1y)
	assert.ErrorIs(t, err, model.ErrSupplierFailure)
	assert.Equal(t, 2, mock.Calls("A"))
}

func TestCollector_TimeoutPerAttempt(t *testing.T) {
	mock := &MockFetcher{
		Bars:  map[string][]model.OHLCV{"A": GenerateBars(100, 1, 5)},
		Delay: 200 * time.Millisecond,
	}
	c := NewCollector(mock, 20*time.Millisecond, 0, zerolog.Nop())

	_, err := c.Collect(context.Background(), "A", model.Period5d)
	assert.ErrorIs(t, err, model.ErrSupplierFailure)
}

func TestCollector_EmptySeriesIsInsufficientData(t *testing.T) {
	mock := &MockFetcher{Bars: map[string][]model.OHLCV{"A": {}}}
	c := NewCollector(mock, time.Second, 0, zerolog.Nop())

	_, err := c.Collect(context.Background(), "A", model.Period5d)
	assert.ErrorIs(t, err, model.ErrInsufficientData)
}
