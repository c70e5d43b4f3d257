package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FinanceHub/internal/config"
	"FinanceHub/internal/model"
)

func TestNewFetcher(t *testing.T) {
	tests := []struct {
		provider string
		want     string
	}{
		{config.ProviderYahoo, "yahoo"},
		{config.ProviderREST, "rest"},
		{config.ProviderMock, "mock"},
	}
	for _, tt := range tests {
		t.Run(tt.provider, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.DataSource.Provider = tt.provider
			cfg.DataSource.BaseURL = "http://quotes.local"
			assert.Equal(t, tt.want, newFetcher(cfg).Name())
		})
	}
}

func TestNewFetcher_MockSeedsRosterAndWatchlist(t *testing.T) {
	cfg := &config.Config{}
	cfg.DataSource.Provider = config.ProviderMock
	cfg.Banks = []model.Entity{{Name: "Alpha Bank", Symbol: "ALPHA.NS"}}
	cfg.Watchlist = []string{"AAPL"}

	f := newFetcher(cfg)
	for _, sym := range []string{"ALPHA.NS", "AAPL"} {
		bars, err := f.FetchDailyBars(t.Context(), sym, model.Period1y)
		require.NoError(t, err, sym)
		assert.Len(t, bars, 250)
	}
}
