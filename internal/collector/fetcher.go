package collector

import (
	"context"

	"FinanceHub/internal/model"
)

// Fetcher defines the interface for fetching market data.
type Fetcher interface {
	// FetchDailyBars returns daily bars for the lookback period, oldest first.
	FetchDailyBars(ctx context.Context, symbol, period string) ([]model.OHLCV, error)
	// FetchProfile returns supplier metadata; unknown fields stay unavailable.
	FetchProfile(ctx context.Context, symbol string) (*model.Profile, error)
	Name() string
}
