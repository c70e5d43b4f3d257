package collector

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"FinanceHub/internal/calculator"
	"FinanceHub/internal/model"
)

// Collector orchestrates data fetching and metric computation.
type Collector struct {
	Fetcher Fetcher
	// Timeout bounds each fetch attempt.
	Timeout time.Duration
	// Retries is the number of extra attempts after a failed bar fetch.
	Retries int
	// RetryBackoff is the pause between attempts.
	RetryBackoff time.Duration
	log          zerolog.Logger
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher, timeout time.Duration, retries int, log zerolog.Logger) *Collector {
	return &Collector{
		Fetcher:      fetcher,
		Timeout:      timeout,
		Retries:      retries,
		RetryBackoff: 500 * time.Millisecond,
		log:          log.With().Str("component", "collector").Str("source", fetcher.Name()).Logger(),
	}
}

// Fetch returns the price series and profile for symbol. Bar fetches are
// retried; a failed profile fetch degrades to an empty profile.
func (c *Collector) Fetch(ctx context.Context, symbol, period string) (*model.PriceSeries, *model.Profile, error) {
	var (
		bars    []model.OHLCV
		lastErr error
	)
	for attempt := 0; attempt <= c.Retries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, nil, fmt.Errorf("%w: %s: %v", model.ErrSupplierFailure, symbol, ctx.Err())
			case <-time.After(c.RetryBackoff):
			}
		}
		bars, lastErr = c.fetchBars(ctx, symbol, period)
		if lastErr == nil {
			break
		}
		c.log.Warn().Err(lastErr).Str("symbol", symbol).
			Int("attempt", attempt+1).Int("max_attempts", c.Retries+1).
			Msg("bar fetch failed")
	}
	if lastErr != nil {
		return nil, nil, fmt.Errorf("%w: %s: %v", model.ErrSupplierFailure, symbol, lastErr)
	}

	profile, err := c.fetchProfile(ctx, symbol)
	if err != nil {
		c.log.Warn().Err(err).Str("symbol", symbol).Msg("profile fetch failed, continuing without metadata")
		profile = &model.Profile{}
	}

	return &model.PriceSeries{Symbol: symbol, DailyBars: bars, FetchedAt: time.Now()}, profile, nil
}

func (c *Collector) fetchBars(ctx context.Context, symbol, period string) ([]model.OHLCV, error) {
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}
	return c.Fetcher.FetchDailyBars(ctx, symbol, period)
}

func (c *Collector) fetchProfile(ctx context.Context, symbol string) (*model.Profile, error) {
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}
	return c.Fetcher.FetchProfile(ctx, symbol)
}

// Collect fetches symbol and normalizes it into derived metrics.
func (c *Collector) Collect(ctx context.Context, symbol, period string) (*model.DerivedMetrics, error) {
	series, profile, err := c.Fetch(ctx, symbol, period)
	if err != nil {
		return nil, err
	}
	return Normalize(series, profile)
}

// Normalize computes DerivedMetrics from a series of at least 2 bars.
func Normalize(series *model.PriceSeries, profile *model.Profile) (*model.DerivedMetrics, error) {
	if series == nil || len(series.DailyBars) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 bars", model.ErrInsufficientData)
	}
	if profile == nil {
		profile = &model.Profile{}
	}

	bars := series.DailyBars
	last := bars[len(bars)-1]
	prevClose := bars[len(bars)-2].Close
	if prevClose <= 0 {
		return nil, fmt.Errorf("%w: previous close is %.4f", model.ErrInsufficientData, prevClose)
	}

	m := &model.DerivedMetrics{
		Name:         profile.ShortName,
		Symbol:       series.Symbol,
		CurrentPrice: last.Close,
		PriceChange:  last.Close - prevClose,
		Volume:       last.Volume,
		PERatio:      profile.TrailingPE,
		PBRatio:      profile.PriceToBook,
		MarketCap:    profile.MarketCap,
	}
	if m.Name == "" {
		m.Name = series.Symbol
	}
	m.PriceChangePct = m.PriceChange / prevClose * 100
	m.VolatilityAnnualized = calculator.AnnualizedVolatility(series.Closes())

	// Windows shrink to the available history, so these cannot fail with >= 2 bars.
	m.MA20, _ = calculator.CalculateMA20(bars)
	m.MA50, _ = calculator.CalculateMA50(bars)
	m.AvgVolume20, _ = calculator.CalculateAvgVolume20(bars)
	m.High52w, m.Low52w, _ = calculator.Calculate52WeekRange(bars)

	if y, ok := profile.DividendYield.Get(); ok {
		m.DividendYieldPct = y * 100
	}

	return m, nil
}
