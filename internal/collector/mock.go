package collector

import (
	"context"
	"fmt"
	"sync"
	"time"

	"FinanceHub/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Bars     map[string][]model.OHLCV
	Profiles map[string]*model.Profile
	Errors   map[string]error
	// FailFirst makes the first n bar fetches per symbol fail.
	FailFirst int
	// Delay is applied to every bar fetch, honouring ctx.
	Delay time.Duration

	mu    sync.Mutex
	calls map[string]int
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDailyBars(ctx context.Context, symbol, _ string) ([]model.OHLCV, error) {
	m.mu.Lock()
	if m.calls == nil {
		m.calls = make(map[string]int)
	}
	m.calls[symbol]++
	n := m.calls[symbol]
	m.mu.Unlock()

	if m.Delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(m.Delay):
		}
	}
	if n <= m.FailFirst {
		return nil, fmt.Errorf("mock: transient failure %d for %s", n, symbol)
	}
	if err, ok := m.Errors[symbol]; ok {
		return nil, err
	}
	bars, ok := m.Bars[symbol]
	if !ok {
		return nil, fmt.Errorf("mock: no data for %s", symbol)
	}
	return bars, nil
}

func (m *MockFetcher) FetchProfile(_ context.Context, symbol string) (*model.Profile, error) {
	if p, ok := m.Profiles[symbol]; ok {
		return p, nil
	}
	return &model.Profile{}, nil
}

// Calls returns how many bar fetches were made for symbol.
func (m *MockFetcher) Calls(symbol string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[symbol]
}

// GenerateBars builds count synthetic bars drifting by step per day from base.
func GenerateBars(base, step float64, count int) []model.OHLCV {
	bars := make([]model.OHLCV, count)
	start := time.Now().AddDate(0, 0, -count).Truncate(24 * time.Hour)
	for i := 0; i < count; i++ {
		p := base + float64(i)*step
		bars[i] = model.OHLCV{
			Time:   start.AddDate(0, 0, i),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}

// NewDemoFetcher seeds a MockFetcher with a year of synthetic bars for
// every symbol, alternating rising and falling drifts.
func NewDemoFetcher(symbols []string) *MockFetcher {
	m := &MockFetcher{
		Bars:     make(map[string][]model.OHLCV, len(symbols)),
		Profiles: make(map[string]*model.Profile, len(symbols)),
	}
	for i, s := range symbols {
		base := 100 + float64(i)*25
		step := 0.2 + float64(i%3)*0.1
		if i%2 == 1 {
			step = -step
		}
		m.Bars[s] = GenerateBars(base, step, 250)
		m.Profiles[s] = &model.Profile{
			ShortName:     s,
			TrailingPE:    model.Some(8 + float64(i%4)*4),
			PriceToBook:   model.Some(1 + float64(i%3)*0.75),
			MarketCap:     model.Some(float64(i+1) * 20e9),
			DividendYield: model.Some(0.005 * float64(i%5)),
		}
	}
	return m
}
