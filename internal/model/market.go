package model

import "time"

// OHLCV represents a single candlestick bar.
type OHLCV struct {
	Time   time.Time `json:"time"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume float64   `json:"volume"`
}

// PriceSeries holds the raw daily bars for one symbol, oldest first.
type PriceSeries struct {
	Symbol    string
	DailyBars []OHLCV
	FetchedAt time.Time
}

// Closes returns the close prices in chronological order.
func (s *PriceSeries) Closes() []float64 {
	closes := make([]float64, len(s.DailyBars))
	for i, b := range s.DailyBars {
		closes[i] = b.Close
	}
	return closes
}

// Profile is the per-symbol metadata published by the market data supplier.
type Profile struct {
	ShortName     string
	TrailingPE    Optional[float64]
	PriceToBook   Optional[float64]
	MarketCap     Optional[float64]
	DividendYield Optional[float64] // fraction, e.g. 0.035 for 3.5%
}

// Lookback periods understood by the fetchers.
const (
	Period5d = "5d"
	Period1y = "1y"
)
