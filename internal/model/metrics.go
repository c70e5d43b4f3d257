package model

import (
	"encoding/json"
	"math"
)

// DerivedMetrics holds the indicators computed from one PriceSeries.
// Values keep full precision; JSON output rounds them to 2 decimals.
type DerivedMetrics struct {
	Name                 string
	Symbol               string
	CurrentPrice         float64
	PriceChange          float64
	PriceChangePct       float64
	VolatilityAnnualized float64 // percent
	MA20                 float64
	MA50                 float64
	Volume               float64
	AvgVolume20          float64
	High52w              float64
	Low52w               float64
	PERatio              Optional[float64]
	PBRatio              Optional[float64]
	DividendYieldPct     float64 // 0 when the supplier publishes nothing
	MarketCap            Optional[float64]
}

// Round2 rounds v to 2 decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round2Optional(o Optional[float64]) Optional[float64] {
	if v, ok := o.Get(); ok {
		return Some(Round2(v))
	}
	return o
}

// MarshalJSON renders the display form of the metrics.
func (m DerivedMetrics) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Name                 string            `json:"bank_name,omitempty"`
		Symbol               string            `json:"symbol"`
		CurrentPrice         float64           `json:"current_price"`
		PriceChange          float64           `json:"price_change"`
		PriceChangePct       float64           `json:"price_change_pct"`
		VolatilityAnnualized float64           `json:"volatility"`
		MA20                 float64           `json:"ma_20"`
		MA50                 float64           `json:"ma_50"`
		Volume               int64             `json:"volume"`
		AvgVolume20          int64             `json:"avg_volume"`
		High52w              float64           `json:"high_52w"`
		Low52w               float64           `json:"low_52w"`
		PERatio              Optional[float64] `json:"pe_ratio"`
		PBRatio              Optional[float64] `json:"pb_ratio"`
		DividendYieldPct     float64           `json:"dividend_yield"`
		MarketCap            Optional[float64] `json:"market_cap"`
	}{
		Name:                 m.Name,
		Symbol:               m.Symbol,
		CurrentPrice:         Round2(m.CurrentPrice),
		PriceChange:          Round2(m.PriceChange),
		PriceChangePct:       Round2(m.PriceChangePct),
		VolatilityAnnualized: Round2(m.VolatilityAnnualized),
		MA20:                 Round2(m.MA20),
		MA50:                 Round2(m.MA50),
		Volume:               int64(m.Volume),
		AvgVolume20:          int64(m.AvgVolume20),
		High52w:              Round2(m.High52w),
		Low52w:               Round2(m.Low52w),
		PERatio:              round2Optional(m.PERatio),
		PBRatio:              round2Optional(m.PBRatio),
		DividendYieldPct:     Round2(m.DividendYieldPct),
		MarketCap:            m.MarketCap,
	})
}
