package strategy

import (
	"fmt"
	"math"

	"FinanceHub/internal/model"
)

// Factor point ceilings. They sum to 105; Evaluate clamps the total to MaxScore.
const (
	maxPriceTrend   = 20
	maxVolatility   = 15
	maxMACrossover  = 15
	maxPE           = 15
	maxPB           = 10
	maxDividend     = 10
	maxVolume       = 10
	maxMarketCap    = 10
	largeCapCutoff  = 100e9
	midCapCutoff    = 10e9
	volumeSurgeMult = 1.5
)

// scorePriceTrend rewards a positive day-over-day change, 2 points per percent.
// Max: 20
func scorePriceTrend(m *model.DerivedMetrics) model.FactorScore {
	f := model.FactorScore{Name: "Price trend", MaxPoints: maxPriceTrend}
	if m.PriceChangePct > 0 {
		f.Points = math.Min(maxPriceTrend, math.Abs(m.PriceChangePct)*2)
		f.Marker = model.MarkerPositive
		f.Commentary = fmt.Sprintf("Positive price performance: %.2f%%", m.PriceChangePct)
		return f
	}
	f.Marker = model.MarkerCaution
	f.Commentary = fmt.Sprintf("Negative price performance: %.2f%%", m.PriceChangePct)
	return f
}

// scoreVolatility scores annualized volatility, lower is better.
// Max: 15
func scoreVolatility(m *model.DerivedMetrics) model.FactorScore {
	f := model.FactorScore{Name: "Volatility", MaxPoints: maxVolatility}
	v := m.VolatilityAnnualized
	switch {
	case v < 20:
		f.Points, f.Marker = 15, model.MarkerPositive
		f.Commentary = fmt.Sprintf("Low volatility: %.2f%%", v)
	case v < 30:
		f.Points, f.Marker = 10, model.MarkerCaution
		f.Commentary = fmt.Sprintf("Moderate volatility: %.2f%%", v)
	default:
		f.Marker = model.MarkerNegative
		f.Commentary = fmt.Sprintf("High volatility: %.2f%%", v)
	}
	return f
}

// scoreMACrossover checks price > MA20 > MA50 alignment.
// Max: 15
func scoreMACrossover(m *model.DerivedMetrics) model.FactorScore {
	f := model.FactorScore{Name: "MA crossover", MaxPoints: maxMACrossover}
	switch {
	case m.CurrentPrice > m.MA20 && m.MA20 > m.MA50:
		f.Points, f.Marker = 15, model.MarkerPositive
		f.Commentary = fmt.Sprintf("Strong uptrend: price %.2f above MA20 %.2f and MA50 %.2f", m.CurrentPrice, m.MA20, m.MA50)
	case m.CurrentPrice > m.MA20:
		f.Points, f.Marker = 10, model.MarkerCaution
		f.Commentary = fmt.Sprintf("Moderate trend: price %.2f above MA20 %.2f", m.CurrentPrice, m.MA20)
	default:
		f.Marker = model.MarkerNegative
		f.Commentary = fmt.Sprintf("Downtrend: price %.2f below moving averages", m.CurrentPrice)
	}
	return f
}

// scorePE scores trailing P/E. Unavailable P/E scores 0 with no rationale.
// Max: 15
func scorePE(m *model.DerivedMetrics) model.FactorScore {
	f := model.FactorScore{Name: "P/E ratio", MaxPoints: maxPE}
	pe, ok := m.PERatio.Get()
	if !ok {
		return f
	}
	switch {
	case pe >= 10 && pe <= 20:
		f.Points, f.Marker = 10, model.MarkerPositive
		f.Commentary = fmt.Sprintf("Reasonable P/E ratio: %.2f", pe)
	case pe < 10:
		f.Points, f.Marker = 15, model.MarkerPositive
		f.Commentary = fmt.Sprintf("Undervalued P/E ratio: %.2f", pe)
	default:
		f.Marker = model.MarkerCaution
		f.Commentary = fmt.Sprintf("High P/E ratio: %.2f", pe)
	}
	return f
}

// scorePB scores price-to-book. Unavailable P/B scores 0 with no rationale.
// Max: 10
func scorePB(m *model.DerivedMetrics) model.FactorScore {
	f := model.FactorScore{Name: "P/B ratio", MaxPoints: maxPB}
	pb, ok := m.PBRatio.Get()
	if !ok {
		return f
	}
	if pb <= 2 {
		f.Points, f.Marker = 10, model.MarkerPositive
		f.Commentary = fmt.Sprintf("Good P/B ratio: %.2f", pb)
		return f
	}
	f.Marker = model.MarkerCaution
	f.Commentary = fmt.Sprintf("High P/B ratio: %.2f", pb)
	return f
}

// scoreDividend rewards income-paying entities by yield percent.
// Max: 10
func scoreDividend(m *model.DerivedMetrics) model.FactorScore {
	f := model.FactorScore{Name: "Dividend yield", MaxPoints: maxDividend}
	y := m.DividendYieldPct
	switch {
	case y > 3:
		f.Points, f.Marker = 10, model.MarkerPositive
		f.Commentary = fmt.Sprintf("High dividend yield: %.2f%%", y)
	case y > 1:
		f.Points, f.Marker = 5, model.MarkerCaution
		f.Commentary = fmt.Sprintf("Moderate dividend yield: %.2f%%", y)
	default:
		f.Marker = model.MarkerNegative
		f.Commentary = fmt.Sprintf("Low dividend yield: %.2f%%", y)
	}
	return f
}

// scoreVolume compares the last bar's volume with the 20-day average.
// Max: 10
func scoreVolume(m *model.DerivedMetrics) model.FactorScore {
	f := model.FactorScore{Name: "Volume", MaxPoints: maxVolume}
	switch {
	case m.Volume > m.AvgVolume20*volumeSurgeMult:
		f.Points, f.Marker = 10, model.MarkerPositive
		f.Commentary = fmt.Sprintf("High trading volume indicates strong interest: %.0f vs avg %.0f", m.Volume, m.AvgVolume20)
	case m.Volume > m.AvgVolume20:
		f.Points, f.Marker = 5, model.MarkerCaution
		f.Commentary = fmt.Sprintf("Above average trading volume: %.0f vs avg %.0f", m.Volume, m.AvgVolume20)
	default:
		f.Marker = model.MarkerNegative
		f.Commentary = fmt.Sprintf("Below average trading volume: %.0f vs avg %.0f", m.Volume, m.AvgVolume20)
	}
	return f
}

// scoreMarketCap buckets by capitalization. Unavailable cap scores 0.
// Max: 10
func scoreMarketCap(m *model.DerivedMetrics) model.FactorScore {
	f := model.FactorScore{Name: "Market cap", MaxPoints: maxMarketCap}
	mc, ok := m.MarketCap.Get()
	if !ok {
		f.Marker = model.MarkerNegative
		f.Commentary = "Market cap unavailable"
		return f
	}
	switch {
	case mc > largeCapCutoff:
		f.Points, f.Marker = 10, model.MarkerPositive
		f.Commentary = fmt.Sprintf("Large-cap with strong market position: %.2fB", mc/1e9)
	case mc > midCapCutoff:
		f.Points, f.Marker = 5, model.MarkerCaution
		f.Commentary = fmt.Sprintf("Mid-cap: %.2fB", mc/1e9)
	default:
		f.Marker = model.MarkerNegative
		f.Commentary = fmt.Sprintf("Small-cap: %.2fB", mc/1e9)
	}
	return f
}
