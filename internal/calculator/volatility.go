package calculator

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// TradingDaysPerYear is used to annualize daily statistics.
const TradingDaysPerYear = 252

// DailyReturns converts closes into simple returns: r[i] = c[i]/c[i-1] - 1.
// A non-positive previous close yields a zero return.
func DailyReturns(closes []float64) []float64 {
	if len(closes) < 2 {
		return []float64{}
	}
	returns := make([]float64, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		if closes[i-1] > 0 {
			returns[i-1] = closes[i]/closes[i-1] - 1
		}
	}
	return returns
}

// AnnualizedVolatility returns the sample standard deviation of daily returns,
// annualized and expressed in percent. Fewer than 2 returns give 0.
func AnnualizedVolatility(closes []float64) float64 {
	returns := DailyReturns(closes)
	if len(returns) < 2 {
		return 0
	}
	sd := stat.StdDev(returns, nil)
	if math.IsNaN(sd) || sd < 0 {
		return 0
	}
	return sd * math.Sqrt(TradingDaysPerYear) * 100
}
