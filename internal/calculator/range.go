package calculator

import (
	"errors"
	"math"

	"FinanceHub/internal/model"
)

// Calculate52WeekRange returns the highest high and lowest low over every bar supplied.
// The supplier already bounds the series to about one year.
func Calculate52WeekRange(dailyBars []model.OHLCV) (high, low float64, err error) {
	if len(dailyBars) == 0 {
		return 0, 0, errors.New("no daily bars provided")
	}
	high = math.Inf(-1)
	low = math.Inf(1)
	for _, b := range dailyBars {
		if b.High > high {
			high = b.High
		}
		if b.Low < low {
			low = b.Low
		}
	}
	return high, low, nil
}
