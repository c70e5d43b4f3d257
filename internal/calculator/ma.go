package calculator

import (
	"errors"

	"FinanceHub/internal/model"
)

// CalculateSMA computes the simple moving average of the trailing period values.
// When fewer than period values exist the window shrinks to what is available.
func CalculateSMA(values []float64, period int) (float64, error) {
	if period <= 0 {
		return 0, errors.New("period must be positive")
	}
	if len(values) == 0 {
		return 0, errors.New("no data for SMA calculation")
	}
	start := len(values) - period
	if start < 0 {
		start = 0
	}
	sum := 0.0
	for i := start; i < len(values); i++ {
		sum += values[i]
	}
	return sum / float64(len(values)-start), nil
}

// CalculateMA20 returns the 20-day simple moving average of closes.
func CalculateMA20(dailyBars []model.OHLCV) (float64, error) {
	return CalculateSMA(extractCloses(dailyBars), 20)
}

// CalculateMA50 returns the 50-day simple moving average of closes.
func CalculateMA50(dailyBars []model.OHLCV) (float64, error) {
	return CalculateSMA(extractCloses(dailyBars), 50)
}

// CalculateAvgVolume20 returns the 20-day average volume.
func CalculateAvgVolume20(dailyBars []model.OHLCV) (float64, error) {
	volumes := make([]float64, len(dailyBars))
	for i, b := range dailyBars {
		volumes[i] = b.Volume
	}
	return CalculateSMA(volumes, 20)
}

func extractCloses(bars []model.OHLCV) []float64 {
	closes := make([]float64, len(bars))
	for i, b := range bars {
		closes[i] = b.Close
	}
	return closes
}
