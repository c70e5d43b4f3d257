package sector

import (
	"fmt"

	"FinanceHub/internal/model"
)

const (
	bullishThreshold = 70
	neutralThreshold = 50
	poorScore        = 40
	poorShareLimit   = 0.3
)

// ClassifySentiment maps an average score to a sector sentiment and color.
func ClassifySentiment(avg float64) (model.Sentiment, string) {
	switch {
	case avg >= bullishThreshold:
		return model.SentimentBullish, "green"
	case avg >= neutralThreshold:
		return model.SentimentNeutral, "blue"
	default:
		return model.SentimentBearish, "red"
	}
}

// Warnings derives early-warning signals from an overview. The two checks
// are independent.
func Warnings(ov *model.SectorOverview) *model.WarningIndicators {
	out := &model.WarningIndicators{
		Warnings:          []model.Warning{},
		SectorHealthScore: model.Round2(ov.AverageScore),
		Timestamp:         ov.Timestamp,
	}

	if ov.AverageScore < neutralThreshold {
		out.Warnings = append(out.Warnings, model.Warning{
			Level:          model.WarningHigh,
			Indicator:      "Low Sector Health Score",
			Description:    fmt.Sprintf("Sector average health score is %.2f, indicating potential stress", ov.AverageScore),
			Recommendation: "Monitor closely, consider defensive positions",
		})
	}

	poor := 0
	for _, e := range ov.Entities {
		if e.Health != nil && e.Health.Score < poorScore {
			poor++
		}
	}
	scored := len(ov.Entities)
	if float64(poor) > float64(scored)*poorShareLimit {
		out.Warnings = append(out.Warnings, model.Warning{
			Level:          model.WarningMedium,
			Indicator:      "Multiple Banks Under Stress",
			Description:    fmt.Sprintf("%d out of %d banks show poor health", poor, scored),
			Recommendation: "Diversify across sectors, avoid concentrated banking exposure",
		})
	}

	return out
}
