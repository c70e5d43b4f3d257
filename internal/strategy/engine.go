package strategy

import (
	"math"

	"FinanceHub/internal/model"
)

// MaxScore is the ceiling of the health score. MaxPoints exceeds it, so
// a perfect rubric is clamped.
const MaxScore = 100

// factors lists the rubric in rationale order.
var factors = []func(*model.DerivedMetrics) model.FactorScore{
	scorePriceTrend,
	scoreVolatility,
	scoreMACrossover,
	scorePE,
	scorePB,
	scoreDividend,
	scoreVolume,
	scoreMarketCap,
}

// Recommendations maps each status to its investment call.
var Recommendations = map[model.Status]string{
	model.StatusExcellent: "Strong Buy - Excellent financial health and performance",
	model.StatusGood:      "Buy - Good fundamentals with potential for growth",
	model.StatusFair:      "Hold - Monitor closely, consider reducing exposure",
	model.StatusPoor:      "Sell - Poor performance, consider alternatives",
}

// MaxPoints returns the sum of every factor's ceiling.
func MaxPoints() float64 {
	var sum float64
	for _, fn := range factors {
		sum += fn(&model.DerivedMetrics{}).MaxPoints
	}
	return sum
}

// Evaluate scores the metrics of one entity. The point total is floored
// and clamped to [0, MaxScore]. It never fails.
func Evaluate(m *model.DerivedMetrics) *model.HealthScoreResult {
	if m == nil {
		m = &model.DerivedMetrics{}
	}

	scores := make([]model.FactorScore, 0, len(factors))
	rationale := make([]string, 0, len(factors))
	var total float64
	for _, fn := range factors {
		f := fn(m)
		scores = append(scores, f)
		total += f.Points
		if line := f.Rationale(); line != "" {
			rationale = append(rationale, line)
		}
	}

	score := int(math.Floor(total))
	if score < 0 {
		score = 0
	}
	if score > MaxScore {
		score = MaxScore
	}
	band := model.ClassifyStatus(score)

	return &model.HealthScoreResult{
		Score:          score,
		MaxScore:       MaxScore,
		Status:         band.Status,
		StatusColor:    band.Color,
		Factors:        scores,
		Rationale:      rationale,
		Recommendation: Recommendations[band.Status],
	}
}
