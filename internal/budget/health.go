package budget

import (
	"fmt"

	"FinanceHub/internal/model"
)

// HealthRecommendations maps each status to financial-health advice.
var HealthRecommendations = map[model.Status]string{
	model.StatusExcellent: "Excellent financial health! Focus on wealth building and advanced strategies.",
	model.StatusGood:      "Good financial health. Continue building emergency fund and increasing savings.",
	model.StatusFair:      "Fair financial health. Prioritize debt reduction and emergency fund building.",
	model.StatusPoor:      "Poor financial health. Focus on basic budgeting and debt management first.",
}

// tier is one threshold row of a factor; the first matching row wins.
type tier struct {
	match   func(v float64) bool
	points  float64
	marker  model.Marker
	comment string
}

func scoreTiers(name string, maxPoints, v float64, tiers []tier, fallback tier) model.FactorScore {
	t := fallback
	for _, c := range tiers {
		if c.match(v) {
			t = c
			break
		}
	}
	return model.FactorScore{
		Name:       name,
		Points:     t.points,
		MaxPoints:  maxPoints,
		Marker:     t.marker,
		Commentary: t.comment,
	}
}

func above(x float64) func(float64) bool   { return func(v float64) bool { return v > x } }
func atLeast(x float64) func(float64) bool { return func(v float64) bool { return v >= x } }
func atMost(x float64) func(float64) bool  { return func(v float64) bool { return v <= x } }

func scoreIncome(income float64) model.FactorScore {
	return scoreTiers("Income", 20, income, []tier{
		{above(50000), 20, model.MarkerPositive, "High income level"},
		{above(30000), 15, model.MarkerPositive, "Good income level"},
		{above(15000), 10, model.MarkerCaution, "Moderate income level"},
	}, tier{nil, 0, model.MarkerNegative, "Low income level"})
}

func scoreSavingsRate(rate float64) model.FactorScore {
	return scoreTiers("Savings rate", 25, rate, []tier{
		{atLeast(20), 25, model.MarkerPositive, fmt.Sprintf("Excellent savings rate: %.1f%%", rate)},
		{atLeast(15), 20, model.MarkerPositive, fmt.Sprintf("Good savings rate: %.1f%%", rate)},
		{atLeast(10), 15, model.MarkerCaution, fmt.Sprintf("Moderate savings rate: %.1f%%", rate)},
	}, tier{nil, 0, model.MarkerNegative, fmt.Sprintf("Low savings rate: %.1f%%", rate)})
}

// scoreDebtRatio is inverted: lower is better. A zero income has no
// measurable ratio and scores the lowest tier.
func scoreDebtRatio(ratio float64, incomeKnown bool) model.FactorScore {
	fallback := tier{nil, 0, model.MarkerNegative, fmt.Sprintf("High debt load: %.1f%%", ratio)}
	if !incomeKnown {
		return scoreTiers("Debt ratio", 20, ratio, nil,
			tier{nil, 0, model.MarkerNegative, "Debt load unknown without income"})
	}
	return scoreTiers("Debt ratio", 20, ratio, []tier{
		{atMost(10), 20, model.MarkerPositive, fmt.Sprintf("Excellent debt management: %.1f%%", ratio)},
		{atMost(20), 15, model.MarkerPositive, fmt.Sprintf("Good debt management: %.1f%%", ratio)},
		{atMost(30), 10, model.MarkerCaution, fmt.Sprintf("Moderate debt load: %.1f%%", ratio)},
	}, fallback)
}

func scoreGoals(count int) model.FactorScore {
	return scoreTiers("Financial goals", 20, float64(count), []tier{
		{atLeast(3), 20, model.MarkerPositive, "Multiple financial goals set"},
		{atLeast(1), 15, model.MarkerPositive, "Some financial goals set"},
	}, tier{nil, 0, model.MarkerNegative, "No financial goals identified"})
}

func scoreEmergencyFund(months float64) model.FactorScore {
	return scoreTiers("Emergency fund", 15, months, []tier{
		{atLeast(6), 15, model.MarkerPositive, fmt.Sprintf("Strong emergency fund: %.1f months", months)},
		{atLeast(3), 10, model.MarkerPositive, fmt.Sprintf("Adequate emergency fund: %.1f months", months)},
	}, tier{nil, 0, model.MarkerNegative, fmt.Sprintf("Insufficient emergency fund: %.1f months", months)})
}

// ScoreFinancialHealth rates a personal budget profile out of 100.
// A non-positive income never divides; every ratio factor takes its lowest tier.
func ScoreFinancialHealth(p *model.BudgetProfile) *model.FinancialHealthScore {
	income := p.MonthlyIncome
	incomeKnown := income > 0

	var months float64
	if incomeKnown {
		months = p.Expense(model.ExpenseEmergencyFund) / income
	}

	factors := []model.FactorScore{
		scoreIncome(income),
		scoreSavingsRate(percentOf(p.Expense(model.ExpenseSavings), income)),
		scoreDebtRatio(percentOf(p.Expense(model.ExpenseDebtPayments), income), incomeKnown),
		scoreGoals(len(p.FinancialGoals)),
		scoreEmergencyFund(months),
	}

	var total float64
	rationale := make([]string, 0, len(factors))
	for _, f := range factors {
		total += f.Points
		rationale = append(rationale, f.Rationale())
	}

	score := int(total)
	band := model.ClassifyStatus(score)
	return &model.FinancialHealthScore{
		Score:          score,
		MaxScore:       100,
		Status:         band.Status,
		StatusColor:    band.Color,
		Factors:        factors,
		Rationale:      rationale,
		Recommendation: HealthRecommendations[band.Status],
	}
}
