package budget

import (
	"fmt"

	"github.com/shopspring/decimal"

	"FinanceHub/internal/model"
)

// Bucket shares of income.
const (
	essentialPctConservative = 55
	essentialPctDefault      = 50
	goalsPctYoung            = 25
	goalsPctDefault          = 20
	youngAgeCutoff           = 30
)

// share is a named fraction of a parent bucket.
type share struct {
	key      string
	fraction string
}

// Sub-bucket fractions of each parent bucket, not of income.
var (
	essentialShares = []share{
		{"housing", "0.55"},
		{"utilities", "0.18"},
		{"groceries", "0.27"},
	}
	goalsShares = []share{
		{"emergency_fund", "0.40"},
		{"savings", "0.30"},
		{"investments", "0.30"},
	}
	discretionaryShares = []share{
		{"entertainment", "0.33"},
		{"dining_out", "0.27"},
		{"shopping", "0.23"},
		{"hobbies", "0.17"},
	}
)

var hundred = decimal.NewFromInt(100)

// Allocate splits monthly income into essential, goals and discretionary
// buckets. Discretionary receives the remainder so the three amounts sum
// to income exactly. It may be negative if the fixed shares ever exceed 100%.
func Allocate(p *model.BudgetProfile) (*model.BudgetAllocation, error) {
	if p == nil || p.MonthlyIncome <= 0 {
		return nil, model.ErrInvalidIncome
	}

	income := decimal.NewFromFloat(p.MonthlyIncome)
	essentialPct := essentialPercent(p.RiskTolerance)
	goalsPct := goalsPercent(p.Age)

	essential := income.Mul(decimal.NewFromInt(essentialPct)).Div(hundred).Round(2)
	goals := income.Mul(decimal.NewFromInt(goalsPct)).Div(hundred).Round(2)
	discretionary := income.Sub(essential).Sub(goals)

	if !essential.Add(goals).Add(discretionary).Equal(income) {
		return nil, fmt.Errorf("allocation does not sum to income %s", income)
	}

	return &model.BudgetAllocation{
		Essential: model.BudgetBucket{
			Amount:     essential.InexactFloat64(),
			Percentage: float64(essentialPct),
			Breakdown:  breakdown(essential, essentialShares),
		},
		Goals: model.BudgetBucket{
			Amount:     goals.InexactFloat64(),
			Percentage: float64(goalsPct),
			Breakdown:  breakdown(goals, goalsShares),
		},
		Discretionary: model.BudgetBucket{
			Amount:     discretionary.InexactFloat64(),
			Percentage: discretionary.Div(income).Mul(hundred).Round(2).InexactFloat64(),
			Breakdown:  breakdown(discretionary, discretionaryShares),
		},
	}, nil
}

func essentialPercent(r model.RiskTolerance) int64 {
	if r == model.RiskConservative {
		return essentialPctConservative
	}
	return essentialPctDefault
}

func goalsPercent(age int) int64 {
	if age < youngAgeCutoff {
		return goalsPctYoung
	}
	return goalsPctDefault
}

// breakdown splits amount by shares. The last share takes the remainder so
// the sub-buckets sum to the parent exactly.
func breakdown(amount decimal.Decimal, shares []share) map[string]float64 {
	out := make(map[string]float64, len(shares))
	left := amount
	for i, s := range shares {
		part := left
		if i < len(shares)-1 {
			part = amount.Mul(decimal.RequireFromString(s.fraction)).Round(2)
		}
		left = left.Sub(part)
		out[s.key] = part.InexactFloat64()
	}
	return out
}
