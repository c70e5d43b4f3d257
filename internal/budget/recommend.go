package budget

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"

	"FinanceHub/internal/model"
)

// CurrencySymbol prefixes money amounts in generated text.
const CurrencySymbol = "₹"

const (
	emergencyFundMonths  = 6
	debtLoadThreshold    = 0.2
	investAgeCutoff      = 40
	targetSavingsRatePct = 20
	priorityHigh         = "High"
	priorityMedium       = "Medium"
)

// FormatMoney renders v rounded to whole units with thousands separators.
func FormatMoney(v float64) string {
	return CurrencySymbol + humanize.Comma(int64(math.Round(v)))
}

// Recommendations generates the rule-based planning advice for a profile.
// The emergency fund and insurance items always appear.
func Recommendations(p *model.BudgetProfile) []model.Recommendation {
	income := p.MonthlyIncome
	recs := []model.Recommendation{{
		Category: "Emergency Fund",
		Priority: priorityHigh,
		Recommendation: fmt.Sprintf("Build an emergency fund of %s (%d months of income)",
			FormatMoney(income*emergencyFundMonths), emergencyFundMonths),
		ActionItems: []string{
			"Set up automatic monthly transfers",
			"Keep in high-yield savings account",
			"Only use for true emergencies",
		},
	}}

	if p.Expense(model.ExpenseDebtPayments) > income*debtLoadThreshold {
		recs = append(recs, model.Recommendation{
			Category:       "Debt Management",
			Priority:       priorityHigh,
			Recommendation: "Focus on paying off high-interest debt first",
			ActionItems: []string{
				"List all debts by interest rate",
				"Pay minimum on all, extra on highest rate",
				"Consider debt consolidation if beneficial",
			},
		})
	}

	if p.Age < investAgeCutoff {
		recs = append(recs, model.Recommendation{
			Category:       "Investments",
			Priority:       priorityMedium,
			Recommendation: "Start investing early for compound growth",
			ActionItems: []string{
				"Consider SIP in mutual funds",
				"Diversify across asset classes",
				"Start with index funds for beginners",
			},
		})
	}

	if rate := percentOf(p.Expense(model.ExpenseSavings), income); rate < targetSavingsRatePct {
		recs = append(recs, model.Recommendation{
			Category:       "Savings",
			Priority:       priorityMedium,
			Recommendation: fmt.Sprintf("Increase savings rate from %.1f%% to %d%%", rate, targetSavingsRatePct),
			ActionItems: []string{
				"Review discretionary spending",
				"Look for ways to reduce fixed expenses",
				"Automate savings transfers",
			},
		})
	}

	recs = append(recs, model.Recommendation{
		Category:       "Insurance",
		Priority:       priorityMedium,
		Recommendation: "Ensure adequate insurance coverage",
		ActionItems: []string{
			"Health insurance: ₹5-10 lakhs coverage",
			"Term life insurance: 10x annual income",
			"Consider disability insurance",
		},
	})

	return recs
}

// percentOf returns part/whole*100, or 0 when whole is not positive.
func percentOf(part, whole float64) float64 {
	if whole <= 0 {
		return 0
	}
	return part / whole * 100
}
