package budget

import "FinanceHub/internal/model"

// FiftyTwoWeekTotal is the final cumulative amount of the 52-week challenge.
const FiftyTwoWeekTotal = 52 * 53 / 2

const (
	noSpendShare = 0.25
	roundUpShare = 0.05
)

// FiftyTwoWeekBreakdown returns week k saving k units with cumulative k(k+1)/2.
func FiftyTwoWeekBreakdown() []model.WeekSaving {
	weeks := make([]model.WeekSaving, 52)
	cumulative := 0
	for k := 1; k <= 52; k++ {
		cumulative += k
		weeks[k-1] = model.WeekSaving{Week: k, Amount: k, Cumulative: cumulative}
	}
	return weeks
}

// SavingsChallenges returns the fixed challenge set, scaled by income where
// a potential saving applies.
func SavingsChallenges(income float64) []model.SavingsChallenge {
	return []model.SavingsChallenge{
		{
			ChallengeID:     "52_week",
			Name:            "52-Week Savings Challenge",
			Description:     "Save ₹1 in week 1, ₹2 in week 2, and so on",
			TotalSavings:    FiftyTwoWeekTotal,
			Duration:        "52 weeks",
			WeeklyBreakdown: FiftyTwoWeekBreakdown(),
			Difficulty:      "Easy",
			SuitableFor:     "Beginners",
		},
		{
			ChallengeID:      "no_spend",
			Name:             "30-Day No-Spend Challenge",
			Description:      "Avoid non-essential spending for 30 days",
			PotentialSavings: model.Round2(income * noSpendShare),
			Duration:         "30 days",
			Rules: []string{
				"Only spend on essential items",
				"No dining out or entertainment",
				"No impulse purchases",
				"Track all spending",
			},
			Difficulty:  "Hard",
			SuitableFor: "Advanced",
		},
		{
			ChallengeID:      "round_up",
			Name:             "Round-Up Challenge",
			Description:      "Round up all purchases to nearest ₹10 and save the difference",
			PotentialSavings: model.Round2(income * roundUpShare),
			Duration:         "Ongoing",
			HowItWorks: []string{
				"Purchase: ₹247 → Save ₹3",
				"Purchase: ₹1,156 → Save ₹4",
				"Automate with banking apps",
			},
			Difficulty:  "Easy",
			SuitableFor: "Everyone",
		},
	}
}
