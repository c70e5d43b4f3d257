package budget

import (
	"fmt"
	"strings"

	"FinanceHub/internal/model"
)

// ProfileGeneral is an alias of the beginner tip set.
const ProfileGeneral = "general"

var savingsTips = map[string][]model.SavingsTip{
	"beginner": {
		{Title: "Start Small", Tip: "Begin with saving just ₹100 per day. It adds up to ₹36,500 per year!", Difficulty: "Easy", Impact: "High"},
		{Title: "Use the 50/30/20 Rule", Tip: "50% for needs, 30% for wants, 20% for savings", Difficulty: "Easy", Impact: "High"},
		{Title: "Track Every Rupee", Tip: "Use apps to track all expenses. Awareness leads to better decisions.", Difficulty: "Easy", Impact: "Medium"},
	},
	"intermediate": {
		{Title: "Automate Savings", Tip: "Set up automatic transfers to savings account on payday", Difficulty: "Easy", Impact: "High"},
		{Title: "Cut Subscriptions", Tip: "Review and cancel unused subscriptions. Save ₹500-2000 monthly.", Difficulty: "Medium", Impact: "Medium"},
		{Title: "Meal Planning", Tip: "Plan meals weekly to reduce food waste and dining out costs", Difficulty: "Medium", Impact: "High"},
	},
	"advanced": {
		{Title: "Side Hustle", Tip: "Start a side business or freelance work for extra income", Difficulty: "Hard", Impact: "Very High"},
		{Title: "Invest Wisely", Tip: "Start SIP in mutual funds for long-term wealth building", Difficulty: "Medium", Impact: "Very High"},
		{Title: "Negotiate Bills", Tip: "Negotiate with service providers for better rates", Difficulty: "Hard", Impact: "Medium"},
	},
}

// SavingsTips returns the tips for an experience profile.
func SavingsTips(profile string) ([]model.SavingsTip, error) {
	key := strings.ToLower(strings.TrimSpace(profile))
	if key == "" || key == ProfileGeneral {
		key = "beginner"
	}
	tips, ok := savingsTips[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", model.ErrUnknownProfile, profile)
	}
	return append([]model.SavingsTip(nil), tips...), nil
}
