package model

// RiskTolerance is the investor's declared appetite for risk.
type RiskTolerance string

const (
	RiskConservative RiskTolerance = "conservative"
	RiskModerate     RiskTolerance = "moderate"
	RiskAggressive   RiskTolerance = "aggressive"
)

// Expense keys read by the planner and the financial health scorer.
const (
	ExpenseDebtPayments  = "debt_payments"
	ExpenseSavings       = "savings"
	ExpenseEmergencyFund = "emergency_fund"
)

// BudgetProfile is the user's input to the budget planner.
type BudgetProfile struct {
	MonthlyIncome   float64            `json:"monthly_income"`
	CurrentExpenses map[string]float64 `json:"current_expenses" validate:"dive,gte=0"`
	FinancialGoals  []string           `json:"financial_goals" validate:"dive,required"`
	RiskTolerance   RiskTolerance      `json:"risk_tolerance" validate:"oneof=conservative moderate aggressive"`
	Age             int                `json:"age" validate:"gte=0,lte=130"`
}

// Expense returns the named expense, 0 when absent.
func (p *BudgetProfile) Expense(key string) float64 {
	return p.CurrentExpenses[key]
}

// BudgetBucket is one top-level allocation and its sub-buckets.
type BudgetBucket struct {
	Amount     float64            `json:"amount"`
	Percentage float64            `json:"percentage"`
	Breakdown  map[string]float64 `json:"breakdown"`
}

// BudgetAllocation splits monthly income into three buckets.
// The three amounts always sum to the income.
type BudgetAllocation struct {
	Essential     BudgetBucket `json:"essential_expenses"`
	Goals         BudgetBucket `json:"financial_goals"`
	Discretionary BudgetBucket `json:"discretionary"`
}

// Total returns the sum of the three bucket amounts.
func (a *BudgetAllocation) Total() float64 {
	return a.Essential.Amount + a.Goals.Amount + a.Discretionary.Amount
}

// Recommendation is one templated piece of planning advice.
type Recommendation struct {
	Category       string   `json:"category"`
	Priority       string   `json:"priority"`
	Recommendation string   `json:"recommendation"`
	ActionItems    []string `json:"action_items"`
}

// WeekSaving is one row of the 52-week challenge.
type WeekSaving struct {
	Week       int `json:"week"`
	Amount     int `json:"amount"`
	Cumulative int `json:"cumulative"`
}

// SavingsChallenge describes one suggested savings challenge.
type SavingsChallenge struct {
	ChallengeID      string       `json:"challenge_id"`
	Name             string       `json:"name"`
	Description      string       `json:"description"`
	TotalSavings     int          `json:"total_savings,omitempty"`
	PotentialSavings float64      `json:"potential_savings,omitempty"`
	Duration         string       `json:"duration"`
	WeeklyBreakdown  []WeekSaving `json:"weekly_breakdown,omitempty"`
	Rules            []string     `json:"rules,omitempty"`
	HowItWorks       []string     `json:"how_it_works,omitempty"`
	Difficulty       string       `json:"difficulty"`
	SuitableFor      string       `json:"suitable_for"`
}

// FinancialHealthScore is the output of the personal financial health scorer.
type FinancialHealthScore struct {
	Score          int           `json:"score"`
	MaxScore       int           `json:"max_score"`
	Status         Status        `json:"status"`
	StatusColor    string        `json:"status_color"`
	Factors        []FactorScore `json:"factor_details"`
	Rationale      []string      `json:"factors"`
	Recommendation string        `json:"recommendation"`
}

// SavingsTip is a static tip for a given experience profile.
type SavingsTip struct {
	Title      string `json:"title"`
	Tip        string `json:"tip"`
	Difficulty string `json:"difficulty"`
	Impact     string `json:"impact"`
}

// BudgetPlan is the full response of the budget planner.
type BudgetPlan struct {
	ID                string                `json:"plan_id"`
	Allocation        *BudgetAllocation     `json:"budget_plan"`
	Recommendations   []Recommendation      `json:"recommendations"`
	SavingsChallenges []SavingsChallenge    `json:"savings_challenges"`
	FinancialHealth   *FinancialHealthScore `json:"financial_health_score"`
	CreatedDate       string                `json:"created_date"`
}

// Quote is one watchlist row.
type Quote struct {
	Symbol        string  `json:"symbol"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"change_percent"`
}
