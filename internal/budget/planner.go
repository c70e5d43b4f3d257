package budget

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"FinanceHub/internal/model"
)

// Defaults applied to absent request fields.
const (
	DefaultRiskTolerance = model.RiskModerate
	DefaultAge           = 30
	createdDateLayout    = "2006-01-02 15:04:05"
)

// PlanRequest is the wire form of a budget request. Absent fields take
// their defaults in Profile.
type PlanRequest struct {
	MonthlyIncome   *float64           `json:"monthly_income"`
	CurrentExpenses map[string]float64 `json:"current_expenses"`
	FinancialGoals  []string           `json:"financial_goals"`
	RiskTolerance   string             `json:"risk_tolerance"`
	Age             *int               `json:"age"`
}

// Profile converts the request to a BudgetProfile.
func (r PlanRequest) Profile() *model.BudgetProfile {
	p := &model.BudgetProfile{
		CurrentExpenses: r.CurrentExpenses,
		FinancialGoals:  r.FinancialGoals,
		RiskTolerance:   model.RiskTolerance(r.RiskTolerance),
		Age:             DefaultAge,
	}
	if r.MonthlyIncome != nil {
		p.MonthlyIncome = *r.MonthlyIncome
	}
	if p.RiskTolerance == "" {
		p.RiskTolerance = DefaultRiskTolerance
	}
	if r.Age != nil {
		p.Age = *r.Age
	}
	if p.CurrentExpenses == nil {
		p.CurrentExpenses = map[string]float64{}
	}
	if p.FinancialGoals == nil {
		p.FinancialGoals = []string{}
	}
	return p
}

// Planner composes a full budget plan from a profile.
type Planner struct {
	validate *validator.Validate
	log      zerolog.Logger
	now      func() time.Time
}

// NewPlanner creates a Planner.
func NewPlanner(log zerolog.Logger) *Planner {
	return &Planner{
		validate: validator.New(),
		log:      log.With().Str("component", "budget").Logger(),
		now:      time.Now,
	}
}

// Validate checks field constraints. Income is checked separately so it
// surfaces as ErrInvalidIncome.
func (pl *Planner) Validate(p *model.BudgetProfile) error {
	if p == nil || p.MonthlyIncome <= 0 {
		return model.ErrInvalidIncome
	}
	if err := pl.validate.Struct(p); err != nil {
		return fmt.Errorf("%w: %v", model.ErrInvalidProfile, err)
	}
	return nil
}

// CreatePlan validates the profile and builds the allocation,
// recommendations, challenges and financial-health score.
func (pl *Planner) CreatePlan(p *model.BudgetProfile) (*model.BudgetPlan, error) {
	if err := pl.Validate(p); err != nil {
		return nil, err
	}

	alloc, err := Allocate(p)
	if err != nil {
		return nil, err
	}
	if alloc.Discretionary.Amount < 0 {
		pl.log.Warn().
			Float64("income", p.MonthlyIncome).
			Float64("discretionary", alloc.Discretionary.Amount).
			Msg("fixed shares exceed income, discretionary is negative")
	}

	plan := &model.BudgetPlan{
		ID:                uuid.NewString(),
		Allocation:        alloc,
		Recommendations:   Recommendations(p),
		SavingsChallenges: SavingsChallenges(p.MonthlyIncome),
		FinancialHealth:   ScoreFinancialHealth(p),
		CreatedDate:       pl.now().Format(createdDateLayout),
	}

	pl.log.Info().
		Str("plan_id", plan.ID).
		Str("risk_tolerance", string(p.RiskTolerance)).
		Int("health_score", plan.FinancialHealth.Score).
		Msg("budget plan created")

	return plan, nil
}
