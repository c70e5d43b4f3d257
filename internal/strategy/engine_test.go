package strategy

import (
	"strings"
	"testing"

	"FinanceHub/internal/model"
)

func strongBank() *model.DerivedMetrics {
	return &model.DerivedMetrics{
		Name:                 "HDFC Bank",
		Symbol:               "HDFCBANK.NS",
		CurrentPrice:         1650,
		PriceChangePct:       12,
		VolatilityAnnualized: 18,
		MA20:                 1600,
		MA50:                 1550,
		PERatio:              model.Some(8.0),
		PBRatio:              model.Some(1.5),
		DividendYieldPct:     3.5,
		Volume:               3_000_000,
		AvgVolume20:          1_500_000,
		MarketCap:            model.Some(1.2e13),
	}
}

func TestMaxPoints(t *testing.T) {
	if got := MaxPoints(); got != 105 {
		t.Fatalf("factor ceilings sum to %.2f, want 105", got)
	}
}

func TestEvaluate_RawTotalAboveMaxIsClamped(t *testing.T) {
	res := Evaluate(strongBank())
	var raw float64
	for _, f := range res.Factors {
		raw += f.Points
	}
	if raw != 105 {
		t.Fatalf("expected raw total 105, got %.2f", raw)
	}
	if res.Score != MaxScore || res.MaxScore != MaxScore {
		t.Fatalf("expected clamp to %d, got %d/%d", MaxScore, res.Score, res.MaxScore)
	}
	if res.Status != model.StatusExcellent {
		t.Errorf("clamped score must be Excellent, got %s", res.Status)
	}
}

func TestEvaluate_PerfectScore(t *testing.T) {
	res := Evaluate(strongBank())
	if res.Score != 100 {
		t.Fatalf("expected 100, got %d", res.Score)
	}
	if res.Status != model.StatusExcellent || res.StatusColor != "green" {
		t.Errorf("unexpected band %s/%s", res.Status, res.StatusColor)
	}
	if len(res.Factors) != 8 || len(res.Rationale) != 8 {
		t.Fatalf("expected 8 factors and 8 rationale lines, got %d/%d", len(res.Factors), len(res.Rationale))
	}
	if !strings.HasPrefix(res.Rationale[0], "✅ Positive price performance: 12.00%") {
		t.Errorf("unexpected first rationale line: %q", res.Rationale[0])
	}
	if res.Recommendation != Recommendations[model.StatusExcellent] {
		t.Errorf("unexpected recommendation %q", res.Recommendation)
	}
}

func TestEvaluate_WorstCase(t *testing.T) {
	res := Evaluate(&model.DerivedMetrics{
		CurrentPrice:         90,
		PriceChangePct:       -4,
		VolatilityAnnualized: 45,
		MA20:                 100,
		MA50:                 110,
		PERatio:              model.Some(35.0),
		PBRatio:              model.Some(4.0),
		Volume:               100,
		AvgVolume20:          200,
		MarketCap:            model.Some(5e9),
	})
	if res.Score != 0 {
		t.Fatalf("expected 0, got %d", res.Score)
	}
	if res.Status != model.StatusPoor || res.StatusColor != "red" {
		t.Errorf("unexpected band %s/%s", res.Status, res.StatusColor)
	}
	if !strings.HasPrefix(res.Rationale[0], string(model.MarkerCaution)) {
		t.Errorf("negative change should carry a caution marker: %q", res.Rationale[0])
	}
}

func TestEvaluate_UnavailableFieldsSkipped(t *testing.T) {
	m := strongBank()
	m.PERatio = model.None[float64]()
	m.PBRatio = model.None[float64]()
	m.MarketCap = model.None[float64]()

	res := Evaluate(m)
	if res.Score != 70 {
		t.Fatalf("expected 70 without valuation inputs, got %d", res.Score)
	}
	if len(res.Rationale) != 6 {
		t.Errorf("expected 6 rationale lines, got %d: %v", len(res.Rationale), res.Rationale)
	}
	if last := res.Rationale[len(res.Rationale)-1]; last != "❌ Market cap unavailable" {
		t.Errorf("unexpected market cap line %q", last)
	}
	if len(res.Factors) != 8 {
		t.Errorf("factors keep their slot even when skipped, got %d", len(res.Factors))
	}
}

func TestEvaluate_FractionalTrendIsFloored(t *testing.T) {
	m := strongBank()
	m.PriceChangePct = 0.3 // 0.6 points
	m.DividendYieldPct = 2 // 5 points
	res := Evaluate(m)
	if res.Score != 80 {
		t.Fatalf("expected floor(80.6)=80, got %d", res.Score)
	}
	if res.Status != model.StatusExcellent {
		t.Errorf("80 must be Excellent, got %s", res.Status)
	}
}

func TestEvaluate_Tiers(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*model.DerivedMetrics)
		factor int
		points float64
	}{
		{"moderate volatility", func(m *model.DerivedMetrics) { m.VolatilityAnnualized = 25 }, 1, 10},
		{"volatility at 30", func(m *model.DerivedMetrics) { m.VolatilityAnnualized = 30 }, 1, 0},
		{"price above ma20 only", func(m *model.DerivedMetrics) { m.MA50 = 1620 }, 2, 10},
		{"pe at 20", func(m *model.DerivedMetrics) { m.PERatio = model.Some(20.0) }, 3, 10},
		{"pe at 10", func(m *model.DerivedMetrics) { m.PERatio = model.Some(10.0) }, 3, 10},
		{"pb at 2", func(m *model.DerivedMetrics) { m.PBRatio = model.Some(2.0) }, 4, 10},
		{"dividend exactly 3", func(m *model.DerivedMetrics) { m.DividendYieldPct = 3 }, 5, 5},
		{"dividend exactly 1", func(m *model.DerivedMetrics) { m.DividendYieldPct = 1 }, 5, 0},
		{"volume above avg", func(m *model.DerivedMetrics) { m.Volume = 2_000_000 }, 6, 5},
		{"volume equals avg", func(m *model.DerivedMetrics) { m.Volume = 1_500_000 }, 6, 0},
		{"mid cap", func(m *model.DerivedMetrics) { m.MarketCap = model.Some(50e9) }, 7, 5},
		{"trend capped", func(m *model.DerivedMetrics) { m.PriceChangePct = 50 }, 0, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := strongBank()
			tt.mutate(m)
			res := Evaluate(m)
			if got := res.Factors[tt.factor].Points; got != tt.points {
				t.Errorf("factor %s: got %.2f points, want %.2f", res.Factors[tt.factor].Name, got, tt.points)
			}
		})
	}
}

func TestClassifyStatus_Boundaries(t *testing.T) {
	tests := []struct {
		score int
		want  model.Status
	}{
		{100, model.StatusExcellent},
		{80, model.StatusExcellent},
		{79, model.StatusGood},
		{60, model.StatusGood},
		{59, model.StatusFair},
		{40, model.StatusFair},
		{39, model.StatusPoor},
		{0, model.StatusPoor},
	}
	for _, tt := range tests {
		if got := model.ClassifyStatus(tt.score).Status; got != tt.want {
			t.Errorf("ClassifyStatus(%d) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

func TestEvaluate_NilMetrics(t *testing.T) {
	res := Evaluate(nil)
	if res == nil || res.Score < 0 || res.Score > MaxScore {
		t.Fatalf("expected bounded result, got %+v", res)
	}
}
