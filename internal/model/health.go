package model

// Marker tags a rationale line with its qualitative direction.
type Marker string

const (
	MarkerPositive Marker = "✅"
	MarkerCaution  Marker = "⚠️"
	MarkerNegative Marker = "❌"
)

// Status is the categorical band for a 0..100 health score.
type Status string

const (
	StatusExcellent Status = "Excellent"
	StatusGood      Status = "Good"
	StatusFair      Status = "Fair"
	StatusPoor      Status = "Poor"
)

// StatusBand maps a minimum score to a status.
type StatusBand struct {
	MinScore int
	Status   Status
	Color    string
}

// StatusBands is shared by the market health and financial health scorers.
// Ordered from highest threshold to lowest.
var StatusBands = []StatusBand{
	{80, StatusExcellent, "green"},
	{60, StatusGood, "blue"},
	{40, StatusFair, "orange"},
}

// PoorBand applies below every threshold in StatusBands.
var PoorBand = StatusBand{MinScore: 0, Status: StatusPoor, Color: "red"}

// ClassifyStatus maps a score to its band.
func ClassifyStatus(score int) StatusBand {
	for _, b := range StatusBands {
		if score >= b.MinScore {
			return b
		}
	}
	return PoorBand
}

// FactorScore is one row of a weighted rubric.
type FactorScore struct {
	Name       string  `json:"name"`
	Points     float64 `json:"points"`
	MaxPoints  float64 `json:"max_points"`
	Marker     Marker  `json:"marker,omitempty"`
	Commentary string  `json:"commentary,omitempty"`
}

// Rationale renders the factor as a display line. Empty when the factor was skipped.
func (f FactorScore) Rationale() string {
	if f.Commentary == "" {
		return ""
	}
	return string(f.Marker) + " " + f.Commentary
}

// HealthScoreResult is the output of the market health scorer.
type HealthScoreResult struct {
	Score          int           `json:"health_score"`
	MaxScore       int           `json:"max_score"`
	Status         Status        `json:"status"`
	StatusColor    string        `json:"status_color"`
	Factors        []FactorScore `json:"factors"`
	Rationale      []string      `json:"analysis"`
	Recommendation string        `json:"recommendation"`
}
