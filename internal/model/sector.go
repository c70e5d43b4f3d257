package model

import (
	"encoding/json"
	"time"
)

// Entity is one roster member: a display name and its ticker.
type Entity struct {
	Name   string `yaml:"name" json:"name"`
	Symbol string `yaml:"symbol" json:"symbol"`
}

// Sentiment classifies a sector's average score.
type Sentiment string

const (
	SentimentBullish Sentiment = "Bullish"
	SentimentNeutral Sentiment = "Neutral"
	SentimentBearish Sentiment = "Bearish"
)

// EntityAnalysis pairs an entity's metrics with its health score.
type EntityAnalysis struct {
	Name    string             `json:"name"`
	Symbol  string             `json:"symbol"`
	Metrics *DerivedMetrics    `json:"stock_data"`
	Health  *HealthScoreResult `json:"health_analysis"`
}

// SectorOverview aggregates the health of every scored roster entity.
// Entities are kept in roster order.
type SectorOverview struct {
	Entities       []EntityAnalysis `json:"sector_overview"`
	AverageScore   float64          `json:"average_sector_score"`
	Sentiment      Sentiment        `json:"sector_sentiment"`
	SentimentColor string           `json:"sentiment_color"`
	AnalyzedCount  int              `json:"total_banks_analyzed"`
	Timestamp      time.Time        `json:"analysis_date"`
}

// MarshalJSON renders the average score rounded to 2 decimals.
func (o SectorOverview) MarshalJSON() ([]byte, error) {
	type plain SectorOverview
	p := plain(o)
	p.AverageScore = Round2(o.AverageScore)
	return json.Marshal(p)
}

// Entity returns the analysis for name, if it was scored.
func (o *SectorOverview) Entity(name string) (EntityAnalysis, bool) {
	for _, e := range o.Entities {
		if e.Name == name {
			return e, true
		}
	}
	return EntityAnalysis{}, false
}

// WarningLevel is the severity of a sector warning.
type WarningLevel string

const (
	WarningHigh   WarningLevel = "High"
	WarningMedium WarningLevel = "Medium"
)

// Warning is one early-warning signal raised over a sector overview.
type Warning struct {
	Level          WarningLevel `json:"level"`
	Indicator      string       `json:"indicator"`
	Description    string       `json:"description"`
	Recommendation string       `json:"recommendation"`
}

// WarningIndicators is the result of the warning pass.
type WarningIndicators struct {
	Warnings          []Warning `json:"warnings"`
	SectorHealthScore float64   `json:"sector_health_score"`
	Timestamp         time.Time `json:"analysis_date"`
}

// BankAnalysis is the single-entity response. Each half carries either a
// value or an error message.
type BankAnalysis struct {
	Metrics    *DerivedMetrics
	MetricsErr string
	Health     *HealthScoreResult
	HealthErr  string
}

type errorBody struct {
	Error string `json:"error"`
}

// MarshalJSON renders {"bank_data": ..., "health_analysis": ...}.
func (a BankAnalysis) MarshalJSON() ([]byte, error) {
	out := map[string]interface{}{}
	if a.MetricsErr != "" || a.Metrics == nil {
		out["bank_data"] = errorBody{Error: a.MetricsErr}
	} else {
		out["bank_data"] = a.Metrics
	}
	if a.HealthErr != "" || a.Health == nil {
		out["health_analysis"] = errorBody{Error: a.HealthErr}
	} else {
		out["health_analysis"] = a.Health
	}
	return json.Marshal(out)
}
