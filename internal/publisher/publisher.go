package publisher

import (
	"context"
	"time"

	"FinanceHub/internal/model"
)

// EntityScore is the per-entity part of a SectorEvent.
type EntityScore struct {
	Name        string       `json:"name"`
	Symbol      string       `json:"symbol"`
	HealthScore int          `json:"health_score"`
	Status      model.Status `json:"status"`
	Price       float64      `json:"current_price"`
}

// SectorEvent is published after every scheduled sector snapshot.
type SectorEvent struct {
	SnapshotID    string          `json:"snapshot_id"`
	Timestamp     time.Time       `json:"timestamp"`
	AverageScore  float64         `json:"average_score"`
	Sentiment     model.Sentiment `json:"sentiment"`
	AnalyzedCount int             `json:"analyzed_count"`
	Entities      []EntityScore   `json:"entities"`
	Warnings      []model.Warning `json:"warnings"`
}

// NewSectorEvent flattens an overview and its warnings into an event.
func NewSectorEvent(id string, ov *model.SectorOverview, w *model.WarningIndicators) *SectorEvent {
	evt := &SectorEvent{
		SnapshotID:    id,
		Timestamp:     ov.Timestamp,
		AverageScore:  model.Round2(ov.AverageScore),
		Sentiment:     ov.Sentiment,
		AnalyzedCount: ov.AnalyzedCount,
		Entities:      make([]EntityScore, 0, len(ov.Entities)),
		Warnings:      []model.Warning{},
	}
	for _, e := range ov.Entities {
		evt.Entities = append(evt.Entities, EntityScore{
			Name:        e.Name,
			Symbol:      e.Symbol,
			HealthScore: e.Health.Score,
			Status:      e.Health.Status,
			Price:       model.Round2(e.Metrics.CurrentPrice),
		})
	}
	if w != nil {
		evt.Warnings = append(evt.Warnings, w.Warnings...)
	}
	return evt
}

// Publisher ships sector events to downstream consumers.
type Publisher interface {
	PublishSector(ctx context.Context, evt *SectorEvent) error
	Close() error
}

// NoopPublisher is used when no broker is configured.
type NoopPublisher struct{}

func NewNoopPublisher() *NoopPublisher { return &NoopPublisher{} }

func (NoopPublisher) PublishSector(_ context.Context, _ *SectorEvent) error { return nil }
func (NoopPublisher) Close() error                                          { return nil }
