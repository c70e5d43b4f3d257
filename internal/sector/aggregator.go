package sector

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"FinanceHub/internal/collector"
	"FinanceHub/internal/model"
	"FinanceHub/internal/strategy"
)

// Options tunes an Aggregator.
type Options struct {
	// Concurrency bounds simultaneous entity fetches. <= 0 means 4.
	Concurrency int
	// Period is the lookback passed to the supplier.
	Period string
}

// Aggregator scores every entity of a fixed roster.
type Aggregator struct {
	roster []model.Entity
	col    *collector.Collector
	opts   Options
	log    zerolog.Logger
	now    func() time.Time
}

// NewAggregator creates an Aggregator. The roster is copied.
func NewAggregator(roster []model.Entity, col *collector.Collector, log zerolog.Logger, opts Options) *Aggregator {
	if opts.Concurrency <= 0 {
		opts.Concurrency = 4
	}
	if opts.Period == "" {
		opts.Period = model.Period1y
	}
	return &Aggregator{
		roster: append([]model.Entity(nil), roster...),
		col:    col,
		opts:   opts,
		log:    log.With().Str("component", "sector").Logger(),
		now:    time.Now,
	}
}

// Roster returns a copy of the configured entities.
func (a *Aggregator) Roster() []model.Entity {
	return append([]model.Entity(nil), a.roster...)
}

// Lookup finds a roster entity by display name.
func (a *Aggregator) Lookup(name string) (model.Entity, bool) {
	for _, e := range a.roster {
		if e.Name == name {
			return e, true
		}
	}
	return model.Entity{}, false
}

// Overview fetches, normalizes and scores every roster entity. Entities
// that fail are excluded. Returns ErrNoData when nothing could be scored.
func (a *Aggregator) Overview(ctx context.Context) (*model.SectorOverview, error) {
	slots := make([]*model.EntityAnalysis, len(a.roster))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.opts.Concurrency)
	for i, e := range a.roster {
		i, e := i, e
		g.Go(func() error {
			m, err := a.col.Collect(gctx, e.Symbol, a.opts.Period)
			if err != nil {
				a.log.Warn().Err(err).Str("entity", e.Name).Str("symbol", e.Symbol).Msg("entity excluded from overview")
				return nil
			}
			m.Name = e.Name
			slots[i] = &model.EntityAnalysis{
				Name:    e.Name,
				Symbol:  e.Symbol,
				Metrics: m,
				Health:  strategy.Evaluate(m),
			}
			return nil
		})
	}
	_ = g.Wait() // workers never return errors

	entities := make([]model.EntityAnalysis, 0, len(slots))
	total := 0
	for _, s := range slots {
		if s == nil {
			continue
		}
		entities = append(entities, *s)
		total += s.Health.Score
	}
	if len(entities) == 0 {
		return nil, fmt.Errorf("%w: none of %d entities could be scored", model.ErrNoData, len(a.roster))
	}

	avg := float64(total) / float64(len(entities))
	sentiment, color := ClassifySentiment(avg)

	a.log.Info().
		Int("scored", len(entities)).
		Int("roster", len(a.roster)).
		Float64("average", avg).
		Str("sentiment", string(sentiment)).
		Msg("sector overview computed")

	return &model.SectorOverview{
		Entities:       entities,
		AverageScore:   avg,
		Sentiment:      sentiment,
		SentimentColor: color,
		AnalyzedCount:  len(entities),
		Timestamp:      a.now(),
	}, nil
}

// AnalyzeEntity scores a single roster entity. Supplier failures are
// reported inside the result rather than as an error.
func (a *Aggregator) AnalyzeEntity(ctx context.Context, name string) (*model.BankAnalysis, error) {
	e, ok := a.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", model.ErrEntityNotFound, name)
	}

	m, err := a.col.Collect(ctx, e.Symbol, a.opts.Period)
	if err != nil {
		a.log.Warn().Err(err).Str("entity", e.Name).Msg("entity analysis failed")
		msg := fmt.Sprintf("Failed to fetch data for %s", e.Name)
		return &model.BankAnalysis{MetricsErr: msg, HealthErr: msg}, nil
	}
	m.Name = e.Name
	return &model.BankAnalysis{Metrics: m, Health: strategy.Evaluate(m)}, nil
}

// Snapshot computes the overview and its warnings in one pass.
func (a *Aggregator) Snapshot(ctx context.Context) (*model.SectorOverview, *model.WarningIndicators, error) {
	ov, err := a.Overview(ctx)
	if err != nil {
		return nil, nil, err
	}
	return ov, Warnings(ov), nil
}
