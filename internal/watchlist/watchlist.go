package watchlist

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"FinanceHub/internal/collector"
	"FinanceHub/internal/model"
)

// Service reports the latest move of a configured list of tickers.
type Service struct {
	col         *collector.Collector
	symbols     []string
	concurrency int
	log         zerolog.Logger
}

// New creates a watchlist Service. concurrency <= 0 means 4.
func New(col *collector.Collector, symbols []string, concurrency int, log zerolog.Logger) *Service {
	if concurrency <= 0 {
		concurrency = 4
	}
	return &Service{
		col:         col,
		symbols:     append([]string(nil), symbols...),
		concurrency: concurrency,
		log:         log.With().Str("component", "watchlist").Logger(),
	}
}

// Symbols returns the configured tickers.
func (s *Service) Symbols() []string {
	return append([]string(nil), s.symbols...)
}

// Quotes fetches a 5-day series for every symbol and returns the latest
// close and its change against the previous close. Symbols that fail or
// have fewer than 2 bars are skipped. Order follows the configuration.
func (s *Service) Quotes(ctx context.Context) []model.Quote {
	slots := make([]*model.Quote, len(s.symbols))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, sym := range s.symbols {
		i, sym := i, sym
		g.Go(func() error {
			series, profile, err := s.col.Fetch(gctx, sym, model.Period5d)
			if err != nil {
				s.log.Warn().Err(err).Str("symbol", sym).Msg("quote skipped")
				return nil
			}
			q, ok := quoteFrom(series, profile)
			if !ok {
				s.log.Debug().Str("symbol", sym).Int("bars", len(series.DailyBars)).Msg("quote skipped, not enough bars")
				return nil
			}
			slots[i] = q
			return nil
		})
	}
	_ = g.Wait()

	quotes := make([]model.Quote, 0, len(slots))
	for _, q := range slots {
		if q != nil {
			quotes = append(quotes, *q)
		}
	}
	return quotes
}

func quoteFrom(series *model.PriceSeries, profile *model.Profile) (*model.Quote, bool) {
	bars := series.DailyBars
	if len(bars) < 2 {
		return nil, false
	}
	last := bars[len(bars)-1].Close
	prev := bars[len(bars)-2].Close
	if prev <= 0 {
		return nil, false
	}

	name := series.Symbol
	if profile != nil && profile.ShortName != "" {
		name = profile.ShortName
	}
	change := last - prev
	return &model.Quote{
		Symbol:        series.Symbol,
		Name:          name,
		Price:         model.Round2(last),
		Change:        model.Round2(change),
		ChangePercent: model.Round2(change / prev * 100),
	}, true
}
