package scheduler

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"FinanceHub/internal/model"
	"FinanceHub/internal/notifier"
	"FinanceHub/internal/publisher"
	"FinanceHub/internal/recorder"
	"FinanceHub/internal/sector"
)

// Sender delivers a formatted message. Satisfied by *notifier.TelegramNotifier.
type Sender interface {
	SendWithRetry(ctx context.Context, text string, maxRetries int) error
}

// Scheduler manages the periodic sector job and chat commands.
type Scheduler struct {
	Cron       *cron.Cron
	Aggregator *sector.Aggregator
	Notifier   Sender // optional
	Recorder   recorder.Recorder
	Publisher  publisher.Publisher
	Ctx        context.Context
	log        zerolog.Logger
}

// NewScheduler creates a new Scheduler. A nil notifier disables pushes.
func NewScheduler(ctx context.Context, agg *sector.Aggregator, n Sender, rec recorder.Recorder, pub publisher.Publisher, log zerolog.Logger) *Scheduler {
	if rec == nil {
		rec = recorder.NewNoopRecorder()
	}
	if pub == nil {
		pub = publisher.NewNoopPublisher()
	}
	return &Scheduler{
		Cron:       cron.New(cron.WithSeconds()),
		Aggregator: agg,
		Notifier:   n,
		Recorder:   rec,
		Publisher:  pub,
		Ctx:        ctx,
		log:        log.With().Str("component", "scheduler").Logger(),
	}
}

// RegisterAll registers the sector snapshot task.
func (s *Scheduler) RegisterAll(sectorCron string) error {
	if _, err := s.Cron.AddFunc(sectorCron, s.sectorTask); err != nil {
		return fmt.Errorf("register sector task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	s.log.Info().Int("jobs", len(s.Cron.Entries())).Msg("scheduler started")
}

// Stop stops the cron scheduler and waits for running jobs.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	s.log.Info().Msg("scheduler stopped")
}

// RunSectorNow executes the sector task immediately and returns the
// recorded snapshot.
func (s *Scheduler) RunSectorNow(ctx context.Context) (*recorder.SectorSnapshot, error) {
	ov, w, err := s.Aggregator.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("sector snapshot: %w", err)
	}
	snap := &recorder.SectorSnapshot{ID: uuid.NewString(), Overview: ov, Warnings: w}

	if err := s.Recorder.RecordSnapshot(ctx, snap); err != nil {
		s.log.Error().Err(err).Str("snapshot", snap.ID).Msg("record snapshot failed")
	}
	if err := s.Publisher.PublishSector(ctx, publisher.NewSectorEvent(snap.ID, ov, w)); err != nil {
		s.log.Error().Err(err).Str("snapshot", snap.ID).Msg("publish snapshot failed")
	}
	if len(w.Warnings) > 0 {
		s.trySend(ctx, notifier.FormatSectorReport(ov, w))
	}

	s.log.Info().
		Str("snapshot", snap.ID).
		Float64("average", ov.AverageScore).
		Int("warnings", len(w.Warnings)).
		Msg("sector snapshot complete")
	return snap, nil
}

func (s *Scheduler) sectorTask() {
	s.log.Info().Msg("running sector task")
	if _, err := s.RunSectorNow(s.Ctx); err != nil {
		s.log.Error().Err(err).Msg("sector task failed")
		s.trySend(s.Ctx, fmt.Sprintf("❌ Sector analysis failed: %v", err))
	}
}

// HandleCommand processes a user command and returns a reply.
func (s *Scheduler) HandleCommand(ctx context.Context, command string) string {
	cmd, arg, _ := strings.Cut(strings.TrimSpace(command), " ")
	arg = strings.TrimSpace(arg)

	switch strings.ToLower(cmd) {
	case "/sector":
		ov, w, err := s.Aggregator.Snapshot(ctx)
		if err != nil {
			return fmt.Sprintf("❌ %v", err)
		}
		return notifier.FormatSectorReport(ov, w)
	case "/warnings":
		_, w, err := s.Aggregator.Snapshot(ctx)
		if err != nil {
			return fmt.Sprintf("❌ %v", err)
		}
		return notifier.FormatWarnings(w)
	case "/bank":
		if arg == "" {
			return "Usage: /bank &lt;name&gt;"
		}
		a, err := s.Aggregator.AnalyzeEntity(ctx, arg)
		if errors.Is(err, model.ErrEntityNotFound) {
			return fmt.Sprintf("❌ Unknown bank: %s", arg)
		}
		if err != nil {
			return fmt.Sprintf("❌ %v", err)
		}
		return notifier.FormatBankAnalysis(arg, a)
	case "/history":
		rows, err := s.Recorder.RecentSnapshots(ctx, 5)
		if err != nil {
			return fmt.Sprintf("❌ %v", err)
		}
		return formatHistory(rows)
	default:
		return notifier.FormatHelp()
	}
}

func formatHistory(rows []recorder.SnapshotSummary) string {
	if len(rows) == 0 {
		return "No snapshots recorded yet"
	}
	var b strings.Builder
	b.WriteString("📜 <b>Recent Snapshots</b>\n")
	for _, r := range rows {
		b.WriteString(fmt.Sprintf("• %s  %.2f %s (%d banks, %d warnings)\n",
			r.Timestamp.Format("2006-01-02 15:04"), r.AverageScore, r.Sentiment, r.AnalyzedCount, r.WarningCount))
	}
	return b.String()
}

func (s *Scheduler) trySend(ctx context.Context, text string) {
	if s.Notifier == nil {
		return
	}
	if err := s.Notifier.SendWithRetry(ctx, text, 3); err != nil {
		s.log.Error().Err(err).Msg("send notification failed")
	}
}
