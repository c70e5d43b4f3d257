package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"FinanceHub/internal/advisor"
	"FinanceHub/internal/budget"
	"FinanceHub/internal/collector"
	"FinanceHub/internal/config"
	"FinanceHub/internal/logger"
	"FinanceHub/internal/notifier"
	"FinanceHub/internal/publisher"
	"FinanceHub/internal/recorder"
	"FinanceHub/internal/scheduler"
	"FinanceHub/internal/sector"
	"FinanceHub/internal/server"
	"FinanceHub/internal/watchlist"
)

func main() {
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		boot := zerolog.New(os.Stderr).With().Timestamp().Logger()
		boot.Fatal().Err(err).Msg("load config")
	}

	log := logger.New(logger.Config{Level: cfg.Log.Level, Pretty: cfg.Log.Pretty})
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("config validation")
	}
	log.Info().Str("config", cfgPath).Msg("FinanceHub starting")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Market data
	fetcher := newFetcher(cfg)
	log.Info().Str("source", fetcher.Name()).Msg("data source selected")
	col := collector.NewCollector(fetcher, cfg.FetchTimeout(), cfg.Fetch.Retries, log)
	agg := sector.NewAggregator(cfg.Banks, col, log, sector.Options{Concurrency: cfg.Fetch.Concurrency})
	watch := watchlist.New(col, cfg.Watchlist, cfg.Fetch.Concurrency, log)

	// Advisor
	var gen advisor.Generator
	if cfg.Advisor.GeminiAPIKey != "" {
		g, err := advisor.NewGeminiGenerator(ctx, cfg.Advisor.GeminiAPIKey, cfg.Advisor.Model, cfg.RequestTimeout())
		if err != nil {
			log.Warn().Err(err).Msg("init gemini failed, advisor will apologise")
		} else {
			gen = g
		}
	} else {
		log.Warn().Msg("no Gemini API key, advisor will apologise")
	}
	adv := advisor.New(gen, cfg.Advisor.Keywords, log)

	// Recorder
	var rec recorder.Recorder = recorder.NewNoopRecorder()
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath, log)
		if err != nil {
			log.Warn().Err(err).Msg("init sqlite recorder failed, using noop")
		} else {
			rec = sr
		}
	}
	defer rec.Close()

	// Publisher
	var pub publisher.Publisher = publisher.NewNoopPublisher()
	if cfg.KafkaEnabled() {
		kp, err := publisher.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic, log)
		if err != nil {
			log.Warn().Err(err).Msg("init kafka publisher failed, using noop")
		} else {
			pub = kp
		}
	}
	defer pub.Close()

	// Notifier
	var sender scheduler.Sender
	var tn *notifier.TelegramNotifier
	if cfg.TelegramEnabled() {
		tn = notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy, log)
		sender = tn
	}

	sched := scheduler.NewScheduler(ctx, agg, sender, rec, pub, log)
	if err := sched.RegisterAll(cfg.Schedule.SectorCron); err != nil {
		log.Fatal().Err(err).Msg("register cron tasks")
	}
	sched.Start()

	if tn != nil {
		go tn.StartPolling(ctx, sched.HandleCommand)
		log.Info().Msg("telegram polling started")
	}

	if os.Getenv("RUN_ON_START") == "true" {
		log.Info().Msg("RUN_ON_START enabled, executing sector task now")
		go func() {
			if _, err := sched.RunSectorNow(ctx); err != nil {
				log.Error().Err(err).Msg("initial sector task failed")
			}
		}()
	}

	srv := server.New(server.Config{
		Port:           cfg.Server.Port,
		CORSOrigins:    cfg.Server.CORSOrigins,
		RequestTimeout: cfg.RequestTimeout(),
		Log:            log,
		Aggregator:     agg,
		Watchlist:      watch,
		Planner:        budget.NewPlanner(log),
		Advisor:        adv,
		Recorder:       rec,
	})

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		log.Info().Str("signal", sig.String()).Msg("shutdown signal received, stopping")
	case err := <-errCh:
		log.Error().Err(err).Msg("HTTP server failed")
	}

	cancel()
	shutdownCtx, done := context.WithTimeout(context.Background(), 15*time.Second)
	defer done()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown")
	}
	sched.Stop()
	log.Info().Msg("FinanceHub stopped")
}

func newFetcher(cfg *config.Config) collector.Fetcher {
	switch cfg.DataSource.Provider {
	case config.ProviderREST:
		return collector.NewRESTFetcher(cfg.DataSource.BaseURL, cfg.DataSource.APIKey, cfg.Proxy)
	case config.ProviderMock:
		symbols := append([]string(nil), cfg.Watchlist...)
		for _, b := range cfg.Banks {
			symbols = append(symbols, b.Symbol)
		}
		return collector.NewDemoFetcher(symbols)
	default:
		return collector.NewYahooFetcher(cfg.Proxy, cfg.DataSource.RequestsPerSecond)
	}
}
