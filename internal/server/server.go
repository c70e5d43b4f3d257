package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"FinanceHub/internal/advisor"
	"FinanceHub/internal/budget"
	"FinanceHub/internal/recorder"
	"FinanceHub/internal/sector"
	"FinanceHub/internal/watchlist"
)

// Config holds server configuration and the services it exposes.
type Config struct {
	Port           int
	CORSOrigins    []string
	RequestTimeout time.Duration
	Log            zerolog.Logger

	Aggregator *sector.Aggregator
	Watchlist  *watchlist.Service
	Planner    *budget.Planner
	Advisor    *advisor.Advisor
	Recorder   recorder.Recorder
}

// Server is the HTTP API.
type Server struct {
	router *chi.Mux
	server *http.Server
	log    zerolog.Logger
	port   int

	agg     *sector.Aggregator
	watch   *watchlist.Service
	planner *budget.Planner
	advisor *advisor.Advisor
	rec     recorder.Recorder
}

// New creates a new HTTP server.
func New(cfg Config) *Server {
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 60 * time.Second
	}
	if len(cfg.CORSOrigins) == 0 {
		cfg.CORSOrigins = []string{"*"}
	}
	if cfg.Recorder == nil {
		cfg.Recorder = recorder.NewNoopRecorder()
	}
	s := &Server{
		router:  chi.NewRouter(),
		log:     cfg.Log.With().Str("component", "server").Logger(),
		port:    cfg.Port,
		agg:     cfg.Aggregator,
		watch:   cfg.Watchlist,
		planner: cfg.Planner,
		advisor: cfg.Advisor,
		rec:     cfg.Recorder,
	}

	s.setupMiddleware(cfg)
	s.setupRoutes()

	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.RequestTimeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

func (s *Server) setupMiddleware(cfg Config) {
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(s.loggingMiddleware)
	s.router.Use(middleware.Timeout(cfg.RequestTimeout))
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
}

func (s *Server) setupRoutes() {
	s.router.Get("/health", s.handleHealth)
	s.router.Post("/chat", s.handleChat)

	s.router.Route("/api", func(r chi.Router) {
		r.Get("/stocks", s.handleStocks)
		r.Get("/bank-analysis", s.handleBankAnalysis)
		r.Get("/bank/{name}", s.handleBank)
		r.Get("/sector-history", s.handleSectorHistory)
		r.Post("/create-budget", s.handleCreateBudget)
		r.Get("/savings-tips/{profile}", s.handleSavingsTips)
	})
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the HTTP server. Returns http.ErrServerClosed after Shutdown.
func (s *Server) Start() error {
	s.log.Info().Int("port", s.port).Msg("starting HTTP server")
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info().Msg("shutting down HTTP server")
	return s.server.Shutdown(ctx)
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		s.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Int("bytes", ww.BytesWritten()).
			Dur("duration_ms", time.Since(start)).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("HTTP request")
	})
}
