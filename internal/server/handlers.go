package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"FinanceHub/internal/budget"
	"FinanceHub/internal/model"
	"FinanceHub/internal/recorder"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "healthy",
		"service": "financehub",
		"banks":   len(s.agg.Roster()),
	})
}

// GET /api/stocks
func (s *Server) handleStocks(w http.ResponseWriter, r *http.Request) {
	quotes := s.watch.Quotes(r.Context())
	out := make(map[string]model.Quote, len(quotes))
	for _, q := range quotes {
		out[q.Symbol] = q
	}
	s.writeJSON(w, http.StatusOK, out)
}

// GET /api/bank-analysis
func (s *Server) handleBankAnalysis(w http.ResponseWriter, r *http.Request) {
	ov, warnings, err := s.agg.Snapshot(r.Context())
	if err != nil {
		s.writeErr(w, err, "Unable to fetch data")
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"sector_overview":    ov,
		"warning_indicators": warnings,
	})
}

// GET /api/bank/{name}
func (s *Server) handleBank(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	analysis, err := s.agg.AnalyzeEntity(r.Context(), name)
	if err != nil {
		s.writeErr(w, err, "Failed to fetch bank data")
		return
	}
	s.writeJSON(w, http.StatusOK, analysis)
}

// GET /api/sector-history?limit=N
func (s *Server) handleSectorHistory(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	rows, err := s.rec.RecentSnapshots(r.Context(), limit)
	if err != nil {
		s.writeErr(w, err, "Failed to load sector history")
		return
	}
	if rows == nil {
		rows = []recorder.SnapshotSummary{}
	}
	s.writeJSON(w, http.StatusOK, map[string]interface{}{"snapshots": rows})
}

// POST /api/create-budget
func (s *Server) handleCreateBudget(w http.ResponseWriter, r *http.Request) {
	var req budget.PlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "Invalid request format")
		return
	}
	plan, err := s.planner.CreatePlan(req.Profile())
	if err != nil {
		s.writeErr(w, err, "Failed to create budget plan")
		return
	}
	s.writeJSON(w, http.StatusOK, plan)
}

// GET /api/savings-tips/{profile}
func (s *Server) handleSavingsTips(w http.ResponseWriter, r *http.Request) {
	tips, err := budget.SavingsTips(chi.URLParam(r, "profile"))
	if err != nil {
		s.writeErr(w, err, "Failed to fetch tips")
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]interface{}{"tips": tips})
}

type chatRequest struct {
	Message *string `json:"message"`
}

// POST /chat
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Message == nil {
		s.writeError(w, http.StatusBadRequest, "Invalid request format")
		return
	}
	reply, err := s.advisor.Respond(r.Context(), *req.Message)
	if err != nil {
		s.writeErr(w, err, "Internal server error")
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"response": reply})
}

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, model.ErrInvalidIncome),
		errors.Is(err, model.ErrInvalidProfile),
		errors.Is(err, model.ErrEmptyMessage):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrEntityNotFound),
		errors.Is(err, model.ErrUnknownProfile):
		return http.StatusNotFound
	case errors.Is(err, model.ErrNoData):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// writeErr reports err with its mapped status. Client errors carry the
// error text; server errors are logged and answered with fallback.
func (s *Server) writeErr(w http.ResponseWriter, err error, fallback string) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.log.Error().Err(err).Int("status", status).Msg(fallback)
		s.writeError(w, status, fallback)
		return
	}
	s.writeError(w, status, err.Error())
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error().Err(err).Msg("failed to encode JSON response")
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{
		"error": message,
	})
}
