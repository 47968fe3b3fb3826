package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"

	"github.com/promptlens/promptlens/calculations"
	"github.com/promptlens/promptlens/logging"
	"github.com/promptlens/promptlens/scoring"
)

func (s *Server) handleOverview(w http.ResponseWriter, r *http.Request) {
	view := s.engine.Overview()
	writeView(w, view, view == nil)
}

func (s *Server) handleUsers(w http.ResponseWriter, r *http.Request) {
	limit := s.userLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			writeError(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = parsed
	}

	view := s.engine.Users(limit)
	writeView(w, view, view == nil)
}

func (s *Server) handleTemporal(w http.ResponseWriter, r *http.Request) {
	period := r.URL.Query().Get("period")
	if period == "" {
		period = calculations.PeriodDaily
	}

	view, err := s.engine.Temporal(period)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeView(w, view, view == nil)
}

func (s *Server) handleModels(w http.ResponseWriter, r *http.Request) {
	view := s.engine.Models()
	writeView(w, view, view == nil)
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	view := s.engine.Categories()
	writeView(w, view, view == nil)
}

func (s *Server) handleQuality(w http.ResponseWriter, r *http.Request) {
	view := s.engine.Quality()
	writeView(w, view, view == nil)
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Prompt string `json:"prompt"`
	}

	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Prompt) == "" {
		writeError(w, http.StatusBadRequest, "prompt is required")
		return
	}

	writeJSON(w, http.StatusOK, scoring.Analyze(req.Prompt))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	stale := false
	if s.watcher != nil {
		stale = s.watcher.Stale()
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":        "ok",
		"version":       s.cfg.Version,
		"total_records": s.ds.Len(),
		"load_warnings": logging.GetLogger().WarningCount(),
		"dataset_stale": stale,
	})
}
