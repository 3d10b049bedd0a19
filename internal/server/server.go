package server

import (
	"errors"
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog"

	"abilitydraft-stats/internal/api"
	"abilitydraft-stats/internal/config"
	"abilitydraft-stats/internal/service"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const defaultHistoryLimit = 50

// Server exposes the assembled dashboard views as JSON. Error handling is
// per-endpoint: a failed query renders an error for that section only,
// nothing is fatal to the process.
type Server struct {
	stats        *service.StatsService
	players      *service.PlayerService
	session      *service.SessionService
	defaultPatch string
	logger       zerolog.Logger
}

func New(stats *service.StatsService, players *service.PlayerService, session *service.SessionService, cfg *config.Config, logger zerolog.Logger) *Server {
	return &Server{
		stats:        stats,
		players:      players,
		session:      session,
		defaultPatch: cfg.DefaultPatch,
		logger:       logger,
	}
}

func (s *Server) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/abilities", s.handleAbilities)
	mux.HandleFunc("GET /api/abilities/{id}/curve", s.handleCurve)
	mux.HandleFunc("GET /api/pairs", s.handlePairs)
	mux.HandleFunc("GET /api/heroes", s.handleHeroes)
	mux.HandleFunc("GET /api/facets", s.handleFacets)
	mux.HandleFunc("GET /api/leaderboard", s.handleLeaderboard)
	mux.HandleFunc("GET /api/distribution", s.handleDistribution)
	mux.HandleFunc("GET /api/players", s.handlePlayers)
	mux.HandleFunc("GET /api/players/{id}/history", s.handlePlayerHistory)
	mux.HandleFunc("GET /api/session", s.handleSession)
	mux.HandleFunc("GET /charts/abilities/{id}/curve", s.handleCurveChart)
	mux.HandleFunc("GET /charts/distribution", s.handleDistributionChart)
}

func (s *Server) patch(r *http.Request) string {
	if p := r.URL.Query().Get("patch"); p != "" {
		return p
	}
	return s.defaultPatch
}

func (s *Server) handleAbilities(w http.ResponseWriter, r *http.Request) {
	rows, err := s.stats.AbilitiesView(r.Context(), s.patch(r))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeData(w, rows)
}

func (s *Server) handleCurve(w http.ResponseWriter, r *http.Request) {
	abilityID, ok := s.abilityID(w, r)
	if !ok {
		return
	}
	view, err := s.stats.CurveView(r.Context(), abilityID, s.patch(r))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeData(w, view)
}

func (s *Server) handlePairs(w http.ResponseWriter, r *http.Request) {
	excludeSameHero := r.URL.Query().Get("excludeSameHero") == "true"
	rows, err := s.stats.PairsView(r.Context(), s.patch(r), excludeSameHero)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeData(w, rows)
}

func (s *Server) handleHeroes(w http.ResponseWriter, r *http.Request) {
	rows, err := s.stats.HeroesView(r.Context(), s.patch(r))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeData(w, rows)
}

func (s *Server) handleFacets(w http.ResponseWriter, r *http.Request) {
	rows, err := s.stats.FacetsView(r.Context(), s.patch(r))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeData(w, rows)
}

func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	rows, err := s.stats.LeaderboardView(r.Context(), r.URL.Query().Get("region"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeData(w, rows)
}

func (s *Server) handleDistribution(w http.ResponseWriter, r *http.Request) {
	summary, err := s.stats.DistributionView(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeData(w, summary)
}

func (s *Server) handlePlayers(w http.ResponseWriter, r *http.Request) {
	results, err := s.players.Lookup(r.Context(), r.URL.Query().Get("ids"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeData(w, results)
}

func (s *Server) handlePlayerHistory(w http.ResponseWriter, r *http.Request) {
	views, err := s.players.History(r.Context(), r.PathValue("id"), defaultHistoryLimit)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeData(w, views)
}

func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	session, err := s.session.Current(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	// session is nil when nobody is logged in; the envelope carries null.
	s.writeData(w, session)
}

func (s *Server) abilityID(w http.ResponseWriter, r *http.Request) (int32, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 32)
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "malformed ability id"})
		return 0, false
	}
	return int32(id), true
}

func (s *Server) writeData(w http.ResponseWriter, v any) {
	s.writeJSON(w, http.StatusOK, map[string]any{"data": v})
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case service.IsValidationError(err):
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, api.ErrNotFound):
		s.writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
	default:
		s.logger.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
		s.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "error loading data"})
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error().Err(err).Msg("failed to encode response")
	}
}
