package server

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"abilitydraft-stats/internal/api"
	"abilitydraft-stats/internal/repository"
	"abilitydraft-stats/internal/service"
)

func TestWriteDataEnvelope(t *testing.T) {
	s := &Server{logger: zerolog.Nop()}
	rec := httptest.NewRecorder()

	s.writeData(rec, []int{1, 2, 3})

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != `{"data":[1,2,3]}` {
		t.Errorf("body = %s, want {\"data\":[1,2,3]}", got)
	}
}

func TestWriteErrorStatusMapping(t *testing.T) {
	s := &Server{logger: zerolog.Nop()}
	req := httptest.NewRequest(http.MethodGet, "/api/abilities", nil)

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "not found", err: api.ErrNotFound, wantStatus: http.StatusNotFound},
		{name: "wrapped not found", err: errors.Join(errors.New("fetch"), api.ErrNotFound), wantStatus: http.StatusNotFound},
		{name: "generic failure", err: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			s.writeError(rec, req, tt.err)
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if !strings.Contains(rec.Body.String(), `"error"`) {
				t.Errorf("body = %s, want an error object", rec.Body.String())
			}
		})
	}
}

func TestHandlePlayersRejectsMalformedIDs(t *testing.T) {
	players := service.NewPlayerService(&api.Client{}, repository.NewPlayerRepository(nil, zerolog.Nop()), zerolog.Nop())
	s := &Server{players: players, logger: zerolog.Nop()}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/players?ids=abc", nil)
	s.handlePlayers(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestAbilityIDParsing(t *testing.T) {
	s := &Server{logger: zerolog.Nop()}
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/abilities/{id}/curve", func(w http.ResponseWriter, r *http.Request) {
		if _, ok := s.abilityID(w, r); ok {
			t.Error("expected malformed id to be rejected")
		}
	})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/abilities/nope/curve", nil))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}
