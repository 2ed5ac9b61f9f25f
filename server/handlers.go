package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Nydauron/teamscore/leaderboard"
)

var contentTypes = map[leaderboard.Format]string{
	leaderboard.FormatCSV:  "text/csv; charset=utf-8",
	leaderboard.FormatYAML: "application/yaml",
	leaderboard.FormatHTML: "text/html; charset=utf-8",
	leaderboard.FormatXLSX: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	leaderboard.FormatPNG:  "image/png",
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.Error("failed to load tournament data", zap.String("path", r.URL.Path), zap.Error(err))
	writeJSON(w, http.StatusInternalServerError, errorDTO{Error: err.Error()})
}

func Healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) Status(w http.ResponseWriter, r *http.Request) {
	st, err := s.state(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toStatusDTO(st.Summary()))
}

func (s *Server) ListTeams(w http.ResponseWriter, r *http.Request) {
	st, err := s.state(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toStatusDTO(st.Summary()).Teams)
}

func (s *Server) GetTeam(w http.ResponseWriter, r *http.Request) {
	st, err := s.state(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	name := chi.URLParam(r, "name")
	for _, t := range st.Summary().Teams {
		if t.Name == name {
			writeJSON(w, http.StatusOK, toTeamDTO(t))
			return
		}
	}
	writeJSON(w, http.StatusNotFound, errorDTO{Error: "Team '" + name + "' not found."})
}

func (s *Server) ListEvents(w http.ResponseWriter, r *http.Request) {
	st, err := s.state(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	active, _ := st.ActiveEvent()
	events := st.Events()
	out := make([]eventDTO, len(events))
	for i, e := range events {
		out[i] = eventDTO{Name: e.Name, Type: e.Kind, Description: e.Description, Active: e.Name == active.Name}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	st, err := s.state(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, leaderboard.Rank(st))
}

func (s *Server) ExportLeaderboard(w http.ResponseWriter, r *http.Request) {
	format, err := leaderboard.ParseFormat(strings.TrimPrefix(chi.URLParam(r, "format"), "."))
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorDTO{Error: err.Error()})
		return
	}
	st, err := s.state(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}

	// render first so a failure still produces a clean error response
	var buf bytes.Buffer
	err = leaderboard.Export(&buf, leaderboard.Rank(st), format)
	if errors.Is(err, leaderboard.ErrEmptyBoard) {
		writeJSON(w, http.StatusNotFound, errorDTO{Error: err.Error()})
		return
	}
	if err != nil {
		s.logger.Error("failed to export leaderboard", zap.String("format", string(format)), zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorDTO{Error: err.Error()})
		return
	}
	w.Header().Set("Content-Type", contentTypes[format])
	w.Header().Set("Content-Disposition", `attachment; filename="leaderboard.`+string(format)+`"`)
	_, _ = w.Write(buf.Bytes())
}
