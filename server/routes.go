// Package server exposes a read-only HTTP view of the saved tournament. It
// reads the store on every request, so it always shows what the CLI last
// saved and never writes.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/Nydauron/teamscore/store"
	"github.com/Nydauron/teamscore/tournament"
)

type Server struct {
	store    store.Store
	capacity int
	logger   *zap.Logger
	metrics  *metrics
}

func New(st store.Store, capacity int, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{store: st, capacity: capacity, logger: logger, metrics: newMetrics()}
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", Healthz)
	r.Method(http.MethodGet, "/metrics", s.metrics.handler())
	r.Get("/status", s.Status)
	r.Get("/teams", s.ListTeams)
	r.Get("/teams/{name}", s.GetTeam)
	r.Get("/events", s.ListEvents)
	r.Get("/leaderboard", s.GetLeaderboard)
	r.Get("/leaderboard/{format}", s.ExportLeaderboard)
	return r
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("serving leaderboard", zap.String("addr", addr), zap.String("data", s.store.Location()))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.logger.Info("shutting down server")
		return srv.Shutdown(shutdownCtx)
	}
}

// state loads a fresh copy of the saved tournament. Nothing saved yet is an
// empty tournament, not an error.
func (s *Server) state(ctx context.Context) (*tournament.State, error) {
	st := tournament.New(tournament.WithCapacity(s.capacity))
	snap, err := s.store.Load(ctx)
	if errors.Is(err, store.ErrNoData) {
		return st, nil
	}
	if err != nil {
		return nil, err
	}
	if err := st.Restore(*snap); err != nil {
		return nil, err
	}
	return st, nil
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		route := ""
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			route = rctx.RoutePattern()
		}
		s.metrics.observe(route, ww.Status(), time.Since(start).Seconds())
		s.logger.Debug("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("route", route),
			zap.Int("status", ww.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}
