// Package session ties a tournament.State to a store. Every mutation is
// applied in memory first and then saved; a failed save is reported to the
// caller but never rolls the mutation back, so the operator keeps working
// with the last good in-memory state.
package session

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Nydauron/teamscore/parsers"
	"github.com/Nydauron/teamscore/store"
	"github.com/Nydauron/teamscore/tournament"
)

type Session struct {
	state  *tournament.State
	store  store.Store
	logger *zap.Logger
}

// Open loads saved data into a fresh state. A missing data file starts an
// empty tournament. Unreadable or invalid data is logged and returned as a
// *tournament.PersistenceError alongside a usable session holding a fresh
// state, so callers can report the problem and carry on.
func Open(ctx context.Context, st store.Store, logger *zap.Logger, opts ...tournament.Option) (*Session, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Session{
		state:  tournament.New(opts...),
		store:  st,
		logger: logger,
	}

	snap, err := st.Load(ctx)
	if errors.Is(err, store.ErrNoData) {
		logger.Info("no saved tournament data, starting fresh", zap.String("location", st.Location()))
		return s, nil
	}
	if err == nil {
		err = s.state.Restore(*snap)
	}
	if err != nil {
		logger.Warn("could not load tournament data, starting fresh",
			zap.String("location", st.Location()), zap.Error(err))
		return s, err
	}

	logger.Debug("loaded tournament data", zap.String("location", st.Location()))
	return s, nil
}

// State returns a copy of the current state for read-only use.
func (s *Session) State() *tournament.State {
	return s.state.Clone()
}

func (s *Session) Location() string {
	return s.store.Location()
}

// Save writes the current state to the store.
func (s *Session) Save(ctx context.Context) error {
	if err := s.store.Save(ctx, s.state.Snapshot()); err != nil {
		s.logger.Error("failed to save tournament data",
			zap.String("location", s.store.Location()), zap.Error(err))
		var perr *tournament.PersistenceError
		if !errors.As(err, &perr) {
			err = &tournament.PersistenceError{Op: "save", Path: s.store.Location(), Err: err}
		}
		return err
	}
	return nil
}

func (s *Session) InitializeTeams(ctx context.Context, count, capacity int) error {
	if err := s.state.InitializeTeams(count, capacity); err != nil {
		return err
	}
	s.logger.Info("teams initialized", zap.Int("count", count), zap.Int("capacity", capacity))
	return s.Save(ctx)
}

func (s *Session) AddMember(ctx context.Context, team, member string) error {
	if err := s.state.AddMember(team, member); err != nil {
		return err
	}
	s.logger.Debug("member added", zap.String("team", team), zap.String("member", member))
	return s.Save(ctx)
}

func (s *Session) RemoveMember(ctx context.Context, team, member string) error {
	if err := s.state.RemoveMember(team, member); err != nil {
		return err
	}
	s.logger.Debug("member removed", zap.String("team", team), zap.String("member", member))
	return s.Save(ctx)
}

func (s *Session) SelectEvent(ctx context.Context, name string) error {
	if err := s.state.SelectEvent(name); err != nil {
		return err
	}
	s.logger.Info("event selected", zap.String("event", name))
	return s.Save(ctx)
}

// RecordScore stores a result for the active event. The record is returned
// even when only the save failed.
func (s *Session) RecordScore(ctx context.Context, team string, in tournament.ScoreInput) (tournament.ScoreRecord, error) {
	rec, err := s.state.RecordScore(team, in)
	if err != nil {
		return nil, err
	}
	s.logger.Info("score recorded", zap.String("team", team), zap.Int("points", rec.Points()))
	return rec, s.Save(ctx)
}

// ImportRoster adds every row's member to its team. Rows are applied to a
// copy of the state, and the copy replaces the live state only if every row
// succeeds; otherwise nothing changes and the first failure is returned with
// its line number.
func (s *Session) ImportRoster(ctx context.Context, rows []parsers.RosterRow) (int, error) {
	next := s.state.Clone()
	for _, row := range rows {
		if err := next.AddMember(row.Team, row.Member); err != nil {
			return 0, fmt.Errorf("line %d: %w", row.Line, err)
		}
	}
	s.state = next
	s.logger.Info("roster imported", zap.Int("members", len(rows)))
	return len(rows), s.Save(ctx)
}
