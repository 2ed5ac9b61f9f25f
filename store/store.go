// Package store persists tournament snapshots. Both backends hold the same
// JSON document; the SQLite backend keeps it in a single-row table.
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/Nydauron/teamscore/tournament"
)

// ErrNoData is returned by Load when nothing has been saved yet.
var ErrNoData = errors.New("no saved tournament data")

type Store interface {
	Load(ctx context.Context) (*tournament.Snapshot, error)
	Save(ctx context.Context, snap tournament.Snapshot) error
	// Location describes where data lives, for status messages.
	Location() string
	Close() error
}

const (
	DriverJSON   = "json"
	DriverSQLite = "sqlite"
)

type Options struct {
	Driver string
	Path   string
	Logger *zap.Logger
}

// Open returns the backend named by opts.Driver.
func Open(opts Options) (Store, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	switch strings.ToLower(opts.Driver) {
	case "", DriverJSON:
		return NewJSONFile(opts.Path, logger), nil
	case DriverSQLite:
		return OpenSQLite(opts.Path, logger)
	default:
		return nil, fmt.Errorf("unknown store driver %q", opts.Driver)
	}
}
