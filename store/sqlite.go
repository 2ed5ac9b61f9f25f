package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/Nydauron/teamscore/tournament"
)

const DefaultSQLiteFile = "tournament_data.db"

const schema = `CREATE TABLE IF NOT EXISTS snapshots (
	id         INTEGER PRIMARY KEY CHECK (id = 1),
	body       TEXT    NOT NULL,
	updated_at INTEGER NOT NULL
)`

// SQLite stores the snapshot document in a single-row table.
type SQLite struct {
	db     *sql.DB
	path   string
	logger *zap.Logger
}

func OpenSQLite(path string, logger *zap.Logger) (*SQLite, error) {
	if strings.TrimSpace(path) == "" {
		path = DefaultSQLiteFile
	}
	cleanPath := filepath.Clean(path)
	db, err := sql.Open("sqlite", cleanPath+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, &tournament.PersistenceError{Op: "open", Path: cleanPath, Err: err}
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, &tournament.PersistenceError{Op: "open", Path: cleanPath, Err: err}
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, &tournament.PersistenceError{Op: "migrate", Path: cleanPath, Err: err}
	}
	return &SQLite{db: db, path: cleanPath, logger: logger}, nil
}

func (s *SQLite) Location() string {
	return s.path
}

func (s *SQLite) Load(ctx context.Context) (*tournament.Snapshot, error) {
	var body string
	err := s.db.QueryRowContext(ctx, `SELECT body FROM snapshots WHERE id = 1`).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoData
	}
	if err != nil {
		return nil, &tournament.PersistenceError{Op: "load", Path: s.path, Err: err}
	}
	return decodeSnapshot("load", s.path, []byte(body))
}

func (s *SQLite) Save(ctx context.Context, snap tournament.Snapshot) error {
	body, err := json.Marshal(snap)
	if err != nil {
		return &tournament.PersistenceError{Op: "save", Path: s.path, Err: err}
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO snapshots (id, body, updated_at) VALUES (1, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET body = excluded.body, updated_at = excluded.updated_at`,
		string(body), time.Now().UTC().UnixMilli(),
	)
	if err != nil {
		return &tournament.PersistenceError{Op: "save", Path: s.path, Err: fmt.Errorf("upsert snapshot: %w", err)}
	}
	s.logger.Debug("saved tournament data", zap.String("path", s.path), zap.Int("bytes", len(body)))
	return nil
}

func (s *SQLite) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
