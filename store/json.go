package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/Nydauron/teamscore/tournament"
)

const DefaultDataFile = "tournament_data.json"

// JSONFile keeps the snapshot in one indented JSON file.
type JSONFile struct {
	path   string
	logger *zap.Logger
}

func NewJSONFile(path string, logger *zap.Logger) *JSONFile {
	if path == "" {
		path = DefaultDataFile
	}
	return &JSONFile{path: path, logger: logger}
}

func (j *JSONFile) Location() string {
	return j.path
}

func (j *JSONFile) Load(ctx context.Context) (*tournament.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(j.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNoData
	}
	if err != nil {
		return nil, &tournament.PersistenceError{Op: "load", Path: j.path, Err: err}
	}
	return decodeSnapshot("load", j.path, data)
}

func decodeSnapshot(op, path string, data []byte) (*tournament.Snapshot, error) {
	var snap tournament.Snapshot
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&snap); err != nil {
		return nil, &tournament.PersistenceError{Op: op, Path: path, Err: err}
	}
	return &snap, nil
}

// Save writes to a temporary file in the same directory and renames it over
// the data file, so a failed write never truncates the previous save.
func (j *JSONFile) Save(ctx context.Context, snap tournament.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.MarshalIndent(snap, "", "    ")
	if err != nil {
		return &tournament.PersistenceError{Op: "save", Path: j.path, Err: err}
	}

	dir := filepath.Dir(j.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(j.path)+".*.tmp")
	if err != nil {
		return &tournament.PersistenceError{Op: "save", Path: j.path, Err: err}
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return &tournament.PersistenceError{Op: "save", Path: j.path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &tournament.PersistenceError{Op: "save", Path: j.path, Err: err}
	}
	if err := os.Rename(tmpName, j.path); err != nil {
		return &tournament.PersistenceError{Op: "save", Path: j.path, Err: err}
	}

	j.logger.Debug("saved tournament data", zap.String("path", j.path), zap.Int("bytes", len(data)))
	return nil
}

func (j *JSONFile) Close() error {
	return nil
}
