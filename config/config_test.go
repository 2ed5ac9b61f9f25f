package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "teamscore.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	require.Equal(t, Default(), *cfg)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
store:
  driver: sqlite
  path: data.db
teams:
  count: 8
log:
  format: json
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "sqlite", cfg.Store.Driver)
	require.Equal(t, "data.db", cfg.Store.Path)
	require.Equal(t, 8, cfg.Teams.Count)
	require.Equal(t, 4, cfg.Teams.Capacity, "unset keys keep their defaults")
	require.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "teams:\n  capacity: 6\nserver:\n  addr: :9000\n")
	t.Setenv("TEAMSCORE_TEAM_CAPACITY", "2")
	t.Setenv("TEAMSCORE_DATA_FILE", "elsewhere.json")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 2, cfg.Teams.Capacity)
	require.Equal(t, "elsewhere.json", cfg.Store.Path)
	require.Equal(t, ":9000", cfg.Server.Addr)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
		env  map[string]string
	}{
		{name: "bad yaml", body: "teams: [\n"},
		{name: "bad driver", body: "store:\n  driver: postgres\n"},
		{name: "zero capacity", body: "teams:\n  capacity: 0\n"},
		{name: "bad log format", body: "log:\n  format: xml\n"},
		{name: "bad env int", body: "", env: map[string]string{"TEAMSCORE_TEAM_COUNT": "many"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load(writeConfig(t, tt.body))
			require.Error(t, err)
		})
	}
}
