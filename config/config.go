// Package config loads teamscore settings from an optional YAML file and the
// environment. Environment variables win over the file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

const DefaultFile = "teamscore.yaml"

type Config struct {
	Store  StoreConfig  `yaml:"store"`
	Teams  TeamsConfig  `yaml:"teams"`
	Log    LogConfig    `yaml:"log"`
	Export ExportConfig `yaml:"export"`
	Server ServerConfig `yaml:"server"`
}

// StoreConfig selects the persistence backend. Driver is "json" or "sqlite".
type StoreConfig struct {
	Driver string `yaml:"driver" env:"TEAMSCORE_STORE_DRIVER"`
	Path   string `yaml:"path" env:"TEAMSCORE_DATA_FILE"`
}

type TeamsConfig struct {
	Count    int `yaml:"count" env:"TEAMSCORE_TEAM_COUNT"`
	Capacity int `yaml:"capacity" env:"TEAMSCORE_TEAM_CAPACITY"`
}

type LogConfig struct {
	Level  string `yaml:"level" env:"TEAMSCORE_LOG_LEVEL"`
	Format string `yaml:"format" env:"TEAMSCORE_LOG_FORMAT"` // console|json
}

type ExportConfig struct {
	File string `yaml:"file" env:"TEAMSCORE_EXPORT_FILE"`
}

type ServerConfig struct {
	Addr string `yaml:"addr" env:"TEAMSCORE_SERVER_ADDR"`
}

// Default returns the settings used when neither a file nor the environment
// says otherwise.
func Default() Config {
	return Config{
		Store:  StoreConfig{Driver: "json", Path: "tournament_data.json"},
		Teams:  TeamsConfig{Count: 5, Capacity: 4},
		Log:    LogConfig{Level: "info", Format: "console"},
		Export: ExportConfig{File: "tournament_leaderboard.csv"},
		Server: ServerConfig{Addr: ":8080"},
	}
}

// Load reads filename if it exists, then applies environment overrides. A
// missing file is not an error; an explicitly named file that fails to parse
// is.
func Load(filename string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filename)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config %s: %w", filename, err)
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return nil, fmt.Errorf("failed to read config %s: %w", filename, err)
	}

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	switch strings.ToLower(c.Store.Driver) {
	case "json", "sqlite":
	default:
		errs = append(errs, fmt.Errorf("store.driver must be json or sqlite, got %q", c.Store.Driver))
	}
	if strings.TrimSpace(c.Store.Path) == "" {
		errs = append(errs, errors.New("store.path is required"))
	}
	if c.Teams.Count < 1 {
		errs = append(errs, fmt.Errorf("teams.count must be at least 1, got %d", c.Teams.Count))
	}
	if c.Teams.Capacity < 1 {
		errs = append(errs, fmt.Errorf("teams.capacity must be at least 1, got %d", c.Teams.Capacity))
	}
	switch strings.ToLower(c.Log.Format) {
	case "console", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format must be console or json, got %q", c.Log.Format))
	}
	return errors.Join(errs...)
}
