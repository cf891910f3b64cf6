// Package config loads the YAML configuration, .env files and KANBAN_*
// environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/thenoetrevino/kanban/internal/position"
)

// Config represents the application configuration
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
	Board    BoardConfig    `yaml:"board"`
	Theme    Theme          `yaml:"theme"`
}

// ServerConfig configures the HTTP API
type ServerConfig struct {
	Addr              string        `yaml:"addr"`
	AllowedOrigins    []string      `yaml:"allowed_origins"`
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout"`
	ShutdownTimeout   time.Duration `yaml:"shutdown_timeout"`
}

// DatabaseConfig configures the SQLite store
type DatabaseConfig struct {
	Path        string        `yaml:"path"`
	BusyTimeout time.Duration `yaml:"busy_timeout"`
	// OpTimeout bounds every logical operation; exceeding it is a storage timeout.
	OpTimeout time.Duration `yaml:"op_timeout"`
}

// LogConfig configures slog output
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // text or json
	File   string `yaml:"file"`   // empty means stderr
}

// BoardConfig holds board behaviour switches
type BoardConfig struct {
	MovePolicy string `yaml:"move_policy"` // compact or legacy
}

// Environment variables read by Load
const (
	EnvConfigFile = "KANBAN_CONFIG"
	EnvAddr       = "KANBAN_ADDR"
	EnvOrigins    = "KANBAN_ALLOWED_ORIGINS"
	EnvDBPath     = "KANBAN_DB_PATH"
	EnvOpTimeout  = "KANBAN_OP_TIMEOUT"
	EnvLogLevel   = "KANBAN_LOG_LEVEL"
	EnvLogFormat  = "KANBAN_LOG_FORMAT"
	EnvLogFile    = "KANBAN_LOG_FILE"
	EnvMovePolicy = "KANBAN_MOVE_POLICY"
)

// Default returns a config with every field set to its default
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads the config file at path, falling back to $KANBAN_CONFIG and then
// the user config directory. A missing file yields the defaults. Values from
// a .env file in the working directory and KANBAN_* variables override the file.
func Load(path string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	if path == "" {
		path = os.Getenv(EnvConfigFile)
	}
	if path == "" {
		if p, err := DefaultPath(); err == nil {
			path = p
		}
	}

	config := &Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// defaults
		case err != nil:
			return nil, err
		default:
			if err := yaml.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("failed to parse %s: %w", path, err)
			}
		}
	}

	if err := config.applyEnv(); err != nil {
		return nil, err
	}
	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// MovePolicy returns the parsed board move policy
func (c *Config) MovePolicy() position.Policy {
	p, err := position.ParsePolicy(c.Board.MovePolicy)
	if err != nil {
		return position.Compact
	}
	return p
}

// Validate reports configuration values that cannot be used
func (c *Config) Validate() error {
	if _, err := position.ParsePolicy(c.Board.MovePolicy); err != nil {
		return err
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.Log.Format)
	}
	if c.Database.OpTimeout <= 0 {
		return fmt.Errorf("database.op_timeout must be positive")
	}
	return nil
}

// Save saves the config to the given path
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// DefaultPath returns the config file location under the user config directory
func DefaultPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "kanban", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "kanban", "config.yaml"), nil
}

// defaultDBPath returns ~/.kanban/kanban.db, or a relative path when the home
// directory is unknown
func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join("data", "kanban.db")
	}
	return filepath.Join(home, ".kanban", "kanban.db")
}

// applyEnv overrides fields from KANBAN_* environment variables
func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvAddr); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv(EnvOrigins); v != "" {
		c.Server.AllowedOrigins = nil
		for _, origin := range strings.Split(v, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				c.Server.AllowedOrigins = append(c.Server.AllowedOrigins, origin)
			}
		}
	}
	if v := os.Getenv(EnvDBPath); v != "" {
		c.Database.Path = v
	}
	if v := os.Getenv(EnvOpTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvOpTimeout, err)
		}
		c.Database.OpTimeout = d
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Log.Format = v
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		c.Log.File = v
	}
	if v := os.Getenv(EnvMovePolicy); v != "" {
		c.Board.MovePolicy = v
	}
	return nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = "127.0.0.1:8000"
	}
	if len(c.Server.AllowedOrigins) == 0 {
		c.Server.AllowedOrigins = []string{"http://localhost:5173", "http://127.0.0.1:5173"}
	}
	if c.Server.ReadHeaderTimeout == 0 {
		c.Server.ReadHeaderTimeout = 10 * time.Second
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10 * time.Second
	}
	if c.Database.Path == "" {
		c.Database.Path = defaultDBPath()
	}
	if c.Database.BusyTimeout == 0 {
		c.Database.BusyTimeout = 5 * time.Second
	}
	if c.Database.OpTimeout == 0 {
		c.Database.OpTimeout = 10 * time.Second
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	if c.Board.MovePolicy == "" {
		c.Board.MovePolicy = position.PolicyCompact
	}
	c.Theme.ApplyDefaults()
}
