// Package config loads application settings from Viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Veraticus/finboard/internal/common"
	"github.com/Veraticus/finboard/internal/model"
	"github.com/Veraticus/finboard/internal/source"
	"github.com/Veraticus/finboard/internal/store"
	"github.com/spf13/viper"
)

// Config is the fully validated application configuration.
type Config struct {
	Logging      LoggingConfig
	Dataset      DatasetConfig
	Server       ServerConfig
	Transactions store.TransactionView
	Source       source.SimulationConfig
	FetchPolicy  store.FetchPolicy
}

// LoggingConfig selects the slog level and handler.
type LoggingConfig struct {
	Level  string
	Format string
}

// DatasetConfig points at an optional SQLite dataset. An empty path means
// the built-in demo data.
type DatasetConfig struct {
	Path string
}

// UsesDemo reports whether no dataset file is configured.
func (d DatasetConfig) UsesDemo() bool {
	return d.Path == ""
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr           string
	AllowedOrigins []string
}

// SetDefaults registers default values for every key.
func SetDefaults(v *viper.Viper) {
	sim := source.DefaultSimulation()
	view := store.DefaultTransactionView()

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("source.error_rate", sim.ErrorRate)
	v.SetDefault("source.min_delay", sim.MinDelay)
	v.SetDefault("source.max_delay", sim.MaxDelay)
	v.SetDefault("store.fetch_policy", string(store.PolicyOverlap))
	v.SetDefault("dataset.path", "")
	v.SetDefault("transactions.sort_field", string(view.SortField))
	v.SetDefault("transactions.sort_direction", string(view.SortDirection))
	v.SetDefault("transactions.filter", "")
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.allowed_origins", []string{"*"})
}

// Load reads and validates the configuration held by v.
func Load(v *viper.Viper) (Config, error) {
	cfg := Config{
		Logging: LoggingConfig{
			Level:  v.GetString("logging.level"),
			Format: v.GetString("logging.format"),
		},
		Source: source.SimulationConfig{
			ErrorRate: v.GetFloat64("source.error_rate"),
			MinDelay:  v.GetDuration("source.min_delay"),
			MaxDelay:  v.GetDuration("source.max_delay"),
		},
		Dataset: DatasetConfig{
			Path: ExpandPath(v.GetString("dataset.path")),
		},
		Server: ServerConfig{
			Addr:           v.GetString("server.addr"),
			AllowedOrigins: v.GetStringSlice("server.allowed_origins"),
		},
	}

	if _, err := common.ParseLevel(cfg.Logging.Level); err != nil {
		return Config{}, err
	}

	if cfg.Source.ErrorRate < 0 || cfg.Source.ErrorRate > 1 {
		return Config{}, fmt.Errorf("%w: source.error_rate must be between 0 and 1, got %v",
			common.ErrInvalidConfig, cfg.Source.ErrorRate)
	}
	if cfg.Source.MinDelay < 0 || cfg.Source.MaxDelay < cfg.Source.MinDelay {
		return Config{}, fmt.Errorf("%w: source delays must satisfy 0 <= min_delay <= max_delay, got %s and %s",
			common.ErrInvalidConfig, cfg.Source.MinDelay, cfg.Source.MaxDelay)
	}

	policy, err := store.ParseFetchPolicy(v.GetString("store.fetch_policy"))
	if err != nil {
		return Config{}, err
	}
	cfg.FetchPolicy = policy

	field, err := model.ParseSortField(v.GetString("transactions.sort_field"))
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", common.ErrInvalidConfig, err)
	}
	direction, err := model.ParseSortDirection(v.GetString("transactions.sort_direction"))
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", common.ErrInvalidConfig, err)
	}
	cfg.Transactions = store.TransactionView{
		SortField:     field,
		SortDirection: direction,
		Filter:        v.GetString("transactions.filter"),
	}

	if cfg.Server.Addr == "" {
		return Config{}, fmt.Errorf("%w: server.addr", common.ErrMissingConfig)
	}

	return cfg, nil
}

// ExpandPath expands a leading ~ and $VAR references in a file path.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
		}
	}

	return os.ExpandEnv(path)
}

// Timeout bounds one-shot commands: the slowest possible fetch plus slack.
func (c Config) Timeout() time.Duration {
	return c.Source.MaxDelay + 30*time.Second
}
