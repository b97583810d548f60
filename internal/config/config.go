// Package config loads the planner's TOML settings file, creating it with
// defaults on first launch, and applies PLANNER_* environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/alexanderramin/planner/internal/calendar"
	"github.com/alexanderramin/planner/internal/domain"
	"github.com/alexanderramin/planner/internal/series"
)

const (
	DefaultDirName        = ".planner"
	DefaultConfigFileName = "config.toml"
	DefaultDBName         = "planner.db"

	DefaultSeasonName  = "寒假"
	DefaultSeasonStart = "2026-01-19"
	DefaultSeasonEnd   = "2026-03-01"
)

const (
	EnvConfig      = "PLANNER_CONFIG"
	EnvDB          = "PLANNER_DB"
	EnvLogUseCases = "PLANNER_LOG_USECASES"
)

type Season struct {
	Name  string `toml:"name"`
	Start string `toml:"start"`
	End   string `toml:"end"`
}

type Config struct {
	DBPath                string `toml:"db_path"`
	Season                Season `toml:"season"`
	DefaultEventType      string `toml:"default_event_type"`
	DefaultCustomInterval int    `toml:"default_custom_interval"`
	LogUseCases           bool   `toml:"log_use_cases"`
}

// Default returns the configuration written on first launch.
func Default() Config {
	return Config{
		DBPath: DefaultDBName,
		Season: Season{
			Name:  DefaultSeasonName,
			Start: DefaultSeasonStart,
			End:   DefaultSeasonEnd,
		},
		DefaultEventType:      string(domain.EventStudy),
		DefaultCustomInterval: series.DefaultCustomInterval,
	}
}

// DefaultPath returns the config file location: $PLANNER_CONFIG when set,
// otherwise ~/.planner/config.toml.
func DefaultPath() (string, error) {
	if p := os.Getenv(EnvConfig); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, DefaultDirName, DefaultConfigFileName), nil
}

// LoadOrCreate reads the config at path, writing the defaults there first if
// the file does not exist. Unset fields keep their defaults. A relative
// db_path is resolved against the config file's directory. Environment
// overrides are applied last.
func LoadOrCreate(path string) (Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, fmt.Errorf("writing default config: %w", err)
		}
	} else {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("reading config: %w", err)
		}
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	cfg.DBPath = domain.CoalesceStr(cfg.DBPath, DefaultDBName)
	if !filepath.IsAbs(cfg.DBPath) {
		cfg.DBPath = filepath.Join(filepath.Dir(path), cfg.DBPath)
	}
	ApplyEnv(&cfg)
	return cfg, nil
}

// ApplyEnv overrides cfg from PLANNER_DB and PLANNER_LOG_USECASES. Values
// that do not parse are ignored.
func ApplyEnv(cfg *Config) {
	if v := os.Getenv(EnvDB); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv(EnvLogUseCases); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.LogUseCases = b
		}
	}
}

// Validate returns every problem found in cfg.
func (c Config) Validate() []error {
	var errs []error

	if c.DBPath == "" {
		errs = append(errs, fmt.Errorf("db_path is required"))
	}
	if err := c.CalendarSeason().Validate(); err != nil {
		errs = append(errs, err)
	}
	if !domain.ValidEventTypes[c.DefaultEventType] {
		errs = append(errs, fmt.Errorf("default_event_type: invalid value %q", c.DefaultEventType))
	}
	if c.DefaultCustomInterval < series.MinCustomInterval {
		errs = append(errs, fmt.Errorf("default_custom_interval: must be at least %d, got %d",
			series.MinCustomInterval, c.DefaultCustomInterval))
	}

	return errs
}

// CalendarSeason converts the season section for the calendar package.
func (c Config) CalendarSeason() calendar.Season {
	return calendar.Season{
		Name:  c.Season.Name,
		Start: domain.DateKey(c.Season.Start),
		End:   domain.DateKey(c.Season.End),
	}
}

// EventType returns the type preselected for new events.
func (c Config) EventType() domain.EventType {
	return domain.NormalizeEventType(c.DefaultEventType)
}

func write(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
