package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/bnb/core"
	"github.com/katalvlaran/bnb/frontier"
	"github.com/katalvlaran/bnb/logging"
)

const (
	envPrefix = "BNB"

	// Config keys.
	KeyStrategy    = "strategy"
	KeyMaxBranches = "max_branches"
	KeyLogLevel    = "log_level"
	KeyLogFormat   = "log_format"

	defaultStrategy    = string(frontier.BestFirst)
	defaultMaxBranches = -1
	defaultLogLevel    = "info"
	defaultLogFormat   = "text"
)

// Settings are the tunables of one solve.
type Settings struct {
	Strategy    string
	MaxBranches int
	LogLevel    string
	LogFormat   string
}

// Default returns the built-in settings: best-first, no branch budget,
// info-level text logs.
func Default() Settings {
	return Settings{
		Strategy:    defaultStrategy,
		MaxBranches: defaultMaxBranches,
		LogLevel:    defaultLogLevel,
		LogFormat:   defaultLogFormat,
	}
}

// Validate checks every field and wraps failures in core.ErrConfiguration.
func (s Settings) Validate() error {
	if _, err := frontier.ParseStrategy(s.Strategy); err != nil {
		return err
	}
	if s.MaxBranches < -1 {
		return fmt.Errorf("%w: max_branches must be >= -1 (got %d)", core.ErrConfiguration, s.MaxBranches)
	}
	if _, err := logging.ParseLevel(s.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", core.ErrConfiguration, err)
	}

	return checkFormat(s.LogFormat)
}

func checkFormat(format string) error {
	switch strings.ToLower(format) {
	case "text", "json":
		return nil
	default:
		return fmt.Errorf("%w: log_format must be text or json (got %q)", core.ErrConfiguration, format)
	}
}

// newViper returns a viper instance with defaults and BNB_* env bindings.
func newViper() *viper.Viper {
	v := viper.New()
	d := Default()
	v.SetDefault(KeyStrategy, d.Strategy)
	v.SetDefault(KeyMaxBranches, d.MaxBranches)
	v.SetDefault(KeyLogLevel, d.LogLevel)
	v.SetDefault(KeyLogFormat, d.LogFormat)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	return v
}

// Load reads settings from path (may be empty) and the environment.
// A missing file falls back to defaults plus environment.
func Load(path string) (Settings, error) {
	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
		if filepath.Ext(path) == "" {
			v.SetConfigType("yaml")
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
				return Settings{}, fmt.Errorf("config: read %s: %w", path, err)
			}
		}
	}

	s := Settings{
		Strategy:    v.GetString(KeyStrategy),
		MaxBranches: v.GetInt(KeyMaxBranches),
		LogLevel:    v.GetString(KeyLogLevel),
		LogFormat:   v.GetString(KeyLogFormat),
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}

	return s, nil
}

// Logger builds the logger described by s. An invalid LogLevel or LogFormat
// fails with core.ErrConfiguration.
func (s Settings) Logger() (logging.Logger, error) {
	lvl, err := logging.ParseLevel(s.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", core.ErrConfiguration, err)
	}
	if err = checkFormat(s.LogFormat); err != nil {
		return nil, err
	}

	return logging.New(logging.Config{Level: lvl, Format: s.LogFormat}), nil
}
