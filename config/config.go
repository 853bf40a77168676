// Package config resolves the logger's startup settings from the
// environment.
//
// Two variables are read: LOG_LEVEL, an explicit starting level, and
// APP_ENV, where "production" enables the production guard. Values can
// also come from .env files via Load; variables already present in the
// process environment win over file values.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/philipp01105/scopelog/core"
)

// Environment variable names
const (
	EnvLogLevel = "LOG_LEVEL"
	EnvMode     = "APP_ENV"
)

// ModeProduction is the APP_ENV value that marks a production build.
const ModeProduction = "production"

// Config holds the raw startup settings.
type Config struct {
	// Level is the explicit starting level name; empty means unset
	Level string
	// Mode is the environment mode, e.g. "production" or "development"
	Mode string
}

// FromEnv reads the configuration from the process environment.
func FromEnv() Config {
	return Config{
		Level: getString(EnvLogLevel, ""),
		Mode:  getString(EnvMode, ""),
	}
}

// Load reads the given .env files (default ".env") and overlays the process
// environment. Missing files are skipped; other read errors are returned
// together with the environment-only configuration.
func Load(files ...string) (Config, error) {
	cfg := FromEnv()
	if len(files) == 0 {
		files = []string{".env"}
	}

	for _, file := range files {
		values, err := godotenv.Read(file)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return FromEnv(), fmt.Errorf("read %s: %w", file, err)
		}
		if _, set := os.LookupEnv(EnvLogLevel); !set {
			if v, ok := values[EnvLogLevel]; ok {
				cfg.Level = v
			}
		}
		if _, set := os.LookupEnv(EnvMode); !set {
			if v, ok := values[EnvMode]; ok {
				cfg.Mode = v
			}
		}
	}
	return cfg, nil
}

// Production reports whether Mode names a production build.
func (c Config) Production() bool {
	return strings.EqualFold(strings.TrimSpace(c.Mode), ModeProduction)
}

// InitialLevel returns the explicit level when it parses, otherwise info in
// production and debug elsewhere.
func (c Config) InitialLevel() core.Level {
	if c.Level != "" {
		if l, err := core.ParseLevel(c.Level); err == nil {
			return l
		}
	}
	return core.DefaultLevel(c.Production())
}

// NewLevelState builds the shared level state described by c.
func (c Config) NewLevelState() *core.LevelState {
	return core.NewLevelState(c.InitialLevel(), c.Production())
}

func getString(key, fallback string) string {
	val, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	return val
}
