package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/philipp01105/scopelog/core"
)

func TestConfig_InitialLevel(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want core.Level
	}{
		{"explicit wins", Config{Level: "warn", Mode: "production"}, core.WarnLevel},
		{"explicit trace in production", Config{Level: "trace", Mode: "production"}, core.TraceLevel},
		{"production default", Config{Mode: "production"}, core.InfoLevel},
		{"production case-insensitive", Config{Mode: " Production "}, core.InfoLevel},
		{"development default", Config{Mode: "development"}, core.DebugLevel},
		{"unset default", Config{}, core.DebugLevel},
		{"unknown level falls back", Config{Level: "loud", Mode: "production"}, core.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.InitialLevel(); got != tt.want {
				t.Errorf("InitialLevel() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestConfig_NewLevelState(t *testing.T) {
	s := Config{Mode: "production"}.NewLevelState()
	if !s.Production() {
		t.Error("Expected production guard")
	}
	if s.SetLevel(core.DebugLevel) {
		t.Error("Expected debug to be refused in production")
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvLogLevel, "error")
	t.Setenv(EnvMode, "production")

	cfg := FromEnv()
	if cfg.Level != "error" || !cfg.Production() {
		t.Errorf("FromEnv() = %+v", cfg)
	}
}

func TestLoad_DotEnv(t *testing.T) {
	// Setenv first so the original value is restored after the test
	t.Setenv(EnvLogLevel, "")
	os.Unsetenv(EnvLogLevel)
	t.Setenv(EnvMode, "staging")

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("LOG_LEVEL=warn\nAPP_ENV=production\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Level != "warn" {
		t.Errorf("Level = %q, want warn from file", cfg.Level)
	}
	if cfg.Mode != "staging" {
		t.Errorf("Mode = %q, want process value staging", cfg.Mode)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Setenv(EnvLogLevel, "info")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Level != "info" {
		t.Errorf("Level = %q, want info", cfg.Level)
	}
}
