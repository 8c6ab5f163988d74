package config

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestLoad(t *testing.T) {
	t.Setenv("RBXCLOUD_API_KEY", "secret")
	t.Setenv("RBXCLOUD_DEBUG", "true")
	t.Setenv("RBXCLOUD_LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIKey != "secret" {
		t.Errorf("APIKey = %q", cfg.APIKey)
	}
	if !cfg.Debug {
		t.Error("Debug = false")
	}
	if cfg.Level() != zerolog.DebugLevel {
		t.Errorf("Level() = %v", cfg.Level())
	}
}

func TestInitAppliesLogLevel(t *testing.T) {
	prev := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(prev) })

	cfg := &Config{LogLevel: "error"}
	cfg.Init()
	if zerolog.GlobalLevel() != zerolog.ErrorLevel {
		t.Errorf("global level = %v, want error", zerolog.GlobalLevel())
	}
}

func TestLevelDefault(t *testing.T) {
	cfg := &Config{LogLevel: "nonsense"}
	if cfg.Level() != zerolog.WarnLevel {
		t.Errorf("Level() = %v, want warn", cfg.Level())
	}
}
