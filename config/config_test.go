package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *cfg != *DefaultConfig() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoad_CorruptReturnsDefaultsWithError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"display_width": "wide"`), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err == nil {
		t.Fatalf("expected decode error")
	}
	if cfg.DisplayWidth != 1920 {
		t.Fatalf("expected default width, got %d", cfg.DisplayWidth)
	}
}

func TestSaveLoad_RoundTripAndClamp(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")
	cfg := DefaultConfig()
	cfg.DisplayWidth = 1280
	cfg.DisplayHeight = -5
	cfg.LogLevel = "WARN"
	if err := cfg.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.DisplayWidth != 1280 || got.DisplayHeight != 1080 {
		t.Fatalf("unexpected size %dx%d", got.DisplayWidth, got.DisplayHeight)
	}
	if got.Level() != slog.LevelWarn {
		t.Fatalf("expected warn level, got %v", got.Level())
	}
}

func TestLevel_DebugOverrides(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Debug = true
	if cfg.Level() != slog.LevelDebug {
		t.Fatalf("debug flag should force debug level")
	}
}

func TestDefaultPath_UnderAppDir(t *testing.T) {
	p := DefaultPath()
	if filepath.Base(p) != "config.json" || filepath.Base(filepath.Dir(p)) != "vqa-annotator" {
		t.Fatalf("unexpected default path %q", p)
	}
}
