package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Bodies < 1 {
		t.Error("bodies should be at least 1")
	}
	if cfg.Dt <= 0 {
		t.Error("dt should be positive")
	}
	if cfg.Steps <= 0 {
		t.Error("steps should be positive")
	}
	if cfg.Integrator != "rk4" {
		t.Errorf("expected default integrator rk4, got %s", cfg.Integrator)
	}
	if cfg.G <= 0 || cfg.Softening <= 0 {
		t.Error("physical constants should be positive")
	}
}

func TestFieldFromConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.G = 1.0
	cfg.Softening = 0.5

	f := cfg.Field()
	if f.G != 1.0 || f.Softening != 0.5 {
		t.Errorf("field does not reflect config: %+v", f)
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")

	cfg := DefaultConfig()
	cfg.Bodies = 9
	cfg.Steps = 123
	cfg.Integrator = "euler"
	cfg.TrackCentroid = true

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if loaded.Bodies != 9 || loaded.Steps != 123 || loaded.Integrator != "euler" || !loaded.TrackCentroid {
		t.Errorf("roundtrip mismatch: %+v", loaded)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("earth-year")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Steps != 365 {
		t.Errorf("expected 365 steps, got %d", cfg.Steps)
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for unknown preset")
	}
}

func TestListPresets(t *testing.T) {
	if len(ListPresets()) == 0 {
		t.Error("expected at least one preset")
	}
}
