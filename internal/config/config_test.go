package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Substance != "water" {
		t.Errorf("expected substance water, got %s", cfg.Substance)
	}
	if cfg.Pair != "TV" {
		t.Errorf("expected pair TV, got %s", cfg.Pair)
	}
	if cfg.Tolerance <= 0 {
		t.Error("tolerance should be positive")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.yaml")

	cfg := &Config{Substance: "co2", Pair: "HP", X: 12500.0, Y: 2.0e6, Tolerance: 1e-10}
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Substance != "co2" || loaded.Pair != "HP" {
		t.Errorf("unexpected identity after round trip: %+v", loaded)
	}
	if loaded.X != 12500.0 || loaded.Y != 2.0e6 {
		t.Errorf("unexpected targets after round trip: %+v", loaded)
	}
	if loaded.Tolerance != 1e-10 {
		t.Errorf("expected tolerance 1e-10, got %g", loaded.Tolerance)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("water", "steam")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Pair != "TV" {
		t.Errorf("expected pair TV, got %s", cfg.Pair)
	}
	if cfg.X != 500.0 {
		t.Errorf("expected T target 500, got %f", cfg.X)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("water", "nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if cfg := GetPreset("nonexistent", "steam"); cfg != nil {
		t.Error("expected nil for nonexistent substance")
	}
}

func TestListPresets(t *testing.T) {
	if presets := ListPresets("water"); len(presets) == 0 {
		t.Error("expected presets for water")
	}
	if presets := ListPresets("nonexistent"); presets != nil {
		t.Error("expected nil for nonexistent substance")
	}
}
