package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"wormy/game/types"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Screen.Width != 800 || cfg.Screen.Height != 600 {
		t.Errorf("expected 800x600, got %dx%d", cfg.Screen.Width, cfg.Screen.Height)
	}
	if cfg.Screen.TargetFPS != 15 {
		t.Errorf("expected 15 fps, got %d", cfg.Screen.TargetFPS)
	}
	if cfg.Grid.CellSize != 20 {
		t.Errorf("expected cell size 20, got %d", cfg.Grid.CellSize)
	}
	if cfg.Worm.InitialLength != 5 || cfg.Worm.GrowthPerApple != 2 {
		t.Errorf("unexpected worm config %+v", cfg.Worm)
	}
	apple := cfg.AppleSettings()
	if apple.DefaultPointValue != 1000 || apple.DecayNumerator != 995 || apple.DecayDenominator != 1000 {
		t.Errorf("unexpected apple config %+v", apple)
	}

	grid, err := cfg.GridGeometry()
	if err != nil {
		t.Fatalf("GridGeometry: %v", err)
	}
	if grid.Width != 40 || grid.Height != 30 {
		t.Errorf("expected 40x30 grid, got %dx%d", grid.Width, grid.Height)
	}
}

func TestLoadOverlay(t *testing.T) {
	path := writeConfig(t, "screen:\n  target_fps: 30\nworm:\n  initial_length: 3\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Screen.TargetFPS != 30 || cfg.Worm.InitialLength != 3 {
		t.Errorf("overlay not applied: %+v %+v", cfg.Screen, cfg.Worm)
	}
	if cfg.Screen.Width != 800 || cfg.Worm.GrowthPerApple != 2 {
		t.Errorf("defaults lost: %+v %+v", cfg.Screen, cfg.Worm)
	}
}

func TestLoadUnevenCellSize(t *testing.T) {
	path := writeConfig(t, "grid:\n  cell_size: 30\n")

	_, err := Load(path)
	if !errors.Is(err, types.ErrUnevenCellSize) {
		t.Errorf("expected ErrUnevenCellSize, got %v", err)
	}
}

func TestLoadInvalid(t *testing.T) {
	testCases := []struct {
		name string
		body string
	}{
		{"zero fps", "screen:\n  target_fps: 0\n"},
		{"zero length", "worm:\n  initial_length: 0\n"},
		{"negative growth", "worm:\n  growth_per_apple: -1\n"},
		{"zero denominator", "apple:\n  decay_denominator: 0\n"},
		{"growing apple", "apple:\n  decay_numerator: 1001\n"},
		{"bad yaml", "screen: [\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tc.body)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
