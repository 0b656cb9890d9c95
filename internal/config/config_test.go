package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config fixture: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
display:
  screen_width: 800
  screen_height: 450
  window_title: "test"
world:
  map_file: "maps/test.map"
movement:
  move_speed: 3.5
  rotation_speed: 2.0
  player_radius: 0.25
camera:
  field_of_view: 1.2
graphics:
  column_width: 1
  side_shade: 0.6
  fog_start: 5.0
  fog_end: 12.0
  floor_color: [10, 20, 30]
textures:
  size: 32
  dir: "assets"
  sky: "sky.png"
  walls:
    1: "brick.png"
    2: "stone.png"
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.GetScreenWidth() != 800 || cfg.GetScreenHeight() != 450 {
		t.Errorf("Expected 800x450, got %dx%d", cfg.GetScreenWidth(), cfg.GetScreenHeight())
	}
	if cfg.World.MapFile != "maps/test.map" {
		t.Errorf("Unexpected map file %q", cfg.World.MapFile)
	}
	if cfg.GetMoveSpeed() != 3.5 || cfg.GetRotSpeed() != 2.0 {
		t.Errorf("Unexpected movement speeds %v/%v", cfg.GetMoveSpeed(), cfg.GetRotSpeed())
	}
	if cfg.GetCameraFOV() != 1.2 {
		t.Errorf("Unexpected FOV %v", cfg.GetCameraFOV())
	}
	if cfg.Graphics.FogStart != 5.0 || cfg.Graphics.FogEnd != 12.0 {
		t.Errorf("Unexpected fog range %v..%v", cfg.Graphics.FogStart, cfg.Graphics.FogEnd)
	}
	if cfg.Graphics.FloorColor != [3]int{10, 20, 30} {
		t.Errorf("Unexpected floor color %v", cfg.Graphics.FloorColor)
	}
	if cfg.Textures.Walls[2] != "stone.png" {
		t.Errorf("Unexpected wall manifest %v", cfg.Textures.Walls)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfig(t, "display:\n  window_title: \"minimal\"\n")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.GetScreenWidth() != 1024 || cfg.GetScreenHeight() != 576 {
		t.Errorf("Expected default 1024x576, got %dx%d", cfg.GetScreenWidth(), cfg.GetScreenHeight())
	}
	if cfg.GetMoveSpeed() != 4.0 {
		t.Errorf("Expected default move speed 4.0, got %v", cfg.GetMoveSpeed())
	}
	if cfg.GetRotSpeed() != 2.5 {
		t.Errorf("Expected default rotation speed 2.5, got %v", cfg.GetRotSpeed())
	}
	if cfg.Movement.PlayerRadius != 0.2 {
		t.Errorf("Expected default radius 0.2, got %v", cfg.Movement.PlayerRadius)
	}
	if cfg.GetCameraFOV() != math.Pi/3 {
		t.Errorf("Expected default FOV pi/3, got %v", cfg.GetCameraFOV())
	}
	if cfg.Graphics.ColumnWidth != 2 {
		t.Errorf("Expected default column width 2, got %d", cfg.Graphics.ColumnWidth)
	}
	if cfg.Graphics.SideShade != 0.7 {
		t.Errorf("Expected default side shade 0.7, got %v", cfg.Graphics.SideShade)
	}
	if cfg.Graphics.SkyPanFactor != 4.0 {
		t.Errorf("Expected default pan factor 4.0, got %v", cfg.Graphics.SkyPanFactor)
	}
	if cfg.Textures.Size != 64 {
		t.Errorf("Expected default texture size 64, got %d", cfg.Textures.Size)
	}
	// Fog stays disabled unless configured.
	if cfg.Graphics.FogStart != 0 || cfg.Graphics.FogEnd != 0 {
		t.Errorf("Fog should default to disabled, got %v..%v",
			cfg.Graphics.FogStart, cfg.Graphics.FogEnd)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	t.Run("Missing file", func(t *testing.T) {
		if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
			t.Error("Expected error for missing config file")
		}
	})

	t.Run("Invalid yaml", func(t *testing.T) {
		path := writeConfig(t, "display: [unclosed")
		if _, err := LoadConfig(path); err == nil {
			t.Error("Expected error for malformed yaml")
		}
	})
}

func TestMustLoadConfigPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustLoadConfig should panic on a missing file")
		}
	}()
	MustLoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
}
