package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all engine configuration values
type Config struct {
	Display  DisplayConfig  `yaml:"display"`
	World    WorldConfig    `yaml:"world"`
	Movement MovementConfig `yaml:"movement"`
	Camera   CameraConfig   `yaml:"camera"`
	Graphics GraphicsConfig `yaml:"graphics"`
	Textures TextureConfig  `yaml:"textures"`
}

type DisplayConfig struct {
	ScreenWidth  int    `yaml:"screen_width"`
	ScreenHeight int    `yaml:"screen_height"`
	WindowTitle  string `yaml:"window_title"`
	Resizable    bool   `yaml:"resizable"`
}

type WorldConfig struct {
	MapFile string `yaml:"map_file"`
}

type MovementConfig struct {
	MoveSpeed     float64 `yaml:"move_speed"`     // cells per second
	RotationSpeed float64 `yaml:"rotation_speed"` // radians per second
	PlayerRadius  float64 `yaml:"player_radius"`  // clearance margin in cells
}

type CameraConfig struct {
	FieldOfView float64 `yaml:"field_of_view"` // radians
}

type GraphicsConfig struct {
	ColumnWidth  int     `yaml:"column_width"`   // screen pixels covered by one ray
	SideShade    float64 `yaml:"side_shade"`     // darkening factor for horizontal-edge hits
	SkyPanFactor float64 `yaml:"sky_pan_factor"` // skybox wraps this many times per full turn
	FogStart     float64 `yaml:"fog_start"`      // distance where fog begins, in cells
	FogEnd       float64 `yaml:"fog_end"`        // distance of full fog; 0 disables fog
	FloorColor   [3]int  `yaml:"floor_color"`
}

type TextureConfig struct {
	Size  int            `yaml:"size"` // wall textures are resampled to Size x Size
	Dir   string         `yaml:"dir"`
	Sky   string         `yaml:"sky"`   // sky panorama file; empty selects the generated sky
	Walls map[int]string `yaml:"walls"` // wall id -> file; missing ids use generated bricks
}

// LoadConfig loads the configuration from a yaml file and applies defaults
// for values the file leaves unset.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", filename, err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", filename, err)
	}

	config.applyDefaults()
	return &config, nil
}

// MustLoadConfig loads the configuration and panics on error
func MustLoadConfig(filename string) *Config {
	config, err := LoadConfig(filename)
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}
	return config
}

func (c *Config) applyDefaults() {
	if c.Display.ScreenWidth <= 0 {
		c.Display.ScreenWidth = 1024
	}
	if c.Display.ScreenHeight <= 0 {
		c.Display.ScreenHeight = 576
	}
	if c.Display.WindowTitle == "" {
		c.Display.WindowTitle = "gloom"
	}
	if c.World.MapFile == "" {
		c.World.MapFile = "assets/level.map"
	}
	if c.Movement.MoveSpeed <= 0 {
		c.Movement.MoveSpeed = 4.0
	}
	if c.Movement.RotationSpeed <= 0 {
		c.Movement.RotationSpeed = 2.5
	}
	if c.Movement.PlayerRadius <= 0 {
		c.Movement.PlayerRadius = 0.2
	}
	if c.Camera.FieldOfView <= 0 {
		c.Camera.FieldOfView = math.Pi / 3
	}
	if c.Graphics.ColumnWidth <= 0 {
		c.Graphics.ColumnWidth = 2
	}
	if c.Graphics.SideShade <= 0 || c.Graphics.SideShade > 1 {
		c.Graphics.SideShade = 0.7
	}
	if c.Graphics.SkyPanFactor <= 0 {
		c.Graphics.SkyPanFactor = 4.0
	}
	if c.Graphics.FloorColor == [3]int{0, 0, 0} {
		c.Graphics.FloorColor = [3]int{48, 44, 40}
	}
	if c.Textures.Size <= 0 {
		c.Textures.Size = 64
	}
}

// Helper functions for easy access to commonly used values
func (c *Config) GetScreenWidth() int {
	return c.Display.ScreenWidth
}

func (c *Config) GetScreenHeight() int {
	return c.Display.ScreenHeight
}

func (c *Config) GetMoveSpeed() float64 {
	return c.Movement.MoveSpeed
}

func (c *Config) GetRotSpeed() float64 {
	return c.Movement.RotationSpeed
}

func (c *Config) GetCameraFOV() float64 {
	return c.Camera.FieldOfView
}
