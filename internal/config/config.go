// Package config handles viewer configuration loading and management.
package config

import (
	"errors"
	"fmt"
)

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Scene    SceneConfig    `yaml:"scene"`
	Controls ControlsConfig `yaml:"controls"`
	Lighting LightingConfig `yaml:"lighting"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and projection settings.
type GraphicsConfig struct {
	Width      int        `yaml:"width"`
	Height     int        `yaml:"height"`
	Fullscreen bool       `yaml:"fullscreen"`
	VSync      bool       `yaml:"vsync"`
	FOVDegrees float32    `yaml:"fov_degrees"`
	Near       float32    `yaml:"near"`
	Far        float32    `yaml:"far"`
	ClearColor [4]float32 `yaml:"clear_color"`
}

// SceneConfig holds the scene layout and animation settings.
type SceneConfig struct {
	ActorCount        int     `yaml:"actor_count"`
	ActorSpacing      float32 `yaml:"actor_spacing"`
	SpeedFactor       float32 `yaml:"speed_factor"`
	RotorRateDegrees  float32 `yaml:"rotor_rate_degrees"`
	DoorOpenX         float32 `yaml:"door_open_x"`
	DoorOpenZ         float32 `yaml:"door_open_z"`
	TerrainSize       float32 `yaml:"terrain_size"`
	TerrainResolution int     `yaml:"terrain_resolution"`
	TerrainAmplitude  float32 `yaml:"terrain_amplitude"`
}

// ControlsConfig holds camera control tuning. Key bindings are fixed.
type ControlsConfig struct {
	MoveRate         float32 `yaml:"move_rate"`
	MouseLook        bool    `yaml:"mouse_look"`
	MouseSensitivity float32 `yaml:"mouse_sensitivity"`
}

// LightingConfig holds the sun settings.
type LightingConfig struct {
	SunAzimuth   float32 `yaml:"sun_azimuth"`
	SunElevation float32 `yaml:"sun_elevation"`
	Ambient      float32 `yaml:"ambient"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      800,
			Height:     600,
			Fullscreen: false,
			VSync:      true,
			FOVDegrees: 60,
			Near:       1,
			Far:        1000,
			ClearColor: [4]float32{0.035, 0.046, 0.078, 1.0}, // night sky
		},
		Scene: SceneConfig{
			ActorCount:        5,
			ActorSpacing:      30,
			SpeedFactor:       0.5,
			RotorRateDegrees:  720,
			DoorOpenX:         0.1,
			DoorOpenZ:         1.0,
			TerrainSize:       240,
			TerrainResolution: 96,
			TerrainAmplitude:  4,
		},
		Controls: ControlsConfig{
			MoveRate:         20,
			MouseLook:        false,
			MouseSensitivity: 0.1,
		},
		Lighting: LightingConfig{
			SunAzimuth:   45,
			SunElevation: 35,
			Ambient:      0.25,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate reports settings the viewer cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		errs = append(errs, fmt.Errorf("graphics: window size %dx%d must be positive", c.Graphics.Width, c.Graphics.Height))
	}
	if c.Graphics.FOVDegrees <= 0 || c.Graphics.FOVDegrees >= 180 {
		errs = append(errs, fmt.Errorf("graphics: fov_degrees %v must be in (0, 180)", c.Graphics.FOVDegrees))
	}
	if c.Graphics.Near <= 0 || c.Graphics.Far <= c.Graphics.Near {
		errs = append(errs, fmt.Errorf("graphics: need 0 < near (%v) < far (%v)", c.Graphics.Near, c.Graphics.Far))
	}
	if c.Scene.ActorCount < 0 {
		errs = append(errs, fmt.Errorf("scene: actor_count %d must not be negative", c.Scene.ActorCount))
	}
	if c.Scene.TerrainResolution <= 0 || c.Scene.TerrainSize <= 0 {
		errs = append(errs, errors.New("scene: terrain size and resolution must be positive"))
	}
	return errors.Join(errs...)
}
