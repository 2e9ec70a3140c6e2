package app

import (
	"github.com/Faultbox/heliscene/internal/animation"
	"github.com/Faultbox/heliscene/internal/camera"
	"github.com/Faultbox/heliscene/internal/config"
	"github.com/Faultbox/heliscene/internal/lighting"
	"github.com/Faultbox/heliscene/internal/mesh"
	"github.com/Faultbox/heliscene/internal/renderer"
	"github.com/Faultbox/heliscene/pkg/math"
)

// Pull-back applied behind the camera accumulators.
const cameraBack = 2

func loopConfig(cfg *config.Config) LoopConfig {
	return LoopConfig{
		Lens: camera.Lens{
			FovY: math.Radians(cfg.Graphics.FOVDegrees),
			Near: cfg.Graphics.Near,
			Far:  cfg.Graphics.Far,
			Back: cameraBack,
		},
		MoveRate:         cfg.Controls.MoveRate,
		MouseLook:        cfg.Controls.MouseLook,
		MouseSensitivity: cfg.Controls.MouseSensitivity,
	}
}

func driverConfig(sc config.SceneConfig) animation.Config {
	return animation.Config{
		SpeedFactor: sc.SpeedFactor,
		Spacing:     sc.ActorSpacing,
		RotorRate:   math.Radians(sc.RotorRateDegrees),
		DoorOffset:  math.Vec3{X: sc.DoorOpenX, Z: sc.DoorOpenZ},
	}
}

func terrainOptions(sc config.SceneConfig) mesh.TerrainOptions {
	o := mesh.DefaultTerrainOptions()
	o.Size = sc.TerrainSize
	o.Resolution = sc.TerrainResolution
	o.Amplitude = sc.TerrainAmplitude
	return o
}

func rendererConfig(cfg *config.Config) renderer.Config {
	return renderer.Config{
		ClearColor: cfg.Graphics.ClearColor,
		Sun: lighting.Sun{
			Azimuth:   cfg.Lighting.SunAzimuth,
			Elevation: cfg.Lighting.SunElevation,
			Ambient:   cfg.Lighting.Ambient,
		},
	}
}
