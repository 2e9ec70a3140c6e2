// Package lighting provides the directional light used by the renderer.
package lighting

import (
	gomath "math"

	"github.com/Faultbox/heliscene/pkg/math"
)

// Sun is a directional light.
type Sun struct {
	Azimuth   float32 // degrees around Y, 0 = +Z
	Elevation float32 // degrees above the horizon
	Ambient   float32 // ambient term, 0..1
}

// Direction returns the unit vector pointing towards the sun.
func (s Sun) Direction() math.Vec3 {
	az := float64(math.Radians(s.Azimuth))
	el := float64(math.Radians(s.Elevation))

	// Spherical to Cartesian
	return math.Vec3{
		X: float32(gomath.Cos(el) * gomath.Sin(az)),
		Y: float32(gomath.Sin(el)),
		Z: float32(gomath.Cos(el) * gomath.Cos(az)),
	}
}
