// Package trajectory provides the flight path the helicopters follow.
package trajectory

import "math"

// Heading is a sample of the flight path: ground position plus attitude
// angles in radians.
type Heading struct {
	X, Z  float32
	Pitch float32
	Yaw   float32
	Roll  float32
}

// Func maps elapsed time to a heading. Implementations must be pure,
// continuous and deterministic in t.
type Func func(t float32) Heading

const (
	pathSize     = 15.0
	circuitSpeed = 0.8
	lookahead    = 0.05
)

// Circuit is the default figure-eight flight path.
func Circuit(t float32) Heading {
	tt := float64(t)

	x := pathSize * math.Sin(2*tt*circuitSpeed)
	xNext := pathSize * math.Sin(2*(tt+lookahead)*circuitSpeed)
	z := 3 * pathSize * math.Cos(tt*circuitSpeed)
	zNext := 3 * pathSize * math.Cos((tt+lookahead)*circuitSpeed)

	dx, dz := xNext-x, zNext-z

	return Heading{
		X:     float32(x),
		Z:     float32(z),
		Pitch: float32(-0.175 * math.Hypot(dx, dz)),
		Yaw:   float32(math.Pi + math.Atan2(dx, dz)),
		Roll:  float32(math.Cos(tt*circuitSpeed) * 0.5),
	}
}
