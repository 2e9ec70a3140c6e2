// Package camera provides the key-driven free camera.
package camera

import (
	"github.com/Faultbox/heliscene/internal/keys"
	"github.com/Faultbox/heliscene/pkg/math"
)

// Motion holds the camera accumulators. They persist across frames and are
// only ever nudged by held keys (and optionally the mouse).
type Motion struct {
	X, Y, Z float32 // translation
	Yaw     float32 // degrees
	Pitch   float32 // degrees
}

// Apply advances the accumulators for every held directional key by
// rate*dt. Keys without a motion binding are ignored.
func (m *Motion) Apply(held []keys.Key, rate, dt float32) {
	for _, k := range held {
		b, ok := keys.Motion[k]
		if !ok {
			continue
		}
		m.nudge(b.Axis, b.Sign*rate*dt)
	}
}

// Look turns the camera by a mouse delta scaled by sensitivity (degrees per unit).
func (m *Motion) Look(dx, dy, sensitivity float32) {
	m.Yaw += dx * sensitivity
	m.Pitch += dy * sensitivity
}

func (m *Motion) nudge(axis keys.Axis, v float32) {
	switch axis {
	case keys.AxisX:
		m.X += v
	case keys.AxisY:
		m.Y += v
	case keys.AxisZ:
		m.Z += v
	case keys.AxisYaw:
		m.Yaw += v
	case keys.AxisPitch:
		m.Pitch += v
	}
}

// View returns T(x,y,z) * Rx(pitch) * Ry(yaw): yaw first, then pitch,
// then translation.
func (m Motion) View() math.Mat4 {
	v := math.RotateY(math.Radians(m.Yaw))
	v = math.RotateX(math.Radians(m.Pitch)).Mul(v)
	v = math.Translate(m.X, m.Y, m.Z).Mul(v)
	return v
}

// Lens describes the projection.
type Lens struct {
	FovY      float32 // radians
	Near, Far float32
	Back      float32 // fixed pull-back along -Z applied before the view
}

// DefaultLens is a 60 degree lens pulled back two units.
func DefaultLens() Lens {
	return Lens{
		FovY: math.Radians(60),
		Near: 1,
		Far:  1000,
		Back: 2,
	}
}

// ViewProjection combines the lens, the motion and the pull-back.
func ViewProjection(m Motion, lens Lens, aspect float32) math.Mat4 {
	proj := math.Perspective(lens.FovY, aspect, lens.Near, lens.Far)
	return proj.Mul(m.View()).Mul(math.Translate(0, 0, -lens.Back))
}
