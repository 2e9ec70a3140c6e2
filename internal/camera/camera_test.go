package camera

import (
	"testing"

	"github.com/Faultbox/heliscene/internal/keys"
	"github.com/Faultbox/heliscene/pkg/math"
)

func near(a, b, eps float32) bool {
	d := a - b
	return d <= eps && d >= -eps
}

func TestApplyHoldIsFrameRateIndependent(t *testing.T) {
	const (
		rate     = 20
		duration = 1.5
	)
	for _, ticks := range []int{1, 3, 60, 144, 1000} {
		var m Motion
		dt := float32(duration) / float32(ticks)
		for range ticks {
			m.Apply([]keys.Key{keys.A}, rate, dt)
		}
		if !near(m.X, rate*duration, 1e-2) {
			t.Errorf("%d ticks: X = %v, want %v", ticks, m.X, rate*duration)
		}
	}
}

func TestApplyBindings(t *testing.T) {
	tests := []struct {
		key  keys.Key
		want Motion
	}{
		{keys.A, Motion{X: 2}},
		{keys.D, Motion{X: -2}},
		{keys.S, Motion{Y: 2}},
		{keys.W, Motion{Y: -2}},
		{keys.Space, Motion{Z: 2}},
		{keys.LShift, Motion{Z: -2}},
		{keys.Left, Motion{Yaw: 2}},
		{keys.Right, Motion{Yaw: -2}},
		{keys.Up, Motion{Pitch: 2}},
		{keys.Down, Motion{Pitch: -2}},
		{keys.O, Motion{}},
		{keys.Q, Motion{}},
	}
	for _, tt := range tests {
		t.Run(tt.key.String(), func(t *testing.T) {
			var m Motion
			m.Apply([]keys.Key{tt.key}, 20, 0.1)
			if m != tt.want {
				t.Errorf("Apply(%v) = %+v, want %+v", tt.key, m, tt.want)
			}
		})
	}
}

func TestOpposingKeysCancel(t *testing.T) {
	m := Motion{X: 5}
	m.Apply([]keys.Key{keys.A, keys.D}, 20, 0.5)
	if !near(m.X, 5, 1e-6) {
		t.Errorf("X = %v, want unchanged 5", m.X)
	}
}

func TestLook(t *testing.T) {
	var m Motion
	m.Look(10, -4, 0.1)
	if !near(m.Yaw, 1, 1e-6) || !near(m.Pitch, -0.4, 1e-6) {
		t.Errorf("Look() = %+v", m)
	}
}

func TestViewOrder(t *testing.T) {
	m := Motion{X: 1, Y: 2, Z: 3, Yaw: 30, Pitch: -15}
	want := math.Translate(1, 2, 3).
		Mul(math.RotateX(math.Radians(-15))).
		Mul(math.RotateY(math.Radians(30)))

	if !m.View().ApproxEqual(want, 1e-5) {
		t.Errorf("View() = %v, want %v", m.View(), want)
	}
}

func TestViewProjectionAtRest(t *testing.T) {
	lens := DefaultLens()
	vp := ViewProjection(Motion{}, lens, 4.0/3.0)
	want := math.Perspective(lens.FovY, 4.0/3.0, 1, 1000).Mul(math.Translate(0, 0, -2))

	if !vp.ApproxEqual(want, 1e-5) {
		t.Errorf("ViewProjection at rest = %v, want %v", vp, want)
	}

	// A point straight ahead projects to the screen centre.
	p := vp.TransformVec3(math.Vec3{Z: -10})
	if !near(p.X, 0, 1e-5) || !near(p.Y, 0, 1e-5) {
		t.Errorf("forward point projected to %v, want centre", p)
	}
}
