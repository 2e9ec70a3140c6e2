package trajectory

import (
	"math"
	"testing"
)

func TestCircuitDeterministic(t *testing.T) {
	for _, tt := range []float32{0, 0.5, 3.25, 120} {
		if Circuit(tt) != Circuit(tt) {
			t.Errorf("Circuit(%v) is not deterministic", tt)
		}
	}
}

func TestCircuitStart(t *testing.T) {
	h := Circuit(0)
	if math.Abs(float64(h.X)) > 1e-6 {
		t.Errorf("X(0) = %v, want 0", h.X)
	}
	if math.Abs(float64(h.Z-45)) > 1e-4 {
		t.Errorf("Z(0) = %v, want 45", h.Z)
	}
	if math.Abs(float64(h.Roll-0.5)) > 1e-6 {
		t.Errorf("Roll(0) = %v, want 0.5", h.Roll)
	}
	if h.Pitch >= 0 {
		t.Errorf("Pitch(0) = %v, want nose down while moving", h.Pitch)
	}
}

func TestCircuitContinuous(t *testing.T) {
	const step = 1e-3
	for i := 0; i < 10000; i++ {
		t0 := float32(i) * step
		a, b := Circuit(t0), Circuit(t0+step)
		if d := math.Hypot(float64(a.X-b.X), float64(a.Z-b.Z)); d > 0.2 {
			t.Fatalf("position jumped by %v between %v and %v", d, t0, t0+step)
		}
	}
}

func TestCircuitStaysOnPath(t *testing.T) {
	for i := 0; i < 500; i++ {
		h := Circuit(float32(i) * 0.1)
		if math.Abs(float64(h.X)) > pathSize+1e-3 || math.Abs(float64(h.Z)) > 3*pathSize+1e-3 {
			t.Fatalf("Circuit left the track at t=%v: %+v", float32(i)*0.1, h)
		}
	}
}
