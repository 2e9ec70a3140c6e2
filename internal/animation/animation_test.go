package animation

import (
	"errors"
	"testing"

	"github.com/Faultbox/heliscene/internal/scene"
	"github.com/Faultbox/heliscene/internal/trajectory"
	"github.com/Faultbox/heliscene/pkg/math"
)

var testParts = Parts{
	Body:      scene.Drawable{VAO: 1, IndexCount: 36},
	Door:      scene.Drawable{VAO: 2, IndexCount: 36},
	MainRotor: scene.Drawable{VAO: 3, IndexCount: 72},
	TailRotor: scene.Drawable{VAO: 4, IndexCount: 36},
}

func newDriver(t *testing.T, path trajectory.Func, count int) (*Driver, *scene.Node) {
	t.Helper()
	terrain := scene.New()
	actors := Populate(terrain, testParts, count)
	return NewDriver(DefaultConfig(), path, actors), terrain
}

// hover keeps every actor on a fixed heading.
func hover(h trajectory.Heading) trajectory.Func {
	return func(float32) trajectory.Heading { return h }
}

func door(a Actor) *scene.Node {
	return a.Root.MustChildAt(SlotBody).MustChildAt(SlotDoor)
}

func TestNewHelicopterLayout(t *testing.T) {
	root := NewHelicopter(testParts)

	if root.IsDrawable() {
		t.Error("helicopter root should be a grouping node")
	}
	if root.NumChildren() != 3 {
		t.Fatalf("root has %d children, want 3", root.NumChildren())
	}
	body := root.MustChildAt(SlotBody)
	if body.Drawable.VAO != 1 || body.ReferencePoint != BodyPivot {
		t.Errorf("body = %+v", body)
	}
	if d := body.MustChildAt(SlotDoor); d.Drawable.VAO != 2 {
		t.Errorf("door VAO = %d, want 2", d.Drawable.VAO)
	}
	if r := root.MustChildAt(SlotMainRotor); r.Drawable.VAO != 3 {
		t.Errorf("main rotor VAO = %d, want 3", r.Drawable.VAO)
	}
	tail := root.MustChildAt(SlotTailRotor)
	if tail.Drawable.VAO != 4 || tail.ReferencePoint != TailRotorPivot {
		t.Errorf("tail rotor = %+v", tail)
	}
}

func TestPopulate(t *testing.T) {
	_, terrain := newDriver(t, trajectory.Circuit, 5)
	if terrain.NumChildren() != 5 {
		t.Fatalf("terrain has %d helicopters, want 5", terrain.NumChildren())
	}
	if got := scene.Count(terrain).DrawCalls; got != 20 {
		t.Errorf("draw calls = %d, want 20", got)
	}
}

func TestUpdateSamplesOneFrameBehind(t *testing.T) {
	var sampled []float32
	path := func(tt float32) trajectory.Heading {
		sampled = append(sampled, tt)
		return trajectory.Heading{}
	}
	d, _ := newDriver(t, path, 1)

	if err := d.Update(2.0, 0.25); err != nil {
		t.Fatalf("Update: %v", err)
	}
	// (elapsed - dt) * speedFactor
	if len(sampled) != 1 || sampled[0] != (2.0-0.25)*0.5 {
		t.Errorf("trajectory sampled at %v, want [%v]", sampled, (2.0-0.25)*0.5)
	}
}

func TestUpdatePosesActors(t *testing.T) {
	h := trajectory.Heading{X: 3, Z: -4, Pitch: 0.1, Yaw: 0.2, Roll: 0.3}
	d, _ := newDriver(t, hover(h), 3)

	if err := d.Update(1, 0.016); err != nil {
		t.Fatalf("Update: %v", err)
	}
	for _, a := range d.Actors() {
		want := math.Vec3{X: float32(a.Index)*30 + 3, Z: -4}
		if a.Root.Position != want {
			t.Errorf("actor %d at %v, want %v", a.Index, a.Root.Position, want)
		}
		if a.Root.Rotation != (math.Vec3{X: 0.1, Y: 0.2, Z: 0.3}) {
			t.Errorf("actor %d rotation = %v", a.Index, a.Root.Rotation)
		}
	}
}

func TestUpdateSpinsRotors(t *testing.T) {
	d, _ := newDriver(t, hover(trajectory.Heading{}), 1)
	const elapsed, dt = 1.5, 0.5

	if err := d.Update(elapsed, dt); err != nil {
		t.Fatalf("Update: %v", err)
	}
	spin := float32(elapsed-dt) * math.Radians(720)
	root := d.Actors()[0].Root

	if got := root.MustChildAt(SlotMainRotor).Rotation; got != (math.Vec3{Y: spin}) {
		t.Errorf("main rotor rotation = %v, want Y=%v", got, spin)
	}
	if got := root.MustChildAt(SlotTailRotor).Rotation; got != (math.Vec3{X: spin}) {
		t.Errorf("tail rotor rotation = %v, want X=%v", got, spin)
	}
}

func TestDoorIsDiscrete(t *testing.T) {
	d, _ := newDriver(t, trajectory.Circuit, 2)
	open := math.Vec3{X: 0.1, Z: 1.0}

	steps := []struct {
		state DoorState
		want  math.Vec3
	}{
		{DoorClosed, math.Vec3{}},
		{DoorOpen, open},
		{DoorOpen, open},
		{DoorClosed, math.Vec3{}},
		{DoorOpen, open},
	}

	elapsed := float32(0)
	for i, s := range steps {
		d.SetDoor(s.state)
		elapsed += 0.016
		if err := d.Update(elapsed, 0.016); err != nil {
			t.Fatalf("Update: %v", err)
		}
		for _, a := range d.Actors() {
			if got := door(a).Position; got != s.want {
				t.Errorf("step %d actor %d: door at %v, want exactly %v", i, a.Index, got, s.want)
			}
		}
	}
}

func TestDoorStateString(t *testing.T) {
	if DoorOpen.String() != "open" || DoorClosed.String() != "closed" {
		t.Error("unexpected DoorState names")
	}
}

func TestUpdateReportsMissingChild(t *testing.T) {
	broken := scene.New()
	broken.AddChild(scene.New()) // body without door, no rotors
	d := NewDriver(DefaultConfig(), trajectory.Circuit, []Actor{{Root: broken}})

	err := d.Update(1, 0.1)
	if !errors.Is(err, scene.ErrIndexOutOfRange) {
		t.Errorf("Update err = %v, want ErrIndexOutOfRange", err)
	}
}
