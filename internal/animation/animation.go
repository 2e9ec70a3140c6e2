// Package animation drives the helicopter actors every frame.
package animation

import (
	"fmt"

	"github.com/Faultbox/heliscene/internal/scene"
	"github.com/Faultbox/heliscene/internal/trajectory"
	"github.com/Faultbox/heliscene/pkg/math"
)

// Child slots of a helicopter root.
const (
	SlotBody      = 0
	SlotMainRotor = 1
	SlotTailRotor = 2
	SlotDoor      = 0 // child of the body
)

// DoorState is the two-valued door state. There is no in-between.
type DoorState int

const (
	DoorClosed DoorState = iota
	DoorOpen
)

func (d DoorState) String() string {
	if d == DoorOpen {
		return "open"
	}
	return "closed"
}

// Actor is one animated helicopter.
type Actor struct {
	Root  *scene.Node
	Index int
}

// Config tunes the driver.
type Config struct {
	SpeedFactor float32   // scales time fed to the trajectory
	Spacing     float32   // X offset between consecutive actors
	RotorRate   float32   // radians per second
	DoorOffset  math.Vec3 // door position when open
}

// DefaultConfig matches the stock scene.
func DefaultConfig() Config {
	return Config{
		SpeedFactor: 0.5,
		Spacing:     30,
		RotorRate:   math.Radians(720),
		DoorOffset:  math.Vec3{X: 0.1, Z: 1.0},
	}
}

// Driver updates actor transforms from time and door state.
type Driver struct {
	cfg    Config
	path   trajectory.Func
	actors []Actor
	door   DoorState
}

// NewDriver creates a driver for actors following path.
func NewDriver(cfg Config, path trajectory.Func, actors []Actor) *Driver {
	return &Driver{cfg: cfg, path: path, actors: actors}
}

// Actors returns the driven actors.
func (d *Driver) Actors() []Actor {
	return d.actors
}

// SetDoor switches every door to s. The next Update applies it.
func (d *Driver) SetDoor(s DoorState) {
	d.door = s
}

// Door returns the current door state.
func (d *Driver) Door() DoorState {
	return d.door
}

// DoorOffset returns the door position for the current state.
func (d *Driver) DoorOffset() math.Vec3 {
	if d.door == DoorOpen {
		return d.cfg.DoorOffset
	}
	return math.Vec3{}
}

// Update poses every actor for the frame. Time is sampled at elapsed-dt,
// one frame behind the wall clock.
func (d *Driver) Update(elapsed, dt float32) error {
	t := elapsed - dt
	h := d.path(t * d.cfg.SpeedFactor)
	spin := t * d.cfg.RotorRate
	door := d.DoorOffset()

	for _, a := range d.actors {
		a.Root.Position = math.Vec3{X: float32(a.Index)*d.cfg.Spacing + h.X, Z: h.Z}
		a.Root.Rotation = math.Vec3{X: h.Pitch, Y: h.Yaw, Z: h.Roll}

		mainRotor, err := a.Root.ChildAt(SlotMainRotor)
		if err != nil {
			return fmt.Errorf("actor %d main rotor: %w", a.Index, err)
		}
		mainRotor.Rotation = math.Vec3{Y: spin}

		tailRotor, err := a.Root.ChildAt(SlotTailRotor)
		if err != nil {
			return fmt.Errorf("actor %d tail rotor: %w", a.Index, err)
		}
		tailRotor.Rotation = math.Vec3{X: spin}

		body, err := a.Root.ChildAt(SlotBody)
		if err != nil {
			return fmt.Errorf("actor %d body: %w", a.Index, err)
		}
		doorNode, err := body.ChildAt(SlotDoor)
		if err != nil {
			return fmt.Errorf("actor %d door: %w", a.Index, err)
		}
		doorNode.Position = door
	}
	return nil
}
