// Package keys defines the key identifiers shared between the input and
// render tasks, and the reserved bindings the viewer understands.
package keys

// Key identifies a physical key, independent of the windowing backend.
type Key int

const (
	Unknown Key = iota
	W
	A
	S
	D
	Space
	LShift
	Left
	Right
	Up
	Down
	O
	C
	Q
	Escape
)

var names = [...]string{
	Unknown: "Unknown",
	W:       "W",
	A:       "A",
	S:       "S",
	D:       "D",
	Space:   "Space",
	LShift:  "LShift",
	Left:    "Left",
	Right:   "Right",
	Up:      "Up",
	Down:    "Down",
	O:       "O",
	C:       "C",
	Q:       "Q",
	Escape:  "Escape",
}

func (k Key) String() string {
	if k < 0 || int(k) >= len(names) {
		return "Unknown"
	}
	return names[k]
}

// Axis names one of the camera motion accumulators.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
	AxisYaw
	AxisPitch
)

// Binding maps a held key to a signed step on one motion axis.
type Binding struct {
	Axis Axis
	Sign float32
}

// Motion holds the reserved directional bindings. They are not configurable.
var Motion = map[Key]Binding{
	A:      {AxisX, +1},
	D:      {AxisX, -1},
	S:      {AxisY, +1},
	W:      {AxisY, -1},
	Space:  {AxisZ, +1},
	LShift: {AxisZ, -1},
	Left:   {AxisYaw, +1},
	Right:  {AxisYaw, -1},
	Up:     {AxisPitch, +1},
	Down:   {AxisPitch, -1},
}

// DoorOpen and DoorClose are the door command keys.
const (
	DoorOpen  = O
	DoorClose = C
)

// IsQuit reports whether k ends the program.
func IsQuit(k Key) bool {
	return k == Escape || k == Q
}
