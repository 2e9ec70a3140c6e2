package animation

import (
	"github.com/Faultbox/heliscene/internal/scene"
	"github.com/Faultbox/heliscene/pkg/math"
)

// Pivots of the helicopter parts, in model space.
var (
	BodyPivot      = math.Vec3{Y: 2.3}
	TailRotorPivot = math.Vec3{X: 0.35, Y: 2.3, Z: 10.4}
)

// Parts are the uploaded helicopter pieces.
type Parts struct {
	Body, Door, MainRotor, TailRotor scene.Drawable
}

// NewHelicopter assembles one helicopter subtree:
//
//	root
//	├── body
//	│   └── door
//	├── main rotor
//	└── tail rotor
func NewHelicopter(p Parts) *scene.Node {
	root := scene.New()

	body := scene.NewDrawable(p.Body)
	body.ReferencePoint = BodyPivot
	body.AddChild(scene.NewDrawable(p.Door))

	tail := scene.NewDrawable(p.TailRotor)
	tail.ReferencePoint = TailRotorPivot

	root.AddChild(body)
	root.AddChild(scene.NewDrawable(p.MainRotor))
	root.AddChild(tail)
	return root
}

// Populate builds count helicopters under parent and returns them as actors.
func Populate(parent *scene.Node, p Parts, count int) []Actor {
	actors := make([]Actor, 0, count)
	for n := range count {
		root := NewHelicopter(p)
		parent.AddChild(root)
		actors = append(actors, Actor{Root: root, Index: n})
	}
	return actors
}
