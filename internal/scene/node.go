// Package scene implements the scene graph: a tree of nodes with a local
// transform, a pivot and optional geometry, and the traversal that turns it
// into draw calls.
//
// The tree must be acyclic. AddChild rejects the obvious violations, but a
// cycle built some other way makes traversal recurse without bound.
package scene

import (
	"errors"
	"fmt"

	"github.com/Faultbox/heliscene/pkg/math"
)

// ErrIndexOutOfRange is returned when a child lookup is out of bounds.
var ErrIndexOutOfRange = errors.New("child index out of range")

// Drawable references uploaded geometry. IndexCount 0 means "nothing to draw".
type Drawable struct {
	VAO        uint32
	IndexCount int32
}

// Node is a scene graph node. Children are owned by their parent.
type Node struct {
	Position       math.Vec3 // translation, applied after the pivot rotation
	Rotation       math.Vec3 // radians, applied Z, then Y, then X
	ReferencePoint math.Vec3 // pivot the rotation is applied about
	Drawable       Drawable

	children []*Node
	adopted  bool
}

// New returns an empty grouping node.
func New() *Node {
	return &Node{}
}

// NewDrawable returns a node that draws d.
func NewDrawable(d Drawable) *Node {
	return &Node{Drawable: d}
}

// AddChild appends child, transferring ownership to n.
// It panics if child is nil, is n itself, or already has a parent.
func (n *Node) AddChild(child *Node) {
	switch {
	case child == nil:
		panic("scene: AddChild(nil)")
	case child == n:
		panic("scene: node added to itself")
	case child.adopted:
		panic("scene: node already has a parent")
	}
	child.adopted = true
	n.children = append(n.children, child)
}

// ChildAt returns the i-th child for in-place mutation.
func (n *Node) ChildAt(i int) (*Node, error) {
	if i < 0 || i >= len(n.children) {
		return nil, fmt.Errorf("child %d of %d: %w", i, len(n.children), ErrIndexOutOfRange)
	}
	return n.children[i], nil
}

// MustChildAt is like ChildAt but panics on a bad index.
func (n *Node) MustChildAt(i int) *Node {
	c, err := n.ChildAt(i)
	if err != nil {
		panic(err)
	}
	return c
}

// NumChildren returns the number of direct children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// IsDrawable reports whether the node issues a draw call.
func (n *Node) IsDrawable() bool {
	return n.Drawable.IndexCount > 0
}

// LocalTransform returns the node's transform relative to its parent:
//
//	T(position) * T(pivot) * Rx * Ry * Rz * T(-pivot)
func (n *Node) LocalTransform() math.Mat4 {
	m := math.TranslateVec(n.ReferencePoint.Neg())
	m = math.RotateZ(n.Rotation.Z).Mul(m)
	m = math.RotateY(n.Rotation.Y).Mul(m)
	m = math.RotateX(n.Rotation.X).Mul(m)
	m = math.TranslateVec(n.ReferencePoint).Mul(m)
	m = math.TranslateVec(n.Position).Mul(m)
	return m
}
