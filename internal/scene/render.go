package scene

import "github.com/Faultbox/heliscene/pkg/math"

// DrawCall is one draw submission.
type DrawCall struct {
	MVP      math.Mat4 // viewProjection * Model
	Model    math.Mat4 // world transform, used for lighting
	Drawable Drawable
}

// Submitter receives draw calls in traversal order.
type Submitter interface {
	Submit(DrawCall)
}

// SubmitterFunc adapts a function to Submitter.
type SubmitterFunc func(DrawCall)

// Submit calls f(dc).
func (f SubmitterFunc) Submit(dc DrawCall) { f(dc) }

// Render walks the tree from root and submits every drawable node.
func Render(root *Node, viewProj math.Mat4, sub Submitter) {
	Walk(root, math.Identity(), func(n *Node, world math.Mat4) {
		if n.IsDrawable() {
			sub.Submit(DrawCall{
				MVP:      viewProj.Mul(world),
				Model:    world,
				Drawable: n.Drawable,
			})
		}
	})
}

// Walk visits n and its descendants in pre-order, passing each node's world
// transform. parent is the accumulated transform above n.
func Walk(n *Node, parent math.Mat4, visit func(*Node, math.Mat4)) {
	world := parent.Mul(n.LocalTransform())
	visit(n, world)
	for _, child := range n.children {
		Walk(child, world, visit)
	}
}

// WorldTransform returns the world transform of the node reached by
// following path (child indices) from root.
func WorldTransform(root *Node, path ...int) (math.Mat4, error) {
	world := root.LocalTransform()
	n := root
	for _, i := range path {
		child, err := n.ChildAt(i)
		if err != nil {
			return math.Mat4{}, err
		}
		world = world.Mul(child.LocalTransform())
		n = child
	}
	return world, nil
}

// Stats summarises a traversal.
type Stats struct {
	Nodes     int
	DrawCalls int
	Indices   int64
}

// Count walks the tree and tallies nodes and draw calls.
func Count(root *Node) Stats {
	var s Stats
	Walk(root, math.Identity(), func(n *Node, _ math.Mat4) {
		s.Nodes++
		if n.IsDrawable() {
			s.DrawCalls++
			s.Indices += int64(n.Drawable.IndexCount)
		}
	})
	return s
}
