// Package mesh builds the procedural geometry for the scene: a rolling
// terrain and the parts of a helicopter.
package mesh

// Vertex is one interleaved vertex as uploaded to the GPU.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	Color    [4]float32
}

// Mesh holds vertices and triangle indices ready for upload.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
	Bounds   Bounds
}

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// IndexCount returns the number of indices as the GL draw call expects it.
func (m *Mesh) IndexCount() int32 {
	return int32(len(m.Indices))
}

// Append adds other's triangles to m.
func (m *Mesh) Append(other *Mesh) {
	base := uint32(len(m.Vertices))
	for _, v := range other.Vertices {
		m.Vertices = append(m.Vertices, v)
		updateBounds(&m.Bounds, v.Position, len(m.Vertices) == 1)
	}
	for _, i := range other.Indices {
		m.Indices = append(m.Indices, base+i)
	}
}

// Merge concatenates meshes into one.
func Merge(parts ...*Mesh) *Mesh {
	out := &Mesh{}
	for _, p := range parts {
		out.Append(p)
	}
	return out
}

func updateBounds(b *Bounds, p [3]float32, first bool) {
	if first {
		b.Min, b.Max = p, p
		return
	}
	for i := range 3 {
		b.Min[i] = min(b.Min[i], p[i])
		b.Max[i] = max(b.Max[i], p[i])
	}
}
