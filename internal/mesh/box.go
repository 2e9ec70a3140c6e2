package mesh

// Box returns an axis-aligned box with flat-shaded faces wound
// counter-clockwise when seen from outside.
func Box(lo, hi [3]float32, color [4]float32) *Mesh {
	x0, y0, z0 := lo[0], lo[1], lo[2]
	x1, y1, z1 := hi[0], hi[1], hi[2]

	faces := []struct {
		normal  [3]float32
		corners [4][3]float32
	}{
		{[3]float32{1, 0, 0}, [4][3]float32{{x1, y0, z1}, {x1, y0, z0}, {x1, y1, z0}, {x1, y1, z1}}},
		{[3]float32{-1, 0, 0}, [4][3]float32{{x0, y0, z0}, {x0, y0, z1}, {x0, y1, z1}, {x0, y1, z0}}},
		{[3]float32{0, 1, 0}, [4][3]float32{{x0, y1, z1}, {x1, y1, z1}, {x1, y1, z0}, {x0, y1, z0}}},
		{[3]float32{0, -1, 0}, [4][3]float32{{x0, y0, z0}, {x1, y0, z0}, {x1, y0, z1}, {x0, y0, z1}}},
		{[3]float32{0, 0, 1}, [4][3]float32{{x0, y0, z1}, {x1, y0, z1}, {x1, y1, z1}, {x0, y1, z1}}},
		{[3]float32{0, 0, -1}, [4][3]float32{{x1, y0, z0}, {x0, y0, z0}, {x0, y1, z0}, {x1, y1, z0}}},
	}

	m := &Mesh{
		Vertices: make([]Vertex, 0, 24),
		Indices:  make([]uint32, 0, 36),
		Bounds:   Bounds{Min: lo, Max: hi},
	}
	for _, f := range faces {
		base := uint32(len(m.Vertices))
		for _, c := range f.corners {
			m.Vertices = append(m.Vertices, Vertex{Position: c, Normal: f.normal, Color: color})
		}
		m.Indices = append(m.Indices, base, base+1, base+2, base, base+2, base+3)
	}
	return m
}
