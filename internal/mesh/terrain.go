package mesh

import gomath "math"

// TerrainOptions shapes the generated terrain.
type TerrainOptions struct {
	Size       float32    // edge length of the square patch
	Resolution int        // quads per edge
	Amplitude  float32    // hill height
	Base       float32    // mean surface height
	Center     [2]float32 // XZ centre of the patch
}

// DefaultTerrainOptions covers the helicopter flight area.
func DefaultTerrainOptions() TerrainOptions {
	return TerrainOptions{
		Size:       240,
		Resolution: 96,
		Amplitude:  4,
		Base:       -12,
		Center:     [2]float32{60, 0},
	}
}

// Height returns the terrain surface height at (x, z).
func (o TerrainOptions) Height(x, z float32) float32 {
	fx, fz := float64(x), float64(z)
	h := gomath.Sin(fx*0.08)*gomath.Cos(fz*0.06) +
		0.5*gomath.Sin(fx*0.21+fz*0.17) +
		0.25*gomath.Cos(fx*0.43-fz*0.37)
	return o.Base + o.Amplitude*float32(h)
}

// Terrain builds a height-field grid. Normals come from central differences
// and colour darkens in the hollows.
func Terrain(o TerrainOptions) *Mesh {
	res := max(o.Resolution, 1)
	step := o.Size / float32(res)
	x0 := o.Center[0] - o.Size/2
	z0 := o.Center[1] - o.Size/2

	m := &Mesh{
		Vertices: make([]Vertex, 0, (res+1)*(res+1)),
		Indices:  make([]uint32, 0, res*res*6),
	}

	for j := 0; j <= res; j++ {
		for i := 0; i <= res; i++ {
			x := x0 + float32(i)*step
			z := z0 + float32(j)*step
			y := o.Height(x, z)

			// Central differences for the surface normal
			dx := o.Height(x+step, z) - o.Height(x-step, z)
			dz := o.Height(x, z+step) - o.Height(x, z-step)
			normal := normalize([3]float32{-dx, 2 * step, -dz})

			shade := float32(0.55)
			if o.Amplitude != 0 {
				shade += 0.25 * (y - o.Base) / o.Amplitude
			}
			shade = min(max(shade, 0.2), 0.9)

			p := [3]float32{x, y, z}
			m.Vertices = append(m.Vertices, Vertex{
				Position: p,
				Normal:   normal,
				Color:    [4]float32{shade, shade * 0.97, shade * 0.92, 1},
			})
			updateBounds(&m.Bounds, p, len(m.Vertices) == 1)
		}
	}

	row := uint32(res + 1)
	for j := uint32(0); j < uint32(res); j++ {
		for i := uint32(0); i < uint32(res); i++ {
			a := j*row + i
			b := (j+1)*row + i
			c := (j+1)*row + i + 1
			d := j*row + i + 1
			m.Indices = append(m.Indices, a, b, c, a, c, d)
		}
	}
	return m
}

func normalize(v [3]float32) [3]float32 {
	l := float32(gomath.Sqrt(float64(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])))
	if l < 1e-8 {
		return [3]float32{0, 1, 0}
	}
	return [3]float32{v[0] / l, v[1] / l, v[2] / l}
}
