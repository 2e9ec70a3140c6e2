package mesh

// Helicopter holds the separately animated parts of one helicopter.
// Model space: Y up, nose towards -Z, tail towards +Z.
type Helicopter struct {
	Body      *Mesh
	Door      *Mesh
	MainRotor *Mesh
	TailRotor *Mesh
}

var (
	hullColor  = [4]float32{0.34, 0.41, 0.24, 1}
	doorColor  = [4]float32{0.42, 0.50, 0.30, 1}
	glassColor = [4]float32{0.55, 0.70, 0.80, 1}
	metalColor = [4]float32{0.22, 0.22, 0.24, 1}
)

// NewHelicopter builds the helicopter parts. Part geometry is placed so the
// main rotor spins about the Y axis through the origin and the tail rotor
// about X through (0.35, 2.3, 10.4).
func NewHelicopter() Helicopter {
	body := Merge(
		Box([3]float32{-1.2, 0.6, -3.5}, [3]float32{1.2, 3.0, 3.0}, hullColor),
		Box([3]float32{-0.9, 0.9, -4.5}, [3]float32{0.9, 2.6, -3.5}, glassColor),
		Box([3]float32{-0.3, 2.0, 3.0}, [3]float32{0.3, 2.6, 10.6}, hullColor),
		Box([3]float32{-0.1, 2.6, 9.8}, [3]float32{0.1, 4.0, 10.6}, hullColor),
		Box([3]float32{-1.4, 0.0, -3.0}, [3]float32{-1.2, 0.2, 3.0}, metalColor),
		Box([3]float32{1.2, 0.0, -3.0}, [3]float32{1.4, 0.2, 3.0}, metalColor),
	)

	door := Box([3]float32{1.2, 1.0, -1.5}, [3]float32{1.3, 2.6, 0.5}, doorColor)

	mainRotor := Merge(
		Box([3]float32{-0.15, 3.0, -0.15}, [3]float32{0.15, 3.5, 0.15}, metalColor),
		Box([3]float32{-7.0, 3.5, -0.25}, [3]float32{7.0, 3.6, 0.25}, metalColor),
		Box([3]float32{-0.25, 3.5, -7.0}, [3]float32{0.25, 3.6, 7.0}, metalColor),
	)

	tailRotor := Merge(
		Box([3]float32{0.3, 1.1, 10.3}, [3]float32{0.4, 3.5, 10.5}, metalColor),
		Box([3]float32{0.3, 2.2, 9.2}, [3]float32{0.4, 2.4, 11.6}, metalColor),
	)

	return Helicopter{
		Body:      body,
		Door:      door,
		MainRotor: mainRotor,
		TailRotor: tailRotor,
	}
}
