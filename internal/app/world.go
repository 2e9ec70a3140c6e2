package app

import (
	"fmt"

	"github.com/Faultbox/heliscene/internal/animation"
	"github.com/Faultbox/heliscene/internal/config"
	"github.com/Faultbox/heliscene/internal/mesh"
	"github.com/Faultbox/heliscene/internal/scene"
)

// Uploader turns CPU meshes into drawables.
type Uploader interface {
	Upload(*mesh.Mesh) (scene.Drawable, error)
}

// BuildScene uploads the geometry and assembles the tree:
//
//	root
//	├── terrain
//	├── helicopter 0
//	├── ...
//	└── helicopter n-1
func BuildScene(up Uploader, sc config.SceneConfig) (*scene.Node, []animation.Actor, error) {
	terrain, err := up.Upload(mesh.Terrain(terrainOptions(sc)))
	if err != nil {
		return nil, nil, fmt.Errorf("uploading terrain: %w", err)
	}

	heli := mesh.NewHelicopter()
	var parts animation.Parts
	for _, p := range []struct {
		name string
		mesh *mesh.Mesh
		dst  *scene.Drawable
	}{
		{"body", heli.Body, &parts.Body},
		{"door", heli.Door, &parts.Door},
		{"main rotor", heli.MainRotor, &parts.MainRotor},
		{"tail rotor", heli.TailRotor, &parts.TailRotor},
	} {
		if *p.dst, err = up.Upload(p.mesh); err != nil {
			return nil, nil, fmt.Errorf("uploading %s: %w", p.name, err)
		}
	}

	root := scene.New()
	root.AddChild(scene.NewDrawable(terrain))
	actors := animation.Populate(root, parts, sc.ActorCount)
	return root, actors, nil
}
