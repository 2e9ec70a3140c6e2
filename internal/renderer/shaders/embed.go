// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// SceneVertexShader transforms lit, vertex-colored geometry.
//
//go:embed scene.vert
var SceneVertexShader string

// SceneFragmentShader shades geometry with a single directional light.
//
//go:embed scene.frag
var SceneFragmentShader string
