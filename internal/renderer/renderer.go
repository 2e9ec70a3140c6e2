// Package renderer draws the scene with OpenGL 4.1 core.
//
// Every method must be called from the goroutine that owns the GL context.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/heliscene/internal/lighting"
	"github.com/Faultbox/heliscene/internal/logger"
	"github.com/Faultbox/heliscene/internal/mesh"
	"github.com/Faultbox/heliscene/internal/renderer/shaders"
	"github.com/Faultbox/heliscene/internal/scene"
)

// Config holds renderer configuration.
type Config struct {
	ClearColor [4]float32
	Sun        lighting.Sun
}

type buffers struct {
	vao, vbo, ebo uint32
}

// Renderer owns the shader program and every uploaded mesh.
type Renderer struct {
	config  Config
	program uint32

	locMVP      int32
	locModel    int32
	locLightDir int32
	locAmbient  int32

	meshes []buffers
}

// New loads GL functions for the current context and prepares the pipeline.
// The GL context must be current on the calling thread.
func New(cfg Config) (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
		zap.String("glsl", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION))),
	)

	r := &Renderer{config: cfg}

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	c := cfg.ClearColor
	gl.ClearColor(c[0], c[1], c[2], c[3])

	var err error
	r.program, err = compileProgram(shaders.SceneVertexShader, shaders.SceneFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}

	for name, loc := range map[string]*int32{
		"uMVP":      &r.locMVP,
		"uModel":    &r.locModel,
		"uLightDir": &r.locLightDir,
		"uAmbient":  &r.locAmbient,
	} {
		if *loc, err = uniform(r.program, name); err != nil {
			gl.DeleteProgram(r.program)
			return nil, err
		}
	}

	return r, nil
}

// Upload copies m to the GPU and returns a handle for a scene node.
// Vertex layout: location 0 position, 1 normal, 2 RGBA color.
func (r *Renderer) Upload(m *mesh.Mesh) (scene.Drawable, error) {
	if len(m.Vertices) == 0 || len(m.Indices) == 0 {
		return scene.Drawable{}, fmt.Errorf("upload: empty mesh (%d vertices, %d indices)",
			len(m.Vertices), len(m.Indices))
	}

	var b buffers
	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)

	gl.GenBuffers(1, &b.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	vertexSize := int(unsafe.Sizeof(mesh.Vertex{}))
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Vertices)*vertexSize, unsafe.Pointer(&m.Vertices[0]), gl.STATIC_DRAW)

	// Position
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, int32(vertexSize), 0)
	gl.EnableVertexAttribArray(0)
	// Normal
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, int32(vertexSize), 3*4)
	gl.EnableVertexAttribArray(1)
	// Color
	gl.VertexAttribPointerWithOffset(2, 4, gl.FLOAT, false, int32(vertexSize), 6*4)
	gl.EnableVertexAttribArray(2)

	gl.GenBuffers(1, &b.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, unsafe.Pointer(&m.Indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	r.meshes = append(r.meshes, b)

	return scene.Drawable{VAO: b.vao, IndexCount: m.IndexCount()}, nil
}

// Viewport resizes the GL viewport.
func (r *Renderer) Viewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("viewport resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Clear starts a new frame.
func (r *Renderer) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	gl.UseProgram(r.program)
	light := r.config.Sun.Direction()
	gl.Uniform3f(r.locLightDir, light.X, light.Y, light.Z)
	gl.Uniform1f(r.locAmbient, r.config.Sun.Ambient)
}

// Submit draws one node. It implements scene.Submitter.
func (r *Renderer) Submit(dc scene.DrawCall) {
	gl.UniformMatrix4fv(r.locMVP, 1, false, dc.MVP.Ptr())
	gl.UniformMatrix4fv(r.locModel, 1, false, dc.Model.Ptr())

	gl.BindVertexArray(dc.Drawable.VAO)
	gl.DrawElementsWithOffset(gl.TRIANGLES, dc.Drawable.IndexCount, gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)
}

// Close releases every GPU resource.
func (r *Renderer) Close() {
	logger.Info("closing renderer", zap.Int("meshes", len(r.meshes)))
	for i := range r.meshes {
		b := &r.meshes[i]
		gl.DeleteVertexArrays(1, &b.vao)
		gl.DeleteBuffers(1, &b.vbo)
		gl.DeleteBuffers(1, &b.ebo)
	}
	r.meshes = nil
	if r.program != 0 {
		gl.DeleteProgram(r.program)
		r.program = 0
	}
}
