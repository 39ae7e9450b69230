// Package renderer draws composed frames with OpenGL.
package renderer

import (
	"errors"
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/scene-studio/internal/engine/compositor"
	"github.com/Faultbox/scene-studio/internal/engine/model"
	"github.com/Faultbox/scene-studio/internal/engine/renderer/shaders"
	"github.com/Faultbox/scene-studio/internal/engine/scene"
	"github.com/Faultbox/scene-studio/internal/engine/shader"
	"github.com/Faultbox/scene-studio/internal/logger"
)

// Errors returned by the draw methods.
var (
	ErrNoMesh    = errors.New("renderer: draw without mesh")
	ErrNoTexture = errors.New("renderer: draw without texture")
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

// Renderer is the OpenGL implementation of compositor.Backend.
type Renderer struct {
	config Config

	lit         *shader.Program
	litLights   shader.LightLocations
	gizmo       *shader.Program
	viewPrimed  bool
	currentView *compositor.View

	lines    *lineBuffer
	meshes   map[*model.Mesh]*gpuMesh
	textures map[scene.TextureID]uint32

	stats Stats
}

var _ compositor.Backend = (*Renderer)(nil)

// Stats counts the work of the last frame.
type Stats struct {
	Views     int
	Objects   int
	Gizmos    int
	Triangles int
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config:   cfg,
		meshes:   make(map[*model.Mesh]*gpuMesh),
		textures: make(map[scene.TextureID]uint32),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	// Cylinders are wound inward, so faces are never culled.
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	var err error
	r.lit, err = shader.Link(shaders.LitVertexShader, shaders.LitFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("lit program: %w", err)
	}
	r.litLights = shader.ResolveLights(r.lit)

	r.gizmo, err = shader.Link(shaders.GizmoVertexShader, shaders.GizmoFragmentShader)
	if err != nil {
		r.lit.Delete()
		return nil, fmt.Errorf("gizmo program: %w", err)
	}

	logger.Debug("renderer ready", zap.Uint32("lit", r.lit.ID), zap.Uint32("gizmo", r.gizmo.ID))
	return r, nil
}

// Close releases every GPU resource.
func (r *Renderer) Close() {
	logger.Info("closing renderer",
		zap.Int("meshes", len(r.meshes)),
		zap.Int("textures", len(r.textures)),
	)
	for id, m := range r.meshes {
		m.release()
		delete(r.meshes, id)
	}
	for id, tex := range r.textures {
		gl.DeleteTextures(1, &tex)
		delete(r.textures, id)
	}
	if r.lines != nil {
		r.lines.release()
		r.lines = nil
	}
	if r.lit != nil {
		r.lit.Delete()
	}
	if r.gizmo != nil {
		r.gizmo.Delete()
	}
}

// Resize records the new drawable size. Viewports are set per view.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Surface returns the current drawable size.
func (r *Renderer) Surface() compositor.Surface {
	return compositor.Surface{Width: r.config.Width, Height: r.config.Height}
}

// Render draws f and returns the joined draw failures. An empty surface
// draws nothing.
func (r *Renderer) Render(f *compositor.Frame) error {
	r.stats = Stats{}
	if f.Surface.Empty() {
		return nil
	}
	gl.Disable(gl.SCISSOR_TEST)
	gl.Viewport(0, 0, int32(f.Surface.Width), int32(f.Surface.Height))
	gl.ClearColor(f.ClearColor[0], f.ClearColor[1], f.ClearColor[2], 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	return compositor.Execute(f, r)
}

// Stats returns counters for the last rendered frame.
func (r *Renderer) Stats() Stats {
	return r.stats
}

// BeginView sets the viewport and clears it.
func (r *Renderer) BeginView(v *compositor.View, clear [3]float32) error {
	vp := v.Viewport
	if vp.Width <= 0 || vp.Height <= 0 {
		return fmt.Errorf("empty viewport %dx%d", vp.Width, vp.Height)
	}
	// Viewport rows count from the top; GL counts from the bottom.
	y := int32(r.config.Height - vp.Y - vp.Height)
	gl.Viewport(int32(vp.X), y, int32(vp.Width), int32(vp.Height))
	gl.Enable(gl.SCISSOR_TEST)
	gl.Scissor(int32(vp.X), y, int32(vp.Width), int32(vp.Height))
	gl.ClearColor(clear[0], clear[1], clear[2], 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	r.currentView = v
	r.viewPrimed = false
	r.stats.Views++
	return nil
}

// DrawGizmo draws one light marker with the unlit program.
func (r *Renderer) DrawGizmo(v *compositor.View, g *compositor.Gizmo, mesh *model.Mesh) error {
	if mesh == nil {
		return ErrNoMesh
	}
	gm, err := r.mesh(mesh)
	if err != nil {
		return err
	}

	r.gizmo.Use()
	r.gizmo.SetMat4("uMVP", v.Projection.Mul(v.View).Mul(g.Model))
	r.gizmo.SetVec3("uColor", g.Color)
	gm.draw()

	r.stats.Gizmos++
	return nil
}

// DrawObject draws one scene object with the lit program.
func (r *Renderer) DrawObject(v *compositor.View, cmd *compositor.DrawCommand) error {
	if cmd.Mesh == nil {
		return ErrNoMesh
	}
	if cmd.Texture == nil {
		return ErrNoTexture
	}
	gm, err := r.mesh(cmd.Mesh)
	if err != nil {
		return fmt.Errorf("mesh %d: %w", cmd.MeshID, err)
	}
	tex, err := r.texture(cmd.TextureID, cmd.Texture)
	if err != nil {
		return fmt.Errorf("texture %d: %w", cmd.TextureID, err)
	}

	r.lit.Use()
	if !r.viewPrimed || r.currentView != v {
		r.primeView(v)
	}

	r.lit.SetMat4("uModel", cmd.Model)
	r.lit.SetMat3("uNormalMatrix", cmd.Normal)
	r.lit.SetFloat("uShininess", cmd.Shininess)
	r.lit.SetFloat("uOpacity", cmd.Opacity)
	var highlight float32
	if cmd.Selected {
		highlight = selectionHighlight
	}
	r.lit.SetFloat("uHighlight", highlight)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gm.draw()

	r.stats.Objects++
	r.stats.Triangles += int(gm.indexCount / 3)
	return nil
}

// selectionHighlight brightens the selected object.
const selectionHighlight = 0.15

// primeView uploads the uniforms shared by every object of v.
func (r *Renderer) primeView(v *compositor.View) {
	r.lit.SetMat4("uView", v.View)
	r.lit.SetMat4("uProjection", v.Projection)
	r.lit.SetVec3("uViewPos", v.Uniforms.CameraPosition.Array())
	r.lit.SetVec3("uFogColor", v.Uniforms.FogColor)
	r.lit.SetFloat("uFogDensity", v.Uniforms.FogDensity)
	r.lit.SetInt("uTexture", 0)
	r.litLights.Upload(&v.Lights)
	r.currentView = v
	r.viewPrimed = true
}
