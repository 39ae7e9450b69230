// Package compositor turns a scene snapshot into an ordered list of draw
// commands and replays them against a rendering backend.
package compositor

import (
	"image"
	gomath "math"

	"github.com/Faultbox/scene-studio/internal/engine/camera"
	"github.com/Faultbox/scene-studio/internal/engine/debug"
	"github.com/Faultbox/scene-studio/internal/engine/lighting"
	"github.com/Faultbox/scene-studio/internal/engine/model"
	"github.com/Faultbox/scene-studio/internal/engine/scene"
	"github.com/Faultbox/scene-studio/pkg/math"
)

// Surface is the size of the render target in pixels.
type Surface struct {
	Width  int
	Height int
}

// Empty reports whether s has no drawable area, as with a minimized window.
func (s Surface) Empty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// FrameUniforms are the per-view shader inputs shared by every object.
type FrameUniforms struct {
	FogColor       [3]float32
	FogDensity     float32
	CameraPosition math.Vec3
}

// Gizmo is the small unlit cube marking an active light.
type Gizmo struct {
	Light int
	Model math.Mat4
	Color [3]float32
}

// DrawCommand draws one scene object.
type DrawCommand struct {
	Handle    uint64
	Name      string
	MeshID    scene.MeshID
	Mesh      *model.Mesh
	Model     math.Mat4
	Normal    math.Mat3
	TextureID scene.TextureID
	Texture   *image.RGBA
	Shininess float32
	Opacity   float32
	Selected  bool
}

// View is everything drawn into one viewport.
type View struct {
	Viewport   camera.Viewport
	Projection math.Mat4
	View       math.Mat4
	Uniforms   FrameUniforms
	Lights     lighting.UniformBlock
	Gizmos     []Gizmo
	Objects    []DrawCommand
	// Outline is the selected object's world-space bounding box as a line
	// list of [x, y, z] vertices, or nil when nothing drawable is selected.
	Outline []float32
}

// Frame is the complete, ordered output of Compose.
type Frame struct {
	Surface    Surface
	ClearColor [3]float32
	// GizmoMesh is nil when the gizmo mesh is unavailable; gizmos are then
	// omitted.
	GizmoMeshID scene.MeshID
	GizmoMesh   *model.Mesh
	Views       []View
}

// Compose builds the frame for snap. It has no side effects and returns
// equal frames for equal inputs. Viewports without area get no view.
func Compose(snap *scene.Snapshot, surface Surface) *Frame {
	f := &Frame{
		Surface:     surface,
		ClearColor:  snap.Settings.ClearColor,
		GizmoMeshID: snap.Gizmo,
	}
	f.GizmoMesh, _ = snap.Mesh(snap.Gizmo)

	objects := composeObjects(snap)
	outline := composeOutline(snap, objects)
	var gizmos []Gizmo
	if f.GizmoMesh != nil {
		gizmos = composeGizmos(snap)
	}

	cams := snap.Views()
	viewports := camera.Layout(surface.Width, surface.Height, snap.Settings.DualView)
	for i, vp := range viewports {
		if vp.Width <= 0 || vp.Height <= 0 {
			continue
		}
		cam := cams[i]
		f.Views = append(f.Views, View{
			Viewport:   vp,
			Projection: camera.Projection(snap.Settings.FOV, vp),
			View:       cam.ViewMatrix(),
			Uniforms: FrameUniforms{
				FogColor:       snap.Settings.FogColor,
				FogDensity:     snap.Settings.FogDensity,
				CameraPosition: cam.Position,
			},
			Lights:  snap.LightBlock,
			Gizmos:  gizmos,
			Objects: objects,
			Outline: outline,
		})
	}
	return f
}

func composeGizmos(snap *scene.Snapshot) []Gizmo {
	size := snap.Settings.GizmoScale
	scale := math.Scale(math.Vec3{X: size, Y: size, Z: size})

	var out []Gizmo
	for i, l := range snap.Lights {
		if !l.Active {
			continue
		}
		out = append(out, Gizmo{
			Light: i,
			Model: math.Translate(l.Position).Mul(scale),
			Color: l.NormalizedColor(),
		})
	}
	return out
}

func composeObjects(snap *scene.Snapshot) []DrawCommand {
	out := make([]DrawCommand, 0, len(snap.Objects))
	for i, obj := range snap.Objects {
		mesh, ok := snap.Mesh(obj.Mesh)
		if !ok {
			continue
		}
		texID := obj.Texture
		tex, ok := snap.Texture(texID)
		if !ok {
			texID = scene.DefaultTexture
			tex, _ = snap.Texture(texID)
		}

		m := ModelMatrix(obj.Transform)
		out = append(out, DrawCommand{
			Handle:    obj.Handle,
			Name:      obj.Name,
			MeshID:    obj.Mesh,
			Mesh:      mesh,
			Model:     m,
			Normal:    NormalMatrix(m),
			TextureID: texID,
			Texture:   tex,
			Shininess: obj.Material.Shininess,
			Opacity:   obj.Material.Opacity,
			Selected:  i == snap.Selected,
		})
	}
	return out
}

// composeOutline boxes the selected object. Objects without a loaded mesh
// get no outline.
func composeOutline(snap *scene.Snapshot, objects []DrawCommand) []float32 {
	for _, cmd := range objects {
		if cmd.Selected {
			return debug.BoxLines(cmd.Mesh.Bounds.Transform(cmd.Model), debug.SelectionPadding)
		}
	}
	return nil
}

// ModelMatrix composes T * Ry * Rx * Rz * S for t.
func ModelMatrix(t scene.Transform) math.Mat4 {
	return t.Matrix()
}

// NormalMatrix returns the inverse-transpose of the upper 3x3 of m.
func NormalMatrix(m math.Mat4) math.Mat3 {
	return m.NormalMatrix()
}

// FogFactor is the exponential-squared fog term evaluated by the lit
// fragment shader: 1 means no fog.
func FogFactor(distance, density float32) float32 {
	d := float64(distance * density)
	return math.Clamp(float32(1/gomath.Exp(d*d)), 0, 1)
}
