package scene

import (
	"image"

	"github.com/Faultbox/scene-studio/internal/engine/camera"
	"github.com/Faultbox/scene-studio/internal/engine/geometry"
	"github.com/Faultbox/scene-studio/internal/engine/lighting"
	"github.com/Faultbox/scene-studio/internal/engine/model"
)

// Snapshot is a frozen copy of the scene for one frame. Meshes and textures
// are shared since they are immutable once loaded; everything else is
// copied.
type Snapshot struct {
	Objects    []Object
	Lights     []lighting.Light
	LightBlock lighting.UniformBlock
	Camera     camera.Camera
	TopCamera  camera.Camera
	Settings   Settings
	// Selected is the selected object index, or -1.
	Selected int
	// Gizmo is the mesh drawn at each active light.
	Gizmo MeshID

	Meshes   map[MeshID]*model.Mesh
	Textures map[TextureID]*image.RGBA
}

// Snapshot captures the current state.
func (s *Scene) Snapshot() *Snapshot {
	selected, ok := s.Objects.Selected()
	if !ok {
		selected = -1
	}
	return &Snapshot{
		Objects:    s.Objects.Objects(),
		Lights:     s.Lights.All(),
		LightBlock: s.Lights.UniformBlock(),
		Camera:     *s.Camera,
		TopCamera:  *s.TopCamera,
		Settings:   s.Settings,
		Selected:   selected,
		Gizmo:      s.templates[geometry.KindCube],
		Meshes:     s.meshes.ready(),
		Textures:   s.textures.ready(),
	}
}

// Mesh returns a loaded mesh.
func (s *Snapshot) Mesh(id MeshID) (*model.Mesh, bool) {
	m, ok := s.Meshes[id]
	return m, ok
}

// Texture returns a loaded texture.
func (s *Snapshot) Texture(id TextureID) (*image.RGBA, bool) {
	t, ok := s.Textures[id]
	return t, ok
}

// Views returns the cameras drawn this frame, primary first.
func (s *Snapshot) Views() []*camera.Camera {
	if s.Settings.DualView {
		return []*camera.Camera{&s.Camera, &s.TopCamera}
	}
	return []*camera.Camera{&s.Camera}
}
