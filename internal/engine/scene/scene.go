// Package scene holds the editable scene: objects, lights, cameras, the
// mesh and texture caches, and the per-frame snapshot handed to the
// compositor. All methods must be called from the render thread.
package scene

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	gomath "math"

	"go.uber.org/zap"

	"github.com/Faultbox/scene-studio/internal/assets"
	"github.com/Faultbox/scene-studio/internal/engine/camera"
	"github.com/Faultbox/scene-studio/internal/engine/geometry"
	"github.com/Faultbox/scene-studio/internal/engine/lighting"
	"github.com/Faultbox/scene-studio/internal/engine/model"
	"github.com/Faultbox/scene-studio/internal/engine/texture"
	"github.com/Faultbox/scene-studio/internal/logger"
	"github.com/Faultbox/scene-studio/pkg/math"
)

// Scene errors.
var (
	ErrUnknownPrimitive = errors.New("unknown primitive")
	ErrMeshNotLoaded    = errors.New("mesh not loaded")
	ErrUnknownTexture   = errors.New("unknown texture")
	ErrNoLoader         = errors.New("scene has no asset loader")
	ErrTargetRemoved    = errors.New("target object was removed")
)

// Settings holds the render settings that travel with each snapshot.
type Settings struct {
	FOV        float32 // vertical, degrees
	DualView   bool
	ClearColor [3]float32
	FogColor   [3]float32
	FogDensity float32
	GizmoScale float32
	// AutoRotateSpeed is the spin of auto-rotating objects in degrees per
	// second.
	AutoRotateSpeed float32
}

// DefaultSettings returns the editor's default render settings.
func DefaultSettings() Settings {
	return Settings{
		FOV:             45,
		ClearColor:      [3]float32{0.1, 0.1, 0.1},
		FogColor:        [3]float32{0.1, 0.1, 0.1},
		FogDensity:      0.035,
		GizmoScale:      0.1,
		AutoRotateSpeed: 60,
	}
}

// Options configures New. Zero fields take defaults.
type Options struct {
	Settings   *Settings
	Camera     *camera.Camera
	TopCamera  *camera.Camera
	Lights     []lighting.Light
	Primitives map[geometry.PrimitiveKind]geometry.Params
	Loader     *assets.Loader
}

// Default camera placement.
const DefaultTopDownHeight = 15

// DefaultCamera returns the primary camera of a new scene.
func DefaultCamera() *camera.Camera {
	return camera.New(math.Vec3{X: 0, Y: 2, Z: 10}, math.Vec3{X: 0, Y: 1, Z: 0}, camera.DefaultYaw, camera.DefaultPitch)
}

// Scene aggregates everything one editor session edits.
type Scene struct {
	Objects   *Registry
	Lights    *lighting.Registry
	Camera    *camera.Camera
	TopCamera *camera.Camera
	Settings  Settings

	loader    *assets.Loader
	meshes    *cache[MeshID, *model.Mesh]
	textures  *cache[TextureID, *image.RGBA]
	templates map[geometry.PrimitiveKind]MeshID
}

// New builds a scene, generating the primitive template meshes once.
func New(opts Options) (*Scene, error) {
	lights, err := lighting.NewRegistry(opts.Lights...)
	if err != nil {
		return nil, fmt.Errorf("creating lights: %w", err)
	}

	s := &Scene{
		Objects:   NewRegistry(),
		Lights:    lights,
		Camera:    opts.Camera,
		TopCamera: opts.TopCamera,
		Settings:  DefaultSettings(),
		loader:    opts.Loader,
		meshes:    newCache[MeshID, *model.Mesh](1),
		textures:  newCache[TextureID, *image.RGBA](DefaultTexture),
		templates: make(map[geometry.PrimitiveKind]MeshID, len(geometry.Kinds)),
	}
	if opts.Settings != nil {
		s.Settings = *opts.Settings
	}
	if s.Camera == nil {
		s.Camera = DefaultCamera()
	}
	if s.TopCamera == nil {
		s.TopCamera = camera.NewTopDown(DefaultTopDownHeight)
	}

	for _, kind := range geometry.Kinds {
		params, ok := opts.Primitives[kind]
		if !ok {
			params = geometry.DefaultParams(kind)
		}
		mesh, err := geometry.Build(kind, params)
		if err != nil {
			return nil, fmt.Errorf("building %s template: %w", kind, err)
		}
		s.templates[kind] = s.meshes.add("", mesh)
	}

	s.textures.add("", texture.Solid(color.RGBA{R: 255, G: 255, B: 255, A: 255}))
	return s, nil
}

// Template returns the mesh ID of a primitive's template.
func (s *Scene) Template(kind geometry.PrimitiveKind) (MeshID, bool) {
	id, ok := s.templates[kind]
	return id, ok
}

// Spawn adds an object for src and selects it. Imported sources must already
// be loaded or loading; use ImportModel to load and spawn in one step.
func (s *Scene) Spawn(src MeshSource, name string, position *math.Vec3) (int, error) {
	var id MeshID
	switch src.Kind {
	case SourcePrimitive:
		tid, ok := s.templates[src.Primitive]
		if !ok {
			return -1, fmt.Errorf("spawn %v: %w", src.Primitive, ErrUnknownPrimitive)
		}
		id = tid
	case SourceImported:
		mid, _, ok := s.meshes.lookup(src.Path)
		if !ok {
			return -1, fmt.Errorf("spawn %s: %w", src.Path, ErrMeshNotLoaded)
		}
		id = mid
	default:
		return -1, fmt.Errorf("spawn: unknown source kind %d", src.Kind)
	}
	return s.Objects.Spawn(src, id, name, position), nil
}

// SetTexture assigns a cached texture to the object at index.
func (s *Scene) SetTexture(index int, id TextureID) error {
	if _, ok := s.textures.state(id); !ok {
		return fmt.Errorf("set texture %d: %w", id, ErrUnknownTexture)
	}
	return s.Objects.SetTexture(index, id)
}

// Mesh returns a loaded mesh.
func (s *Scene) Mesh(id MeshID) (*model.Mesh, bool) {
	return s.meshes.get(id)
}

// MeshState returns the load state of a mesh.
func (s *Scene) MeshState(id MeshID) (ResourceState, bool) {
	return s.meshes.state(id)
}

// TextureState returns the load state of a texture.
func (s *Scene) TextureState(id TextureID) (ResourceState, bool) {
	return s.textures.state(id)
}

// ToggleDualView switches between one and two views.
func (s *Scene) ToggleDualView() {
	s.Settings.DualView = !s.Settings.DualView
	logger.Debug("dual view toggled", zap.Bool("enabled", s.Settings.DualView))
}

// Advance steps time-based state by dt seconds.
func (s *Scene) Advance(dt float32) {
	if dt <= 0 {
		return
	}
	step := s.Settings.AutoRotateSpeed * dt
	for i := range s.Objects.objects {
		obj := &s.Objects.objects[i]
		if obj.Material.AutoRotate {
			obj.Transform.Rotation.Y = wrapDegrees(obj.Transform.Rotation.Y + step)
		}
	}
}

// wrapDegrees maps a into [0, 360).
func wrapDegrees(a float32) float32 {
	w := float32(gomath.Mod(float64(a), 360))
	if w < 0 {
		w += 360
	}
	if w >= 360 {
		w = 0
	}
	return w
}

// Poll applies finished asset loads. Call it once at the start of a frame.
func (s *Scene) Poll() int {
	if s.loader == nil {
		return 0
	}
	return s.loader.Drain()
}

// Close stops the asset loader.
func (s *Scene) Close() {
	if s.loader != nil {
		s.loader.Close()
	}
}
