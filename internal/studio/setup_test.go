package studio

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/scene-studio/internal/assets"
	"github.com/Faultbox/scene-studio/internal/config"
	"github.com/Faultbox/scene-studio/internal/engine/geometry"
	"github.com/Faultbox/scene-studio/internal/engine/lighting"
	"github.com/Faultbox/scene-studio/internal/engine/scene"
	"github.com/Faultbox/scene-studio/pkg/formats"
	"github.com/Faultbox/scene-studio/pkg/math"
)

const triOBJ = `v 0 0 0
v 1 0 0
v 0 1 0
f 1 2 3
`

func assetDir(t *testing.T, files map[string][]byte) string {
	t.Helper()
	dir := t.TempDir()
	for name, data := range files {
		p := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, data, 0644))
	}
	return dir
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for i := range 4 {
		img.Set(i%2, i/2, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func buildScene(t *testing.T, cfg *config.Config, files map[string][]byte) (*scene.Scene, *Loads, *assets.Loader) {
	t.Helper()
	loader := assets.NewLoader(assets.NewDirSource(assetDir(t, files)))
	s, st, err := NewScene(cfg, loader)
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return s, st, loader
}

func settle(s *scene.Scene, l *assets.Loader) {
	l.Wait()
	s.Poll()
}

func TestNewSceneDefaults(t *testing.T) {
	s, st, _ := buildScene(t, config.Default(), nil)

	require.Equal(t, 3, s.Objects.Len())
	wantNames := []string{"Cube", "Sphere", "Cylinder"}
	wantX := []float32{-2.5, 0, 2.5}
	for i := range 3 {
		obj, ok := s.Objects.At(i)
		require.True(t, ok)
		assert.Equal(t, wantNames[i], obj.Name)
		assert.Equal(t, wantX[i], obj.Transform.Position.X)
		assert.Equal(t, scene.DefaultMaterial(), obj.Material)
	}
	_, selected := s.Objects.Selected()
	assert.False(t, selected, "startup leaves nothing selected")

	require.Equal(t, 1, s.Lights.Len())
	light, _ := s.Lights.At(0)
	assert.Equal(t, "Light 1", light.Name)
	assert.Equal(t, math.Vec3{X: 5, Y: 5, Z: 5}, light.Position)

	assert.Equal(t, float32(45), s.Settings.FOV)
	assert.Equal(t, float32(60), s.Settings.AutoRotateSpeed)
	assert.Equal(t, math.Vec3{X: 0, Y: 2, Z: 10}, s.Camera.Position)
	assert.Zero(t, st.Pending())
}

func TestNewSceneObjectOverrides(t *testing.T) {
	cfg := config.Default()
	shininess := float32(8)
	opacity := float32(0.25)
	cfg.Scene.Objects = []config.ObjectConfig{{
		Name:       "Ball",
		Primitive:  "sphere",
		Position:   [3]float32{1, 2, 3},
		Rotation:   [3]float32{0, 90, 0},
		Scale:      [3]float32{2, 2, 2},
		Shininess:  &shininess,
		Opacity:    &opacity,
		AutoRotate: true,
	}}

	s, _, _ := buildScene(t, cfg, nil)

	obj, ok := s.Objects.At(0)
	require.True(t, ok)
	assert.Equal(t, "Ball", obj.Name)
	assert.Equal(t, math.Vec3{X: 1, Y: 2, Z: 3}, obj.Transform.Position)
	assert.Equal(t, math.Vec3{Y: 90}, obj.Transform.Rotation)
	assert.Equal(t, math.Vec3{X: 2, Y: 2, Z: 2}, obj.Transform.Scale)
	assert.Equal(t, scene.Material{Shininess: 8, Opacity: 0.25, AutoRotate: true}, obj.Material)
}

func TestNewSceneLoadsModelAndTexture(t *testing.T) {
	cfg := config.Default()
	shininess := float32(4)
	cfg.Scene.Objects = []config.ObjectConfig{
		{Model: "models/tri.obj", Texture: "tex/red.png", Position: [3]float32{0, 1, 0}, Shininess: &shininess},
	}
	s, st, loader := buildScene(t, cfg, map[string][]byte{
		"models/tri.obj": []byte(triOBJ),
		"tex/red.png":    pngBytes(t),
	})

	assert.Zero(t, s.Objects.Len(), "model objects appear once loaded")
	assert.Equal(t, 1, st.Pending())

	settle(s, loader)
	require.NoError(t, st.Check(s))
	require.Equal(t, 1, s.Objects.Len())
	obj, _ := s.Objects.At(0)
	assert.Equal(t, "tri", obj.Name)
	assert.Equal(t, float32(1), obj.Transform.Position.Y)
	assert.Equal(t, float32(4), obj.Material.Shininess)
	assert.Equal(t, scene.DefaultTexture, obj.Texture, "texture applies once loaded")
	assert.Equal(t, 1, st.Pending(), "texture load follows the model")

	settle(s, loader)
	require.NoError(t, st.Check(s))
	assert.Zero(t, st.Pending())

	obj, _ = s.Objects.At(0)
	state, ok := s.MeshState(obj.Mesh)
	require.True(t, ok)
	assert.Equal(t, scene.StateReady, state)
	assert.NotEqual(t, scene.DefaultTexture, obj.Texture)
	_, selected := s.Objects.Selected()
	assert.False(t, selected)
}

func TestStartupFailedModelAddsNothing(t *testing.T) {
	cfg := config.Default()
	cfg.Scene.Objects = append(cfg.Scene.Objects,
		config.ObjectConfig{Model: "broken.obj", Texture: "tex/red.png"},
		config.ObjectConfig{Model: "missing.obj"},
	)
	s, st, loader := buildScene(t, cfg, map[string][]byte{
		"broken.obj":  []byte("v 0 0 0\nf 1 2 3\n"),
		"tex/red.png": pngBytes(t),
	})
	require.Equal(t, 3, s.Objects.Len())

	// The user selects a primitive while the models are loading.
	require.NoError(t, s.Objects.Select(1))

	settle(s, loader)
	err := st.Check(s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.obj")
	assert.Contains(t, err.Error(), "missing.obj")
	var pe *formats.ParseError
	assert.ErrorAs(t, err, &pe)

	assert.Equal(t, 3, s.Objects.Len())
	for _, obj := range s.Objects.Objects() {
		assert.Equal(t, scene.SourcePrimitive, obj.Source.Kind, obj.Name)
	}
	sel, ok := s.Objects.Selected()
	require.True(t, ok)
	assert.Equal(t, 1, sel)
	assert.Zero(t, st.Pending(), "no texture load for a model that never arrived")
}

func TestStartupFailedTextureKeepsObject(t *testing.T) {
	cfg := config.Default()
	cfg.Scene.Objects = []config.ObjectConfig{{Primitive: "cube", Texture: "nope.png"}}
	s, st, loader := buildScene(t, cfg, nil)

	settle(s, loader)
	err := st.Check(s)
	require.Error(t, err)
	var loadErr *assets.LoadError
	assert.ErrorAs(t, err, &loadErr)

	require.Equal(t, 1, s.Objects.Len())
	obj, _ := s.Objects.At(0)
	assert.Equal(t, scene.DefaultTexture, obj.Texture)
}

func TestNewSceneRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*config.Config)
	}{
		{"unknown primitive", func(c *config.Config) { c.Scene.Objects[0].Primitive = "torus" }},
		{"unknown light type", func(c *config.Config) { c.Scene.Lights[0].Type = "spot" }},
		{"too many lights", func(c *config.Config) {
			for range lighting.MaxLights {
				c.Scene.Lights = append(c.Scene.Lights, config.LightConfig{Intensity: 1})
			}
		}},
		{"no mesh source", func(c *config.Config) { c.Scene.Objects[1].Primitive = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.modify(cfg)
			loader := assets.NewLoader(assets.NewDirSource(t.TempDir()))
			defer loader.Close()
			_, _, err := NewScene(cfg, loader)
			assert.Error(t, err)
		})
	}
}

func TestLightsFrom(t *testing.T) {
	lights, err := lightsFrom([]config.LightConfig{
		{Type: "sun", Position: [3]float32{0, 1, 0}, Color: [3]uint8{255, 0, 0}, Intensity: 2},
	})
	require.NoError(t, err)
	require.Len(t, lights, 1)
	assert.Equal(t, lighting.Directional, lights[0].Type)
	assert.True(t, lights[0].Active)
	assert.Equal(t, float32(2), lights[0].Intensity)
}

func TestSettingsFrom(t *testing.T) {
	cfg := config.Default()
	cfg.Render.DualView = true
	cfg.Scene.AutoRotateSpeed = 30

	got := settingsFrom(cfg)
	want := scene.DefaultSettings()
	want.DualView = true
	want.AutoRotateSpeed = 30
	assert.Equal(t, want, got)
}

func TestHomeCamera(t *testing.T) {
	cc := config.Default().Camera
	cam := cameraFrom(cc)
	want := *cam

	cam.MoveForward(3)
	cam.Look(120, -40, true)
	require.NotEqual(t, want.Position, cam.Position)

	homeCamera(cam, cc)
	assert.Equal(t, want.Position, cam.Position)
	assert.Equal(t, want.Yaw, cam.Yaw)
	assert.Equal(t, want.Pitch, cam.Pitch)
	assert.Equal(t, want.Front, cam.Front)
}

func TestSpawnKinds(t *testing.T) {
	for cmd, kind := range map[Command]geometry.PrimitiveKind{
		CmdSpawnCube:     geometry.KindCube,
		CmdSpawnSphere:   geometry.KindSphere,
		CmdSpawnCylinder: geometry.KindCylinder,
	} {
		got, ok := cmd.spawnKind()
		assert.True(t, ok, cmd.String())
		assert.Equal(t, kind, got)
	}
	_, ok := CmdAddLight.spawnKind()
	assert.False(t, ok)
}
