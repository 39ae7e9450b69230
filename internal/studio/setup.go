package studio

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/scene-studio/internal/assets"
	"github.com/Faultbox/scene-studio/internal/config"
	"github.com/Faultbox/scene-studio/internal/engine/camera"
	"github.com/Faultbox/scene-studio/internal/engine/geometry"
	"github.com/Faultbox/scene-studio/internal/engine/lighting"
	"github.com/Faultbox/scene-studio/internal/engine/scene"
	"github.com/Faultbox/scene-studio/internal/logger"
	"github.com/Faultbox/scene-studio/pkg/math"
)

// NewScene builds the scene described by cfg. Model and texture files are
// requested through loader; the returned Loads reports how they end.
func NewScene(cfg *config.Config, loader *assets.Loader) (*scene.Scene, *Loads, error) {
	lights, err := lightsFrom(cfg.Scene.Lights)
	if err != nil {
		return nil, nil, err
	}

	settings := settingsFrom(cfg)
	s, err := scene.New(scene.Options{
		Settings:  &settings,
		Camera:    cameraFrom(cfg.Camera),
		TopCamera: camera.NewTopDown(cfg.Camera.TopDownHeight),
		Lights:    lights,
		Loader:    loader,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("creating scene: %w", err)
	}

	st := &Loads{}
	for i, oc := range cfg.Scene.Objects {
		if err := spawnObject(s, st, oc); err != nil {
			s.Close()
			return nil, nil, fmt.Errorf("object %d: %w", i, err)
		}
	}
	s.Objects.ClearSelection()

	logger.Info("scene ready",
		zap.Int("objects", s.Objects.Len()),
		zap.Int("lights", s.Lights.Len()),
		zap.Int("pending", st.Pending()),
	)
	return s, st, nil
}

func settingsFrom(cfg *config.Config) scene.Settings {
	return scene.Settings{
		FOV:             cfg.Render.FOV,
		DualView:        cfg.Render.DualView,
		ClearColor:      cfg.Render.ClearColor,
		FogColor:        cfg.Render.FogColor,
		FogDensity:      cfg.Render.FogDensity,
		GizmoScale:      cfg.Render.GizmoScale,
		AutoRotateSpeed: cfg.Scene.AutoRotateSpeed,
	}
}

func lightsFrom(lcs []config.LightConfig) ([]lighting.Light, error) {
	if len(lcs) > lighting.MaxLights {
		return nil, fmt.Errorf("%d lights: %w", len(lcs), lighting.ErrCapacityExceeded)
	}
	lights := make([]lighting.Light, 0, len(lcs))
	for i, lc := range lcs {
		typ, err := lighting.ParseType(lc.Type)
		if err != nil {
			return nil, fmt.Errorf("light %d: %w", i, err)
		}
		lights = append(lights, lighting.Light{
			Name:      lc.Name,
			Type:      typ,
			Position:  vec3(lc.Position),
			Color:     lc.Color,
			Intensity: lc.Intensity,
			Active:    lc.IsActive(),
		})
	}
	return lights, nil
}

// spawnObject adds a configured object. Primitives are added right away;
// models are added once their mesh has loaded and never if it fails.
func spawnObject(s *scene.Scene, st *Loads, oc config.ObjectConfig) error {
	t := transformFrom(oc)
	m := materialFrom(oc)

	switch {
	case oc.Primitive != "":
		kind, err := geometry.ParseKind(oc.Primitive)
		if err != nil {
			return err
		}
		index, err := s.Spawn(scene.PrimitiveSource(kind), oc.Name, nil)
		if err != nil {
			return err
		}
		if err := s.Objects.SetTransform(index, t); err != nil {
			return err
		}
		if err := s.Objects.SetMaterial(index, m); err != nil {
			return err
		}
		if oc.Texture != "" {
			obj, _ := s.Objects.At(index)
			return st.applyTexture(s, obj.Handle, oc.Texture)
		}
		return nil

	case oc.Model != "":
		f := s.PlaceModel(oc.Model, scene.Placement{Name: oc.Name, Transform: &t, Material: &m})
		st.watchModel(oc.Model, f, oc.Texture)
		return nil

	default:
		return errors.New("no primitive or model")
	}
}

func cameraFrom(cc config.CameraConfig) *camera.Camera {
	cam := camera.New(vec3(cc.Position), math.Vec3{X: 0, Y: 1, Z: 0}, cc.Yaw, cc.Pitch)
	if cc.Sensitivity > 0 {
		cam.Sensitivity = cc.Sensitivity
	}
	return cam
}

// homeCamera moves cam back to its configured pose.
func homeCamera(cam *camera.Camera, cc config.CameraConfig) {
	cam.Position = vec3(cc.Position)
	cam.SetOrientation(cc.Yaw, cc.Pitch)
}

func transformFrom(oc config.ObjectConfig) scene.Transform {
	t := scene.DefaultTransform()
	t.Position = vec3(oc.Position)
	t.Rotation = vec3(oc.Rotation)
	if oc.Scale != [3]float32{} {
		t.Scale = vec3(oc.Scale)
	}
	return t
}

func materialFrom(oc config.ObjectConfig) scene.Material {
	m := scene.DefaultMaterial()
	if oc.Shininess != nil {
		m.Shininess = *oc.Shininess
	}
	if oc.Opacity != nil {
		m.Opacity = *oc.Opacity
	}
	m.AutoRotate = oc.AutoRotate
	return m
}

func vec3(v [3]float32) math.Vec3 {
	return math.Vec3{X: v[0], Y: v[1], Z: v[2]}
}
