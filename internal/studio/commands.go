package studio

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/scene-studio/internal/engine/geometry"
	"github.com/Faultbox/scene-studio/internal/engine/lighting"
	"github.com/Faultbox/scene-studio/internal/engine/scene"
	"github.com/Faultbox/scene-studio/internal/logger"
	"github.com/Faultbox/scene-studio/pkg/math"
)

// Command is a discrete editor action bound to a key.
type Command int

const (
	CmdNone Command = iota
	CmdQuit
	CmdToggleDualView
	CmdDeleteSelected
	CmdSpawnCube
	CmdSpawnSphere
	CmdSpawnCylinder
	CmdAddLight
	CmdScreenshot
	CmdImportModel
	CmdLoadTexture
	CmdResetCamera
)

var commandNames = map[Command]string{
	CmdNone:           "none",
	CmdQuit:           "quit",
	CmdToggleDualView: "toggle-dual-view",
	CmdDeleteSelected: "delete-selected",
	CmdSpawnCube:      "spawn-cube",
	CmdSpawnSphere:    "spawn-sphere",
	CmdSpawnCylinder:  "spawn-cylinder",
	CmdAddLight:       "add-light",
	CmdScreenshot:     "screenshot",
	CmdImportModel:    "import-model",
	CmdLoadTexture:    "load-texture",
	CmdResetCamera:    "reset-camera",
}

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Command(%d)", int(c))
}

// spawnKind returns the primitive a spawn command creates.
func (c Command) spawnKind() (geometry.PrimitiveKind, bool) {
	switch c {
	case CmdSpawnCube:
		return geometry.KindCube, true
	case CmdSpawnSphere:
		return geometry.KindSphere, true
	case CmdSpawnCylinder:
		return geometry.KindCylinder, true
	}
	return 0, false
}

// newLightHeight lifts added lights above the point they are placed at.
const newLightHeight = 3

// Apply runs c against s. at is the ground point under the cursor, or nil
// to place new things at the origin. Host commands (quit, screenshot,
// camera reset and the file dialogs) are handled by the caller.
func Apply(s *scene.Scene, c Command, at *math.Vec3) error {
	switch c {
	case CmdNone, CmdQuit, CmdScreenshot, CmdImportModel, CmdLoadTexture, CmdResetCamera:
		return nil

	case CmdToggleDualView:
		s.ToggleDualView()

	case CmdDeleteSelected:
		if s.Objects.RemoveSelected() {
			logger.Debug("selection removed", zap.Int("objects", s.Objects.Len()))
		}

	case CmdSpawnCube, CmdSpawnSphere, CmdSpawnCylinder:
		kind, _ := c.spawnKind()
		idx, err := s.Spawn(scene.PrimitiveSource(kind), "", at)
		if err != nil {
			return fmt.Errorf("%s: %w", c, err)
		}
		obj, _ := s.Objects.At(idx)
		logger.Debug("object spawned", zap.String("name", obj.Name), zap.Stringer("kind", kind))

	case CmdAddLight:
		l := lighting.DefaultLight()
		l.Name = ""
		if at != nil {
			l.Position = at.Add(math.Vec3{Y: newLightHeight})
		}
		idx, err := s.Lights.Add(l)
		if err != nil {
			return fmt.Errorf("%s: %w", c, err)
		}
		added, _ := s.Lights.At(idx)
		logger.Debug("light added", zap.String("name", added.Name))

	default:
		return fmt.Errorf("unknown command %d", int(c))
	}
	return nil
}
