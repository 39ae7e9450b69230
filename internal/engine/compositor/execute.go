package compositor

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/scene-studio/internal/engine/model"
	"github.com/Faultbox/scene-studio/internal/logger"
)

// Backend issues the draw calls of a frame.
type Backend interface {
	// BeginView prepares the viewport and clears it.
	BeginView(v *View, clear [3]float32) error
	DrawGizmo(v *View, g *Gizmo, mesh *model.Mesh) error
	DrawObject(v *View, cmd *DrawCommand) error
	// DrawOutline draws v.Outline over the objects.
	DrawOutline(v *View) error
}

// Execute replays f against b: per view, BeginView, then every gizmo, then
// every object in registry order, then the selection outline. A failing
// gizmo or object is logged and skipped; a failing BeginView skips that
// view. The returned error joins every failure.
func Execute(f *Frame, b Backend) error {
	var errs []error
	for i := range f.Views {
		v := &f.Views[i]
		if err := b.BeginView(v, f.ClearColor); err != nil {
			logger.Warn("view skipped", zap.Int("view", i), zap.Error(err))
			errs = append(errs, fmt.Errorf("view %d: %w", i, err))
			continue
		}

		for j := range v.Gizmos {
			g := &v.Gizmos[j]
			if err := b.DrawGizmo(v, g, f.GizmoMesh); err != nil {
				logger.Warn("light gizmo skipped", zap.Int("light", g.Light), zap.Error(err))
				errs = append(errs, fmt.Errorf("view %d light %d: %w", i, g.Light, err))
			}
		}

		for j := range v.Objects {
			cmd := &v.Objects[j]
			if err := b.DrawObject(v, cmd); err != nil {
				logger.Warn("object skipped", zap.String("object", cmd.Name), zap.Uint64("handle", cmd.Handle), zap.Error(err))
				errs = append(errs, fmt.Errorf("view %d object %q: %w", i, cmd.Name, err))
			}
		}

		if len(v.Outline) > 0 {
			if err := b.DrawOutline(v); err != nil {
				logger.Warn("selection outline skipped", zap.Error(err))
				errs = append(errs, fmt.Errorf("view %d outline: %w", i, err))
			}
		}
	}
	return errors.Join(errs...)
}
