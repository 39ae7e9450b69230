package studio

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/scene-studio/internal/assets"
	"github.com/Faultbox/scene-studio/internal/engine/scene"
	"github.com/Faultbox/scene-studio/internal/logger"
)

type loadKind int

const (
	loadModel loadKind = iota
	loadTexture
)

func (k loadKind) String() string {
	if k == loadModel {
		return "model"
	}
	return "texture"
}

// trackedLoad is one asset load the studio reports on.
type trackedLoad struct {
	kind loadKind
	path string
	done func() bool
	err  func() error
	// then runs once the load has succeeded.
	then func(*scene.Scene) error
}

// Loads tracks asset loads requested by the studio itself: those of the
// startup scene and those picked by the user.
type Loads struct {
	loads []trackedLoad
}

// watchModel tracks a model import. When texture is set it is loaded onto
// the new object once the model is in the scene.
func (st *Loads) watchModel(path string, f *assets.Future[uint64], texture string) {
	l := trackedLoad{kind: loadModel, path: path, done: f.Done, err: f.Err}
	if texture != "" {
		l.then = func(s *scene.Scene) error {
			handle, _ := f.Result()
			return st.applyTexture(s, handle, texture)
		}
	}
	st.loads = append(st.loads, l)
}

// applyTexture starts loading path onto the object with handle and tracks
// it. Objects removed in the meantime are skipped.
func (st *Loads) applyTexture(s *scene.Scene, handle uint64, path string) error {
	idx, ok := s.Objects.IndexOf(handle)
	if !ok {
		return nil
	}
	f, err := s.SetObjectTextureFile(idx, path)
	if err != nil {
		return err
	}
	st.loads = append(st.loads, trackedLoad{kind: loadTexture, path: path, done: f.Done, err: f.Err})
	return nil
}

// Pending returns the number of loads still in flight.
func (st *Loads) Pending() int {
	return len(st.loads)
}

// Check settles the finished loads. Call it after scene.Poll. A failed
// model adds nothing; a failed texture leaves the object's texture in
// place. Follow-up loads are started for models that arrived. The failures
// are returned joined.
func (st *Loads) Check(s *scene.Scene) error {
	var errs []error
	loads := st.loads
	st.loads = nil

	var remaining []trackedLoad
	for _, l := range loads {
		if !l.done() {
			remaining = append(remaining, l)
			continue
		}
		err := l.err()
		if err != nil && !errors.Is(err, scene.ErrTargetRemoved) {
			logger.Warn("asset failed",
				zap.Stringer("kind", l.kind),
				zap.String("path", l.path),
				zap.Error(err),
			)
			errs = append(errs, fmt.Errorf("%s %s: %w", l.kind, l.path, err))
			continue
		}

		logger.Debug("asset ready", zap.Stringer("kind", l.kind), zap.String("path", l.path))
		if err == nil && l.then != nil {
			if err := l.then(s); err != nil {
				logger.Warn("follow-up load failed", zap.String("path", l.path), zap.Error(err))
				errs = append(errs, fmt.Errorf("%s %s: %w", l.kind, l.path, err))
			}
		}
	}
	st.loads = append(remaining, st.loads...)
	return errors.Join(errs...)
}
