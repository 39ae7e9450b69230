package scene

import (
	"context"
	"fmt"
	"image"

	"go.uber.org/zap"

	"github.com/Faultbox/scene-studio/internal/assets"
	"github.com/Faultbox/scene-studio/internal/engine/model"
	"github.com/Faultbox/scene-studio/internal/engine/texture"
	"github.com/Faultbox/scene-studio/internal/logger"
)

// requestMesh starts loading path unless it is cached or already loading,
// and calls done on the render thread when it resolves.
func (s *Scene) requestMesh(path string, done func(MeshID, error)) {
	if id, _, ok := s.meshes.lookup(path); ok {
		s.meshes.wait(id, func(err error) { done(id, err) })
		return
	}
	if s.loader == nil {
		done(0, ErrNoLoader)
		return
	}

	id := s.meshes.begin(path)
	s.meshes.wait(id, func(err error) { done(id, err) })

	assets.Go(s.loader, path, func(ctx context.Context, src assets.Source) (*model.Mesh, error) {
		text, err := src.FetchText(ctx, path)
		if err != nil {
			return nil, err
		}
		mesh, err := model.LoadOBJ([]byte(text))
		if err != nil {
			return nil, &assets.LoadError{Path: path, Err: err}
		}
		return mesh, nil
	}, func(mesh *model.Mesh, err error) {
		if err != nil {
			logger.Warn("model load failed", zap.String("path", path), zap.Error(err))
		} else {
			logger.Info("model loaded",
				zap.String("path", path),
				zap.Int("vertices", mesh.VertexCount()),
				zap.Int("triangles", mesh.TriangleCount()),
				zap.Stringer("indexFormat", mesh.IndexFormat()))
		}
		s.meshes.resolve(id, mesh, err)
	})
}

// requestTexture is requestMesh for images.
func (s *Scene) requestTexture(path string, done func(TextureID, error)) {
	if id, _, ok := s.textures.lookup(path); ok {
		s.textures.wait(id, func(err error) { done(id, err) })
		return
	}
	if s.loader == nil {
		done(0, ErrNoLoader)
		return
	}

	id := s.textures.begin(path)
	s.textures.wait(id, func(err error) { done(id, err) })

	assets.Go(s.loader, path, func(ctx context.Context, src assets.Source) (*image.RGBA, error) {
		img, err := src.FetchImage(ctx, path)
		if err != nil {
			return nil, err
		}
		return texture.ToRGBA(img, true), nil
	}, func(img *image.RGBA, err error) {
		if err != nil {
			logger.Warn("texture load failed", zap.String("path", path), zap.Error(err))
		} else {
			logger.Info("texture loaded", zap.String("path", path), zap.Int("width", img.Bounds().Dx()), zap.Int("height", img.Bounds().Dy()))
		}
		s.textures.resolve(id, img, err)
	})
}

// ImportModel loads an OBJ file and spawns it once loaded. Nothing is
// added when the load fails. The future yields the new object's handle.
func (s *Scene) ImportModel(path, name string) *assets.Future[uint64] {
	return s.importModel(path, func(id MeshID) int {
		return s.Objects.Spawn(ImportedSource(path), id, name, nil)
	})
}

// Placement describes an object added by PlaceModel. Nil fields take the
// defaults.
type Placement struct {
	Name      string
	Transform *Transform
	Material  *Material
}

// PlaceModel is ImportModel for objects that are not being edited: once
// the mesh loads, the object is added with p applied and the selection is
// left alone.
func (s *Scene) PlaceModel(path string, p Placement) *assets.Future[uint64] {
	return s.importModel(path, func(id MeshID) int {
		idx := s.Objects.add(ImportedSource(path), id, p.Name, nil)
		if p.Transform != nil {
			_ = s.Objects.SetTransform(idx, *p.Transform)
		}
		if p.Material != nil {
			_ = s.Objects.SetMaterial(idx, *p.Material)
		}
		return idx
	})
}

func (s *Scene) importModel(path string, spawn func(MeshID) int) *assets.Future[uint64] {
	f, resolve := assets.Pending[uint64]()
	s.requestMesh(path, func(id MeshID, err error) {
		if err != nil {
			resolve(0, err)
			return
		}
		obj, _ := s.Objects.At(spawn(id))
		logger.Info("model imported", zap.String("name", obj.Name), zap.Uint64("handle", obj.Handle))
		resolve(obj.Handle, nil)
	})
	return f
}

// SetObjectModel replaces the mesh of the object at index with an OBJ file.
// The object keeps its current mesh until the load succeeds, and keeps it
// for good if the load fails. A result for an object removed in the meantime
// is discarded.
func (s *Scene) SetObjectModel(index int, path string) (*assets.Future[MeshID], error) {
	obj, ok := s.Objects.At(index)
	if !ok {
		return nil, fmt.Errorf("set model: %w: %d", ErrIndexOutOfRange, index)
	}
	handle := obj.Handle

	f, resolve := assets.Pending[MeshID]()
	s.requestMesh(path, func(id MeshID, err error) {
		if err != nil {
			resolve(0, err)
			return
		}
		idx, ok := s.Objects.IndexOf(handle)
		if !ok {
			logger.Debug("discarding model for removed object", zap.Uint64("handle", handle), zap.String("path", path))
			resolve(id, ErrTargetRemoved)
			return
		}
		resolve(id, s.Objects.setMesh(idx, ImportedSource(path), id))
	})
	return f, nil
}

// SetObjectTextureFile loads an image and assigns it to the object at
// index. A failed load leaves the object's current texture in place.
func (s *Scene) SetObjectTextureFile(index int, path string) (*assets.Future[TextureID], error) {
	obj, ok := s.Objects.At(index)
	if !ok {
		return nil, fmt.Errorf("set texture file: %w: %d", ErrIndexOutOfRange, index)
	}
	handle := obj.Handle

	f, resolve := assets.Pending[TextureID]()
	s.requestTexture(path, func(id TextureID, err error) {
		if err != nil {
			resolve(0, err)
			return
		}
		idx, ok := s.Objects.IndexOf(handle)
		if !ok {
			logger.Debug("discarding texture for removed object", zap.Uint64("handle", handle), zap.String("path", path))
			resolve(id, ErrTargetRemoved)
			return
		}
		resolve(id, s.Objects.SetTexture(idx, id))
	})
	return f, nil
}
