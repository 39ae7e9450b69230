package renderer

import (
	"errors"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/scene-studio/internal/engine/model"
	"github.com/Faultbox/scene-studio/internal/logger"
)

var errEmptyMesh = errors.New("renderer: empty mesh")

// gpuMesh is a mesh uploaded to vertex and index buffers.
type gpuMesh struct {
	vao, vbo, ebo uint32
	indexCount    int32
	indexType     uint32
}

// mesh returns the GPU copy of m, uploading it on first use. Meshes are
// immutable once loaded, so the pointer identifies the upload.
func (r *Renderer) mesh(m *model.Mesh) (*gpuMesh, error) {
	if gm, ok := r.meshes[m]; ok {
		return gm, nil
	}
	gm, err := uploadMesh(m)
	if err != nil {
		return nil, err
	}
	r.meshes[m] = gm
	logger.Debug("mesh uploaded",
		zap.Int("vertices", m.VertexCount()),
		zap.Int("triangles", m.TriangleCount()),
		zap.Stringer("indices", m.IndexFormat()),
	)
	return gm, nil
}

func uploadMesh(m *model.Mesh) (*gpuMesh, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	vertices := m.Interleave()
	if len(vertices) == 0 || len(m.Indices) == 0 {
		return nil, errEmptyMesh
	}

	gm := &gpuMesh{indexCount: int32(len(m.Indices))}

	gl.GenVertexArrays(1, &gm.vao)
	gl.BindVertexArray(gm.vao)

	gl.GenBuffers(1, &gm.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, gm.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*model.VertexStride, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	gl.GenBuffers(1, &gm.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, gm.ebo)
	switch m.IndexFormat() {
	case model.IndexUint16:
		indices := m.Indices16()
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*2, unsafe.Pointer(&indices[0]), gl.STATIC_DRAW)
		gm.indexType = gl.UNSIGNED_SHORT
	default:
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, unsafe.Pointer(&m.Indices[0]), gl.STATIC_DRAW)
		gm.indexType = gl.UNSIGNED_INT
	}

	// Position (location = 0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, model.VertexStride, 0)
	gl.EnableVertexAttribArray(0)
	// Normal (location = 1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, model.VertexStride, 3*4)
	gl.EnableVertexAttribArray(1)
	// TexCoord (location = 2)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, model.VertexStride, 6*4)
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)
	return gm, nil
}

func (gm *gpuMesh) draw() {
	gl.BindVertexArray(gm.vao)
	gl.DrawElements(gl.TRIANGLES, gm.indexCount, gm.indexType, nil)
	gl.BindVertexArray(0)
}

func (gm *gpuMesh) release() {
	gl.DeleteVertexArrays(1, &gm.vao)
	gl.DeleteBuffers(1, &gm.vbo)
	gl.DeleteBuffers(1, &gm.ebo)
}
