package renderer

import (
	"errors"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/scene-studio/internal/engine/compositor"
)

// outlineColor is the color of the selection box.
var outlineColor = [3]float32{1, 0.8, 0.2}

// lineBuffer is a streamed position-only vertex buffer for overlay lines.
type lineBuffer struct {
	vao, vbo uint32
	capacity int // bytes
}

func newLineBuffer() *lineBuffer {
	lb := &lineBuffer{}
	gl.GenVertexArrays(1, &lb.vao)
	gl.BindVertexArray(lb.vao)
	gl.GenBuffers(1, &lb.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, lb.vbo)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(0)
	gl.BindVertexArray(0)
	return lb
}

// draw uploads vertices and draws them as a line list.
func (lb *lineBuffer) draw(vertices []float32) {
	size := len(vertices) * 4
	gl.BindVertexArray(lb.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, lb.vbo)
	if size > lb.capacity {
		gl.BufferData(gl.ARRAY_BUFFER, size, unsafe.Pointer(&vertices[0]), gl.DYNAMIC_DRAW)
		lb.capacity = size
	} else {
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, size, unsafe.Pointer(&vertices[0]))
	}
	gl.DrawArrays(gl.LINES, 0, int32(len(vertices)/3))
	gl.BindVertexArray(0)
}

func (lb *lineBuffer) release() {
	gl.DeleteVertexArrays(1, &lb.vao)
	gl.DeleteBuffers(1, &lb.vbo)
}

// DrawOutline draws the selection box of v with the unlit program.
func (r *Renderer) DrawOutline(v *compositor.View) error {
	if len(v.Outline)%3 != 0 || len(v.Outline) == 0 {
		return errors.New("renderer: malformed outline")
	}
	if r.lines == nil {
		r.lines = newLineBuffer()
	}

	r.gizmo.Use()
	r.gizmo.SetMat4("uMVP", v.Projection.Mul(v.View))
	r.gizmo.SetVec3("uColor", outlineColor)
	r.lines.draw(v.Outline)
	return nil
}

// ReadPixels reads back the whole drawable as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	if len(pixels) == 0 {
		return nil, 0, 0
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&pixels[0]))
	return pixels, w, h
}
