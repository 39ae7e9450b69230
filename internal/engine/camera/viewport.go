package camera

import "github.com/Faultbox/scene-studio/pkg/math"

// Clip planes shared by every view.
const (
	NearPlane = 0.1
	FarPlane  = 100.0
)

// Viewport is a pixel rectangle of the render surface, origin top-left.
type Viewport struct {
	X, Y          int
	Width, Height int
}

// Aspect returns width/height, or 1 for an empty viewport.
func (v Viewport) Aspect() float32 {
	if v.Width <= 0 || v.Height <= 0 {
		return 1
	}
	return float32(v.Width) / float32(v.Height)
}

// Contains reports whether the pixel (x, y) lies inside v.
func (v Viewport) Contains(x, y float32) bool {
	return x >= float32(v.X) && x < float32(v.X+v.Width) &&
		y >= float32(v.Y) && y < float32(v.Y+v.Height)
}

// Layout splits a surface into one full viewport, or two side-by-side halves
// when dual is set. The left half always belongs to the primary camera.
func Layout(width, height int, dual bool) []Viewport {
	if !dual {
		return []Viewport{{Width: width, Height: height}}
	}
	left := width / 2
	return []Viewport{
		{X: 0, Width: left, Height: height},
		{X: left, Width: width - left, Height: height},
	}
}

// Projection returns the perspective matrix for a vertical field of view in
// degrees over v.
func Projection(fovDeg float32, v Viewport) math.Mat4 {
	return math.Perspective(math.Radians(fovDeg), v.Aspect(), NearPlane, FarPlane)
}
