package scene

import (
	"github.com/Faultbox/scene-studio/internal/engine/camera"
	"github.com/Faultbox/scene-studio/internal/engine/picking"
	"github.com/Faultbox/scene-studio/pkg/math"
)

// primaryRay casts a ray through pixel (x, y) of the primary view.
func (s *Scene) primaryRay(x, y float32, width, height int) (picking.Ray, bool) {
	vp := camera.Layout(width, height, s.Settings.DualView)[0]
	if !vp.Contains(x, y) {
		return picking.Ray{}, false
	}
	proj := camera.Projection(s.Settings.FOV, vp)
	return picking.ScreenToRay(x, y, vp, s.Camera.ViewMatrix(), proj), true
}

// Pick selects the nearest object under pixel (x, y) of the primary view
// and returns its index. Clicking empty space clears the selection.
func (s *Scene) Pick(x, y float32, width, height int) (int, bool) {
	ray, ok := s.primaryRay(x, y, width, height)
	if !ok {
		return -1, false
	}

	best := -1
	var bestT float32
	for i, obj := range s.Objects.objects {
		mesh, ok := s.meshes.get(obj.Mesh)
		if !ok {
			continue
		}
		t, hit := ray.IntersectAABB(mesh.Bounds.Transform(obj.Transform.Matrix()))
		if hit && (best < 0 || t < bestT) {
			best, bestT = i, t
		}
	}

	if best < 0 {
		s.Objects.ClearSelection()
		return -1, false
	}
	s.Objects.selected = best
	return best, true
}

// GroundPoint returns where pixel (x, y) of the primary view meets the
// y = 0 plane.
func (s *Scene) GroundPoint(x, y float32, width, height int) (math.Vec3, bool) {
	ray, ok := s.primaryRay(x, y, width, height)
	if !ok {
		return math.Vec3{}, false
	}
	return ray.IntersectPlaneY(0)
}
