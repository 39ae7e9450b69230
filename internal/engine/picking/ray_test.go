package picking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/scene-studio/internal/engine/camera"
	"github.com/Faultbox/scene-studio/internal/engine/model"
	"github.com/Faultbox/scene-studio/pkg/math"
)

func unitBox(center math.Vec3) model.Bounds {
	one := math.Vec3{X: 1, Y: 1, Z: 1}
	return model.Bounds{Min: center.Sub(one), Max: center.Add(one)}
}

func TestScreenToRayCenter(t *testing.T) {
	cam := camera.New(math.Vec3{Z: 10}, math.Vec3{Y: 1}, camera.DefaultYaw, 0)
	vp := camera.Viewport{Width: 800, Height: 600}
	ray := ScreenToRay(400, 300, vp, cam.ViewMatrix(), camera.Projection(45, vp))

	assert.InDelta(t, 0, ray.Direction.X, 1e-4)
	assert.InDelta(t, 0, ray.Direction.Y, 1e-4)
	assert.InDelta(t, -1, ray.Direction.Z, 1e-4)
	assert.InDelta(t, 10-camera.NearPlane, ray.Origin.Z, 1e-3)
}

func TestScreenToRayOffsetViewport(t *testing.T) {
	cam := camera.New(math.Vec3{Z: 10}, math.Vec3{Y: 1}, camera.DefaultYaw, 0)
	vp := camera.Viewport{X: 400, Width: 400, Height: 600}
	ray := ScreenToRay(600, 300, vp, cam.ViewMatrix(), camera.Projection(45, vp))
	assert.InDelta(t, -1, ray.Direction.Z, 1e-4)

	// Left edge of the viewport looks left.
	ray = ScreenToRay(400, 300, vp, cam.ViewMatrix(), camera.Projection(45, vp))
	assert.Less(t, ray.Direction.X, float32(0))
}

func TestIntersectAABB(t *testing.T) {
	tests := []struct {
		name  string
		ray   Ray
		box   model.Bounds
		hit   bool
		wantT float32
	}{
		{"front", Ray{Origin: math.Vec3{Z: 10}, Direction: math.Vec3{Z: -1}}, unitBox(math.Vec3{}), true, 9},
		{"miss", Ray{Origin: math.Vec3{X: 5, Z: 10}, Direction: math.Vec3{Z: -1}}, unitBox(math.Vec3{}), false, 0},
		{"behind", Ray{Origin: math.Vec3{Z: 10}, Direction: math.Vec3{Z: 1}}, unitBox(math.Vec3{}), false, 0},
		{"inside", Ray{Origin: math.Vec3{}, Direction: math.Vec3{X: 1}}, unitBox(math.Vec3{}), true, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, hit := tt.ray.IntersectAABB(tt.box)
			require.Equal(t, tt.hit, hit)
			if hit {
				assert.InDelta(t, tt.wantT, d, 1e-5)
			}
		})
	}
}

func TestIntersectPlaneY(t *testing.T) {
	r := Ray{Origin: math.Vec3{X: 1, Y: 5}, Direction: math.Vec3{Y: -1}}
	p, ok := r.IntersectPlaneY(0)
	require.True(t, ok)
	assert.Equal(t, math.Vec3{X: 1}, p)

	_, ok = Ray{Origin: math.Vec3{Y: 5}, Direction: math.Vec3{X: 1}}.IntersectPlaneY(0)
	assert.False(t, ok)
	_, ok = Ray{Origin: math.Vec3{Y: 5}, Direction: math.Vec3{Y: 1}}.IntersectPlaneY(0)
	assert.False(t, ok)
}
