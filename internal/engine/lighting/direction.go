package lighting

import (
	gomath "math"

	"github.com/Faultbox/scene-studio/pkg/math"
)

// DirectionFromAngles converts an azimuth around Y and an elevation above the
// horizon, both in degrees, into a unit vector pointing toward the light.
func DirectionFromAngles(azimuth, elevation float32) math.Vec3 {
	az := float64(math.Radians(azimuth))
	el := float64(math.Radians(elevation))

	return math.Vec3{
		X: float32(gomath.Cos(el) * gomath.Sin(az)),
		Y: float32(gomath.Sin(el)),
		Z: float32(gomath.Cos(el) * gomath.Cos(az)),
	}
}
