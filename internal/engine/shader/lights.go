package shader

import (
	"strconv"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/scene-studio/internal/engine/lighting"
)

// Light uniform names in the lit shader. Every array has lighting.MaxLights
// elements.
const (
	LightPositions   = "uLightPositions"
	LightColors      = "uLightColors"
	LightIntensities = "uLightIntensities"
	LightTypes       = "uLightTypes"
	LightActive      = "uLightActive"
	LightCount       = "uLightCount"
)

// LightLocations are the light array uniform locations of a program.
// Resolve them once after linking; Upload then costs six GL calls.
type LightLocations struct {
	Positions   int32
	Colors      int32
	Intensities int32
	Types       int32
	Active      int32
	Count       int32
}

// ResolveLights looks up the light uniforms of p.
func ResolveLights(p *Program) LightLocations {
	return LightLocations{
		Positions:   p.Uniform(ArrayElement(LightPositions, 0)),
		Colors:      p.Uniform(ArrayElement(LightColors, 0)),
		Intensities: p.Uniform(ArrayElement(LightIntensities, 0)),
		Types:       p.Uniform(ArrayElement(LightTypes, 0)),
		Active:      p.Uniform(ArrayElement(LightActive, 0)),
		Count:       p.Uniform(LightCount),
	}
}

// Upload writes every slot of b. The program must be current.
func (l LightLocations) Upload(b *lighting.UniformBlock) {
	const n = lighting.MaxLights
	positions := b.Positions()
	colors := b.Colors()
	intensities := b.Intensities()
	types := b.Types()
	active := b.ActiveFlags()

	gl.Uniform3fv(l.Positions, n, &positions[0])
	gl.Uniform3fv(l.Colors, n, &colors[0])
	gl.Uniform1fv(l.Intensities, n, &intensities[0])
	gl.Uniform1iv(l.Types, n, &types[0])
	gl.Uniform1iv(l.Active, n, &active[0])
	gl.Uniform1i(l.Count, b.Count)
}

// ArrayElement returns the uniform name of element i of array name.
func ArrayElement(name string, i int) string {
	return name + "[" + strconv.Itoa(i) + "]"
}
