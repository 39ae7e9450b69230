package lighting

// LightUniform is one slot of the shader light array.
type LightUniform struct {
	Position  [3]float32
	Color     [3]float32 // 0-1 range
	Intensity float32
	Type      int32
	Active    int32
}

// UniformBlock holds every light slot for upload. Slots past Count are zero
// and inactive.
type UniformBlock struct {
	Lights [MaxLights]LightUniform
	Count  int32
}

// UniformBlock packs the registry into the fixed shader layout.
func (r *Registry) UniformBlock() UniformBlock {
	var b UniformBlock
	for i, l := range r.lights {
		var active int32
		if l.Active {
			active = 1
		}
		b.Lights[i] = LightUniform{
			Position:  l.Position.Array(),
			Color:     l.NormalizedColor(),
			Intensity: l.Intensity,
			Type:      int32(l.Type),
			Active:    active,
		}
	}
	b.Count = int32(len(r.lights))
	return b
}

// Positions returns positions as a flat slice.
// Format: [x0, y0, z0, x1, y1, z1, ...]
func (b *UniformBlock) Positions() []float32 {
	result := make([]float32, MaxLights*3)
	for i, l := range b.Lights {
		copy(result[i*3:], l.Position[:])
	}
	return result
}

// Colors returns colors as a flat slice.
// Format: [r0, g0, b0, r1, g1, b1, ...]
func (b *UniformBlock) Colors() []float32 {
	result := make([]float32, MaxLights*3)
	for i, l := range b.Lights {
		copy(result[i*3:], l.Color[:])
	}
	return result
}

// Intensities returns intensities as a flat slice.
func (b *UniformBlock) Intensities() []float32 {
	result := make([]float32, MaxLights)
	for i, l := range b.Lights {
		result[i] = l.Intensity
	}
	return result
}

// Types returns light types as a flat slice.
func (b *UniformBlock) Types() []int32 {
	result := make([]int32, MaxLights)
	for i, l := range b.Lights {
		result[i] = l.Type
	}
	return result
}

// ActiveFlags returns 1 for each active slot.
func (b *UniformBlock) ActiveFlags() []int32 {
	result := make([]int32, MaxLights)
	for i, l := range b.Lights {
		result[i] = l.Active
	}
	return result
}
