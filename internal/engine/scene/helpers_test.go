package scene

import "github.com/Faultbox/scene-studio/internal/engine/lighting"

func lightingUpdateName(name string) lighting.LightUpdate {
	return lighting.LightUpdate{Name: &name}
}
