// Package config handles studio configuration loading and management.
package config

// Config holds all studio settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Render  RenderConfig  `yaml:"render"`
	Camera  CameraConfig  `yaml:"camera"`
	Scene   SceneConfig   `yaml:"scene"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
}

// RenderConfig holds the scene render settings.
type RenderConfig struct {
	FOV        float32    `yaml:"fov"` // vertical, degrees
	DualView   bool       `yaml:"dual_view"`
	ClearColor [3]float32 `yaml:"clear_color"`
	FogColor   [3]float32 `yaml:"fog_color"`
	FogDensity float32    `yaml:"fog_density"`
	GizmoScale float32    `yaml:"gizmo_scale"`
	// ScreenshotDir receives F12 captures.
	ScreenshotDir string `yaml:"screenshot_dir"`
}

// CameraConfig places the primary camera and tunes navigation.
type CameraConfig struct {
	Position      [3]float32 `yaml:"position"`
	Yaw           float32    `yaml:"yaw"`
	Pitch         float32    `yaml:"pitch"`
	Sensitivity   float32    `yaml:"sensitivity"`
	MoveSpeed     float32    `yaml:"move_speed"` // units per second
	TopDownHeight float32    `yaml:"top_down_height"`
}

// SceneConfig describes the scene the studio opens with.
type SceneConfig struct {
	AutoRotateSpeed float32        `yaml:"auto_rotate_speed"` // degrees per second
	AssetRoot       string         `yaml:"asset_root"`
	Preload         []string       `yaml:"preload"` // asset paths warmed at startup
	Objects         []ObjectConfig `yaml:"objects"`
	Lights          []LightConfig  `yaml:"lights"`
}

// ObjectConfig is one startup object. Exactly one of Primitive and Model
// is set. Omitted material fields keep their defaults.
type ObjectConfig struct {
	Name       string     `yaml:"name,omitempty"`
	Primitive  string     `yaml:"primitive,omitempty"`
	Model      string     `yaml:"model,omitempty"`
	Texture    string     `yaml:"texture,omitempty"`
	Position   [3]float32 `yaml:"position"`
	Rotation   [3]float32 `yaml:"rotation,omitempty"` // degrees
	Scale      [3]float32 `yaml:"scale,omitempty"`    // zero means 1
	Shininess  *float32   `yaml:"shininess,omitempty"`
	Opacity    *float32   `yaml:"opacity,omitempty"`
	AutoRotate bool       `yaml:"auto_rotate,omitempty"`
}

// LightConfig is one startup light.
type LightConfig struct {
	Name      string     `yaml:"name,omitempty"`
	Type      string     `yaml:"type"` // point or directional
	Position  [3]float32 `yaml:"position"`
	Color     [3]uint8   `yaml:"color"`
	Intensity float32    `yaml:"intensity"`
	Active    *bool      `yaml:"active,omitempty"` // default true
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values: a cube, a sphere
// and a cylinder in a row, lit by one white point light.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:      "Scene Studio",
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Render: RenderConfig{
			FOV:           45,
			DualView:      false,
			ClearColor:    [3]float32{0.1, 0.1, 0.1},
			FogColor:      [3]float32{0.1, 0.1, 0.1},
			FogDensity:    0.035,
			GizmoScale:    0.1,
			ScreenshotDir: "screenshots",
		},
		Camera: CameraConfig{
			Position:      [3]float32{0, 2, 10},
			Yaw:           -90,
			Pitch:         0,
			Sensitivity:   0.1,
			MoveSpeed:     5,
			TopDownHeight: 15,
		},
		Scene: SceneConfig{
			AutoRotateSpeed: 60,
			AssetRoot:       "assets",
			Objects: []ObjectConfig{
				{Primitive: "cube", Position: [3]float32{-2.5, 0, 0}},
				{Primitive: "sphere", Position: [3]float32{0, 0, 0}},
				{Primitive: "cylinder", Position: [3]float32{2.5, 0, 0}},
			},
			Lights: []LightConfig{
				{
					Name:      "Light 1",
					Type:      "point",
					Position:  [3]float32{5, 5, 5},
					Color:     [3]uint8{255, 255, 255},
					Intensity: 1,
				},
			},
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// IsActive reports whether the light starts switched on.
func (l LightConfig) IsActive() bool {
	return l.Active == nil || *l.Active
}
