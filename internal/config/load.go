package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	// Start with defaults
	cfg := Default()

	// Try to load from file (explicit path takes priority)
	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	// Apply CLI flags (highest priority)
	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate checks the values the studio cannot fall back from.
func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Render.FOV <= 0 || c.Render.FOV >= 180 {
		errs = append(errs, fmt.Errorf("fov %g must be in (0, 180)", c.Render.FOV))
	}
	if c.Render.FogDensity < 0 {
		errs = append(errs, fmt.Errorf("fog density %g must not be negative", c.Render.FogDensity))
	}
	if c.Camera.MoveSpeed < 0 {
		errs = append(errs, fmt.Errorf("camera move speed %g must not be negative", c.Camera.MoveSpeed))
	}
	for i, o := range c.Scene.Objects {
		if (o.Primitive == "") == (o.Model == "") {
			errs = append(errs, fmt.Errorf("object %d: exactly one of primitive and model must be set", i))
		}
	}
	for i, l := range c.Scene.Lights {
		if l.Intensity < 0 {
			errs = append(errs, fmt.Errorf("light %d: intensity %g must not be negative", i, l.Intensity))
		}
	}
	return errors.Join(errs...)
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./config.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "SceneStudio")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "SceneStudio")
	default: // Linux and others
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "scene-studio")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "scene-studio")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
