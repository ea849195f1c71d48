// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Viewer   ViewerConfig   `yaml:"viewer"`
	Vignette VignetteConfig `yaml:"vignette"`
	Capture  CaptureConfig  `yaml:"capture"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// ViewerConfig holds camera and subject settings.
type ViewerConfig struct {
	Asset       string  `yaml:"asset"`        // Built-in subject: cube, sphere, showpiece
	AssetSize   float64 `yaml:"asset_size"`   // Subject scale in world units
	FOVDegrees  float64 `yaml:"fov_degrees"`  // Vertical field of view
	RotateSpeed float64 `yaml:"rotate_speed"` // Orbit drag multiplier (< 1 feels deliberate)
	ZoomSpeed   float64 `yaml:"zoom_speed"`   // Dolly-drag units per pixel
	Damping     float64 `yaml:"damping"`      // Orbit inertia blend factor per update
}

// VignetteConfig holds the radial fade post-effect settings.
type VignetteConfig struct {
	Enabled    bool       `yaml:"enabled"`
	Strength   float64    `yaml:"strength"`
	Radius     float64    `yaml:"radius"`
	Softness   float64    `yaml:"softness"`
	PulseSpeed float64    `yaml:"pulse_speed"`
	FadeColor  [3]float64 `yaml:"fade_color"`
}

// CaptureConfig holds screenshot settings.
type CaptureConfig struct {
	OutputDir string `yaml:"output_dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Viewer: ViewerConfig{
			Asset:       "showpiece",
			AssetSize:   10,
			FOVDegrees:  75,
			RotateSpeed: 0.25,
			ZoomSpeed:   0.5,
			Damping:     0.1,
		},
		Vignette: VignetteConfig{
			Enabled:    true,
			Strength:   0.55,
			Radius:     0.6,
			Softness:   0.45,
			PulseSpeed: 0.8,
			FadeColor:  [3]float64{0.05, 0.05, 0.08},
		},
		Capture: CaptureConfig{
			OutputDir: "screenshots",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
