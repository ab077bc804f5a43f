// Package config provides configuration loading and access for the animation engines.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all renderer configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Starfield StarfieldConfig `yaml:"starfield"`
	Trail     TrailConfig     `yaml:"trail"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Content   ContentConfig   `yaml:"content"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	TargetFPS int    `yaml:"target_fps"`
	Title     string `yaml:"title"`
}

// StarfieldConfig holds the perspective starfield parameters.
type StarfieldConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Count      int     `yaml:"count"`       // Number of stars, constant for the engine lifetime
	Depth      float64 `yaml:"depth"`       // Far plane; stars respawn at this depth
	Speed      float64 `yaml:"speed"`       // Depth units removed per tick
	Background Color   `yaml:"background"`  // Opaque repaint colour
	TrailColor Color   `yaml:"trail_color"` // Motion segment colour
	TrailAlpha float64 `yaml:"trail_alpha"` // Segment opacity relative to star opacity
	StarColor  Color   `yaml:"star_color"`
	GlowColor  Color   `yaml:"glow_color"`
	SizeScale  float64 `yaml:"size_scale"` // Radius at the near plane
	BlurScale  float64 `yaml:"blur_scale"` // Glow blur per unit of radius
}

// TrailConfig holds the cursor particle trail parameters.
type TrailConfig struct {
	Enabled     bool    `yaml:"enabled"`
	Burst       int     `yaml:"burst"`        // Particles per pointer move
	Jitter      float64 `yaml:"jitter"`       // Max spawn offset per axis
	MaxVelocity float64 `yaml:"max_velocity"` // Max initial speed per axis
	Decay       float64 `yaml:"decay"`        // Life removed per tick
	MinSize     float64 `yaml:"min_size"`
	MaxSize     float64 `yaml:"max_size"`
	Shrink      float64 `yaml:"shrink"` // Size multiplier per tick
	Cap         int     `yaml:"cap"`    // Live particle limit, newest kept
	GlowColor   Color   `yaml:"glow_color"`
	CoreColor   Color   `yaml:"core_color"`
	GlowBlur    float64 `yaml:"glow_blur"`  // Glow blur per unit of size
	CoreScale   float64 `yaml:"core_scale"` // Core radius relative to size
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	PerfWindow  int `yaml:"perf_window"`  // Frames averaged by the perf collector
	LogInterval int `yaml:"log_interval"` // Frames between perf log lines
}

// ContentConfig holds the placeholder page content drawn between the layers.
type ContentConfig struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	FrameTime float64 // Seconds per frame at the target FPS
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Default returns the embedded defaults.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults are invalid: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	cfg.computeDerived()

	return cfg, nil
}

// Validate reports every parameter the engines cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		errs = append(errs, fmt.Errorf("screen size must be positive, got %dx%d", c.Screen.Width, c.Screen.Height))
	}
	if c.Starfield.Count <= 0 {
		errs = append(errs, fmt.Errorf("starfield.count must be positive, got %d", c.Starfield.Count))
	}
	if c.Starfield.Depth <= 0 {
		errs = append(errs, fmt.Errorf("starfield.depth must be positive, got %g", c.Starfield.Depth))
	}
	if c.Starfield.Speed <= 0 {
		errs = append(errs, fmt.Errorf("starfield.speed must be positive, got %g", c.Starfield.Speed))
	}
	if c.Trail.Burst < 0 {
		errs = append(errs, fmt.Errorf("trail.burst must not be negative, got %d", c.Trail.Burst))
	}
	if c.Trail.Cap <= 0 {
		errs = append(errs, fmt.Errorf("trail.cap must be positive, got %d", c.Trail.Cap))
	}
	if c.Trail.Decay <= 0 {
		errs = append(errs, fmt.Errorf("trail.decay must be positive, got %g", c.Trail.Decay))
	}
	if c.Trail.MaxSize < c.Trail.MinSize {
		errs = append(errs, fmt.Errorf("trail.max_size %g is below min_size %g", c.Trail.MaxSize, c.Trail.MinSize))
	}
	return errors.Join(errs...)
}

func (c *Config) computeDerived() {
	if c.Screen.TargetFPS > 0 {
		c.Derived.FrameTime = 1.0 / float64(c.Screen.TargetFPS)
	}
	if c.Telemetry.PerfWindow < 1 {
		c.Telemetry.PerfWindow = 60
	}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
