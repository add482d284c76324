package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file used when SPRINGBALL_CONFIG is not set, relative to the working directory.
const DefaultPath = "config/springball.yaml"

// Window controls the demo window and frame pacing.
type Window struct {
	Width        int32    `json:"width" yaml:"width" toml:"width"`
	Height       int32    `json:"height" yaml:"height" toml:"height"`
	FPS          int32    `json:"fps" yaml:"fps" toml:"fps"`
	Title        string   `json:"title" yaml:"title" toml:"title"`
	Background   [3]uint8 `json:"background" yaml:"background" toml:"background"`
	Resizable    bool     `json:"resizable" yaml:"resizable" toml:"resizable"`
	ShowFPS      bool     `json:"show_fps" yaml:"show_fps" toml:"show_fps"`
	ShowMemAlloc bool     `json:"show_mem_alloc" yaml:"show_mem_alloc" toml:"show_mem_alloc"`
}

// Physics holds space-wide settings.
type Physics struct {
	Gravity    [2]float64 `json:"gravity" yaml:"gravity" toml:"gravity"`
	Iterations uint       `json:"iterations" yaml:"iterations" toml:"iterations"`
}

// Floor describes the V-shaped floor. AngleDeg is the slope of the two inner segments.
type Floor struct {
	AngleDeg float64 `json:"angle_deg" yaml:"angle_deg" toml:"angle_deg"`
	Radius   float64 `json:"radius" yaml:"radius" toml:"radius"`
	Friction float64 `json:"friction" yaml:"friction" toml:"friction"`
}

// Ball describes the single dynamic body.
type Ball struct {
	Mass       float64    `json:"mass" yaml:"mass" toml:"mass"`
	Radius     float64    `json:"radius" yaml:"radius" toml:"radius"`
	Start      [2]float64 `json:"start" yaml:"start" toml:"start"`
	Elasticity float64    `json:"elasticity" yaml:"elasticity" toml:"elasticity"`
}

// Spring holds the damped spring created when the ball attaches to the floor.
// BreakRatio scales stiffness into the maximum impulse the spring survives.
type Spring struct {
	RestLength float64 `json:"rest_length" yaml:"rest_length" toml:"rest_length"`
	Stiffness  float64 `json:"stiffness" yaml:"stiffness" toml:"stiffness"`
	Damping    float64 `json:"damping" yaml:"damping" toml:"damping"`
	BreakRatio float64 `json:"break_ratio" yaml:"break_ratio" toml:"break_ratio"`
}

// Tuning holds the per-keypress deltas of the breakable demo.
type Tuning struct {
	MassStep      float64 `json:"mass_step" yaml:"mass_step" toml:"mass_step"`
	StiffnessStep float64 `json:"stiffness_step" yaml:"stiffness_step" toml:"stiffness_step"`
}

// Config is everything the demos read at startup. Persisted across runs when saved.
type Config struct {
	Window   Window  `json:"window" yaml:"window" toml:"window"`
	Physics  Physics `json:"physics" yaml:"physics" toml:"physics"`
	Floor    Floor   `json:"floor" yaml:"floor" toml:"floor"`
	Ball     Ball    `json:"ball" yaml:"ball" toml:"ball"`
	Spring   Spring  `json:"spring" yaml:"spring" toml:"spring"`
	Tuning   Tuning  `json:"tuning" yaml:"tuning" toml:"tuning"`
	LogPath  string  `json:"log_path" yaml:"log_path" toml:"log_path"`
	FontName string  `json:"font_name,omitempty" yaml:"font_name,omitempty" toml:"font_name,omitempty"`
}

// Default returns the stock scene: a 400x400 window at 30 fps, a 60° V floor and a 10kg ball.
func Default() Config {
	const w, h = 400, 400
	return Config{
		Window: Window{
			Width:      w,
			Height:     h,
			FPS:        30,
			Title:      "springball",
			Background: [3]uint8{55, 55, 55},
			Resizable:  true,
		},
		Physics: Physics{
			Gravity:    [2]float64{0, -900},
			Iterations: 10,
		},
		Floor: Floor{
			AngleDeg: 60,
			Radius:   5,
			Friction: 1,
		},
		Ball: Ball{
			Mass:   10,
			Radius: 30,
			Start:  [2]float64{200, h * 0.8},
		},
		Spring: Spring{
			RestLength: 2,
			Stiffness:  100,
			Damping:    10,
			BreakRatio: 0.5,
		},
		Tuning: Tuning{
			MassStep:      1,
			StiffnessStep: 10,
		},
		LogPath:  "logs/springball.txt",
		FontName: "Arial",
	}
}

// ErrUnknownFormat is returned for config files whose extension is not .yaml, .yml, .toml or .json.
var ErrUnknownFormat = errors.New("unknown config format")

func knownFormat(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".toml", ".json":
		return true
	}
	return false
}

// Load reads the config at path on top of Default(), so keys missing from the file keep their defaults.
// A missing file is not an error. A malformed file returns Default() and the decode error.
// An unknown extension is ErrUnknownFormat whether or not the file exists.
func Load(path string) (Config, error) {
	cfg := Default()
	if !knownFormat(path) {
		return cfg, fmt.Errorf("%w: %s", ErrUnknownFormat, filepath.Ext(path))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := decode(path, data, &cfg); err != nil {
		return Default(), fmt.Errorf("decode config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func decode(path string, data []byte, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, cfg)
	case ".toml":
		_, err := toml.Decode(string(data), cfg)
		return err
	case ".json":
		return json.Unmarshal(data, cfg)
	}
	return fmt.Errorf("%w: %s", ErrUnknownFormat, filepath.Ext(path))
}

// Validate reports the first setting that would make the scene unbuildable.
func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	case c.Window.FPS <= 0:
		return fmt.Errorf("fps must be positive, got %d", c.Window.FPS)
	case c.Ball.Radius <= 0:
		return fmt.Errorf("ball radius must be positive, got %g", c.Ball.Radius)
	case c.Ball.Mass <= 0:
		return fmt.Errorf("ball mass must be positive, got %g", c.Ball.Mass)
	case c.Floor.AngleDeg <= 0 || c.Floor.AngleDeg >= 90:
		return fmt.Errorf("floor angle must be in (0, 90) degrees, got %g", c.Floor.AngleDeg)
	case c.Spring.Stiffness < 0 || c.Spring.BreakRatio < 0:
		return fmt.Errorf("spring stiffness and break ratio must not be negative")
	case c.Spring.Damping < 0 || c.Spring.RestLength < 0:
		return fmt.Errorf("spring damping and rest length must not be negative")
	case c.Tuning.MassStep < 0 || c.Tuning.StiffnessStep < 0:
		return fmt.Errorf("tuning steps must not be negative, got mass %g stiffness %g",
			c.Tuning.MassStep, c.Tuning.StiffnessStep)
	}
	return nil
}

// Save writes cfg to path in the format given by its extension, creating the parent directory if needed.
func Save(path string, cfg Config) error {
	var (
		data []byte
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(cfg)
	case ".toml":
		var b strings.Builder
		err = toml.NewEncoder(&b).Encode(cfg)
		data = []byte(b.String())
	case ".json":
		data, err = json.MarshalIndent(cfg, "", "\t")
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, filepath.Ext(path))
	}
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Open loads path for a demo run. A missing file is written out with Default() so it can be edited.
// A malformed or invalid file, or a failed write, still yields a usable config and comes back in warnings.
// Only ErrUnknownFormat is returned as err.
func Open(path string) (cfg Config, warnings []error, err error) {
	cfg, err = Load(path)
	if errors.Is(err, ErrUnknownFormat) {
		return cfg, nil, err
	}
	if err != nil {
		warnings = append(warnings, fmt.Errorf("%w; using defaults", err))
	}
	if _, statErr := os.Stat(path); os.IsNotExist(statErr) {
		if err := Save(path, Default()); err != nil {
			warnings = append(warnings, fmt.Errorf("write default config %s: %w", path, err))
		}
	}
	return cfg, warnings, nil
}
