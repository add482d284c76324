package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load missing file: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("Load missing file = %+v, want defaults", cfg)
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	tests := []struct {
		name string
		file string
		body string
	}{
		{"yaml", "c.yaml", "ball:\n  mass: 25\nspring:\n  stiffness: 300\n"},
		{"yml", "c.yml", "ball:\n  mass: 25\nspring:\n  stiffness: 300\n"},
		{"toml", "c.toml", "[ball]\nmass = 25.0\n\n[spring]\nstiffness = 300.0\n"},
		{"json", "c.json", `{"ball":{"mass":25},"spring":{"stiffness":300}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeFile(t, tt.file, tt.body))
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if cfg.Ball.Mass != 25 {
				t.Fatalf("ball mass = %g, want 25", cfg.Ball.Mass)
			}
			if cfg.Spring.Stiffness != 300 {
				t.Fatalf("stiffness = %g, want 300", cfg.Spring.Stiffness)
			}
			def := Default()
			if cfg.Ball.Radius != def.Ball.Radius || cfg.Spring.Damping != def.Spring.Damping {
				t.Fatalf("unset keys lost their defaults: %+v", cfg)
			}
			if cfg.Window != def.Window {
				t.Fatalf("window = %+v, want %+v", cfg.Window, def.Window)
			}
		})
	}
}

func TestLoadMalformedFallsBack(t *testing.T) {
	cfg, err := Load(writeFile(t, "bad.json", "{not json"))
	if err == nil {
		t.Fatalf("expected decode error")
	}
	if cfg != Default() {
		t.Fatalf("malformed config should fall back to defaults")
	}
}

func TestLoadInvalidValues(t *testing.T) {
	_, err := Load(writeFile(t, "c.yaml", "floor:\n  angle_deg: 95\n"))
	if err == nil {
		t.Fatalf("expected validation error for 95° floor")
	}
}

func TestLoadUnknownExtension(t *testing.T) {
	_, err := Load(writeFile(t, "c.ini", "mass=1"))
	if !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("err = %v, want ErrUnknownFormat", err)
	}
	_, err = Load(filepath.Join(t.TempDir(), "missing.ini"))
	if !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("missing .ini err = %v, want ErrUnknownFormat", err)
	}
}

func TestLoadMemAllocOverlay(t *testing.T) {
	cfg, err := Load(writeFile(t, "c.yaml", "window:\n  show_fps: true\n  show_mem_alloc: true\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.Window.ShowFPS || !cfg.Window.ShowMemAlloc {
		t.Fatalf("window overlays = %+v", cfg.Window)
	}
	if Default().Window.ShowMemAlloc {
		t.Fatalf("memory overlay should be off by default")
	}
}

func TestOpenWritesDefaultsWhenMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "springball.yaml")
	cfg, warnings, err := Open(path)
	if err != nil || len(warnings) != 0 {
		t.Fatalf("Open = %v, warnings %v", err, warnings)
	}
	if cfg != Default() {
		t.Fatalf("Open missing file = %+v, want defaults", cfg)
	}
	written, err := Load(path)
	if err != nil {
		t.Fatalf("Load written defaults: %v", err)
	}
	if written != Default() {
		t.Fatalf("written config = %+v, want defaults", written)
	}
}

func TestOpenFallsBackOnBadFile(t *testing.T) {
	tests := []struct{ name, file, body string }{
		{"malformed", "bad.json", "{not json"},
		{"invalid", "bad.yaml", "floor:\n  angle_deg: 95\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.body)
			cfg, warnings, err := Open(path)
			if err != nil {
				t.Fatalf("Open err = %v, want fallback", err)
			}
			if len(warnings) != 1 || !strings.Contains(warnings[0].Error(), "using defaults") {
				t.Fatalf("warnings = %v", warnings)
			}
			if cfg != Default() {
				t.Fatalf("bad config should fall back to defaults")
			}
			data, _ := os.ReadFile(path)
			if string(data) != tt.body {
				t.Fatalf("existing file was overwritten: %q", data)
			}
		})
	}
}

func TestOpenUnknownFormatIsFatal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.ini")
	if _, _, err := Open(path); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("err = %v, want ErrUnknownFormat", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("nothing should be written for an unknown format")
	}
}

func TestSaveLoadEachFormat(t *testing.T) {
	want := Default()
	want.Ball.Mass = 12
	want.Floor.AngleDeg = 45
	want.Window.Background = [3]uint8{1, 2, 3}
	for _, ext := range []string{".yaml", ".toml", ".json"} {
		path := filepath.Join(t.TempDir(), "sub", "cfg"+ext)
		if err := Save(path, want); err != nil {
			t.Fatalf("Save %s: %v", ext, err)
		}
		got, err := Load(path)
		if err != nil {
			t.Fatalf("Load %s: %v", ext, err)
		}
		if got != want {
			t.Fatalf("%s round trip:\n got %+v\nwant %+v", ext, got, want)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"default", func(*Config) {}, true},
		{"zero width", func(c *Config) { c.Window.Width = 0 }, false},
		{"zero fps", func(c *Config) { c.Window.FPS = 0 }, false},
		{"zero radius", func(c *Config) { c.Ball.Radius = 0 }, false},
		{"zero mass", func(c *Config) { c.Ball.Mass = 0 }, false},
		{"flat floor", func(c *Config) { c.Floor.AngleDeg = 0 }, false},
		{"negative stiffness", func(c *Config) { c.Spring.Stiffness = -1 }, false},
		{"negative damping", func(c *Config) { c.Spring.Damping = -1 }, false},
		{"negative rest length", func(c *Config) { c.Spring.RestLength = -1 }, false},
		{"negative mass step", func(c *Config) { c.Tuning.MassStep = -1 }, false},
		{"negative stiffness step", func(c *Config) { c.Tuning.StiffnessStep = -10 }, false},
		{"zero steps", func(c *Config) { c.Tuning = Tuning{} }, true},
	}
	for _, tt := range tests {
		c := Default()
		tt.mutate(&c)
		if err := c.Validate(); (err == nil) != tt.ok {
			t.Fatalf("%s: Validate() = %v, ok want %v", tt.name, err, tt.ok)
		}
	}
}

func TestShippedConfigMatchesDefault(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", DefaultPath))
	if err != nil {
		t.Fatalf("Load shipped config: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("shipped config drifted from defaults:\n got %+v\nwant %+v", cfg, Default())
	}
}
