package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if s != Default() {
		t.Errorf("got %+v, want defaults", s)
	}
}

func TestLoadFields(t *testing.T) {
	doc := `
map_path = "bindings/game.yaml"
watch_map = true
axis_deadzone = 0.4
controller_naming = "playstation"
log_level = "debug"
`
	path := filepath.Join(t.TempDir(), "input.toml")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if s.MapPath != "bindings/game.yaml" {
		t.Errorf("MapPath = %q", s.MapPath)
	}
	if !s.WatchMap {
		t.Error("WatchMap should be true")
	}
	if s.AxisDeadzone != 0.4 {
		t.Errorf("AxisDeadzone = %v", s.AxisDeadzone)
	}
	if s.ControllerNaming != "playstation" {
		t.Errorf("ControllerNaming = %q", s.ControllerNaming)
	}
	if s.LogLevel != "debug" {
		t.Errorf("LogLevel = %q", s.LogLevel)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	doc := `watch_map = true` + "\n"
	path := filepath.Join(t.TempDir(), "input.toml")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if !s.WatchMap {
		t.Error("WatchMap should be set from file")
	}
	if s.MapPath != Default().MapPath {
		t.Errorf("MapPath = %q, want default %q", s.MapPath, Default().MapPath)
	}
	if s.LogLevel != Default().LogLevel {
		t.Errorf("LogLevel = %q, want default %q", s.LogLevel, Default().LogLevel)
	}
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.toml")
	if err := os.WriteFile(path, []byte("map_path = [unterminated\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("got %v, want *ParseError", err)
	}
	if parseErr.Path != path {
		t.Errorf("ParseError.Path = %q, want %q", parseErr.Path, path)
	}
}

func TestLoadDeadzoneClamped(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want float64
	}{
		{"below range", "-0.5", 0},
		{"above range", "2.0", 1},
		{"in range", "0.15", 0.15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "input.toml")
			doc := "axis_deadzone = " + tt.in + "\n"
			if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
				t.Fatal(err)
			}

			s, err := Load(path)
			if err != nil {
				t.Fatal(err)
			}
			if s.AxisDeadzone != tt.want {
				t.Errorf("AxisDeadzone = %v, want %v", s.AxisDeadzone, tt.want)
			}
		})
	}
}
