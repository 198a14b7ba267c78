// Package config loads the input layer's settings file.
//
// Settings live in a small TOML document. A missing file is not an
// error: callers get the defaults. A file that exists but does not parse
// is an error, surfaced as a ParseError.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Settings configures the input layer for an embedding application.
type Settings struct {
	// MapPath is the input map file to load at startup.
	MapPath string `toml:"map_path"`

	// WatchMap reloads the input map when the file changes on disk.
	WatchMap bool `toml:"watch_map"`

	// AxisDeadzone is the default threshold applied when generating axis
	// bindings programmatically. Clamped to [0, 1].
	AxisDeadzone float64 `toml:"axis_deadzone"`

	// ControllerNaming selects the button naming style for binding
	// labels: "generic", "xbox", "playstation" or "switch".
	ControllerNaming string `toml:"controller_naming"`

	// LogLevel sets the zerolog level: "debug", "info", "warn", "error".
	LogLevel string `toml:"log_level"`
}

// Default returns the settings used when no file is present.
func Default() Settings {
	return Settings{
		MapPath:          "input.yaml",
		WatchMap:         false,
		AxisDeadzone:     0.25,
		ControllerNaming: "generic",
		LogLevel:         "info",
	}
}

// ParseError describes a settings file that exists but cannot be parsed.
type ParseError struct {
	// Path is the file that failed to parse.
	Path string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing settings %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error { return e.Err }

// Load reads settings from path. A missing file returns the defaults
// with no error. Unknown fields are ignored; fields absent from the file
// keep their default.
func Load(path string) (Settings, error) {
	s := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, fmt.Errorf("reading settings %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &s); err != nil {
		return Default(), &ParseError{Path: path, Err: err}
	}

	if s.AxisDeadzone < 0 {
		s.AxisDeadzone = 0
	} else if s.AxisDeadzone > 1 {
		s.AxisDeadzone = 1
	}
	return s, nil
}

// DefaultPath returns the conventional settings location,
// <user config dir>/libregnum/input.toml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving config directory: %w", err)
	}
	return filepath.Join(dir, "libregnum", "input.toml"), nil
}
