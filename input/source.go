package input

import (
	"github.com/copyleft-games/libregnum-input/input/gamepad"
	"github.com/copyleft-games/libregnum-input/input/key"
	"github.com/copyleft-games/libregnum-input/input/mouse"
)

// Source is a pollable input device driver. The kind set is closed:
// keyboard, mouse and gamepad wrappers over a native backend, plus the
// software-driven virtual device in the software package.
//
// A variant implements only the queries it is capable of; embedding
// Unsupported supplies the false/zero defaults for the rest. Poll must be
// called once per frame, before any query for that frame.
type Source interface {
	// Name identifies the source in logs and diagnostics.
	Name() string

	// Enabled reports whether the source participates in polling and
	// aggregation.
	Enabled() bool

	// SetEnabled toggles the source's participation.
	SetEnabled(enabled bool)

	// Priority orders sources inside a manager; higher is queried first.
	Priority() int

	// SetPriority changes the source's priority. A manager re-sorts its
	// source list when a source is added, not when a priority changes.
	SetPriority(priority int)

	// Poll advances one frame of internal state.
	Poll()

	IsKeyPressed(k key.Key) bool
	IsKeyDown(k key.Key) bool
	IsKeyReleased(k key.Key) bool

	IsMouseButtonPressed(b mouse.Button) bool
	IsMouseButtonDown(b mouse.Button) bool
	IsMouseButtonReleased(b mouse.Button) bool
	MousePosition() mouse.Position
	MouseDelta() mouse.Delta

	IsGamepadButtonPressed(index int, b gamepad.Button) bool
	IsGamepadButtonDown(index int, b gamepad.Button) bool
	IsGamepadButtonReleased(index int, b gamepad.Button) bool
	GamepadAxis(index int, a gamepad.Axis) float64
	IsGamepadAvailable(index int) bool
}

// Base carries the attributes every source shares: an immutable name, an
// enabled flag and a priority. Concrete sources embed it by value.
type Base struct {
	name     string
	enabled  bool
	priority int
}

// NewBase returns a Base with the given name, enabled, at priority 0.
func NewBase(name string) Base {
	return Base{name: name, enabled: true}
}

// Name returns the source name set at construction.
func (b *Base) Name() string { return b.name }

// Enabled reports whether the source is enabled.
func (b *Base) Enabled() bool { return b.enabled }

// SetEnabled toggles the source.
func (b *Base) SetEnabled(enabled bool) { b.enabled = enabled }

// Priority returns the source priority.
func (b *Base) Priority() int { return b.priority }

// SetPriority changes the source priority.
func (b *Base) SetPriority(priority int) { b.priority = priority }

// Unsupported provides the default behavior for every Source query a
// variant does not implement: false, zero, or the origin. Embed it so a
// concrete source only spells out the capabilities it has.
type Unsupported struct{}

// Poll is a no-op.
func (Unsupported) Poll() {}

// IsKeyPressed always reports false.
func (Unsupported) IsKeyPressed(key.Key) bool { return false }

// IsKeyDown always reports false.
func (Unsupported) IsKeyDown(key.Key) bool { return false }

// IsKeyReleased always reports false.
func (Unsupported) IsKeyReleased(key.Key) bool { return false }

// IsMouseButtonPressed always reports false.
func (Unsupported) IsMouseButtonPressed(mouse.Button) bool { return false }

// IsMouseButtonDown always reports false.
func (Unsupported) IsMouseButtonDown(mouse.Button) bool { return false }

// IsMouseButtonReleased always reports false.
func (Unsupported) IsMouseButtonReleased(mouse.Button) bool { return false }

// MousePosition always reports the origin.
func (Unsupported) MousePosition() mouse.Position { return mouse.Position{} }

// MouseDelta always reports zero movement.
func (Unsupported) MouseDelta() mouse.Delta { return mouse.Delta{} }

// IsGamepadButtonPressed always reports false.
func (Unsupported) IsGamepadButtonPressed(int, gamepad.Button) bool { return false }

// IsGamepadButtonDown always reports false.
func (Unsupported) IsGamepadButtonDown(int, gamepad.Button) bool { return false }

// IsGamepadButtonReleased always reports false.
func (Unsupported) IsGamepadButtonReleased(int, gamepad.Button) bool { return false }

// GamepadAxis always reports 0.
func (Unsupported) GamepadAxis(int, gamepad.Axis) float64 { return 0 }

// IsGamepadAvailable always reports false.
func (Unsupported) IsGamepadAvailable(int) bool { return false }
