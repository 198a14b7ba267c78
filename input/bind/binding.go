package bind

import (
	"fmt"
	"strings"

	"github.com/copyleft-games/libregnum-input/input"
	"github.com/copyleft-games/libregnum-input/input/gamepad"
	"github.com/copyleft-games/libregnum-input/input/key"
	"github.com/copyleft-games/libregnum-input/input/mouse"
)

// Kind discriminates the four binding variants.
type Kind uint8

const (
	// KindKeyboard binds a keyboard key, optionally behind modifiers.
	KindKeyboard Kind = iota
	// KindMouseButton binds a mouse button, optionally behind modifiers.
	KindMouseButton
	// KindGamepadButton binds a button on one gamepad slot.
	KindGamepadButton
	// KindGamepadAxis binds an analog axis crossing a threshold in one
	// direction.
	KindGamepadAxis
)

// String returns the binding kind's wire name.
func (k Kind) String() string {
	switch k {
	case KindKeyboard:
		return "keyboard"
	case KindMouseButton:
		return "mouse_button"
	case KindGamepadButton:
		return "gamepad_button"
	case KindGamepadAxis:
		return "gamepad_axis"
	default:
		return "unknown"
	}
}

// Binding is an immutable value describing one physical trigger for an
// action. Copy it freely; it has no identity.
type Binding struct {
	kind          Kind
	key           key.Key
	mouseButton   mouse.Button
	gamepadIndex  int
	gamepadButton gamepad.Button
	gamepadAxis   gamepad.Axis
	threshold     float64
	positive      bool
	modifiers     key.Modifier
}

// NewKey creates a keyboard binding. Pass key.ModNone for an unmodified
// key.
func NewKey(k key.Key, mods key.Modifier) Binding {
	return Binding{
		kind:         KindKeyboard,
		key:          k,
		modifiers:    mods,
		gamepadIndex: -1,
	}
}

// NewMouseButton creates a mouse button binding.
func NewMouseButton(b mouse.Button, mods key.Modifier) Binding {
	return Binding{
		kind:         KindMouseButton,
		mouseButton:  b,
		modifiers:    mods,
		gamepadIndex: -1,
	}
}

// NewGamepadButton creates a gamepad button binding. Fails with
// ErrInvalidGamepad when the slot index is outside [0, MaxGamepads).
func NewGamepadButton(index int, b gamepad.Button) (Binding, error) {
	if !gamepad.ValidIndex(index) {
		return Binding{}, fmt.Errorf("gamepad button binding: index %d: %w", index, ErrInvalidGamepad)
	}
	return Binding{
		kind:          KindGamepadButton,
		gamepadIndex:  index,
		gamepadButton: b,
	}, nil
}

// NewGamepadAxis creates a gamepad axis binding. The threshold is clamped
// to [0, 1]; positive selects which half of the axis range triggers.
// Fails with ErrInvalidGamepad when the slot index is outside
// [0, MaxGamepads).
func NewGamepadAxis(index int, a gamepad.Axis, threshold float64, positive bool) (Binding, error) {
	if !gamepad.ValidIndex(index) {
		return Binding{}, fmt.Errorf("gamepad axis binding: index %d: %w", index, ErrInvalidGamepad)
	}
	if threshold < 0 {
		threshold = 0
	} else if threshold > 1 {
		threshold = 1
	}
	return Binding{
		kind:         KindGamepadAxis,
		gamepadIndex: index,
		gamepadAxis:  a,
		threshold:    threshold,
		positive:     positive,
	}, nil
}

// Kind returns the binding variant.
func (b Binding) Kind() Kind { return b.kind }

// Key returns the bound key for keyboard bindings.
func (b Binding) Key() key.Key { return b.key }

// MouseButton returns the bound button for mouse bindings.
func (b Binding) MouseButton() mouse.Button { return b.mouseButton }

// GamepadIndex returns the gamepad slot for gamepad bindings, -1 for
// keyboard and mouse bindings.
func (b Binding) GamepadIndex() int { return b.gamepadIndex }

// GamepadButton returns the bound button for gamepad button bindings.
func (b Binding) GamepadButton() gamepad.Button { return b.gamepadButton }

// GamepadAxis returns the bound axis for gamepad axis bindings.
func (b Binding) GamepadAxis() gamepad.Axis { return b.gamepadAxis }

// Threshold returns the activation threshold for axis bindings.
func (b Binding) Threshold() float64 { return b.threshold }

// Positive reports which direction of the axis range triggers an axis
// binding.
func (b Binding) Positive() bool { return b.positive }

// Modifiers returns the modifier requirement for keyboard and mouse
// bindings. Gamepad bindings ignore modifiers.
func (b Binding) Modifiers() key.Modifier { return b.modifiers }

// modifiersHeld reports whether every required modifier has one of its
// physical keys held. Either side of a pair satisfies the requirement.
func (b Binding) modifiersHeld(m *input.Manager) bool {
	for _, pair := range b.modifiers.Keys() {
		if !m.IsKeyDown(pair[0]) && !m.IsKeyDown(pair[1]) {
			return false
		}
	}
	return true
}

// axisPast reports whether the axis is past the threshold in the bound
// direction.
func (b Binding) axisPast(m *input.Manager) bool {
	v := m.GamepadAxis(b.gamepadIndex, b.gamepadAxis)
	if b.positive {
		return v >= b.threshold
	}
	return v <= -b.threshold
}

// IsPressed reports whether the binding's trigger went active this frame.
// For axis bindings there is no edge tracking; "pressed" is a level
// check, true whenever the axis is past the threshold.
func (b Binding) IsPressed(m *input.Manager) bool {
	switch b.kind {
	case KindKeyboard:
		return b.modifiersHeld(m) && m.IsKeyPressed(b.key)
	case KindMouseButton:
		return b.modifiersHeld(m) && m.IsMouseButtonPressed(b.mouseButton)
	case KindGamepadButton:
		return m.IsGamepadButtonPressed(b.gamepadIndex, b.gamepadButton)
	case KindGamepadAxis:
		return b.axisPast(m)
	}
	return false
}

// IsDown reports whether the binding's trigger is currently active.
func (b Binding) IsDown(m *input.Manager) bool {
	switch b.kind {
	case KindKeyboard:
		return b.modifiersHeld(m) && m.IsKeyDown(b.key)
	case KindMouseButton:
		return b.modifiersHeld(m) && m.IsMouseButtonDown(b.mouseButton)
	case KindGamepadButton:
		return m.IsGamepadButtonDown(b.gamepadIndex, b.gamepadButton)
	case KindGamepadAxis:
		return b.axisPast(m)
	}
	return false
}

// IsReleased reports whether the binding's trigger went inactive this
// frame. For axis bindings this is a level check: true whenever the axis
// is below the threshold.
func (b Binding) IsReleased(m *input.Manager) bool {
	switch b.kind {
	case KindKeyboard:
		return b.modifiersHeld(m) && m.IsKeyReleased(b.key)
	case KindMouseButton:
		return b.modifiersHeld(m) && m.IsMouseButtonReleased(b.mouseButton)
	case KindGamepadButton:
		return m.IsGamepadButtonReleased(b.gamepadIndex, b.gamepadButton)
	case KindGamepadAxis:
		return !b.axisPast(m)
	}
	return false
}

// AxisValue returns the binding's analog response. Axis bindings report
// the signed axis value when it is in the bound direction and 0
// otherwise; digital bindings report 1 when down, 0 otherwise.
func (b Binding) AxisValue(m *input.Manager) float64 {
	if b.kind == KindGamepadAxis {
		v := m.GamepadAxis(b.gamepadIndex, b.gamepadAxis)
		if b.positive && v > 0 {
			return v
		}
		if !b.positive && v < 0 {
			return v
		}
		return 0
	}
	if b.IsDown(m) {
		return 1
	}
	return 0
}

// Label returns a human-readable description using generic (Xbox-style)
// gamepad names: "Ctrl+Space", "Mouse Left", "Gamepad0 A".
func (b Binding) Label() string {
	return b.LabelFor(gamepad.TypeGeneric)
}

// LabelFor returns a human-readable description with gamepad button
// names appropriate for the given controller type.
func (b Binding) LabelFor(t gamepad.Type) string {
	switch b.kind {
	case KindKeyboard:
		return b.prefixModifiers(displayName(b.key.String()))
	case KindMouseButton:
		return b.prefixModifiers("Mouse " + displayName(b.mouseButton.String()))
	case KindGamepadButton:
		return fmt.Sprintf("Gamepad%d %s", b.gamepadIndex, b.gamepadButton.LabelFor(t))
	case KindGamepadAxis:
		dir := "+"
		if !b.positive {
			dir = "-"
		}
		return fmt.Sprintf("Gamepad%d %s%s", b.gamepadIndex, b.gamepadAxis.Label(), dir)
	}
	return "Unknown"
}

// prefixModifiers prepends the modifier chain to a label.
func (b Binding) prefixModifiers(label string) string {
	if b.modifiers.IsEmpty() {
		return label
	}
	return b.modifiers.String() + "+" + label
}

// displayName turns a wire name like "LEFT_SHIFT" into "Left Shift".
func displayName(wire string) string {
	words := strings.Split(strings.ToLower(wire), "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
