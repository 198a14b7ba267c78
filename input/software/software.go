// Package software implements a fully software-driven input source.
//
// A software source is a virtual device: nothing is read from hardware,
// every key, button and axis is driven through its injection methods.
// It is the seam used by tests, AI players and automation harnesses, which
// drive gameplay purely through PressKey/ReleaseKey/TapKey and friends
// while the game keeps its normal poll-and-query loop.
package software

import (
	"github.com/google/uuid"

	"github.com/copyleft-games/libregnum-input/input"
	"github.com/copyleft-games/libregnum-input/input/gamepad"
	"github.com/copyleft-games/libregnum-input/input/key"
	"github.com/copyleft-games/libregnum-input/input/mouse"
)

// buttonState tracks one key or button through the per-frame transition
// machine.
//
// Pressed edges are staged: an injection marks the edge fresh, the next
// update exposes it for one full frame, the update after clears it.
// Released edges from a direct release call are visible immediately and
// cleared at the next update. A tap arms an automatic release that fires
// one update after the press edge was exposed, so the release is visible
// for exactly one frame too.
type buttonState struct {
	down         bool
	pressed      bool
	released     bool
	pressedFresh bool
	tapPending   bool
	tapArmed     bool
}

// press transitions Up -> Down. A no-op when already down, so duplicate
// press calls cannot produce duplicate press edges.
func (s *buttonState) press() {
	if s.down {
		return
	}
	s.down = true
	s.pressed = true
	s.pressedFresh = true
}

// release transitions Down -> Up. A no-op when already up.
func (s *buttonState) release() {
	if !s.down {
		return
	}
	s.down = false
	s.released = true
}

// tap forces a press edge and schedules the automatic release,
// regardless of current state.
func (s *buttonState) tap() {
	s.down = true
	s.pressed = true
	s.pressedFresh = true
	s.tapPending = true
}

// update advances the state one frame.
func (s *buttonState) update() {
	releasedNow := false
	if s.tapArmed {
		s.down = false
		releasedNow = true
		s.tapArmed = false
	}
	if s.pressedFresh {
		s.pressedFresh = false
	} else {
		s.pressed = false
	}
	s.released = releasedNow
	if s.tapPending {
		s.tapArmed = true
		s.tapPending = false
	}
}

// forceRelease drops all transient state; a held key reports one released
// edge.
func (s *buttonState) forceRelease() {
	wasDown := s.down
	*s = buttonState{}
	if wasDown {
		s.released = true
	}
}

// padState is the virtual state of one gamepad slot.
type padState struct {
	buttons [gamepad.MaxButtons]buttonState
	axes    [gamepad.MaxAxes]float64
}

// Source is a software-driven input source. It implements input.Source;
// every virtual gamepad slot is always available.
type Source struct {
	input.Base

	keys         [key.MaxKeys]buttonState
	mouseButtons [mouse.MaxButtons]buttonState
	mousePos     mouse.Position
	mouseDelta   mouse.Delta
	pendingDelta mouse.Delta
	pads         [gamepad.MaxGamepads]padState
}

// New creates a software source. An empty name gets a generated
// "software-<id>" name so concurrent automation sessions stay
// distinguishable in logs.
func New(name string) *Source {
	if name == "" {
		name = "software-" + uuid.NewString()[:8]
	}
	return &Source{Base: input.NewBase(name)}
}

// Poll advances one frame: the pending mouse delta becomes this frame's
// visible delta, armed taps fire their release, and last frame's edges
// are cleared.
func (s *Source) Poll() {
	s.mouseDelta = s.pendingDelta
	s.pendingDelta = mouse.Delta{}
	for i := range s.keys {
		s.keys[i].update()
	}
	for i := range s.mouseButtons {
		s.mouseButtons[i].update()
	}
	for g := range s.pads {
		for i := range s.pads[g].buttons {
			s.pads[g].buttons[i].update()
		}
	}
}

// PressKey injects a key press. Out-of-range keys are ignored.
func (s *Source) PressKey(k key.Key) {
	if k.Valid() {
		s.keys[k].press()
	}
}

// ReleaseKey injects a key release. Out-of-range keys are ignored.
func (s *Source) ReleaseKey(k key.Key) {
	if k.Valid() {
		s.keys[k].release()
	}
}

// TapKey injects a press immediately followed by an automatic release on
// the next poll after the press is exposed. Out-of-range keys are
// ignored.
func (s *Source) TapKey(k key.Key) {
	if k.Valid() {
		s.keys[k].tap()
	}
}

// PressMouseButton injects a mouse button press.
func (s *Source) PressMouseButton(b mouse.Button) {
	if b.Valid() {
		s.mouseButtons[b].press()
	}
}

// ReleaseMouseButton injects a mouse button release.
func (s *Source) ReleaseMouseButton(b mouse.Button) {
	if b.Valid() {
		s.mouseButtons[b].release()
	}
}

// TapMouseButton injects a click: press now, automatic release one frame
// after the press is exposed.
func (s *Source) TapMouseButton(b mouse.Button) {
	if b.Valid() {
		s.mouseButtons[b].tap()
	}
}

// SetMousePosition moves the virtual pointer to an absolute position
// without contributing to the frame delta.
func (s *Source) SetMousePosition(x, y float64) {
	s.mousePos = mouse.Position{X: x, Y: y}
}

// MoveMouse moves the virtual pointer relatively. The movement
// accumulates into the delta exposed at the next poll.
func (s *Source) MoveMouse(dx, dy float64) {
	s.mousePos.X += dx
	s.mousePos.Y += dy
	s.pendingDelta.X += dx
	s.pendingDelta.Y += dy
}

// PressGamepadButton injects a gamepad button press. Out-of-range
// indices are ignored.
func (s *Source) PressGamepadButton(index int, b gamepad.Button) {
	if gamepad.ValidIndex(index) && b.Valid() {
		s.pads[index].buttons[b].press()
	}
}

// ReleaseGamepadButton injects a gamepad button release.
func (s *Source) ReleaseGamepadButton(index int, b gamepad.Button) {
	if gamepad.ValidIndex(index) && b.Valid() {
		s.pads[index].buttons[b].release()
	}
}

// TapGamepadButton injects a gamepad button tap.
func (s *Source) TapGamepadButton(index int, b gamepad.Button) {
	if gamepad.ValidIndex(index) && b.Valid() {
		s.pads[index].buttons[b].tap()
	}
}

// SetGamepadAxis stores an axis value, clamped to [-1, 1]. No edge
// detection applies to axes. Out-of-range indices are ignored.
func (s *Source) SetGamepadAxis(index int, a gamepad.Axis, value float64) {
	if !gamepad.ValidIndex(index) || !a.Valid() {
		return
	}
	if value > 1 {
		value = 1
	} else if value < -1 {
		value = -1
	}
	s.pads[index].axes[a] = value
}

// ClearAll force-releases every held key and button, reporting a released
// edge for each, and zeroes mouse deltas and gamepad axes. Automation
// harnesses call this at session end so no virtual input stays stuck.
func (s *Source) ClearAll() {
	for i := range s.keys {
		s.keys[i].forceRelease()
	}
	for i := range s.mouseButtons {
		s.mouseButtons[i].forceRelease()
	}
	for g := range s.pads {
		for i := range s.pads[g].buttons {
			s.pads[g].buttons[i].forceRelease()
		}
		for i := range s.pads[g].axes {
			s.pads[g].axes[i] = 0
		}
	}
	s.mouseDelta = mouse.Delta{}
	s.pendingDelta = mouse.Delta{}
}

// IsKeyPressed reports whether the key's press edge is visible this
// frame.
func (s *Source) IsKeyPressed(k key.Key) bool {
	return k.Valid() && s.keys[k].pressed
}

// IsKeyDown reports whether the key is held.
func (s *Source) IsKeyDown(k key.Key) bool {
	return k.Valid() && s.keys[k].down
}

// IsKeyReleased reports whether the key's release edge is visible this
// frame.
func (s *Source) IsKeyReleased(k key.Key) bool {
	return k.Valid() && s.keys[k].released
}

// IsMouseButtonPressed reports whether the button's press edge is visible
// this frame.
func (s *Source) IsMouseButtonPressed(b mouse.Button) bool {
	return b.Valid() && s.mouseButtons[b].pressed
}

// IsMouseButtonDown reports whether the button is held.
func (s *Source) IsMouseButtonDown(b mouse.Button) bool {
	return b.Valid() && s.mouseButtons[b].down
}

// IsMouseButtonReleased reports whether the button's release edge is
// visible this frame.
func (s *Source) IsMouseButtonReleased(b mouse.Button) bool {
	return b.Valid() && s.mouseButtons[b].released
}

// MousePosition returns the virtual pointer position.
func (s *Source) MousePosition() mouse.Position { return s.mousePos }

// MouseDelta returns the movement committed at the last poll.
func (s *Source) MouseDelta() mouse.Delta { return s.mouseDelta }

// IsGamepadButtonPressed reports whether the button's press edge is
// visible this frame.
func (s *Source) IsGamepadButtonPressed(index int, b gamepad.Button) bool {
	return gamepad.ValidIndex(index) && b.Valid() && s.pads[index].buttons[b].pressed
}

// IsGamepadButtonDown reports whether the button is held.
func (s *Source) IsGamepadButtonDown(index int, b gamepad.Button) bool {
	return gamepad.ValidIndex(index) && b.Valid() && s.pads[index].buttons[b].down
}

// IsGamepadButtonReleased reports whether the button's release edge is
// visible this frame.
func (s *Source) IsGamepadButtonReleased(index int, b gamepad.Button) bool {
	return gamepad.ValidIndex(index) && b.Valid() && s.pads[index].buttons[b].released
}

// GamepadAxis returns the stored axis value, 0 for out-of-range indices.
func (s *Source) GamepadAxis(index int, a gamepad.Axis) float64 {
	if !gamepad.ValidIndex(index) || !a.Valid() {
		return 0
	}
	return s.pads[index].axes[a]
}

// IsGamepadAvailable reports true for every valid slot; the virtual
// device is always present.
func (s *Source) IsGamepadAvailable(index int) bool {
	return gamepad.ValidIndex(index)
}
