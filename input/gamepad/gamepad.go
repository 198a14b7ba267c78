// Package gamepad defines gamepad button and axis codes for the input
// layer, plus the per-controller-type button naming tables used for
// binding display labels.
//
// Button and axis values match raylib's gamepad enums. Each has a
// canonical wire name ("LEFT_FACE_UP", "LEFT_X") used by the input map
// file format.
package gamepad

import "strings"

// MaxGamepads is the number of gamepad slots. Indices outside
// [0, MaxGamepads) are rejected or ignored throughout the input layer.
const MaxGamepads = 4

// MaxButtons bounds the button code domain.
const MaxButtons = 32

// MaxAxes bounds the axis code domain.
const MaxAxes = 8

// Button identifies a gamepad button.
type Button int32

const (
	// ButtonUnknown is the sentinel for unrecognized button names.
	ButtonUnknown Button = 0
	// ButtonLeftFaceUp is d-pad up.
	ButtonLeftFaceUp Button = 1
	// ButtonLeftFaceRight is d-pad right.
	ButtonLeftFaceRight Button = 2
	// ButtonLeftFaceDown is d-pad down.
	ButtonLeftFaceDown Button = 3
	// ButtonLeftFaceLeft is d-pad left.
	ButtonLeftFaceLeft Button = 4
	// ButtonRightFaceUp is the top action button (Y on Xbox pads).
	ButtonRightFaceUp Button = 5
	// ButtonRightFaceRight is the right action button (B on Xbox pads).
	ButtonRightFaceRight Button = 6
	// ButtonRightFaceDown is the bottom action button (A on Xbox pads).
	ButtonRightFaceDown Button = 7
	// ButtonRightFaceLeft is the left action button (X on Xbox pads).
	ButtonRightFaceLeft Button = 8
	// ButtonLeftTrigger1 is the left shoulder bumper.
	ButtonLeftTrigger1 Button = 9
	// ButtonLeftTrigger2 is the left trigger (digital).
	ButtonLeftTrigger2 Button = 10
	// ButtonRightTrigger1 is the right shoulder bumper.
	ButtonRightTrigger1 Button = 11
	// ButtonRightTrigger2 is the right trigger (digital).
	ButtonRightTrigger2 Button = 12
	// ButtonMiddleLeft is the select/back button.
	ButtonMiddleLeft Button = 13
	// ButtonMiddle is the vendor button.
	ButtonMiddle Button = 14
	// ButtonMiddleRight is the start button.
	ButtonMiddleRight Button = 15
	// ButtonLeftThumb is the left stick click.
	ButtonLeftThumb Button = 16
	// ButtonRightThumb is the right stick click.
	ButtonRightThumb Button = 17
)

// Axis identifies a gamepad analog axis.
type Axis int32

const (
	// AxisLeftX is the left stick horizontal axis.
	AxisLeftX Axis = 0
	// AxisLeftY is the left stick vertical axis.
	AxisLeftY Axis = 1
	// AxisRightX is the right stick horizontal axis.
	AxisRightX Axis = 2
	// AxisRightY is the right stick vertical axis.
	AxisRightY Axis = 3
	// AxisLeftTrigger is the left analog trigger.
	AxisLeftTrigger Axis = 4
	// AxisRightTrigger is the right analog trigger.
	AxisRightTrigger Axis = 5
)

// buttonNames maps buttons to their canonical wire names.
var buttonNames = map[Button]string{
	ButtonUnknown:        "UNKNOWN",
	ButtonLeftFaceUp:     "LEFT_FACE_UP",
	ButtonLeftFaceRight:  "LEFT_FACE_RIGHT",
	ButtonLeftFaceDown:   "LEFT_FACE_DOWN",
	ButtonLeftFaceLeft:   "LEFT_FACE_LEFT",
	ButtonRightFaceUp:    "RIGHT_FACE_UP",
	ButtonRightFaceRight: "RIGHT_FACE_RIGHT",
	ButtonRightFaceDown:  "RIGHT_FACE_DOWN",
	ButtonRightFaceLeft:  "RIGHT_FACE_LEFT",
	ButtonLeftTrigger1:   "LEFT_TRIGGER_1",
	ButtonLeftTrigger2:   "LEFT_TRIGGER_2",
	ButtonRightTrigger1:  "RIGHT_TRIGGER_1",
	ButtonRightTrigger2:  "RIGHT_TRIGGER_2",
	ButtonMiddleLeft:     "MIDDLE_LEFT",
	ButtonMiddle:         "MIDDLE",
	ButtonMiddleRight:    "MIDDLE_RIGHT",
	ButtonLeftThumb:      "LEFT_THUMB",
	ButtonRightThumb:     "RIGHT_THUMB",
}

var nameButtons = func() map[string]Button {
	m := make(map[string]Button, len(buttonNames))
	for b, name := range buttonNames {
		m[name] = b
	}
	return m
}()

// axisNames maps axes to their canonical wire names.
var axisNames = map[Axis]string{
	AxisLeftX:        "LEFT_X",
	AxisLeftY:        "LEFT_Y",
	AxisRightX:       "RIGHT_X",
	AxisRightY:       "RIGHT_Y",
	AxisLeftTrigger:  "LEFT_TRIGGER",
	AxisRightTrigger: "RIGHT_TRIGGER",
}

var nameAxes = func() map[string]Axis {
	m := make(map[string]Axis, len(axisNames))
	for a, name := range axisNames {
		m[name] = a
	}
	return m
}()

// ValidIndex reports whether the gamepad slot index is in range.
func ValidIndex(index int) bool {
	return index >= 0 && index < MaxGamepads
}

// Valid reports whether the button is inside the supported code domain.
func (b Button) Valid() bool {
	return b >= 0 && b < MaxButtons
}

// String returns the canonical wire name, or "UNKNOWN" for codes with no
// name.
func (b Button) String() string {
	if name, ok := buttonNames[b]; ok {
		return name
	}
	return "UNKNOWN"
}

// ButtonFromName resolves a wire name (case-insensitive) to a Button.
// Returns ButtonUnknown if the name is not recognized.
func ButtonFromName(name string) Button {
	if b, ok := nameButtons[strings.ToUpper(strings.TrimSpace(name))]; ok {
		return b
	}
	return ButtonUnknown
}

// Valid reports whether the axis is inside the supported code domain.
func (a Axis) Valid() bool {
	return a >= 0 && a < MaxAxes
}

// String returns the canonical wire name, or "UNKNOWN" for codes with no
// name.
func (a Axis) String() string {
	if name, ok := axisNames[a]; ok {
		return name
	}
	return "UNKNOWN"
}

// AxisFromName resolves a wire name (case-insensitive) to an Axis.
// Returns -1 if the name is not recognized.
func AxisFromName(name string) Axis {
	if a, ok := nameAxes[strings.ToUpper(strings.TrimSpace(name))]; ok {
		return a
	}
	return -1
}
