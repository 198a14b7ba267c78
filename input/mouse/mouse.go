// Package mouse defines mouse button codes and the screen position value
// type shared by the input layer. Button values match raylib's mouse
// button enum; each has a canonical wire name used by the input map file
// format.
package mouse

import "strings"

// Button identifies a mouse button.
type Button int32

// MaxButtons bounds the button code domain. Codes outside [0, MaxButtons)
// are ignored by every state holder in this module.
const MaxButtons = 8

const (
	// ButtonLeft is the primary button.
	ButtonLeft Button = 0
	// ButtonRight is the secondary button.
	ButtonRight Button = 1
	// ButtonMiddle is the scroll wheel button.
	ButtonMiddle Button = 2
	// ButtonSide is the first extra side button.
	ButtonSide Button = 3
	// ButtonExtra is the second extra side button.
	ButtonExtra Button = 4
	// ButtonForward is the forward navigation button.
	ButtonForward Button = 5
	// ButtonBack is the back navigation button.
	ButtonBack Button = 6
)

// buttonNames maps buttons to their canonical wire names.
var buttonNames = map[Button]string{
	ButtonLeft:    "LEFT",
	ButtonRight:   "RIGHT",
	ButtonMiddle:  "MIDDLE",
	ButtonSide:    "SIDE",
	ButtonExtra:   "EXTRA",
	ButtonForward: "FORWARD",
	ButtonBack:    "BACK",
}

var nameButtons = func() map[string]Button {
	m := make(map[string]Button, len(buttonNames))
	for b, name := range buttonNames {
		m[name] = b
	}
	return m
}()

// Valid reports whether the button is inside the supported code domain.
func (b Button) Valid() bool {
	return b >= 0 && b < MaxButtons
}

// String returns the canonical wire name, or "NONE" for unknown codes.
func (b Button) String() string {
	if name, ok := buttonNames[b]; ok {
		return name
	}
	return "NONE"
}

// ButtonFromName resolves a wire name (case-insensitive) to a Button.
// Returns -1 if the name is not recognized.
func ButtonFromName(name string) Button {
	if b, ok := nameButtons[strings.ToUpper(strings.TrimSpace(name))]; ok {
		return b
	}
	return -1
}

// Position is a screen coordinate in window space.
type Position struct {
	X float64
	Y float64
}

// IsZero reports whether the position is exactly the origin. The manager's
// first-priority-wins position rule treats the origin as "no data".
func (p Position) IsZero() bool {
	return p.X == 0 && p.Y == 0
}

// Delta is a relative mouse movement accumulated over one frame.
type Delta struct {
	X float64
	Y float64
}

// Add returns the component-wise sum of two deltas.
func (d Delta) Add(other Delta) Delta {
	return Delta{X: d.X + other.X, Y: d.Y + other.Y}
}
