package gamepad

// Type classifies a detected controller for display purposes. Detection
// itself happens in the native backend; this package only carries the
// naming tables.
type Type uint8

const (
	// TypeGeneric is any controller without a better match. Labels fall
	// back to Xbox-style names.
	TypeGeneric Type = iota
	// TypeXbox is an Xbox-family controller.
	TypeXbox
	// TypePlayStation is a DualShock/DualSense-family controller.
	TypePlayStation
	// TypeSwitch is a Nintendo Switch Pro controller.
	TypeSwitch
)

// String returns a human-readable controller type name.
func (t Type) String() string {
	switch t {
	case TypeXbox:
		return "Xbox"
	case TypePlayStation:
		return "PlayStation"
	case TypeSwitch:
		return "Switch"
	default:
		return "Generic"
	}
}

// xboxLabels is the default (generic) label set.
var xboxLabels = map[Button]string{
	ButtonLeftFaceUp:     "D-Pad Up",
	ButtonLeftFaceRight:  "D-Pad Right",
	ButtonLeftFaceDown:   "D-Pad Down",
	ButtonLeftFaceLeft:   "D-Pad Left",
	ButtonRightFaceUp:    "Y",
	ButtonRightFaceRight: "B",
	ButtonRightFaceDown:  "A",
	ButtonRightFaceLeft:  "X",
	ButtonLeftTrigger1:   "LB",
	ButtonLeftTrigger2:   "LT",
	ButtonRightTrigger1:  "RB",
	ButtonRightTrigger2:  "RT",
	ButtonMiddleLeft:     "View",
	ButtonMiddle:         "Guide",
	ButtonMiddleRight:    "Menu",
	ButtonLeftThumb:      "LS",
	ButtonRightThumb:     "RS",
}

var playstationLabels = map[Button]string{
	ButtonLeftFaceUp:     "D-Pad Up",
	ButtonLeftFaceRight:  "D-Pad Right",
	ButtonLeftFaceDown:   "D-Pad Down",
	ButtonLeftFaceLeft:   "D-Pad Left",
	ButtonRightFaceUp:    "Triangle",
	ButtonRightFaceRight: "Circle",
	ButtonRightFaceDown:  "Cross",
	ButtonRightFaceLeft:  "Square",
	ButtonLeftTrigger1:   "L1",
	ButtonLeftTrigger2:   "L2",
	ButtonRightTrigger1:  "R1",
	ButtonRightTrigger2:  "R2",
	ButtonMiddleLeft:     "Share",
	ButtonMiddle:         "PS",
	ButtonMiddleRight:    "Options",
	ButtonLeftThumb:      "L3",
	ButtonRightThumb:     "R3",
}

var switchLabels = map[Button]string{
	ButtonLeftFaceUp:     "D-Pad Up",
	ButtonLeftFaceRight:  "D-Pad Right",
	ButtonLeftFaceDown:   "D-Pad Down",
	ButtonLeftFaceLeft:   "D-Pad Left",
	ButtonRightFaceUp:    "X",
	ButtonRightFaceRight: "A",
	ButtonRightFaceDown:  "B",
	ButtonRightFaceLeft:  "Y",
	ButtonLeftTrigger1:   "L",
	ButtonLeftTrigger2:   "ZL",
	ButtonRightTrigger1:  "R",
	ButtonRightTrigger2:  "ZR",
	ButtonMiddleLeft:     "Minus",
	ButtonMiddle:         "Home",
	ButtonMiddleRight:    "Plus",
	ButtonLeftThumb:      "LS",
	ButtonRightThumb:     "RS",
}

// Label returns a display label for the button on a generic (Xbox-style)
// controller. Unknown buttons fall back to the wire name.
func (b Button) Label() string {
	return b.LabelFor(TypeGeneric)
}

// LabelFor returns a display label appropriate for the given controller
// type. Unknown buttons fall back to the wire name.
func (b Button) LabelFor(t Type) string {
	var table map[Button]string
	switch t {
	case TypePlayStation:
		table = playstationLabels
	case TypeSwitch:
		table = switchLabels
	default:
		table = xboxLabels
	}
	if label, ok := table[b]; ok {
		return label
	}
	return b.String()
}

// Label returns a display label for the axis ("Left Stick X", "Right
// Trigger"). Unknown axes fall back to the wire name.
func (a Axis) Label() string {
	switch a {
	case AxisLeftX:
		return "Left Stick X"
	case AxisLeftY:
		return "Left Stick Y"
	case AxisRightX:
		return "Right Stick X"
	case AxisRightY:
		return "Right Stick Y"
	case AxisLeftTrigger:
		return "Left Trigger"
	case AxisRightTrigger:
		return "Right Trigger"
	default:
		return a.String()
	}
}
