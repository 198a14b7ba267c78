package key

import "strings"

// Key identifies a keyboard key. Values share the raylib/GLFW key code
// space so they can be handed to a native backend unchanged.
type Key int32

// KeyNone is the sentinel for "no key" / unrecognized name.
const KeyNone Key = 0

// MaxKeys bounds the key code domain. Codes outside [0, MaxKeys) are
// ignored by every state holder in this module.
const MaxKeys = 512

// Printable keys.
const (
	KeyApostrophe   Key = 39
	KeyComma        Key = 44
	KeyMinus        Key = 45
	KeyPeriod       Key = 46
	KeySlash        Key = 47
	KeyZero         Key = 48
	KeyOne          Key = 49
	KeyTwo          Key = 50
	KeyThree        Key = 51
	KeyFour         Key = 52
	KeyFive         Key = 53
	KeySix          Key = 54
	KeySeven        Key = 55
	KeyEight        Key = 56
	KeyNine         Key = 57
	KeySemicolon    Key = 59
	KeyEqual        Key = 61
	KeyA            Key = 65
	KeyB            Key = 66
	KeyC            Key = 67
	KeyD            Key = 68
	KeyE            Key = 69
	KeyF            Key = 70
	KeyG            Key = 71
	KeyH            Key = 72
	KeyI            Key = 73
	KeyJ            Key = 74
	KeyK            Key = 75
	KeyL            Key = 76
	KeyM            Key = 77
	KeyN            Key = 78
	KeyO            Key = 79
	KeyP            Key = 80
	KeyQ            Key = 81
	KeyR            Key = 82
	KeyS            Key = 83
	KeyT            Key = 84
	KeyU            Key = 85
	KeyV            Key = 86
	KeyW            Key = 87
	KeyX            Key = 88
	KeyY            Key = 89
	KeyZ            Key = 90
	KeyLeftBracket  Key = 91
	KeyBackslash    Key = 92
	KeyRightBracket Key = 93
	KeyGrave        Key = 96
	KeySpace        Key = 32
)

// Function and navigation keys.
const (
	KeyEscape      Key = 256
	KeyEnter       Key = 257
	KeyTab         Key = 258
	KeyBackspace   Key = 259
	KeyInsert      Key = 260
	KeyDelete      Key = 261
	KeyRight       Key = 262
	KeyLeft        Key = 263
	KeyDown        Key = 264
	KeyUp          Key = 265
	KeyPageUp      Key = 266
	KeyPageDown    Key = 267
	KeyHome        Key = 268
	KeyEnd         Key = 269
	KeyCapsLock    Key = 280
	KeyScrollLock  Key = 281
	KeyNumLock     Key = 282
	KeyPrintScreen Key = 283
	KeyPause       Key = 284
	KeyF1          Key = 290
	KeyF2          Key = 291
	KeyF3          Key = 292
	KeyF4          Key = 293
	KeyF5          Key = 294
	KeyF6          Key = 295
	KeyF7          Key = 296
	KeyF8          Key = 297
	KeyF9          Key = 298
	KeyF10         Key = 299
	KeyF11         Key = 300
	KeyF12         Key = 301
)

// Modifier and keypad keys.
const (
	KeyLeftShift    Key = 340
	KeyLeftControl  Key = 341
	KeyLeftAlt      Key = 342
	KeyLeftSuper    Key = 343
	KeyRightShift   Key = 344
	KeyRightControl Key = 345
	KeyRightAlt     Key = 346
	KeyRightSuper   Key = 347
	KeyMenu         Key = 348
	KeyKP0          Key = 320
	KeyKP1          Key = 321
	KeyKP2          Key = 322
	KeyKP3          Key = 323
	KeyKP4          Key = 324
	KeyKP5          Key = 325
	KeyKP6          Key = 326
	KeyKP7          Key = 327
	KeyKP8          Key = 328
	KeyKP9          Key = 329
	KeyKPDecimal    Key = 330
	KeyKPDivide     Key = 331
	KeyKPMultiply   Key = 332
	KeyKPSubtract   Key = 333
	KeyKPAdd        Key = 334
	KeyKPEnter      Key = 335
	KeyKPEqual      Key = 336
)

// keyNames maps keys to their canonical wire names. The wire names are the
// strings the input map file format uses; they must round-trip exactly.
var keyNames = map[Key]string{
	KeyApostrophe:   "APOSTROPHE",
	KeyComma:        "COMMA",
	KeyMinus:        "MINUS",
	KeyPeriod:       "PERIOD",
	KeySlash:        "SLASH",
	KeyZero:         "0",
	KeyOne:          "1",
	KeyTwo:          "2",
	KeyThree:        "3",
	KeyFour:         "4",
	KeyFive:         "5",
	KeySix:          "6",
	KeySeven:        "7",
	KeyEight:        "8",
	KeyNine:         "9",
	KeySemicolon:    "SEMICOLON",
	KeyEqual:        "EQUAL",
	KeyA:            "A",
	KeyB:            "B",
	KeyC:            "C",
	KeyD:            "D",
	KeyE:            "E",
	KeyF:            "F",
	KeyG:            "G",
	KeyH:            "H",
	KeyI:            "I",
	KeyJ:            "J",
	KeyK:            "K",
	KeyL:            "L",
	KeyM:            "M",
	KeyN:            "N",
	KeyO:            "O",
	KeyP:            "P",
	KeyQ:            "Q",
	KeyR:            "R",
	KeyS:            "S",
	KeyT:            "T",
	KeyU:            "U",
	KeyV:            "V",
	KeyW:            "W",
	KeyX:            "X",
	KeyY:            "Y",
	KeyZ:            "Z",
	KeyLeftBracket:  "LEFT_BRACKET",
	KeyBackslash:    "BACKSLASH",
	KeyRightBracket: "RIGHT_BRACKET",
	KeyGrave:        "GRAVE",
	KeySpace:        "SPACE",
	KeyEscape:       "ESCAPE",
	KeyEnter:        "ENTER",
	KeyTab:          "TAB",
	KeyBackspace:    "BACKSPACE",
	KeyInsert:       "INSERT",
	KeyDelete:       "DELETE",
	KeyRight:        "RIGHT",
	KeyLeft:         "LEFT",
	KeyDown:         "DOWN",
	KeyUp:           "UP",
	KeyPageUp:       "PAGE_UP",
	KeyPageDown:     "PAGE_DOWN",
	KeyHome:         "HOME",
	KeyEnd:          "END",
	KeyCapsLock:     "CAPS_LOCK",
	KeyScrollLock:   "SCROLL_LOCK",
	KeyNumLock:      "NUM_LOCK",
	KeyPrintScreen:  "PRINT_SCREEN",
	KeyPause:        "PAUSE",
	KeyF1:           "F1",
	KeyF2:           "F2",
	KeyF3:           "F3",
	KeyF4:           "F4",
	KeyF5:           "F5",
	KeyF6:           "F6",
	KeyF7:           "F7",
	KeyF8:           "F8",
	KeyF9:           "F9",
	KeyF10:          "F10",
	KeyF11:          "F11",
	KeyF12:          "F12",
	KeyLeftShift:    "LEFT_SHIFT",
	KeyLeftControl:  "LEFT_CONTROL",
	KeyLeftAlt:      "LEFT_ALT",
	KeyLeftSuper:    "LEFT_SUPER",
	KeyRightShift:   "RIGHT_SHIFT",
	KeyRightControl: "RIGHT_CONTROL",
	KeyRightAlt:     "RIGHT_ALT",
	KeyRightSuper:   "RIGHT_SUPER",
	KeyMenu:         "KB_MENU",
	KeyKP0:          "KP_0",
	KeyKP1:          "KP_1",
	KeyKP2:          "KP_2",
	KeyKP3:          "KP_3",
	KeyKP4:          "KP_4",
	KeyKP5:          "KP_5",
	KeyKP6:          "KP_6",
	KeyKP7:          "KP_7",
	KeyKP8:          "KP_8",
	KeyKP9:          "KP_9",
	KeyKPDecimal:    "KP_DECIMAL",
	KeyKPDivide:     "KP_DIVIDE",
	KeyKPMultiply:   "KP_MULTIPLY",
	KeyKPSubtract:   "KP_SUBTRACT",
	KeyKPAdd:        "KP_ADD",
	KeyKPEnter:      "KP_ENTER",
	KeyKPEqual:      "KP_EQUAL",
}

// nameKeys is the reverse of keyNames, keyed by uppercase wire name.
var nameKeys = func() map[string]Key {
	m := make(map[string]Key, len(keyNames))
	for k, name := range keyNames {
		m[name] = k
	}
	return m
}()

// Valid reports whether the key is inside the supported code domain.
func (k Key) Valid() bool {
	return k > KeyNone && k < MaxKeys
}

// IsModifier reports whether the key is a modifier key (Shift, Control,
// Alt or Super, either side).
func (k Key) IsModifier() bool {
	return k >= KeyLeftShift && k <= KeyRightSuper
}

// IsFunctionKey reports whether the key is one of F1-F12.
func (k Key) IsFunctionKey() bool {
	return k >= KeyF1 && k <= KeyF12
}

// IsArrowKey reports whether the key is an arrow key.
func (k Key) IsArrowKey() bool {
	return k >= KeyRight && k <= KeyUp
}

// String returns the canonical wire name, or "NONE" for KeyNone and
// unknown codes.
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "NONE"
}

// FromName resolves a wire name (case-insensitive, surrounding whitespace
// ignored) to a Key. Returns KeyNone if the name is not recognized.
func FromName(name string) Key {
	name = strings.ToUpper(strings.TrimSpace(name))
	if k, ok := nameKeys[name]; ok {
		return k
	}
	return KeyNone
}
