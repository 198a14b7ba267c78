package key

import "strings"

// Modifier is a bitmask of modifier key requirements attached to a binding.
type Modifier uint8

const (
	// ModNone indicates no modifier requirement.
	ModNone Modifier = 0

	// ModShift requires a Shift key to be held.
	ModShift Modifier = 1 << iota

	// ModCtrl requires a Control key to be held.
	ModCtrl

	// ModAlt requires an Alt key to be held.
	ModAlt
)

// Has reports whether m contains the given modifier.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// With returns a copy of m with the given modifier added.
func (m Modifier) With(mod Modifier) Modifier {
	return m | mod
}

// Without returns a copy of m with the given modifier removed.
func (m Modifier) Without(mod Modifier) Modifier {
	return m &^ mod
}

// IsEmpty reports whether no modifiers are set.
func (m Modifier) IsEmpty() bool {
	return m == ModNone
}

// String returns a display label like "Ctrl+Shift". Empty for ModNone.
func (m Modifier) String() string {
	if m == ModNone {
		return ""
	}
	var parts []string
	if m.Has(ModCtrl) {
		parts = append(parts, "Ctrl")
	}
	if m.Has(ModAlt) {
		parts = append(parts, "Alt")
	}
	if m.Has(ModShift) {
		parts = append(parts, "Shift")
	}
	return strings.Join(parts, "+")
}

// Names returns the wire names of the set modifiers in canonical order.
// Used by the input map serializer.
func (m Modifier) Names() []string {
	if m == ModNone {
		return nil
	}
	var names []string
	if m.Has(ModShift) {
		names = append(names, "SHIFT")
	}
	if m.Has(ModCtrl) {
		names = append(names, "CTRL")
	}
	if m.Has(ModAlt) {
		names = append(names, "ALT")
	}
	return names
}

// modifierNames maps wire names to modifier bits. Unknown names resolve
// to ModNone so a bad entry in a map file degrades instead of aborting.
var modifierNames = map[string]Modifier{
	"SHIFT": ModShift,
	"CTRL":  ModCtrl,
	"ALT":   ModAlt,
}

// ModifierFromName resolves a single wire name (case-insensitive) to a
// modifier bit. Returns ModNone if the name is not recognized.
func ModifierFromName(name string) Modifier {
	if m, ok := modifierNames[strings.ToUpper(strings.TrimSpace(name))]; ok {
		return m
	}
	return ModNone
}

// ModifiersFromNames combines a list of wire names into one mask,
// ignoring names it does not recognize.
func ModifiersFromNames(names []string) Modifier {
	var m Modifier
	for _, n := range names {
		m = m.With(ModifierFromName(n))
	}
	return m
}

// Keys returns the physical keys that satisfy each set modifier bit.
// Either side of a modifier pair satisfies the requirement.
func (m Modifier) Keys() [][2]Key {
	var pairs [][2]Key
	if m.Has(ModShift) {
		pairs = append(pairs, [2]Key{KeyLeftShift, KeyRightShift})
	}
	if m.Has(ModCtrl) {
		pairs = append(pairs, [2]Key{KeyLeftControl, KeyRightControl})
	}
	if m.Has(ModAlt) {
		pairs = append(pairs, [2]Key{KeyLeftAlt, KeyRightAlt})
	}
	return pairs
}
