package bind

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/copyleft-games/libregnum-input/input/gamepad"
	"github.com/copyleft-games/libregnum-input/input/key"
	"github.com/copyleft-games/libregnum-input/input/mouse"
)

// defaultThreshold applies to axis binding entries with no threshold
// field.
const defaultThreshold = 0.5

// Map is a named set of actions. Action names are unique: adding an
// action under an existing name replaces the previous one.
type Map struct {
	actions map[string]*Action
}

// NewMap creates an empty input map.
func NewMap() *Map {
	return &Map{actions: make(map[string]*Action)}
}

// Add inserts an action, replacing any existing action with the same
// name. A nil action is logged and ignored.
func (m *Map) Add(a *Action) {
	if a == nil {
		log.Warn().Msg("bind: ignoring nil action")
		return
	}
	m.actions[a.Name()] = a
}

// Get returns the action with the given name, or nil.
func (m *Map) Get(name string) *Action {
	return m.actions[name]
}

// Remove deletes the action with the given name, reporting whether it
// existed.
func (m *Map) Remove(name string) bool {
	if _, ok := m.actions[name]; !ok {
		return false
	}
	delete(m.actions, name)
	return true
}

// Len returns the number of actions.
func (m *Map) Len() int { return len(m.actions) }

// Names returns all action names, sorted for stable display. The
// serialized document does not share this ordering.
func (m *Map) Names() []string {
	names := make([]string, 0, len(m.actions))
	for name := range m.actions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clear removes all actions.
func (m *Map) Clear() {
	m.actions = make(map[string]*Action)
}

// mapDoc is the persisted document shape.
type mapDoc struct {
	Actions map[string]actionDoc `yaml:"actions"`
}

type actionDoc struct {
	Bindings []bindingDoc `yaml:"bindings"`
}

type bindingDoc struct {
	Type      string   `yaml:"type"`
	Key       string   `yaml:"key,omitempty"`
	Button    string   `yaml:"button,omitempty"`
	Gamepad   *int     `yaml:"gamepad,omitempty"`
	Axis      string   `yaml:"axis,omitempty"`
	Threshold *float64 `yaml:"threshold,omitempty"`
	Positive  *bool    `yaml:"positive,omitempty"`
	Modifiers []string `yaml:"modifiers,omitempty"`
}

// Load replaces the map's contents with the document at path. The map is
// cleared before anything is read: on failure it is left empty, not in
// its previous state.
//
// Fatal failures return a *LoadError wrapping ErrMapNotFound,
// ErrMalformed or ErrMissingActions. Binding entries with an
// unrecognized type are skipped with a warning; unknown key, button and
// axis names resolve to their sentinel values and the load continues.
func (m *Map) Load(path string) error {
	m.Clear()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &LoadError{Path: path, Code: CodeIO, Err: fmt.Errorf("%w: %v", ErrMapNotFound, err)}
		}
		return &LoadError{Path: path, Code: CodeIO, Err: err}
	}

	var doc mapDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return &LoadError{Path: path, Code: CodeParse, Err: fmt.Errorf("%w: %v", ErrMalformed, err)}
	}
	if doc.Actions == nil {
		return &LoadError{Path: path, Code: CodeFormat, Err: ErrMissingActions}
	}

	for name, ad := range doc.Actions {
		action := NewAction(name)
		for i, bd := range ad.Bindings {
			b, ok := decodeBinding(bd)
			if !ok {
				log.Warn().
					Str("path", path).
					Str("action", name).
					Int("entry", i).
					Str("type", bd.Type).
					Msg("bind: skipping binding entry")
				continue
			}
			action.AddBinding(b)
		}
		m.Add(action)
	}
	return nil
}

// decodeBinding builds a Binding from one document entry. Returns false
// for entries that cannot be represented at all (unrecognized type,
// out-of-range gamepad index).
func decodeBinding(bd bindingDoc) (Binding, bool) {
	switch bd.Type {
	case "keyboard":
		return NewKey(key.FromName(bd.Key), key.ModifiersFromNames(bd.Modifiers)), true
	case "mouse_button":
		return NewMouseButton(mouse.ButtonFromName(bd.Button), key.ModifiersFromNames(bd.Modifiers)), true
	case "gamepad_button":
		b, err := NewGamepadButton(gamepadIndex(bd.Gamepad), gamepad.ButtonFromName(bd.Button))
		return b, err == nil
	case "gamepad_axis":
		threshold := defaultThreshold
		if bd.Threshold != nil {
			threshold = *bd.Threshold
		}
		positive := true
		if bd.Positive != nil {
			positive = *bd.Positive
		}
		b, err := NewGamepadAxis(gamepadIndex(bd.Gamepad), gamepad.AxisFromName(bd.Axis), threshold, positive)
		return b, err == nil
	default:
		return Binding{}, false
	}
}

// gamepadIndex unwraps an optional gamepad field, defaulting to slot 0.
func gamepadIndex(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

// encodeBinding converts a Binding to its document entry.
func encodeBinding(b Binding) bindingDoc {
	switch b.Kind() {
	case KindKeyboard:
		return bindingDoc{
			Type:      "keyboard",
			Key:       b.Key().String(),
			Modifiers: b.Modifiers().Names(),
		}
	case KindMouseButton:
		return bindingDoc{
			Type:      "mouse_button",
			Button:    b.MouseButton().String(),
			Modifiers: b.Modifiers().Names(),
		}
	case KindGamepadButton:
		idx := b.GamepadIndex()
		return bindingDoc{
			Type:    "gamepad_button",
			Gamepad: &idx,
			Button:  b.GamepadButton().String(),
		}
	default:
		idx := b.GamepadIndex()
		threshold := b.Threshold()
		positive := b.Positive()
		return bindingDoc{
			Type:      "gamepad_axis",
			Gamepad:   &idx,
			Axis:      b.GamepadAxis().String(),
			Threshold: &threshold,
			Positive:  &positive,
		}
	}
}

// Save writes the map to path in the persisted document shape, creating
// parent directories as needed. The write goes through a temp file and
// rename. Actions serialize in map iteration order, which is not stable
// across runs.
func (m *Map) Save(path string) error {
	doc := mapDoc{Actions: make(map[string]actionDoc, len(m.actions))}
	for name, action := range m.actions {
		ad := actionDoc{Bindings: make([]bindingDoc, 0, len(action.bindings))}
		for _, b := range action.bindings {
			ad.Bindings = append(ad.Bindings, encodeBinding(b))
		}
		doc.Actions[name] = ad
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshaling input map: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating input map directory: %w", err)
	}

	tempPath := path + ".tmp"
	if err := os.WriteFile(tempPath, data, 0o644); err != nil {
		return fmt.Errorf("writing input map: %w", err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("renaming input map: %w", err)
	}
	return nil
}
