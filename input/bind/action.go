package bind

import (
	"math"

	"github.com/rs/zerolog/log"

	"github.com/copyleft-games/libregnum-input/input"
)

// Action is a named group of bindings. Any binding can trigger the
// action; the analog value is the strongest response among them.
type Action struct {
	name     string
	bindings []Binding
}

// NewAction creates an empty action with the given name.
func NewAction(name string) *Action {
	return &Action{name: name}
}

// Name returns the action name set at construction.
func (a *Action) Name() string { return a.name }

// Bindings returns the action's bindings in insertion order. The returned
// slice is a copy.
func (a *Action) Bindings() []Binding {
	out := make([]Binding, len(a.bindings))
	copy(out, a.bindings)
	return out
}

// BindingCount returns the number of bindings.
func (a *Action) BindingCount() int { return len(a.bindings) }

// AddBinding appends a binding. Bindings are value-copied; the caller's
// copy stays independent.
func (a *Action) AddBinding(b Binding) {
	a.bindings = append(a.bindings, b)
}

// RemoveBinding removes the binding at the given index. Out-of-range
// indices are logged and ignored.
func (a *Action) RemoveBinding(index int) {
	if index < 0 || index >= len(a.bindings) {
		log.Warn().
			Str("action", a.name).
			Int("index", index).
			Int("bindings", len(a.bindings)).
			Msg("bind: remove binding index out of range")
		return
	}
	a.bindings = append(a.bindings[:index], a.bindings[index+1:]...)
}

// ClearBindings removes all bindings.
func (a *Action) ClearBindings() {
	a.bindings = nil
}

// IsPressed reports whether any binding went active this frame.
func (a *Action) IsPressed(m *input.Manager) bool {
	for _, b := range a.bindings {
		if b.IsPressed(m) {
			return true
		}
	}
	return false
}

// IsDown reports whether any binding is currently active.
func (a *Action) IsDown(m *input.Manager) bool {
	for _, b := range a.bindings {
		if b.IsDown(m) {
			return true
		}
	}
	return false
}

// IsReleased reports whether any binding went inactive this frame.
func (a *Action) IsReleased(m *input.Manager) bool {
	for _, b := range a.bindings {
		if b.IsReleased(m) {
			return true
		}
	}
	return false
}

// Value returns the strongest analog response among the bindings, as a
// magnitude. Digital bindings respond 1 when down. The sign of axis
// responses is discarded; the result is always non-negative.
func (a *Action) Value(m *input.Manager) float64 {
	var best float64
	for _, b := range a.bindings {
		if v := math.Abs(b.AxisValue(m)); v > best {
			best = v
		}
	}
	return best
}
