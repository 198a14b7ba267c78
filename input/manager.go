package input

import (
	"math"
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/copyleft-games/libregnum-input/input/gamepad"
	"github.com/copyleft-games/libregnum-input/input/key"
	"github.com/copyleft-games/libregnum-input/input/mouse"
)

// Manager aggregates prioritized input sources behind one query surface.
//
// Combination rules per query kind:
//
//   - key / mouse button / gamepad button state: OR across enabled sources
//   - mouse position: first enabled source, in priority order, reporting a
//     non-origin position
//   - mouse delta: sum across enabled sources
//   - gamepad axis: the signed value from the source with the largest
//     magnitude
//   - gamepad availability: OR across enabled sources
//
// A disabled manager answers every query with the false/zero default and
// skips polling entirely.
type Manager struct {
	sources []Source
	enabled bool
}

// NewManager creates a manager and registers the given sources in order.
// Ties in priority keep their registration order.
func NewManager(sources ...Source) *Manager {
	m := &Manager{
		sources: make([]Source, 0, len(sources)),
		enabled: true,
	}
	for _, s := range sources {
		m.AddSource(s)
	}
	return m
}

// AddSource registers a source and re-sorts the source list by priority,
// descending. The sort is stable: equal priorities keep their relative
// insertion order. A nil source is logged and ignored.
func (m *Manager) AddSource(s Source) {
	if s == nil {
		log.Warn().Msg("input: ignoring nil source")
		return
	}
	m.sources = append(m.sources, s)
	sort.SliceStable(m.sources, func(i, j int) bool {
		return m.sources[i].Priority() > m.sources[j].Priority()
	})
}

// Sources returns the registered sources in query (priority) order. The
// returned slice is a copy.
func (m *Manager) Sources() []Source {
	out := make([]Source, len(m.sources))
	copy(out, m.sources)
	return out
}

// FindSource returns the first registered source with the given name, or
// nil if none matches.
func (m *Manager) FindSource(name string) Source {
	for _, s := range m.sources {
		if s.Name() == name {
			return s
		}
	}
	return nil
}

// Enabled reports whether the manager answers queries.
func (m *Manager) Enabled() bool { return m.enabled }

// SetEnabled toggles the manager's global kill-switch.
func (m *Manager) SetEnabled(enabled bool) { m.enabled = enabled }

// Poll advances one frame on every enabled source. Call once per frame,
// before any query. A no-op when the manager is disabled.
func (m *Manager) Poll() {
	if !m.enabled {
		return
	}
	for _, s := range m.sources {
		if s.Enabled() {
			s.Poll()
		}
	}
}

// anySource reports whether the predicate holds for any enabled source.
func (m *Manager) anySource(pred func(Source) bool) bool {
	if !m.enabled {
		return false
	}
	for _, s := range m.sources {
		if s.Enabled() && pred(s) {
			return true
		}
	}
	return false
}

// IsKeyPressed reports whether any enabled source saw the key go down
// this frame.
func (m *Manager) IsKeyPressed(k key.Key) bool {
	return m.anySource(func(s Source) bool { return s.IsKeyPressed(k) })
}

// IsKeyDown reports whether any enabled source holds the key down.
func (m *Manager) IsKeyDown(k key.Key) bool {
	return m.anySource(func(s Source) bool { return s.IsKeyDown(k) })
}

// IsKeyReleased reports whether any enabled source saw the key go up
// this frame.
func (m *Manager) IsKeyReleased(k key.Key) bool {
	return m.anySource(func(s Source) bool { return s.IsKeyReleased(k) })
}

// IsMouseButtonPressed reports whether any enabled source saw the button
// go down this frame.
func (m *Manager) IsMouseButtonPressed(b mouse.Button) bool {
	return m.anySource(func(s Source) bool { return s.IsMouseButtonPressed(b) })
}

// IsMouseButtonDown reports whether any enabled source holds the button
// down.
func (m *Manager) IsMouseButtonDown(b mouse.Button) bool {
	return m.anySource(func(s Source) bool { return s.IsMouseButtonDown(b) })
}

// IsMouseButtonReleased reports whether any enabled source saw the button
// go up this frame.
func (m *Manager) IsMouseButtonReleased(b mouse.Button) bool {
	return m.anySource(func(s Source) bool { return s.IsMouseButtonReleased(b) })
}

// MousePosition returns the position from the first enabled source, in
// priority order, that reports something other than the origin. Sources
// without a pointer report exactly the origin, so the first non-origin
// answer belongs to the highest-priority source that actually has one.
func (m *Manager) MousePosition() mouse.Position {
	if !m.enabled {
		return mouse.Position{}
	}
	for _, s := range m.sources {
		if !s.Enabled() {
			continue
		}
		if p := s.MousePosition(); !p.IsZero() {
			return p
		}
	}
	return mouse.Position{}
}

// MouseDelta returns the sum of this frame's deltas across all enabled
// sources.
func (m *Manager) MouseDelta() mouse.Delta {
	var total mouse.Delta
	if !m.enabled {
		return total
	}
	for _, s := range m.sources {
		if s.Enabled() {
			total = total.Add(s.MouseDelta())
		}
	}
	return total
}

// IsGamepadButtonPressed reports whether any enabled source saw the
// button go down this frame.
func (m *Manager) IsGamepadButtonPressed(index int, b gamepad.Button) bool {
	return m.anySource(func(s Source) bool { return s.IsGamepadButtonPressed(index, b) })
}

// IsGamepadButtonDown reports whether any enabled source holds the button
// down.
func (m *Manager) IsGamepadButtonDown(index int, b gamepad.Button) bool {
	return m.anySource(func(s Source) bool { return s.IsGamepadButtonDown(index, b) })
}

// IsGamepadButtonReleased reports whether any enabled source saw the
// button go up this frame.
func (m *Manager) IsGamepadButtonReleased(index int, b gamepad.Button) bool {
	return m.anySource(func(s Source) bool { return s.IsGamepadButtonReleased(index, b) })
}

// GamepadAxis returns the signed axis value from whichever enabled source
// reports the largest magnitude. The winner's sign is preserved; this is
// not max-of-absolute-values.
func (m *Manager) GamepadAxis(index int, a gamepad.Axis) float64 {
	if !m.enabled {
		return 0
	}
	var best float64
	for _, s := range m.sources {
		if !s.Enabled() {
			continue
		}
		if v := s.GamepadAxis(index, a); math.Abs(v) > math.Abs(best) {
			best = v
		}
	}
	return best
}

// IsGamepadAvailable reports whether any enabled source exposes the
// gamepad slot.
func (m *Manager) IsGamepadAvailable(index int) bool {
	return m.anySource(func(s Source) bool { return s.IsGamepadAvailable(index) })
}
