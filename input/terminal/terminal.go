// Package terminal adapts a tcell screen into an input source, giving
// terminal-hosted tools a real keyboard and mouse behind the same
// capability contract the native backends satisfy.
//
// Terminals report key strokes, not key state: there is no key-up event.
// Each stroke therefore surfaces as down+pressed for one frame with the
// release synthesized on the next poll. Held modifiers are visible only
// through the modifier bits of each stroke and are surfaced the same
// way.
package terminal

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/copyleft-games/libregnum-input/input"
	"github.com/copyleft-games/libregnum-input/input/key"
	"github.com/copyleft-games/libregnum-input/input/mouse"
)

// frameState is one key or button's view of the current frame.
type frameState struct {
	down     bool
	pressed  bool
	released bool
}

// Source is a tcell-backed keyboard and mouse source. Gamepad queries
// report the unsupported defaults.
type Source struct {
	input.Base
	input.Unsupported

	mu    sync.Mutex
	queue []tcell.Event

	keys    [key.MaxKeys]frameState
	buttons [mouse.MaxButtons]frameState
	pos     mouse.Position
	delta   mouse.Delta
	mask    tcell.ButtonMask
}

// New creates a terminal source reading events from screen. The screen
// must already be initialized; the caller keeps ownership and calls Fini
// when done, which also ends the source's reader.
func New(name string, screen tcell.Screen) *Source {
	s := &Source{Base: input.NewBase(name)}
	go s.readLoop(screen)
	return s
}

// readLoop drains the blocking tcell event stream into the queue the
// next Poll consumes. PollEvent returns nil once the screen is
// finalized.
func (s *Source) readLoop(screen tcell.Screen) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		s.mu.Lock()
		s.queue = append(s.queue, ev)
		s.mu.Unlock()
	}
}

// Poll converts events received since the last poll into this frame's
// key and button state.
func (s *Source) Poll() {
	s.mu.Lock()
	events := s.queue
	s.queue = nil
	s.mu.Unlock()

	// Strokes from the previous frame become releases; held terminal
	// keys cannot be observed.
	for i := range s.keys {
		wasDown := s.keys[i].down
		s.keys[i] = frameState{released: wasDown}
	}
	for i := range s.buttons {
		s.buttons[i].pressed = false
		s.buttons[i].released = false
	}
	s.delta = mouse.Delta{}

	for _, ev := range events {
		switch ev := ev.(type) {
		case *tcell.EventKey:
			s.applyKey(ev)
		case *tcell.EventMouse:
			s.applyMouse(ev)
		}
	}
}

// applyKey marks the stroked key, and its modifier keys, down for this
// frame.
func (s *Source) applyKey(ev *tcell.EventKey) {
	if k := translateKey(ev); k.Valid() {
		s.keys[k].down = true
		s.keys[k].pressed = true
		s.keys[k].released = false
	}
	mods := ev.Modifiers()
	if mods&tcell.ModShift != 0 {
		s.strokeModifier(key.KeyLeftShift)
	}
	if mods&tcell.ModCtrl != 0 {
		s.strokeModifier(key.KeyLeftControl)
	}
	if mods&tcell.ModAlt != 0 {
		s.strokeModifier(key.KeyLeftAlt)
	}
}

func (s *Source) strokeModifier(k key.Key) {
	s.keys[k].down = true
	s.keys[k].pressed = true
	s.keys[k].released = false
}

// applyMouse updates position, accumulates the frame delta and derives
// button edges from the button mask difference.
func (s *Source) applyMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	next := mouse.Position{X: float64(x), Y: float64(y)}
	s.delta.X += next.X - s.pos.X
	s.delta.Y += next.Y - s.pos.Y
	s.pos = next

	mask := ev.Buttons()
	for tb, mb := range buttonMap {
		was := s.mask&tb != 0
		now := mask&tb != 0
		switch {
		case now && !was:
			s.buttons[mb].down = true
			s.buttons[mb].pressed = true
		case !now && was:
			s.buttons[mb].down = false
			s.buttons[mb].released = true
		}
	}
	s.mask = mask
}

// buttonMap translates tcell button bits to mouse button codes.
var buttonMap = map[tcell.ButtonMask]mouse.Button{
	tcell.Button1: mouse.ButtonLeft,
	tcell.Button2: mouse.ButtonRight,
	tcell.Button3: mouse.ButtonMiddle,
}

// specialKeys translates tcell special keys to key codes.
var specialKeys = map[tcell.Key]key.Key{
	tcell.KeyEscape:    key.KeyEscape,
	tcell.KeyEnter:     key.KeyEnter,
	tcell.KeyTab:       key.KeyTab,
	tcell.KeyBackspace: key.KeyBackspace,
	tcell.KeyDelete:    key.KeyDelete,
	tcell.KeyInsert:    key.KeyInsert,
	tcell.KeyHome:      key.KeyHome,
	tcell.KeyEnd:       key.KeyEnd,
	tcell.KeyPgUp:      key.KeyPageUp,
	tcell.KeyPgDn:      key.KeyPageDown,
	tcell.KeyUp:        key.KeyUp,
	tcell.KeyDown:      key.KeyDown,
	tcell.KeyLeft:      key.KeyLeft,
	tcell.KeyRight:     key.KeyRight,
	tcell.KeyF1:        key.KeyF1,
	tcell.KeyF2:        key.KeyF2,
	tcell.KeyF3:        key.KeyF3,
	tcell.KeyF4:        key.KeyF4,
	tcell.KeyF5:        key.KeyF5,
	tcell.KeyF6:        key.KeyF6,
	tcell.KeyF7:        key.KeyF7,
	tcell.KeyF8:        key.KeyF8,
	tcell.KeyF9:        key.KeyF9,
	tcell.KeyF10:       key.KeyF10,
	tcell.KeyF11:       key.KeyF11,
	tcell.KeyF12:       key.KeyF12,
}

// translateKey maps a tcell key event to a key code. Runes map through
// their uppercase form; unmapped keys return KeyNone.
func translateKey(ev *tcell.EventKey) key.Key {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		switch {
		case r == ' ':
			return key.KeySpace
		case r >= 'a' && r <= 'z':
			return key.Key(r - 'a' + rune(key.KeyA))
		case r >= 'A' && r <= 'Z':
			return key.Key(r - 'A' + rune(key.KeyA))
		case r >= '0' && r <= '9':
			return key.Key(r - '0' + rune(key.KeyZero))
		}
		return key.KeyNone
	}
	if k, ok := specialKeys[ev.Key()]; ok {
		return k
	}
	return key.KeyNone
}

// IsKeyPressed reports whether the key was stroked this frame.
func (s *Source) IsKeyPressed(k key.Key) bool {
	return k.Valid() && s.keys[k].pressed
}

// IsKeyDown reports whether the key was stroked this frame. Terminals
// cannot observe held keys, so down and pressed coincide.
func (s *Source) IsKeyDown(k key.Key) bool {
	return k.Valid() && s.keys[k].down
}

// IsKeyReleased reports whether the key's synthesized release landed
// this frame.
func (s *Source) IsKeyReleased(k key.Key) bool {
	return k.Valid() && s.keys[k].released
}

// IsMouseButtonPressed reports whether the button went down this frame.
func (s *Source) IsMouseButtonPressed(b mouse.Button) bool {
	return b.Valid() && s.buttons[b].pressed
}

// IsMouseButtonDown reports whether the button is held.
func (s *Source) IsMouseButtonDown(b mouse.Button) bool {
	return b.Valid() && s.buttons[b].down
}

// IsMouseButtonReleased reports whether the button went up this frame.
func (s *Source) IsMouseButtonReleased(b mouse.Button) bool {
	return b.Valid() && s.buttons[b].released
}

// MousePosition returns the pointer's terminal cell position.
func (s *Source) MousePosition() mouse.Position { return s.pos }

// MouseDelta returns this frame's pointer movement.
func (s *Source) MouseDelta() mouse.Delta { return s.delta }
