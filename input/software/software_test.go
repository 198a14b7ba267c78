package software

import (
	"testing"

	"github.com/copyleft-games/libregnum-input/input/gamepad"
	"github.com/copyleft-games/libregnum-input/input/key"
	"github.com/copyleft-games/libregnum-input/input/mouse"
)

func TestPressReleaseScenario(t *testing.T) {
	s := New("test")

	s.PressKey(key.KeySpace)
	s.Poll()

	if !s.IsKeyPressed(key.KeySpace) {
		t.Error("expected pressed after press + poll")
	}
	if !s.IsKeyDown(key.KeySpace) {
		t.Error("expected down after press + poll")
	}

	s.ReleaseKey(key.KeySpace)

	if s.IsKeyDown(key.KeySpace) {
		t.Error("expected up immediately after release")
	}
	if !s.IsKeyReleased(key.KeySpace) {
		t.Error("expected released edge immediately after release")
	}

	s.Poll()

	if s.IsKeyReleased(key.KeySpace) {
		t.Error("released edge should clear on next poll")
	}
	if s.IsKeyPressed(key.KeySpace) {
		t.Error("pressed edge should clear on next poll")
	}
}

func TestTapLifecycle(t *testing.T) {
	s := New("test")

	s.TapKey(key.KeyW)
	s.Poll()

	if !s.IsKeyPressed(key.KeyW) {
		t.Error("frame 1: expected pressed")
	}
	if !s.IsKeyDown(key.KeyW) {
		t.Error("frame 1: expected down")
	}

	s.Poll()

	if s.IsKeyDown(key.KeyW) {
		t.Error("frame 2: expected auto-release")
	}
	if !s.IsKeyReleased(key.KeyW) {
		t.Error("frame 2: expected released edge")
	}

	s.Poll()

	if s.IsKeyPressed(key.KeyW) || s.IsKeyDown(key.KeyW) || s.IsKeyReleased(key.KeyW) {
		t.Error("frame 3: expected all state cleared")
	}
}

func TestPressIsIdempotent(t *testing.T) {
	s := New("test")

	s.PressKey(key.KeyA)
	s.Poll()
	s.PressKey(key.KeyA) // already down, no new edge
	s.Poll()

	if s.IsKeyPressed(key.KeyA) {
		t.Error("second press while down must not produce a new edge")
	}
	if !s.IsKeyDown(key.KeyA) {
		t.Error("key should still be down")
	}
}

func TestReleaseWithoutPressIsNoop(t *testing.T) {
	s := New("test")

	s.ReleaseKey(key.KeyA)

	if s.IsKeyReleased(key.KeyA) {
		t.Error("releasing an up key must not produce an edge")
	}
}

func TestTapRepressesHeldKey(t *testing.T) {
	s := New("test")

	s.PressKey(key.KeyE)
	s.Poll()
	s.TapKey(key.KeyE)
	s.Poll()

	if !s.IsKeyPressed(key.KeyE) {
		t.Error("tap must re-press even when already down")
	}

	s.Poll()

	if s.IsKeyDown(key.KeyE) {
		t.Error("tapped key should auto-release")
	}
}

func TestGamepadAxisClamp(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  float64
	}{
		{"in range", 0.5, 0.5},
		{"above", 5.0, 1.0},
		{"below", -3.0, -1.0},
		{"upper bound", 1.0, 1.0},
		{"lower bound", -1.0, -1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New("test")
			s.SetGamepadAxis(0, gamepad.AxisLeftX, tt.value)
			if got := s.GamepadAxis(0, gamepad.AxisLeftX); got != tt.want {
				t.Errorf("GamepadAxis = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGamepadOutOfRangeIgnored(t *testing.T) {
	s := New("test")

	s.SetGamepadAxis(4, gamepad.AxisLeftX, 1.0)
	s.SetGamepadAxis(-1, gamepad.AxisLeftX, 1.0)
	s.PressGamepadButton(7, gamepad.ButtonRightFaceDown)

	if s.GamepadAxis(4, gamepad.AxisLeftX) != 0 {
		t.Error("out-of-range axis read should report 0")
	}
	if s.IsGamepadButtonDown(7, gamepad.ButtonRightFaceDown) {
		t.Error("out-of-range button should never report down")
	}
}

func TestGamepadAlwaysAvailable(t *testing.T) {
	s := New("test")

	for i := 0; i < gamepad.MaxGamepads; i++ {
		if !s.IsGamepadAvailable(i) {
			t.Errorf("virtual gamepad %d should be available", i)
		}
	}
	if s.IsGamepadAvailable(4) || s.IsGamepadAvailable(-1) {
		t.Error("out-of-range slots should be unavailable")
	}
}

func TestGamepadButtonTap(t *testing.T) {
	s := New("test")

	s.TapGamepadButton(1, gamepad.ButtonRightFaceDown)
	s.Poll()

	if !s.IsGamepadButtonPressed(1, gamepad.ButtonRightFaceDown) {
		t.Error("expected gamepad button pressed")
	}

	s.Poll()

	if !s.IsGamepadButtonReleased(1, gamepad.ButtonRightFaceDown) {
		t.Error("expected gamepad button auto-release")
	}
}

func TestMouseDeltaAccumulation(t *testing.T) {
	s := New("test")

	s.MoveMouse(3, 4)
	s.MoveMouse(-1, 2)

	if d := s.MouseDelta(); d != (mouse.Delta{}) {
		t.Errorf("delta visible before poll: %v", d)
	}

	s.Poll()

	if d := s.MouseDelta(); d.X != 2 || d.Y != 6 {
		t.Errorf("MouseDelta = %v, want (2, 6)", d)
	}
	if p := s.MousePosition(); p.X != 2 || p.Y != 6 {
		t.Errorf("MousePosition = %v, want (2, 6)", p)
	}

	s.Poll()

	if d := s.MouseDelta(); d != (mouse.Delta{}) {
		t.Errorf("delta should reset with no movement: %v", d)
	}
}

func TestSetMousePositionDoesNotMoveDelta(t *testing.T) {
	s := New("test")

	s.SetMousePosition(100, 200)
	s.Poll()

	if d := s.MouseDelta(); d != (mouse.Delta{}) {
		t.Errorf("absolute positioning should not contribute delta: %v", d)
	}
	if p := s.MousePosition(); p.X != 100 || p.Y != 200 {
		t.Errorf("MousePosition = %v, want (100, 200)", p)
	}
}

func TestMouseButtons(t *testing.T) {
	s := New("test")

	s.PressMouseButton(mouse.ButtonLeft)
	s.Poll()

	if !s.IsMouseButtonPressed(mouse.ButtonLeft) || !s.IsMouseButtonDown(mouse.ButtonLeft) {
		t.Error("expected left button pressed and down")
	}

	s.ReleaseMouseButton(mouse.ButtonLeft)

	if !s.IsMouseButtonReleased(mouse.ButtonLeft) {
		t.Error("expected released edge")
	}
}

func TestClearAll(t *testing.T) {
	s := New("test")

	s.PressKey(key.KeySpace)
	s.PressMouseButton(mouse.ButtonRight)
	s.PressGamepadButton(0, gamepad.ButtonLeftThumb)
	s.SetGamepadAxis(0, gamepad.AxisLeftY, -0.7)
	s.MoveMouse(5, 5)
	s.Poll()

	s.ClearAll()

	if s.IsKeyDown(key.KeySpace) {
		t.Error("key should be force-released")
	}
	if !s.IsKeyReleased(key.KeySpace) {
		t.Error("force-release should report a released edge")
	}
	if s.IsMouseButtonDown(mouse.ButtonRight) {
		t.Error("mouse button should be force-released")
	}
	if s.IsGamepadButtonDown(0, gamepad.ButtonLeftThumb) {
		t.Error("gamepad button should be force-released")
	}
	if s.GamepadAxis(0, gamepad.AxisLeftY) != 0 {
		t.Error("axes should be zeroed")
	}
	if s.MouseDelta() != (mouse.Delta{}) {
		t.Error("deltas should be zeroed")
	}
}

func TestOutOfRangeKeysIgnored(t *testing.T) {
	s := New("test")

	s.PressKey(key.Key(600))
	s.PressKey(key.Key(-5))
	s.TapKey(key.KeyNone)

	if s.IsKeyDown(key.Key(600)) || s.IsKeyDown(key.Key(-5)) || s.IsKeyDown(key.KeyNone) {
		t.Error("out-of-range keys should never report state")
	}
}

func TestGeneratedName(t *testing.T) {
	s := New("")
	if s.Name() == "" {
		t.Error("anonymous source should get a generated name")
	}
	if New("").Name() == s.Name() {
		t.Error("generated names should be unique")
	}
}
