package mouse

import "testing"

func TestButtonString(t *testing.T) {
	tests := []struct {
		button Button
		want   string
	}{
		{ButtonLeft, "LEFT"},
		{ButtonRight, "RIGHT"},
		{ButtonMiddle, "MIDDLE"},
		{ButtonForward, "FORWARD"},
		{ButtonBack, "BACK"},
		{Button(7), "NONE"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.button.String(); got != tt.want {
				t.Errorf("Button.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestButtonFromName(t *testing.T) {
	tests := []struct {
		name string
		want Button
	}{
		{"LEFT", ButtonLeft},
		{"left", ButtonLeft},
		{" Middle ", ButtonMiddle},
		{"SIDE", ButtonSide},
		{"bogus", -1},
		{"", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ButtonFromName(tt.name); got != tt.want {
				t.Errorf("ButtonFromName(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestButtonValid(t *testing.T) {
	if !ButtonLeft.Valid() {
		t.Error("ButtonLeft should be valid")
	}
	if Button(-1).Valid() {
		t.Error("Button(-1) should be invalid")
	}
	if Button(MaxButtons).Valid() {
		t.Error("Button(MaxButtons) should be invalid")
	}
}

func TestPositionIsZero(t *testing.T) {
	if !(Position{}).IsZero() {
		t.Error("origin should be zero")
	}
	if (Position{X: 1}).IsZero() {
		t.Error("non-origin should not be zero")
	}
}

func TestDeltaAdd(t *testing.T) {
	got := Delta{X: 1, Y: -2}.Add(Delta{X: 3, Y: 5})
	want := Delta{X: 4, Y: 3}
	if got != want {
		t.Errorf("Delta.Add() = %v, want %v", got, want)
	}
}
