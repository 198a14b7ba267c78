package key

import (
	"reflect"
	"testing"
)

func TestModifierHas(t *testing.T) {
	m := ModShift.With(ModCtrl)

	if !m.Has(ModShift) {
		t.Error("expected ModShift")
	}
	if !m.Has(ModCtrl) {
		t.Error("expected ModCtrl")
	}
	if m.Has(ModAlt) {
		t.Error("unexpected ModAlt")
	}
}

func TestModifierWithout(t *testing.T) {
	m := ModShift.With(ModCtrl).With(ModAlt).Without(ModCtrl)

	if m.Has(ModCtrl) {
		t.Error("ModCtrl should be removed")
	}
	if !m.Has(ModShift) || !m.Has(ModAlt) {
		t.Error("other modifiers should remain")
	}
}

func TestModifierString(t *testing.T) {
	tests := []struct {
		mod  Modifier
		want string
	}{
		{ModNone, ""},
		{ModShift, "Shift"},
		{ModCtrl, "Ctrl"},
		{ModCtrl | ModShift, "Ctrl+Shift"},
		{ModCtrl | ModAlt | ModShift, "Ctrl+Alt+Shift"},
	}

	for _, tt := range tests {
		if got := tt.mod.String(); got != tt.want {
			t.Errorf("Modifier.String() = %q, want %q", got, tt.want)
		}
	}
}

func TestModifierNames(t *testing.T) {
	tests := []struct {
		mod  Modifier
		want []string
	}{
		{ModNone, nil},
		{ModShift, []string{"SHIFT"}},
		{ModShift | ModCtrl | ModAlt, []string{"SHIFT", "CTRL", "ALT"}},
	}

	for _, tt := range tests {
		if got := tt.mod.Names(); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Modifier.Names() = %v, want %v", got, tt.want)
		}
	}
}

func TestModifiersFromNames(t *testing.T) {
	tests := []struct {
		names []string
		want  Modifier
	}{
		{nil, ModNone},
		{[]string{"SHIFT"}, ModShift},
		{[]string{"shift", "CTRL"}, ModShift | ModCtrl},
		{[]string{"SHIFT", "bogus", "ALT"}, ModShift | ModAlt},
	}

	for _, tt := range tests {
		if got := ModifiersFromNames(tt.names); got != tt.want {
			t.Errorf("ModifiersFromNames(%v) = %v, want %v", tt.names, got, tt.want)
		}
	}
}

func TestModifierKeys(t *testing.T) {
	pairs := (ModShift | ModAlt).Keys()

	want := [][2]Key{
		{KeyLeftShift, KeyRightShift},
		{KeyLeftAlt, KeyRightAlt},
	}
	if !reflect.DeepEqual(pairs, want) {
		t.Errorf("Modifier.Keys() = %v, want %v", pairs, want)
	}
}
