package core

import "testing"

func TestColorHex(t *testing.T) {
	tests := []struct {
		name string
		c    Color
		want string
	}{
		{"opaque red", ColorRed, "#ff0000"},
		{"gold", ColorGold, "#ffd700"},
		{"transparent", ColorWhite.WithAlpha(0), "#000000"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.c.Hex(); got != tc.want {
				t.Errorf("Hex() = %q, expected %q", got, tc.want)
			}
		})
	}
}

func TestColorScale(t *testing.T) {
	c := ColorWhite.Scale(0.5)
	if c.R != 127 || c.A != 255 {
		t.Errorf("Scale(0.5) = %+v, expected half brightness with full alpha", c)
	}
	if ColorWhite.Scale(2) != ColorWhite {
		t.Error("Scale should clamp factors above 1")
	}
}

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if !f.Empty() {
		t.Error("new frame should be empty")
	}

	f.Press(KeyFire)
	if !f.Pressed(KeyFire) || !f.Held(KeyFire) {
		t.Error("Press should mark the key pressed and held")
	}

	f.Hold(KeyLeft)
	if f.Pressed(KeyLeft) {
		t.Error("Hold should not mark the key pressed")
	}

	if f.Held(KeyNone) || f.Held(Key(99)) {
		t.Error("invalid keys are never held")
	}

	f.Clear()
	if !f.Empty() {
		t.Error("Clear should reset the frame")
	}
}
