package tui

import (
	"slices"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/spacallax/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want []core.Key
		quit bool
	}{
		{"q quits", runeKey('q'), nil, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, nil, true},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, []core.Key{core.KeyLeft}, false},
		{"a", runeKey('a'), []core.Key{core.KeyLeft}, false},
		{"d", runeKey('d'), []core.Key{core.KeyRight}, false},
		{"w", runeKey('w'), []core.Key{core.KeyUp}, false},
		{"s opens settings", runeKey('s'), []core.Key{core.KeyDown, core.KeySettings}, false},
		{"space fires", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, []core.Key{core.KeyFire}, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, []core.Key{core.KeyConfirm}, false},
		{"r", runeKey('r'), []core.Key{core.KeyBack}, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, []core.Key{core.KeyEscape}, false},
		{"f11", tea.KeyMsg{Type: tea.KeyF11}, []core.Key{core.KeyFullscreen}, false},
		{"unbound", runeKey('z'), nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keys, quit := km.MapKey(tt.msg)
			if quit != tt.quit {
				t.Errorf("quit = %v, expected %v", quit, tt.quit)
			}
			if !slices.Equal(keys, tt.want) {
				t.Errorf("keys = %v, expected %v", keys, tt.want)
			}
		})
	}
}

func TestHeldKeys(t *testing.T) {
	var h HeldKeys
	h.Press(core.KeyFire)

	in := h.Frame(0.05)
	if !in.Pressed(core.KeyFire) || !in.Held(core.KeyFire) {
		t.Fatalf("first frame should press and hold fire")
	}

	in = h.Frame(0.05)
	if in.Pressed(core.KeyFire) {
		t.Errorf("press should last one frame")
	}
	if !in.Held(core.KeyFire) {
		t.Errorf("fire should still be held inside the hold window")
	}

	h.Frame(0.05)
	in = h.Frame(0.05)
	if in.Held(core.KeyFire) {
		t.Errorf("fire should be released after the hold window")
	}

	h.Press(core.KeyLeft)
	h.Release()
	if in := h.Frame(0.01); !in.Empty() {
		t.Errorf("Release should clear all keys")
	}
}
