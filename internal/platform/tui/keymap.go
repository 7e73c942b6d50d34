package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/spacallax/internal/core"
)

// holdWindow is how long a key counts as held after its last key event.
// Terminals report key repeats but never releases, so a held key is one
// that keeps repeating.
const holdWindow = 0.15

// KeyMapper translates Bubble Tea key messages to game keys.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to game keys.
// Returns the keys (may be empty) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (keys []core.Key, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return nil, true
	case "left", "a":
		return []core.Key{core.KeyLeft}, false
	case "right", "d":
		return []core.Key{core.KeyRight}, false
	case "up", "w":
		return []core.Key{core.KeyUp}, false
	case "down":
		return []core.Key{core.KeyDown}, false
	case "s":
		return []core.Key{core.KeyDown, core.KeySettings}, false
	case " ":
		return []core.Key{core.KeyFire}, false
	case "enter":
		return []core.Key{core.KeyConfirm}, false
	case "r":
		return []core.Key{core.KeyBack}, false
	case "esc":
		return []core.Key{core.KeyEscape}, false
	case "f11", "f":
		return []core.Key{core.KeyFullscreen}, false
	}
	return nil, false
}

// HeldKeys turns a stream of key events into per-frame input.
type HeldKeys struct {
	ttl     [core.KeyFullscreen + 1]float64
	pressed []core.Key
}

// Press records a key event: the key is pressed this frame and held for
// holdWindow seconds.
func (h *HeldKeys) Press(k core.Key) {
	if k <= core.KeyNone || int(k) >= len(h.ttl) {
		return
	}
	h.ttl[k] = holdWindow
	h.pressed = append(h.pressed, k)
}

// Frame builds the input for a frame of length dt and ages the held keys.
func (h *HeldKeys) Frame(dt float64) core.InputFrame {
	in := core.NewInputFrame()
	for k, ttl := range h.ttl {
		if ttl > 0 {
			in.Hold(core.Key(k))
		}
	}
	for _, k := range h.pressed {
		in.Press(k)
	}
	h.pressed = h.pressed[:0]

	for k := range h.ttl {
		h.ttl[k] = max(0, h.ttl[k]-dt)
	}
	return in
}

// Release forgets every held key.
func (h *HeldKeys) Release() {
	clear(h.ttl[:])
	h.pressed = h.pressed[:0]
}
