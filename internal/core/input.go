package core

// Key is a logical key, abstracted from physical key presses.
// Frontends translate keyboard events into keys so the simulation never
// sees terminal escape sequences or window key codes.
type Key int

const (
	KeyNone       Key = iota
	KeyLeft           // A, Left arrow - move left, previous option
	KeyRight          // D, Right arrow - move right, next option
	KeyUp             // W, Up arrow - move up, previous menu item
	KeyDown           // S, Down arrow - move down, next menu item
	KeyFire           // Space - shoot, also confirms in menus
	KeyConfirm        // Enter - confirm selection
	KeyBack           // R - leave game over screen for the menu
	KeySettings       // S in the main menu - open settings
	KeyEscape         // Escape - leave settings
	KeyFullscreen     // F11 - toggle fullscreen in any state
	keyCount
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyFire:
		return "Fire"
	case KeyConfirm:
		return "Confirm"
	case KeyBack:
		return "Back"
	case KeySettings:
		return "Settings"
	case KeyEscape:
		return "Escape"
	case KeyFullscreen:
		return "Fullscreen"
	default:
		return "Unknown"
	}
}

// InputFrame is the keyboard state for one simulation frame.
// Held keys are down right now; pressed keys went down during this frame.
// A pressed key is usually also held, but frontends that cannot observe
// key releases may report presses only.
type InputFrame struct {
	held    [keyCount]bool
	pressed [keyCount]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Hold marks a key as currently down.
func (f *InputFrame) Hold(k Key) {
	if valid(k) {
		f.held[k] = true
	}
}

// Press marks a key as pressed this frame. Pressing implies holding.
func (f *InputFrame) Press(k Key) {
	if valid(k) {
		f.pressed[k] = true
		f.held[k] = true
	}
}

// Held returns true if the key is down this frame.
func (f InputFrame) Held(k Key) bool {
	return valid(k) && f.held[k]
}

// Pressed returns true if the key went down this frame.
func (f InputFrame) Pressed(k Key) bool {
	return valid(k) && f.pressed[k]
}

// Empty reports whether no key is held or pressed.
func (f InputFrame) Empty() bool {
	return f == InputFrame{}
}

// Clear resets all keys for the next frame.
func (f *InputFrame) Clear() {
	*f = InputFrame{}
}

func valid(k Key) bool {
	return k > KeyNone && k < keyCount
}
