// Package window runs Spacallax in a desktop window with Ebitengine.
package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/spacallax/internal/core"
)

// binding maps one game key to the physical keys that produce it.
type binding struct {
	key  core.Key
	keys []ebiten.Key
}

var bindings = []binding{
	{core.KeyLeft, []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}},
	{core.KeyRight, []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}},
	{core.KeyUp, []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}},
	{core.KeyDown, []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}},
	{core.KeyFire, []ebiten.Key{ebiten.KeySpace}},
	{core.KeyConfirm, []ebiten.Key{ebiten.KeyEnter, ebiten.KeyNumpadEnter}},
	{core.KeyBack, []ebiten.Key{ebiten.KeyR}},
	{core.KeyEscape, []ebiten.Key{ebiten.KeyEscape}},
	{core.KeySettings, []ebiten.Key{ebiten.KeyS}},
	{core.KeyFullscreen, []ebiten.Key{ebiten.KeyF11}},
}

// keyQuery reports the state of a physical key. ebiten.IsKeyPressed and
// inpututil.IsKeyJustPressed have this shape.
type keyQuery func(ebiten.Key) bool

// readInput samples the keyboard into one frame of input.
func readInput(held, pressed keyQuery) core.InputFrame {
	in := core.NewInputFrame()
	for _, b := range bindings {
		for _, k := range b.keys {
			if held(k) {
				in.Hold(b.key)
			}
			if pressed(k) {
				in.Press(b.key)
			}
		}
	}
	return in
}
