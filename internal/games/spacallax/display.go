package spacallax

import "github.com/vovakirdan/spacallax/internal/core"

// FixedDisplay is a Display with no output device. It tracks the size and
// flags it is asked for, which makes it usable by headless frontends and
// tests.
type FixedDisplay struct {
	W, H       int
	Fullscreen bool
	VSync      bool

	ShakeMagnitude  float64
	ShakeDuration   float64
	SpotlightCenter core.Vec2
	SpotlightRadius float64
	DistortAmp      float64
	DistortFreq     float64
}

// NewFixedDisplay creates a display of w x h.
func NewFixedDisplay(w, h int) *FixedDisplay {
	return &FixedDisplay{W: w, H: h, VSync: true}
}

func (d *FixedDisplay) Size() (int, int) { return d.W, d.H }

func (d *FixedDisplay) Resize(w, h int) {
	d.W, d.H = w, h
}

func (d *FixedDisplay) SetFullscreen(on bool) { d.Fullscreen = on }

func (d *FixedDisplay) SetVSync(on bool) { d.VSync = on }

func (d *FixedDisplay) Shake(magnitude, duration float64) {
	d.ShakeMagnitude, d.ShakeDuration = magnitude, duration
}

func (d *FixedDisplay) Spotlight(center core.Vec2, radius float64) {
	d.SpotlightCenter, d.SpotlightRadius = center, radius
}

func (d *FixedDisplay) Distortion(amplitude, frequency float64) {
	d.DistortAmp, d.DistortFreq = amplitude, frequency
}

// Lit reports whether s is visible under a spotlight. The player and its
// shield are always lit; radius 0 lights everything.
func Lit(s Sprite, center core.Vec2, radius float64) bool {
	if radius <= 0 || s.Kind == SpritePlayer || s.Kind == SpriteShield {
		return true
	}
	return core.Dist(s.Pos, center) <= radius
}
