package spacallax

import (
	"slices"

	"github.com/vovakirdan/spacallax/internal/config"
	"github.com/vovakirdan/spacallax/internal/core"
)

// Particle is a short-lived spark. Life runs from its initial value down
// to zero and doubles as the draw alpha.
type Particle struct {
	Pos   core.Vec2
	Vel   core.Vec2
	Life  float64
	Color core.Color
}

// Popup is floating text such as "+15" or "SHIELD!".
type Popup struct {
	Pos   core.Vec2
	Text  string
	Life  float64
	Color core.Color
}

// burst emits n particles at pos with velocities uniform in
// [-spread, spread] on both axes.
func (w *World) burst(pos core.Vec2, n int, spread, life float64, c core.Color) {
	for range n {
		w.Particles = append(w.Particles, Particle{
			Pos:   pos,
			Vel:   core.Vec2{X: w.rng.Float(-spread, spread), Y: w.rng.Float(-spread, spread)},
			Life:  life,
			Color: c,
		})
	}
}

func (w *World) addPopup(pos core.Vec2, text string, life float64, c core.Color) {
	w.Popups = append(w.Popups, Popup{Pos: pos, Text: text, Life: life, Color: c})
}

// UpdateEffects moves and ages particles and popups. It also runs on the
// game over screen.
func (w *World) UpdateEffects(dt float64) {
	ec := w.cfg.Effects
	for i := len(w.Particles) - 1; i >= 0; i-- {
		p := &w.Particles[i]
		p.Pos = p.Pos.Add(p.Vel.Scale(dt))
		p.Life -= ec.ParticleDecay * dt
		if p.Life <= 0 {
			w.Particles = slices.Delete(w.Particles, i, i+1)
		}
	}
	for i := len(w.Popups) - 1; i >= 0; i-- {
		s := &w.Popups[i]
		s.Pos.Y -= ec.PopupRise * dt
		s.Life -= ec.PopupDecay * dt
		if s.Life <= 0 {
			w.Popups = slices.Delete(w.Popups, i, i+1)
		}
	}
}

// Star is a background star. Stars are never destroyed; they wrap.
type Star struct {
	Pos        core.Vec2
	Speed      float64
	Brightness float64
	Size       float64
}

// Starfield is the scrolling background shared by every state.
type Starfield struct {
	cfg   config.EffectsConfig
	Stars []Star
}

// NewStarfield creates a starfield filling width x height.
func NewStarfield(cfg config.EffectsConfig, rng Random, width, height float64) Starfield {
	s := Starfield{cfg: cfg}
	s.Regenerate(rng, width, height)
	return s
}

// Regenerate scatters a fresh set of stars, used after the playfield
// changes size.
func (s *Starfield) Regenerate(rng Random, width, height float64) {
	s.Stars = s.Stars[:0]
	for range s.cfg.Stars {
		s.Stars = append(s.Stars, Star{
			Pos:        core.Vec2{X: rng.Float(0, width), Y: rng.Float(0, height)},
			Speed:      rng.Float(s.cfg.StarMinSpeed, s.cfg.StarMaxSpeed),
			Brightness: rng.Float(0.3, 1),
			Size:       float64(rng.Int(1, 3)),
		})
	}
}

// Update scrolls the stars down; a star leaving the bottom reappears at
// the top with a new x.
func (s *Starfield) Update(rng Random, dt, width, height float64) {
	for i := range s.Stars {
		st := &s.Stars[i]
		st.Pos.Y += st.Speed * dt
		if st.Pos.Y > height {
			st.Pos.Y = 0
			st.Pos.X = rng.Float(0, width)
		}
	}
}
