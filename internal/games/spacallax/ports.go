// Package spacallax implements the Spacallax arcade shooter simulation.
//
// The simulation is frontend-neutral. It reads keys through Input, draws
// through Renderer, requests sounds through Audio and window changes
// through Display. Update and Draw are called once per frame, strictly in
// sequence, from a single goroutine.
package spacallax

import (
	"github.com/vovakirdan/spacallax/internal/config"
	"github.com/vovakirdan/spacallax/internal/core"
)

// Input is the keyboard state for the current frame.
type Input interface {
	Held(k core.Key) bool
	Pressed(k core.Key) bool
}

// Random is the simulation's source of randomness.
// core.RNG satisfies it.
type Random interface {
	Float(min, max float64) float64
	Int(min, max int) int // max exclusive
}

// SpriteKind selects how a frontend draws an entity.
type SpriteKind int

const (
	SpritePlayer SpriteKind = iota
	SpriteEnemy
	SpritePlayerBullet
	SpriteEnemyBullet
	SpritePowerUp
	SpriteParticle
	SpriteStar
	SpriteShield // ring around the shielded player
)

// Sprite is one draw request.
type Sprite struct {
	Kind  SpriteKind
	Pos   core.Vec2
	Size  float64
	Angle float64 // degrees, enemies only
	Color core.Color
}

// TextSize is a hint; frontends without font sizes ignore it.
type TextSize int

const (
	TextSmall TextSize = iota
	TextNormal
	TextLarge
	TextTitle
)

// Renderer receives draw requests. Nothing it returns is consumed by the
// simulation.
type Renderer interface {
	Clear(c core.Color)
	DrawSprite(s Sprite)
	DrawText(pos core.Vec2, text string, size TextSize, c core.Color)
	DrawTextCentered(y float64, text string, size TextSize, c core.Color)
}

// Audio plays sound cues.
type Audio interface {
	Play(s core.Sound)
	Loop(s core.Sound)
	Stop(s core.Sound)
	SetVolumes(master, sound, music float64)
}

// Display owns the window or terminal the playfield is shown in.
// Size is treated as the authoritative playfield bounds every frame.
type Display interface {
	Size() (w, h int)
	Resize(w, h int)
	SetFullscreen(on bool)
	SetVSync(on bool)
	Shake(magnitude, duration float64)
	// Spotlight restricts visibility to a circle; radius 0 disables it.
	Spotlight(center core.Vec2, radius float64)
	// Distortion wobbles the picture; amplitude 0 disables it.
	Distortion(amplitude, frequency float64)
}

// SettingsStore persists the settings record.
// *config.SettingsFile satisfies it.
type SettingsStore interface {
	Load() (config.Settings, error)
	Save(s config.Settings) error
}
