package spacallax

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/spacallax/internal/config"
	"github.com/vovakirdan/spacallax/internal/core"
)

// State is the top-level game state. Exactly one is active.
type State int

const (
	StateMenu State = iota
	StatePlaying
	StateGameOver
	StateSettings
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game-over"
	case StateSettings:
		return "settings"
	default:
		return "unknown"
	}
}

// Options configures a Game. Random is required; nil collaborators are
// replaced with silent ones.
type Options struct {
	Config    config.GameConfig
	Settings  config.Settings
	Store     SettingsStore
	Random    Random
	Audio     Audio
	Display   Display
	Logger    *log.Logger
	HighScore int // best score known at startup
}

// Game is the state machine that owns the current session.
type Game struct {
	cfg      config.GameConfig
	settings config.Settings
	store    SettingsStore
	rng      Random
	audio    Audio
	display  Display
	logger   *log.Logger

	state        State
	selected     config.Difficulty
	settingIndex int

	world     *World
	stars     Starfield
	highScore int
	events    []Event
	frame     uint64
}

// New creates a game showing the main menu.
func New(opts Options) *Game {
	g := &Game{
		cfg:       opts.Config,
		settings:  opts.Settings.Normalize(),
		store:     opts.Store,
		rng:       opts.Random,
		audio:     opts.Audio,
		display:   opts.Display,
		logger:    opts.Logger,
		state:     StateMenu,
		selected:  config.Medium,
		highScore: opts.HighScore,
	}
	if g.rng == nil {
		g.rng = core.NewRNG(1)
	}
	if g.audio == nil {
		g.audio = nopAudio{}
	}
	if g.display == nil {
		g.display = NewFixedDisplay(g.settings.Width, g.settings.Height)
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}

	g.audio.SetVolumes(g.settings.MasterVolume, g.settings.SoundVolume, g.settings.MusicVolume)
	w, h := g.bounds()
	g.stars = NewStarfield(g.cfg.Effects, g.rng, w, h)
	return g
}

// Update advances one frame and returns the frame's events. The returned
// slice is only valid until the next call.
func (g *Game) Update(in Input, dt float64) []Event {
	g.events = g.events[:0]
	g.frame++

	if in.Pressed(core.KeyFullscreen) {
		g.toggleFullscreen()
	}

	switch g.state {
	case StateMenu:
		g.updateMenu(in)
	case StatePlaying:
		g.updatePlaying(in, dt)
	case StateGameOver:
		g.updateGameOver(in, dt)
	case StateSettings:
		g.updateSettings(in)
	}

	w, h := g.bounds()
	g.stars.Update(g.rng, dt, w, h)
	return g.events
}

// State returns the active state.
func (g *Game) State() State {
	return g.state
}

// World returns the current session, or nil before the first start.
func (g *Game) World() *World {
	return g.world
}

// Selected returns the difficulty highlighted in the menu.
func (g *Game) Selected() config.Difficulty {
	return g.selected
}

// Settings returns the current settings record.
func (g *Game) Settings() config.Settings {
	return g.settings
}

// HighScore returns the best score seen by this process.
func (g *Game) HighScore() int {
	return g.highScore
}

// Stars returns the background starfield.
func (g *Game) Stars() []Star {
	return g.stars.Stars
}

func (g *Game) bounds() (float64, float64) {
	w, h := g.display.Size()
	return float64(w), float64(h)
}

// StartGame begins a session on the selected difficulty.
func (g *Game) StartGame() {
	w, h := g.bounds()
	g.world = NewWorld(g.cfg, g.selected, g.rng, w, h)

	g.display.Spotlight(core.Vec2{}, 0)
	g.display.Distortion(0, 0)
	if g.world.Profile().Blind {
		g.display.Distortion(g.cfg.Effects.DistortionAmplitude, g.cfg.Effects.DistortionFrequency)
	}

	g.audio.Loop(core.SoundMusic)
	g.state = StatePlaying
	g.logger.Debug("game started", "difficulty", g.selected.Slug())
}

func (g *Game) updatePlaying(in Input, dt float64) {
	w, h := g.bounds()
	g.world.Step(in, dt, w, h)

	for _, ev := range g.world.Events() {
		switch ev.Kind {
		case EventShot:
			g.audio.Play(core.SoundShoot)
		case EventKill, EventGameOver:
			g.audio.Play(core.SoundExplode)
		case EventPlayerHit:
			g.display.Shake(ev.ShakeMagnitude, ev.ShakeDuration)
		}
		g.events = append(g.events, ev)
	}

	if g.world.Profile().Blind {
		g.display.Spotlight(g.world.Player.Pos, g.cfg.Effects.SpotlightRadius)
	}

	if g.world.Over() {
		g.state = StateGameOver
		if g.world.Score > g.highScore {
			g.highScore = g.world.Score
		}
		g.logger.Debug("game over", "difficulty", g.world.Difficulty().Slug(), "score", g.world.Score)
	}
}

func (g *Game) updateGameOver(in Input, dt float64) {
	switch {
	case in.Pressed(core.KeyFire) || in.Pressed(core.KeyConfirm):
		g.StartGame()
		return
	case in.Pressed(core.KeyBack):
		g.audio.Stop(core.SoundMusic)
		g.display.Spotlight(core.Vec2{}, 0)
		g.display.Distortion(0, 0)
		g.state = StateMenu
		return
	}
	g.world.UpdateEffects(dt)
}

func (g *Game) toggleFullscreen() {
	g.settings.Fullscreen = !g.settings.Fullscreen
	g.display.SetFullscreen(g.settings.Fullscreen)
	g.saveSettings()
	w, h := g.bounds()
	g.stars.Regenerate(g.rng, w, h)
}

func (g *Game) saveSettings() {
	if g.store == nil {
		return
	}
	if err := g.store.Save(g.settings); err != nil {
		g.logger.Warn("failed to save settings", "error", err)
		return
	}
	g.logger.Debug("settings saved")
}

// nopAudio discards every request.
type nopAudio struct{}

func (nopAudio) Play(core.Sound)                      {}
func (nopAudio) Loop(core.Sound)                      {}
func (nopAudio) Stop(core.Sound)                      {}
func (nopAudio) SetVolumes(float64, float64, float64) {}
