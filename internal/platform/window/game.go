package window

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/spacallax/internal/config"
	"github.com/vovakirdan/spacallax/internal/core"
	"github.com/vovakirdan/spacallax/internal/games/spacallax"
)

// ScoreSaver records finished runs. *storage.Store satisfies it.
type ScoreSaver interface {
	SaveScore(difficulty, player string, score int) (int64, error)
}

// Config holds everything a window session needs.
type Config struct {
	Game          config.GameConfig
	Settings      config.Settings
	SettingsStore spacallax.SettingsStore
	Audio         spacallax.Audio
	Scores        ScoreSaver
	HighScore     int
	Player        string
	Seed          int64 // 0 seeds from the clock
	TickRate      int
	Debug         bool // draw a TPS/FPS overlay
	Logger        *log.Logger
}

// Game adapts a Spacallax game to ebiten.Game.
type Game struct {
	game      *spacallax.Game
	presenter *Presenter
	scores    ScoreSaver
	player    string
	logger    *log.Logger
	tickRate  int
	debug     bool
}

// NewGame creates the window adapter and the game behind it.
func NewGame(cfg Config) (*Game, error) {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}

	settings := cfg.Settings.Normalize()
	presenter, err := NewPresenter(settings.Width, settings.Height)
	if err != nil {
		return nil, err
	}
	presenter.fullscreen = settings.Fullscreen
	presenter.vsync = settings.VSync

	game := spacallax.New(spacallax.Options{
		Config:    cfg.Game,
		Settings:  settings,
		Store:     cfg.SettingsStore,
		Random:    core.NewRNG(cfg.Seed),
		Audio:     cfg.Audio,
		Display:   presenter,
		Logger:    cfg.Logger,
		HighScore: cfg.HighScore,
	})

	return &Game{
		game:      game,
		presenter: presenter,
		scores:    cfg.Scores,
		player:    cfg.Player,
		logger:    cfg.Logger,
		tickRate:  cfg.TickRate,
		debug:     cfg.Debug,
	}, nil
}

// Update runs one fixed-rate tick.
func (g *Game) Update() error {
	dt := core.RuntimeConfig{TickRate: g.tickRate}.FrameDelta()
	in := readInput(ebiten.IsKeyPressed, inpututil.IsKeyJustPressed)

	// Escape on the title screen closes the window.
	if g.game.State() == spacallax.StateMenu && in.Pressed(core.KeyEscape) {
		return ebiten.Termination
	}

	for _, ev := range g.game.Update(in, dt) {
		if ev.Kind == spacallax.EventGameOver {
			g.saveScore(ev.Score)
		}
	}
	g.presenter.Tick(dt)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.presenter.Begin(screen)
	g.game.Draw(g.presenter)
	g.presenter.End()

	if g.debug {
		_, h := g.presenter.Size()
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS: %.0f  FPS: %.0f", ebiten.ActualTPS(), ebiten.ActualFPS()), 10, h-50)
	}
}

// Layout keeps the logical playfield size regardless of the window size.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.presenter.Size()
}

func (g *Game) saveScore(score int) {
	if g.scores == nil || score <= 0 {
		return
	}
	difficulty := g.game.World().Difficulty().Slug()
	if _, err := g.scores.SaveScore(difficulty, g.player, score); err != nil {
		g.logger.Warn("failed to save score", "difficulty", difficulty, "score", score, "error", err)
		return
	}
	g.logger.Info("score saved", "difficulty", difficulty, "player", g.player, "score", score)
}

// Run opens the window and blocks until it is closed.
func Run(cfg Config) error {
	g, err := NewGame(cfg)
	if err != nil {
		return err
	}
	settings := g.game.Settings()

	ebiten.SetWindowTitle("SPACALLAX " + spacallax.Version)
	ebiten.SetWindowSize(settings.Width, settings.Height)
	ebiten.SetFullscreen(settings.Fullscreen)
	ebiten.SetVsyncEnabled(settings.VSync)
	ebiten.SetTPS(g.tickRate)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}
