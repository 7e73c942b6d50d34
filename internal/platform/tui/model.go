package tui

import (
	"fmt"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/spacallax/internal/config"
	"github.com/vovakirdan/spacallax/internal/core"
	"github.com/vovakirdan/spacallax/internal/games/spacallax"
)

// ScoreSaver records finished runs. *storage.Store satisfies it.
type ScoreSaver interface {
	SaveScore(difficulty, player string, score int) (int64, error)
}

// Config holds everything a terminal session needs.
type Config struct {
	Game          config.GameConfig
	Settings      config.Settings
	SettingsStore spacallax.SettingsStore // nil keeps settings in memory
	Audio         spacallax.Audio         // nil plays nothing
	Scores        ScoreSaver              // nil disables score saving
	HighScore     int
	Player        string
	Seed          int64 // 0 seeds from the clock
	TickRate      int
	Cols, Rows    int
	Logger        *log.Logger
}

// Model is the Bubble Tea model running one Spacallax game.
type Model struct {
	game      *spacallax.Game
	presenter *Presenter
	keys      *HeldKeys
	keyMapper *KeyMapper
	styles    styleCache
	scores    ScoreSaver
	player    string
	logger    *log.Logger
	tickRate  int
	lastTick  time.Time
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the given configuration.
func NewModel(cfg Config) Model {
	// Use time-based seed if not specified
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
	presenter := NewPresenter(cfg.Cols, cfg.Rows, settings.Width, settings.Height)
	presenter.fullscreen = settings.Fullscreen
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

	return Model{
		game:      game,
		presenter: presenter,
		keys:      &HeldKeys{},
		keyMapper: NewKeyMapper(),
		styles:    styleCache{},
		scores:    cfg.Scores,
		player:    cfg.Player,
		logger:    cfg.Logger,
		tickRate:  cfg.TickRate,
	}
}

// Game returns the running game.
func (m Model) Game() *spacallax.Game {
	return m.game
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.presenter.SetCells(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}
	for _, k := range keys {
		m.keys.Press(k)
	}
	return m, nil
}

// handleTick advances the game by the wall time since the previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameDelta(m.lastTick, now, m.tickRate)
	m.lastTick = now

	in := m.keys.Frame(dt)
	for _, ev := range m.game.Update(in, dt) {
		if ev.Kind == spacallax.EventGameOver {
			snap := m.game.Snapshot()
			m.logger.Debug("run finished", "frame", snap.Frame, "score", ev.Score, "hash", fmt.Sprintf("%016x", snap.Hash()))
			m.saveScore(ev.Score)
		}
	}
	m.presenter.Tick(dt)

	return m, tickCmd(m.tickRate)
}

func (m Model) saveScore(score int) {
	if m.scores == nil || score <= 0 {
		return
	}
	difficulty := m.game.World().Difficulty().Slug()
	if _, err := m.scores.SaveScore(difficulty, m.player, score); err != nil {
		m.logger.Warn("failed to save score", "difficulty", difficulty, "score", score, "error", err)
		return
	}
	m.logger.Info("score saved", "difficulty", difficulty, "player", m.player, "score", score)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.game.Draw(m.presenter)
	return renderScreen(m.presenter.Screen(), m.styles)
}

// Run starts the Bubble Tea program for a local game.
func Run(cfg Config) error {
	p := tea.NewProgram(
		NewModel(cfg),
		tea.WithAltScreen(), // Use alternate screen buffer
	)
	_, err := p.Run()
	return err
}
