package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/spacallax/internal/audio"
	"github.com/vovakirdan/spacallax/internal/core"
	"github.com/vovakirdan/spacallax/internal/platform/tui"
)

var flagMute bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start SPACALLAX in the terminal.

Controls:
  Left/Right, A/D  - Move (menu: pick difficulty)
  Up/Down, W/S     - Move (settings: pick item)
  Space            - Fire / start / restart
  Enter            - Start / restart
  S                - Settings (from the menu)
  Esc              - Leave settings
  R                - Back to menu (after game over)
  F/F11            - Toggle fullscreen
  Q/Ctrl+C         - Quit

The playfield keeps the resolution from settings and is scaled onto the
terminal. Logs go to ~/.spacallax/spacallax.log.

Examples:
  spacallax play
  spacallax play --seed 42
  spacallax play --mute
  spacallax play --config ./my-tuning.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

// openAudio starts the speaker, or returns nil when muted or no device is
// available.
func openAudio(logger *log.Logger) *audio.Sink {
	if flagMute {
		return nil
	}
	sink := audio.NewSink(logger)
	if err := sink.Init(); err != nil {
		logger.Warn("audio disabled", "error", err)
		return nil
	}
	return sink
}

func runPlay(cmd *cobra.Command, args []string) {
	logger, closeLog := fileLogger()
	defer closeLog()

	sess, err := openSession(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size for the first frame
	rt := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}
	rt.TickRate = flagFPS
	rt.Seed = flagSeed

	cfg := tui.Config{
		Game:          sess.game,
		Settings:      sess.settings,
		SettingsStore: sess.file,
		Scores:        sess.saver(),
		HighScore:     sess.highScore,
		Seed:          rt.Seed,
		TickRate:      rt.TickRate,
		Cols:          rt.ScreenW,
		Rows:          rt.ScreenH,
		Logger:        logger,
	}
	if sink := openAudio(logger); sink != nil {
		defer sink.Close()
		cfg.Audio = sink
	}

	// Run the game
	runErr := tui.Run(cfg)

	// Close store before potential exit
	sess.close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
