package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/spacallax/internal/platform/window"
)

var flagDebug bool

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start SPACALLAX in a desktop window.

The window size, fullscreen and vsync come from the settings file and can
be changed in game. Esc on the title screen closes the window.

Examples:
  spacallax window
  spacallax window --debug
  spacallax window --settings ./settings.yaml`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	windowCmd.Flags().BoolVar(&flagDebug, "debug", false, "Show TPS/FPS overlay")
}

func runWindow(cmd *cobra.Command, args []string) {
	logger := newLogger(os.Stderr, "spacallax")

	sess, err := openSession(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := window.Config{
		Game:          sess.game,
		Settings:      sess.settings,
		SettingsStore: sess.file,
		Scores:        sess.saver(),
		HighScore:     sess.highScore,
		Seed:          flagSeed,
		TickRate:      flagFPS,
		Debug:         flagDebug,
		Logger:        logger,
	}
	if sink := openAudio(logger); sink != nil {
		defer sink.Close()
		cfg.Audio = sink
	}

	runErr := window.Run(cfg)
	sess.close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
