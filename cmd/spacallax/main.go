// spacallax is a real-time arcade shooter for the terminal and the desktop.
//
// Usage:
//
//	spacallax play              - Play in the terminal
//	spacallax window            - Play in a desktop window
//	spacallax scores [level]    - Show high scores
//	spacallax serve             - Start SSH server for remote play
//	spacallax profiles          - List difficulty profiles
//	spacallax settings          - Show or reset saved settings
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.spacallax/scores.db)
//	--settings <path>   - Set settings file (default: ~/.spacallax/settings.yaml)
//	--config <path>     - Load gameplay tuning from a YAML file
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/spacallax/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagSettings string
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "spacallax",
	Short: "SPACALLAX - a vertical space shooter",
	Long: `SPACALLAX is a real-time arcade shooter. Dodge and destroy falling
enemies across seven difficulty profiles, from Easy to Blind Nightmare.

Available commands:
  play      - Play in the terminal
  window    - Play in a desktop window
  scores    - View high scores
  serve     - Start SSH server for remote play
  profiles  - List difficulty profiles
  settings  - Show or reset saved settings

Examples:
  spacallax play
  spacallax window
  spacallax scores insane
  spacallax serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagSettings, "settings", "", "Path to settings file (default ~/.spacallax/settings.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom gameplay tuning YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(profilesCmd)
	rootCmd.AddCommand(settingsCmd)
}
