package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/spacallax/internal/config"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show saved settings",
	Long: `Print the settings the game will start with.

Settings are edited in game (S on the title screen) and saved to
~/.spacallax/settings.yaml, or the file given with --settings.`,
	Args: cobra.NoArgs,
	Run:  runSettings,
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore default settings",
	Args:  cobra.NoArgs,
	Run:   runSettingsReset,
}

func init() {
	settingsCmd.AddCommand(settingsResetCmd)
}

func runSettings(cmd *cobra.Command, args []string) {
	file := settingsFile()
	s, err := file.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (showing defaults)\n", err)
	}

	fmt.Printf("Settings - %s\n", file.Path())
	fmt.Println()
	fmt.Printf("  %-14s %dx%d\n", "Resolution", s.Width, s.Height)
	fmt.Printf("  %-14s %s\n", "Fullscreen", onOff(s.Fullscreen))
	fmt.Printf("  %-14s %s\n", "VSync", onOff(s.VSync))
	fmt.Printf("  %-14s %.0f%%\n", "Master Volume", s.MasterVolume*100)
	fmt.Printf("  %-14s %.0f%%\n", "Sound Volume", s.SoundVolume*100)
	fmt.Printf("  %-14s %.0f%%\n", "Music Volume", s.MusicVolume*100)
	fmt.Println()
	fmt.Printf("Effective: sound %.0f%%, music %.0f%%\n", s.EffectiveSound()*100, s.EffectiveMusic()*100)
}

func runSettingsReset(cmd *cobra.Command, args []string) {
	file := settingsFile()
	if err := file.Save(config.DefaultSettings()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Settings reset: %s\n", file.Path())
}

func onOff(on bool) string {
	if on {
		return "ON"
	}
	return "OFF"
}
