package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/spacallax/internal/config"
)

var flagDump bool

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List difficulty profiles",
	Long: `Shows the base stats and mode flags of every difficulty profile.

With --dump, prints the default gameplay tuning YAML instead. Save it to
~/.spacallax/configs/spacallax.yaml or pass it with --config to tweak it.`,
	Args: cobra.NoArgs,
	Run:  runProfiles,
}

func init() {
	profilesCmd.Flags().BoolVar(&flagDump, "dump", false, "Print the default tuning YAML")
}

func runProfiles(cmd *cobra.Command, args []string) {
	if flagDump {
		os.Stdout.Write(config.DefaultGameYAML())
		return
	}

	fmt.Println("Difficulty profiles:")
	fmt.Println()

	// Print header
	fmt.Printf("  %-18s  %-6s  %-6s  %-7s  %-6s  %-10s  %-8s  %s\n",
		"Name", "Speed", "Spawn", "Bullet", "Health", "Enemy fire", "Lockout", "Flags")
	fmt.Printf("  %-18s  %-6s  %-6s  %-7s  %-6s  %-10s  %-8s  %s\n",
		"----", "-----", "-----", "------", "------", "----------", "-------", "-----")

	for _, d := range config.Difficulties() {
		p := d.Profile()
		fire := "-"
		if p.EnemiesShoot() {
			fire = fmt.Sprintf("%.1fs", p.EnemyFireInterval)
		}
		lockout := "-"
		if p.HasShotLockout() {
			lockout = fmt.Sprintf("%.0fs", p.ShotLockout)
		}
		fmt.Printf("  %-18s  %-6.0f  %-6.2f  %-7.0f  %-6d  %-10s  %-8s  %s\n",
			p.Name, p.EnemySpeed, p.SpawnInterval, p.BulletSpeed, p.MaxHealth, fire, lockout, profileFlags(p))
	}

	fmt.Println()
	fmt.Println("Run 'spacallax scores <slug>' to see scores, e.g. 'spacallax scores blind-nightmare'.")
}

func profileFlags(p config.Profile) string {
	flags := ""
	add := func(s string) {
		if flags != "" {
			flags += ","
		}
		flags += s
	}
	if p.PowerUps {
		add("power-ups")
	}
	if p.FireCooldown > 0 {
		add(fmt.Sprintf("fire-every-%.1fs", p.FireCooldown))
	}
	if p.Blind {
		add("blind")
	}
	if flags == "" {
		return "-"
	}
	return flags
}
