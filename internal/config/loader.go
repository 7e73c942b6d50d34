package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const gameConfigFile = "spacallax.yaml"

// LoadGame loads gameplay tuning.
// Search order: customPath -> ~/.spacallax/configs/spacallax.yaml -> ./configs/spacallax.yaml -> embedded default
//
// Files are decoded over the defaults, so a partial file only overrides
// the keys it names.
func LoadGame(customPath string) (GameConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultGameConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseGame(data)
		if err != nil {
			return DefaultGameConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(gameConfigFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseGame(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", gameConfigFile)); err == nil {
		if cfg, err := parseGame(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseGame(defaultGameYAML)
	if err != nil {
		return DefaultGameConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func parseGame(data []byte) (GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects tuning that would stall or invert the simulation.
func (c GameConfig) Validate() error {
	switch {
	case c.Player.Size <= 0 || c.Enemies.Size <= 0 || c.Bullets.Size <= 0 || c.PowerUps.Size <= 0:
		return fmt.Errorf("entity sizes must be positive")
	case c.Player.FireCooldown <= 0 || c.Player.RapidFireCooldown <= 0:
		return fmt.Errorf("fire cooldowns must be positive")
	case c.PowerUps.Interval <= 0:
		return fmt.Errorf("powerups.interval must be positive")
	case c.Enemies.FirstShotMax < c.Enemies.FirstShotMin:
		return fmt.Errorf("enemies.first_shot_max must be >= first_shot_min")
	case c.Scaling.MaxSpeedMultiplier < 1 || c.Scaling.MaxSpeedMultiplier > 3:
		return fmt.Errorf("scaling.max_speed_multiplier must be in [1, 3]")
	case c.Scaling.MinSpawnMultiplier < 0.3 || c.Scaling.MinSpawnMultiplier > 1:
		return fmt.Errorf("scaling.min_spawn_multiplier must be in [0.3, 1]")
	case c.Scaling.SpeedStep < 0 || c.Scaling.SpawnStep < 0:
		return fmt.Errorf("scaling steps must not be negative")
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	dir := UserDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "configs", filename)
}

// UserDir returns ~/.spacallax, or empty if home is unavailable.
func UserDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".spacallax")
}
