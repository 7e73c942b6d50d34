// Package config provides difficulty profiles, YAML-based gameplay tuning
// and the persisted settings record for Spacallax.
package config

// GameConfig contains the gameplay tuning shared by every difficulty.
// Per-difficulty stats live in the profile table, not here.
type GameConfig struct {
	Player   PlayerConfig  `yaml:"player"`
	Enemies  EnemyConfig   `yaml:"enemies"`
	Bullets  BulletConfig  `yaml:"bullets"`
	PowerUps PowerUpConfig `yaml:"powerups"`
	Scaling  ScalingConfig `yaml:"scaling"`
	Effects  EffectsConfig `yaml:"effects"`
	Score    ScoreConfig   `yaml:"score"`
}

// PlayerConfig defines the player ship.
type PlayerConfig struct {
	Size              float64 `yaml:"size"`
	Speed             float64 `yaml:"speed"`
	BottomOffset      float64 `yaml:"bottom_offset"` // spawn distance above the bottom edge
	FireCooldown      float64 `yaml:"fire_cooldown"`
	RapidFireCooldown float64 `yaml:"rapid_fire_cooldown"`
	Invincibility     float64 `yaml:"invincibility"` // seconds after taking damage
}

// EnemyConfig defines spawned enemies.
type EnemyConfig struct {
	Size            float64 `yaml:"size"`
	SpawnY          float64 `yaml:"spawn_y"`
	SpeedJitter     float64 `yaml:"speed_jitter"`   // uniform +/- px/s added at spawn
	FirstShotMin    float64 `yaml:"first_shot_min"` // initial shoot cooldown is uniform in [min, max]
	FirstShotMax    float64 `yaml:"first_shot_max"`
	FireJitter      float64 `yaml:"fire_jitter"`      // re-fire cooldown is interval * (1 +/- jitter)
	SpinSpeed       float64 `yaml:"spin_speed"`       // degrees per second
	DespawnMargin   float64 `yaml:"despawn_margin"`   // removed below height + margin
	MediumThreshold float64 `yaml:"medium_threshold"` // speed ratio above which kills score 15
	FastThreshold   float64 `yaml:"fast_threshold"`   // speed ratio above which kills score 20
}

// BulletConfig defines projectiles for both owners.
type BulletConfig struct {
	Size          float64 `yaml:"size"`
	MuzzleOffset  float64 `yaml:"muzzle_offset"`
	DespawnMargin float64 `yaml:"despawn_margin"`
}

// PowerUpConfig defines power-up spawning and buff durations.
type PowerUpConfig struct {
	Interval  float64 `yaml:"interval"`
	Size      float64 `yaml:"size"`
	FallSpeed float64 `yaml:"fall_speed"`
	Margin    float64 `yaml:"margin"`
	Duration  float64 `yaml:"duration"`
}

// ScalingConfig defines the kill-driven pace ramp.
type ScalingConfig struct {
	SpeedStep          float64 `yaml:"speed_step"`
	MaxSpeedMultiplier float64 `yaml:"max_speed_multiplier"`
	SpawnStep          float64 `yaml:"spawn_step"`
	MinSpawnMultiplier float64 `yaml:"min_spawn_multiplier"`
}

// EffectsConfig defines decorative entities and screen effects.
type EffectsConfig struct {
	Stars               int     `yaml:"stars"`
	StarMinSpeed        float64 `yaml:"star_min_speed"`
	StarMaxSpeed        float64 `yaml:"star_max_speed"`
	ParticleDecay       float64 `yaml:"particle_decay"` // life lost per second
	PopupRise           float64 `yaml:"popup_rise"`     // px/s
	PopupDecay          float64 `yaml:"popup_decay"`
	SpotlightRadius     float64 `yaml:"spotlight_radius"`
	DistortionAmplitude float64 `yaml:"distortion_amplitude"`
	DistortionFrequency float64 `yaml:"distortion_frequency"`
}

// ScoreConfig defines points.
type ScoreConfig struct {
	KillPoints   int     `yaml:"kill_points"` // base; tiers add 5 and 10
	SurvivalRate float64 `yaml:"survival_rate"`
}
