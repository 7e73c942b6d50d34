package config

import (
	_ "embed"
)

//go:embed defaults/spacallax.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the hard-coded gameplay tuning. It matches the
// embedded defaults/spacallax.yaml.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Player: PlayerConfig{
			Size:              40,
			Speed:             400,
			BottomOffset:      100,
			FireCooldown:      0.15,
			RapidFireCooldown: 0.075,
			Invincibility:     1.2,
		},
		Enemies: EnemyConfig{
			Size:            35,
			SpawnY:          -20,
			SpeedJitter:     30,
			FirstShotMin:    0.5,
			FirstShotMax:    2.0,
			FireJitter:      0.2,
			SpinSpeed:       180,
			DespawnMargin:   30,
			MediumThreshold: 1.0,
			FastThreshold:   1.5,
		},
		Bullets: BulletConfig{
			Size:          6,
			MuzzleOffset:  5,
			DespawnMargin: 20,
		},
		PowerUps: PowerUpConfig{
			Interval:  5,
			Size:      16,
			FallSpeed: 100,
			Margin:    20,
			Duration:  5,
		},
		Scaling: ScalingConfig{
			SpeedStep:          0.02,
			MaxSpeedMultiplier: 3.0,
			SpawnStep:          0.01,
			MinSpawnMultiplier: 0.3,
		},
		Effects: EffectsConfig{
			Stars:               200,
			StarMinSpeed:        20,
			StarMaxSpeed:        100,
			ParticleDecay:       2,
			PopupRise:           30,
			PopupDecay:          2,
			SpotlightRadius:     150,
			DistortionAmplitude: 15,
			DistortionFrequency: 3,
		},
		Score: ScoreConfig{
			KillPoints:   10,
			SurvivalRate: 10,
		},
	}
}

// DefaultGameYAML returns the embedded default YAML, used by
// "spacallax profiles --dump".
func DefaultGameYAML() []byte {
	return defaultGameYAML
}
