package config

import (
	"fmt"
	"strings"
)

// Difficulty selects one of the fixed difficulty profiles.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	Insane
	SeriouslyInsane
	Unbeatable
	BlindNightmare
	DifficultyCount
)

// Profile is the tuple of base stats and mode flags fixed when a session
// starts. Zero values disable the corresponding rule.
type Profile struct {
	Name string
	Slug string

	EnemySpeed    float64 // base enemy fall speed, px/s
	SpawnInterval float64 // base seconds between enemy spawns
	BulletSpeed   float64 // player bullet speed, px/s
	MaxHealth     int

	EnemyFireInterval float64 // mean seconds between enemy shots; 0 disables enemy fire
	EnemyBulletSpeed  float64
	ShotLockout       float64 // seconds the player must wait between shots; 0 disables
	FireCooldown      float64 // fixed fire cooldown overriding the player default and rapid fire

	PowerUps bool // power-ups spawn
	Blind    bool // restricted visibility around the player
}

// profiles is indexed by Difficulty. Every difficulty has exactly one row.
var profiles = [DifficultyCount]Profile{
	Easy: {
		Name: "Easy", Slug: "easy",
		EnemySpeed: 150, SpawnInterval: 0.6, BulletSpeed: 700, MaxHealth: 3,
		PowerUps: true,
	},
	Medium: {
		Name: "Medium", Slug: "medium",
		EnemySpeed: 200, SpawnInterval: 0.4, BulletSpeed: 600, MaxHealth: 3,
		PowerUps: true,
	},
	Hard: {
		Name: "Hard", Slug: "hard",
		EnemySpeed: 300, SpawnInterval: 0.25, BulletSpeed: 500, MaxHealth: 3,
		PowerUps: true,
	},
	Insane: {
		Name: "Insane", Slug: "insane",
		EnemySpeed: 450, SpawnInterval: 0.15, BulletSpeed: 800, MaxHealth: 1,
		EnemyFireInterval: 1.5, EnemyBulletSpeed: 400, ShotLockout: 5,
	},
	SeriouslyInsane: {
		Name: "Seriously Insane", Slug: "seriously-insane",
		EnemySpeed: 600, SpawnInterval: 0.1, BulletSpeed: 1000, MaxHealth: 1,
		EnemyFireInterval: 1.5, EnemyBulletSpeed: 400, ShotLockout: 5,
	},
	Unbeatable: {
		Name: "Unbeatable", Slug: "unbeatable",
		EnemySpeed: 700, SpawnInterval: 0.08, BulletSpeed: 1000, MaxHealth: 1,
		EnemyFireInterval: 0.5, EnemyBulletSpeed: 600, FireCooldown: 0.1,
	},
	BlindNightmare: {
		Name: "Blind Nightmare", Slug: "blind-nightmare",
		EnemySpeed: 600, SpawnInterval: 0.1, BulletSpeed: 1200, MaxHealth: 1,
		EnemyFireInterval: 0.5, EnemyBulletSpeed: 600, ShotLockout: 2,
		Blind: true,
	},
}

// Profile returns the profile for d. Out-of-range values fall back to Medium.
func (d Difficulty) Profile() Profile {
	if !d.Valid() {
		return profiles[Medium]
	}
	return profiles[d]
}

// Valid reports whether d names a profile.
func (d Difficulty) Valid() bool {
	return d >= 0 && d < DifficultyCount
}

// String returns the display name.
func (d Difficulty) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Difficulty(%d)", int(d))
	}
	return profiles[d].Name
}

// Slug returns the identifier used on the command line and in storage.
func (d Difficulty) Slug() string {
	if !d.Valid() {
		return ""
	}
	return profiles[d].Slug
}

// Next returns the following difficulty, wrapping to Easy.
func (d Difficulty) Next() Difficulty {
	return (d + 1) % DifficultyCount
}

// Prev returns the preceding difficulty, wrapping to BlindNightmare.
func (d Difficulty) Prev() Difficulty {
	return (d + DifficultyCount - 1) % DifficultyCount
}

// EnemiesShoot reports whether enemies fire at the player.
func (p Profile) EnemiesShoot() bool {
	return p.EnemyFireInterval > 0
}

// HasShotLockout reports whether the player shot lockout applies.
func (p Profile) HasShotLockout() bool {
	return p.ShotLockout > 0
}

// Difficulties returns all difficulties in menu order.
func Difficulties() []Difficulty {
	out := make([]Difficulty, DifficultyCount)
	for i := range out {
		out[i] = Difficulty(i)
	}
	return out
}

// ParseDifficulty accepts a slug or display name, case-insensitively.
func ParseDifficulty(s string) (Difficulty, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for d, p := range profiles {
		if key == p.Slug || key == strings.ToLower(p.Name) {
			return Difficulty(d), nil
		}
	}
	return Medium, fmt.Errorf("unknown difficulty %q", s)
}

// DifficultyManager tracks the in-session pace multipliers. Kills are the
// only thing that tightens them.
type DifficultyManager struct {
	cfg       ScalingConfig
	speedMult float64
	spawnMult float64
}

// NewDifficultyManager creates a manager at the starting multipliers.
func NewDifficultyManager(cfg ScalingConfig) *DifficultyManager {
	d := &DifficultyManager{cfg: cfg}
	d.Reset()
	return d
}

// Reset restores both multipliers to 1.
func (d *DifficultyManager) Reset() {
	d.speedMult = 1
	d.spawnMult = 1
}

// OnKill ramps enemy speed up and the spawn interval down, clamped.
func (d *DifficultyManager) OnKill() {
	d.speedMult = clampF(d.speedMult+d.cfg.SpeedStep, 1, d.cfg.MaxSpeedMultiplier)
	d.spawnMult = clampF(d.spawnMult-d.cfg.SpawnStep, d.cfg.MinSpawnMultiplier, 1)
}

// SpeedMultiplier returns the enemy speed multiplier in [1, max].
func (d *DifficultyManager) SpeedMultiplier() float64 {
	return d.speedMult
}

// SpawnMultiplier returns the spawn interval multiplier in [min, 1].
func (d *DifficultyManager) SpawnMultiplier() float64 {
	return d.spawnMult
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
