package spacallax

import (
	"fmt"
	"slices"

	"github.com/vovakirdan/spacallax/internal/config"
	"github.com/vovakirdan/spacallax/internal/core"
)

// Player is the ship controlled by the user.
type Player struct {
	Pos           core.Vec2
	Vel           core.Vec2
	Size          float64
	Speed         float64
	BulletSpeed   float64
	ShootCooldown float64
	Health        int
	MaxHealth     int
}

// Enemy is a falling, spinning hexagon.
type Enemy struct {
	Pos           core.Vec2
	Size          float64
	Speed         float64
	Angle         float64 // degrees
	ShootCooldown float64
}

// PowerUpKind is the effect of a power-up.
type PowerUpKind int

const (
	PowerUpHealth PowerUpKind = iota
	PowerUpRapidFire
	PowerUpShield
	PowerUpScoreMultiplier
	powerUpKinds
)

func (k PowerUpKind) String() string {
	switch k {
	case PowerUpHealth:
		return "health"
	case PowerUpRapidFire:
		return "rapid-fire"
	case PowerUpShield:
		return "shield"
	case PowerUpScoreMultiplier:
		return "score-multiplier"
	default:
		return "unknown"
	}
}

// Color returns the power-up's draw color.
func (k PowerUpKind) Color() core.Color {
	switch k {
	case PowerUpHealth:
		return core.ColorGreen
	case PowerUpRapidFire:
		return core.ColorOrange
	case PowerUpShield:
		return core.ColorCyan
	case PowerUpScoreMultiplier:
		return core.ColorGold
	default:
		return core.ColorWhite
	}
}

// PowerUp is a falling pickup.
type PowerUp struct {
	Pos  core.Vec2
	Size float64
	Kind PowerUpKind
}

// World is the state of one session, from game start to game over.
// Restarting replaces the World rather than resetting it.
type World struct {
	cfg        config.GameConfig
	difficulty config.Difficulty
	profile    config.Profile
	rng        Random

	width, height float64

	Player        Player
	Enemies       []Enemy
	PlayerBullets []BulletRef
	EnemyBullets  []BulletRef
	PowerUps      []PowerUp
	Particles     []Particle
	Popups        []Popup

	Timers  Timers
	pools   [2]*Pool
	scalar  *config.DifficultyManager
	spawner Spawner

	Score    int
	survival float64 // fractional survival points not yet awarded
	over     bool
	events   []Event
}

// NewWorld starts a session on the given difficulty in a playfield of
// width x height pixels.
func NewWorld(cfg config.GameConfig, d config.Difficulty, rng Random, width, height float64) *World {
	p := d.Profile()
	w := &World{
		cfg:        cfg,
		difficulty: d,
		profile:    p,
		rng:        rng,
		width:      width,
		height:     height,
		pools: [2]*Pool{
			OwnerPlayer: NewPool(OwnerPlayer, cfg.Bullets.Size),
			OwnerEnemy:  NewPool(OwnerEnemy, cfg.Bullets.Size),
		},
		scalar: config.NewDifficultyManager(cfg.Scaling),
	}
	w.Player = Player{
		Pos:         core.Vec2{X: width / 2, Y: height - cfg.Player.BottomOffset},
		Size:        cfg.Player.Size,
		Speed:       cfg.Player.Speed,
		BulletSpeed: p.BulletSpeed,
		Health:      p.MaxHealth,
		MaxHealth:   p.MaxHealth,
	}
	return w
}

// Difficulty returns the session difficulty.
func (w *World) Difficulty() config.Difficulty {
	return w.difficulty
}

// Profile returns the session profile.
func (w *World) Profile() config.Profile {
	return w.profile
}

// Over reports whether the player has run out of health.
func (w *World) Over() bool {
	return w.over
}

// Events returns the events of the last Step. The slice is reused.
func (w *World) Events() []Event {
	return w.events
}

// Pool returns the projectile pool of an owner.
func (w *World) Pool(o Owner) *Pool {
	return w.pools[o]
}

// SpeedMultiplier returns the kill-driven enemy speed multiplier.
func (w *World) SpeedMultiplier() float64 {
	return w.scalar.SpeedMultiplier()
}

// SpawnMultiplier returns the kill-driven spawn interval multiplier.
func (w *World) SpawnMultiplier() float64 {
	return w.scalar.SpawnMultiplier()
}

// EnemySpawnInterval returns the current seconds between enemy spawns.
func (w *World) EnemySpawnInterval() float64 {
	return w.profile.SpawnInterval * w.scalar.SpawnMultiplier()
}

// Step advances one Playing frame. Bounds are re-read every frame.
func (w *World) Step(in Input, dt, width, height float64) {
	w.events = w.events[:0]
	w.width, w.height = width, height
	if w.over {
		w.UpdateEffects(dt)
		return
	}

	w.Timers.Tick(dt)
	w.Player.ShootCooldown = countdown(w.Player.ShootCooldown, dt)
	w.awardSurvival(dt)

	w.fire(in)
	w.movePlayer(in, dt)

	w.spawn(dt)

	w.stepEnemies(dt)
	w.stepPlayerBullets(dt)
	w.stepEnemyBullets(dt)
	w.stepPowerUps(dt)

	w.collide()

	w.UpdateEffects(dt)
}

func (w *World) emit(e Event) {
	w.events = append(w.events, e)
}

func (w *World) awardSurvival(dt float64) {
	w.survival += dt * w.cfg.Score.SurvivalRate
	if whole := int(w.survival); whole > 0 {
		w.Score += whole
		w.survival -= float64(whole)
	}
}

// fireCooldown is the delay before the next shot.
func (w *World) fireCooldown() float64 {
	if w.profile.FireCooldown > 0 {
		return w.profile.FireCooldown
	}
	if w.Timers.RapidFire > 0 {
		return w.cfg.Player.RapidFireCooldown
	}
	return w.cfg.Player.FireCooldown
}

// fire shoots on a fresh press of the fire key once the cooldown has
// elapsed. Holding the key does not repeat. During a shot lockout the
// press is rejected with a wait popup.
func (w *World) fire(in Input) {
	if !in.Pressed(core.KeyFire) || w.Player.ShootCooldown > 0 {
		return
	}

	p := &w.Player
	if w.profile.HasShotLockout() && w.Timers.ShotLockout > 0 {
		w.addPopup(core.Vec2{X: p.Pos.X, Y: p.Pos.Y - 30},
			fmt.Sprintf("WAIT %.1fs", w.Timers.ShotLockout), 0.8, core.ColorRed)
		w.emit(Event{Kind: EventShotBlocked, Pos: p.Pos})
		return
	}

	p.ShootCooldown = w.fireCooldown()
	if w.profile.HasShotLockout() {
		w.Timers.ShotLockout = w.profile.ShotLockout
	}

	muzzle := core.Vec2{X: p.Pos.X, Y: p.Pos.Y - p.Size/2}
	ref := w.pools[OwnerPlayer].Acquire(core.Vec2{X: muzzle.X, Y: muzzle.Y - w.cfg.Bullets.MuzzleOffset})
	w.PlayerBullets = append(w.PlayerBullets, ref)

	for range 5 {
		w.Particles = append(w.Particles, Particle{
			Pos:   muzzle,
			Vel:   core.Vec2{X: w.rng.Float(-30, 30), Y: w.rng.Float(-80, -40)},
			Life:  0.3,
			Color: core.Color{R: 255, G: 255, B: 100, A: 200},
		})
	}
	w.emit(Event{Kind: EventShot, Pos: muzzle})
}

func (w *World) movePlayer(in Input, dt float64) {
	var dir core.Vec2
	if in.Held(core.KeyLeft) {
		dir.X--
	}
	if in.Held(core.KeyRight) {
		dir.X++
	}
	if in.Held(core.KeyUp) {
		dir.Y--
	}
	if in.Held(core.KeyDown) {
		dir.Y++
	}

	p := &w.Player
	p.Vel = dir.Normalize().Scale(p.Speed)
	p.Pos = p.Pos.Add(p.Vel.Scale(dt))

	half := p.Size / 2
	p.Pos.X = core.ClampF(p.Pos.X, half, w.width-half)
	p.Pos.Y = core.ClampF(p.Pos.Y, half, w.height-half)
}

func (w *World) spawn(dt float64) {
	for range w.spawner.Enemies(dt, w.EnemySpawnInterval()) {
		w.spawnEnemy()
	}
	for range w.spawner.PowerUps(dt, w.cfg.PowerUps.Interval, w.profile.PowerUps) {
		w.spawnPowerUp()
	}
}

func (w *World) spawnEnemy() {
	margin := w.Player.Size / 2
	ec := w.cfg.Enemies
	w.Enemies = append(w.Enemies, Enemy{
		Pos:           core.Vec2{X: w.rng.Float(margin, w.width-margin), Y: ec.SpawnY},
		Size:          ec.Size,
		Speed:         w.profile.EnemySpeed*w.scalar.SpeedMultiplier() + w.rng.Float(-ec.SpeedJitter, ec.SpeedJitter),
		ShootCooldown: w.rng.Float(ec.FirstShotMin, ec.FirstShotMax),
	})
}

func (w *World) spawnPowerUp() {
	pc := w.cfg.PowerUps
	w.PowerUps = append(w.PowerUps, PowerUp{
		Pos:  core.Vec2{X: w.rng.Float(pc.Margin, w.width-pc.Margin), Y: w.cfg.Enemies.SpawnY},
		Size: pc.Size,
		Kind: PowerUpKind(w.rng.Int(0, int(powerUpKinds))),
	})
}

func (w *World) stepEnemies(dt float64) {
	ec := w.cfg.Enemies
	interval := w.profile.EnemyFireInterval
	for i := len(w.Enemies) - 1; i >= 0; i-- {
		e := &w.Enemies[i]
		e.Pos.Y += e.Speed * dt
		e.Angle += ec.SpinSpeed * dt

		if w.profile.EnemiesShoot() {
			e.ShootCooldown -= dt
			if e.ShootCooldown <= 0 {
				muzzle := core.Vec2{X: e.Pos.X, Y: e.Pos.Y + e.Size/2}
				w.EnemyBullets = append(w.EnemyBullets, w.pools[OwnerEnemy].Acquire(muzzle))
				e.ShootCooldown = w.rng.Float(interval*(1-ec.FireJitter), interval*(1+ec.FireJitter))
				w.emit(Event{Kind: EventEnemyShot, Pos: muzzle})
			}
		}

		if e.Pos.Y > w.height+ec.DespawnMargin {
			w.Enemies = slices.Delete(w.Enemies, i, i+1)
		}
	}
}

func (w *World) stepPlayerBullets(dt float64) {
	pool := w.pools[OwnerPlayer]
	for i := len(w.PlayerBullets) - 1; i >= 0; i-- {
		ref := w.PlayerBullets[i]
		b := pool.Get(ref)
		b.Pos.Y -= w.Player.BulletSpeed * dt
		if b.Pos.Y < -w.cfg.Bullets.DespawnMargin {
			w.PlayerBullets = w.releaseAt(w.PlayerBullets, i)
		}
	}
}

func (w *World) stepEnemyBullets(dt float64) {
	pool := w.pools[OwnerEnemy]
	for i := len(w.EnemyBullets) - 1; i >= 0; i-- {
		b := pool.Get(w.EnemyBullets[i])
		b.Pos.Y += w.profile.EnemyBulletSpeed * dt
		if b.Pos.Y > w.height+w.cfg.Bullets.DespawnMargin {
			w.EnemyBullets = w.releaseAt(w.EnemyBullets, i)
		}
	}
}

func (w *World) stepPowerUps(dt float64) {
	for i := len(w.PowerUps) - 1; i >= 0; i-- {
		p := &w.PowerUps[i]
		p.Pos.Y += w.cfg.PowerUps.FallSpeed * dt
		if p.Pos.Y > w.height+w.cfg.Enemies.DespawnMargin {
			w.PowerUps = slices.Delete(w.PowerUps, i, i+1)
		}
	}
}

// releaseAt returns the projectile at index i of an active list to its
// pool and removes it from the list.
func (w *World) releaseAt(list []BulletRef, i int) []BulletRef {
	ref := list[i]
	w.pools[ref.Owner()].Release(ref)
	return slices.Delete(list, i, i+1)
}
