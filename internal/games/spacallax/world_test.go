package spacallax

import (
	"math"
	"strings"
	"testing"

	"github.com/vovakirdan/spacallax/internal/config"
	"github.com/vovakirdan/spacallax/internal/core"
)

const (
	testW = 800
	testH = 600
)

func newTestWorld(d config.Difficulty) *World {
	return NewWorld(config.DefaultGameConfig(), d, core.NewRNG(7), testW, testH)
}

func addPlayerBullet(w *World, pos core.Vec2) {
	w.PlayerBullets = append(w.PlayerBullets, w.Pool(OwnerPlayer).Acquire(pos))
}

func addEnemyBullet(w *World, pos core.Vec2) {
	w.EnemyBullets = append(w.EnemyBullets, w.Pool(OwnerEnemy).Acquire(pos))
}

func addEnemy(w *World, pos core.Vec2) {
	w.Enemies = append(w.Enemies, Enemy{Pos: pos, Size: 35, Speed: w.Profile().EnemySpeed, ShootCooldown: 10})
}

func eventsOf(w *World, kind EventKind) []Event {
	var out []Event
	for _, e := range w.Events() {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

func TestNewWorldProfiles(t *testing.T) {
	tests := []struct {
		d           config.Difficulty
		enemySpeed  float64
		spawn       float64
		bulletSpeed float64
		health      int
		fireEvery   float64
	}{
		{config.Easy, 150, 0.6, 700, 3, 0},
		{config.Medium, 200, 0.4, 600, 3, 0},
		{config.Insane, 450, 0.15, 800, 1, 1.5},
		{config.Unbeatable, 700, 0.08, 1000, 1, 0.5},
		{config.BlindNightmare, 600, 0.1, 1200, 1, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.d.Slug(), func(t *testing.T) {
			w := newTestWorld(tt.d)
			p := w.Profile()
			if p.EnemySpeed != tt.enemySpeed {
				t.Errorf("EnemySpeed = %v, expected %v", p.EnemySpeed, tt.enemySpeed)
			}
			if w.EnemySpawnInterval() != tt.spawn {
				t.Errorf("EnemySpawnInterval = %v, expected %v", w.EnemySpawnInterval(), tt.spawn)
			}
			if w.Player.BulletSpeed != tt.bulletSpeed {
				t.Errorf("BulletSpeed = %v, expected %v", w.Player.BulletSpeed, tt.bulletSpeed)
			}
			if w.Player.Health != tt.health || w.Player.MaxHealth != tt.health {
				t.Errorf("Health = %d/%d, expected %d/%d", w.Player.Health, w.Player.MaxHealth, tt.health, tt.health)
			}
			if p.EnemyFireInterval != tt.fireEvery {
				t.Errorf("EnemyFireInterval = %v, expected %v", p.EnemyFireInterval, tt.fireEvery)
			}
			if w.Player.Pos.X != testW/2 || w.Player.Pos.Y != testH-100 {
				t.Errorf("Player at %+v, expected (400, 500)", w.Player.Pos)
			}
		})
	}
}

func TestSpawnerCatchUp(t *testing.T) {
	var s Spawner
	if n := s.Enemies(3*0.6, 0.6); n != 3 {
		t.Errorf("Enemies(1.8, 0.6) = %d, expected 3", n)
	}
	if n := s.Enemies(0.3, 0.6); n != 0 {
		t.Errorf("Enemies(0.3, 0.6) = %d, expected 0", n)
	}
	if n := s.Enemies(0.3, 0.6); n != 1 {
		t.Errorf("Enemies(0.3, 0.6) after debt = %d, expected 1", n)
	}

	if n := s.PowerUps(20, 5, false); n != 0 {
		t.Errorf("disabled PowerUps = %d, expected 0", n)
	}
	if n := s.PowerUps(5, 5, true); n != 1 {
		t.Errorf("PowerUps(5, 5) = %d, expected 1 (no time accrued while disabled)", n)
	}
}

func TestWorldSpawnCatchUp(t *testing.T) {
	w := newTestWorld(config.Easy)
	w.Step(core.NewInputFrame(), 3*w.EnemySpawnInterval(), testW, testH)

	if len(w.Enemies) != 3 {
		t.Fatalf("enemies after 3 intervals = %d, expected 3", len(w.Enemies))
	}
	ec := config.DefaultGameConfig().Enemies
	for i, e := range w.Enemies {
		if e.Pos.X < w.Player.Size/2 || e.Pos.X > testW-w.Player.Size/2 {
			t.Errorf("enemy %d x = %v outside spawn band", i, e.Pos.X)
		}
		if e.Speed < 150-ec.SpeedJitter || e.Speed >= 150+ec.SpeedJitter {
			t.Errorf("enemy %d speed = %v, expected 150±%v", i, e.Speed, ec.SpeedJitter)
		}
	}
}

func TestPowerUpsSuppressedInHardModes(t *testing.T) {
	for _, d := range []config.Difficulty{config.Insane, config.Unbeatable, config.BlindNightmare} {
		w := newTestWorld(d)
		w.spawn(12)
		if len(w.PowerUps) != 0 {
			t.Errorf("%s: power-ups = %d, expected 0", d, len(w.PowerUps))
		}
	}

	w := newTestWorld(config.Easy)
	w.spawn(10)
	if len(w.PowerUps) != 2 {
		t.Errorf("easy: power-ups after 10s = %d, expected 2", len(w.PowerUps))
	}
}

func TestOneKillPerBullet(t *testing.T) {
	w := newTestWorld(config.Easy)
	pos := core.Vec2{X: 100, Y: 100}
	addEnemy(w, pos)
	addEnemy(w, pos)
	addEnemy(w, pos)
	addPlayerBullet(w, pos)

	w.collide()

	if len(w.Enemies) != 2 {
		t.Errorf("enemies = %d, expected 2", len(w.Enemies))
	}
	if n := len(eventsOf(w, EventKill)); n != 1 {
		t.Errorf("kill events = %d, expected 1", n)
	}
	if len(w.PlayerBullets) != 0 || w.Pool(OwnerPlayer).InUse() != 0 {
		t.Errorf("bullet should be released, active list %d, in use %d",
			len(w.PlayerBullets), w.Pool(OwnerPlayer).InUse())
	}

	addPlayerBullet(w, pos)
	addPlayerBullet(w, pos)
	w.collide()
	if len(w.Enemies) != 0 {
		t.Errorf("enemies after two more bullets = %d, expected 0", len(w.Enemies))
	}
}

func TestKillPointTiers(t *testing.T) {
	w := newTestWorld(config.Easy)
	tests := []struct {
		speed float64
		want  int
	}{
		{150, 10},
		{160, 15},
		{226, 20},
	}
	for _, tt := range tests {
		if got := w.killPoints(Enemy{Speed: tt.speed}); got != tt.want {
			t.Errorf("killPoints(speed %v) = %d, expected %d", tt.speed, got, tt.want)
		}
	}
}

func TestScoreMultiplierScenario(t *testing.T) {
	w := newTestWorld(config.Easy)
	w.PowerUps = append(w.PowerUps, PowerUp{Pos: w.Player.Pos, Size: 20, Kind: PowerUpScoreMultiplier})
	w.collide()

	if len(w.PowerUps) != 0 {
		t.Fatalf("power-up not picked up")
	}
	if w.Timers.ScoreMult != 5 {
		t.Fatalf("ScoreMult = %v, expected 5", w.Timers.ScoreMult)
	}

	kill := func() int {
		w.events = w.events[:0]
		pos := core.Vec2{X: 100, Y: 100}
		addEnemy(w, pos)
		addPlayerBullet(w, pos)
		w.collide()
		kills := eventsOf(w, EventKill)
		if len(kills) != 1 {
			t.Fatalf("kill events = %d, expected 1", len(kills))
		}
		return kills[0].Points
	}

	if got := kill(); got != 20 {
		t.Errorf("kill under multiplier = %d, expected 20", got)
	}

	w.Timers.Tick(5)
	if got := kill(); got != 10 {
		t.Errorf("kill after multiplier expired = %d, expected 10", got)
	}
	if w.Score != 30 {
		t.Errorf("Score = %d, expected 30", w.Score)
	}
}

func TestShieldBlocksDamage(t *testing.T) {
	w := newTestWorld(config.Easy)
	w.Timers.Shield = 5
	for range 3 {
		addEnemyBullet(w, w.Player.Pos)
		addEnemy(w, w.Player.Pos)
	}

	for range 10 {
		w.collide()
	}

	if w.Player.Health != 3 {
		t.Errorf("Health = %d, expected 3", w.Player.Health)
	}
	if len(eventsOf(w, EventPlayerHit)) != 0 {
		t.Errorf("unexpected player hit events")
	}
}

func TestInvincibilityWindow(t *testing.T) {
	w := newTestWorld(config.Easy)
	addEnemyBullet(w, w.Player.Pos)
	addEnemyBullet(w, w.Player.Pos)
	addEnemy(w, w.Player.Pos)

	w.collide()
	if w.Player.Health != 2 {
		t.Fatalf("Health = %d, expected 2", w.Player.Health)
	}
	if w.Timers.Invincible != 1.2 {
		t.Errorf("Invincible = %v, expected 1.2", w.Timers.Invincible)
	}
	if len(w.EnemyBullets) != 1 || len(w.Enemies) != 1 {
		t.Errorf("bullets/enemies = %d/%d, expected 1/1 after a single hit", len(w.EnemyBullets), len(w.Enemies))
	}

	for range 5 {
		w.Timers.Tick(0.1)
		w.collide()
	}
	if w.Player.Health != 2 {
		t.Errorf("Health = %d, expected 2 during invincibility", w.Player.Health)
	}
}

func TestEnemyCollisionRemovesByIndex(t *testing.T) {
	w := newTestWorld(config.Easy)
	far := core.Vec2{X: 50, Y: 50}
	addEnemy(w, far)
	addEnemy(w, w.Player.Pos)
	addEnemy(w, far)

	w.collide()

	if len(w.Enemies) != 2 {
		t.Fatalf("enemies = %d, expected 2", len(w.Enemies))
	}
	for _, e := range w.Enemies {
		if e.Pos != far {
			t.Errorf("remaining enemy at %+v, expected %+v", e.Pos, far)
		}
	}
	if w.Player.Health != 2 {
		t.Errorf("Health = %d, expected 2", w.Player.Health)
	}
	hits := eventsOf(w, EventPlayerHit)
	if len(hits) != 1 || hits[0].ShakeMagnitude != 15 || hits[0].ShakeDuration != 0.4 {
		t.Errorf("hit events = %+v, expected one shake(15, 0.4)", hits)
	}
}

func TestGameOverSkipsLaterPasses(t *testing.T) {
	w := newTestWorld(config.Unbeatable)
	addEnemyBullet(w, w.Player.Pos)
	w.PowerUps = append(w.PowerUps, PowerUp{Pos: w.Player.Pos, Size: 20, Kind: PowerUpShield})

	w.collide()

	if !w.Over() {
		t.Fatal("expected game over")
	}
	if len(w.PowerUps) != 1 {
		t.Errorf("power-ups = %d, expected pickup pass to be skipped", len(w.PowerUps))
	}
	over := eventsOf(w, EventGameOver)
	if len(over) != 1 {
		t.Errorf("game over events = %d, expected 1", len(over))
	}
}

func TestPowerUpEffects(t *testing.T) {
	tests := []struct {
		kind  PowerUpKind
		check func(w *World) bool
		popup string
	}{
		{PowerUpHealth, func(w *World) bool { return w.Player.Health == 3 }, "+HEALTH"},
		{PowerUpRapidFire, func(w *World) bool { return w.Timers.RapidFire == 5 }, "RAPID FIRE!"},
		{PowerUpShield, func(w *World) bool { return w.Timers.Shield == 5 }, "SHIELD!"},
		{PowerUpScoreMultiplier, func(w *World) bool { return w.Timers.ScoreMult == 5 }, "2X SCORE!"},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			w := newTestWorld(config.Easy)
			w.Player.Health = 2
			w.PowerUps = append(w.PowerUps, PowerUp{Pos: w.Player.Pos, Size: 20, Kind: tt.kind})
			w.collide()

			if !tt.check(w) {
				t.Errorf("%s effect not applied", tt.kind)
			}
			if len(w.Popups) != 1 || w.Popups[0].Text != tt.popup {
				t.Errorf("popups = %+v, expected %q", w.Popups, tt.popup)
			}
			if len(w.Particles) != 8 {
				t.Errorf("particles = %d, expected 8", len(w.Particles))
			}
		})
	}

	w := newTestWorld(config.Easy)
	w.applyPowerUp(PowerUp{Kind: PowerUpHealth})
	if w.Player.Health != 3 {
		t.Errorf("health above max: %d", w.Player.Health)
	}
}

func TestFireCooldowns(t *testing.T) {
	w := newTestWorld(config.Easy)
	if got := w.fireCooldown(); got != 0.15 {
		t.Errorf("fireCooldown = %v, expected 0.15", got)
	}
	w.Timers.RapidFire = 5
	if got := w.fireCooldown(); got != 0.075 {
		t.Errorf("rapid fireCooldown = %v, expected 0.075", got)
	}

	u := newTestWorld(config.Unbeatable)
	u.Timers.RapidFire = 5
	if got := u.fireCooldown(); got != 0.1 {
		t.Errorf("unbeatable fireCooldown = %v, expected 0.1", got)
	}
}

func TestFireOnPress(t *testing.T) {
	w := newTestWorld(config.Easy)
	press := core.NewInputFrame()
	press.Press(core.KeyFire)

	w.Step(press, 0.016, testW, testH)
	if len(w.PlayerBullets) != 1 {
		t.Fatalf("bullets = %d, expected 1", len(w.PlayerBullets))
	}
	if len(eventsOf(w, EventShot)) != 1 {
		t.Errorf("expected a shot event")
	}
	if len(w.Particles) != 5 {
		t.Errorf("muzzle particles = %d, expected 5", len(w.Particles))
	}

	// Still cooling down.
	w.Step(press, 0.016, testW, testH)
	if len(w.PlayerBullets) != 1 {
		t.Errorf("bullets = %d, expected 1 during cooldown", len(w.PlayerBullets))
	}

	w.Step(press, 0.15, testW, testH)
	if len(w.PlayerBullets) != 2 {
		t.Errorf("bullets = %d, expected 2 after cooldown", len(w.PlayerBullets))
	}
}

func TestFireHeldDoesNotRepeat(t *testing.T) {
	tests := []struct {
		name       string
		difficulty config.Difficulty
		rapid      bool
	}{
		{"easy", config.Easy, false},
		{"rapid fire", config.Easy, true},
		{"unbeatable", config.Unbeatable, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(tt.difficulty)
			if tt.rapid {
				w.Timers.RapidFire = 5
			}
			held := core.NewInputFrame()
			held.Hold(core.KeyFire)

			shots := 0
			for range 60 {
				w.Step(held, 1.0/60, testW, testH)
				shots += len(eventsOf(w, EventShot))
			}
			if shots != 0 {
				t.Errorf("shots = %d, expected 0 while only holding fire", shots)
			}
			if got := w.Pool(OwnerPlayer).Cap(); got != 0 {
				t.Errorf("player pool cap = %d, expected 0", got)
			}
		})
	}
}

func TestShotLockout(t *testing.T) {
	w := newTestWorld(config.Insane)
	in := core.NewInputFrame()
	in.Press(core.KeyFire)

	w.Step(in, 0.016, testW, testH)
	if len(w.PlayerBullets) != 1 {
		t.Fatalf("bullets = %d, expected 1", len(w.PlayerBullets))
	}
	if w.Timers.ShotLockout != 5 {
		t.Fatalf("ShotLockout = %v, expected 5", w.Timers.ShotLockout)
	}

	w.Step(in, 0.2, testW, testH)
	if len(w.PlayerBullets) != 1 {
		t.Errorf("bullets = %d, expected shot to be rejected", len(w.PlayerBullets))
	}
	if len(eventsOf(w, EventShotBlocked)) != 1 {
		t.Errorf("expected a blocked shot event")
	}
	found := false
	for _, p := range w.Popups {
		if strings.HasPrefix(p.Text, "WAIT ") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a WAIT popup, got %+v", w.Popups)
	}
}

func TestPlayerClampedToBounds(t *testing.T) {
	w := newTestWorld(config.Easy)
	in := core.NewInputFrame()
	in.Hold(core.KeyLeft)
	in.Hold(core.KeyUp)

	for range 100 {
		w.movePlayer(in, 0.1)
	}
	half := w.Player.Size / 2
	if w.Player.Pos.X != half || w.Player.Pos.Y != half {
		t.Errorf("Player at %+v, expected (%v, %v)", w.Player.Pos, half, half)
	}
}

func TestSurvivalScore(t *testing.T) {
	w := newTestWorld(config.Easy)
	for range 60 {
		w.awardSurvival(1.0 / 60)
	}
	if w.Score < 9 || w.Score > 10 {
		t.Errorf("Score after 1s = %d, expected about 10", w.Score)
	}
}

// TestSimulationInvariants runs an autopilot session and checks the pool
// membership and multiplier invariants on every frame.
func TestSimulationInvariants(t *testing.T) {
	w := newTestWorld(config.Medium)
	rng := core.NewRNG(3)
	prevSpeed, prevSpawn := w.SpeedMultiplier(), w.SpawnMultiplier()

	for frame := range 5000 {
		in := core.NewInputFrame()
		switch (frame / 40) % 3 {
		case 0:
			in.Hold(core.KeyLeft)
		case 1:
			in.Hold(core.KeyRight)
		}
		if rng.Float64() < 0.1 {
			in.Press(core.KeyFire)
		}

		w.Step(in, 1.0/60, testW, testH)

		for _, o := range []Owner{OwnerPlayer, OwnerEnemy} {
			list := w.PlayerBullets
			if o == OwnerEnemy {
				list = w.EnemyBullets
			}
			pool := w.Pool(o)
			if pool.InUse() != len(list) || pool.InUse()+pool.Free() != pool.Cap() {
				t.Fatalf("frame %d: %s pool in use %d, free %d, cap %d, active list %d",
					frame, o, pool.InUse(), pool.Free(), pool.Cap(), len(list))
			}
		}

		speed, spawn := w.SpeedMultiplier(), w.SpawnMultiplier()
		if speed < 1 || speed > 3 || spawn < 0.3 || spawn > 1 {
			t.Fatalf("frame %d: multipliers out of range: %v, %v", frame, speed, spawn)
		}
		kills := len(eventsOf(w, EventKill))
		if kills == 0 && (speed != prevSpeed || spawn != prevSpawn) {
			t.Fatalf("frame %d: multipliers changed without a kill", frame)
		}
		if speed < prevSpeed || spawn > prevSpawn {
			t.Fatalf("frame %d: multipliers loosened", frame)
		}
		prevSpeed, prevSpawn = speed, spawn

		if w.Player.Health < 0 || w.Player.Health > w.Player.MaxHealth {
			t.Fatalf("frame %d: health %d outside [0, %d]", frame, w.Player.Health, w.Player.MaxHealth)
		}
		if w.Over() {
			break
		}
	}
}

func TestDifficultyRampClamps(t *testing.T) {
	w := newTestWorld(config.Easy)
	for range 500 {
		w.scalar.OnKill()
	}
	if math.Abs(w.SpeedMultiplier()-3) > 1e-9 {
		t.Errorf("SpeedMultiplier = %v, expected 3", w.SpeedMultiplier())
	}
	if math.Abs(w.SpawnMultiplier()-0.3) > 1e-9 {
		t.Errorf("SpawnMultiplier = %v, expected 0.3", w.SpawnMultiplier())
	}
}

func TestEffectsDecay(t *testing.T) {
	w := newTestWorld(config.Easy)
	w.burst(core.Vec2{X: 10, Y: 10}, 4, 100, 1, core.ColorRed)
	w.addPopup(core.Vec2{X: 10, Y: 100}, "+10", 1, core.ColorYellow)

	w.UpdateEffects(0.25)
	if len(w.Particles) != 4 || len(w.Popups) != 1 {
		t.Fatalf("effects removed too early")
	}
	if w.Popups[0].Pos.Y != 100-30*0.25 {
		t.Errorf("popup y = %v, expected %v", w.Popups[0].Pos.Y, 100-30*0.25)
	}

	w.UpdateEffects(0.3)
	if len(w.Particles) != 0 || len(w.Popups) != 0 {
		t.Errorf("particles/popups = %d/%d, expected 0/0", len(w.Particles), len(w.Popups))
	}
}

func TestStarfieldWraps(t *testing.T) {
	rng := core.NewRNG(1)
	s := NewStarfield(config.DefaultGameConfig().Effects, rng, testW, testH)
	if len(s.Stars) != 200 {
		t.Fatalf("stars = %d, expected 200", len(s.Stars))
	}
	s.Stars[0].Pos.Y = testH - 1
	s.Stars[0].Speed = 100
	s.Update(rng, 0.1, testW, testH)
	if s.Stars[0].Pos.Y != 0 {
		t.Errorf("star y = %v, expected wrap to 0", s.Stars[0].Pos.Y)
	}
	for i, st := range s.Stars {
		if st.Size != 1 && st.Size != 2 {
			t.Errorf("star %d size = %v", i, st.Size)
		}
	}
}
