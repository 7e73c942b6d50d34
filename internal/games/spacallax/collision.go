package spacallax

import (
	"fmt"
	"slices"

	"github.com/vovakirdan/spacallax/internal/core"
)

// collide runs the collision passes in order. Once the player dies the
// remaining passes of the frame are skipped.
func (w *World) collide() {
	w.collideBulletsEnemies()

	w.collideEnemyBulletsPlayer()
	if w.over {
		return
	}

	w.collidePowerUpsPlayer()

	w.collideEnemiesPlayer()
}

// collideBulletsEnemies kills at most one enemy per player projectile.
func (w *World) collideBulletsEnemies() {
	pool := w.pools[OwnerPlayer]
	for i := len(w.PlayerBullets) - 1; i >= 0; i-- {
		b := pool.Get(w.PlayerBullets[i])
		for j := range w.Enemies {
			if !core.CirclesOverlap(b.Pos, b.Size, w.Enemies[j].Pos, w.Enemies[j].Size) {
				continue
			}
			w.killEnemy(j)
			w.PlayerBullets = w.releaseAt(w.PlayerBullets, i)
			break
		}
	}
}

// killPoints tiers the reward by the enemy's speed relative to the
// profile's base speed.
func (w *World) killPoints(e Enemy) int {
	ec := w.cfg.Enemies
	base := w.profile.EnemySpeed
	points := w.cfg.Score.KillPoints
	switch {
	case e.Speed > base*ec.FastThreshold:
		points += 10
	case e.Speed > base*ec.MediumThreshold:
		points += 5
	}
	if w.Timers.ScoreMult > 0 {
		points *= 2
	}
	return points
}

func (w *World) killEnemy(j int) {
	e := w.Enemies[j]
	w.Enemies = slices.Delete(w.Enemies, j, j+1)

	points := w.killPoints(e)
	w.Score += points
	w.scalar.OnKill()

	w.addPopup(core.Vec2{X: e.Pos.X, Y: e.Pos.Y - 10}, fmt.Sprintf("+%d", points), 1, core.ColorYellow)
	w.burst(e.Pos, 15, 200, 0.8, core.RGB(255, 100, 0))
	w.emit(Event{Kind: EventKill, Pos: e.Pos, Points: points})
}

// collideEnemyBulletsPlayer applies at most one hit: the first one starts
// invincibility.
func (w *World) collideEnemyBulletsPlayer() {
	pool := w.pools[OwnerEnemy]
	p := &w.Player
	for i := len(w.EnemyBullets) - 1; i >= 0; i-- {
		if !w.Timers.Vulnerable() {
			return
		}
		b := pool.Get(w.EnemyBullets[i])
		if !core.CirclesOverlap(b.Pos, b.Size, p.Pos, p.Size) {
			continue
		}
		pos := b.Pos
		w.EnemyBullets = w.releaseAt(w.EnemyBullets, i)
		w.burst(pos, 15, 200, 1, core.Color{R: 255, G: 0, B: 255, A: 200})
		w.damagePlayer(pos, 10, 0.3)
	}
}

func (w *World) collidePowerUpsPlayer() {
	p := &w.Player
	for i := len(w.PowerUps) - 1; i >= 0; i-- {
		pu := w.PowerUps[i]
		if !core.CirclesOverlap(pu.Pos, pu.Size, p.Pos, p.Size) {
			continue
		}
		w.applyPowerUp(pu)
		w.burst(pu.Pos, 8, 100, 0.6, core.ColorWhite)
		w.PowerUps = slices.Delete(w.PowerUps, i, i+1)
		w.emit(Event{Kind: EventPickup, Pos: pu.Pos, PowerUp: pu.Kind})
	}
}

func (w *World) applyPowerUp(pu PowerUp) {
	d := w.cfg.PowerUps.Duration
	switch pu.Kind {
	case PowerUpHealth:
		w.Player.Health = min(w.Player.MaxHealth, w.Player.Health+1)
		w.addPopup(pu.Pos, "+HEALTH", 1, pu.Kind.Color())
	case PowerUpRapidFire:
		w.Timers.RapidFire = d
		w.addPopup(pu.Pos, "RAPID FIRE!", 1, pu.Kind.Color())
	case PowerUpShield:
		w.Timers.Shield = d
		w.addPopup(pu.Pos, "SHIELD!", 1, pu.Kind.Color())
	case PowerUpScoreMultiplier:
		w.Timers.ScoreMult = d
		w.addPopup(pu.Pos, "2X SCORE!", 1, pu.Kind.Color())
	}
}

// collideEnemiesPlayer removes the colliding enemy by index.
func (w *World) collideEnemiesPlayer() {
	if !w.Timers.Vulnerable() {
		return
	}
	p := &w.Player
	for j := range w.Enemies {
		e := w.Enemies[j]
		if !core.CirclesOverlap(e.Pos, e.Size, p.Pos, p.Size) {
			continue
		}
		w.Enemies = slices.Delete(w.Enemies, j, j+1)
		w.burst(e.Pos, 20, 300, 1, core.ColorRed)
		w.damagePlayer(e.Pos, 15, 0.4)
		return
	}
}

func (w *World) damagePlayer(pos core.Vec2, shake, shakeDur float64) {
	p := &w.Player
	p.Health = max(0, p.Health-1)
	w.Timers.Invincible = w.cfg.Player.Invincibility
	w.emit(Event{
		Kind:           EventPlayerHit,
		Pos:            pos,
		ShakeMagnitude: shake,
		ShakeDuration:  shakeDur,
	})

	if p.Health <= 0 {
		w.over = true
		w.emit(Event{Kind: EventGameOver, Pos: p.Pos, Score: w.Score})
	}
}
