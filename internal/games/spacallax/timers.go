package spacallax

// Timers holds the countdowns that run while Playing. Every timer stops at
// zero; a timer is running while it is positive.
type Timers struct {
	RapidFire   float64
	Shield      float64
	ScoreMult   float64
	Invincible  float64
	ShotLockout float64
}

// Tick advances every timer by dt.
func (t *Timers) Tick(dt float64) {
	t.RapidFire = countdown(t.RapidFire, dt)
	t.Shield = countdown(t.Shield, dt)
	t.ScoreMult = countdown(t.ScoreMult, dt)
	t.Invincible = countdown(t.Invincible, dt)
	t.ShotLockout = countdown(t.ShotLockout, dt)
}

// Vulnerable reports whether incoming damage applies.
func (t *Timers) Vulnerable() bool {
	return t.Shield <= 0 && t.Invincible <= 0
}

func countdown(v, dt float64) float64 {
	v -= dt
	if v < 0 {
		return 0
	}
	return v
}
