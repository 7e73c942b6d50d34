package spacallax

// spawnEpsilon absorbs float error so that dt = n*interval yields n spawns.
const spawnEpsilon = 1e-9

// Spawner holds the enemy and power-up time debts.
type Spawner struct {
	enemyAcc   float64
	powerUpAcc float64
}

// Enemies adds dt to the enemy accumulator and returns how many enemies
// are due at the given interval. Large dt values catch up in one call.
func (s *Spawner) Enemies(dt, interval float64) int {
	return drain(&s.enemyAcc, dt, interval)
}

// PowerUps is like Enemies for power-ups. While disabled no time accrues.
func (s *Spawner) PowerUps(dt, interval float64, enabled bool) int {
	if !enabled {
		return 0
	}
	return drain(&s.powerUpAcc, dt, interval)
}

func drain(acc *float64, dt, interval float64) int {
	*acc += dt
	if interval <= 0 {
		return 0
	}
	n := 0
	for *acc >= interval-spawnEpsilon {
		*acc -= interval
		n++
	}
	return n
}
