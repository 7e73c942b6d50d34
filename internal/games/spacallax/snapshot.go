package spacallax

import "math"

// Snapshot is a value summary of the game for determinism checks and for
// publishing to observers. It shares no memory with the game.
type Snapshot struct {
	Frame      uint64
	State      string
	Difficulty string
	Score      int
	HighScore  int

	Health    int
	MaxHealth int
	PlayerX   float64
	PlayerY   float64

	SpeedMultiplier float64
	SpawnMultiplier float64
	Timers          Timers

	Enemies       int
	PlayerBullets int
	EnemyBullets  int
	PowerUps      int
	Particles     int
	Popups        int

	PlayerPool int // slots allocated by the player pool
	EnemyPool  int

	// EnemyData holds X, Y, Speed for each enemy in list order.
	EnemyData []float64
}

// Snapshot returns the current game summary.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Frame:     g.frame,
		State:     g.state.String(),
		HighScore: g.highScore,
	}
	w := g.world
	if w == nil {
		return snap
	}

	snap.Difficulty = w.difficulty.Slug()
	snap.Score = w.Score
	snap.Health = w.Player.Health
	snap.MaxHealth = w.Player.MaxHealth
	snap.PlayerX = w.Player.Pos.X
	snap.PlayerY = w.Player.Pos.Y
	snap.SpeedMultiplier = w.SpeedMultiplier()
	snap.SpawnMultiplier = w.SpawnMultiplier()
	snap.Timers = w.Timers
	snap.Enemies = len(w.Enemies)
	snap.PlayerBullets = len(w.PlayerBullets)
	snap.EnemyBullets = len(w.EnemyBullets)
	snap.PowerUps = len(w.PowerUps)
	snap.Particles = len(w.Particles)
	snap.Popups = len(w.Popups)
	snap.PlayerPool = w.pools[OwnerPlayer].Cap()
	snap.EnemyPool = w.pools[OwnerEnemy].Cap()

	snap.EnemyData = make([]float64, 0, len(w.Enemies)*3)
	for _, e := range w.Enemies {
		snap.EnemyData = append(snap.EnemyData, e.Pos.X, e.Pos.Y, e.Speed)
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Frame
	for _, c := range snap.State + "|" + snap.Difficulty {
		h = h*31 + uint64(c) //#nosec G115 -- hash computation
	}
	h = h*31 + uint64(snap.Score)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.HighScore)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Health)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.MaxHealth)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Enemies)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerBullets) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.EnemyBullets)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PowerUps)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Particles)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Popups)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerPool)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.EnemyPool)     //#nosec G115 -- hash computation

	floats := []float64{
		snap.PlayerX, snap.PlayerY,
		snap.SpeedMultiplier, snap.SpawnMultiplier,
		snap.Timers.RapidFire, snap.Timers.Shield, snap.Timers.ScoreMult,
		snap.Timers.Invincible, snap.Timers.ShotLockout,
	}
	for _, v := range append(floats, snap.EnemyData...) {
		h = h*31 + math.Float64bits(v)
	}
	return h
}
