package core

// RNG is a deterministic pseudo-random number generator.
// Uses a 64-bit LCG so replays with the same seed are identical on every
// platform.
type RNG struct {
	state uint64
}

// NewRNG creates a new RNG with the given seed.
func NewRNG(seed int64) *RNG {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = 1
	}
	return &RNG{state: s}
}

// Next generates the next random uint64.
func (r *RNG) Next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// State returns the internal state for snapshots.
func (r *RNG) State() uint64 {
	return r.state
}

// Float64 returns a random float64 in [0, 1).
func (r *RNG) Float64() float64 {
	// Top 53 bits; the low bits of an LCG are weak.
	return float64(r.Next()>>11) / float64(1<<53)
}

// Float returns a random float64 in [min, max).
func (r *RNG) Float(min, max float64) float64 {
	return min + r.Float64()*(max-min)
}

// Int returns a random int in [min, max). Returns min when max <= min.
func (r *RNG) Int(min, max int) int {
	if max <= min {
		return min
	}
	n := uint64(max - min)             //#nosec G115 -- max > min
	return min + int((r.Next()>>11)%n) //#nosec G115 -- result < n
}
