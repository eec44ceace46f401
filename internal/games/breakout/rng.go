package breakout

// SimpleRNG is a deterministic pseudo-random number generator.
// Its whole state is one word, so snapshots and replays can carry it.
type SimpleRNG struct {
	state uint64
}

// NewSimpleRNG creates a new RNG with the given seed.
func NewSimpleRNG(seed int64) *SimpleRNG {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = 1
	}
	return &SimpleRNG{state: s}
}

// Next generates the next random uint64.
func (r *SimpleRNG) Next() uint64 {
	// 64-bit LCG (Knuth MMIX constants)
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Float64 returns a random float64 in [0, 1).
func (r *SimpleRNG) Float64() float64 {
	// Top 53 bits give a uniformly spaced mantissa
	return float64(r.Next()>>11) / float64(1<<53)
}

// Spread returns a random value in [-limit, limit).
func (r *SimpleRNG) Spread(limit float64) float64 {
	return (r.Float64()*2 - 1) * limit
}

// State returns the internal state.
func (r *SimpleRNG) State() uint64 {
	return r.state
}
