package replacement

import (
	"math/rand/v2"
)

// Random is the uniform-random policy. It keeps no ordering
// state; every way of a set is an equally likely victim,
// independent of access history and coherence status.
type Random struct {
	rng        *rand.Rand
	sets, ways int
}

// NewRandom creates a [Random] policy for a cache of
// sets×ways lines, seeded from OS entropy. Runs are not
// reproducible; use [NewRandomSeeded] for that.
func NewRandom(sets, ways int) (*Random, error) {
	return NewRandomSeeded(sets, ways, rand.Uint64())
}

// NewRandomSeeded creates a [Random] policy whose victim
// sequence is reproducible for a given seed. The source is
// owned by the policy and seeded exactly once.
func NewRandomSeeded(sets, ways int, seed uint64) (*Random, error) {
	if err := validGeometry(sets, ways); err != nil {
		return nil, err
	}
	return &Random{
		rng:  rand.New(rand.NewPCG(seed, seed)),
		sets: sets,
		ways: ways,
	}, nil
}

// Victim returns a way drawn uniformly from `[0,ways)`.
// Set and lines are ignored; repeats are legal.
func (p *Random) Victim(_ int, _ []Line) int {
	return p.rng.IntN(p.ways)
}

// Touch is a no-op; this policy maintains no ordering state.
func (p *Random) Touch(int, uint64, []Line) {}

// Release drops the policy's random source.
// The policy must not be used afterwards.
func (p *Random) Release() {
	p.rng = nil
}

// Sets returns the number of sets the policy was sized for.
func (p *Random) Sets() int { return p.sets }

// Ways returns the associativity the policy was sized for.
func (p *Random) Ways() int { return p.ways }
