package rng

// Linear-congruential parameters (Numerical Recipes). The 32-bit state is kept
// in a uint64 and masked after every step.
const (
	multiplier uint64 = 1664525
	increment  uint64 = 1013904223
	modulus    uint64 = 1 << 32
)

// Source is a deterministic pseudo-random stream. Two sources seeded with the
// same value produce identical draw sequences. A Source is not safe for
// concurrent draws; give each goroutine its own instance.
type Source struct {
	seed  uint64
	state uint64
}

// New returns a source positioned at the start of the stream for seed.
func New(seed uint64) *Source {
	s := &Source{}
	s.Seed(seed)
	return s
}

// Seed resets the stream to a known state derived from value.
func (s *Source) Seed(value uint64) {
	s.seed = value % modulus
	s.state = s.seed
}

// Next advances the stream and returns a value in [0, 1).
func (s *Source) Next() float64 {
	s.state = (s.state*multiplier + increment) % modulus
	return float64(s.state) / float64(modulus)
}

// Reset rewinds the stream to its initial seed without changing the seed.
func (s *Source) Reset() {
	s.state = s.seed
}
