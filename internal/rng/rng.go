// Package rng provides the deterministic random source used by procedural
// generation. The same seed string always yields the same sequence, across
// processes and platforms.
package rng

import "math"

// SeedFromString derives a numeric seed from an arbitrary string by summing
// its Unicode code points. Collisions are acceptable; equal strings must map
// to equal seeds.
func SeedFromString(s string) uint64 {
	var sum uint64
	for _, r := range s {
		sum += uint64(r)
	}
	return sum
}

// Source is a deterministic pseudo-random stream (splitmix64). It is not
// safe for concurrent use; callers own their Source.
type Source struct {
	state uint64
}

// New returns a Source seeded with the given value.
func New(seed uint64) *Source {
	return &Source{state: seed}
}

// NewFromString returns a Source seeded from a string key.
func NewFromString(key string) *Source {
	return New(SeedFromString(key))
}

// Uint64 returns the next value in the stream.
func (s *Source) Uint64() uint64 {
	s.state += 0x9e3779b97f4a7c15
	z := s.state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// Float64 returns the next value in [0, 1).
func (s *Source) Float64() float64 {
	return float64(s.Uint64()>>11) / float64(1<<53)
}

// Intn returns a value in [0, n). Panics if n <= 0.
func (s *Source) Intn(n int) int {
	if n <= 0 {
		panic("rng: Intn called with n <= 0")
	}
	return int(s.Uint64() % uint64(n))
}

// Range returns a value in [lo, hi).
func (s *Source) Range(lo, hi float64) float64 {
	return lo + s.Float64()*(hi-lo)
}

// Jitter returns a value in [-spread, +spread].
func (s *Source) Jitter(spread float64) float64 {
	return (s.Float64()*2 - 1) * spread
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}
