// Package rng provides the seeded random helpers shared by the question
// generator, the event controller, and the engine. Keeping all randomness
// behind one seeded source makes every run reproducible for a given seed.
package rng

import "math/rand"

// Source wraps a seeded math/rand generator with the small set of
// operations the game actually needs.
type Source struct {
	r *rand.Rand
}

// New creates a Source from the given seed. A zero seed is replaced with 1
// so callers can pass "unset" without degenerating the stream.
func New(seed int64) *Source {
	if seed == 0 {
		seed = 1
	}
	return &Source{r: rand.New(rand.NewSource(seed))}
}

// Range returns a uniform integer in [min, max] inclusive.
// If max < min the bounds are swapped.
func (s *Source) Range(min, max int) int {
	if max < min {
		min, max = max, min
	}
	return min + s.r.Intn(max-min+1)
}

// Intn returns a uniform integer in [0, n). n must be positive.
func (s *Source) Intn(n int) int {
	return s.r.Intn(n)
}

// Float64 returns a uniform float in [0, 1).
func (s *Source) Float64() float64 {
	return s.r.Float64()
}

// Pick returns a uniformly chosen element of list.
// Panics on an empty list, same as slice indexing would.
func Pick[T any](s *Source, list []T) T {
	return list[s.r.Intn(len(list))]
}

// Shuffle returns a shuffled copy of list. The input is not modified.
func Shuffle[T any](s *Source, list []T) []T {
	out := make([]T, len(list))
	copy(out, list)
	s.r.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// Clamp bounds value to [min, max].
func Clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// ClampF bounds value to [min, max] for floats.
func ClampF(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
