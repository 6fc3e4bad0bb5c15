// Package random provides the seeded Mulberry32 generator that supplies all
// entropy used during palette generation.
//
// A Rand is plain sequential state. Reproducing a sequence requires a fresh
// Rand built from the same seed and the same order of calls.
package random

import (
	"errors"
	"math"
)

// ErrEmpty is returned by Pick when asked to choose from an empty slice.
var ErrEmpty = errors.New("cannot pick from an empty slice")

// mulberryIncrement is the Weyl sequence constant added on every draw.
const mulberryIncrement uint32 = 0x6D2B79F5

// Rand is a Mulberry32 pseudo-random generator.
// The zero value is a valid generator seeded with 0.
type Rand struct {
	state uint32
}

// New returns a generator seeded with seed.
func New(seed uint32) *Rand {
	return &Rand{state: seed}
}

// Next returns a float in [0, 1).
func (r *Rand) Next() float64 {
	r.state += mulberryIncrement
	t := (r.state ^ (r.state >> 15)) * (1 | r.state)
	t = (t + (t^(t>>7))*(61|t)) ^ t
	return float64(t^(t>>14)) / 4294967296
}

// NextInt returns an integer in [min, max] inclusive.
// Values are produced by floor scaling, so the distribution at the
// boundaries is not perfectly uniform.
func (r *Rand) NextInt(min, max int) int {
	return int(math.Floor(r.Next()*float64(max-min+1))) + min
}

// NextFloat returns a float in [min, max).
func (r *Rand) NextFloat(min, max float64) float64 {
	return r.Next()*(max-min) + min
}

// Pick returns a pseudo-randomly chosen element of items.
func Pick[T any](r *Rand, items []T) (T, error) {
	if len(items) == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return items[r.NextInt(0, len(items)-1)], nil
}

// Shuffle returns a Fisher-Yates shuffled copy of items.
// The input slice is left untouched.
func Shuffle[T any](r *Rand, items []T) []T {
	shuffled := make([]T, len(items))
	copy(shuffled, items)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := r.NextInt(0, i)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}
