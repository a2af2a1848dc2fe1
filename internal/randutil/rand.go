package randutil

import (
	rand "math/rand/v2"
	"time"
)

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand seeded deterministically from the provided int64.
// The same seed always produces the same shuffle, which is what --seed relies on.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// NewTimeSeeded returns a source seeded from the wall clock for normal play
func NewTimeSeeded() *rand.Rand {
	return New(time.Now().UnixNano())
}

// FromSeed returns a deterministic source for a non-zero seed and a time-seeded one
// otherwise. Zero is the "no seed configured" value in config and flags.
func FromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		return NewTimeSeeded()
	}
	return New(seed)
}

// splitmix64 finaliser
func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
