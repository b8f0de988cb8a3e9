package domain

import (
	"math/rand"
	"time"
)

// ─── Injectable Ports ───────────────────────────────────────────────────────
// The engine never reads the wall clock or a global random source directly.
// Day-boundary logic and reward rolls take these ports so tests can pin
// time and substitute fixed-sequence generators.

// Clock supplies "now".
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to the Clock interface.
type ClockFunc func() time.Time

// Now implements Clock.
func (f ClockFunc) Now() time.Time { return f() }

// SystemClock returns a Clock backed by time.Now.
func SystemClock() Clock {
	return ClockFunc(time.Now)
}

// Rand supplies uniform floats in [0,1). Cryptographic strength is not
// required — "not predictable by the user" is the only contract.
type Rand interface {
	Float64() float64
}

// RandFunc adapts a function to the Rand interface.
type RandFunc func() float64

// Float64 implements Rand.
func (f RandFunc) Float64() float64 { return f() }

// SystemRand returns a Rand backed by a time-seeded PRNG.
func SystemRand() Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
