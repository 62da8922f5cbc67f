package vmath

import (
	"math"
	"time"
)

// Epsilon is the magnitude below which a vector is treated as zero
const Epsilon = 1e-9

// TwoPi is a full rotation in radians
const TwoPi = 2 * math.Pi

// --- Scalar ---

// Lerp interpolates linearly between a and b, t is not clamped
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp limits value to [low, high]
func Clamp(value, low, high float64) float64 {
	return math.Max(low, math.Min(high, value))
}

// --- Randomness ---

// FastRand is a xorshift64 generator
// Not safe for concurrent use; each simulation owns one
type FastRand struct {
	state uint64
}

// NewFastRand creates a generator with a fixed seed for reproducible streams
func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

// NewUnseededRand creates a generator seeded from the wall clock
// Streams from this generator are not reproducible
func NewUnseededRand() *FastRand {
	return NewFastRand(uint64(time.Now().UnixNano()))
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float64 returns a uniform value in [0, 1)
func (r *FastRand) Float64() float64 {
	// Top 53 bits map exactly onto the float64 mantissa
	return float64(r.Next()>>11) / (1 << 53)
}

// Uniform returns a uniform value in [lo, hi)
func (r *FastRand) Uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*r.Float64()
}

// Angle returns a uniform angle in [0, 2π)
func (r *FastRand) Angle() float64 {
	return r.Float64() * TwoPi
}

// UnitVector returns a random direction
func (r *FastRand) UnitVector() (x, y float64) {
	a := r.Angle()
	return math.Cos(a), math.Sin(a)
}
