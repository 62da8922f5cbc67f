package status

import (
	"math"
	"sync/atomic"
)

// Float is an atomic float64 stored as bits
// Zero value is ready to use (represents 0.0)
type Float struct {
	bits atomic.Uint64
}

// Set stores a value atomically
func (f *Float) Set(val float64) {
	f.bits.Store(math.Float64bits(val))
}

// Get loads the value atomically
func (f *Float) Get() float64 {
	return math.Float64frombits(f.bits.Load())
}
