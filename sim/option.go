package sim

import (
	"log"

	"github.com/lixenwraith/cytosim/status"
	"github.com/lixenwraith/cytosim/vmath"
)

// Option configures a Simulation at construction
type Option func(*Simulation)

// WithRand injects the random stream; a seeded stream makes runs reproducible
func WithRand(rng *vmath.FastRand) Option {
	return func(s *Simulation) {
		s.rng = rng
	}
}

// WithLogger routes driver logging
func WithLogger(logger *log.Logger) Option {
	return func(s *Simulation) {
		s.logger = logger
	}
}

// WithStatus publishes per-tick metrics into reg
func WithStatus(reg *status.Registry) Option {
	return func(s *Simulation) {
		s.status = reg
	}
}
