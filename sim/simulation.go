// Package sim drives the world through the tick pipeline.
// A Simulation is single-threaded; only the status registry may be read concurrently.
package sim

import (
	"log"
	"time"

	"github.com/pkg/errors"

	"github.com/lixenwraith/cytosim/config"
	"github.com/lixenwraith/cytosim/engine"
	"github.com/lixenwraith/cytosim/event"
	"github.com/lixenwraith/cytosim/status"
	"github.com/lixenwraith/cytosim/system"
	"github.com/lixenwraith/cytosim/vmath"
)

// Simulation owns the world and its systems
type Simulation struct {
	world    *engine.World
	decision *system.DecisionSystem

	rng     *vmath.FastRand
	logger  *log.Logger
	status  *status.Registry
	metrics *metrics
}

// New validates cfg, builds the pipeline and places the initial populations
// A nil cfg uses config.Default
func New(cfg *config.Config, opts ...Option) (*Simulation, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid simulation config")
	}

	s := &Simulation{}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = vmath.NewUnseededRand()
	}
	if s.logger == nil {
		s.logger = log.New(log.Writer(), "", log.LstdFlags)
	}
	if s.status != nil {
		s.metrics = newMetrics(s.status)
	}

	s.world = engine.NewWorld(cfg.Clone(), s.rng, s.logger)
	s.decision = system.RegisterAll(s.world)
	s.Reset()
	return s, nil
}

// Reset clears every registry, counter and pending event, then repopulates
func (s *Simulation) Reset() {
	w := s.world
	system.Populate(w)
	w.History.Record(0, 0, w.Counts())
	w.Emit(event.EventReset, 0, w.Arena.CX, w.Arena.CY, w.Cells.Len())
	s.publish(0)
}

// Tick advances the world by dt seconds
// Non-positive dt is ignored
func (s *Simulation) Tick(dt float64) {
	if dt <= 0 {
		return
	}
	start := time.Now()
	w := s.world

	w.Stats.Tick++
	w.Stats.Elapsed += dt
	w.RunSystems(dt)
	w.History.Record(w.Stats.Tick, w.Stats.Elapsed, w.Counts())

	if w.Config.Debug.AssertInvariants {
		if err := w.CheckInvariants(); err != nil {
			s.logger.Printf("[INVARIANT] tick %d: %v", w.Stats.Tick, err)
			panic(errors.Wrapf(err, "tick %d", w.Stats.Tick))
		}
	}
	s.publish(time.Since(start))
}

// Advance ticks once and returns the resulting snapshot
func (s *Simulation) Advance(dt float64) engine.Snapshot {
	s.Tick(dt)
	return s.world.Snapshot()
}

// StepDecision runs one decision step immediately without advancing time
func (s *Simulation) StepDecision() {
	s.decision.Decide(s.world)
}

// Snapshot returns a deep copy of the current state
func (s *Simulation) Snapshot() engine.Snapshot {
	return s.world.Snapshot()
}

// Events drains lifecycle events emitted since the previous call
func (s *Simulation) Events() []event.Event {
	return s.world.Events.Consume()
}

// CheckInvariants verifies boundary, overlap and counter invariants
func (s *Simulation) CheckInvariants() error {
	return s.world.CheckInvariants()
}

// Config returns the validated configuration in use
func (s *Simulation) Config() *config.Config {
	return s.world.Config
}

// World exposes the live world for direct inspection
// Callers must not retain agent pointers across ticks
func (s *Simulation) World() *engine.World {
	return s.world
}

func (s *Simulation) publish(step time.Duration) {
	if s.metrics == nil {
		return
	}
	s.metrics.publish(s.world.Stats, s.world.Counts(), step)
}
