package sim

import (
	"io"
	"log"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/cytosim/component"
	"github.com/lixenwraith/cytosim/config"
	"github.com/lixenwraith/cytosim/engine"
	"github.com/lixenwraith/cytosim/event"
	"github.com/lixenwraith/cytosim/status"
	"github.com/lixenwraith/cytosim/vmath"
)

const frameDT = 1.0 / 60

func quietLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func newSim(t *testing.T, cfg *config.Config, seed uint64, opts ...Option) *Simulation {
	t.Helper()
	opts = append([]Option{WithRand(vmath.NewFastRand(seed)), WithLogger(quietLogger())}, opts...)
	s, err := New(cfg, opts...)
	require.NoError(t, err)
	return s
}

func sparseConfig() *config.Config {
	cfg := config.Default()
	cfg.Population.Cells = 20
	cfg.Population.Viruses = 20
	cfg.Population.Antibodies = 10
	cfg.Population.Leukocytes = 3
	return cfg
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Decision.Interval = 0

	_, err := New(cfg, WithLogger(quietLogger()))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid simulation config")
	assert.Contains(t, err.Error(), "decision.interval")
}

func TestNewDefaultsConfig(t *testing.T) {
	s := newSim(t, nil, 1)
	assert.Equal(t, config.Default().Population.Viruses, s.Snapshot().Counts.FreeViruses)
}

func TestNewIsolatesConfig(t *testing.T) {
	cfg := sparseConfig()
	s := newSim(t, cfg, 1)
	cfg.Population.Cells = 1

	s.Reset()
	assert.Len(t, s.Snapshot().Cells, 20)
}

func TestResetIsIdempotentInSizes(t *testing.T) {
	s := newSim(t, sparseConfig(), 3)
	first := s.Snapshot()

	for i := 0; i < 120; i++ {
		s.Tick(frameDT)
	}
	s.Reset()
	second := s.Snapshot()

	assert.Len(t, second.Cells, len(first.Cells))
	assert.Len(t, second.Viruses, len(first.Viruses))
	assert.Len(t, second.Antibodies, len(first.Antibodies))
	assert.Len(t, second.Leukocytes, len(first.Leukocytes))
	assert.Equal(t, engine.Stats{}, second.Stats)
	assert.Len(t, second.History, 1, "reset records the initial sample")
}

func TestAdvanceMovesTime(t *testing.T) {
	s := newSim(t, sparseConfig(), 5)

	snap := s.Advance(frameDT)
	assert.Equal(t, uint64(1), snap.Stats.Tick)
	assert.InDelta(t, frameDT, snap.Stats.Elapsed, 1e-12)

	snap = s.Advance(0)
	assert.Equal(t, uint64(1), snap.Stats.Tick, "non-positive dt is ignored")
	snap = s.Advance(-1)
	assert.Equal(t, uint64(1), snap.Stats.Tick)
}

func TestCountersAreMonotonic(t *testing.T) {
	s := newSim(t, nil, 11)
	prev := s.Snapshot().Stats

	for i := 0; i < 900; i++ {
		cur := s.Advance(frameDT).Stats
		require.Greater(t, cur.Tick, prev.Tick)
		require.Greater(t, cur.Elapsed, prev.Elapsed)
		require.GreaterOrEqual(t, cur.Captured, prev.Captured)
		require.GreaterOrEqual(t, cur.CellAttachments, prev.CellAttachments)
		require.GreaterOrEqual(t, cur.InfectedTotal, prev.InfectedTotal)
		require.GreaterOrEqual(t, cur.BurstTotal, prev.BurstTotal)
		require.GreaterOrEqual(t, cur.Divisions, prev.Divisions)
		require.GreaterOrEqual(t, cur.CleanedViruses, prev.CleanedViruses)
		require.GreaterOrEqual(t, cur.CleanedCells, prev.CleanedCells)
		prev = cur
	}
	assert.Positive(t, prev.InfectedTotal, "default populations produce infections within 15 s")
}

func TestAgentsStayInsideArena(t *testing.T) {
	s := newSim(t, nil, 21)
	limit := s.Config().Arena.Radius + 1e-6

	for i := 0; i < 1200; i++ {
		snap := s.Advance(frameDT)
		inside := func(kind string, x, y float64) {
			d := math.Sqrt(vmath.Dist2(x, y, snap.ArenaX, snap.ArenaY))
			require.LessOrEqualf(t, d, limit, "%s escaped at tick %d", kind, snap.Stats.Tick)
		}
		for _, c := range snap.Cells {
			inside("cell", c.X, c.Y)
		}
		for _, v := range snap.Viruses {
			inside("virus", v.X, v.Y)
		}
		for _, a := range snap.Antibodies {
			inside("antibody", a.X, a.Y)
		}
		for _, l := range snap.Leukocytes {
			inside("leukocyte", l.X, l.Y)
		}
	}
}

func TestSparseRunHoldsInvariants(t *testing.T) {
	cfg := sparseConfig()
	cfg.Collision.Passes = 4
	cfg.Debug.AssertInvariants = true
	s := newSim(t, cfg, 8)

	require.NoError(t, s.CheckInvariants())
	assert.NotPanics(t, func() {
		for i := 0; i < 300; i++ {
			s.Tick(frameDT)
		}
	})
	assert.NoError(t, s.CheckInvariants())
}

func TestAssertInvariantsPanics(t *testing.T) {
	cfg := config.Default()
	cfg.Population = config.PopulationConfig{}
	cfg.Debug.AssertInvariants = true
	s := newSim(t, cfg, 2)

	w := s.World()
	c := w.Cells.Add(component.NewCell(w.Arena.CX+w.Arena.R+50, w.Arena.CY, 0, 0, 10, 0))
	c.Infect(1)
	c.Kill()

	assert.Panics(t, func() { s.Tick(frameDT) })
}

func TestSeededRunsAreReproducible(t *testing.T) {
	a := newSim(t, nil, 77)
	b := newSim(t, nil, 77)

	var sa, sb engine.Snapshot
	for i := 0; i < 400; i++ {
		sa = a.Advance(frameDT)
		sb = b.Advance(frameDT)
	}
	assert.Equal(t, sa, sb)

	c := newSim(t, nil, 78)
	for i := 0; i < 400; i++ {
		c.Tick(frameDT)
	}
	assert.NotEqual(t, sa.Cells, c.Snapshot().Cells)
}

func TestStepDecisionKeepsTime(t *testing.T) {
	s := newSim(t, sparseConfig(), 4)
	l := s.World().Leukocytes.At(0)
	l.VX, l.VY = 0, 0

	s.StepDecision()

	assert.Zero(t, s.Snapshot().Stats.Tick)
	assert.NotZero(t, math.Hypot(l.VX, l.VY))
}

func TestEventsDrain(t *testing.T) {
	s := newSim(t, sparseConfig(), 6)

	events := s.Events()
	require.Len(t, events, 1)
	assert.Equal(t, event.EventReset, events[0].Type)
	assert.Equal(t, 20, events[0].Count)
	assert.Empty(t, s.Events())
}

func TestDivisionGrowsPopulation(t *testing.T) {
	cfg := config.Default()
	cfg.Population = config.PopulationConfig{Cells: 6}
	cfg.Cell.DivideTimeMin = 0.2
	cfg.Cell.DivideTimeMax = 0.4
	s := newSim(t, cfg, 9)

	for i := 0; i < 30; i++ {
		s.Tick(frameDT)
	}
	snap := s.Snapshot()
	assert.Equal(t, 6, snap.Stats.Divisions, "every initial cell divides once")
	assert.Len(t, snap.Cells, 12)
}

func TestStatusPublishing(t *testing.T) {
	reg := status.NewRegistry()
	s := newSim(t, sparseConfig(), 12, WithStatus(reg))

	for i := 0; i < 10; i++ {
		s.Tick(frameDT)
	}
	assert.Equal(t, int64(10), reg.Int("sim.tick").Load())
	assert.InDelta(t, 10*frameDT, reg.Float("sim.elapsed").Get(), 1e-9)
	assert.Equal(t, int64(3), reg.Int("leukocytes.total").Load())

	snap := s.Snapshot()
	assert.Equal(t, int64(snap.Counts.Healthy), reg.Int("cells.healthy").Load())
}
