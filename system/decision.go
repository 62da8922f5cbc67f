package system

import (
	"math"

	"github.com/lixenwraith/cytosim/component"
	"github.com/lixenwraith/cytosim/engine"
	"github.com/lixenwraith/cytosim/spatial"
	"github.com/lixenwraith/cytosim/vmath"
)

// DecisionSystem recomputes headings on the coarse decision interval
// Between decisions agents keep integrating their smoothed velocity
type DecisionSystem struct {
	policy Policy

	// Rebuilt every decision step
	liveCells    *spatial.Index
	leukocytes   *spatial.Index
	freeViruses  *spatial.Index
	taggedVirus  *spatial.Index
	flaggedCells *spatial.Index
}

// NewDecisionSystem creates the decision system with 16 headings
func NewDecisionSystem(turnSmooth float64) *DecisionSystem {
	return &DecisionSystem{
		policy: Policy{
			Directions: vmath.Directions16(),
			Smooth:     turnSmooth,
		},
	}
}

func (s *DecisionSystem) Priority() int {
	return PriorityDecision
}

// Update accumulates time and decides once the interval is reached
func (s *DecisionSystem) Update(w *engine.World, dt float64) {
	interval := w.Config.Decision.Interval
	w.DecisionAccum += dt
	if w.DecisionAccum >= interval {
		w.DecisionAccum = math.Mod(w.DecisionAccum, interval)
		s.Decide(w)
	}
}

// Decide runs one decision step for every agent kind
func (s *DecisionSystem) Decide(w *engine.World) {
	s.buildIndices(w)
	s.decideCells(w)
	s.decideViruses(w)
	s.decideAntibodies(w)
	s.decideLeukocytes(w)
}

func (s *DecisionSystem) buildIndices(w *engine.World) {
	cells := w.Cells.Items()
	cellPos := func(i int) (float64, float64) { return cells[i].X, cells[i].Y }
	s.liveCells = spatial.Build(len(cells), cellPos, func(i int) bool {
		return cells[i].IsLive()
	})
	s.flaggedCells = spatial.Build(len(cells), cellPos, func(i int) bool {
		return isFlaggedCell(cells[i])
	})

	viruses := w.Viruses.Items()
	virusPos := func(i int) (float64, float64) { return viruses[i].X, viruses[i].Y }
	s.freeViruses = spatial.Build(len(viruses), virusPos, func(i int) bool {
		return viruses[i].IsFree()
	})
	s.taggedVirus = spatial.Build(len(viruses), virusPos, func(i int) bool {
		return !viruses[i].IsFree()
	})

	leukos := w.Leukocytes.Items()
	s.leukocytes = spatial.Build(len(leukos), func(i int) (float64, float64) {
		return leukos[i].X, leukos[i].Y
	}, nil)
}

// isFlaggedCell reports whether a leukocyte should hunt the cell
func isFlaggedCell(c *component.Cell) bool {
	return !c.IsHealthy() || c.AntibodyAttached > 0
}

// Cells wander randomly, no sensing
func (s *DecisionSystem) decideCells(w *engine.World) {
	speed := w.Config.Cell.Speed
	for _, c := range w.Cells.Items() {
		if !c.IsLive() {
			continue
		}
		s.policy.Steer(&c.Kinetic, w.Rand, speed, 1)
	}
}

// Viruses drift toward the nearest live cell and away from nearby leukocytes
func (s *DecisionSystem) decideViruses(w *engine.World) {
	cfg := &w.Config.Virus
	cells := w.Cells.Items()
	leukos := w.Leukocytes.Items()
	terms := make([]Steering, 0, 2)

	for _, v := range w.Viruses.Items() {
		terms = terms[:0]

		if idx, _, ok := s.liveCells.Nearest(v.X, v.Y); ok {
			ux, uy := vmath.Toward(v.X, v.Y, cells[idx].X, cells[idx].Y)
			terms = append(terms, Steering{X: ux, Y: uy, Weight: cfg.AttractCell})
		}

		if idx, ok := s.leukocytes.NearestWithin(v.X, v.Y, cfg.LeukocyteSense); ok {
			ux, uy := vmath.Toward(v.X, v.Y, leukos[idx].X, leukos[idx].Y)
			avoid := cfg.AvoidLeukocyte * float64(1+v.Attached)
			terms = append(terms, Steering{X: ux, Y: uy, Weight: -avoid})
		}

		speed := BurdenedSpeed(cfg.Speed, v.Attached, cfg.AttachSlowdown, cfg.MinSpeedFrac)
		s.policy.Steer(&v.Kinetic, w.Rand, speed, 1-cfg.AttractCell, terms...)
	}
}

// Antibodies chase the nearest free virus inside their sense radius
func (s *DecisionSystem) decideAntibodies(w *engine.World) {
	cfg := &w.Config.Antibody
	viruses := w.Viruses.Items()

	for _, a := range w.Antibodies.Items() {
		idx, ok := s.freeViruses.NearestWithin(a.X, a.Y, cfg.SenseRadius)
		if !ok {
			s.policy.Steer(&a.Kinetic, w.Rand, cfg.Speed, 1)
			continue
		}
		ux, uy := vmath.Toward(a.X, a.Y, viruses[idx].X, viruses[idx].Y)
		s.policy.Steer(&a.Kinetic, w.Rand, cfg.Speed, 1-cfg.Chase, Steering{X: ux, Y: uy, Weight: cfg.Chase})
	}
}

// Leukocytes chase the nearest flagged target: attached virus, or infected, dead or marked cell
func (s *DecisionSystem) decideLeukocytes(w *engine.World) {
	cfg := &w.Config.Leukocyte
	viruses := w.Viruses.Items()
	cells := w.Cells.Items()
	sense2 := cfg.SenseRadius * cfg.SenseRadius

	for _, l := range w.Leukocytes.Items() {
		var tx, ty float64
		found := false
		best := sense2

		if idx, d2, ok := s.taggedVirus.Nearest(l.X, l.Y); ok && d2 < best {
			best = d2
			tx, ty = viruses[idx].X, viruses[idx].Y
			found = true
		}
		if idx, d2, ok := s.flaggedCells.Nearest(l.X, l.Y); ok && d2 < best {
			tx, ty = cells[idx].X, cells[idx].Y
			found = true
		}

		if !found {
			s.policy.Steer(&l.Kinetic, w.Rand, cfg.Speed, 1)
			continue
		}
		ux, uy := vmath.Toward(l.X, l.Y, tx, ty)
		s.policy.Steer(&l.Kinetic, w.Rand, cfg.Speed, 1-cfg.Chase, Steering{X: ux, Y: uy, Weight: cfg.Chase})
	}
}
