package system

import (
	"github.com/lixenwraith/cytosim/engine"
	"github.com/lixenwraith/cytosim/event"
	"github.com/lixenwraith/cytosim/vmath"
)

// CleanupSystem lets each leukocyte engulf one virus and one non-healthy cell per tick
// Every engulfed target releases a small batch of fresh antibodies
type CleanupSystem struct{}

func NewCleanupSystem() *CleanupSystem {
	return &CleanupSystem{}
}

func (s *CleanupSystem) Priority() int {
	return PriorityCleanup
}

func (s *CleanupSystem) Update(w *engine.World, dt float64) {
	lr := w.Config.Leukocyte.Radius
	vr := w.Config.Virus.Radius
	viruses := w.Viruses.Items()
	cells := w.Cells.Items()

	for _, l := range w.Leukocytes.Items() {
		reach := lr + vr
		for vi, v := range viruses {
			if w.Viruses.IsMarked(vi) || vmath.Dist2(l.X, l.Y, v.X, v.Y) > reach*reach {
				continue
			}
			w.Viruses.Mark(vi)
			w.Stats.CleanedViruses++
			n := SpawnAntibodies(w, v.X, v.Y)
			w.Emit(event.EventVirusCleanup, v.ID, v.X, v.Y, n)
			break
		}

		for ci, c := range cells {
			if c.IsHealthy() || w.Cells.IsMarked(ci) {
				continue
			}
			reach := lr + c.Radius
			if vmath.Dist2(l.X, l.Y, c.X, c.Y) > reach*reach {
				continue
			}
			w.Cells.Mark(ci)
			w.Stats.CleanedCells++
			n := SpawnAntibodies(w, c.X, c.Y)
			w.Emit(event.EventCellCleanup, c.ID, c.X, c.Y, n)
			break
		}
	}

	w.Viruses.Compact()
	w.Cells.Compact()
}
