package system

import (
	"github.com/lixenwraith/cytosim/engine"
	"github.com/lixenwraith/cytosim/event"
	"github.com/lixenwraith/cytosim/vmath"
)

// CaptureSystem docks antibodies on free viruses, or failing that on infected cells
// A docked antibody leaves the simulation
type CaptureSystem struct{}

func NewCaptureSystem() *CaptureSystem {
	return &CaptureSystem{}
}

func (s *CaptureSystem) Priority() int {
	return PriorityCapture
}

func (s *CaptureSystem) Update(w *engine.World, dt float64) {
	if w.Antibodies.Len() == 0 {
		return
	}
	cfg := &w.Config.Antibody
	capture2 := cfg.CaptureDist * cfg.CaptureDist
	viruses := w.Viruses.Items()
	cells := w.Cells.Items()

	for ai, a := range w.Antibodies.Items() {
		docked := false
		for _, v := range viruses {
			if !v.IsFree() || vmath.Dist2(a.X, a.Y, v.X, v.Y) > capture2 {
				continue
			}
			v.Attached++
			a.Flash = cfg.FlashFrames
			w.Antibodies.Mark(ai)
			w.Stats.Captured++
			w.Emit(event.EventCapture, v.ID, v.X, v.Y, v.Attached)
			docked = true
			break
		}
		if docked {
			continue
		}

		// Cells are large, so reach is measured from the surface
		for _, c := range cells {
			if !c.IsInfected() {
				continue
			}
			reach := c.Radius + cfg.CaptureDist
			if vmath.Dist2(a.X, a.Y, c.X, c.Y) > reach*reach {
				continue
			}
			c.AntibodyAttached++
			a.Flash = cfg.FlashFrames
			w.Antibodies.Mark(ai)
			w.Stats.CellAttachments++
			w.Emit(event.EventCellAttach, c.ID, c.X, c.Y, c.AntibodyAttached)
			break
		}
	}
	w.Antibodies.Compact()
}
