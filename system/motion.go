package system

import (
	"github.com/lixenwraith/cytosim/core"
	"github.com/lixenwraith/cytosim/engine"
	"github.com/lixenwraith/cytosim/physics"
)

// CellMotionSystem integrates live cells and relaxes cell-cell overlap
type CellMotionSystem struct{}

func NewCellMotionSystem() *CellMotionSystem {
	return &CellMotionSystem{}
}

func (s *CellMotionSystem) Priority() int {
	return PriorityCellMotion
}

// Update moves each live cell, reflects it, pushes it out of its neighbours, then re-reflects
// Collision.Passes > 1 adds relaxation sweeps over the whole population
func (s *CellMotionSystem) Update(w *engine.World, dt float64) {
	cells := w.Cells.Items()
	for _, c := range cells {
		if !c.IsLive() {
			continue
		}
		physics.Integrate(&c.Kinetic, dt)
		physics.ReflectArena(&c.Kinetic, w.Arena, c.Radius)
		if physics.PushOutOfOtherCells(c, cells, &w.Collision, w.Rand) > 0 {
			physics.ReflectArena(&c.Kinetic, w.Arena, c.Radius)
		}
	}

	for pass := 1; pass < w.Config.Collision.Passes; pass++ {
		resolved := 0
		for _, c := range cells {
			if !c.IsLive() {
				continue
			}
			if physics.PushOutOfOtherCells(c, cells, &w.Collision, w.Rand) > 0 {
				physics.ReflectArena(&c.Kinetic, w.Arena, c.Radius)
				resolved++
			}
		}
		if resolved == 0 {
			break
		}
	}
}

// moveMobile integrates a non-cell agent, bounces it off the arena wall and out of cells
func moveMobile(w *engine.World, k *core.Kinetic, r, dt float64) {
	physics.Integrate(k, dt)
	physics.ReflectArena(k, w.Arena, r)
	if physics.PushOutOfCells(k, r, w.Cells.Items(), &w.Collision, w.Rand) > 0 {
		physics.ReflectArena(k, w.Arena, r)
	}
}

// VirusMotionSystem moves every virus, attached or not
type VirusMotionSystem struct{}

func NewVirusMotionSystem() *VirusMotionSystem {
	return &VirusMotionSystem{}
}

func (s *VirusMotionSystem) Priority() int {
	return PriorityVirusMotion
}

func (s *VirusMotionSystem) Update(w *engine.World, dt float64) {
	r := w.Config.Virus.Radius
	for _, v := range w.Viruses.Items() {
		moveMobile(w, &v.Kinetic, r, dt)
	}
}

// AntibodyMotionSystem moves antibodies and counts down their flash
type AntibodyMotionSystem struct{}

func NewAntibodyMotionSystem() *AntibodyMotionSystem {
	return &AntibodyMotionSystem{}
}

func (s *AntibodyMotionSystem) Priority() int {
	return PriorityAntibodyMotion
}

func (s *AntibodyMotionSystem) Update(w *engine.World, dt float64) {
	r := w.Config.Antibody.Radius
	for _, a := range w.Antibodies.Items() {
		a.DecayFlash()
		moveMobile(w, &a.Kinetic, r, dt)
	}
}

// LeukocyteMotionSystem moves leukocytes
type LeukocyteMotionSystem struct{}

func NewLeukocyteMotionSystem() *LeukocyteMotionSystem {
	return &LeukocyteMotionSystem{}
}

func (s *LeukocyteMotionSystem) Priority() int {
	return PriorityLeukocyteMotion
}

func (s *LeukocyteMotionSystem) Update(w *engine.World, dt float64) {
	r := w.Config.Leukocyte.Radius
	for _, l := range w.Leukocytes.Items() {
		moveMobile(w, &l.Kinetic, r, dt)
	}
}
