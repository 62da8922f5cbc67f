package system

import "github.com/lixenwraith/cytosim/engine"

// RegisterAll installs the full tick pipeline on the world
// The returned decision system also serves manual single decision steps
func RegisterAll(w *engine.World) *DecisionSystem {
	decision := NewDecisionSystem(w.Config.Decision.TurnSmooth)
	w.AddSystem(decision)
	w.AddSystem(NewCellMotionSystem())
	w.AddSystem(NewGrowthSystem())
	w.AddSystem(NewVirusMotionSystem())
	w.AddSystem(NewAntibodyMotionSystem())
	w.AddSystem(NewLeukocyteMotionSystem())
	w.AddSystem(NewInfectionSystem())
	w.AddSystem(NewCaptureSystem())
	w.AddSystem(NewCleanupSystem())
	return decision
}
