package system

// Tick phase order, lower runs first
const (
	PriorityDecision        = 10
	PriorityCellMotion      = 20
	PriorityGrowth          = 30
	PriorityVirusMotion     = 40
	PriorityAntibodyMotion  = 50
	PriorityLeukocyteMotion = 60
	PriorityInfection       = 70
	PriorityCapture         = 80
	PriorityCleanup         = 90
)
