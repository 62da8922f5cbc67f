package parameter

// Decision (CA) step
const (
	// CAInterval is the seconds between heading decisions
	CAInterval = 0.12

	// TurnSmooth is the exponential blend factor from current to decided velocity
	TurnSmooth = 0.45
)

// Base speeds in pixels per second
const (
	CellSpeed      = 18.0
	VirusSpeed     = 70.0
	AntibodySpeed  = 140.0
	LeukocyteSpeed = 45.0
)

// Sensing and blend weights
const (
	// VirusAttractCell is the pull toward the nearest live cell (no radius limit)
	VirusAttractCell = 0.25

	// VirusAvoidLeukocyte is the base push away from the nearest leukocyte, scaled by 1 + attached
	VirusAvoidLeukocyte = 0.2

	// VirusLeukocyteSense is the radius within which viruses notice leukocytes
	VirusLeukocyteSense = 90.0

	// VirusAttachSlowdown is the speed fraction lost per docked antibody
	VirusAttachSlowdown = 0.35

	// VirusMinSpeedFrac floors the slowed virus speed
	VirusMinSpeedFrac = 0.25

	// AntibodySenseRadius is the antibody virus detection radius
	AntibodySenseRadius = 120.0

	// AntibodyChase is the antibody pursuit weight
	AntibodyChase = 0.85

	// LeukocyteSenseRadius is the leukocyte target detection radius
	LeukocyteSenseRadius = 160.0

	// LeukocyteChase is the leukocyte pursuit weight
	LeukocyteChase = 0.8
)

// Collision
const (
	// PushOutDeflect is the multiple of the normal velocity removed when pushed out of a cell
	PushOutDeflect = 1.8

	// CellPushPosition is the fraction of overlap corrected by moving the cell
	CellPushPosition = 0.6

	// CellPushVelocity is the fraction of overlap removed from the cell velocity
	CellPushVelocity = 0.4

	// CollisionPasses is the default cell-vs-cell relaxation pass count per tick
	CollisionPasses = 1

	// OverlapTolerance is the allowed residual overlap between live cells in invariant checks
	OverlapTolerance = 1.0
)
