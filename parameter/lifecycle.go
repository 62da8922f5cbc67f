package parameter

// Infection and burst
const (
	// InfectionPadding extends the virus-to-cell contact distance
	InfectionPadding = 2.0

	// VirusReplicationTime is the seconds from infection to burst
	VirusReplicationTime = 3.0

	// BurstVirusCountSmall is the burst yield of a minimum-size cell
	BurstVirusCountSmall = 6

	// BurstVirusCountLarge is the burst yield of a full-size cell
	BurstVirusCountLarge = 18

	// BurstSpawnJitter is the extra random distance beyond the cell edge for burst viruses
	BurstSpawnJitter = 6.0

	// BurstSpeedMin and BurstSpeedSpan give burst speed as VirusSpeed * (min + span*U)
	BurstSpeedMin  = 0.9
	BurstSpeedSpan = 0.5
)

// Growth and division
const (
	CellDivideTimeMin = 10.0
	CellDivideTimeMax = 22.0
	CellGrowTime      = 18.0

	// CellDivideOffsetFactor scales parent radius into child offset
	CellDivideOffsetFactor = 0.6

	// CellGrownEpsilon is the tolerance for treating a radius as fully grown
	CellGrownEpsilon = 1e-3
)

// Capture and cleanup
const (
	// CaptureDist is the antibody docking distance
	CaptureDist = 12.0

	// AntibodyFlashFrames is the alert color frame count after an attach or spawn
	AntibodyFlashFrames = 8

	// CleanupSpawnMin and CleanupSpawnMax bound antibodies spawned per cleanup
	CleanupSpawnMin = 1
	CleanupSpawnMax = 3

	// CleanupSpawnRadius is the scatter radius for spawned antibodies
	CleanupSpawnRadius = 6.0
)

// Statistics
const (
	// HistoryInterval is the sim seconds between timeline samples
	HistoryInterval = 0.25

	// EventQueueSize is the lifecycle event ring capacity, power of two
	EventQueueSize = 1024
	EventBufferMask = EventQueueSize - 1
)
