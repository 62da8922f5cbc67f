package engine

// Stats are derived, monotonically non-decreasing counters
type Stats struct {
	Tick    uint64
	Elapsed float64 // Sim seconds

	Captured          int // Antibodies docked on free viruses
	CellAttachments   int // Antibodies docked on infected cells
	InfectedTotal     int
	BurstTotal        int
	Divisions         int
	CleanedViruses    int
	CleanedCells      int
	AntibodiesSpawned int
}

// Counts is the live population at one instant
type Counts struct {
	Healthy         int
	Infected        int
	Dead            int
	FreeViruses     int
	AttachedViruses int
	Antibodies      int
	Leukocytes      int
}

// Cells returns the total cell count across states
func (c Counts) Cells() int {
	return c.Healthy + c.Infected + c.Dead
}

// Viruses returns free plus attached viruses
func (c Counts) Viruses() int {
	return c.FreeViruses + c.AttachedViruses
}
