package component

import "github.com/lixenwraith/cytosim/core"

// CellState is the closed set of cell lifecycle states
type CellState uint8

const (
	CellHealthy CellState = iota
	CellInfected
	CellDead
)

func (s CellState) String() string {
	switch s {
	case CellHealthy:
		return "healthy"
	case CellInfected:
		return "infected"
	case CellDead:
		return "dead"
	default:
		return "unknown"
	}
}

// Cell is a host cell that grows, divides, and can be infected
// State transitions go through methods so the burst timer only exists while infected
type Cell struct {
	Identity
	core.Kinetic

	Radius    float64
	GrowTimer float64 // Seconds elapsed toward full size

	// AntibodyAttached counts antibodies docked on an infected cell
	AntibodyAttached int

	state      CellState
	burstTimer float64 // Valid only in CellInfected

	divideTimer    float64
	hasDivideTimer bool
}

// NewCell creates a healthy cell with the given radius and growth progress
func NewCell(x, y, vx, vy, radius, growTimer float64) *Cell {
	return &Cell{
		Kinetic:   core.Kinetic{X: x, Y: y, VX: vx, VY: vy},
		Radius:    radius,
		GrowTimer: growTimer,
		state:     CellHealthy,
	}
}

// State returns the lifecycle state
func (c *Cell) State() CellState {
	return c.state
}

// IsLive reports whether the cell still moves and obstructs (healthy or infected)
func (c *Cell) IsLive() bool {
	return c.state != CellDead
}

// IsHealthy reports whether the cell accepts infection and may grow or divide
func (c *Cell) IsHealthy() bool {
	return c.state == CellHealthy
}

// IsInfected reports whether the cell is counting down to burst
func (c *Cell) IsInfected() bool {
	return c.state == CellInfected
}

// Infect moves a healthy cell to infected with the burst countdown set
// Returns false without change for infected or dead cells
func (c *Cell) Infect(replicationTime float64) bool {
	if c.state != CellHealthy {
		return false
	}
	c.state = CellInfected
	c.burstTimer = replicationTime
	return true
}

// BurstTimer returns seconds remaining until burst; ok is false unless infected
func (c *Cell) BurstTimer() (remaining float64, ok bool) {
	if c.state != CellInfected {
		return 0, false
	}
	return c.burstTimer, true
}

// TickBurst advances the burst countdown, returns true once it reaches zero
// No-op for non-infected cells
func (c *Cell) TickBurst(dt float64) bool {
	if c.state != CellInfected {
		return false
	}
	c.burstTimer -= dt
	return c.burstTimer <= 0
}

// Kill moves an infected cell to dead, clearing attachments
func (c *Cell) Kill() {
	c.state = CellDead
	c.burstTimer = 0
	c.AntibodyAttached = 0
	c.VX, c.VY = 0, 0
}

// DivideTimer returns seconds until division; ok is false until growth completes
func (c *Cell) DivideTimer() (remaining float64, ok bool) {
	return c.divideTimer, c.hasDivideTimer
}

// SetDivideTimer starts the division countdown
func (c *Cell) SetDivideTimer(seconds float64) {
	c.divideTimer = seconds
	c.hasDivideTimer = true
}

// TickDivide advances the division countdown, returns true once it reaches zero
// Only healthy cells with a running countdown progress
func (c *Cell) TickDivide(dt float64) bool {
	if c.state != CellHealthy || !c.hasDivideTimer {
		return false
	}
	c.divideTimer -= dt
	return c.divideTimer <= 0
}
