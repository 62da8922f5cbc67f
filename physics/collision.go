package physics

import (
	"math"

	"github.com/lixenwraith/cytosim/component"
	"github.com/lixenwraith/cytosim/core"
	"github.com/lixenwraith/cytosim/vmath"
)

// CollisionProfile defines overlap resolution parameters against cells
// Profiles are built once from config and shared by every agent kind
type CollisionProfile struct {
	Deflect      float64 // Multiple of normal velocity removed when a mobile agent is pushed out
	PositionFrac float64 // Fraction of cell-cell overlap corrected by moving the cell
	VelocityFrac float64 // Fraction of cell-cell overlap removed from the cell velocity
	DeadObstruct bool    // Dead cells block mobile non-cell agents
}

func (p *CollisionProfile) obstructs(c *component.Cell) bool {
	return c.IsLive() || p.DeadObstruct
}

// PushOutOfCells separates a mobile agent of radius r from every obstructing cell
// The agent is placed at exactly cell.r + r along the normal and loses Deflect times its normal velocity
// Coincident centers relocate the agent to a random point on the separation circle
// Returns the number of contacts resolved
func PushOutOfCells(k *core.Kinetic, r float64, cells []*component.Cell, profile *CollisionProfile, rng *vmath.FastRand) int {
	contacts := 0
	for _, c := range cells {
		if !profile.obstructs(c) {
			continue
		}
		dx := k.X - c.X
		dy := k.Y - c.Y
		d := math.Hypot(dx, dy)
		minD := c.Radius + r

		switch {
		case d < vmath.Epsilon:
			k.X, k.Y = vmath.PointOnCircle(c.X, c.Y, minD, rng.Angle())
			contacts++
		case d < minD:
			nx, ny := dx/d, dy/d
			k.X = c.X + nx*minD
			k.Y = c.Y + ny*minD
			k.VX, k.VY = vmath.Deflect(k.VX, k.VY, nx, ny, profile.Deflect)
			contacts++
		}
	}
	return contacts
}

// PushOutOfOtherCells corrects one cell against every other live cell
// Only the given cell moves; the pair is not solved symmetrically
// Returns the number of overlaps resolved
func PushOutOfOtherCells(cell *component.Cell, cells []*component.Cell, profile *CollisionProfile, rng *vmath.FastRand) int {
	contacts := 0
	for _, other := range cells {
		if other == cell || !other.IsLive() {
			continue
		}
		dx := cell.X - other.X
		dy := cell.Y - other.Y
		d := math.Hypot(dx, dy)
		minD := cell.Radius + other.Radius

		switch {
		case d < vmath.Epsilon:
			cell.X, cell.Y = vmath.PointOnCircle(other.X, other.Y, minD, rng.Angle())
			contacts++
		case d < minD:
			nx, ny := dx/d, dy/d
			overlap := minD - d
			cell.X += nx * overlap * profile.PositionFrac
			cell.Y += ny * overlap * profile.PositionFrac
			cell.VX -= nx * overlap * profile.VelocityFrac
			cell.VY -= ny * overlap * profile.VelocityFrac
			contacts++
		}
	}
	return contacts
}
