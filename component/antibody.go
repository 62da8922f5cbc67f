package component

import "github.com/lixenwraith/cytosim/core"

// Antibody is a mobile antibody; it leaves the registry once it attaches
type Antibody struct {
	Identity
	core.Kinetic

	// Flash is the remaining frame count rendered in the alert color
	Flash int
}

// NewAntibody creates an antibody with no flash
func NewAntibody(x, y, vx, vy float64) *Antibody {
	return &Antibody{Kinetic: core.Kinetic{X: x, Y: y, VX: vx, VY: vy}}
}

// DecayFlash counts the flash down by one frame
func (a *Antibody) DecayFlash() {
	if a.Flash > 0 {
		a.Flash--
	}
}
