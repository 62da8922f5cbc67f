package component

import "github.com/lixenwraith/cytosim/core"

// Virus is a free-floating virion
// Attached > 0 means antibodies are docked: slower, no infection, immune to further capture
type Virus struct {
	Identity
	core.Kinetic

	Attached int
}

// NewVirus creates a free virus
func NewVirus(x, y, vx, vy float64) *Virus {
	return &Virus{Kinetic: core.Kinetic{X: x, Y: y, VX: vx, VY: vy}}
}

// IsFree reports whether no antibody is attached
func (v *Virus) IsFree() bool {
	return v.Attached == 0
}
