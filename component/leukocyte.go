package component

import "github.com/lixenwraith/cytosim/core"

// Leukocyte cleans up attached viruses and infected or dead cells, never destroyed
type Leukocyte struct {
	Identity
	core.Kinetic
}

// NewLeukocyte creates a leukocyte
func NewLeukocyte(x, y, vx, vy float64) *Leukocyte {
	return &Leukocyte{Kinetic: core.Kinetic{X: x, Y: y, VX: vx, VY: vy}}
}
