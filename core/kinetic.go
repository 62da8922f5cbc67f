package core

// Kinetic holds continuous position and velocity of a mobile agent
type Kinetic struct {
	// X and Y are arena coordinates in pixels
	X, Y float64
	// VX and VY represent velocity in pixels per second
	VX, VY float64
}

// Pos returns the current position
func (k *Kinetic) Pos() (x, y float64) {
	return k.X, k.Y
}

// SetVelocity overrides velocity
func (k *Kinetic) SetVelocity(vx, vy float64) {
	k.VX = vx
	k.VY = vy
}
