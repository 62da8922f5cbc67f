package physics

import (
	"github.com/lixenwraith/cytosim/core"
	"github.com/lixenwraith/cytosim/vmath"
)

// Integrate performs position integration: p = p + v*dt
func Integrate(k *core.Kinetic, dt float64) {
	k.X += k.VX * dt
	k.Y += k.VY * dt
}

// ReflectArena keeps the agent within R - margin, returns true if reflection occurred
func ReflectArena(k *core.Kinetic, a core.Arena, margin float64) bool {
	x, y, vx, vy := vmath.ReflectOffCircle(a, k.X, k.Y, k.VX, k.VY, margin)
	reflected := x != k.X || y != k.Y
	k.X, k.Y, k.VX, k.VY = x, y, vx, vy
	return reflected
}

// SetImpulse overrides velocity toward the unit heading at the given speed
func SetImpulse(k *core.Kinetic, dirX, dirY, speed float64) {
	k.VX = dirX * speed
	k.VY = dirY * speed
}

// Steer exponentially smooths velocity toward the target velocity
func Steer(k *core.Kinetic, targetVX, targetVY, smooth float64) {
	k.VX, k.VY = vmath.Smooth(k.VX, k.VY, targetVX, targetVY, smooth)
}
