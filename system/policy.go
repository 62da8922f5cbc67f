package system

import (
	"github.com/lixenwraith/cytosim/core"
	"github.com/lixenwraith/cytosim/physics"
	"github.com/lixenwraith/cytosim/vmath"
)

// Steering is one weighted unit vector contributing to a desired heading
// Negative weight steers away
type Steering struct {
	X, Y   float64
	Weight float64
}

// Policy is the shared sense-blend-quantize-smooth decision for every agent kind
type Policy struct {
	Directions []vmath.Direction
	Smooth     float64
}

// Steer blends a fresh random heading (weight explore) with the steering terms,
// quantizes the blend to a discrete heading and smooths velocity toward it at speed
// Returns the chosen heading
func (p *Policy) Steer(k *core.Kinetic, rng *vmath.FastRand, speed, explore float64, terms ...Steering) vmath.Direction {
	rx, ry := rng.UnitVector()
	tx, ty := explore*rx, explore*ry
	for _, t := range terms {
		tx += t.Weight * t.X
		ty += t.Weight * t.Y
	}

	dir := vmath.PickDiscreteDirection(tx, ty, p.Directions)
	physics.Steer(k, dir.X*speed, dir.Y*speed, p.Smooth)
	return dir
}

// BurdenedSpeed reduces base speed by slowdown per unit of burden, floored at minFrac
func BurdenedSpeed(base float64, burden int, slowdown, minFrac float64) float64 {
	frac := 1 - float64(burden)*slowdown
	if frac < minFrac {
		frac = minFrac
	}
	if frac > 1 {
		frac = 1
	}
	return base * frac
}
