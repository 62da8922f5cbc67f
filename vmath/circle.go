package vmath

import (
	"math"

	"github.com/lixenwraith/cytosim/core"
)

// RandPointInCircle returns a point uniformly distributed inside the arena disk shrunk by margin
// sqrt of the radial sample keeps the density uniform over area
func RandPointInCircle(a core.Arena, margin float64, rng *FastRand) (x, y float64) {
	ang := rng.Angle()
	rr := math.Sqrt(rng.Float64()) * (a.R - margin)
	return a.CX + rr*math.Cos(ang), a.CY + rr*math.Sin(ang)
}

// PointOnCircle returns the point at distance r from (cx, cy) along angle ang
func PointOnCircle(cx, cy, r, ang float64) (x, y float64) {
	return cx + r*math.Cos(ang), cy + r*math.Sin(ang)
}

// InsideCircle reports whether the point lies within R - margin of the arena center
func InsideCircle(a core.Arena, x, y, margin float64) bool {
	limit := a.R - margin
	return Dist2(x, y, a.CX, a.CY) <= limit*limit
}

// ClampInsideCircle pulls a point lying outside R - margin back onto that circle
// Points at the exact center are returned unchanged
func ClampInsideCircle(a core.Arena, x, y, margin float64) (cx, cy float64) {
	if InsideCircle(a, x, y, margin) {
		return x, y
	}
	dx, dy := x-a.CX, y-a.CY
	d := math.Hypot(dx, dy)
	if d < Epsilon {
		return x, y
	}
	limit := a.R - margin
	return a.CX + dx/d*limit, a.CY + dy/d*limit
}

// ReflectOffCircle keeps a moving point inside R - margin
// Outside the limit the position is clamped onto the boundary and velocity reflected about the normal
func ReflectOffCircle(a core.Arena, x, y, vx, vy, margin float64) (rx, ry, rvx, rvy float64) {
	dx, dy := x-a.CX, y-a.CY
	d := math.Hypot(dx, dy)
	limit := a.R - margin
	if d <= limit || d < Epsilon {
		return x, y, vx, vy
	}

	nx, ny := dx/d, dy/d
	rvx, rvy = Reflect(vx, vy, nx, ny)
	return a.CX + nx*limit, a.CY + ny*limit, rvx, rvy
}
