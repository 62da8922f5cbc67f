package vmath

import "math"

// Dist2 returns squared distance between two points
func Dist2(ax, ay, bx, by float64) float64 {
	dx := ax - bx
	dy := ay - by
	return dx*dx + dy*dy
}

// Magnitude returns Euclidean vector length
func Magnitude(x, y float64) float64 {
	return math.Hypot(x, y)
}

// UnitVec returns the normalized vector, zero-safe
// Magnitudes below Epsilon return (0, 0)
func UnitVec(x, y float64) (ux, uy float64) {
	d := math.Hypot(x, y)
	if d < Epsilon {
		return 0, 0
	}
	return x / d, y / d
}

// DotProduct returns x1*x2 + y1*y2
func DotProduct(x1, y1, x2, y2 float64) float64 {
	return x1*x2 + y1*y2
}

// Reflect returns velocity reflected off surface with given unit normal
// vel' = vel - 2 * dot(vel, normal) * normal
func Reflect(velX, velY, normalX, normalY float64) (rx, ry float64) {
	return Deflect(velX, velY, normalX, normalY, 2)
}

// Deflect removes factor times the velocity component along the unit normal
// factor 2 is an elastic reflection, 1 slides along the surface
func Deflect(velX, velY, normalX, normalY, factor float64) (rx, ry float64) {
	dot := DotProduct(velX, velY, normalX, normalY)
	return velX - factor*dot*normalX, velY - factor*dot*normalY
}

// Smooth exponentially blends current toward target by factor s in [0, 1]
func Smooth(curX, curY, targetX, targetY, s float64) (x, y float64) {
	return (1-s)*curX + s*targetX, (1-s)*curY + s*targetY
}

// Toward returns the unit vector from (fromX, fromY) to (toX, toY)
func Toward(fromX, fromY, toX, toY float64) (ux, uy float64) {
	return UnitVec(toX-fromX, toY-fromY)
}
