package vmath

import "math"

// DirectionCount is the number of discrete headings a decision may choose
const DirectionCount = 16

// Direction is a unit heading vector
type Direction struct {
	X, Y float64
}

var directions16 = buildDirections(DirectionCount)

func buildDirections(n int) []Direction {
	dirs := make([]Direction, n)
	for k := 0; k < n; k++ {
		ang := TwoPi * float64(k) / float64(n)
		dirs[k] = Direction{X: math.Cos(ang), Y: math.Sin(ang)}
	}
	return dirs
}

// Directions16 returns the evenly spaced compass headings, index 0 points along +X
// The returned slice is shared and must not be modified
func Directions16() []Direction {
	return directions16
}

// PickDiscreteDirection quantizes a desired vector to the heading with maximal dot product
// Ties and the zero vector resolve to the earliest heading in dirs
func PickDiscreteDirection(dx, dy float64, dirs []Direction) Direction {
	ux, uy := UnitVec(dx, dy)
	best := dirs[0]
	bestDot := math.Inf(-1)
	for _, d := range dirs {
		dot := ux*d.X + uy*d.Y
		if dot > bestDot {
			bestDot = dot
			best = d
		}
	}
	return best
}
