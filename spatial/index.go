// Package spatial provides nearest-target queries over agent positions.
// An Index is built once per decision step from a snapshot of positions and is read-only afterwards.
package spatial

import (
	"github.com/dhconnelly/rtreego"

	"github.com/lixenwraith/cytosim/vmath"
)

// R-tree branching, small populations keep the tree shallow
const (
	minChildren = 4
	maxChildren = 16

	// pointTol is the half-extent of the box wrapping each point
	pointTol = 1e-6
)

// point wraps one registry index for the tree
type point struct {
	idx  int
	x, y float64
	rect rtreego.Rect
}

func (p *point) Bounds() rtreego.Rect {
	return p.rect
}

// Index answers nearest-point queries, values returned are registry indices
type Index struct {
	tree *rtreego.Rtree
	size int
}

// Build indexes positions for which include returns true
// pos and include are called once per index in [0, n)
func Build(n int, pos func(i int) (x, y float64), include func(i int) bool) *Index {
	spatials := make([]rtreego.Spatial, 0, n)
	for i := 0; i < n; i++ {
		if include != nil && !include(i) {
			continue
		}
		x, y := pos(i)
		rect, err := rtreego.NewRect(rtreego.Point{x - pointTol, y - pointTol}, []float64{2 * pointTol, 2 * pointTol})
		if err != nil {
			// Lengths are constant and positive
			continue
		}
		spatials = append(spatials, &point{idx: i, x: x, y: y, rect: rect})
	}

	return &Index{
		tree: rtreego.NewTree(2, minChildren, maxChildren, spatials...),
		size: len(spatials),
	}
}

// Len returns the number of indexed points
func (ix *Index) Len() int {
	return ix.size
}

// Nearest returns the index and squared distance of the closest point
func (ix *Index) Nearest(x, y float64) (idx int, d2 float64, ok bool) {
	if ix == nil || ix.size == 0 {
		return -1, 0, false
	}
	sp := ix.tree.NearestNeighbor(rtreego.Point{x, y})
	p, isPoint := sp.(*point)
	if !isPoint || p == nil {
		return -1, 0, false
	}
	return p.idx, vmath.Dist2(x, y, p.x, p.y), true
}

// NearestWithin returns the closest point strictly inside radius
func (ix *Index) NearestWithin(x, y, radius float64) (idx int, ok bool) {
	idx, d2, ok := ix.Nearest(x, y)
	if !ok || d2 >= radius*radius {
		return -1, false
	}
	return idx, true
}
