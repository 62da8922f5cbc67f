package engine

import (
	"fmt"
	"math"
	"strings"

	"github.com/pkg/errors"

	"github.com/lixenwraith/cytosim/vmath"
)

// boundaryTolerance absorbs float error on reflected positions
const boundaryTolerance = 1e-6

// CheckInvariants verifies post-tick world invariants
// Violations indicate a programming defect; all are reported together
func (w *World) CheckInvariants() error {
	var violations []string
	add := func(format string, args ...any) {
		violations = append(violations, fmt.Sprintf(format, args...))
	}

	limit := w.Arena.R + boundaryTolerance
	outside := func(kind string, id uint64, x, y float64) {
		if d := math.Sqrt(vmath.Dist2(x, y, w.Arena.CX, w.Arena.CY)); d > limit {
			add("%s %d outside arena: distance %.3f > %.3f", kind, id, d, w.Arena.R)
		}
	}

	cells := w.Cells.Items()
	for _, c := range cells {
		outside("cell", c.ID, c.X, c.Y)
		if c.Radius <= 0 {
			add("cell %d non-positive radius %.3f", c.ID, c.Radius)
		}
		if c.GrowTimer < 0 {
			add("cell %d negative grow timer %.3f", c.ID, c.GrowTimer)
		}
		if c.AntibodyAttached < 0 {
			add("cell %d negative attachment count", c.ID)
		}
	}
	for _, v := range w.Viruses.Items() {
		outside("virus", v.ID, v.X, v.Y)
		if v.Attached < 0 {
			add("virus %d negative attachment count", v.ID)
		}
	}
	for _, a := range w.Antibodies.Items() {
		outside("antibody", a.ID, a.X, a.Y)
	}
	for _, l := range w.Leukocytes.Items() {
		outside("leukocyte", l.ID, l.X, l.Y)
	}

	tol := w.Config.Collision.OverlapTolerance
	for i := 0; i < len(cells); i++ {
		a := cells[i]
		if !a.IsLive() {
			continue
		}
		for j := i + 1; j < len(cells); j++ {
			b := cells[j]
			if !b.IsLive() {
				continue
			}
			d := math.Sqrt(vmath.Dist2(a.X, a.Y, b.X, b.Y))
			if overlap := a.Radius + b.Radius - d; overlap > tol {
				add("cells %d and %d overlap by %.3f", a.ID, b.ID, overlap)
			}
		}
	}

	if len(violations) == 0 {
		return nil
	}
	return errors.Errorf("%d invariant violation(s): %s", len(violations), strings.Join(violations, "; "))
}
