package renderers

import (
	"math"

	"github.com/lixenwraith/cytosim/render"
)

// ArenaRenderer draws the arena boundary ring
type ArenaRenderer struct{}

func NewArenaRenderer() *ArenaRenderer {
	return &ArenaRenderer{}
}

func (r *ArenaRenderer) Render(ctx render.Context, buf *render.Buffer) {
	snap := ctx.Snapshot
	style := ctx.Mode.Style(render.RgbArenaRing)
	rx, ry := ctx.View.Radius(snap.ArenaR)
	if rx <= 0 || ry <= 0 {
		return
	}

	// One sample per boundary cell, roughly
	steps := int(math.Ceil(2 * math.Pi * math.Max(rx, ry)))
	for i := 0; i < steps; i++ {
		ang := 2 * math.Pi * float64(i) / float64(steps)
		x := snap.ArenaX + snap.ArenaR*math.Cos(ang)
		y := snap.ArenaY + snap.ArenaR*math.Sin(ang)
		col, row := ctx.View.ToScreen(x, y)
		if ctx.Layout.Arena.Contains(col, row) {
			buf.Set(col, row, '·', style)
		}
	}
}
