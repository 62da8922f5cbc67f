package renderers

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/cytosim/component"
	"github.com/lixenwraith/cytosim/engine"
	"github.com/lixenwraith/cytosim/render"
)

// CellRenderer fills each cell's disk with a state-shaded block
type CellRenderer struct{}

func NewCellRenderer() *CellRenderer {
	return &CellRenderer{}
}

// cellLook returns fill rune and color by state
func cellLook(c engine.CellView) (rune, tcell.Color) {
	switch c.State {
	case component.CellInfected:
		return '▓', render.RgbInfected
	case component.CellDead:
		return '░', render.RgbDead
	default:
		return '▒', render.RgbHealthy
	}
}

func (r *CellRenderer) Render(ctx render.Context, buf *render.Buffer) {
	area := ctx.Layout.Arena
	for _, c := range ctx.Snapshot.Cells {
		fill, color := cellLook(c)
		style := ctx.Mode.Style(color)
		col, row := ctx.View.ToScreen(c.X, c.Y)
		rx, ry := ctx.View.Radius(c.Radius)

		if rx < 1 || ry < 1 {
			if area.Contains(col, row) {
				buf.Set(col, row, 'O', style)
			}
			continue
		}

		irx, iry := int(rx), int(ry)
		for dy := -iry; dy <= iry; dy++ {
			for dx := -irx; dx <= irx; dx++ {
				nx, ny := float64(dx)/rx, float64(dy)/ry
				if nx*nx+ny*ny > 1 {
					continue
				}
				if area.Contains(col+dx, row+dy) {
					buf.Set(col+dx, row+dy, fill, style)
				}
			}
		}

		// Docked antibodies show as a count in the nucleus
		if c.AntibodyAttached > 0 && area.Contains(col, row) {
			mark := '+'
			if c.AntibodyAttached < 10 {
				mark = rune('0' + c.AntibodyAttached)
			}
			buf.Set(col, row, mark, ctx.Mode.StyleBg(render.RgbBackground, render.RgbAntibody))
		}
	}
}
