package renderers

import (
	"fmt"

	"github.com/lixenwraith/cytosim/component"
	"github.com/lixenwraith/cytosim/render"
)

// CountdownRenderer prints the burst countdown above infected cells
type CountdownRenderer struct {
	visible bool
}

func NewCountdownRenderer() *CountdownRenderer {
	return &CountdownRenderer{visible: true}
}

func (r *CountdownRenderer) IsVisible() bool {
	return r.visible
}

// Toggle flips label visibility
func (r *CountdownRenderer) Toggle() {
	r.visible = !r.visible
}

func (r *CountdownRenderer) Render(ctx render.Context, buf *render.Buffer) {
	area := ctx.Layout.Arena
	style := ctx.Mode.Style(render.RgbCountdown)
	for _, c := range ctx.Snapshot.Cells {
		if c.State != component.CellInfected {
			continue
		}
		label := fmt.Sprintf("%.1fs", max(c.BurstTimer, 0))
		col, row := ctx.View.ToScreen(c.X, c.Y)
		_, ry := ctx.View.Radius(c.Radius)
		row -= int(ry) + 1
		col -= len(label) / 2
		if !area.Contains(col, row) || !area.Contains(col+len(label)-1, row) {
			continue
		}
		buf.SetText(col, row, label, style)
	}
}
