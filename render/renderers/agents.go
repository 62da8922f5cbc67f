package renderers

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/cytosim/render"
)

// AgentRenderer draws viruses, antibodies and leukocytes as glyphs
type AgentRenderer struct{}

func NewAgentRenderer() *AgentRenderer {
	return &AgentRenderer{}
}

func (r *AgentRenderer) Render(ctx render.Context, buf *render.Buffer) {
	snap := ctx.Snapshot
	area := ctx.Layout.Arena
	put := func(x, y float64, ch rune, style tcell.Style) {
		col, row := ctx.View.ToScreen(x, y)
		if area.Contains(col, row) {
			buf.Set(col, row, ch, style)
		}
	}

	free := ctx.Mode.Style(render.RgbVirusFree)
	taken := ctx.Mode.Style(render.RgbVirusTaken).Bold(true)
	for _, v := range snap.Viruses {
		if v.Attached > 0 {
			put(v.X, v.Y, '✱', taken)
		} else {
			put(v.X, v.Y, '*', free)
		}
	}

	antibody := ctx.Mode.Style(render.RgbAntibody)
	flash := ctx.Mode.Style(render.RgbFlash).Bold(true)
	for _, a := range snap.Antibodies {
		if a.Flash > 0 {
			put(a.X, a.Y, 'Y', flash)
		} else {
			put(a.X, a.Y, 'Y', antibody)
		}
	}

	leuko := ctx.Mode.Style(render.RgbLeukocyte).Bold(true)
	for _, l := range snap.Leukocytes {
		put(l.X, l.Y, '@', leuko)
	}
}
