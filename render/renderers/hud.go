package renderers

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/cytosim/render"
)

// HUDRenderer draws the counter line on top and the controls/metrics footer
type HUDRenderer struct{}

func NewHUDRenderer() *HUDRenderer {
	return &HUDRenderer{}
}

// HUDText formats the population and counter summary
func HUDText(ctx render.Context) string {
	s := ctx.Snapshot
	c := s.Counts
	return fmt.Sprintf(" t=%.1fs tick=%d | cells %d (inf %d, dead %d) | viruses %d (att %d) | antibodies %d | leukocytes %d | captured %d | infected %d | bursts %d ",
		s.Stats.Elapsed, s.Stats.Tick,
		c.Cells(), c.Infected, c.Dead,
		c.Viruses(), c.AttachedViruses,
		c.Antibodies, c.Leukocytes,
		s.Stats.Captured, s.Stats.InfectedTotal, s.Stats.BurstTotal)
}

func (r *HUDRenderer) Render(ctx render.Context, buf *render.Buffer) {
	w := ctx.Layout.Width
	bar := ctx.Mode.StyleBg(render.RgbStatusText, render.RgbStatusBg)

	// Top: run badge then counters
	y := ctx.Layout.HUDRow
	buf.Fill(0, w, y, ' ', bar)
	badge, badgeBg := " RUN ", render.RgbRunningBg
	if ctx.Paused {
		badge, badgeBg = " PAUSED ", render.RgbPausedBg
	}
	x := buf.SetText(0, y, badge, ctx.Mode.StyleBg(render.RgbBackground, badgeBg).Bold(true))
	buf.SetText(x, y, HUDText(ctx), bar)

	// Footer: controls then metrics, right aligned
	y = ctx.Layout.FooterRow
	if y <= ctx.Layout.HUDRow {
		return
	}
	buf.Fill(0, w, y, ' ', bar)
	audio := "on"
	if ctx.Muted {
		audio = "off"
	}
	controls := fmt.Sprintf(" [space] run/pause [s] step [r] reset [+/-] fps %d [m] sound %s [c] labels [q] quit ", ctx.FPS, audio)
	buf.SetText(0, y, controls, bar)

	if metrics := metricsText(ctx); metrics != "" {
		start := w - len(metrics)
		if start > len(controls) {
			buf.SetText(start, y, metrics, bar)
		}
	}
}

// metricsText shows timing metrics from the status registry
func metricsText(ctx render.Context) string {
	var parts []string
	for _, m := range ctx.Metrics {
		if m.Name == "sim.step_us" {
			parts = append(parts, fmt.Sprintf("step %.0fµs", m.Value))
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, " ") + " "
}
