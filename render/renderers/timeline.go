package renderers

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/cytosim/engine"
	"github.com/lixenwraith/cytosim/render"
)

// series is one plotted population curve
type series struct {
	label string
	color tcell.Color
	value func(engine.Counts) int
}

var timelineSeries = []series{
	{"healthy", render.RgbHealthy, func(c engine.Counts) int { return c.Healthy }},
	{"infected", render.RgbInfected, func(c engine.Counts) int { return c.Infected }},
	{"viruses", render.RgbVirusFree, func(c engine.Counts) int { return c.Viruses() }},
	{"antibodies", render.RgbAntibody, func(c engine.Counts) int { return c.Antibodies }},
}

// TimelineRenderer charts population history, newest sample at the right edge
type TimelineRenderer struct{}

func NewTimelineRenderer() *TimelineRenderer {
	return &TimelineRenderer{}
}

func (r *TimelineRenderer) Render(ctx render.Context, buf *render.Buffer) {
	area := ctx.Layout.Timeline
	if area.Height < 2 || area.Width < 2 {
		return
	}

	// Legend on the first row, plot below
	x := area.X + 1
	for _, s := range timelineSeries {
		x = buf.SetText(x, area.Y, "■ ", ctx.Mode.Style(s.color))
		x = buf.SetText(x, area.Y, s.label+"  ", ctx.Mode.Style(render.RgbStatusText))
	}

	plotTop := area.Y + 1
	plotH := area.Height - 1
	axis := ctx.Mode.Style(render.RgbAxis)
	buf.Fill(area.X, area.X+area.Width, plotTop+plotH-1, '─', axis)

	history := ctx.Snapshot.History
	if len(history) > area.Width {
		history = history[len(history)-area.Width:]
	}
	peak := 1
	for _, smp := range history {
		for _, s := range timelineSeries {
			peak = max(peak, s.value(smp.Counts))
		}
	}

	offset := area.X + area.Width - len(history)
	for i, smp := range history {
		col := offset + i
		for _, s := range timelineSeries {
			v := s.value(smp.Counts)
			row := plotTop + plotH - 1 - (v*(plotH-1)+peak/2)/peak
			buf.Set(col, row, '•', ctx.Mode.Style(s.color))
		}
	}
}
