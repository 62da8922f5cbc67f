package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/cytosim/engine"
	"github.com/lixenwraith/cytosim/parameter"
)

func TestLayoutSplitsRows(t *testing.T) {
	l := NewLayout(100, 40)

	assert.Equal(t, 0, l.HUDRow)
	assert.Equal(t, 39, l.FooterRow)
	assert.Equal(t, 1, l.Arena.Y)
	assert.Equal(t, 40-2-parameter.TimelineHeight, l.Arena.Height)
	assert.Equal(t, l.Arena.Y+l.Arena.Height, l.Timeline.Y)
	assert.Equal(t, l.FooterRow, l.Timeline.Y+l.Timeline.Height)
}

func TestLayoutDropsTimelineOnShortScreens(t *testing.T) {
	l := NewLayout(80, 10)
	assert.Zero(t, l.Timeline.Height)
	assert.Equal(t, 8, l.Arena.Height)
}

func TestProjectionFitsDisk(t *testing.T) {
	rect := Rect{X: 0, Y: 1, Width: 120, Height: 33}
	p := NewProjection(360, 360, 320, rect)

	assert.InDelta(t, p.ScaleY*CellAspect, p.ScaleX, 1e-12)
	for _, pt := range [][2]float64{{40, 360}, {680, 360}, {360, 40}, {360, 680}} {
		col, row := p.ToScreen(pt[0], pt[1])
		assert.True(t, rect.Contains(col, row), "point %v maps to %d,%d", pt, col, row)
	}
	col, row := p.ToScreen(360, 360)
	assert.Equal(t, rect.X+rect.Width/2, col)
	assert.Equal(t, rect.Y+rect.Height/2, row)
}

func TestProjectionDegenerateRect(t *testing.T) {
	p := NewProjection(0, 0, 100, Rect{})
	assert.Zero(t, p.ScaleX)
	rx, ry := p.Radius(10)
	assert.Zero(t, rx)
	assert.Zero(t, ry)
}

func TestBufferBoundsAndText(t *testing.T) {
	b := NewBuffer(10, 3, tcell.StyleDefault)

	b.Set(-1, 0, 'x', tcell.StyleDefault)
	b.Set(10, 0, 'x', tcell.StyleDefault)
	end := b.SetText(8, 1, "abc", tcell.StyleDefault)

	assert.Equal(t, 11, end)
	assert.Equal(t, 'a', b.Get(8, 1).Rune)
	assert.Equal(t, 'b', b.Get(9, 1).Rune)
	assert.Equal(t, ' ', b.Get(50, 50).Rune)

	b.Clear()
	assert.Equal(t, ' ', b.Get(8, 1).Rune)

	b.Resize(4, 2)
	w, h := b.Bounds()
	assert.Equal(t, 4, w)
	assert.Equal(t, 2, h)
}

func TestColorModeDownsamples(t *testing.T) {
	assert.Equal(t, RgbHealthy, ColorModeTrueColor.Color(RgbHealthy))
	assert.NotEqual(t, RgbHealthy, ColorMode256.Color(RgbHealthy))
	assert.Equal(t, ColorMode256, ParseColorMode("256"))
	assert.Equal(t, ColorModeTrueColor, ParseColorMode("auto"))
}

type probe struct {
	id    int
	order *[]int
	hide  bool
}

func (p *probe) Render(ctx Context, buf *Buffer) { *p.order = append(*p.order, p.id) }
func (p *probe) IsVisible() bool                 { return !p.hide }

func TestOrchestratorOrderAndFlush(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(40, 20)

	o := NewOrchestrator(screen, ColorModeTrueColor)
	var order []int
	o.Register(&probe{id: 3, order: &order}, PriorityUI)
	o.Register(&probe{id: 1, order: &order}, PriorityBackground)
	o.Register(&probe{id: 2, order: &order}, PriorityCells)
	o.Register(&probe{id: 4, order: &order, hide: true}, PriorityCells)
	o.Register(textAt{x: 2, y: 5, s: "hi"}, PriorityLabels)

	snap := engine.Snapshot{ArenaX: 100, ArenaY: 100, ArenaR: 80}
	o.RenderFrame(NewContext(&snap, 40, 20, ColorModeTrueColor))

	assert.Equal(t, []int{1, 2, 3}, order)
	r, _, _, _ := screen.GetContent(2, 5)
	assert.Equal(t, 'h', r)
	r, _, _, _ = screen.GetContent(3, 5)
	assert.Equal(t, 'i', r)
}

type textAt struct {
	x, y int
	s    string
}

func (t textAt) Render(ctx Context, buf *Buffer) { buf.SetText(t.x, t.y, t.s, tcell.StyleDefault) }
