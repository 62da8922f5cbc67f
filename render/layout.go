package render

import "github.com/lixenwraith/cytosim/parameter"

// Rect is a screen region in cells
type Rect struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether (x, y) lies inside the rect
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Layout splits the screen into HUD row, arena, timeline chart and footer row
type Layout struct {
	Width, Height int

	HUDRow    int
	Arena     Rect
	Timeline  Rect
	FooterRow int
}

// NewLayout allocates rows top to bottom; the timeline collapses on short screens
func NewLayout(width, height int) Layout {
	l := Layout{Width: width, Height: height, HUDRow: 0, FooterRow: height - 1}

	timeline := parameter.TimelineHeight
	if height < timeline*3 {
		timeline = 0
	}
	arenaTop := 1
	arenaHeight := max(height-2-timeline, 0)

	l.Arena = Rect{X: 0, Y: arenaTop, Width: width, Height: arenaHeight}
	l.Timeline = Rect{X: 0, Y: arenaTop + arenaHeight, Width: width, Height: timeline}
	return l
}
