package render

import "github.com/gdamore/tcell/v2"

// Cell is one composed terminal cell
type Cell struct {
	Rune  rune
	Style tcell.Style
}

// Buffer is the frame compositor; renderers write here, Flush copies to the screen
type Buffer struct {
	cells  []Cell
	width  int
	height int
	blank  Cell
}

// NewBuffer creates a buffer filled with blank cells
func NewBuffer(width, height int, blank tcell.Style) *Buffer {
	b := &Buffer{blank: Cell{Rune: ' ', Style: blank}}
	b.Resize(width, height)
	return b
}

// Resize adjusts dimensions, reallocating only if capacity is insufficient
func (b *Buffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets all cells using exponential copy
func (b *Buffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = b.blank
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

// Bounds returns width and height
func (b *Buffer) Bounds() (width, height int) {
	return b.width, b.height
}

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Set writes one cell; out-of-bounds writes are dropped
func (b *Buffer) Set(x, y int, r rune, style tcell.Style) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = Cell{Rune: r, Style: style}
}

// SetText writes s starting at (x, y) and returns the column after the last rune
func (b *Buffer) SetText(x, y int, s string, style tcell.Style) int {
	for _, r := range s {
		b.Set(x, y, r, style)
		x++
	}
	return x
}

// Fill sets every cell of row y in [x0, x1) to r
func (b *Buffer) Fill(x0, x1, y int, r rune, style tcell.Style) {
	for x := x0; x < x1; x++ {
		b.Set(x, y, r, style)
	}
}

// Get returns the cell at (x, y); out-of-bounds reads return the blank cell
func (b *Buffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return b.blank
	}
	return b.cells[y*b.width+x]
}

// FlushToScreen copies the buffer to the screen and shows it
func (b *Buffer) FlushToScreen(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		row := b.cells[y*b.width : (y+1)*b.width]
		for x, c := range row {
			screen.SetContent(x, y, c.Rune, nil, c.Style)
		}
	}
	screen.Show()
}
