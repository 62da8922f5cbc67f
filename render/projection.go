package render

import "math"

// CellAspect is terminal cell height over width; columns are packed twice as densely
const CellAspect = 2.0

// Projection maps arena pixel coordinates onto terminal cells
// The whole disk fits inside the target rect with square-looking proportions
type Projection struct {
	CX, CY float64 // Arena center in pixels

	OriginX, OriginY int     // Screen cell of the arena center
	ScaleX, ScaleY   float64 // Cells per pixel
}

// NewProjection fits a disk of radius r centered at (cx, cy) into rect
func NewProjection(cx, cy, r float64, rect Rect) Projection {
	p := Projection{
		CX:      cx,
		CY:      cy,
		OriginX: rect.X + rect.Width/2,
		OriginY: rect.Y + rect.Height/2,
	}
	if r <= 0 || rect.Width <= 0 || rect.Height <= 0 {
		return p
	}
	diameter := 2 * r
	sy := math.Min(float64(rect.Height-1)/diameter, float64(rect.Width-1)/(diameter*CellAspect))
	p.ScaleY = math.Max(sy, 0)
	p.ScaleX = p.ScaleY * CellAspect
	return p
}

// ToScreen returns the cell containing the arena point (x, y)
func (p Projection) ToScreen(x, y float64) (col, row int) {
	col = p.OriginX + int(math.Round((x-p.CX)*p.ScaleX))
	row = p.OriginY + int(math.Round((y-p.CY)*p.ScaleY))
	return col, row
}

// Radius returns a pixel radius in columns and rows
func (p Projection) Radius(r float64) (rx, ry float64) {
	return r * p.ScaleX, r * p.ScaleY
}
