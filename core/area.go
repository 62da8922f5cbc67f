package core

// Arena is the circular world boundary all agents are confined to
type Arena struct {
	CX, CY float64 // Center
	R      float64 // Radius
}

// NewArena creates an arena centered at (cx, cy)
func NewArena(cx, cy, r float64) Arena {
	return Arena{CX: cx, CY: cy, R: r}
}
