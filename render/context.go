package render

import (
	"github.com/lixenwraith/cytosim/engine"
	"github.com/lixenwraith/cytosim/status"
)

// Context provides frame state for renderers, passed by value
type Context struct {
	Snapshot *engine.Snapshot
	Layout   Layout
	View     Projection
	Mode     ColorMode

	// Control surface state
	Paused  bool
	Muted   bool
	FPS     int
	Metrics []status.Metric
}

// NewContext derives layout and projection for the current screen size
func NewContext(snap *engine.Snapshot, width, height int, mode ColorMode) Context {
	layout := NewLayout(width, height)
	return Context{
		Snapshot: snap,
		Layout:   layout,
		View:     NewProjection(snap.ArenaX, snap.ArenaY, snap.ArenaR, layout.Arena),
		Mode:     mode,
	}
}
