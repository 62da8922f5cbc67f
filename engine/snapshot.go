package engine

import "github.com/lixenwraith/cytosim/component"

// CellView is a read-only copy of one cell
type CellView struct {
	ID               uint64
	X, Y             float64
	Radius           float64
	State            component.CellState
	BurstTimer       float64 // Meaningful only when State is CellInfected
	GrowProgress     float64 // 0 newborn .. 1 fully grown
	AntibodyAttached int
}

// VirusView is a read-only copy of one virus
type VirusView struct {
	ID       uint64
	X, Y     float64
	VX, VY   float64
	Attached int
}

// AntibodyView is a read-only copy of one antibody
type AntibodyView struct {
	ID     uint64
	X, Y   float64
	VX, VY float64
	Flash  int
}

// LeukocyteView is a read-only copy of one leukocyte
type LeukocyteView struct {
	ID     uint64
	X, Y   float64
	VX, VY float64
}

// Snapshot is an independent copy of world state for a presentation layer
type Snapshot struct {
	ArenaX, ArenaY, ArenaR float64

	VirusRadius     float64
	AntibodyRadius  float64
	LeukocyteRadius float64

	Cells      []CellView
	Viruses    []VirusView
	Antibodies []AntibodyView
	Leukocytes []LeukocyteView

	Stats   Stats
	Counts  Counts
	History []Sample
}

// Snapshot copies the current world state
func (w *World) Snapshot() Snapshot {
	cfg := w.Config
	s := Snapshot{
		ArenaX:          w.Arena.CX,
		ArenaY:          w.Arena.CY,
		ArenaR:          w.Arena.R,
		VirusRadius:     cfg.Virus.Radius,
		AntibodyRadius:  cfg.Antibody.Radius,
		LeukocyteRadius: cfg.Leukocyte.Radius,
		Cells:           make([]CellView, 0, w.Cells.Len()),
		Viruses:         make([]VirusView, 0, w.Viruses.Len()),
		Antibodies:      make([]AntibodyView, 0, w.Antibodies.Len()),
		Leukocytes:      make([]LeukocyteView, 0, w.Leukocytes.Len()),
		Stats:           w.Stats,
		Counts:          w.Counts(),
		History:         w.History.Samples(),
	}

	for _, c := range w.Cells.Items() {
		burst, _ := c.BurstTimer()
		progress := 1.0
		if cfg.Cell.GrowTime > 0 {
			progress = c.GrowTimer / cfg.Cell.GrowTime
			if progress > 1 {
				progress = 1
			}
		}
		s.Cells = append(s.Cells, CellView{
			ID:               c.ID,
			X:                c.X,
			Y:                c.Y,
			Radius:           c.Radius,
			State:            c.State(),
			BurstTimer:       burst,
			GrowProgress:     progress,
			AntibodyAttached: c.AntibodyAttached,
		})
	}
	for _, v := range w.Viruses.Items() {
		s.Viruses = append(s.Viruses, VirusView{ID: v.ID, X: v.X, Y: v.Y, VX: v.VX, VY: v.VY, Attached: v.Attached})
	}
	for _, a := range w.Antibodies.Items() {
		s.Antibodies = append(s.Antibodies, AntibodyView{ID: a.ID, X: a.X, Y: a.Y, VX: a.VX, VY: a.VY, Flash: a.Flash})
	}
	for _, l := range w.Leukocytes.Items() {
		s.Leukocytes = append(s.Leukocytes, LeukocyteView{ID: l.ID, X: l.X, Y: l.Y, VX: l.VX, VY: l.VY})
	}
	return s
}
