package system

import (
	"math"

	"github.com/lixenwraith/cytosim/component"
	"github.com/lixenwraith/cytosim/engine"
	"github.com/lixenwraith/cytosim/vmath"
)

// SpawnAntibodies releases a random batch of flashing antibodies around (x, y)
// Returns the batch size
func SpawnAntibodies(w *engine.World, x, y float64) int {
	cfg := &w.Config.Antibody
	lc := &w.Config.Leukocyte
	n := lc.SpawnMin + w.Rand.Intn(lc.SpawnMax-lc.SpawnMin+1)

	for range n {
		ang := w.Rand.Angle()
		rr := math.Sqrt(w.Rand.Float64()) * lc.SpawnRadius
		ax, ay := vmath.PointOnCircle(x, y, rr, ang)
		ax, ay = vmath.ClampInsideCircle(w.Arena, ax, ay, cfg.Radius)
		ux, uy := w.Rand.UnitVector()
		a := component.NewAntibody(ax, ay, ux*cfg.Speed, uy*cfg.Speed)
		a.Flash = cfg.FlashFrames
		w.Antibodies.Add(a)
	}
	w.Stats.AntibodiesSpawned += n
	return n
}

// Populate clears the world and places the initial populations
// Cells keep a minimum spacing; mobile agents are kept clear of cells
func Populate(w *engine.World) {
	w.Clear()
	placeCells(w)

	pl := &w.Config.Placement
	pop := &w.Config.Population

	forced := 0
	for range pop.Viruses {
		cfg := &w.Config.Virus
		x, y, ok := placeMobile(w, pl.VirusMargin, cfg.Radius)
		if !ok {
			forced++
		}
		ux, uy := w.Rand.UnitVector()
		w.Viruses.Add(component.NewVirus(x, y, ux*cfg.Speed, uy*cfg.Speed))
	}
	for range pop.Antibodies {
		cfg := &w.Config.Antibody
		x, y, ok := placeMobile(w, pl.AntibodyMargin, cfg.Radius)
		if !ok {
			forced++
		}
		ux, uy := w.Rand.UnitVector()
		w.Antibodies.Add(component.NewAntibody(x, y, ux*cfg.Speed, uy*cfg.Speed))
	}
	for range pop.Leukocytes {
		cfg := &w.Config.Leukocyte
		x, y, ok := placeMobile(w, pl.LeukocyteMargin, cfg.Radius)
		if !ok {
			forced++
		}
		ux, uy := w.Rand.UnitVector()
		w.Leukocytes.Add(component.NewLeukocyte(x, y, ux*cfg.Speed, uy*cfg.Speed))
	}

	if forced > 0 {
		w.Logger.Printf("[PLACE] %d mobile agents placed without clearance after %d attempts", forced, pl.MobileAttempts)
	}
	w.Logger.Printf("[PLACE] cells=%d/%d viruses=%d antibodies=%d leukocytes=%d",
		w.Cells.Len(), pop.Cells, w.Viruses.Len(), w.Antibodies.Len(), w.Leukocytes.Len())
}

// placeCells rejection-samples full-size cells with spacing, bounded by the attempt budget
// Fewer cells than requested may result
func placeCells(w *engine.World) {
	cfg := &w.Config.Cell
	pl := &w.Config.Placement
	minD := 2*cfg.RadiusLarge + pl.CellSpacing
	minD2 := minD * minD

	for attempts := 0; attempts < pl.CellAttempts && w.Cells.Len() < w.Config.Population.Cells; attempts++ {
		x, y := vmath.RandPointInCircle(w.Arena, pl.CellMargin, w.Rand)
		if tooClose(w, x, y, minD2) {
			continue
		}
		ux, uy := w.Rand.UnitVector()
		c := component.NewCell(x, y, ux*cfg.Speed, uy*cfg.Speed, cfg.RadiusLarge, cfg.GrowTime)
		c.SetDivideTimer(w.Rand.Uniform(cfg.DivideTimeMin, cfg.DivideTimeMax))
		w.Cells.Add(c)
	}
}

func tooClose(w *engine.World, x, y, minD2 float64) bool {
	for _, c := range w.Cells.Items() {
		if vmath.Dist2(x, y, c.X, c.Y) < minD2 {
			return true
		}
	}
	return false
}

// placeMobile samples a point clear of every cell by r plus the clearance
// After MobileAttempts the last sample is returned with ok false
func placeMobile(w *engine.World, margin, r float64) (x, y float64, ok bool) {
	pl := &w.Config.Placement
	attempts := max(pl.MobileAttempts, 1)
	for range attempts {
		x, y = vmath.RandPointInCircle(w.Arena, margin, w.Rand)
		if clearOfCells(w, x, y, r+pl.Clearance) {
			return x, y, true
		}
	}
	return x, y, false
}

func clearOfCells(w *engine.World, x, y, pad float64) bool {
	for _, c := range w.Cells.Items() {
		reach := c.Radius + pad
		if vmath.Dist2(x, y, c.X, c.Y) < reach*reach {
			return false
		}
	}
	return true
}
