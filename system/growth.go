package system

import (
	"math"

	"github.com/lixenwraith/cytosim/component"
	"github.com/lixenwraith/cytosim/engine"
	"github.com/lixenwraith/cytosim/event"
	"github.com/lixenwraith/cytosim/parameter"
	"github.com/lixenwraith/cytosim/physics"
	"github.com/lixenwraith/cytosim/vmath"
)

// GrowthSystem grows healthy cells toward full size and divides mature ones
type GrowthSystem struct {
	newborns []*component.Cell
}

func NewGrowthSystem() *GrowthSystem {
	return &GrowthSystem{}
}

func (s *GrowthSystem) Priority() int {
	return PriorityGrowth
}

func (s *GrowthSystem) Update(w *engine.World, dt float64) {
	cfg := &w.Config.Cell
	s.newborns = s.newborns[:0]

	for i, c := range w.Cells.Items() {
		if !c.IsHealthy() {
			continue
		}
		grow(w, c, dt)

		if c.Radius < cfg.RadiusLarge-parameter.CellGrownEpsilon {
			continue
		}
		if c.TickDivide(dt) {
			w.Cells.Mark(i)
			s.newborns = append(s.newborns, divide(w, c)...)
		}
	}

	if len(s.newborns) == 0 {
		return
	}
	for _, child := range s.newborns {
		w.Cells.Add(child)
	}
	w.Cells.Compact()

	cells := w.Cells.Items()
	for _, child := range s.newborns {
		physics.PushOutOfOtherCells(child, cells, &w.Collision, w.Rand)
		physics.ReflectArena(&child.Kinetic, w.Arena, child.Radius)
	}
}

// grow advances the growth timer and interpolates the radius
// A grown cell without a division countdown gets one
func grow(w *engine.World, c *component.Cell, dt float64) {
	cfg := &w.Config.Cell
	if cfg.GrowTime <= 0 {
		c.GrowTimer = 0
		c.Radius = cfg.RadiusLarge
	} else if c.GrowTimer < cfg.GrowTime {
		c.GrowTimer = math.Min(cfg.GrowTime, c.GrowTimer+dt)
		c.Radius = vmath.Lerp(cfg.RadiusSmall, cfg.RadiusLarge, c.GrowTimer/cfg.GrowTime)
	}

	if c.Radius >= cfg.RadiusLarge-parameter.CellGrownEpsilon {
		if _, ok := c.DivideTimer(); !ok {
			c.SetDivideTimer(w.Rand.Uniform(cfg.DivideTimeMin, cfg.DivideTimeMax))
		}
	}
}

// divide produces two small healthy daughters offset symmetrically from the parent
func divide(w *engine.World, parent *component.Cell) []*component.Cell {
	cfg := &w.Config.Cell
	w.Stats.Divisions++
	w.Emit(event.EventDivision, parent.ID, parent.X, parent.Y, 2)

	ang := w.Rand.Angle()
	offset := math.Max(cfg.RadiusSmall+2, parent.Radius*cfg.DivideOffsetFactor)
	dx, dy := math.Cos(ang)*offset, math.Sin(ang)*offset

	children := make([]*component.Cell, 0, 2)
	for _, sign := range [2]float64{1, -1} {
		x, y := vmath.ClampInsideCircle(w.Arena, parent.X+sign*dx, parent.Y+sign*dy, cfg.RadiusSmall)
		ux, uy := w.Rand.UnitVector()
		children = append(children, component.NewCell(x, y, ux*cfg.Speed, uy*cfg.Speed, cfg.RadiusSmall, 0))
	}
	return children
}
