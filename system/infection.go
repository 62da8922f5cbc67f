package system

import (
	"math"

	"github.com/lixenwraith/cytosim/component"
	"github.com/lixenwraith/cytosim/engine"
	"github.com/lixenwraith/cytosim/event"
	"github.com/lixenwraith/cytosim/vmath"
)

// InfectionSystem lets free viruses enter healthy cells and bursts ripe infected cells
type InfectionSystem struct{}

func NewInfectionSystem() *InfectionSystem {
	return &InfectionSystem{}
}

func (s *InfectionSystem) Priority() int {
	return PriorityInfection
}

func (s *InfectionSystem) Update(w *engine.World, dt float64) {
	s.infect(w)

	for _, c := range w.Cells.Items() {
		if c.TickBurst(dt) {
			burst(w, c)
		}
	}
}

// infect consumes each free virus touching a healthy cell; first cell in order wins
func (s *InfectionSystem) infect(w *engine.World) {
	cfg := &w.Config.Virus
	cells := w.Cells.Items()
	if len(cells) == 0 {
		return
	}

	for vi, v := range w.Viruses.Items() {
		if !v.IsFree() {
			continue
		}
		for _, c := range cells {
			if !c.IsHealthy() {
				continue
			}
			reach := c.Radius + cfg.Radius + cfg.InfectionPadding
			if vmath.Dist2(v.X, v.Y, c.X, c.Y) > reach*reach {
				continue
			}
			c.Infect(cfg.ReplicationTime)
			w.Viruses.Mark(vi)
			w.Stats.InfectedTotal++
			w.Emit(event.EventInfection, c.ID, c.X, c.Y, 1)
			break
		}
	}
	w.Viruses.Compact()
}

// BurstCount returns the number of virions released by a cell of radius r
func BurstCount(w *engine.World, r float64) int {
	cc := &w.Config.Cell
	vc := &w.Config.Virus
	span := cc.RadiusLarge - cc.RadiusSmall
	ratio := 1.0
	if span > 0 {
		ratio = vmath.Clamp((r-cc.RadiusSmall)/span, 0, 1)
	}
	return int(math.RoundToEven(vmath.Lerp(float64(vc.BurstCountSmall), float64(vc.BurstCountLarge), ratio)))
}

// burst kills the cell and releases new viruses just outside its surface
func burst(w *engine.World, c *component.Cell) {
	cfg := &w.Config.Virus
	n := BurstCount(w, c.Radius)
	c.Kill()
	w.Stats.BurstTotal++

	for range n {
		ang := w.Rand.Angle()
		rr := c.Radius + cfg.Radius + w.Rand.Float64()*cfg.BurstSpawnJitter
		x, y := vmath.PointOnCircle(c.X, c.Y, rr, ang)
		x, y = vmath.ClampInsideCircle(w.Arena, x, y, cfg.Radius)
		speed := cfg.Speed * (cfg.BurstSpeedMin + w.Rand.Float64()*cfg.BurstSpeedSpan)
		w.Viruses.Add(component.NewVirus(x, y, math.Cos(ang)*speed, math.Sin(ang)*speed))
	}
	w.Emit(event.EventBurst, c.ID, c.X, c.Y, n)
}
