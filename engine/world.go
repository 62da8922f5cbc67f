package engine

import (
	"log"
	"sort"

	"github.com/lixenwraith/cytosim/component"
	"github.com/lixenwraith/cytosim/config"
	"github.com/lixenwraith/cytosim/core"
	"github.com/lixenwraith/cytosim/event"
	"github.com/lixenwraith/cytosim/physics"
	"github.com/lixenwraith/cytosim/vmath"
)

// System is one phase of a tick
type System interface {
	Update(world *World, dt float64)
	Priority() int // Lower values run first
}

// World is the explicit simulation context passed to every system
// Single-threaded: only the owning driver goroutine may touch it
type World struct {
	Config *config.Config
	Arena  core.Arena
	Rand   *vmath.FastRand
	Logger *log.Logger

	Cells      *Registry[*component.Cell]
	Viruses    *Registry[*component.Virus]
	Antibodies *Registry[*component.Antibody]
	Leukocytes *Registry[*component.Leukocyte]

	// Collision is built once from config
	Collision physics.CollisionProfile

	// DecisionAccum is seconds accumulated toward the next decision step
	DecisionAccum float64

	Stats   Stats
	History *History
	Events  *event.Queue

	systems []System
}

// NewWorld creates an empty world from a validated config
func NewWorld(cfg *config.Config, rng *vmath.FastRand, logger *log.Logger) *World {
	return &World{
		Config:     cfg,
		Arena:      core.NewArena(cfg.Arena.CenterX, cfg.Arena.CenterY, cfg.Arena.Radius),
		Rand:       rng,
		Logger:     logger,
		Cells:      NewRegistry[*component.Cell](cfg.Population.Cells * 2),
		Viruses:    NewRegistry[*component.Virus](cfg.Population.Viruses * 2),
		Antibodies: NewRegistry[*component.Antibody](cfg.Population.Antibodies * 2),
		Leukocytes: NewRegistry[*component.Leukocyte](cfg.Population.Leukocytes),
		Collision: physics.CollisionProfile{
			Deflect:      cfg.Collision.PushOutDeflect,
			PositionFrac: cfg.Collision.CellPushPosition,
			VelocityFrac: cfg.Collision.CellPushVelocity,
			DeadObstruct: cfg.Collision.DeadCellsObstruct,
		},
		History: NewHistory(cfg.Stats.HistoryInterval),
		Events:  event.NewQueue(),
	}
}

// AddSystem registers a system, keeping priority order stable
func (w *World) AddSystem(s System) {
	w.systems = append(w.systems, s)
	sort.SliceStable(w.systems, func(i, j int) bool {
		return w.systems[i].Priority() < w.systems[j].Priority()
	})
}

// Systems returns registered systems in run order
func (w *World) Systems() []System {
	return w.systems
}

// RunSystems runs every system once in priority order
func (w *World) RunSystems(dt float64) {
	for _, s := range w.systems {
		s.Update(w, dt)
	}
}

// Clear empties every registry and zeroes counters, history and pending events
func (w *World) Clear() {
	w.Cells.Clear()
	w.Viruses.Clear()
	w.Antibodies.Clear()
	w.Leukocytes.Clear()
	w.DecisionAccum = 0
	w.Stats = Stats{}
	w.History.Clear()
	w.Events.Clear()
}

// Emit records a lifecycle event stamped with the current tick
func (w *World) Emit(t event.EventType, subject uint64, x, y float64, count int) {
	w.Events.Push(event.Event{
		Type:    t,
		Tick:    w.Stats.Tick,
		Subject: subject,
		X:       x,
		Y:       y,
		Count:   count,
	})
}

// Counts tallies live population per kind and cell state
func (w *World) Counts() Counts {
	var c Counts
	for _, cell := range w.Cells.Items() {
		switch cell.State() {
		case component.CellHealthy:
			c.Healthy++
		case component.CellInfected:
			c.Infected++
		case component.CellDead:
			c.Dead++
		}
	}
	for _, v := range w.Viruses.Items() {
		if v.IsFree() {
			c.FreeViruses++
		} else {
			c.AttachedViruses++
		}
	}
	c.Antibodies = w.Antibodies.Len()
	c.Leukocytes = w.Leukocytes.Len()
	return c
}
