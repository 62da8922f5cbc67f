package sim

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/cytosim/engine"
	"github.com/lixenwraith/cytosim/status"
)

// metrics caches status pointers so publishing never touches the registry map
type metrics struct {
	tick     *atomic.Int64
	elapsed  *status.Float
	stepUs   *atomic.Int64
	healthy  *atomic.Int64
	infected *atomic.Int64
	dead     *atomic.Int64
	viruses  *atomic.Int64
	attached *atomic.Int64
	abs      *atomic.Int64
	leukos   *atomic.Int64
	captured *atomic.Int64
	bursts   *atomic.Int64
}

func newMetrics(reg *status.Registry) *metrics {
	return &metrics{
		tick:     reg.Int("sim.tick"),
		elapsed:  reg.Float("sim.elapsed"),
		stepUs:   reg.Int("sim.step_us"),
		healthy:  reg.Int("cells.healthy"),
		infected: reg.Int("cells.infected"),
		dead:     reg.Int("cells.dead"),
		viruses:  reg.Int("viruses.total"),
		attached: reg.Int("viruses.attached"),
		abs:      reg.Int("antibodies.total"),
		leukos:   reg.Int("leukocytes.total"),
		captured: reg.Int("stats.captured"),
		bursts:   reg.Int("stats.bursts"),
	}
}

func (m *metrics) publish(stats engine.Stats, counts engine.Counts, step time.Duration) {
	m.tick.Store(int64(stats.Tick))
	m.elapsed.Set(stats.Elapsed)
	m.stepUs.Store(step.Microseconds())
	m.healthy.Store(int64(counts.Healthy))
	m.infected.Store(int64(counts.Infected))
	m.dead.Store(int64(counts.Dead))
	m.viruses.Store(int64(counts.Viruses()))
	m.attached.Store(int64(counts.AttachedViruses))
	m.abs.Store(int64(counts.Antibodies))
	m.leukos.Store(int64(counts.Leukocytes))
	m.captured.Store(int64(stats.Captured))
	m.bursts.Store(int64(stats.BurstTotal))
}
