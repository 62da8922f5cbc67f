package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/cytosim/component"
	"github.com/lixenwraith/cytosim/event"
)

func TestInfectionWithinPadding(t *testing.T) {
	w := emptyWorld(t)
	cx, cy := w.Arena.CX, w.Arena.CY
	r := w.Config.Cell.RadiusLarge
	cell := w.Cells.Add(component.NewCell(cx, cy, 0, 0, r, w.Config.Cell.GrowTime))
	w.Viruses.Add(component.NewVirus(cx+r+w.Config.Virus.Radius+1, cy, 0, 0))

	NewInfectionSystem().Update(w, 0.01)

	assert.True(t, cell.IsInfected())
	assert.Zero(t, w.Viruses.Len(), "infecting virus is consumed")
	assert.Equal(t, 1, w.Stats.InfectedTotal)
	remaining, ok := cell.BurstTimer()
	require.True(t, ok)
	assert.InDelta(t, w.Config.Virus.ReplicationTime-0.01, remaining, 1e-9)

	events := w.Events.Consume()
	require.Len(t, events, 1)
	assert.Equal(t, event.EventInfection, events[0].Type)
	assert.Equal(t, cell.ID, events[0].Subject)
}

func TestInfectionOutOfReach(t *testing.T) {
	w := emptyWorld(t)
	cx, cy := w.Arena.CX, w.Arena.CY
	r := w.Config.Cell.RadiusLarge
	reach := r + w.Config.Virus.Radius + w.Config.Virus.InfectionPadding
	cell := w.Cells.Add(component.NewCell(cx, cy, 0, 0, r, 0))
	w.Viruses.Add(component.NewVirus(cx+reach+0.5, cy, 0, 0))

	NewInfectionSystem().Update(w, 0.01)

	assert.True(t, cell.IsHealthy())
	assert.Equal(t, 1, w.Viruses.Len())
}

func TestAttachedVirusDoesNotInfect(t *testing.T) {
	w := emptyWorld(t)
	cx, cy := w.Arena.CX, w.Arena.CY
	cell := w.Cells.Add(component.NewCell(cx, cy, 0, 0, 18, 0))
	v := w.Viruses.Add(component.NewVirus(cx+5, cy, 0, 0))
	v.Attached = 1

	NewInfectionSystem().Update(w, 0.01)

	assert.True(t, cell.IsHealthy())
	assert.Equal(t, 1, w.Viruses.Len())
}

func TestOneVirusInfectsOneCell(t *testing.T) {
	w := emptyWorld(t)
	cx, cy := w.Arena.CX, w.Arena.CY
	first := w.Cells.Add(component.NewCell(cx-10, cy, 0, 0, 10, 0))
	second := w.Cells.Add(component.NewCell(cx+10, cy, 0, 0, 10, 0))
	w.Viruses.Add(component.NewVirus(cx, cy, 0, 0))

	NewInfectionSystem().Update(w, 0.01)

	assert.True(t, first.IsInfected(), "first cell in order wins")
	assert.True(t, second.IsHealthy())
}

func TestBurstCountScalesWithRadius(t *testing.T) {
	w := emptyWorld(t)
	cc := w.Config.Cell
	vc := w.Config.Virus

	assert.Equal(t, vc.BurstCountSmall, BurstCount(w, cc.RadiusSmall))
	assert.Equal(t, vc.BurstCountLarge, BurstCount(w, cc.RadiusLarge))
	assert.Equal(t, vc.BurstCountLarge, BurstCount(w, cc.RadiusLarge+5), "ratio clamps above large")
	assert.Equal(t, vc.BurstCountSmall, BurstCount(w, cc.RadiusSmall-5), "ratio clamps below small")
	assert.Equal(t, 12, BurstCount(w, (cc.RadiusSmall+cc.RadiusLarge)/2))
}

func TestBurstReleasesVirusesAndKillsCell(t *testing.T) {
	w := emptyWorld(t)
	cx, cy := w.Arena.CX, w.Arena.CY
	r := w.Config.Cell.RadiusLarge
	cell := w.Cells.Add(component.NewCell(cx, cy, 0, 0, r, 0))
	require.True(t, cell.Infect(0.05))
	cell.AntibodyAttached = 2

	NewInfectionSystem().Update(w, 0.1)

	assert.Equal(t, component.CellDead, cell.State())
	assert.Zero(t, cell.AntibodyAttached)
	assert.Equal(t, 1, w.Stats.BurstTotal)
	require.Equal(t, w.Config.Virus.BurstCountLarge, w.Viruses.Len())

	maxD := r + w.Config.Virus.Radius + w.Config.Virus.BurstSpawnJitter + 1e-9
	for _, v := range w.Viruses.Items() {
		assert.True(t, v.IsFree())
		d := dist(v.X, v.Y, cx, cy)
		assert.GreaterOrEqual(t, d, r+w.Config.Virus.Radius-1e-9)
		assert.LessOrEqual(t, d, maxD)
	}

	events := w.Events.Consume()
	require.Len(t, events, 1)
	assert.Equal(t, event.EventBurst, events[0].Type)
	assert.Equal(t, w.Config.Virus.BurstCountLarge, events[0].Count)
}

func TestBurstWithoutAnyViruses(t *testing.T) {
	w := emptyWorld(t)
	cell := w.Cells.Add(component.NewCell(w.Arena.CX, w.Arena.CY, 0, 0, 10, 0))
	cell.Infect(0.01)

	NewInfectionSystem().Update(w, 0.02)

	assert.Equal(t, component.CellDead, cell.State())
	assert.Equal(t, w.Config.Virus.BurstCountSmall, w.Viruses.Len())
}

func TestCapturePrefersFreeVirus(t *testing.T) {
	w := emptyWorld(t)
	cx, cy := w.Arena.CX, w.Arena.CY
	cell := w.Cells.Add(component.NewCell(cx, cy, 0, 0, 18, 0))
	cell.Infect(3)
	v := w.Viruses.Add(component.NewVirus(cx+30, cy, 0, 0))
	w.Antibodies.Add(component.NewAntibody(cx+25, cy, 0, 0))

	NewCaptureSystem().Update(w, 0.01)

	assert.Equal(t, 1, v.Attached)
	assert.Zero(t, cell.AntibodyAttached)
	assert.Zero(t, w.Antibodies.Len(), "docked antibody leaves the simulation")
	assert.Equal(t, 1, w.Stats.Captured)
	assert.Zero(t, w.Stats.CellAttachments)
}

func TestCaptureFallsBackToInfectedCell(t *testing.T) {
	w := emptyWorld(t)
	cx, cy := w.Arena.CX, w.Arena.CY
	cell := w.Cells.Add(component.NewCell(cx, cy, 0, 0, 18, 0))
	cell.Infect(3)
	healthy := w.Cells.Add(component.NewCell(cx+100, cy, 0, 0, 18, 0))
	w.Antibodies.Add(component.NewAntibody(cx+25, cy, 0, 0))
	w.Antibodies.Add(component.NewAntibody(cx+100+25, cy, 0, 0))

	NewCaptureSystem().Update(w, 0.01)

	assert.Equal(t, 1, cell.AntibodyAttached)
	assert.Zero(t, healthy.AntibodyAttached, "healthy cells never take antibodies")
	assert.Equal(t, 1, w.Antibodies.Len())
	assert.Equal(t, 1, w.Stats.CellAttachments)
}

func TestCaptureSkipsAttachedVirus(t *testing.T) {
	w := emptyWorld(t)
	cx, cy := w.Arena.CX, w.Arena.CY
	v := w.Viruses.Add(component.NewVirus(cx, cy, 0, 0))
	w.Antibodies.Add(component.NewAntibody(cx+3, cy, 0, 0))
	w.Antibodies.Add(component.NewAntibody(cx-3, cy, 0, 0))

	NewCaptureSystem().Update(w, 0.01)

	assert.Equal(t, 1, v.Attached, "an attached virus is immune to further capture")
	assert.Equal(t, 1, w.Antibodies.Len())
}

func TestLeukocyteCleansDeadCell(t *testing.T) {
	w := emptyWorld(t)
	cx, cy := w.Arena.CX, w.Arena.CY
	cell := w.Cells.Add(component.NewCell(cx, cy, 0, 0, 18, 0))
	cell.Infect(1)
	cell.Kill()
	w.Leukocytes.Add(component.NewLeukocyte(cx+20, cy, 0, 0))

	NewCleanupSystem().Update(w, 0.01)

	assert.Zero(t, w.Cells.Len())
	assert.Equal(t, 1, w.Stats.CleanedCells)
	n := w.Antibodies.Len()
	assert.GreaterOrEqual(t, n, w.Config.Leukocyte.SpawnMin)
	assert.LessOrEqual(t, n, w.Config.Leukocyte.SpawnMax)
	assert.Equal(t, n, w.Stats.AntibodiesSpawned)
	for _, a := range w.Antibodies.Items() {
		assert.LessOrEqual(t, dist(a.X, a.Y, cx, cy), w.Config.Leukocyte.SpawnRadius+1e-9)
		assert.Equal(t, w.Config.Antibody.FlashFrames, a.Flash)
	}
}

func TestLeukocyteCleansVirusAndIgnoresHealthyCell(t *testing.T) {
	w := emptyWorld(t)
	cx, cy := w.Arena.CX, w.Arena.CY
	w.Cells.Add(component.NewCell(cx, cy, 0, 0, 18, 0))
	w.Viruses.Add(component.NewVirus(cx+15, cy, 0, 0))
	w.Viruses.Add(component.NewVirus(cx+16, cy, 0, 0))
	w.Leukocytes.Add(component.NewLeukocyte(cx+20, cy, 0, 0))

	NewCleanupSystem().Update(w, 0.01)

	assert.Equal(t, 1, w.Cells.Len())
	assert.Equal(t, 1, w.Viruses.Len(), "one virus per leukocyte per tick")
	assert.Equal(t, 1, w.Stats.CleanedViruses)
	assert.Zero(t, w.Stats.CleanedCells)
}

func TestTwoLeukocytesDoNotDoubleClean(t *testing.T) {
	w := emptyWorld(t)
	cx, cy := w.Arena.CX, w.Arena.CY
	w.Viruses.Add(component.NewVirus(cx, cy, 0, 0))
	w.Leukocytes.Add(component.NewLeukocyte(cx+10, cy, 0, 0))
	w.Leukocytes.Add(component.NewLeukocyte(cx-10, cy, 0, 0))

	NewCleanupSystem().Update(w, 0.01)

	assert.Zero(t, w.Viruses.Len())
	assert.Equal(t, 1, w.Stats.CleanedViruses)
}

func TestDivisionNetGain(t *testing.T) {
	w := emptyWorld(t)
	cfg := w.Config.Cell
	parent := w.Cells.Add(component.NewCell(w.Arena.CX, w.Arena.CY, 0, 0, cfg.RadiusLarge, cfg.GrowTime))
	parent.SetDivideTimer(0.01)
	w.Cells.Add(component.NewCell(w.Arena.CX+150, w.Arena.CY, 0, 0, cfg.RadiusLarge, cfg.GrowTime))

	NewGrowthSystem().Update(w, 0.02)

	require.Equal(t, 3, w.Cells.Len())
	assert.Equal(t, 1, w.Stats.Divisions)
	_, _, found := w.Cells.Find(parent.ID)
	assert.False(t, found, "parent is replaced by its daughters")

	daughters := w.Cells.Items()[1:]
	for _, d := range daughters {
		assert.True(t, d.IsHealthy())
		assert.Equal(t, cfg.RadiusSmall, d.Radius)
		assert.Zero(t, d.GrowTimer)
		_, ok := d.DivideTimer()
		assert.False(t, ok)
	}
	assert.Greater(t, dist(daughters[0].X, daughters[0].Y, daughters[1].X, daughters[1].Y), cfg.RadiusSmall)
}

func TestGrowthInterpolatesRadius(t *testing.T) {
	w := emptyWorld(t)
	cfg := w.Config.Cell
	c := w.Cells.Add(component.NewCell(w.Arena.CX, w.Arena.CY, 0, 0, cfg.RadiusSmall, 0))

	g := NewGrowthSystem()
	g.Update(w, cfg.GrowTime/2)
	assert.InDelta(t, (cfg.RadiusSmall+cfg.RadiusLarge)/2, c.Radius, 1e-9)
	_, ok := c.DivideTimer()
	assert.False(t, ok)

	// Reaching full size starts the countdown, which ticks in the same update
	g.Update(w, cfg.GrowTime/2)
	assert.Equal(t, cfg.RadiusLarge, c.Radius)
	assert.Equal(t, cfg.GrowTime, c.GrowTimer)
	remaining, ok := c.DivideTimer()
	require.True(t, ok)
	assert.GreaterOrEqual(t, remaining, cfg.DivideTimeMin-cfg.GrowTime/2)
	assert.LessOrEqual(t, remaining, cfg.DivideTimeMax-cfg.GrowTime/2)
	assert.Equal(t, 1, w.Cells.Len())
}

func TestInfectedCellStopsGrowing(t *testing.T) {
	w := emptyWorld(t)
	cfg := w.Config.Cell
	c := w.Cells.Add(component.NewCell(w.Arena.CX, w.Arena.CY, 0, 0, cfg.RadiusSmall, 0))
	c.Infect(5)

	NewGrowthSystem().Update(w, cfg.GrowTime/2)

	assert.Equal(t, cfg.RadiusSmall, c.Radius)
	assert.Zero(t, c.GrowTimer)
}
