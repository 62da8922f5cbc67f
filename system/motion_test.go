package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/cytosim/component"
)

func TestVirusPushedOutOfCell(t *testing.T) {
	w := emptyWorld(t)
	cx, cy := w.Arena.CX, w.Arena.CY
	w.Cells.Add(component.NewCell(cx, cy, 0, 0, 18, 0))
	v := w.Viruses.Add(component.NewVirus(cx+10, cy, -20, 0))

	NewVirusMotionSystem().Update(w, 0)

	assert.InDelta(t, 18+w.Config.Virus.Radius, dist(v.X, v.Y, cx, cy), 1e-9)
	assert.GreaterOrEqual(t, v.VX, 0.0, "inward velocity is deflected")
}

func TestDeadCellObstructionIsConfigurable(t *testing.T) {
	w := emptyWorld(t)
	cx, cy := w.Arena.CX, w.Arena.CY
	dead := w.Cells.Add(component.NewCell(cx, cy, 0, 0, 18, 0))
	dead.Infect(1)
	dead.Kill()
	v := w.Viruses.Add(component.NewVirus(cx+5, cy, 0, 0))

	NewVirusMotionSystem().Update(w, 0)
	assert.Equal(t, cx+5, v.X)

	w.Collision.DeadObstruct = true
	NewVirusMotionSystem().Update(w, 0)
	assert.InDelta(t, 18+w.Config.Virus.Radius, dist(v.X, v.Y, cx, cy), 1e-9)
}

func TestMobileAgentsReflectOffArena(t *testing.T) {
	w := emptyWorld(t)
	cx, cy := w.Arena.CX, w.Arena.CY
	r := w.Arena.R
	l := w.Leukocytes.Add(component.NewLeukocyte(cx+r-5, cy, 200, 0))
	a := w.Antibodies.Add(component.NewAntibody(cx, cy-r+2, 0, -300))

	NewLeukocyteMotionSystem().Update(w, 0.1)
	NewAntibodyMotionSystem().Update(w, 0.1)

	assert.LessOrEqual(t, dist(l.X, l.Y, cx, cy), r-w.Config.Leukocyte.Radius+1e-9)
	assert.Less(t, l.VX, 0.0)
	assert.LessOrEqual(t, dist(a.X, a.Y, cx, cy), r-w.Config.Antibody.Radius+1e-9)
	assert.Greater(t, a.VY, 0.0)
}

func TestAntibodyFlashDecays(t *testing.T) {
	w := emptyWorld(t)
	a := w.Antibodies.Add(component.NewAntibody(w.Arena.CX, w.Arena.CY, 0, 0))
	a.Flash = 2
	s := NewAntibodyMotionSystem()

	s.Update(w, 0.01)
	assert.Equal(t, 1, a.Flash)
	s.Update(w, 0.01)
	s.Update(w, 0.01)
	assert.Zero(t, a.Flash)
}

func TestCellOverlapRelaxes(t *testing.T) {
	w := emptyWorld(t)
	cx, cy := w.Arena.CX, w.Arena.CY
	a := w.Cells.Add(component.NewCell(cx, cy, 0, 0, 18, 0))
	b := w.Cells.Add(component.NewCell(cx+20, cy, 0, 0, 18, 0))

	NewCellMotionSystem().Update(w, 0)
	once := dist(a.X, a.Y, b.X, b.Y)
	assert.Greater(t, once, 20.0)

	w.Config.Collision.Passes = 8
	NewCellMotionSystem().Update(w, 0)
	assert.Greater(t, dist(a.X, a.Y, b.X, b.Y), once)
}

func TestDeadCellsDoNotMove(t *testing.T) {
	w := emptyWorld(t)
	c := w.Cells.Add(component.NewCell(w.Arena.CX, w.Arena.CY, 5, 5, 18, 0))
	c.Infect(1)
	c.Kill()
	c.VX, c.VY = 5, 5

	NewCellMotionSystem().Update(w, 1)

	assert.Equal(t, w.Arena.CX, c.X)
	assert.Equal(t, w.Arena.CY, c.Y)
}
