package system

import (
	"io"
	"log"
	"math"
	"testing"

	"github.com/lixenwraith/cytosim/config"
	"github.com/lixenwraith/cytosim/engine"
	"github.com/lixenwraith/cytosim/vmath"
)

// emptyWorld returns a world with default tuning and no agents
func emptyWorld(t *testing.T) *engine.World {
	t.Helper()
	cfg := config.Default()
	return engine.NewWorld(cfg, vmath.NewFastRand(1234), log.New(io.Discard, "", 0))
}

func dist(ax, ay, bx, by float64) float64 {
	return math.Sqrt(vmath.Dist2(ax, ay, bx, by))
}
