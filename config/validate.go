package config

import (
	"github.com/pkg/errors"
)

// Validate checks ranges the simulation relies on, returns the first violation
func (c *Config) Validate() error {
	checks := []struct {
		ok  bool
		msg string
	}{
		{c.Arena.Radius > 0, "arena.radius must be positive"},

		{c.Population.Cells >= 0, "population.cells must not be negative"},
		{c.Population.Viruses >= 0, "population.viruses must not be negative"},
		{c.Population.Antibodies >= 0, "population.antibodies must not be negative"},
		{c.Population.Leukocytes >= 0, "population.leukocytes must not be negative"},

		{c.Cell.RadiusSmall > 0, "cell.radius_small must be positive"},
		{c.Cell.RadiusLarge > c.Cell.RadiusSmall, "cell.radius_large must exceed cell.radius_small"},
		{c.Cell.Speed >= 0, "cell.speed must not be negative"},
		{c.Cell.DivideTimeMin > 0, "cell.divide_time_min must be positive"},
		{c.Cell.DivideTimeMax >= c.Cell.DivideTimeMin, "cell.divide_time_max must not be below divide_time_min"},
		{c.Cell.DivideOffsetFactor > 0, "cell.divide_offset_factor must be positive"},

		{c.Virus.Radius > 0, "virus.radius must be positive"},
		{c.Virus.Speed >= 0, "virus.speed must not be negative"},
		{inUnit(c.Virus.AttractCell), "virus.attract_cell must be within [0, 1]"},
		{c.Virus.AvoidLeukocyte >= 0, "virus.avoid_leukocyte must not be negative"},
		{c.Virus.LeukocyteSense >= 0, "virus.leukocyte_sense must not be negative"},
		{c.Virus.AttachSlowdown >= 0, "virus.attach_slowdown must not be negative"},
		{inUnit(c.Virus.MinSpeedFrac), "virus.min_speed_frac must be within [0, 1]"},
		{c.Virus.InfectionPadding >= 0, "virus.infection_padding must not be negative"},
		{c.Virus.ReplicationTime > 0, "virus.replication_time must be positive"},
		{c.Virus.BurstCountSmall >= 0, "virus.burst_count_small must not be negative"},
		{c.Virus.BurstCountLarge >= 0, "virus.burst_count_large must not be negative"},
		{c.Virus.BurstSpawnJitter >= 0, "virus.burst_spawn_jitter must not be negative"},
		{c.Virus.BurstSpeedMin >= 0 && c.Virus.BurstSpeedSpan >= 0, "virus.burst_speed_* must not be negative"},

		{c.Antibody.Radius > 0, "antibody.radius must be positive"},
		{c.Antibody.Speed >= 0, "antibody.speed must not be negative"},
		{c.Antibody.SenseRadius >= 0, "antibody.sense_radius must not be negative"},
		{inUnit(c.Antibody.Chase), "antibody.chase must be within [0, 1]"},
		{c.Antibody.CaptureDist >= 0, "antibody.capture_dist must not be negative"},
		{c.Antibody.FlashFrames >= 0, "antibody.flash_frames must not be negative"},

		{c.Leukocyte.Radius > 0, "leukocyte.radius must be positive"},
		{c.Leukocyte.Speed >= 0, "leukocyte.speed must not be negative"},
		{c.Leukocyte.SenseRadius >= 0, "leukocyte.sense_radius must not be negative"},
		{inUnit(c.Leukocyte.Chase), "leukocyte.chase must be within [0, 1]"},
		{c.Leukocyte.SpawnMin >= 0, "leukocyte.spawn_min must not be negative"},
		{c.Leukocyte.SpawnMax >= c.Leukocyte.SpawnMin, "leukocyte.spawn_max must not be below spawn_min"},
		{c.Leukocyte.SpawnRadius >= 0, "leukocyte.spawn_radius must not be negative"},

		{c.Decision.Interval > 0, "decision.interval must be positive"},
		{inUnit(c.Decision.TurnSmooth), "decision.turn_smooth must be within [0, 1]"},

		{c.Collision.PushOutDeflect >= 0, "collision.push_out_deflect must not be negative"},
		{c.Collision.CellPushPosition >= 0, "collision.cell_push_position must not be negative"},
		{c.Collision.CellPushVelocity >= 0, "collision.cell_push_velocity must not be negative"},
		{c.Collision.Passes >= 1, "collision.passes must be at least 1"},
		{c.Collision.OverlapTolerance >= 0, "collision.overlap_tolerance must not be negative"},

		{c.Placement.CellMargin >= 0, "placement.cell_margin must not be negative"},
		{c.Placement.CellAttempts >= 0, "placement.cell_attempts must not be negative"},
		{c.Placement.MobileAttempts >= 1, "placement.mobile_attempts must be at least 1"},

		{c.Stats.HistoryInterval >= 0, "stats.history_interval must not be negative"},
	}

	for _, chk := range checks {
		if !chk.ok {
			return errors.New(chk.msg)
		}
	}

	// Every agent must fit inside the arena with its placement margin
	margins := []struct {
		name   string
		margin float64
	}{
		{"cell", c.Placement.CellMargin + c.Cell.RadiusLarge},
		{"virus", c.Placement.VirusMargin},
		{"antibody", c.Placement.AntibodyMargin},
		{"leukocyte", c.Placement.LeukocyteMargin},
	}
	for _, m := range margins {
		if m.margin >= c.Arena.Radius {
			return errors.Errorf("%s placement margin %.1f leaves no room in arena radius %.1f", m.name, m.margin, c.Arena.Radius)
		}
	}

	return nil
}

func inUnit(v float64) bool {
	return v >= 0 && v <= 1
}
