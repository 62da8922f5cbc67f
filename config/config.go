// Package config holds the simulation tuning values.
// Defaults come from package parameter; a TOML file may override any subset.
package config

import (
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/lixenwraith/cytosim/parameter"
)

// Config is the full set of named constants supplied to a simulation at initialization
type Config struct {
	Arena      ArenaConfig      `toml:"arena"`
	Population PopulationConfig `toml:"population"`
	Cell       CellConfig       `toml:"cell"`
	Virus      VirusConfig      `toml:"virus"`
	Antibody   AntibodyConfig   `toml:"antibody"`
	Leukocyte  LeukocyteConfig  `toml:"leukocyte"`
	Decision   DecisionConfig   `toml:"decision"`
	Collision  CollisionConfig  `toml:"collision"`
	Placement  PlacementConfig  `toml:"placement"`
	Stats      StatsConfig      `toml:"stats"`
	Debug      DebugConfig      `toml:"debug"`
}

type ArenaConfig struct {
	CenterX float64 `toml:"center_x"`
	CenterY float64 `toml:"center_y"`
	Radius  float64 `toml:"radius"`
}

type PopulationConfig struct {
	Cells      int `toml:"cells"`
	Viruses    int `toml:"viruses"`
	Antibodies int `toml:"antibodies"`
	Leukocytes int `toml:"leukocytes"`
}

type CellConfig struct {
	RadiusSmall        float64 `toml:"radius_small"`
	RadiusLarge        float64 `toml:"radius_large"`
	Speed              float64 `toml:"speed"`
	GrowTime           float64 `toml:"grow_time"`
	DivideTimeMin      float64 `toml:"divide_time_min"`
	DivideTimeMax      float64 `toml:"divide_time_max"`
	DivideOffsetFactor float64 `toml:"divide_offset_factor"`
}

type VirusConfig struct {
	Radius           float64 `toml:"radius"`
	Speed            float64 `toml:"speed"`
	AttractCell      float64 `toml:"attract_cell"`
	AvoidLeukocyte   float64 `toml:"avoid_leukocyte"`
	LeukocyteSense   float64 `toml:"leukocyte_sense"`
	AttachSlowdown   float64 `toml:"attach_slowdown"`
	MinSpeedFrac     float64 `toml:"min_speed_frac"`
	InfectionPadding float64 `toml:"infection_padding"`
	ReplicationTime  float64 `toml:"replication_time"`
	BurstCountSmall  int     `toml:"burst_count_small"`
	BurstCountLarge  int     `toml:"burst_count_large"`
	BurstSpawnJitter float64 `toml:"burst_spawn_jitter"`
	BurstSpeedMin    float64 `toml:"burst_speed_min"`
	BurstSpeedSpan   float64 `toml:"burst_speed_span"`
}

type AntibodyConfig struct {
	Radius      float64 `toml:"radius"`
	Speed       float64 `toml:"speed"`
	SenseRadius float64 `toml:"sense_radius"`
	Chase       float64 `toml:"chase"`
	CaptureDist float64 `toml:"capture_dist"`
	FlashFrames int     `toml:"flash_frames"`
}

type LeukocyteConfig struct {
	Radius      float64 `toml:"radius"`
	Speed       float64 `toml:"speed"`
	SenseRadius float64 `toml:"sense_radius"`
	Chase       float64 `toml:"chase"`
	SpawnMin    int     `toml:"spawn_min"`
	SpawnMax    int     `toml:"spawn_max"`
	SpawnRadius float64 `toml:"spawn_radius"`
}

type DecisionConfig struct {
	Interval   float64 `toml:"interval"`
	TurnSmooth float64 `toml:"turn_smooth"`
}

type CollisionConfig struct {
	PushOutDeflect   float64 `toml:"push_out_deflect"`
	CellPushPosition float64 `toml:"cell_push_position"`
	CellPushVelocity float64 `toml:"cell_push_velocity"`
	Passes           int     `toml:"passes"`
	OverlapTolerance float64 `toml:"overlap_tolerance"`

	// DeadCellsObstruct makes dead cells block viruses, antibodies and leukocytes
	DeadCellsObstruct bool `toml:"dead_cells_obstruct"`
}

type PlacementConfig struct {
	CellMargin      float64 `toml:"cell_margin"`
	CellSpacing     float64 `toml:"cell_spacing"`
	CellAttempts    int     `toml:"cell_attempts"`
	VirusMargin     float64 `toml:"virus_margin"`
	AntibodyMargin  float64 `toml:"antibody_margin"`
	LeukocyteMargin float64 `toml:"leukocyte_margin"`
	Clearance       float64 `toml:"clearance"`
	MobileAttempts  int     `toml:"mobile_attempts"`
}

type StatsConfig struct {
	// HistoryInterval is sim seconds between timeline samples, 0 samples every tick
	HistoryInterval float64 `toml:"history_interval"`
}

type DebugConfig struct {
	// AssertInvariants panics on a violated world invariant after each tick
	AssertInvariants bool `toml:"assert_invariants"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Arena: ArenaConfig{
			CenterX: parameter.ArenaCenter,
			CenterY: parameter.ArenaCenter,
			Radius:  parameter.ArenaRadius,
		},
		Population: PopulationConfig{
			Cells:      parameter.PopulationCells,
			Viruses:    parameter.PopulationViruses,
			Antibodies: parameter.PopulationAntibodies,
			Leukocytes: parameter.PopulationLeukocytes,
		},
		Cell: CellConfig{
			RadiusSmall:        parameter.CellRadiusSmall,
			RadiusLarge:        parameter.CellRadiusLarge,
			Speed:              parameter.CellSpeed,
			GrowTime:           parameter.CellGrowTime,
			DivideTimeMin:      parameter.CellDivideTimeMin,
			DivideTimeMax:      parameter.CellDivideTimeMax,
			DivideOffsetFactor: parameter.CellDivideOffsetFactor,
		},
		Virus: VirusConfig{
			Radius:           parameter.VirusRadius,
			Speed:            parameter.VirusSpeed,
			AttractCell:      parameter.VirusAttractCell,
			AvoidLeukocyte:   parameter.VirusAvoidLeukocyte,
			LeukocyteSense:   parameter.VirusLeukocyteSense,
			AttachSlowdown:   parameter.VirusAttachSlowdown,
			MinSpeedFrac:     parameter.VirusMinSpeedFrac,
			InfectionPadding: parameter.InfectionPadding,
			ReplicationTime:  parameter.VirusReplicationTime,
			BurstCountSmall:  parameter.BurstVirusCountSmall,
			BurstCountLarge:  parameter.BurstVirusCountLarge,
			BurstSpawnJitter: parameter.BurstSpawnJitter,
			BurstSpeedMin:    parameter.BurstSpeedMin,
			BurstSpeedSpan:   parameter.BurstSpeedSpan,
		},
		Antibody: AntibodyConfig{
			Radius:      parameter.AntibodyRadius,
			Speed:       parameter.AntibodySpeed,
			SenseRadius: parameter.AntibodySenseRadius,
			Chase:       parameter.AntibodyChase,
			CaptureDist: parameter.CaptureDist,
			FlashFrames: parameter.AntibodyFlashFrames,
		},
		Leukocyte: LeukocyteConfig{
			Radius:      parameter.LeukocyteRadius,
			Speed:       parameter.LeukocyteSpeed,
			SenseRadius: parameter.LeukocyteSenseRadius,
			Chase:       parameter.LeukocyteChase,
			SpawnMin:    parameter.CleanupSpawnMin,
			SpawnMax:    parameter.CleanupSpawnMax,
			SpawnRadius: parameter.CleanupSpawnRadius,
		},
		Decision: DecisionConfig{
			Interval:   parameter.CAInterval,
			TurnSmooth: parameter.TurnSmooth,
		},
		Collision: CollisionConfig{
			PushOutDeflect:   parameter.PushOutDeflect,
			CellPushPosition: parameter.CellPushPosition,
			CellPushVelocity: parameter.CellPushVelocity,
			Passes:           parameter.CollisionPasses,
			OverlapTolerance: parameter.OverlapTolerance,
		},
		Placement: PlacementConfig{
			CellMargin:      parameter.PlacementMarginCell,
			CellSpacing:     parameter.PlacementSpacingCell,
			CellAttempts:    parameter.PlacementAttemptsCell,
			VirusMargin:     parameter.PlacementMarginVirus,
			AntibodyMargin:  parameter.PlacementMarginAntibody,
			LeukocyteMargin: parameter.PlacementMarginLeukocyte,
			Clearance:       parameter.PlacementClearance,
			MobileAttempts:  parameter.PlacementAttemptsMobile,
		},
		Stats: StatsConfig{
			HistoryInterval: parameter.HistoryInterval,
		},
	}
}

// Load reads a TOML file over the defaults
// Keys the file sets but Config does not know are reported as an error
func Load(path string) (*Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "decode config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.Errorf("config %s: unknown keys %v", path, undecoded)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Clone returns an independent copy
func (c *Config) Clone() *Config {
	cp := *c
	return &cp
}
