package sim

import (
	"fmt"

	"github.com/milk9111/hordecore/collision"
	"github.com/milk9111/hordecore/common"
	"github.com/milk9111/hordecore/ecs/system"
	"github.com/milk9111/hordecore/prefabs"
)

const (
	DefaultMaxDelta      = 0.1
	DefaultRewardChoices = 3
)

// Config tunes one run.
type Config struct {
	MaxDelta       float64
	PauseOnLevelUp bool
	Seed           int64
	RewardChoices  int
	Tuning         system.Tuning
	Spawn          system.SpawnConfig
	Obstacles      []collision.Obstacle
}

func DefaultConfig() Config {
	return Config{
		MaxDelta:       DefaultMaxDelta,
		PauseOnLevelUp: true,
		RewardChoices:  DefaultRewardChoices,
		Tuning:         system.DefaultTuning(),
		Spawn:          system.DefaultSpawnConfig(),
	}
}

// LoadConfig reads simulation.yaml over DefaultConfig.
func LoadConfig() (Config, error) {
	spec, err := prefabs.LoadSpec[prefabs.SimulationSpec]("simulation.yaml")
	if err != nil {
		return Config{}, fmt.Errorf("sim: load config: %w", err)
	}
	return FromSpec(spec), nil
}

// FromSpec overlays the non-zero fields of spec on DefaultConfig.
func FromSpec(spec prefabs.SimulationSpec) Config {
	cfg := DefaultConfig()
	if spec.MaxDelta > 0 {
		cfg.MaxDelta = spec.MaxDelta
	}
	if spec.PauseOnLevelUp != nil {
		cfg.PauseOnLevelUp = *spec.PauseOnLevelUp
	}
	cfg.Seed = spec.Seed
	if spec.RewardChoices > 0 {
		cfg.RewardChoices = spec.RewardChoices
	}

	cfg.Tuning.SpecialCooldown = spec.Combat.SpecialCooldown
	cfg.Tuning.ContactDamageFraction = spec.Combat.ContactDamageFraction
	cfg.Tuning.ContactCooldown = spec.Combat.ContactCooldown
	cfg.Tuning.EnemyProjectileRadius = spec.Combat.EnemyProjectileRadius
	cfg.Tuning.PickupPullSpeed = spec.Pickups.PullSpeed
	cfg.Tuning.PickupRadius = spec.Pickups.Radius
	cfg.Tuning.GoldValue = spec.Pickups.GoldValue

	sp := spec.Spawn
	if sp.Enabled != nil {
		cfg.Spawn.Enabled = *sp.Enabled
	}
	if sp.Interval > 0 {
		cfg.Spawn.Interval = sp.Interval
	}
	if sp.MinInterval > 0 {
		cfg.Spawn.MinInterval = sp.MinInterval
	}
	if sp.RingRadius > 0 {
		cfg.Spawn.RingRadius = sp.RingRadius
	}
	if sp.MaxEnemies > 0 {
		cfg.Spawn.MaxEnemies = sp.MaxEnemies
	}
	if sp.Retries > 0 {
		cfg.Spawn.Retries = sp.Retries
	}
	for _, b := range sp.Bosses {
		cfg.Spawn.Bosses = append(cfg.Spawn.Bosses, system.BossSpawn{Minute: b.Minute, Tag: b.Tag})
	}

	for _, o := range spec.Obstacles {
		cfg.Obstacles = append(cfg.Obstacles, collision.Obstacle{
			Position: common.V(o.X, o.Y),
			Radius:   o.Radius,
			Solid:    o.Solid,
		})
	}
	return cfg
}

// Geometry builds the static obstacle field described by the config.
func (c Config) Geometry() *collision.SpaceGeometry {
	return collision.NewSpaceGeometry(c.Obstacles...)
}
