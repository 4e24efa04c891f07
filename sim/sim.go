package sim

import (
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/milk9111/hordecore/archetype"
	"github.com/milk9111/hordecore/collision"
	"github.com/milk9111/hordecore/common"
	"github.com/milk9111/hordecore/ecs"
	"github.com/milk9111/hordecore/ecs/component"
	"github.com/milk9111/hordecore/ecs/system"
	"github.com/milk9111/hordecore/stats"
)

// Simulation owns one run: the world, its systems and the player.
type Simulation struct {
	RunID uuid.UUID

	cfg      Config
	reg      *archetype.Registry
	geometry collision.Geometry
	rng      Rand

	world     *ecs.World
	scheduler *ecs.Scheduler
	spawner   *system.SpawnSystem
	steering  *system.SteeringScripts
	player    ecs.Entity

	frozen  bool
	pending []Reward
}

type Option func(*Simulation)

// WithRand replaces the seeded source built from Config.Seed.
func WithRand(r Rand) Option {
	return func(s *Simulation) {
		if r != nil {
			s.rng = r
		}
	}
}

// WithScriptLoader overrides where steering scripts are read from.
func WithScriptLoader(load system.ScriptLoader) Option {
	return func(s *Simulation) {
		s.steering = system.NewSteeringScripts(load)
	}
}

// New builds a run with the player at the origin. A nil geometry uses the
// config's obstacle field.
func New(cfg Config, reg *archetype.Registry, geom collision.Geometry, opts ...Option) (*Simulation, error) {
	if reg == nil {
		return nil, fmt.Errorf("sim: new: nil registry")
	}
	if cfg.MaxDelta <= 0 {
		cfg.MaxDelta = DefaultMaxDelta
	}
	if cfg.RewardChoices <= 0 {
		cfg.RewardChoices = DefaultRewardChoices
	}
	if geom == nil {
		geom = cfg.Geometry()
	}

	s := &Simulation{
		RunID:    uuid.New(),
		cfg:      cfg,
		reg:      reg,
		geometry: geom,
		world:    ecs.NewWorld(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		s.cfg.Seed = seed
		s.rng = NewSeededRand(seed)
	}
	if s.steering == nil {
		s.steering = system.NewSteeringScripts(nil)
	}

	player, err := system.NewPlayer(s.world, reg, common.Vec2{})
	if err != nil {
		return nil, fmt.Errorf("sim: new: %w", err)
	}
	s.player = player

	tuning := cfg.Tuning
	s.spawner = system.NewSpawnSystem(cfg.Spawn, reg, geom, s.rng)
	s.scheduler = ecs.NewScheduler(
		ecs.SystemFunc(system.SnapshotPositions),
		s.spawner,
		system.NewMovementSystem(collision.NewResolver(geom), s.steering, tuning),
		system.NewWeaponSystem(),
		system.NewAISystem(s.rng, tuning),
		system.NewProjectileSystem(geom, s.rng),
		system.NewTelegraphSystem(s.rng),
		system.NewPickupSystem(tuning),
		system.NewDeathSystem(s.rng, tuning),
	)

	slog.Info("simulation started", "run", s.RunID, "seed", s.cfg.Seed)
	return s, nil
}

// Tick advances the run by dt, clamped to MaxDelta, and returns the events
// the tick produced. A frozen run or a non-positive dt advances nothing.
func (s *Simulation) Tick(dt float64) []ecs.Event {
	if s.frozen || !(dt > 0) {
		return nil
	}
	dt = math.Min(dt, s.cfg.MaxDelta)

	events := s.scheduler.Tick(s.world, dt)

	for _, ev := range events {
		switch ev.Type {
		case system.EventLevelUp:
			if s.cfg.PauseOnLevelUp && !s.GameOver() {
				s.pending = s.RollRewards(s.cfg.RewardChoices)
				s.frozen = len(s.pending) > 0
			}
		case system.EventGameOver:
			data := ev.Data.(system.GameOver)
			slog.Info("game over", "run", s.RunID, "time", data.Time, "level", data.Level, "kills", data.Kills)
		}
	}
	return events
}

func (s *Simulation) Freeze() { s.frozen = true }

// Thaw resumes ticking and discards any pending reward offer.
func (s *Simulation) Thaw() {
	s.frozen = false
	s.pending = nil
}

func (s *Simulation) Frozen() bool { return s.frozen }

// PendingRewards is the offer made on the last level-up.
func (s *Simulation) PendingRewards() []Reward { return s.pending }

// SetIntent sets the player's movement from held direction keys.
func (s *Simulation) SetIntent(i Intent) {
	s.SetMoveIntent(i.Vector())
}

// SetMoveIntent sets the player's raw movement direction.
func (s *Simulation) SetMoveIntent(v common.Vec2) {
	if p, ok := ecs.Get(s.world, s.player, component.PlayerComponent.Kind()); ok {
		p.Intent = v
	}
}

// SpawnEnemy places an enemy of tag at pos, scaled to the current difficulty.
func (s *Simulation) SpawnEnemy(tag string, pos common.Vec2) (ecs.Entity, error) {
	return system.SpawnEnemy(s.world, s.reg, tag, pos, s.Difficulty())
}

// SetRegistry swaps the archetype table for future spawns and rewards and
// drops compiled steering scripts. Entities already alive keep their profiles.
func (s *Simulation) SetRegistry(reg *archetype.Registry) {
	if reg == nil {
		return
	}
	s.reg = reg
	s.spawner.SetRegistry(reg)
	s.steering.Reset()
}

// ReloadScripts drops compiled steering scripts so the next tick recompiles them.
func (s *Simulation) ReloadScripts() {
	s.steering.Reset()
}

func (s *Simulation) World() *ecs.World { return s.world }
func (s *Simulation) Player() ecs.Entity { return s.player }
func (s *Simulation) Registry() *archetype.Registry { return s.reg }
func (s *Simulation) Geometry() collision.Geometry { return s.geometry }
func (s *Simulation) Config() Config { return s.cfg }
func (s *Simulation) Time() float64 { return s.world.Clock().Now }
func (s *Simulation) Difficulty() float64 { return stats.DifficultyMultiplier(s.Time()) }

func (s *Simulation) GameOver() bool {
	p, ok := ecs.Get(s.world, s.player, component.PlayerComponent.Kind())
	return ok && p.GameOver
}

// Status is a read-only summary of the player for HUDs and logs.
type Status struct {
	Time       float64
	Level      int
	Experience float64
	Threshold  float64
	Gold       int
	Health     float64
	MaxHealth  float64
	Kills      int
	Enemies    int
	GameOver   bool
}

func (s *Simulation) Status() Status {
	st := Status{
		Time:    s.Time(),
		Enemies: ecs.Count(s.world, component.EnemyComponent.Kind()),
	}
	if p, ok := ecs.Get(s.world, s.player, component.PlayerComponent.Kind()); ok {
		st.Level = p.Ledger.Level
		st.Experience = p.Ledger.Experience
		st.Threshold = p.Ledger.Threshold
		st.Gold = p.Ledger.Gold
		st.Kills = p.Kills
		st.GameOver = p.GameOver
	}
	if h, ok := ecs.Get(s.world, s.player, component.HealthComponent.Kind()); ok {
		st.Health = h.Current
		st.MaxHealth = h.Max
	}
	return st
}
