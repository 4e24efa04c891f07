package system

import (
	"log/slog"
	"math"

	"github.com/milk9111/hordecore/archetype"
	"github.com/milk9111/hordecore/collision"
	"github.com/milk9111/hordecore/common"
	"github.com/milk9111/hordecore/ecs"
	"github.com/milk9111/hordecore/ecs/component"
	"github.com/milk9111/hordecore/stats"
)

// BossSpawn schedules one enemy of Tag once the run reaches Minute.
type BossSpawn struct {
	Minute float64
	Tag    string
}

type SpawnConfig struct {
	Enabled bool
	// Interval is the spawn period at difficulty 1; it shrinks as difficulty
	// grows but never below MinInterval.
	Interval    float64
	MinInterval float64
	RingRadius  float64
	MaxEnemies  int
	Retries     int
	Bosses      []BossSpawn
}

func DefaultSpawnConfig() SpawnConfig {
	return SpawnConfig{
		Enabled:     true,
		Interval:    1.2,
		MinInterval: 0.25,
		RingRadius:  520,
		MaxEnemies:  150,
		Retries:     4,
	}
}

// SpawnSystem places enemies on a ring around the player on a timer and
// spawns scheduled bosses.
type SpawnSystem struct {
	cfg      SpawnConfig
	reg      *archetype.Registry
	geometry collision.Geometry
	rng      Rand

	next      float64
	bossesHit map[int]bool
}

func NewSpawnSystem(cfg SpawnConfig, reg *archetype.Registry, geometry collision.Geometry, rng Rand) *SpawnSystem {
	return &SpawnSystem{
		cfg:       cfg,
		reg:       reg,
		geometry:  geometry,
		rng:       rng,
		bossesHit: map[int]bool{},
	}
}

// SetRegistry swaps the archetype table used for future spawns.
func (s *SpawnSystem) SetRegistry(reg *archetype.Registry) {
	if reg != nil {
		s.reg = reg
	}
}

func (s *SpawnSystem) Update(w *ecs.World) {
	if !s.cfg.Enabled || s.reg == nil || s.rng == nil {
		return
	}
	pv, ok := lookupPlayer(w)
	if !ok || !pv.active() {
		return
	}
	now := w.Clock().Now
	difficulty := stats.DifficultyMultiplier(now)

	for i, b := range s.cfg.Bosses {
		if s.bossesHit[i] || now < b.Minute*60-timeEpsilon {
			continue
		}
		s.bossesHit[i] = true
		s.spawn(w, b.Tag, pv.Transform.Position, difficulty)
	}

	if now < s.next-timeEpsilon {
		return
	}
	s.next = now + math.Max(s.cfg.MinInterval, s.cfg.Interval/difficulty)
	if s.cfg.MaxEnemies > 0 && ecs.Count(w, component.EnemyComponent.Kind()) >= s.cfg.MaxEnemies {
		return
	}
	tag, ok := s.pick(now / 60)
	if !ok {
		return
	}
	s.spawn(w, tag, pv.Transform.Position, difficulty)
}

// pick draws an ordinary archetype weighted by SpawnWeight among those
// unlocked at minute.
func (s *SpawnSystem) pick(minute float64) (string, bool) {
	var (
		tags  []string
		total int
	)
	weights := map[string]int{}
	for _, tag := range s.reg.EnemyTags() {
		p := s.reg.Enemy(tag)
		if p.SpawnWeight <= 0 || p.MinMinute > minute {
			continue
		}
		tags = append(tags, tag)
		weights[tag] = p.SpawnWeight
		total += p.SpawnWeight
	}
	if total == 0 {
		return "", false
	}
	roll := s.rng.Intn(total)
	for _, tag := range tags {
		roll -= weights[tag]
		if roll < 0 {
			return tag, true
		}
	}
	return tags[len(tags)-1], true
}

func (s *SpawnSystem) spawn(w *ecs.World, tag string, around common.Vec2, difficulty float64) {
	profile := s.reg.Enemy(tag)
	retries := max(s.cfg.Retries, 0)
	for attempt := 0; attempt <= retries; attempt++ {
		pos := around.Add(common.FromAngle(s.rng.Float64() * 2 * math.Pi).Mul(s.cfg.RingRadius))
		if collision.SolidAt(s.geometry, pos, profile.Radius) {
			continue
		}
		if _, err := NewEnemy(w, profile, stats.ScaleEnemy(profile, difficulty), pos); err != nil {
			slog.Warn("spawn enemy", "tag", tag, "err", err)
		}
		return
	}
	slog.Debug("spawn point rejected", "tag", tag, "retries", retries)
}
