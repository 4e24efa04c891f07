package system

import (
	"fmt"
	"math"

	"github.com/milk9111/hordecore/archetype"
	"github.com/milk9111/hordecore/common"
	"github.com/milk9111/hordecore/ecs"
	"github.com/milk9111/hordecore/ecs/component"
	"github.com/milk9111/hordecore/progression"
	"github.com/milk9111/hordecore/stats"
)

// NewPlayer creates the player from the registry's profile with its
// starting weapon at level 0.
func NewPlayer(w *ecs.World, reg *archetype.Registry, pos common.Vec2) (ecs.Entity, error) {
	base := reg.Player()
	p := &component.Player{
		Base:   base,
		Stats:  stats.ComposePlayer(base, nil),
		Ledger: progression.NewLedger(),
	}
	if base.StartingWeapon != "" {
		p.Weapons = append(p.Weapons, component.NewWeapon(reg.Weapon(base.StartingWeapon), p.Stats.Weapon))
	}

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{Position: pos, Previous: pos}); err != nil {
		return 0, fmt.Errorf("player: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.ActorComponent.Kind(), &component.Actor{
		Radius:  base.Radius,
		Speed:   p.Stats.Speed,
		Facing:  common.V(1, 0),
		Faction: component.FactionPlayer,
	}); err != nil {
		return 0, fmt.Errorf("player: add actor: %w", err)
	}
	if err := ecs.Add(w, e, component.HealthComponent.Kind(), component.NewHealth(p.Stats.MaxHealth)); err != nil {
		return 0, fmt.Errorf("player: add health: %w", err)
	}
	if err := ecs.Add(w, e, component.PlayerComponent.Kind(), p); err != nil {
		return 0, fmt.Errorf("player: add player: %w", err)
	}
	return e, nil
}

// SpawnEnemy creates an enemy of tag with stats scaled by difficulty.
// Unknown tags fall back to the registry's weakest archetype.
func SpawnEnemy(w *ecs.World, reg *archetype.Registry, tag string, pos common.Vec2, difficulty float64) (ecs.Entity, error) {
	profile := reg.Enemy(tag)
	return NewEnemy(w, profile, stats.ScaleEnemy(profile, difficulty), pos)
}

// NewEnemy creates an enemy with already-composed stats.
func NewEnemy(w *ecs.World, profile archetype.EnemyProfile, scaled stats.EnemyStats, pos common.Vec2) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{Position: pos, Previous: pos}); err != nil {
		return 0, fmt.Errorf("enemy: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.ActorComponent.Kind(), &component.Actor{
		Radius:  profile.Radius,
		Speed:   scaled.Speed,
		Faction: component.FactionEnemy,
	}); err != nil {
		return 0, fmt.Errorf("enemy: add actor: %w", err)
	}
	if err := ecs.Add(w, e, component.HealthComponent.Kind(), component.NewHealth(scaled.Health)); err != nil {
		return 0, fmt.Errorf("enemy: add health: %w", err)
	}
	if err := ecs.Add(w, e, component.EnemyComponent.Kind(), component.NewEnemy(profile, scaled.Damage)); err != nil {
		return 0, fmt.Errorf("enemy: add enemy: %w", err)
	}
	if err := ecs.Add(w, e, component.AIStateComponent.Kind(), &component.AIState{
		Current: component.StateSeeking,
		Steer:   component.SteerSeek,
	}); err != nil {
		return 0, fmt.Errorf("enemy: add ai state: %w", err)
	}
	return e, nil
}

func spawnProjectile(w *ecs.World, p component.Projectile, pos common.Vec2) ecs.Entity {
	p.Active = true
	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{Position: pos, Previous: pos})
	_ = ecs.Add(w, e, component.ProjectileComponent.Kind(), &p)
	w.Events().Emit(EventProjectileSpawned, e, ProjectileSpawned{Kind: p.Kind, Faction: p.Faction, Position: pos})
	return e
}

func scheduleTelegraph(w *ecs.World, source ecs.Entity, tg component.Telegraph, pos common.Vec2) ecs.Entity {
	now := w.Clock().Now
	tg.Delay = math.Max(0, tg.Delay)
	tg.ResolveAt = now + tg.Delay
	tg.Remaining = tg.Delay
	tg.Source = component.Entity(source)
	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{Position: pos, Previous: pos})
	_ = ecs.Add(w, e, component.TelegraphComponent.Kind(), &tg)
	w.Events().Emit(EventTelegraphScheduled, e, TelegraphScheduled{
		Source:  source,
		Pattern: tg.Pattern,
		Target:  pos,
		Radius:  tg.Radius,
		Delay:   tg.Delay,
		Damage:  tg.Damage,
	})
	return e
}

func spawnPickup(w *ecs.World, kind component.PickupKind, value, radius float64, pos common.Vec2) ecs.Entity {
	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{Position: pos, Previous: pos})
	_ = ecs.Add(w, e, component.PickupComponent.Kind(), &component.Pickup{Kind: kind, Value: value, Radius: radius})
	return e
}
