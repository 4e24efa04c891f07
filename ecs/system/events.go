package system

import (
	"github.com/milk9111/hordecore/archetype"
	"github.com/milk9111/hordecore/common"
	"github.com/milk9111/hordecore/ecs"
	"github.com/milk9111/hordecore/ecs/component"
)

const (
	EventActorMoved         ecs.EventType = "actor_moved"
	EventAttackFired        ecs.EventType = "attack_fired"
	EventProjectileSpawned  ecs.EventType = "projectile_spawned"
	EventProjectileRemoved  ecs.EventType = "projectile_removed"
	EventDamageDealt        ecs.EventType = "damage_dealt"
	EventActorDied          ecs.EventType = "actor_died"
	EventLevelUp            ecs.EventType = "level_up"
	EventTelegraphScheduled ecs.EventType = "telegraph_scheduled"
	EventTelegraphResolved  ecs.EventType = "telegraph_resolved"
	EventPickupCollected    ecs.EventType = "pickup_collected"
	EventGameOver           ecs.EventType = "game_over"
)

type ActorMoved struct {
	From common.Vec2
	To   common.Vec2
}

// AttackFired is emitted when a weapon or an enemy attack passes its gate.
// Source is the weapon tag, the enemy tag or the special pattern name.
type AttackFired struct {
	Source  string
	Special bool
}

type ProjectileSpawned struct {
	Kind     archetype.WeaponKind
	Faction  component.Faction
	Position common.Vec2
}

type ProjectileRemoved struct {
	Kind   archetype.WeaponKind
	Reason string
}

type DamageDealt struct {
	Attacker ecs.Entity
	Amount   float64
	Source   string
	Killed   bool
}

type ActorDied struct {
	Tag      string
	Position common.Vec2
	XP       float64
}

type LevelUp struct {
	Level  int
	Gained int
}

type TelegraphScheduled struct {
	Source  ecs.Entity
	Pattern string
	Target  common.Vec2
	Radius  float64
	Delay   float64
	Damage  float64
}

type TelegraphResolved struct {
	Pattern string
	Target  common.Vec2
	Radius  float64
	Hits    int
}

type PickupCollected struct {
	Kind  component.PickupKind
	Value float64
}

type GameOver struct {
	Time  float64
	Level int
	Kills int
}
