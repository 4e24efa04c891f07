package system

import (
	"github.com/milk9111/hordecore/archetype"
	"github.com/milk9111/hordecore/common"
	"github.com/milk9111/hordecore/ecs"
	"github.com/milk9111/hordecore/ecs/component"
)

const (
	defaultEnemyProjectileSpeed = 220.0
	enemyProjectileRangeFactor  = 1.5
	ordinaryTelegraphPattern    = "strike"
)

// SelectSpecial picks one of n special patterns uniformly.
func SelectSpecial(rng Rand, n int) int {
	if n <= 1 || rng == nil {
		return 0
	}
	return rng.Intn(n)
}

// AISystem runs the attack half of every enemy's decision loop: the special
// gate, then the in-range attack for its class.
type AISystem struct {
	rng    Rand
	tuning Tuning
}

func NewAISystem(rng Rand, tuning Tuning) *AISystem {
	return &AISystem{rng: rng, tuning: tuning.withDefaults()}
}

func (s *AISystem) Update(w *ecs.World) {
	pv, ok := lookupPlayer(w)
	if !ok || !pv.active() {
		return
	}
	clock := w.Clock()
	playerPos := pv.Transform.Position
	playerVel := pv.Transform.Velocity(clock.Delta)

	ecs.ForEach4(w, component.EnemyComponent.Kind(), component.AIStateComponent.Kind(), component.TransformComponent.Kind(), component.HealthComponent.Kind(),
		func(e ecs.Entity, en *component.Enemy, st *component.AIState, t *component.Transform, h *component.Health) {
			if !h.IsAlive() || !pv.active() {
				return
			}
			if s.trySpecial(w, e, en, t.Position, playerPos, playerVel, clock.Now) {
				st.Current = component.StateSpecialAttacking
				return
			}

			if t.Position.Dist(playerPos) > en.Profile.AttackRange {
				st.Current = component.StateSeeking
				return
			}
			st.Current = attackState(en.Profile)
			if !component.CooldownReady(clock.Now, en.LastAttack, en.Profile.AttackCooldown) {
				return
			}
			en.LastAttack = clock.Now
			s.attack(w, e, en, t.Position, pv)
		})
}

func attackState(p archetype.EnemyProfile) component.StateID {
	switch {
	case p.Ranged:
		return component.StateRangedAttacking
	case p.AreaAttack:
		return component.StateTelegraphIndicating
	}
	return component.StateMeleeAttacking
}

func (s *AISystem) attack(w *ecs.World, e ecs.Entity, en *component.Enemy, pos common.Vec2, pv playerView) {
	playerPos := pv.Transform.Position
	switch {
	case en.Profile.Ranged:
		dir := playerPos.Sub(pos)
		if dir.IsZero() {
			dir = common.V(1, 0)
		}
		speed := en.Profile.ProjectileSpeed
		if speed <= 0 {
			speed = defaultEnemyProjectileSpeed
		}
		spawnProjectile(w, component.Projectile{
			Kind:      archetype.WeaponLinear,
			Source:    en.Tag,
			Faction:   component.FactionEnemy,
			Owner:     component.Entity(e),
			Damage:    en.Damage,
			Radius:    s.tuning.EnemyProjectileRadius,
			Direction: dir.Norm(),
			Speed:     speed,
			MaxRange:  en.Profile.AttackRange * enemyProjectileRangeFactor,
		}, pos)

	case en.Profile.AreaAttack:
		scheduleTelegraph(w, e, component.Telegraph{
			Damage:  en.Damage,
			Radius:  en.Profile.AttackRadius,
			Delay:   en.Profile.TelegraphDelay,
			Pattern: ordinaryTelegraphPattern,
			Faction: component.FactionEnemy,
		}, playerPos)

	default:
		dealDamage(w, nil, e, pv.Entity, en.Damage, en.Tag)
	}
	w.Events().Emit(EventAttackFired, e, AttackFired{Source: en.Tag})
}

// trySpecial schedules a special pattern when the enemy's special cooldown
// has elapsed. The gate is independent of the ordinary attack cooldown.
func (s *AISystem) trySpecial(w *ecs.World, e ecs.Entity, en *component.Enemy, pos, playerPos, playerVel common.Vec2, now float64) bool {
	specials := en.Profile.Specials
	if !en.Profile.HasSpecials || len(specials) == 0 {
		return false
	}
	if !component.CooldownReady(now, en.LastSpecial, s.tuning.SpecialCooldown) {
		return false
	}
	en.LastSpecial = now
	pattern := specials[SelectSpecial(s.rng, len(specials))]

	at := pos
	if pattern.Target == archetype.TargetPredicted {
		at = playerPos.Add(playerVel.Mul(pattern.PredictionFactor))
	}
	scheduleTelegraph(w, e, component.Telegraph{
		Damage:  en.Damage * pattern.DamageMultiplier,
		Radius:  pattern.Radius,
		Delay:   pattern.Delay,
		Pattern: pattern.Name,
		Faction: component.FactionEnemy,
	}, at)
	w.Events().Emit(EventAttackFired, e, AttackFired{Source: pattern.Name, Special: true})
	return true
}
