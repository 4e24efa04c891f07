package system

import (
	"github.com/milk9111/hordecore/common"
	"github.com/milk9111/hordecore/ecs"
	"github.com/milk9111/hordecore/ecs/component"
)

const (
	vampirismMinHeal = 0.05
	vampirismMaxHeal = 0.10
)

// playerView bundles the components of the single player entity.
type playerView struct {
	Entity    ecs.Entity
	Player    *component.Player
	Transform *component.Transform
	Actor     *component.Actor
	Health    *component.Health
}

func (p playerView) active() bool {
	return !p.Player.GameOver && p.Health.IsAlive()
}

func lookupPlayer(w *ecs.World) (playerView, bool) {
	e, p, ok := ecs.First(w, component.PlayerComponent.Kind())
	if !ok {
		return playerView{}, false
	}
	t, okT := ecs.Get(w, e, component.TransformComponent.Kind())
	a, okA := ecs.Get(w, e, component.ActorComponent.Kind())
	h, okH := ecs.Get(w, e, component.HealthComponent.Kind())
	if !okT || !okA || !okH {
		return playerView{}, false
	}
	return playerView{Entity: e, Player: p, Transform: t, Actor: a, Health: h}, true
}

// target is a damageable actor snapshot taken at the start of a system pass.
type target struct {
	Entity    ecs.Entity
	Transform *component.Transform
	Actor     *component.Actor
	Health    *component.Health
}

// targetsFor lists living actors that an attack from faction may hit.
func targetsFor(w *ecs.World, faction component.Faction) []target {
	var out []target
	ecs.ForEach3(w, component.ActorComponent.Kind(), component.TransformComponent.Kind(), component.HealthComponent.Kind(),
		func(e ecs.Entity, a *component.Actor, t *component.Transform, h *component.Health) {
			if a.Faction == component.FactionNeutral || !faction.CanHit(a.Faction) || !h.IsAlive() {
				return
			}
			out = append(out, target{Entity: e, Transform: t, Actor: a, Health: h})
		})
	return out
}

// nearestEnemy returns the closest living enemy to pos; the first found wins ties.
func nearestEnemy(w *ecs.World, pos common.Vec2) (ecs.Entity, common.Vec2, bool) {
	var (
		best     ecs.Entity
		bestPos  common.Vec2
		bestDist = -1.0
	)
	ecs.ForEach3(w, component.EnemyComponent.Kind(), component.TransformComponent.Kind(), component.HealthComponent.Kind(),
		func(e ecs.Entity, _ *component.Enemy, t *component.Transform, h *component.Health) {
			if !h.IsAlive() {
				return
			}
			d := pos.Dist(t.Position)
			if bestDist < 0 || d < bestDist {
				best, bestPos, bestDist = e, t.Position, d
			}
		})
	return best, bestPos, bestDist >= 0
}

// dealDamage applies amount from attacker to victim and returns the health
// actually removed. Player armor reduces incoming damage; player hits may
// trigger vampirism when rng is set.
func dealDamage(w *ecs.World, rng Rand, attacker, victim ecs.Entity, amount float64, source string) float64 {
	h, ok := ecs.Get(w, victim, component.HealthComponent.Kind())
	if !ok || !h.IsAlive() {
		return 0
	}
	if p, ok := ecs.Get(w, victim, component.PlayerComponent.Kind()); ok {
		if p.GameOver {
			return 0
		}
		amount -= p.Stats.Armor
	}
	applied := h.ApplyDamage(amount)
	if applied <= 0 {
		return 0
	}
	w.Events().Emit(EventDamageDealt, victim, DamageDealt{
		Attacker: attacker,
		Amount:   applied,
		Source:   source,
		Killed:   !h.IsAlive(),
	})

	if rng == nil {
		return applied
	}
	p, ok := ecs.Get(w, attacker, component.PlayerComponent.Kind())
	if !ok || p.Stats.Vampirism <= 0 {
		return applied
	}
	if rng.Float64() < p.Stats.Vampirism {
		if ph, ok := ecs.Get(w, attacker, component.HealthComponent.Kind()); ok {
			ph.Heal(applied * common.Lerp(vampirismMinHeal, vampirismMaxHeal, rng.Float64()))
		}
	}
	return applied
}
