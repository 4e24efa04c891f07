package system

import (
	"github.com/milk9111/hordecore/ecs"
	"github.com/milk9111/hordecore/ecs/component"
)

// DeathSystem removes dead enemies at the end of the tick, drops their loot
// and flags game over when the player's health reaches zero.
type DeathSystem struct {
	rng    Rand
	tuning Tuning
}

func NewDeathSystem(rng Rand, tuning Tuning) *DeathSystem {
	return &DeathSystem{rng: rng, tuning: tuning.withDefaults()}
}

func (s *DeathSystem) Update(w *ecs.World) {
	pv, hasPlayer := lookupPlayer(w)

	ecs.ForEach3(w, component.EnemyComponent.Kind(), component.HealthComponent.Kind(), component.TransformComponent.Kind(),
		func(e ecs.Entity, en *component.Enemy, h *component.Health, t *component.Transform) {
			if h.IsAlive() {
				return
			}
			pos := t.Position
			w.Events().Emit(EventActorDied, e, ActorDied{Tag: en.Tag, Position: pos, XP: en.Profile.XP})
			ecs.DestroyEntity(w, e)

			if !hasPlayer {
				return
			}
			pv.Player.Kills++
			if en.Profile.XP > 0 {
				spawnPickup(w, component.PickupXP, en.Profile.XP, s.tuning.PickupRadius, pos)
			}
			chance := pv.Player.Stats.DropChance * (1 + pv.Player.Stats.Luck)
			if s.rng != nil && chance > 0 && s.rng.Float64() < chance {
				spawnPickup(w, component.PickupGold, s.tuning.GoldValue, s.tuning.PickupRadius, pos)
			}
		})

	if !hasPlayer || pv.Player.GameOver || pv.Health.IsAlive() {
		return
	}
	pv.Player.GameOver = true
	now := w.Clock().Now + w.Clock().Delta
	w.Events().Emit(EventGameOver, pv.Entity, GameOver{
		Time:  now,
		Level: pv.Player.Ledger.Level,
		Kills: pv.Player.Kills,
	})
}
