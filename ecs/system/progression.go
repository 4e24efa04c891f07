package system

import (
	"github.com/milk9111/hordecore/ecs"
	"github.com/milk9111/hordecore/ecs/component"
	"github.com/milk9111/hordecore/progression"
	"github.com/milk9111/hordecore/stats"
)

// Recompose rebuilds the player's composed stats from its base profile,
// passives and weapon levels, then carries health across any max change.
// It must run after every upgrade mutation.
func Recompose(w *ecs.World, e ecs.Entity) {
	p, ok := ecs.Get(w, e, component.PlayerComponent.Kind())
	if !ok {
		return
	}
	p.Stats = stats.ComposePlayer(p.Base, p.PassiveLevels())
	for i := range p.Weapons {
		p.Weapons[i].Recompose(p.Stats.Weapon)
	}
	if h, ok := ecs.Get(w, e, component.HealthComponent.Kind()); ok {
		h.SetMax(p.Stats.MaxHealth)
	}
	if a, ok := ecs.Get(w, e, component.ActorComponent.Kind()); ok {
		a.Speed = p.Stats.Speed
	}
}

// GrantExperience feeds xp through the ledger. Each level gained bumps the
// base profile; health is restored to the new maximum. It returns the
// number of levels gained.
func GrantExperience(w *ecs.World, e ecs.Entity, xp float64) int {
	p, ok := ecs.Get(w, e, component.PlayerComponent.Kind())
	if !ok {
		return 0
	}
	gained := p.Ledger.Gain(xp, p.Stats.Growth)
	if gained == 0 {
		return 0
	}
	p.Base = progression.Grow(p.Base, gained)
	Recompose(w, e)
	if h, ok := ecs.Get(w, e, component.HealthComponent.Kind()); ok && !p.GameOver {
		h.Fill()
	}
	w.Events().Emit(EventLevelUp, e, LevelUp{Level: p.Ledger.Level, Gained: gained})
	return gained
}
