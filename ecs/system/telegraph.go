package system

import (
	"math"

	"github.com/milk9111/hordecore/ecs"
	"github.com/milk9111/hordecore/ecs/component"
)

// TelegraphSystem resolves pending area attacks whose delay has elapsed.
// A telegraph outlives the enemy that scheduled it.
type TelegraphSystem struct {
	rng Rand
}

func NewTelegraphSystem(rng Rand) *TelegraphSystem {
	return &TelegraphSystem{rng: rng}
}

func (s *TelegraphSystem) Update(w *ecs.World) {
	now := w.Clock().Now
	ecs.ForEach2(w, component.TelegraphComponent.Kind(), component.TransformComponent.Kind(),
		func(e ecs.Entity, tg *component.Telegraph, t *component.Transform) {
			tg.Remaining = math.Max(0, tg.ResolveAt-now)
			if now < tg.ResolveAt-timeEpsilon {
				return
			}
			hits := 0
			for _, victim := range targetsFor(w, tg.Faction) {
				if t.Position.Dist(victim.Transform.Position) > tg.Radius+victim.Actor.Reach() {
					continue
				}
				if dealDamage(w, s.rng, ecs.Entity(tg.Source), victim.Entity, tg.Damage, tg.Pattern) > 0 {
					hits++
				}
			}
			w.Events().Emit(EventTelegraphResolved, e, TelegraphResolved{
				Pattern: tg.Pattern,
				Target:  t.Position,
				Radius:  tg.Radius,
				Hits:    hits,
			})
			ecs.DestroyEntity(w, e)
		})
}
