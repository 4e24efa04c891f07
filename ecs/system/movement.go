package system

import (
	"github.com/milk9111/hordecore/collision"
	"github.com/milk9111/hordecore/common"
	"github.com/milk9111/hordecore/ecs"
	"github.com/milk9111/hordecore/ecs/component"
)

// preferredRangeShare is the fraction of attack range a scripted enemy tries to keep.
const preferredRangeShare = 0.8

// MovementSystem moves the player from its intent and every enemy toward its
// steering target, resolving geometry, soft pushes and contact damage.
type MovementSystem struct {
	resolver *collision.Resolver
	steering *SteeringScripts
	tuning   Tuning
}

func NewMovementSystem(resolver *collision.Resolver, steering *SteeringScripts, tuning Tuning) *MovementSystem {
	if resolver == nil {
		resolver = collision.NewResolver(nil)
	}
	return &MovementSystem{resolver: resolver, steering: steering, tuning: tuning.withDefaults()}
}

// SnapshotPositions records every transform's position as its previous
// position. It runs once per tick before any movement.
func SnapshotPositions(w *ecs.World) {
	ecs.ForEach(w, component.TransformComponent.Kind(), func(_ ecs.Entity, t *component.Transform) {
		t.Previous = t.Position
	})
}

type moverSet struct {
	ents       []ecs.Entity
	bodies     []collision.Body
	transforms []*component.Transform
}

func (m *moverSet) others(i int) ([]collision.Body, []int) {
	bodies := make([]collision.Body, 0, len(m.bodies)-1)
	index := make([]int, 0, len(m.bodies)-1)
	for j, b := range m.bodies {
		if j == i {
			continue
		}
		bodies = append(bodies, b)
		index = append(index, j)
	}
	return bodies, index
}

func (s *MovementSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	s.steering.Prune(w)

	pv, ok := lookupPlayer(w)
	if !ok || !pv.active() {
		return
	}
	dt := w.Clock().Delta

	set := &moverSet{}
	slot := map[ecs.Entity]int{}
	ecs.ForEach3(w, component.ActorComponent.Kind(), component.TransformComponent.Kind(), component.HealthComponent.Kind(),
		func(e ecs.Entity, a *component.Actor, t *component.Transform, h *component.Health) {
			if !h.IsAlive() {
				return
			}
			slot[e] = len(set.ents)
			set.ents = append(set.ents, e)
			set.bodies = append(set.bodies, collision.Body{Position: t.Position, Radius: a.Radius})
			set.transforms = append(set.transforms, t)
		})

	s.move(w, set, slot[pv.Entity], pv.Actor, pv.Player.Intent, dt, pv.Entity)

	ecs.ForEach4(w, component.EnemyComponent.Kind(), component.AIStateComponent.Kind(), component.ActorComponent.Kind(), component.TransformComponent.Kind(),
		func(e ecs.Entity, en *component.Enemy, st *component.AIState, a *component.Actor, t *component.Transform) {
			i, ok := slot[e]
			if !ok {
				return
			}
			st.Steer, st.StrafeSign = component.SteerSeek, 0
			if en.Profile.Script != "" {
				var hf float64
				if h, ok := ecs.Get(w, e, component.HealthComponent.Kind()); ok {
					hf = h.Fraction()
				}
				st.Steer, st.StrafeSign = s.steering.Steer(e, en.Profile.Script, SteerInput{
					Distance:       t.Position.Dist(pv.Transform.Position),
					PreferredRange: en.Profile.AttackRange * preferredRangeShare,
					HealthFraction: hf,
				})
			}
			dir := steerDirection(st.Steer, st.StrafeSign, t.Position, pv.Transform.Position)
			s.move(w, set, i, a, dir, dt, pv.Entity)
		})
}

// move resolves mover i, writes back its position and any pushed actors, and
// applies contact damage between the player and touching enemies.
func (s *MovementSystem) move(w *ecs.World, set *moverSet, i int, a *component.Actor, dir common.Vec2, dt float64, player ecs.Entity) {
	if i < 0 || i >= len(set.ents) || dir.IsZero() {
		return
	}
	others, index := set.others(i)
	from := set.bodies[i].Position
	res := s.resolver.Resolve(collision.Mover{Position: from, Radius: a.Radius, Speed: a.Speed}, dir, dt, others)

	a.Facing = dir.Norm()
	self := set.ents[i]
	if res.Moved {
		set.bodies[i].Position = res.Position
		set.transforms[i].Position = res.Position
		w.Events().Emit(EventActorMoved, self, ActorMoved{From: from, To: res.Position})
	}

	for _, c := range res.Contacts {
		j := index[c.Index]
		if !c.Push.IsZero() {
			set.bodies[j].Position = others[c.Index].Position
			set.transforms[j].Position = others[c.Index].Position
		}
		other := set.ents[j]
		switch player {
		case self:
			s.contact(w, other, player)
		case other:
			s.contact(w, self, player)
		}
	}
}

// contact applies an enemy's touch damage, gated by its own contact cooldown.
func (s *MovementSystem) contact(w *ecs.World, enemy, player ecs.Entity) {
	en, ok := ecs.Get(w, enemy, component.EnemyComponent.Kind())
	if !ok {
		return
	}
	now := w.Clock().Now
	if !component.CooldownReady(now, en.LastContact, s.tuning.ContactCooldown) {
		return
	}
	en.LastContact = now
	dealDamage(w, nil, enemy, player, en.Damage*s.tuning.ContactDamageFraction, "contact")
}
