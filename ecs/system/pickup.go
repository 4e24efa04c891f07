package system

import (
	"math"

	"github.com/milk9111/hordecore/collision"
	"github.com/milk9111/hordecore/ecs"
	"github.com/milk9111/hordecore/ecs/component"
)

// PickupSystem pulls pickups inside the player's magnet radius toward the
// player and collects them on overlap.
type PickupSystem struct {
	tuning Tuning
}

func NewPickupSystem(tuning Tuning) *PickupSystem {
	return &PickupSystem{tuning: tuning.withDefaults()}
}

func (s *PickupSystem) Update(w *ecs.World) {
	pv, ok := lookupPlayer(w)
	if !ok || !pv.active() {
		return
	}
	dt := w.Clock().Delta
	at := pv.Transform.Position
	magnet := pv.Player.Stats.Magnet

	ecs.ForEach2(w, component.PickupComponent.Kind(), component.TransformComponent.Kind(),
		func(e ecs.Entity, p *component.Pickup, t *component.Transform) {
			d := t.Position.Dist(at)
			if !p.Magnetized && d <= magnet {
				p.Magnetized = true
			}
			if p.Magnetized && d > 0 {
				step := math.Min(s.tuning.PickupPullSpeed*dt, d)
				t.Position = t.Position.Add(at.Sub(t.Position).Norm().Mul(step))
			}
			if !collision.Overlaps(t.Position, p.Radius, at, pv.Actor.Radius) {
				return
			}

			switch p.Kind {
			case component.PickupXP:
				GrantExperience(w, pv.Entity, p.Value)
			case component.PickupGold:
				pv.Player.Ledger.AddGold(int(math.Round(p.Value)))
			}
			w.Events().Emit(EventPickupCollected, e, PickupCollected{Kind: p.Kind, Value: p.Value})
			ecs.DestroyEntity(w, e)
		})
}
