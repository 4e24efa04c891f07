package system

import (
	"math"

	"github.com/milk9111/hordecore/archetype"
	"github.com/milk9111/hordecore/collision"
	"github.com/milk9111/hordecore/common"
	"github.com/milk9111/hordecore/ecs"
	"github.com/milk9111/hordecore/ecs/component"
)

const timeEpsilon = component.TimeEpsilon

// ProjectileSystem advances every active projectile, applies its hits and
// removes the ones that became inactive.
type ProjectileSystem struct {
	geometry collision.Geometry
	rng      Rand
}

func NewProjectileSystem(geometry collision.Geometry, rng Rand) *ProjectileSystem {
	return &ProjectileSystem{geometry: geometry, rng: rng}
}

func (s *ProjectileSystem) Update(w *ecs.World) {
	clock := w.Clock()
	byFaction := map[component.Faction][]target{}
	targets := func(f component.Faction) []target {
		if ts, ok := byFaction[f]; ok {
			return ts
		}
		ts := targetsFor(w, f)
		byFaction[f] = ts
		return ts
	}

	ecs.ForEach2(w, component.ProjectileComponent.Kind(), component.TransformComponent.Kind(),
		func(e ecs.Entity, p *component.Projectile, t *component.Transform) {
			reason := ""
			if p.Active {
				switch p.Kind {
				case archetype.WeaponLinear:
					reason = s.advanceLinear(w, p, t, clock.Delta, targets(p.Faction))
				case archetype.WeaponSweep:
					reason = s.resolveSweep(w, p, t, targets(p.Faction))
				case archetype.WeaponOrbit:
					reason = s.advanceOrbit(w, p, t, clock, targets(p.Faction))
				case archetype.WeaponPulse:
					reason = s.advancePulse(w, p, t, clock.Delta, targets(p.Faction))
				default:
					reason = "unknown"
				}
			} else {
				reason = "inactive"
			}
			if reason == "" {
				return
			}
			p.Active = false
			ecs.DestroyEntity(w, e)
			w.Events().Emit(EventProjectileRemoved, e, ProjectileRemoved{Kind: p.Kind, Reason: reason})
		})
}

func (s *ProjectileSystem) hit(w *ecs.World, p *component.Projectile, victim ecs.Entity) {
	dealDamage(w, s.rng, ecs.Entity(p.Owner), victim, p.Damage, p.Source)
}

func (s *ProjectileSystem) advanceLinear(w *ecs.World, p *component.Projectile, t *component.Transform, dt float64, ts []target) string {
	step := p.Direction.Mul(p.Speed * dt)
	if left := p.MaxRange - p.Travelled; step.Len() > left {
		step = p.Direction.Mul(math.Max(left, 0))
	}
	t.Position = t.Position.Add(step)
	p.Travelled += step.Len()

	if collision.SolidAt(s.geometry, t.Position, p.Radius) {
		return "geometry"
	}
	for _, tg := range ts {
		if !tg.Health.IsAlive() {
			continue
		}
		if collision.Overlaps(t.Position, p.Radius, tg.Transform.Position, tg.Actor.Radius) {
			s.hit(w, p, tg.Entity)
			return "hit"
		}
	}
	if p.Travelled >= p.MaxRange-timeEpsilon {
		return "range"
	}
	return ""
}

func (s *ProjectileSystem) resolveSweep(w *ecs.World, p *component.Projectile, t *component.Transform, ts []target) string {
	for _, tg := range ts {
		if !tg.Health.IsAlive() {
			continue
		}
		d := tg.Transform.Position.Sub(t.Position)
		if d.Len() > p.Reach+tg.Actor.Reach() {
			continue
		}
		if !d.IsZero() && angleBetween(d, p.Direction) > p.ConeHalfAngle+timeEpsilon {
			continue
		}
		s.hit(w, p, tg.Entity)
	}
	return "resolved"
}

func (s *ProjectileSystem) advanceOrbit(w *ecs.World, p *component.Projectile, t *component.Transform, clock ecs.Clock, ts []target) string {
	anchor, ok := ecs.Get(w, ecs.Entity(p.Owner), component.TransformComponent.Kind())
	if !ok {
		return "orphaned"
	}
	p.Age += clock.Delta
	angle := p.Angle + p.AngularSpeed*p.Age
	t.Position = anchor.Position.Add(common.FromAngle(angle).Mul(p.OrbitRadius))

	if p.LastHit == nil {
		p.LastHit = map[component.Entity]float64{}
	}
	for _, tg := range ts {
		if !tg.Health.IsAlive() || !collision.Overlaps(t.Position, p.Radius, tg.Transform.Position, tg.Actor.Radius) {
			continue
		}
		key := component.Entity(tg.Entity)
		if last, ok := p.LastHit[key]; ok && !component.CooldownReady(clock.Now, last, p.RehitInterval) {
			continue
		}
		p.LastHit[key] = clock.Now
		s.hit(w, p, tg.Entity)
	}
	if p.Age >= p.Lifetime-timeEpsilon {
		return "expired"
	}
	return ""
}

func (s *ProjectileSystem) advancePulse(w *ecs.World, p *component.Projectile, t *component.Transform, dt float64, ts []target) string {
	if anchor, ok := ecs.Get(w, ecs.Entity(p.Owner), component.TransformComponent.Kind()); ok {
		t.Position = anchor.Position
	} else {
		return "orphaned"
	}
	p.Age += dt
	p.Accumulator += dt
	interval := p.PulseInterval
	if interval <= 0 {
		interval = PulseInterval
	}
	for p.Accumulator >= interval-timeEpsilon {
		p.Accumulator -= interval
		for _, tg := range ts {
			if !tg.Health.IsAlive() {
				continue
			}
			if t.Position.Dist(tg.Transform.Position) <= p.Radius+tg.Actor.Reach() {
				s.hit(w, p, tg.Entity)
			}
		}
	}
	if p.Age >= p.Lifetime-timeEpsilon {
		return "expired"
	}
	return ""
}

func angleBetween(a, b common.Vec2) float64 {
	an, bn := a.Norm(), b.Norm()
	return math.Acos(common.Clamp(an.Dot(bn), -1, 1))
}
