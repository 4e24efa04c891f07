package system

import (
	"math"

	"github.com/milk9111/hordecore/archetype"
	"github.com/milk9111/hordecore/common"
	"github.com/milk9111/hordecore/ecs"
	"github.com/milk9111/hordecore/ecs/component"
)

const (
	SweepHalfAngle     = 60 * math.Pi / 180
	LinearSpread       = 12 * math.Pi / 180
	OrbitAngularSpeed  = 3.0
	OrbitRehitInterval = 0.5
	PulseInterval      = 0.1
)

// WeaponSystem fires the player's weapons whose cooldown gate is open.
type WeaponSystem struct{}

func NewWeaponSystem() *WeaponSystem {
	return &WeaponSystem{}
}

func (s *WeaponSystem) Update(w *ecs.World) {
	pv, ok := lookupPlayer(w)
	if !ok || !pv.active() {
		return
	}
	now := w.Clock().Now
	for i := range pv.Player.Weapons {
		wpn := &pv.Player.Weapons[i]
		if !wpn.Ready(now) {
			continue
		}
		if !fireWeapon(w, pv, wpn) {
			continue
		}
		wpn.LastFire = now
		w.Events().Emit(EventAttackFired, pv.Entity, AttackFired{Source: wpn.Tag})
	}
}

// fireWeapon spawns the weapon's projectiles. It returns false when the
// weapon needs a target and none exists, leaving the cooldown untouched.
func fireWeapon(w *ecs.World, pv playerView, wpn *component.Weapon) bool {
	pos := pv.Transform.Position
	st := wpn.Stats
	owner := component.Entity(pv.Entity)
	base := component.Projectile{
		Kind:    wpn.Base.Kind,
		Source:  wpn.Tag,
		Faction: component.FactionPlayer,
		Owner:   owner,
		Damage:  st.Damage,
		Radius:  st.Radius,
	}

	switch wpn.Base.Kind {
	case archetype.WeaponSweep:
		aim := pv.Actor.Facing
		if _, at, ok := nearestEnemy(w, pos); ok && !at.Sub(pos).IsZero() {
			aim = at.Sub(pos)
		}
		if aim.IsZero() {
			aim = common.V(1, 0)
		}
		p := base
		p.Direction = aim.Norm()
		p.Reach = st.Range
		p.ConeHalfAngle = SweepHalfAngle
		spawnProjectile(w, p, pos)

	case archetype.WeaponLinear:
		_, at, ok := nearestEnemy(w, pos)
		if !ok {
			return false
		}
		aim := at.Sub(pos)
		if aim.IsZero() {
			aim = pv.Actor.Facing
		}
		if aim.IsZero() {
			aim = common.V(1, 0)
		}
		aim = aim.Norm()
		n := max(st.Amount, 1)
		for k := 0; k < n; k++ {
			p := base
			offset := (float64(k) - float64(n-1)/2) * LinearSpread
			p.Direction = aim.Rotate(offset)
			p.Speed = st.Speed
			p.MaxRange = st.Range
			spawnProjectile(w, p, pos)
		}

	case archetype.WeaponOrbit:
		p := base
		p.AngularSpeed = OrbitAngularSpeed
		p.OrbitRadius = st.Range
		p.Lifetime = st.Duration
		p.RehitInterval = OrbitRehitInterval
		p.LastHit = map[component.Entity]float64{}
		spawnProjectile(w, p, pos.Add(common.FromAngle(p.Angle).Mul(p.OrbitRadius)))

	case archetype.WeaponPulse:
		p := base
		p.Radius = st.Radius * st.Area
		p.Lifetime = st.Duration
		p.PulseInterval = PulseInterval
		spawnProjectile(w, p, pos)

	default:
		return false
	}
	return true
}
