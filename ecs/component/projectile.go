package component

import (
	"github.com/milk9111/hordecore/archetype"
	"github.com/milk9111/hordecore/common"
)

// Projectile is a damage carrier spawned by a weapon or an enemy. Kind
// selects which fields are meaningful.
type Projectile struct {
	Kind    archetype.WeaponKind
	Source  string
	Faction Faction
	Owner   Entity
	Active  bool

	Damage float64
	Radius float64

	// linear
	Direction common.Vec2
	Speed     float64
	MaxRange  float64
	Travelled float64

	// sweep
	ConeHalfAngle float64
	Reach         float64

	// orbit and pulse
	Angle         float64
	AngularSpeed  float64
	OrbitRadius   float64
	Age           float64
	Lifetime      float64
	PulseInterval float64
	Accumulator   float64
	RehitInterval float64
	LastHit       map[Entity]float64
}

var ProjectileComponent = NewComponent[Projectile]("projectile")
