package component

import (
	"math"

	"github.com/milk9111/hordecore/archetype"
)

// Enemy is the runtime state of a hostile actor. Profile holds the unscaled
// archetype; Damage is the spawn-time scaled value.
type Enemy struct {
	Tag     string
	Profile archetype.EnemyProfile
	Damage  float64

	LastAttack  float64
	LastSpecial float64
	LastContact float64
}

func NewEnemy(profile archetype.EnemyProfile, damage float64) *Enemy {
	return &Enemy{
		Tag:         profile.Tag,
		Profile:     profile,
		Damage:      damage,
		LastAttack:  math.Inf(-1),
		LastSpecial: math.Inf(-1),
		LastContact: math.Inf(-1),
	}
}

var EnemyComponent = NewComponent[Enemy]("enemy")
