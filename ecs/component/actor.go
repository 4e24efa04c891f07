package component

import "github.com/milk9111/hordecore/common"

// Faction identifies teams for friendly-fire checks.
type Faction int

const (
	FactionNeutral Faction = iota
	FactionPlayer
	FactionEnemy
)

func (f Faction) String() string {
	switch f {
	case FactionPlayer:
		return "player"
	case FactionEnemy:
		return "enemy"
	}
	return "neutral"
}

// CanHit reports whether an attack from f may damage target.
func (f Faction) CanHit(target Faction) bool {
	if f == FactionNeutral || target == FactionNeutral {
		return true
	}
	return f != target
}

// Actor is a mobile circle that takes part in movement resolution.
type Actor struct {
	Radius  float64
	Speed   float64
	Facing  common.Vec2
	Faction Faction
}

// Reach is the distance at which area effects touch the actor.
func (a Actor) Reach() float64 {
	return a.Radius / 2
}

var ActorComponent = NewComponent[Actor]("actor")
