package component

import (
	"github.com/milk9111/hordecore/archetype"
	"github.com/milk9111/hordecore/common"
	"github.com/milk9111/hordecore/progression"
	"github.com/milk9111/hordecore/stats"
)

// Player holds everything the player owns besides position and health.
type Player struct {
	// Base grows on level-up; Stats is recomposed from it after every change.
	Base     archetype.PlayerProfile
	Stats    stats.PlayerStats
	Weapons  []Weapon
	Passives []Passive
	Ledger   progression.Ledger

	Intent   common.Vec2
	Kills    int
	GameOver bool
}

// Weapon returns the owned weapon with tag.
func (p *Player) Weapon(tag string) (*Weapon, bool) {
	for i := range p.Weapons {
		if p.Weapons[i].Tag == tag {
			return &p.Weapons[i], true
		}
	}
	return nil, false
}

// Passive returns the owned passive with tag.
func (p *Player) Passive(tag string) (*Passive, bool) {
	for i := range p.Passives {
		if p.Passives[i].Tag == tag {
			return &p.Passives[i], true
		}
	}
	return nil, false
}

// PassiveLevels converts owned passives to the composer's input.
func (p *Player) PassiveLevels() []stats.PassiveLevel {
	out := make([]stats.PassiveLevel, 0, len(p.Passives))
	for _, ps := range p.Passives {
		out = append(out, ps.Level())
	}
	return out
}

var PlayerComponent = NewComponent[Player]("player")
