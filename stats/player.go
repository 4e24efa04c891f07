package stats

import (
	"math"

	"github.com/milk9111/hordecore/archetype"
	"github.com/milk9111/hordecore/common"
)

const (
	// MaxPassiveLevel is the highest rank a passive can reach.
	MaxPassiveLevel = 5

	maxCooldownReduction = 0.9
)

// PassiveLevel is the composer's view of an owned passive.
type PassiveLevel struct {
	Target        archetype.StatTarget
	Level         int
	BonusPerLevel float64
	// Rarity is the multiplier fixed when the passive was acquired.
	Rarity float64
}

// Bonus is level x bonus-per-level x rarity, with level clamped to its range.
func (p PassiveLevel) Bonus() float64 {
	level := p.Level
	if level < 0 {
		level = 0
	}
	if level > MaxPassiveLevel {
		level = MaxPassiveLevel
	}
	rarity := p.Rarity
	if rarity <= 0 {
		rarity = 1
	}
	return float64(level) * p.BonusPerLevel * rarity
}

// PlayerStats are the composed numbers used by movement and combat.
type PlayerStats struct {
	Speed      float64
	MaxHealth  float64
	Armor      float64
	Magnet     float64
	Luck       float64
	Growth     float64
	Vampirism  float64
	DropChance float64

	Weapon WeaponMods
}

// ComposePlayer folds every passive into the base profile. Multiplicative
// bonuses scale the base value, so repeated composition never compounds.
func ComposePlayer(base archetype.PlayerProfile, passives []PassiveLevel) PlayerStats {
	b := make(map[archetype.StatTarget]float64, len(passives))
	for _, p := range passives {
		b[p.Target] += p.Bonus()
	}

	return PlayerStats{
		Speed:      math.Max(0, base.Speed*(1+b[archetype.StatSpeed])),
		MaxHealth:  math.Max(1, base.MaxHealth*(1+b[archetype.StatMaxHealth])),
		Armor:      math.Max(0, base.Armor+b[archetype.StatArmor]),
		Magnet:     math.Max(0, base.Magnet*(1+b[archetype.StatMagnet])),
		Luck:       math.Max(0, base.Luck+b[archetype.StatLuck]),
		Growth:     math.Max(0, b[archetype.StatGrowth]),
		Vampirism:  common.Clamp(b[archetype.StatVampirism], 0, 1),
		DropChance: common.Clamp(base.DropChance+b[archetype.StatDropChance], 0, 1),
		Weapon: WeaponMods{
			Might:             math.Max(0, 1+b[archetype.StatMight]),
			Area:              math.Max(0, 1+b[archetype.StatArea]),
			CooldownReduction: common.Clamp(b[archetype.StatCooldown], 0, maxCooldownReduction),
			Duration:          math.Max(0, 1+b[archetype.StatDuration]),
			Range:             math.Max(0, 1+b[archetype.StatRange]),
			ExtraAmount:       int(math.Floor(math.Max(0, b[archetype.StatAmount]) + 1e-9)),
		},
	}
}
