package component

import (
	"github.com/milk9111/hordecore/archetype"
	"github.com/milk9111/hordecore/stats"
)

// Passive is a stat-boosting upgrade. Rarity is fixed when acquired.
type Passive struct {
	Tag           string
	Target        archetype.StatTarget
	Rank          int
	BonusPerLevel float64
	Rarity        archetype.Rarity
}

func (p Passive) Level() stats.PassiveLevel {
	return stats.PassiveLevel{
		Target:        p.Target,
		Level:         p.Rank,
		BonusPerLevel: p.BonusPerLevel,
		Rarity:        p.Rarity.Multiplier(),
	}
}
