package progression

import (
	"math"

	"github.com/milk9111/hordecore/archetype"
)

const (
	baseThreshold   = 20
	thresholdGrowth = 1.15

	// SpeedPerLevel and HealthPerLevel compound onto the base profile at every level-up.
	SpeedPerLevel  = 1.01
	HealthPerLevel = 1.02
)

// Threshold is the experience needed to leave level.
func Threshold(level int) float64 {
	if level < 1 {
		level = 1
	}
	return math.Round(baseThreshold * math.Pow(thresholdGrowth, float64(level-1)))
}

// Ledger tracks the player's experience, level and gold.
type Ledger struct {
	Level      int
	Experience float64
	Threshold  float64
	Gold       int
}

func NewLedger() Ledger {
	return Ledger{Level: 1, Threshold: Threshold(1)}
}

// Gain adds xp scaled by growth and returns how many levels were gained.
// Overflow carries into the next level.
func (l *Ledger) Gain(xp, growth float64) int {
	if l.Level < 1 {
		*l = NewLedger()
	}
	if xp <= 0 {
		return 0
	}
	if growth < 0 {
		growth = 0
	}
	l.Experience += math.Round(xp * (1 + growth))

	levels := 0
	for l.Threshold > 0 && l.Experience >= l.Threshold {
		l.Experience -= l.Threshold
		l.Level++
		l.Threshold = Threshold(l.Level)
		levels++
	}
	return levels
}

func (l *Ledger) AddGold(amount int) {
	if amount > 0 {
		l.Gold += amount
	}
}

// Spend deducts cost and reports success. Insufficient gold leaves the ledger unchanged.
func (l *Ledger) Spend(cost int) bool {
	if cost < 0 || cost > l.Gold {
		return false
	}
	l.Gold -= cost
	return true
}

// Grow applies the per-level base bumps for levels level-ups.
func Grow(base archetype.PlayerProfile, levels int) archetype.PlayerProfile {
	for i := 0; i < levels; i++ {
		base.Speed *= SpeedPerLevel
		base.MaxHealth *= HealthPerLevel
	}
	return base
}
