package stats

import (
	"math"

	"github.com/milk9111/hordecore/archetype"
)

const (
	// DifficultyPerMinute is the difficulty gained per minute of run time.
	DifficultyPerMinute = 0.1

	enemyHealthFactor = 1.1
	enemyDamageFactor = 1.12
	enemySpeedShare   = 0.3
)

// DifficultyMultiplier grows linearly with elapsed run time in seconds.
func DifficultyMultiplier(elapsed float64) float64 {
	if elapsed < 0 {
		elapsed = 0
	}
	return 1 + (elapsed/60)*DifficultyPerMinute
}

// EnemyStats are the spawn-time numbers of an enemy after difficulty scaling.
type EnemyStats struct {
	Health float64
	Damage float64
	Speed  float64
}

// ScaleEnemy applies difficulty d to an archetype's base stats. Results are
// rounded to whole numbers; speed only takes 30% of the difficulty growth.
func ScaleEnemy(p archetype.EnemyProfile, d float64) EnemyStats {
	if d < 1 {
		d = 1
	}
	bonus := 1.0
	if p.DamageBonus > 0 {
		bonus = p.DamageBonus
	}
	s := EnemyStats{
		Health: math.Round(p.Health * d * enemyHealthFactor),
		Damage: math.Round(p.Damage * d * enemyDamageFactor * bonus),
		Speed:  math.Round(p.Speed * (1 + (d-1)*enemySpeedShare)),
	}
	if s.Health < 1 {
		s.Health = 1
	}
	if s.Damage < 0 {
		s.Damage = 0
	}
	if s.Speed < 0 {
		s.Speed = 0
	}
	return s
}
