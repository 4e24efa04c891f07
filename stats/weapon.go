package stats

import (
	"math"

	"github.com/milk9111/hordecore/archetype"
)

const (
	MaxWeaponLevel = 8
	// MinCooldown is the floor for any composed cooldown, in seconds.
	MinCooldown = 0.05

	maxLevelAmount = 5
)

// WeaponMods are the player-wide weapon modifiers contributed by passives.
type WeaponMods struct {
	Might             float64
	Area              float64
	CooldownReduction float64
	Duration          float64
	Range             float64
	ExtraAmount       int
}

// NeutralMods leaves weapon stats unchanged.
func NeutralMods() WeaponMods {
	return WeaponMods{Might: 1, Area: 1, Duration: 1, Range: 1}
}

// WeaponStats are the runtime numbers of one owned weapon.
type WeaponStats struct {
	Damage   float64
	Cooldown float64
	Range    float64
	Area     float64
	Duration float64
	Speed    float64
	Radius   float64
	Amount   int
}

// levelStep mutates stats for one level gained.
type levelStep func(s *WeaponStats)

var levelTable = [MaxWeaponLevel]levelStep{
	func(s *WeaponStats) { s.Damage *= 1.2 },
	func(s *WeaponStats) { s.Cooldown *= 0.9 },
	func(s *WeaponStats) { s.Range *= 1.15 },
	func(s *WeaponStats) { s.Damage *= 1.2 },
	func(s *WeaponStats) { s.Amount = min(s.Amount+1, maxLevelAmount) },
	func(s *WeaponStats) { s.Cooldown *= 0.9 },
	func(s *WeaponStats) { s.Damage *= 1.3 },
	func(s *WeaponStats) {
		s.Damage *= 1.5
		s.Cooldown *= 0.8
	},
}

// LevelStats applies the level table to base once per level, compounding.
func LevelStats(base archetype.WeaponProfile, level int) WeaponStats {
	s := WeaponStats{
		Damage:   base.Damage,
		Cooldown: base.Cooldown,
		Range:    base.Range,
		Area:     base.Area,
		Duration: base.Duration,
		Speed:    base.Speed,
		Radius:   base.Radius,
		Amount:   max(base.Amount, 1),
	}
	if level > MaxWeaponLevel {
		level = MaxWeaponLevel
	}
	for i := 0; i < level; i++ {
		levelTable[i](&s)
	}
	return s
}

// ComposeWeapon layers passive modifiers on top of the per-level stats.
func ComposeWeapon(base archetype.WeaponProfile, level int, mods WeaponMods) WeaponStats {
	s := LevelStats(base, level)
	s.Damage = math.Max(0, s.Damage*mods.Might)
	s.Cooldown = math.Max(MinCooldown, s.Cooldown*(1-mods.CooldownReduction))
	s.Range *= mods.Range
	s.Area *= mods.Area
	s.Duration *= mods.Duration
	s.Amount += mods.ExtraAmount
	return s
}
