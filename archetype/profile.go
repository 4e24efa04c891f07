package archetype

// Class groups enemy archetypes by behaviour.
type Class string

const (
	ClassBasic     Class = "basic"
	ClassRanged    Class = "ranged"
	ClassElite     Class = "elite"
	ClassBoss      Class = "boss"
	ClassFinalBoss Class = "final_boss"
)

// TargetMode selects where a special attack lands.
type TargetMode string

const (
	TargetSelf      TargetMode = "self"
	TargetPredicted TargetMode = "predicted"
)

// SpecialPattern is one telegraphed special attack an elite or boss can pick.
type SpecialPattern struct {
	Name             string
	DamageMultiplier float64
	Radius           float64
	Delay            float64
	Target           TargetMode
	// PredictionFactor scales player velocity for predicted targets.
	PredictionFactor float64
}

// EnemyProfile is the unscaled stat block of an enemy archetype.
type EnemyProfile struct {
	Tag            string
	Class          Class
	Health         float64
	Damage         float64
	Speed          float64
	Radius         float64
	AttackRange    float64
	AttackCooldown float64
	XP             float64

	Ranged      bool
	AreaAttack  bool
	HasSpecials bool

	// DamageBonus multiplies scaled damage; 0 means none.
	DamageBonus     float64
	AttackRadius    float64
	TelegraphDelay  float64
	ProjectileSpeed float64

	// Script names a steering script under prefabs/scripts.
	Script      string
	Specials    []SpecialPattern
	SpawnWeight int
	// MinMinute gates ordinary spawns until the run has lasted this long.
	MinMinute float64
}

func (p EnemyProfile) IsElite() bool {
	return p.Class == ClassElite || p.Class == ClassBoss || p.Class == ClassFinalBoss
}

// WeaponKind selects how a weapon delivers damage.
type WeaponKind string

const (
	WeaponSweep  WeaponKind = "sweep"
	WeaponLinear WeaponKind = "linear"
	WeaponOrbit  WeaponKind = "orbit"
	WeaponPulse  WeaponKind = "pulse"
)

type WeaponProfile struct {
	Tag      string
	Kind     WeaponKind
	Damage   float64
	Cooldown float64
	Range    float64
	Area     float64
	Duration float64
	Speed    float64
	Amount   int
	Radius   float64
}

// StatTarget is the single stat a passive modifies.
type StatTarget string

const (
	StatSpeed      StatTarget = "speed"
	StatMaxHealth  StatTarget = "max_health"
	StatArmor      StatTarget = "armor"
	StatMagnet     StatTarget = "magnet"
	StatLuck       StatTarget = "luck"
	StatGrowth     StatTarget = "growth"
	StatVampirism  StatTarget = "vampirism"
	StatDropChance StatTarget = "drop_chance"
	StatMight      StatTarget = "might"
	StatArea       StatTarget = "area"
	StatCooldown   StatTarget = "cooldown"
	StatDuration   StatTarget = "duration"
	StatAmount     StatTarget = "amount"
	StatRange      StatTarget = "range"
)

type PassiveProfile struct {
	Tag           string
	Target        StatTarget
	BonusPerLevel float64
}

type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

var rarityMultipliers = map[Rarity]float64{
	RarityCommon:    1.0,
	RarityRare:      1.25,
	RarityEpic:      1.5,
	RarityLegendary: 2.0,
}

// Multiplier returns the passive bonus multiplier; unknown rarities count as common.
func (r Rarity) Multiplier() float64 {
	if m, ok := rarityMultipliers[r]; ok {
		return m
	}
	return 1.0
}

// PlayerProfile is the player's base stat block before passives.
type PlayerProfile struct {
	Speed          float64
	MaxHealth      float64
	Radius         float64
	Armor          float64
	Magnet         float64
	Luck           float64
	DropChance     float64
	StartingWeapon string
}
