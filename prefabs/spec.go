package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type EnemiesSpec struct {
	Enemies []EnemySpec `yaml:"enemies"`
}

type EnemySpec struct {
	Tag             string        `yaml:"tag"`
	Class           string        `yaml:"class"`
	Health          float64       `yaml:"health"`
	Damage          float64       `yaml:"damage"`
	Speed           float64       `yaml:"speed"`
	Radius          float64       `yaml:"radius"`
	AttackRange     float64       `yaml:"attack_range"`
	AttackCooldown  float64       `yaml:"attack_cooldown"`
	XP              float64       `yaml:"xp"`
	Ranged          bool          `yaml:"ranged"`
	AreaAttack      bool          `yaml:"area_attack"`
	DamageBonus     float64       `yaml:"damage_bonus"`
	AttackRadius    float64       `yaml:"attack_radius"`
	TelegraphDelay  float64       `yaml:"telegraph_delay"`
	ProjectileSpeed float64       `yaml:"projectile_speed"`
	Script          string        `yaml:"script"`
	SpawnWeight     int           `yaml:"spawn_weight"`
	MinMinute       float64       `yaml:"min_minute"`
	Color           *YAMLColor    `yaml:"color"`
	Specials        []SpecialSpec `yaml:"specials"`
}

type SpecialSpec struct {
	Name             string  `yaml:"name"`
	DamageMultiplier float64 `yaml:"damage_multiplier"`
	Radius           float64 `yaml:"radius"`
	Delay            float64 `yaml:"delay"`
	Target           string  `yaml:"target"`
	PredictionFactor float64 `yaml:"prediction_factor"`
}

type WeaponsSpec struct {
	Weapons []WeaponSpec `yaml:"weapons"`
}

type WeaponSpec struct {
	Tag      string  `yaml:"tag"`
	Kind     string  `yaml:"kind"`
	Damage   float64 `yaml:"damage"`
	Cooldown float64 `yaml:"cooldown"`
	Range    float64 `yaml:"range"`
	Area     float64 `yaml:"area"`
	Duration float64 `yaml:"duration"`
	Speed    float64 `yaml:"speed"`
	Amount   int     `yaml:"amount"`
	Radius   float64 `yaml:"radius"`
}

type PassivesSpec struct {
	Passives []PassiveSpec `yaml:"passives"`
}

type PassiveSpec struct {
	Tag           string  `yaml:"tag"`
	Target        string  `yaml:"target"`
	BonusPerLevel float64 `yaml:"bonus_per_level"`
}

type PlayerSpec struct {
	Speed          float64    `yaml:"speed"`
	MaxHealth      float64    `yaml:"max_health"`
	Radius         float64    `yaml:"radius"`
	Armor          float64    `yaml:"armor"`
	Magnet         float64    `yaml:"magnet"`
	Luck           float64    `yaml:"luck"`
	DropChance     float64    `yaml:"drop_chance"`
	StartingWeapon string     `yaml:"starting_weapon"`
	Color          *YAMLColor `yaml:"color"`
}

// SimulationSpec is the tuning file for a run. Zero values mean "use the
// built-in default".
type SimulationSpec struct {
	MaxDelta       float64        `yaml:"max_delta"`
	PauseOnLevelUp *bool          `yaml:"pause_on_level_up"`
	Seed           int64          `yaml:"seed"`
	RewardChoices  int            `yaml:"reward_choices"`
	Combat         CombatSpec     `yaml:"combat"`
	Spawn          SpawnSpec      `yaml:"spawn"`
	Pickups        PickupSpec     `yaml:"pickups"`
	Obstacles      []ObstacleSpec `yaml:"obstacles"`
}

type CombatSpec struct {
	SpecialCooldown       float64 `yaml:"special_cooldown"`
	ContactDamageFraction float64 `yaml:"contact_damage_fraction"`
	ContactCooldown       float64 `yaml:"contact_cooldown"`
	EnemyProjectileRadius float64 `yaml:"enemy_projectile_radius"`
}

type SpawnSpec struct {
	Enabled     *bool       `yaml:"enabled"`
	Interval    float64     `yaml:"interval"`
	MinInterval float64     `yaml:"min_interval"`
	RingRadius  float64     `yaml:"ring_radius"`
	MaxEnemies  int         `yaml:"max_enemies"`
	Retries     int         `yaml:"retries"`
	Bosses      []BossSpawn `yaml:"bosses"`
}

type BossSpawn struct {
	Minute float64 `yaml:"minute"`
	Tag    string  `yaml:"tag"`
}

type PickupSpec struct {
	PullSpeed float64 `yaml:"pull_speed"`
	Radius    float64 `yaml:"radius"`
	GoldValue float64 `yaml:"gold_value"`
}

type ObstacleSpec struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Radius float64 `yaml:"radius"`
	Solid  bool    `yaml:"solid"`
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
