package prefabs

import (
	"fmt"
	"image/color"

	"github.com/milk9111/hordecore/archetype"
)

// LoadRegistry builds the archetype registry from enemies.yaml,
// weapons.yaml, passives.yaml and player.yaml.
func LoadRegistry() (*archetype.Registry, error) {
	enemies, err := LoadSpec[EnemiesSpec]("enemies.yaml")
	if err != nil {
		return nil, err
	}
	weapons, err := LoadSpec[WeaponsSpec]("weapons.yaml")
	if err != nil {
		return nil, err
	}
	passives, err := LoadSpec[PassivesSpec]("passives.yaml")
	if err != nil {
		return nil, err
	}
	player, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}

	ep := make([]archetype.EnemyProfile, 0, len(enemies.Enemies))
	for _, e := range enemies.Enemies {
		p, err := e.Profile()
		if err != nil {
			return nil, fmt.Errorf("prefabs: enemies.yaml: %w", err)
		}
		ep = append(ep, p)
	}
	wp := make([]archetype.WeaponProfile, 0, len(weapons.Weapons))
	for _, w := range weapons.Weapons {
		p, err := w.Profile()
		if err != nil {
			return nil, fmt.Errorf("prefabs: weapons.yaml: %w", err)
		}
		wp = append(wp, p)
	}
	pp := make([]archetype.PassiveProfile, 0, len(passives.Passives))
	for _, p := range passives.Passives {
		pp = append(pp, archetype.PassiveProfile{
			Tag:           p.Tag,
			Target:        archetype.StatTarget(p.Target),
			BonusPerLevel: p.BonusPerLevel,
		})
	}

	return archetype.NewRegistry(player.Profile(), ep, wp, pp), nil
}

func (s EnemySpec) Profile() (archetype.EnemyProfile, error) {
	if s.Tag == "" {
		return archetype.EnemyProfile{}, fmt.Errorf("enemy without tag")
	}
	class := archetype.Class(s.Class)
	switch class {
	case archetype.ClassBasic, archetype.ClassRanged, archetype.ClassElite, archetype.ClassBoss, archetype.ClassFinalBoss:
	case "":
		class = archetype.ClassBasic
	default:
		return archetype.EnemyProfile{}, fmt.Errorf("enemy %q: unknown class %q", s.Tag, s.Class)
	}

	specials := make([]archetype.SpecialPattern, 0, len(s.Specials))
	for _, sp := range s.Specials {
		target := archetype.TargetMode(sp.Target)
		if target != archetype.TargetPredicted {
			target = archetype.TargetSelf
		}
		specials = append(specials, archetype.SpecialPattern{
			Name:             sp.Name,
			DamageMultiplier: sp.DamageMultiplier,
			Radius:           sp.Radius,
			Delay:            sp.Delay,
			Target:           target,
			PredictionFactor: sp.PredictionFactor,
		})
	}

	return archetype.EnemyProfile{
		Tag:             s.Tag,
		Class:           class,
		Health:          s.Health,
		Damage:          s.Damage,
		Speed:           s.Speed,
		Radius:          s.Radius,
		AttackRange:     s.AttackRange,
		AttackCooldown:  s.AttackCooldown,
		XP:              s.XP,
		Ranged:          s.Ranged || class == archetype.ClassRanged,
		AreaAttack:      s.AreaAttack,
		HasSpecials:     len(specials) > 0,
		DamageBonus:     s.DamageBonus,
		AttackRadius:    s.AttackRadius,
		TelegraphDelay:  s.TelegraphDelay,
		ProjectileSpeed: s.ProjectileSpeed,
		Script:          s.Script,
		Specials:        specials,
		SpawnWeight:     s.SpawnWeight,
		MinMinute:       s.MinMinute,
	}, nil
}

func (s WeaponSpec) Profile() (archetype.WeaponProfile, error) {
	kind := archetype.WeaponKind(s.Kind)
	switch kind {
	case archetype.WeaponSweep, archetype.WeaponLinear, archetype.WeaponOrbit, archetype.WeaponPulse:
	default:
		return archetype.WeaponProfile{}, fmt.Errorf("weapon %q: unknown kind %q", s.Tag, s.Kind)
	}
	return archetype.WeaponProfile{
		Tag:      s.Tag,
		Kind:     kind,
		Damage:   s.Damage,
		Cooldown: s.Cooldown,
		Range:    s.Range,
		Area:     s.Area,
		Duration: s.Duration,
		Speed:    s.Speed,
		Amount:   s.Amount,
		Radius:   s.Radius,
	}, nil
}

func (s PlayerSpec) Profile() archetype.PlayerProfile {
	return archetype.PlayerProfile{
		Speed:          s.Speed,
		MaxHealth:      s.MaxHealth,
		Radius:         s.Radius,
		Armor:          s.Armor,
		Magnet:         s.Magnet,
		Luck:           s.Luck,
		DropChance:     s.DropChance,
		StartingWeapon: s.StartingWeapon,
	}
}

// Palette maps enemy tags to their display colors, plus "player".
func Palette() map[string]color.Color {
	out := map[string]color.Color{}
	if enemies, err := LoadSpec[EnemiesSpec]("enemies.yaml"); err == nil {
		for _, e := range enemies.Enemies {
			if e.Color != nil {
				out[e.Tag] = e.Color.Color
			}
		}
	}
	if player, err := LoadSpec[PlayerSpec]("player.yaml"); err == nil && player.Color != nil {
		out["player"] = player.Color.Color
	}
	return out
}
