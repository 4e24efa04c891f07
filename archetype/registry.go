package archetype

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
)

var ErrUnknownTag = errors.New("archetype: unknown tag")

const DefaultEnemyTag = "basic"

var fallbackEnemy = EnemyProfile{
	Tag:            DefaultEnemyTag,
	Class:          ClassBasic,
	Health:         10,
	Damage:         5,
	Speed:          60,
	Radius:         20,
	AttackRange:    24,
	AttackCooldown: 1,
	XP:             1,
	SpawnWeight:    1,
}

var fallbackWeapon = WeaponProfile{
	Tag:      "knife",
	Kind:     WeaponLinear,
	Damage:   5,
	Cooldown: 1,
	Range:    300,
	Speed:    400,
	Amount:   1,
	Radius:   8,
}

var fallbackPlayer = PlayerProfile{
	Speed:          150,
	MaxHealth:      100,
	Radius:         20,
	Magnet:         60,
	StartingWeapon: "whip",
}

// Registry maps archetype tags to profiles. Lookups of unknown tags fall back
// to the weakest profile of the same family instead of failing.
type Registry struct {
	enemies  map[string]EnemyProfile
	weapons  map[string]WeaponProfile
	passives map[string]PassiveProfile
	player   PlayerProfile
	weakest  EnemyProfile
}

func NewRegistry(player PlayerProfile, enemies []EnemyProfile, weapons []WeaponProfile, passives []PassiveProfile) *Registry {
	r := &Registry{
		enemies:  make(map[string]EnemyProfile, len(enemies)),
		weapons:  make(map[string]WeaponProfile, len(weapons)),
		passives: make(map[string]PassiveProfile, len(passives)),
		player:   player,
		weakest:  fallbackEnemy,
	}
	if r.player.MaxHealth <= 0 {
		r.player.MaxHealth = fallbackPlayer.MaxHealth
	}
	if r.player.Radius <= 0 {
		r.player.Radius = fallbackPlayer.Radius
	}
	for _, e := range enemies {
		r.enemies[e.Tag] = e
	}
	for _, w := range weapons {
		r.weapons[w.Tag] = w
	}
	for _, p := range passives {
		r.passives[p.Tag] = p
	}
	if basic, ok := r.enemies[DefaultEnemyTag]; ok {
		r.weakest = basic
	} else {
		first := true
		for _, tag := range r.EnemyTags() {
			e := r.enemies[tag]
			if first || e.Health < r.weakest.Health {
				r.weakest = e
				first = false
			}
		}
	}
	return r
}

// LookupEnemy returns the profile for tag or ErrUnknownTag.
func (r *Registry) LookupEnemy(tag string) (EnemyProfile, error) {
	if r != nil {
		if p, ok := r.enemies[tag]; ok {
			return p, nil
		}
	}
	return EnemyProfile{}, fmt.Errorf("enemy %q: %w", tag, ErrUnknownTag)
}

// Enemy returns the profile for tag, or the weakest profile when tag is unknown.
func (r *Registry) Enemy(tag string) EnemyProfile {
	p, err := r.LookupEnemy(tag)
	if err != nil {
		slog.Debug("archetype fallback", "kind", "enemy", "tag", tag)
		if r == nil {
			return fallbackEnemy
		}
		return r.weakest
	}
	return p
}

func (r *Registry) LookupWeapon(tag string) (WeaponProfile, error) {
	if r != nil {
		if p, ok := r.weapons[tag]; ok {
			return p, nil
		}
	}
	return WeaponProfile{}, fmt.Errorf("weapon %q: %w", tag, ErrUnknownTag)
}

// Weapon returns the profile for tag, or a plain knife when tag is unknown.
func (r *Registry) Weapon(tag string) WeaponProfile {
	p, err := r.LookupWeapon(tag)
	if err != nil {
		slog.Debug("archetype fallback", "kind", "weapon", "tag", tag)
		p = fallbackWeapon
		p.Tag = tag
	}
	return p
}

func (r *Registry) LookupPassive(tag string) (PassiveProfile, error) {
	if r != nil {
		if p, ok := r.passives[tag]; ok {
			return p, nil
		}
	}
	return PassiveProfile{}, fmt.Errorf("passive %q: %w", tag, ErrUnknownTag)
}

// Passive returns the profile for tag. Unknown passives carry no bonus.
func (r *Registry) Passive(tag string) PassiveProfile {
	p, err := r.LookupPassive(tag)
	if err != nil {
		slog.Debug("archetype fallback", "kind", "passive", "tag", tag)
		return PassiveProfile{Tag: tag}
	}
	return p
}

func (r *Registry) Player() PlayerProfile {
	if r == nil {
		return fallbackPlayer
	}
	return r.player
}

func (r *Registry) EnemyTags() []string {
	if r == nil {
		return nil
	}
	return sortedKeys(r.enemies)
}

func (r *Registry) WeaponTags() []string {
	if r == nil {
		return nil
	}
	return sortedKeys(r.weapons)
}

func (r *Registry) PassiveTags() []string {
	if r == nil {
		return nil
	}
	return sortedKeys(r.passives)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
