package sim

import (
	"log/slog"

	"github.com/milk9111/hordecore/archetype"
	"github.com/milk9111/hordecore/ecs"
	"github.com/milk9111/hordecore/ecs/component"
	"github.com/milk9111/hordecore/ecs/system"
	"github.com/milk9111/hordecore/stats"
)

type RewardKind string

const (
	RewardWeapon  RewardKind = "weapon"
	RewardPassive RewardKind = "passive"
)

// Reward acquires or levels one weapon or passive. Cost is paid in gold.
type Reward struct {
	Kind   RewardKind
	Tag    string
	Rarity archetype.Rarity
	Cost   int
}

// rarityOdds are the base chances of each rarity, rarest first. Luck scales them.
var rarityOdds = []struct {
	rarity archetype.Rarity
	chance float64
}{
	{archetype.RarityLegendary, 0.02},
	{archetype.RarityEpic, 0.08},
	{archetype.RarityRare, 0.2},
}

// RollRewards offers up to n distinct upgrades the player can still take.
func (s *Simulation) RollRewards(n int) []Reward {
	p, ok := ecs.Get(s.world, s.player, component.PlayerComponent.Kind())
	if !ok || n <= 0 {
		return nil
	}

	var pool []Reward
	for _, tag := range s.reg.WeaponTags() {
		if w, owned := p.Weapon(tag); owned && w.Level >= stats.MaxWeaponLevel {
			continue
		}
		pool = append(pool, Reward{Kind: RewardWeapon, Tag: tag, Rarity: archetype.RarityCommon})
	}
	for _, tag := range s.reg.PassiveTags() {
		if ps, owned := p.Passive(tag); owned && ps.Rank >= stats.MaxPassiveLevel {
			continue
		}
		pool = append(pool, Reward{Kind: RewardPassive, Tag: tag, Rarity: s.rollRarity(p.Stats.Luck)})
	}

	for i := len(pool) - 1; i > 0; i-- {
		j := s.rng.Intn(i + 1)
		pool[i], pool[j] = pool[j], pool[i]
	}
	if len(pool) > n {
		pool = pool[:n]
	}
	return pool
}

func (s *Simulation) rollRarity(luck float64) archetype.Rarity {
	roll := s.rng.Float64()
	acc := 0.0
	for _, o := range rarityOdds {
		acc += o.chance * (1 + luck)
		if roll < acc {
			return o.rarity
		}
	}
	return archetype.RarityCommon
}

// ApplyReward applies r to the player and recomposes its stats. It returns
// false, changing nothing, when the upgrade is unavailable or unaffordable.
// A successful reward thaws a run paused on level-up.
func (s *Simulation) ApplyReward(r Reward) bool {
	p, ok := ecs.Get(s.world, s.player, component.PlayerComponent.Kind())
	if !ok || p.GameOver {
		return false
	}

	var apply func()
	switch r.Kind {
	case RewardWeapon:
		if w, owned := p.Weapon(r.Tag); owned {
			if w.Level >= stats.MaxWeaponLevel {
				return false
			}
			apply = func() { w.Level++ }
			break
		}
		profile, err := s.reg.LookupWeapon(r.Tag)
		if err != nil {
			slog.Debug("reward rejected", "tag", r.Tag, "err", err)
			return false
		}
		apply = func() { p.Weapons = append(p.Weapons, component.NewWeapon(profile, p.Stats.Weapon)) }

	case RewardPassive:
		if ps, owned := p.Passive(r.Tag); owned {
			if ps.Rank >= stats.MaxPassiveLevel {
				return false
			}
			apply = func() { ps.Rank++ }
			break
		}
		profile, err := s.reg.LookupPassive(r.Tag)
		if err != nil {
			slog.Debug("reward rejected", "tag", r.Tag, "err", err)
			return false
		}
		rarity := r.Rarity
		if rarity == "" {
			rarity = archetype.RarityCommon
		}
		apply = func() {
			p.Passives = append(p.Passives, component.Passive{
				Tag:           profile.Tag,
				Target:        profile.Target,
				Rank:          1,
				BonusPerLevel: profile.BonusPerLevel,
				Rarity:        rarity,
			})
		}

	default:
		return false
	}

	if r.Cost > 0 && !p.Ledger.Spend(r.Cost) {
		return false
	}
	apply()
	system.Recompose(s.world, s.player)
	s.Thaw()
	return true
}
