package component

import (
	"math"

	"github.com/milk9111/hordecore/archetype"
	"github.com/milk9111/hordecore/stats"
)

// Weapon is one weapon owned by the player.
type Weapon struct {
	Tag      string
	Level    int
	Base     archetype.WeaponProfile
	Stats    stats.WeaponStats
	LastFire float64
}

func NewWeapon(base archetype.WeaponProfile, mods stats.WeaponMods) Weapon {
	return Weapon{
		Tag:      base.Tag,
		Base:     base,
		Stats:    stats.ComposeWeapon(base, 0, mods),
		LastFire: math.Inf(-1),
	}
}

// Ready reports whether the cooldown gate has opened at now.
func (w *Weapon) Ready(now float64) bool {
	return CooldownReady(now, w.LastFire, w.Stats.Cooldown)
}

func (w *Weapon) Recompose(mods stats.WeaponMods) {
	w.Stats = stats.ComposeWeapon(w.Base, w.Level, mods)
}
