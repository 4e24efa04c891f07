package component

import "github.com/milk9111/hordecore/stats"

// Health is a reusable health component for any entity that can take damage.
type Health struct {
	Max     float64
	Current float64
}

func NewHealth(max float64) *Health {
	if max <= 0 {
		max = 1
	}
	return &Health{Max: max, Current: max}
}

// IsAlive reports whether the entity is alive.
func (h *Health) IsAlive() bool {
	return h != nil && h.Current > 0
}

// ApplyDamage subtracts amount and returns what was actually removed.
func (h *Health) ApplyDamage(amount float64) float64 {
	if h == nil || amount <= 0 || h.Current <= 0 {
		return 0
	}
	applied := amount
	if applied > h.Current {
		applied = h.Current
	}
	h.Current -= applied
	return applied
}

// Heal restores health up to Max and returns what was restored.
func (h *Health) Heal(amount float64) float64 {
	if h == nil || amount <= 0 || h.Current <= 0 {
		return 0
	}
	before := h.Current
	h.Current = min(h.Max, h.Current+amount)
	return h.Current - before
}

// SetMax changes the maximum and carries current health across the change.
func (h *Health) SetMax(v float64) {
	if h == nil || v <= 0 {
		return
	}
	h.Current = stats.RescaleHealth(h.Current, h.Max, v)
	h.Max = v
}

// Fill restores health to the maximum.
func (h *Health) Fill() {
	if h != nil {
		h.Current = h.Max
	}
}

func (h *Health) Fraction() float64 {
	if h == nil || h.Max <= 0 {
		return 0
	}
	return h.Current / h.Max
}

var HealthComponent = NewComponent[Health]("health")
