package system

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/milk9111/hordecore/archetype"
	"github.com/milk9111/hordecore/common"
	"github.com/milk9111/hordecore/ecs"
	"github.com/milk9111/hordecore/ecs/component"
	"github.com/milk9111/hordecore/stats"
)

// seqRand replays fixed values; Intn returns the next value scaled into [0,n).
type seqRand struct {
	values []float64
	i      int
}

func (r *seqRand) Float64() float64 {
	if len(r.values) == 0 {
		return 0
	}
	v := r.values[r.i%len(r.values)]
	r.i++
	return v
}

func (r *seqRand) Intn(n int) int {
	return int(r.Float64() * float64(n))
}

var testKnight = archetype.EnemyProfile{
	Tag:            "basic",
	Class:          archetype.ClassBasic,
	Health:         10,
	Damage:         5,
	Radius:         20,
	AttackRange:    40,
	AttackCooldown: 1,
	XP:             3,
}

func newTestWorld(t *testing.T, player archetype.PlayerProfile, weapons ...archetype.WeaponProfile) (*ecs.World, ecs.Entity) {
	t.Helper()
	if player.MaxHealth == 0 {
		player.MaxHealth = 100
	}
	if player.Radius == 0 {
		player.Radius = 20
	}
	reg := archetype.NewRegistry(player, []archetype.EnemyProfile{testKnight}, weapons, nil)
	w := ecs.NewWorld()
	e, err := NewPlayer(w, reg, common.Vec2{})
	require.NoError(t, err)
	return w, e
}

func addEnemy(t *testing.T, w *ecs.World, p archetype.EnemyProfile, health, damage float64, pos common.Vec2) ecs.Entity {
	t.Helper()
	e, err := NewEnemy(w, p, stats.EnemyStats{Health: health, Damage: damage, Speed: p.Speed}, pos)
	require.NoError(t, err)
	return e
}

// step runs one tick of the given systems and returns the events emitted.
func step(w *ecs.World, dt float64, systems ...ecs.System) []ecs.Event {
	return ecs.NewScheduler(append([]ecs.System{ecs.SystemFunc(SnapshotPositions)}, systems...)...).Tick(w, dt)
}

func eventsOf(events []ecs.Event, typ ecs.EventType) []ecs.Event {
	var out []ecs.Event
	for _, e := range events {
		if e.Type == typ {
			out = append(out, e)
		}
	}
	return out
}

func health(t *testing.T, w *ecs.World, e ecs.Entity) *component.Health {
	t.Helper()
	h, ok := ecs.Get(w, e, component.HealthComponent.Kind())
	require.True(t, ok)
	return h
}
