package system

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/hordecore/archetype"
	"github.com/milk9111/hordecore/common"
	"github.com/milk9111/hordecore/ecs"
	"github.com/milk9111/hordecore/ecs/component"
)

func TestMeleeEnemyAttacksOnCooldown(t *testing.T) {
	tests := []struct {
		name string
		dt   float64
	}{
		{"quarter_second", 0.25},
		{"tenth_second", 0.1},
		{"sixty_fps", 1.0 / 60},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, player := newTestWorld(t, archetype.PlayerProfile{})
			addEnemy(t, w, testKnight, 10, 5, common.V(30, 0))
			ai := NewAISystem(&seqRand{}, DefaultTuning())

			var times []float64
			for w.Clock().Now <= 1.01 {
				now := w.Clock().Now
				for _, ev := range eventsOf(step(w, tt.dt, ai), EventDamageDealt) {
					require.Equal(t, player, ev.Entity)
					assert.Equal(t, 5.0, ev.Data.(DamageDealt).Amount)
					times = append(times, now)
				}
			}
			require.Len(t, times, 2, "hits at %v", times)
			assert.Equal(t, 0.0, times[0])
			assert.InDelta(t, 1.0, times[1], 1e-9)
			assert.Equal(t, 90.0, health(t, w, player).Current)
		})
	}
}

func TestEnemyStateTracksRange(t *testing.T) {
	w, _ := newTestWorld(t, archetype.PlayerProfile{})
	near := addEnemy(t, w, testKnight, 10, 5, common.V(30, 0))
	far := addEnemy(t, w, testKnight, 10, 5, common.V(300, 0))

	step(w, 0.1, NewAISystem(&seqRand{}, DefaultTuning()))

	st, _ := ecs.Get(w, near, component.AIStateComponent.Kind())
	assert.Equal(t, component.StateMeleeAttacking, st.Current)
	st, _ = ecs.Get(w, far, component.AIStateComponent.Kind())
	assert.Equal(t, component.StateSeeking, st.Current)
}

func TestRangedEnemyFiresHostileProjectile(t *testing.T) {
	w, player := newTestWorld(t, archetype.PlayerProfile{})
	archer := testKnight
	archer.Tag = "ranged"
	archer.Ranged = true
	archer.AttackRange = 200
	archer.ProjectileSpeed = 250
	addEnemy(t, w, archer, 10, 7, common.V(100, 0))

	events := step(w, 0.1, NewAISystem(&seqRand{}, DefaultTuning()), NewProjectileSystem(nil, nil))
	require.Len(t, eventsOf(events, EventProjectileSpawned), 1)
	assert.Empty(t, eventsOf(events, EventDamageDealt))

	var hit []ecs.Event
	for i := 0; i < 5 && len(hit) == 0; i++ {
		hit = eventsOf(step(w, 0.1, NewProjectileSystem(nil, nil)), EventDamageDealt)
	}
	require.Len(t, hit, 1)
	assert.Equal(t, player, hit[0].Entity)
	assert.Equal(t, 93.0, health(t, w, player).Current)
}

func TestSpecialSelectionIsSeededAndUniform(t *testing.T) {
	for _, n := range []int{3, 5} {
		draw := func() []int {
			rng := rand.New(rand.NewSource(7))
			out := make([]int, 1000)
			for i := range out {
				out[i] = SelectSpecial(rng, n)
			}
			return out
		}
		first, second := draw(), draw()
		require.Equal(t, first, second)

		counts := make([]int, n)
		for _, v := range first {
			require.GreaterOrEqual(t, v, 0)
			require.Less(t, v, n)
			counts[v]++
		}
		expected := 1000 / float64(n)
		chi := 0.0
		for _, c := range counts {
			chi += (float64(c) - expected) * (float64(c) - expected) / expected
		}
		// 99.9th percentile of chi-square with n-1 degrees of freedom.
		critical := map[int]float64{3: 13.82, 5: 18.47}[n]
		assert.Less(t, chi, critical, "counts %v", counts)
	}
}

func TestSpecialGateSchedulesTelegraph(t *testing.T) {
	w, _ := newTestWorld(t, archetype.PlayerProfile{})
	boss := testKnight
	boss.Tag = "boss"
	boss.Class = archetype.ClassBoss
	boss.HasSpecials = true
	boss.AreaAttack = true
	boss.Specials = []archetype.SpecialPattern{
		{Name: "ground_pound", DamageMultiplier: 2, Radius: 100, Delay: 1, Target: archetype.TargetSelf},
		{Name: "meteor", DamageMultiplier: 3, Radius: 60, Delay: 1, Target: archetype.TargetPredicted, PredictionFactor: 1.5},
	}
	e := addEnemy(t, w, boss, 100, 10, common.V(30, 0))
	ai := NewAISystem(&seqRand{values: []float64{0.9}}, DefaultTuning())

	events := step(w, 0.5, ai)
	scheduled := eventsOf(events, EventTelegraphScheduled)
	require.Len(t, scheduled, 1)
	tg := scheduled[0].Data.(TelegraphScheduled)
	assert.Equal(t, "meteor", tg.Pattern)
	assert.Equal(t, 30.0, tg.Damage)
	st, _ := ecs.Get(w, e, component.AIStateComponent.Kind())
	assert.Equal(t, component.StateSpecialAttacking, st.Current)

	// The ordinary attack follows once the special gate is closed.
	scheduled = eventsOf(step(w, 0.5, ai), EventTelegraphScheduled)
	require.Len(t, scheduled, 1)
	assert.Equal(t, ordinaryTelegraphPattern, scheduled[0].Data.(TelegraphScheduled).Pattern)
	assert.Equal(t, component.StateTelegraphIndicating, st.Current)
}

func TestSpecialTargets(t *testing.T) {
	tests := []struct {
		name    string
		draw    float64
		pattern string
		want    func(player, boss common.Vec2) common.Vec2
	}{
		{"self", 0.1, "ground_pound", func(_, boss common.Vec2) common.Vec2 { return boss }},
		{"predicted", 0.9, "meteor", func(player, _ common.Vec2) common.Vec2 {
			// Player moved 10 units in a 0.5s tick: velocity 20, factor 1.5.
			return player.Add(common.V(30, 0))
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, player := newTestWorld(t, archetype.PlayerProfile{})
			boss := testKnight
			boss.Tag = "boss"
			boss.Class = archetype.ClassBoss
			boss.HasSpecials = true
			boss.Specials = []archetype.SpecialPattern{
				{Name: "ground_pound", DamageMultiplier: 2, Radius: 100, Delay: 1, Target: archetype.TargetSelf},
				{Name: "meteor", DamageMultiplier: 3, Radius: 60, Delay: 1, Target: archetype.TargetPredicted, PredictionFactor: 1.5},
			}
			bossPos := common.V(30, 20)
			addEnemy(t, w, boss, 100, 10, bossPos)

			walk := ecs.SystemFunc(func(w *ecs.World) {
				tr, _ := ecs.Get(w, player, component.TransformComponent.Kind())
				tr.Position = tr.Position.Add(common.V(10, 0))
			})
			events := step(w, 0.5, walk, NewAISystem(&seqRand{values: []float64{tt.draw}}, DefaultTuning()))

			scheduled := eventsOf(events, EventTelegraphScheduled)
			require.Len(t, scheduled, 1)
			tg := scheduled[0].Data.(TelegraphScheduled)
			assert.Equal(t, tt.pattern, tg.Pattern)
			want := tt.want(common.V(10, 0), bossPos)
			assert.InDelta(t, want.X, tg.Target.X, 1e-9)
			assert.InDelta(t, want.Y, tg.Target.Y, 1e-9)
		})
	}
}

func TestTelegraphResolvesAfterDelay(t *testing.T) {
	w, player := newTestWorld(t, archetype.PlayerProfile{})
	source := addEnemy(t, w, testKnight, 10, 5, common.V(30, 0))
	bystander := addEnemy(t, w, testKnight, 10, 5, common.V(-10, 0))
	scheduleTelegraph(w, source, component.Telegraph{
		Damage:  12,
		Radius:  50,
		Delay:   0.5,
		Pattern: "strike",
		Faction: component.FactionEnemy,
	}, common.Vec2{})
	ecs.DestroyEntity(w, source)
	w.Events().Drain()

	sys := NewTelegraphSystem(nil)
	assert.Empty(t, eventsOf(step(w, 0.25, sys), EventTelegraphResolved))
	assert.Empty(t, eventsOf(step(w, 0.25, sys), EventTelegraphResolved))

	events := step(w, 0.25, sys)
	resolved := eventsOf(events, EventTelegraphResolved)
	require.Len(t, resolved, 1)
	assert.Equal(t, 1, resolved[0].Data.(TelegraphResolved).Hits)
	assert.Equal(t, 88.0, health(t, w, player).Current)
	assert.Equal(t, 10.0, health(t, w, bystander).Current)
	assert.Zero(t, ecs.Count(w, component.TelegraphComponent.Kind()))
}

func TestVampirismHealsFractionOfDamage(t *testing.T) {
	w, player := newTestWorld(t, archetype.PlayerProfile{})
	enemy := addEnemy(t, w, testKnight, 50, 5, common.V(30, 0))
	p, _ := ecs.Get(w, player, component.PlayerComponent.Kind())
	p.Stats.Vampirism = 0.5
	h := health(t, w, player)
	h.Current = 50

	applied := dealDamage(w, &seqRand{values: []float64{0.2, 0.5}}, player, enemy, 20, "whip")
	assert.Equal(t, 20.0, applied)
	assert.InDelta(t, 51.5, h.Current, 1e-9)

	applied = dealDamage(w, &seqRand{values: []float64{0.9}}, player, enemy, 20, "whip")
	assert.Equal(t, 20.0, applied)
	assert.InDelta(t, 51.5, h.Current, 1e-9)
}

func TestArmorReducesIncomingDamage(t *testing.T) {
	w, player := newTestWorld(t, archetype.PlayerProfile{Armor: 2})
	enemy := addEnemy(t, w, testKnight, 10, 5, common.V(30, 0))

	assert.Equal(t, 3.0, dealDamage(w, nil, enemy, player, 5, "basic"))
	assert.Zero(t, dealDamage(w, nil, enemy, player, 1, "basic"))
	assert.Equal(t, 97.0, health(t, w, player).Current)
}

func TestContactDamageRespectsCooldown(t *testing.T) {
	w, player := newTestWorld(t, archetype.PlayerProfile{})
	runner := testKnight
	runner.Speed = 60
	runner.AttackRange = 0
	addEnemy(t, w, runner, 10, 5, common.V(17, 0))
	mv := NewMovementSystem(nil, nil, DefaultTuning())

	var times []float64
	for w.Clock().Now <= 0.5 {
		now := w.Clock().Now
		for _, ev := range eventsOf(step(w, 0.125, mv), EventDamageDealt) {
			assert.Equal(t, "contact", ev.Data.(DamageDealt).Source)
			assert.InDelta(t, 4.25, ev.Data.(DamageDealt).Amount, 1e-9)
			times = append(times, now)
		}
	}
	assert.Equal(t, []float64{0, 0.5}, times)
	assert.InDelta(t, 91.5, health(t, w, player).Current, 1e-9)
}

func TestDeadEnemiesDropLootAndCountKills(t *testing.T) {
	w, player := newTestWorld(t, archetype.PlayerProfile{DropChance: 0.5})
	e := addEnemy(t, w, testKnight, 10, 5, common.V(200, 0))
	health(t, w, e).ApplyDamage(100)

	events := step(w, 0.1, NewDeathSystem(&seqRand{values: []float64{0.1}}, DefaultTuning()))
	died := eventsOf(events, EventActorDied)
	require.Len(t, died, 1)
	assert.Equal(t, 3.0, died[0].Data.(ActorDied).XP)
	assert.False(t, ecs.IsAlive(w, e))

	p, _ := ecs.Get(w, player, component.PlayerComponent.Kind())
	assert.Equal(t, 1, p.Kills)
	assert.Equal(t, 2, ecs.Count(w, component.PickupComponent.Kind()))
}

func TestPlayerDeathEndsRun(t *testing.T) {
	w, player := newTestWorld(t, archetype.PlayerProfile{})
	health(t, w, player).ApplyDamage(1000)

	events := step(w, 0.1, NewDeathSystem(nil, DefaultTuning()))
	require.Len(t, eventsOf(events, EventGameOver), 1)
	assert.True(t, ecs.IsAlive(w, player))

	events = step(w, 0.1, NewDeathSystem(nil, DefaultTuning()))
	assert.Empty(t, eventsOf(events, EventGameOver))
}
