package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/milk9111/hordecore/archetype"
	"github.com/milk9111/hordecore/common"
	"github.com/milk9111/hordecore/ecs"
	"github.com/milk9111/hordecore/ecs/component"
	"github.com/milk9111/hordecore/ecs/system"
	"github.com/milk9111/hordecore/prefabs"
)

func newTestSim(t testing.TB, mutate func(*Config)) *Simulation {
	t.Helper()
	reg, err := prefabs.LoadRegistry()
	require.NoError(t, err)
	cfg, err := LoadConfig()
	require.NoError(t, err)
	cfg.Seed = 11
	if mutate != nil {
		mutate(&cfg)
	}
	s, err := New(cfg, reg, nil)
	require.NoError(t, err)
	return s
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 0.1, cfg.MaxDelta)
	assert.True(t, cfg.PauseOnLevelUp)
	assert.NotEmpty(t, cfg.Obstacles)
	assert.NotEmpty(t, cfg.Spawn.Bosses)
	assert.Equal(t, 0.85, cfg.Tuning.ContactDamageFraction)
}

func TestTickClampsDelta(t *testing.T) {
	s := newTestSim(t, nil)
	s.Tick(1.0)
	assert.InDelta(t, 0.1, s.Time(), 1e-12)

	assert.Nil(t, s.Tick(0))
	assert.Nil(t, s.Tick(-1))
	assert.InDelta(t, 0.1, s.Time(), 1e-12)
}

func TestFreezeSkipsTicks(t *testing.T) {
	s := newTestSim(t, nil)
	s.Freeze()
	assert.Nil(t, s.Tick(0.05))
	assert.Zero(t, s.Time())

	s.Thaw()
	s.Tick(0.05)
	assert.InDelta(t, 0.05, s.Time(), 1e-12)
}

func TestLevelUpPausesUntilRewardApplied(t *testing.T) {
	s := newTestSim(t, func(c *Config) { c.Spawn.Enabled = false })
	system.GrantExperience(s.World(), s.Player(), 30)

	events := s.Tick(0.05)
	var levelUps int
	for _, ev := range events {
		if ev.Type == system.EventLevelUp {
			levelUps++
		}
	}
	require.Equal(t, 1, levelUps)
	require.True(t, s.Frozen())
	offer := s.PendingRewards()
	require.Len(t, offer, s.Config().RewardChoices)

	before := s.Time()
	s.Tick(0.05)
	assert.Equal(t, before, s.Time())

	require.True(t, s.ApplyReward(offer[0]))
	assert.False(t, s.Frozen())
	assert.Empty(t, s.PendingRewards())
}

func TestApplyRewardNeedsGold(t *testing.T) {
	s := newTestSim(t, nil)
	p, _ := ecs.Get(s.World(), s.Player(), component.PlayerComponent.Kind())
	weapons := len(p.Weapons)

	assert.False(t, s.ApplyReward(Reward{Kind: RewardWeapon, Tag: "knife", Cost: 5}))
	assert.Len(t, p.Weapons, weapons)
	assert.Zero(t, p.Ledger.Gold)

	p.Ledger.AddGold(5)
	assert.True(t, s.ApplyReward(Reward{Kind: RewardWeapon, Tag: "knife", Cost: 5}))
	assert.Len(t, p.Weapons, weapons+1)
	assert.Zero(t, p.Ledger.Gold)
}

func TestApplyRewardRecomposes(t *testing.T) {
	s := newTestSim(t, nil)
	p, _ := ecs.Get(s.World(), s.Player(), component.PlayerComponent.Kind())
	h, _ := ecs.Get(s.World(), s.Player(), component.HealthComponent.Kind())
	h.Current = 50

	var tag string
	for _, candidate := range s.Registry().PassiveTags() {
		if s.Registry().Passive(candidate).Target == archetype.StatMaxHealth {
			tag = candidate
		}
	}
	require.NotEmpty(t, tag)
	bonus := s.Registry().Passive(tag).BonusPerLevel

	require.True(t, s.ApplyReward(Reward{Kind: RewardPassive, Tag: tag, Rarity: archetype.RarityCommon}))
	assert.InDelta(t, 100*(1+bonus), h.Max, 1e-9)
	assert.InDelta(t, 50+100*bonus, h.Current, 1e-9)
	assert.Equal(t, p.Stats.MaxHealth, h.Max)

	for i := 1; i < 5; i++ {
		require.True(t, s.ApplyReward(Reward{Kind: RewardPassive, Tag: tag}))
	}
	assert.False(t, s.ApplyReward(Reward{Kind: RewardPassive, Tag: tag}))
	assert.False(t, s.ApplyReward(Reward{Kind: RewardPassive, Tag: "no_such_passive"}))
}

func TestRollRewardsAreDistinct(t *testing.T) {
	s := newTestSim(t, nil)
	offer := s.RollRewards(4)
	require.Len(t, offer, 4)
	seen := map[string]bool{}
	for _, r := range offer {
		key := string(r.Kind) + ":" + r.Tag
		assert.False(t, seen[key], "duplicate %s", key)
		seen[key] = true
	}
}

func TestIntentDiagonal(t *testing.T) {
	cases := []struct {
		name string
		in   Intent
		want common.Vec2
	}{
		{"none", Intent{}, common.Vec2{}},
		{"right", Intent{Right: true}, common.V(1, 0)},
		{"up_left", Intent{Up: true, Left: true}, common.V(-0.707, -0.707)},
		{"down_right", Intent{Down: true, Right: true}, common.V(0.707, 0.707)},
		{"opposed", Intent{Left: true, Right: true}, common.Vec2{}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := c.in.Vector()
			assert.InDelta(t, c.want.X, got.X, 1e-12)
			assert.InDelta(t, c.want.Y, got.Y, 1e-12)
		})
	}
}

func TestSeededRunsAreReproducible(t *testing.T) {
	run := func() Status {
		s := newTestSim(t, func(c *Config) { c.PauseOnLevelUp = false })
		s.SetIntent(Intent{Right: true})
		for i := 0; i < 300; i++ {
			s.Tick(1.0 / 60)
		}
		return s.Status()
	}
	assert.Equal(t, run(), run())
}

func TestHealthStaysInBounds(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		s := newTestSim(t, func(c *Config) {
			c.PauseOnLevelUp = false
			c.Seed = rapid.Int64Range(1, 1<<40).Draw(rt, "seed")
			c.Spawn.Interval = 0.2
		})
		ticks := rapid.IntRange(1, 200).Draw(rt, "ticks")
		for i := 0; i < ticks; i++ {
			s.SetIntent(Intent{
				Up:    rapid.Bool().Draw(rt, "up"),
				Down:  rapid.Bool().Draw(rt, "down"),
				Left:  rapid.Bool().Draw(rt, "left"),
				Right: rapid.Bool().Draw(rt, "right"),
			})
			s.Tick(rapid.Float64Range(0.001, 0.25).Draw(rt, "dt"))

			ecs.ForEach(s.World(), component.HealthComponent.Kind(), func(e ecs.Entity, h *component.Health) {
				if h.Current < 0 || h.Current > h.Max {
					rt.Fatalf("entity %v health %v outside [0, %v]", e, h.Current, h.Max)
				}
			})
		}
	})
}
