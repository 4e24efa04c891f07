package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/milk9111/hordecore/ecs/system"
	"github.com/milk9111/hordecore/logging"
	"github.com/milk9111/hordecore/prefabs"
	"github.com/milk9111/hordecore/sim"
)

func main() {
	seconds := flag.Float64("seconds", 300, "simulated seconds to run")
	seed := flag.Int64("seed", 1, "random seed (0 picks one from the clock)")
	fps := flag.Int("fps", 60, "ticks per simulated second")
	wander := flag.Bool("wander", true, "move the player in a slow square instead of standing still")
	flag.Parse()

	logging.Setup(os.Stderr)

	reg, err := prefabs.LoadRegistry()
	if err != nil {
		slog.Error("load registry", "err", err)
		os.Exit(1)
	}
	cfg, err := sim.LoadConfig()
	if err != nil {
		slog.Error("load config", "err", err)
		os.Exit(1)
	}
	cfg.Seed = *seed

	s, err := sim.New(cfg, reg, nil)
	if err != nil {
		slog.Error("new simulation", "err", err)
		os.Exit(1)
	}

	dt := 1.0 / float64(max(*fps, 1))
	counts := map[string]int{}
	for s.Time() < *seconds && !s.GameOver() {
		if *wander {
			s.SetIntent(squareIntent(s.Time()))
		}
		for _, ev := range s.Tick(dt) {
			counts[string(ev.Type)]++
		}
		// No one is watching: take the first offer so the run keeps going.
		if s.Frozen() {
			if offer := s.PendingRewards(); len(offer) > 0 && s.ApplyReward(offer[0]) {
				slog.Debug("reward taken", "run", s.RunID, "kind", offer[0].Kind, "tag", offer[0].Tag, "rarity", offer[0].Rarity)
			} else {
				s.Thaw()
			}
		}
	}

	st := s.Status()
	slog.Info("run finished",
		"run", s.RunID,
		"seed", s.Config().Seed,
		"time", st.Time,
		"level", st.Level,
		"kills", st.Kills,
		"gold", st.Gold,
		"health", st.Health,
		"enemies", st.Enemies,
		"game_over", st.GameOver,
		"damage_events", counts[string(system.EventDamageDealt)],
		"telegraphs", counts[string(system.EventTelegraphResolved)],
	)
}

// squareIntent walks right, down, left and up for ten seconds each.
func squareIntent(t float64) sim.Intent {
	switch int(t/10) % 4 {
	case 0:
		return sim.Intent{Right: true}
	case 1:
		return sim.Intent{Down: true}
	case 2:
		return sim.Intent{Left: true}
	}
	return sim.Intent{Up: true}
}
