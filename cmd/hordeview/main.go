package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/hordecore/logging"
	"github.com/milk9111/hordecore/prefabs"
	"github.com/milk9111/hordecore/sim"
)

func main() {
	seed := flag.Int64("seed", 0, "random seed (0 picks one from the clock)")
	noPause := flag.Bool("nopause", false, "do not pause for upgrades on level-up")
	watch := flag.Bool("watch", true, "hot-reload prefabs/ and prefabs/scripts/ from disk")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	logging.Setup(os.Stderr)

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

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
	if *noPause {
		cfg.PauseOnLevelUp = false
	}

	s, err := sim.New(cfg, reg, nil)
	if err != nil {
		slog.Error("new simulation", "err", err)
		os.Exit(1)
	}

	var watcher *prefabs.Watcher
	if *watch {
		watcher, err = prefabs.NewWatcher("prefabs", "prefabs/scripts")
		if err != nil {
			// Running outside the repo root: embedded prefabs still work.
			slog.Warn("prefab hot reload disabled", "err", err)
			watcher = nil
		} else {
			defer watcher.Close()
		}
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("hordeview")

	if err := ebiten.RunGame(NewGame(s, watcher)); err != nil {
		slog.Error("run game", "err", err)
		os.Exit(1)
	}
}
