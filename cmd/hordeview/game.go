package main

import (
	"image/color"
	"log/slog"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/hordecore/prefabs"
	"github.com/milk9111/hordecore/sim"
)

const (
	baseWidth  = 1280
	baseHeight = 720
)

type Game struct {
	sim     *sim.Simulation
	watcher *prefabs.Watcher
	palette map[string]color.Color
	face    text.Face

	// paused is the user's own pause, separate from the level-up freeze.
	paused  bool
	debug   bool
	offer   []sim.Reward
	overlay *ebitenui.UI
}

func NewGame(s *sim.Simulation, watcher *prefabs.Watcher) *Game {
	return &Game{
		sim:     s,
		watcher: watcher,
		palette: prefabs.Palette(),
		face:    text.NewGoXFace(basicfont.Face7x13),
	}
}

func (g *Game) Update() error {
	g.reload()

	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.debug = !g.debug
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) && len(g.sim.PendingRewards()) == 0 {
		g.paused = !g.paused
		if g.paused {
			g.sim.Freeze()
		} else {
			g.sim.Thaw()
		}
	}

	if offer := g.sim.PendingRewards(); g.sim.Frozen() && len(offer) > 0 {
		if !sameOffer(offer, g.offer) {
			g.offer = offer
			g.overlay = NewUpgradeUI(g, offer)
		}
		g.overlay.Update()
		return nil
	}
	g.offer, g.overlay = nil, nil

	g.sim.SetIntent(sim.Intent{
		Up:    ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:  ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Left:  ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right: ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
	})
	g.sim.Tick(1 / float64(ebiten.TPS()))
	return nil
}

// reload applies prefab edits reported by the watcher between ticks.
func (g *Game) reload() {
	if g.watcher == nil {
		return
	}
	changes := g.watcher.Poll()
	if len(changes) == 0 {
		return
	}
	specs := false
	for _, c := range changes {
		if !c.Script {
			specs = true
		}
	}
	if !specs {
		g.sim.ReloadScripts()
		slog.Info("steering scripts reloaded", "files", len(changes))
		return
	}
	reg, err := prefabs.LoadRegistry()
	if err != nil {
		slog.Warn("prefab reload failed", "err", err)
		return
	}
	g.sim.SetRegistry(reg)
	g.palette = prefabs.Palette()
	slog.Info("prefabs reloaded", "files", len(changes))
}

// choose applies an upgrade picked in the overlay.
func (g *Game) choose(r sim.Reward) {
	if !g.sim.ApplyReward(r) {
		slog.Warn("reward not applied", "kind", r.Kind, "tag", r.Tag)
		return
	}
	g.offer, g.overlay = nil, nil
}

func (g *Game) skip() {
	g.sim.Thaw()
	g.offer, g.overlay = nil, nil
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}

func sameOffer(a, b []sim.Reward) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
