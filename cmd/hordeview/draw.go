package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/milk9111/hordecore/archetype"
	"github.com/milk9111/hordecore/collision"
	"github.com/milk9111/hordecore/common"
	"github.com/milk9111/hordecore/ecs"
	"github.com/milk9111/hordecore/ecs/component"
)

var (
	backgroundColor = color.RGBA{24, 24, 30, 255}
	solidColor      = color.RGBA{70, 70, 84, 255}
	softColor       = color.RGBA{60, 90, 60, 255}
	telegraphColor  = color.NRGBA{230, 60, 50, 255}
	xpColor         = color.RGBA{80, 200, 230, 255}
	goldColor       = color.RGBA{240, 210, 80, 255}
	playerShotColor = color.RGBA{250, 250, 220, 255}
	enemyShotColor  = color.RGBA{255, 120, 60, 255}
	auraColor       = color.NRGBA{120, 220, 120, 60}
	fallbackEnemy   = color.RGBA{220, 80, 80, 255}
	fallbackPlayer  = color.RGBA{90, 160, 255, 255}
)

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	w := g.sim.World()

	center := common.V(baseWidth/2, baseHeight/2)
	if t, ok := ecs.Get(w, g.sim.Player(), component.TransformComponent.Kind()); ok {
		center = t.Position
	}
	cam := common.V(baseWidth/2, baseHeight/2).Sub(center)
	at := func(p common.Vec2) (float32, float32) {
		q := p.Add(cam)
		return float32(q.X), float32(q.Y)
	}

	if sg, ok := g.sim.Geometry().(*collision.SpaceGeometry); ok {
		for _, o := range sg.Obstacles() {
			x, y := at(o.Position)
			if o.Solid {
				vector.FillCircle(screen, x, y, float32(o.Radius/2), solidColor, true)
			} else {
				vector.StrokeCircle(screen, x, y, float32(o.Radius/2), 2, softColor, true)
			}
		}
	}

	ecs.ForEach2(w, component.TelegraphComponent.Kind(), component.TransformComponent.Kind(),
		func(_ ecs.Entity, tg *component.Telegraph, t *component.Transform) {
			x, y := at(t.Position)
			fill := telegraphColor
			if tg.Delay > 0 {
				fill.A = uint8(40 + 120*(1-tg.Remaining/tg.Delay))
			}
			vector.FillCircle(screen, x, y, float32(tg.Radius), fill, true)
			vector.StrokeCircle(screen, x, y, float32(tg.Radius), 2, telegraphColor, true)
		})

	ecs.ForEach2(w, component.PickupComponent.Kind(), component.TransformComponent.Kind(),
		func(_ ecs.Entity, p *component.Pickup, t *component.Transform) {
			x, y := at(t.Position)
			clr := xpColor
			if p.Kind == component.PickupGold {
				clr = goldColor
			}
			vector.FillCircle(screen, x, y, float32(p.Radius/2), clr, true)
		})

	ecs.ForEach3(w, component.ActorComponent.Kind(), component.TransformComponent.Kind(), component.HealthComponent.Kind(),
		func(e ecs.Entity, a *component.Actor, t *component.Transform, h *component.Health) {
			x, y := at(t.Position)
			r := float32(a.Radius / 2)
			vector.FillCircle(screen, x, y, r, g.actorColor(w, e, a), true)
			if h.Fraction() < 1 {
				vector.FillRect(screen, x-r, y-r-6, 2*r, 3, color.RGBA{60, 0, 0, 255}, false)
				vector.FillRect(screen, x-r, y-r-6, 2*r*float32(h.Fraction()), 3, color.RGBA{220, 40, 40, 255}, false)
			}
			if g.debug {
				f := t.Position.Add(a.Facing.Mul(a.Radius))
				fx, fy := at(f)
				vector.StrokeLine(screen, x, y, fx, fy, 1, color.White, false)
			}
		})

	ecs.ForEach2(w, component.ProjectileComponent.Kind(), component.TransformComponent.Kind(),
		func(_ ecs.Entity, p *component.Projectile, t *component.Transform) {
			x, y := at(t.Position)
			switch p.Kind {
			case archetype.WeaponPulse:
				vector.FillCircle(screen, x, y, float32(p.Radius), auraColor, true)
			case archetype.WeaponSweep:
			default:
				clr := playerShotColor
				if p.Faction == component.FactionEnemy {
					clr = enemyShotColor
				}
				vector.FillCircle(screen, x, y, float32(p.Radius/2), clr, true)
			}
		})

	g.drawHUD(screen)
	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
}

func (g *Game) actorColor(w *ecs.World, e ecs.Entity, a *component.Actor) color.Color {
	if a.Faction == component.FactionPlayer {
		if c, ok := g.palette["player"]; ok {
			return c
		}
		return fallbackPlayer
	}
	if en, ok := ecs.Get(w, e, component.EnemyComponent.Kind()); ok {
		if c, ok := g.palette[en.Tag]; ok {
			return c
		}
	}
	return fallbackEnemy
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	st := g.sim.Status()
	lines := []string{
		fmt.Sprintf("%02d:%02d  LV %d  XP %.0f/%.0f  gold %d", int(st.Time)/60, int(st.Time)%60, st.Level, st.Experience, st.Threshold, st.Gold),
		fmt.Sprintf("HP %.0f/%.0f  kills %d  enemies %d", st.Health, st.MaxHealth, st.Kills, st.Enemies),
	}
	if g.debug {
		lines = append(lines, fmt.Sprintf("FPS %.1f  TPS %.1f  run %s", ebiten.ActualFPS(), ebiten.ActualTPS(), g.sim.RunID))
		for _, sz := range ecs.StoreSizes(g.sim.World()) {
			lines = append(lines, fmt.Sprintf("  %-10s %d", sz.Name, sz.Len))
		}
	}
	switch {
	case st.GameOver:
		lines = append(lines, "GAME OVER")
	case g.paused:
		lines = append(lines, "Paused (Esc to resume)")
	}
	for i, line := range lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(10, float64(10+i*16))
		op.ColorScale.ScaleWithColor(color.White)
		text.Draw(screen, line, g.face, op)
	}
}
