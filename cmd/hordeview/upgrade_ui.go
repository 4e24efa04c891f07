package main

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"

	"github.com/milk9111/hordecore/archetype"
	"github.com/milk9111/hordecore/sim"
)

var rarityColors = map[archetype.Rarity]color.NRGBA{
	archetype.RarityCommon:    {R: 0x44, G: 0x44, B: 0x4c, A: 0xff},
	archetype.RarityRare:      {R: 0x2d, G: 0x5a, B: 0x9c, A: 0xff},
	archetype.RarityEpic:      {R: 0x6e, G: 0x35, B: 0x9c, A: 0xff},
	archetype.RarityLegendary: {R: 0x9c, G: 0x7a, B: 0x1e, A: 0xff},
}

// NewUpgradeUI builds the centered level-up panel: one button per offered
// reward plus a skip button.
func NewUpgradeUI(g *Game, offer []sim.Reward) *ebitenui.UI {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200})
	face := g.face
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	btnTextColor := &widget.ButtonTextColor{Idle: white}
	center := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter, Stretch: true})

	title := widget.NewText(
		widget.TextOpts.Text(fmt.Sprintf("Level %d - choose an upgrade", g.sim.Status().Level), &face, white),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(baseWidth/3, baseHeight/3),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	panel.AddChild(title)

	for _, r := range offer {
		btnImg := imageui.NewNineSliceColor(rarityColors[rarityOrCommon(r.Rarity)])
		panel.AddChild(widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
			widget.ButtonOpts.Text(rewardLabel(g, r), &face, btnTextColor),
			widget.ButtonOpts.WidgetOpts(center),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				g.choose(r)
			}),
		))
	}

	skipImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})
	panel.AddChild(widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: skipImg, Pressed: skipImg}),
		widget.ButtonOpts.Text("Skip", &face, btnTextColor),
		widget.ButtonOpts.WidgetOpts(center),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			g.skip()
		}),
	))

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &ebitenui.UI{Container: root}
}

func rarityOrCommon(r archetype.Rarity) archetype.Rarity {
	if _, ok := rarityColors[r]; ok {
		return r
	}
	return archetype.RarityCommon
}

func rewardLabel(g *Game, r sim.Reward) string {
	switch r.Kind {
	case sim.RewardWeapon:
		return fmt.Sprintf("weapon: %s", r.Tag)
	case sim.RewardPassive:
		p := g.sim.Registry().Passive(r.Tag)
		return fmt.Sprintf("%s passive: %s (+%.0f%% %s)", rarityOrCommon(r.Rarity), r.Tag, 100*p.BonusPerLevel*rarityOrCommon(r.Rarity).Multiplier(), p.Target)
	}
	return r.Tag
}
