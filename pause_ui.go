package main

import (
	"image/color"

	"github.com/milk9111/portalroom/common"
	"golang.org/x/image/font/basicfont"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
)

// menu is an ebitenui overlay with a title, an optional status line and a
// column of buttons.
type menu struct {
	ui     *ebitenui.UI
	status *widget.Text
}

type menuButton struct {
	label   string
	onClick func()
}

// SetStatus replaces the status line under the title.
func (m *menu) SetStatus(s string) {
	if m == nil || m.status == nil {
		return
	}
	m.status.Label = s
}

func newMenu(title string, buttons ...menuButton) *menu {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})
	btnHoverImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x4a, G: 0x4a, B: 0x4a, A: 255})

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	btnTextColor := &widget.ButtonTextColor{Idle: white}
	center := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	titleText := widget.NewText(
		widget.TextOpts.Text(title, &face, white),
		widget.TextOpts.WidgetOpts(center),
	)
	status := widget.NewText(
		widget.TextOpts.Text("", &face, color.NRGBA{R: 0xb0, G: 0xb0, B: 0xb0, A: 0xff}),
		widget.TextOpts.WidgetOpts(center),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.BaseWidth/3, common.BaseHeight/3),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	panel.AddChild(titleText)
	panel.AddChild(status)

	for _, b := range buttons {
		onClick := b.onClick
		panel.AddChild(widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Hover: btnHoverImg, Pressed: btnImg}),
			widget.ButtonOpts.Text(b.label, &face, btnTextColor),
			widget.ButtonOpts.TextPadding(&widget.Insets{Top: 6, Bottom: 6, Left: 24, Right: 24}),
			widget.ButtonOpts.WidgetOpts(center),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				if onClick != nil {
					onClick()
				}
			}),
		))
	}

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &menu{ui: &ebitenui.UI{Container: root}, status: status}
}

// newPauseUI builds the pause menu shown on Escape.
func newPauseUI(g *Game) *menu {
	return newMenu("Paused",
		menuButton{"Resume", g.Resume},
		menuButton{"Reset room", func() {
			g.World().ResetGame()
			g.Resume()
		}},
		menuButton{"Clear portals", func() {
			g.World().ClearPortals()
			g.Resume()
		}},
		menuButton{"Copy state", g.CopyState},
		menuButton{"Quit", g.Quit},
	)
}

// newWinUI builds the overlay shown once the room is cleared.
func newWinUI(g *Game) *menu {
	return newMenu("You Have Cleared This Level",
		menuButton{"Play again", g.Restart},
		menuButton{"Copy state", g.CopyState},
		menuButton{"Quit", g.Quit},
	)
}
