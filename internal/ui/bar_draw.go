//go:build ebiten

package ui

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

type barView struct {
	ui    *ebitenui.UI
	bar   *widget.ProgressBar
	label *widget.Text
}

func newBarView() *barView {
	var face text.Face = text.NewGoXFace(basicfont.Face7x13)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(
			widget.AnchorLayoutOpts.Padding(widget.NewInsetsSimple(panelPadding)),
		)),
	)
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(panelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(6),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(8)),
		)),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
			HorizontalPosition: widget.AnchorLayoutPositionStart,
			VerticalPosition:   widget.AnchorLayoutPositionEnd,
		})),
	)
	root.AddChild(panel)

	label := widget.NewText(
		widget.TextOpts.Text("--", &face, labelColor),
	)
	panel.AddChild(label)

	bar := widget.NewProgressBar(
		widget.ProgressBarOpts.WidgetOpts(widget.WidgetOpts.MinSize(barWidth, barHeight)),
		widget.ProgressBarOpts.Images(
			&widget.ProgressBarImage{
				Idle:     image.NewNineSliceColor(trackColor),
				Disabled: image.NewNineSliceColor(trackColor),
			},
			&widget.ProgressBarImage{
				Idle:     image.NewNineSliceColor(fillColor),
				Disabled: image.NewNineSliceColor(invalidColor),
			},
		),
		widget.ProgressBarOpts.Values(0, 100, 0),
		widget.ProgressBarOpts.TrackPadding(widget.NewInsetsSimple(2)),
	)
	panel.AddChild(bar)

	return &barView{
		ui:    &ebitenui.UI{Container: root},
		bar:   bar,
		label: label,
	}
}

// UpdateView runs the widget tree's per-tick update. Call it from the game's
// Update before Render.
func (b *CultivationBar) UpdateView() {
	if !b.Visible() {
		return
	}
	if b.view == nil {
		b.view = newBarView()
	}
	b.view.ui.Update()
}

// Render draws the bar in the bottom-left corner of screen. Hidden bars draw
// nothing.
func (b *CultivationBar) Render(screen *ebiten.Image) {
	if !b.Visible() || screen == nil {
		return
	}
	if b.view == nil {
		b.view = newBarView()
	}
	progress, valid := b.Progress()
	b.view.bar.SetCurrent(progress)
	b.view.bar.GetWidget().Disabled = !valid
	b.view.label.Label = b.Label()
	b.view.ui.Draw(screen)
}

var (
	panelColor   = color.RGBA{R: 16, G: 16, B: 20, A: 220}
	labelColor   = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	trackColor   = color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fillColor    = color.RGBA{R: 96, G: 176, B: 224, A: 255}
	invalidColor = color.RGBA{R: 120, G: 120, B: 130, A: 255}
)

const (
	panelPadding = 12
	barWidth     = 220
	barHeight    = 14
)
