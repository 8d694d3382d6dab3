package greenhouseview

import (
	"greenhouse/internal/core/model"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

type plantTile struct {
	widget.BaseWidget
	plant model.Plant
	onTap func(model.Plant, fyne.Position)
}

func newPlantTile(plant model.Plant, onTap func(model.Plant, fyne.Position)) *plantTile {
	tile := &plantTile{plant: plant, onTap: onTap}
	tile.ExtendBaseWidget(tile)
	return tile
}

func (tile *plantTile) CreateRenderer() fyne.WidgetRenderer {
	glyph := canvas.NewText(tile.plant.Emoji(), theme.Color(theme.ColorNameForeground))
	glyph.TextSize = 48
	glyph.Alignment = fyne.TextAlignCenter

	name := widget.NewLabelWithStyle(tile.plant.Type.DisplayName(), fyne.TextAlignCenter, fyne.TextStyle{Italic: true})

	background := canvas.NewRectangle(theme.Color(theme.ColorNameInputBackground))
	background.CornerRadius = 14

	return widget.NewSimpleRenderer(container.NewStack(
		background,
		container.NewPadded(container.NewVBox(glyph, name)),
	))
}

func (tile *plantTile) Tapped(event *fyne.PointEvent) {
	if tile.onTap != nil {
		tile.onTap(tile.plant, event.AbsolutePosition)
	}
}

func (tile *plantTile) TappedSecondary(event *fyne.PointEvent) {
	tile.Tapped(event)
}
