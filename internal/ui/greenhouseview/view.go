// Package greenhouseview renders the plant grid tab.
package greenhouseview

import (
	"fmt"

	"greenhouse/internal/core/model"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/google/uuid"
)

const columns = 3

// Greenhouse is the part of the plant store the view drives.
type Greenhouse interface {
	Plants() []model.Plant
	FlowersTotal() int
	ResetAll()
	Change(id uuid.UUID, plantType model.PlantType)
	Add() model.Plant
	Remove(id uuid.UUID)
}

// View shows every pot and the greenhouse commands.
type View struct {
	store    Greenhouse
	canvas   func() fyne.Canvas
	content  fyne.CanvasObject
	flowers  *widget.Label
	grid     *fyne.Container
	resetAll *widget.Button
	addPot   *widget.Button
}

// New creates the greenhouse tab. canvas supplies the window canvas used
// to anchor plant menus.
func New(store Greenhouse, canvas func() fyne.Canvas) *View {
	view := &View{
		store:   store,
		canvas:  canvas,
		flowers: widget.NewLabel(""),
		grid:    container.NewGridWithColumns(columns),
	}
	view.resetAll = widget.NewButton("Reset all to seeds", func() {
		view.store.ResetAll()
		view.Refresh()
	})
	view.addPot = widget.NewButtonWithIcon("Add pot", theme.ContentAddIcon(), func() {
		view.store.Add()
		view.Refresh()
	})

	header := container.NewVBox(
		widget.NewLabelWithStyle("Your Greenhouse", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		view.flowers,
	)
	footer := container.NewHBox(view.resetAll, layout.NewSpacer(), view.addPot)
	view.content = container.NewBorder(header, footer, nil, nil, container.NewVScroll(view.grid))

	view.Refresh()
	return view
}

// Content returns the tab body.
func (view *View) Content() fyne.CanvasObject {
	return view.content
}

// Refresh rebuilds the grid from the store. Call on the UI goroutine.
func (view *View) Refresh() {
	view.flowers.SetText(fmt.Sprintf("Flowers grown so far: %d", view.store.FlowersTotal()))

	plants := view.store.Plants()
	tiles := make([]fyne.CanvasObject, 0, len(plants))
	for _, plant := range plants {
		tiles = append(tiles, newPlantTile(plant, view.showPlantMenu))
	}
	view.grid.Objects = tiles
	view.grid.Refresh()
}

func (view *View) plantMenu(plant model.Plant) *fyne.Menu {
	typeItems := make([]*fyne.MenuItem, 0, len(model.PlantTypes))
	for _, plantType := range model.PlantTypes {
		plantType := plantType
		item := fyne.NewMenuItem(plantType.Icon()+" "+plantType.DisplayName(), func() {
			view.store.Change(plant.ID, plantType)
			view.Refresh()
		})
		item.Checked = plantType == plant.Type
		typeItems = append(typeItems, item)
	}

	changeType := fyne.NewMenuItem("Change plant type", nil)
	changeType.ChildMenu = fyne.NewMenu("", typeItems...)

	return fyne.NewMenu(plant.Type.DisplayName(),
		fyne.NewMenuItem("Reset to seed", func() {
			view.store.Change(plant.ID, plant.Type)
			view.Refresh()
		}),
		changeType,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Remove pot", func() {
			view.store.Remove(plant.ID)
			view.Refresh()
		}),
	)
}

func (view *View) showPlantMenu(plant model.Plant, position fyne.Position) {
	if view.canvas == nil {
		return
	}
	target := view.canvas()
	if target == nil {
		return
	}
	widget.ShowPopUpMenuAtPosition(view.plantMenu(plant), target, position)
}
