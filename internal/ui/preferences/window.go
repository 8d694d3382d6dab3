package preferences

import (
	"fmt"
	"strconv"

	"greenhouse/internal/core/model"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// View is the settings tab.
type View struct {
	content        fyne.CanvasObject
	settings       Settings
	onApply        func(Settings) Settings
	onResetFlowers func()
	workEntry      *widget.Entry
	breakEntry     *widget.Entry
	applyButton    *widget.Button
	resetFlowers   *widget.Button
}

// New creates the settings tab. onApply receives the parsed values and
// returns what was actually stored.
func New(settings Settings, onApply func(Settings) Settings, onResetFlowers func()) *View {
	workEntry := widget.NewEntry()
	breakEntry := widget.NewEntry()

	applyButton := widget.NewButton("Apply", nil)
	resetFlowers := widget.NewButton("Reset flower count", nil)

	form := container.NewVBox(
		widget.NewLabelWithStyle("Session Lengths", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewBorder(nil, nil, widget.NewLabel("Work"), widget.NewLabel(fmt.Sprintf("min (%d-%d)", model.MinWorkMinutes, model.MaxWorkMinutes)), workEntry),
		container.NewBorder(nil, nil, widget.NewLabel("Break"), widget.NewLabel(fmt.Sprintf("min (%d-%d)", model.MinBreakMinutes, model.MaxBreakMinutes)), breakEntry),
		container.NewHBox(applyButton, layout.NewSpacer()),
		widget.NewSeparator(),
		widget.NewLabelWithStyle("About", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabel("Complete work sessions to grow plants in your cozy greenhouse"),
		container.NewHBox(resetFlowers, layout.NewSpacer()),
	)

	view := &View{
		content:        container.NewPadded(form),
		onApply:        onApply,
		onResetFlowers: onResetFlowers,
		workEntry:      workEntry,
		breakEntry:     breakEntry,
		applyButton:    applyButton,
		resetFlowers:   resetFlowers,
	}
	view.UpdateSettings(settings)

	applyButton.OnTapped = view.handleApply
	resetFlowers.OnTapped = func() {
		if view.onResetFlowers != nil {
			view.onResetFlowers()
		}
	}
	return view
}

// Content returns the tab body.
func (view *View) Content() fyne.CanvasObject {
	return view.content
}

// Settings returns the last applied values.
func (view *View) Settings() Settings {
	return view.settings
}

// UpdateSettings replaces form values.
func (view *View) UpdateSettings(settings Settings) {
	view.settings = settings
	view.workEntry.SetText(strconv.Itoa(settings.WorkMinutes))
	view.breakEntry.SetText(strconv.Itoa(settings.BreakMinutes))
}

func (view *View) handleApply() {
	settings := view.settings

	if minutes, ok := parsePositiveInt(view.workEntry.Text); ok {
		settings.WorkMinutes = minutes
	}
	if minutes, ok := parsePositiveInt(view.breakEntry.Text); ok {
		settings.BreakMinutes = minutes
	}
	settings = FromTimerConfig(settings.TimerConfig())

	if view.onApply != nil {
		settings = view.onApply(settings)
	}
	view.UpdateSettings(settings)
}

func parsePositiveInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return parsed, true
}
