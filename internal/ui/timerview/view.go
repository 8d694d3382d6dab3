// Package timerview renders the countdown tab.
package timerview

import (
	"greenhouse/internal/core/timekeeper"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Timer is the part of the TimeKeeper the view drives.
type Timer interface {
	Start()
	Stop()
	Reset()
	Snapshot() timekeeper.Snapshot
	Progress() float64
}

// View shows phase, remaining time and the start/stop controls.
type View struct {
	timer    Timer
	content  fyne.CanvasObject
	phase    *widget.Label
	clock    *canvas.Text
	progress *widget.ProgressBar
	toggle   *widget.Button
	reset    *widget.Button
}

// New creates the timer tab bound to timer.
func New(timer Timer) *View {
	phase := widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	clock := canvas.NewText("--:--", theme.Color(theme.ColorNameForeground))
	clock.Alignment = fyne.TextAlignCenter
	clock.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	clock.TextSize = 56

	progress := widget.NewProgressBar()
	progress.TextFormatter = func() string { return "" }

	view := &View{
		timer:    timer,
		phase:    phase,
		clock:    clock,
		progress: progress,
	}
	view.toggle = widget.NewButtonWithIcon("Start", theme.MediaPlayIcon(), view.handleToggle)
	view.toggle.Importance = widget.HighImportance
	view.reset = widget.NewButtonWithIcon("Reset", theme.MediaReplayIcon(), view.handleReset)

	view.content = container.NewVBox(
		layout.NewSpacer(),
		phase,
		clock,
		container.NewPadded(progress),
		container.NewHBox(layout.NewSpacer(), view.toggle, view.reset, layout.NewSpacer()),
		layout.NewSpacer(),
	)
	view.Refresh()
	return view
}

// Content returns the tab body.
func (view *View) Content() fyne.CanvasObject {
	return view.content
}

// Refresh redraws from the timer state. Call on the UI goroutine.
func (view *View) Refresh() {
	snapshot := view.timer.Snapshot()

	if snapshot.IsWork() {
		view.phase.SetText("🌱 Focus")
	} else {
		view.phase.SetText("☕ Break")
	}
	view.clock.Text = timekeeper.FormatRemaining(snapshot.Remaining)
	view.clock.Refresh()
	view.progress.SetValue(view.timer.Progress())

	if snapshot.Running {
		view.toggle.SetText("Stop")
		view.toggle.SetIcon(theme.MediaPauseIcon())
		view.toggle.Importance = widget.DangerImportance
	} else {
		view.toggle.SetText("Start")
		view.toggle.SetIcon(theme.MediaPlayIcon())
		view.toggle.Importance = widget.HighImportance
	}
	view.toggle.Refresh()
}

func (view *View) handleToggle() {
	if view.timer.Snapshot().Running {
		view.timer.Stop()
	} else {
		view.timer.Start()
	}
	view.Refresh()
}

func (view *View) handleReset() {
	view.timer.Reset()
	view.Refresh()
}
