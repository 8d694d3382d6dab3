package timerview

import (
	"testing"

	"greenhouse/internal/core/timekeeper"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
)

type stubTimer struct {
	snapshot timekeeper.Snapshot
	calls    []string
}

func (timer *stubTimer) Start() {
	timer.calls = append(timer.calls, "start")
	timer.snapshot.Running = true
}

func (timer *stubTimer) Stop() {
	timer.calls = append(timer.calls, "stop")
	timer.snapshot.Running = false
}

func (timer *stubTimer) Reset() {
	timer.calls = append(timer.calls, "reset")
	timer.snapshot.Running = false
	timer.snapshot.Remaining = 1500
}

func (timer *stubTimer) Snapshot() timekeeper.Snapshot {
	return timer.snapshot
}

func (timer *stubTimer) Progress() float64 {
	return 0.25
}

func TestToggleStartsAndStops(t *testing.T) {
	test.NewTempApp(t)
	timer := &stubTimer{snapshot: timekeeper.Snapshot{State: timekeeper.StateWork, Remaining: 65}}
	view := New(timer)

	assert.Equal(t, "01:05", view.clock.Text)
	assert.Equal(t, "Start", view.toggle.Text)

	test.Tap(view.toggle)
	assert.Equal(t, "Stop", view.toggle.Text)

	test.Tap(view.toggle)
	assert.Equal(t, []string{"start", "stop"}, timer.calls)
	assert.Equal(t, "Start", view.toggle.Text)
}

func TestResetRedraws(t *testing.T) {
	test.NewTempApp(t)
	timer := &stubTimer{snapshot: timekeeper.Snapshot{State: timekeeper.StateBreak, Remaining: 3, Running: true}}
	view := New(timer)
	assert.Equal(t, "☕ Break", view.phase.Text)

	test.Tap(view.reset)

	assert.Equal(t, []string{"reset"}, timer.calls)
	assert.Equal(t, "25:00", view.clock.Text)
	assert.InDelta(t, 0.25, view.progress.Value, 1e-9)
}
