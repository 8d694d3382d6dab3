package timekeeper

import "time"

// State is the phase the timer is counting down.
type State string

const (
	StateWork  State = "work"
	StateBreak State = "break"
)

func stateFor(isWork bool) State {
	if isWork {
		return StateWork
	}
	return StateBreak
}

// EventType defines the type of TimeKeeper event.
type EventType string

const (
	EventStateChange   EventType = "state_change"
	EventProgress      EventType = "progress"
	EventPhaseComplete EventType = "phase_complete"
)

// Event represents a TimeKeeper update for observers.
type Event struct {
	Type      EventType
	State     State
	Running   bool
	Remaining time.Duration
	Progress  float64
	Completed State
	At        time.Time
}

// Snapshot is a consistent copy of the timer state.
type Snapshot struct {
	State        State
	Running      bool
	Remaining    int
	WorkMinutes  int
	BreakMinutes int
}

// IsWork reports whether the work phase is active.
func (snapshot Snapshot) IsWork() bool {
	return snapshot.State == StateWork
}
