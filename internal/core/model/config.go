package model

import "time"

// Preference keys shared by the timer and the greenhouse.
const (
	PrefWorkMinutes  = "workMin"
	PrefBreakMinutes = "breakMin"
	PrefFlowersTotal = "flowersTotal"
)

const (
	DefaultWorkMinutes  = 25
	DefaultBreakMinutes = 5

	MinWorkMinutes  = 1
	MaxWorkMinutes  = 180
	MinBreakMinutes = 1
	MaxBreakMinutes = 60
)

// TimerConfig contains the session lengths used by the session timer.
type TimerConfig struct {
	WorkMinutes  int
	BreakMinutes int
}

// DefaultTimerConfig returns the factory session lengths.
func DefaultTimerConfig() TimerConfig {
	return TimerConfig{
		WorkMinutes:  DefaultWorkMinutes,
		BreakMinutes: DefaultBreakMinutes,
	}
}

// Clamped returns a copy with both lengths forced into their valid ranges.
func (config TimerConfig) Clamped() TimerConfig {
	return TimerConfig{
		WorkMinutes:  clamp(config.WorkMinutes, MinWorkMinutes, MaxWorkMinutes),
		BreakMinutes: clamp(config.BreakMinutes, MinBreakMinutes, MaxBreakMinutes),
	}
}

// PhaseDuration returns the full length of the work or break phase.
func (config TimerConfig) PhaseDuration(isWork bool) time.Duration {
	if isWork {
		return time.Duration(config.WorkMinutes) * time.Minute
	}
	return time.Duration(config.BreakMinutes) * time.Minute
}

// PhaseSeconds returns the full length of a phase in whole seconds.
func (config TimerConfig) PhaseSeconds(isWork bool) int {
	return int(config.PhaseDuration(isWork) / time.Second)
}

func clamp(value, low, high int) int {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}
