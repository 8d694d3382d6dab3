package preferences

import (
	"greenhouse/internal/core/model"
)

// Settings defines editable user preferences.
type Settings struct {
	WorkMinutes  int
	BreakMinutes int
}

// DefaultSettings returns default settings for the greenhouse timer.
func DefaultSettings() Settings {
	return FromTimerConfig(model.DefaultTimerConfig())
}

// FromTimerConfig converts the timer configuration to form values.
func FromTimerConfig(config model.TimerConfig) Settings {
	return Settings{
		WorkMinutes:  config.WorkMinutes,
		BreakMinutes: config.BreakMinutes,
	}
}

// TimerConfig converts settings to a clamped TimerConfig.
func (settings Settings) TimerConfig() model.TimerConfig {
	return model.TimerConfig{
		WorkMinutes:  settings.WorkMinutes,
		BreakMinutes: settings.BreakMinutes,
	}.Clamped()
}
