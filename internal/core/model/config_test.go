package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimerConfigClamped(t *testing.T) {
	tests := []struct {
		name     string
		input    TimerConfig
		expected TimerConfig
	}{
		{"defaults untouched", DefaultTimerConfig(), TimerConfig{WorkMinutes: 25, BreakMinutes: 5}},
		{"zero raised to minimum", TimerConfig{}, TimerConfig{WorkMinutes: 1, BreakMinutes: 1}},
		{"negative raised to minimum", TimerConfig{WorkMinutes: -4, BreakMinutes: -1}, TimerConfig{WorkMinutes: 1, BreakMinutes: 1}},
		{"upper bounds", TimerConfig{WorkMinutes: 500, BreakMinutes: 61}, TimerConfig{WorkMinutes: 180, BreakMinutes: 60}},
		{"edges kept", TimerConfig{WorkMinutes: 180, BreakMinutes: 60}, TimerConfig{WorkMinutes: 180, BreakMinutes: 60}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.input.Clamped())
		})
	}
}

func TestTimerConfigPhaseSeconds(t *testing.T) {
	config := TimerConfig{WorkMinutes: 25, BreakMinutes: 5}

	assert.Equal(t, 1500, config.PhaseSeconds(true))
	assert.Equal(t, 300, config.PhaseSeconds(false))
	assert.Equal(t, 25*time.Minute, config.PhaseDuration(true))
}
