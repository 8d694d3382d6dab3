//go:build linux

package platform

func chimeCommands() []soundCommand {
	return []soundCommand{
		{"paplay", []string{"/usr/share/sounds/freedesktop/stereo/complete.oga"}},
		{"pw-play", []string{"/usr/share/sounds/freedesktop/stereo/complete.oga"}},
		{"aplay", []string{"/usr/share/sounds/freedesktop/stereo/complete.wav"}},
	}
}
