//go:build windows

package platform

func chimeCommands() []soundCommand {
	return []soundCommand{
		{"powershell", []string{"-NoProfile", "-Command", "[System.Media.SystemSounds]::Asterisk.Play()"}},
	}
}
