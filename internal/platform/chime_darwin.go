//go:build darwin

package platform

func chimeCommands() []soundCommand {
	return []soundCommand{
		{"afplay", []string{"/System/Library/Sounds/Glass.aiff"}},
	}
}
