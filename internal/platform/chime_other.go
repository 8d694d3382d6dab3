//go:build !linux && !darwin && !windows

package platform

func chimeCommands() []soundCommand {
	return nil
}
