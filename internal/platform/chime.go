package platform

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
)

var errNoPlayer = errors.New("no sound player available")

type soundCommand struct {
	name string
	args []string
}

// PlayChime plays the short completion sound. It falls back to the
// terminal bell when no player works.
func PlayChime() error {
	if err := runFirst(chimeCommands()); err != nil {
		return terminalBell()
	}
	return nil
}

func runFirst(commands []soundCommand) error {
	for _, command := range commands {
		path, err := exec.LookPath(command.name)
		if err != nil {
			continue
		}
		if err := exec.Command(path, command.args...).Run(); err == nil {
			return nil
		}
	}
	return errNoPlayer
}

func terminalBell() error {
	if _, err := fmt.Fprint(os.Stderr, "\a"); err != nil {
		return fmt.Errorf("terminal bell: %w", err)
	}
	return nil
}
