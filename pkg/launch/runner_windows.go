//go:build windows

package launch

import (
	"fmt"
	"os/exec"
)

// spawnTerminal opens a new console window running the activation
// batch file and keeps it open afterwards.
func spawnTerminal(name, script string, _ Logger) error {
	cmd := exec.Command("cmd", "/C", "start", fmt.Sprintf("Running %s", name), "cmd", "/K", script)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", name, err)
	}
	return nil
}

// OpenFolder shows dir in Explorer.
func OpenFolder(dir string) error {
	return exec.Command("explorer", dir).Start()
}
