//go:build !windows

package launch

import (
	"fmt"
	"os/exec"
	"syscall"
)

// spawnTerminal opens xterm running the activation script. When xterm
// is unavailable the script runs through bash directly so the app
// still starts, just without its own window.
func spawnTerminal(name, script string, log Logger) error {
	cmd := exec.Command("xterm",
		"-title", fmt.Sprintf("Running: %s", name),
		"-geometry", "100x30",
		"-e", fmt.Sprintf("bash -i '%s'", script),
	)
	detach(cmd)
	if err := cmd.Start(); err == nil {
		return nil
	}

	log.Warnf("xterm not available, running %s without a terminal window", name)
	fallback := exec.Command("bash", "-i", script)
	detach(fallback)
	if err := fallback.Start(); err != nil {
		return fmt.Errorf("start %s: %w", name, err)
	}
	return nil
}

// detach puts the child in its own session so closing the launcher
// does not kill running apps.
func detach(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
}

// OpenFolder shows dir in the desktop file manager.
func OpenFolder(dir string) error {
	cmd := exec.Command("xdg-open", dir)
	detach(cmd)
	return cmd.Start()
}
