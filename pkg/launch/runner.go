package launch

import (
	"fmt"
	"os"

	"pylauncher/pkg/core"
)

// Runner starts an app's launcher script in a new terminal window,
// detached so the launcher process outlives us.
type Runner struct {
	Log Logger
}

func NewRunner(logger Logger) *Runner {
	if logger == nil {
		logger = DefaultLogger
	}
	return &Runner{Log: logger}
}

// Run spawns the activation script for app in a terminal. The script
// must already exist on disk.
func (r *Runner) Run(app *core.App) error {
	script := app.ActivationScript
	if script == "" {
		return fmt.Errorf("run %s: %w: no activation script recorded", app.Name, core.ErrNotFound)
	}
	if _, err := os.Stat(script); err != nil {
		return fmt.Errorf("run %s: %w: %s", app.Name, core.ErrNotFound, script)
	}
	r.Log.Infof("Running application: %s", app.Name)
	return spawnTerminal(app.Name, script, r.Log)
}
