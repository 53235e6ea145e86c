package launch

import (
	"pylauncher/pkg/core"
)

// Template renders the two per-app scripts for one target OS. The
// implementation is chosen once at startup; both variants are always
// compiled so either can be exercised anywhere.
type Template interface {
	// ActivationScript announces the app, enters its working
	// directory, activates the venv, runs the script, and pauses.
	ActivationScript(app *core.App) string

	// LauncherScript opens a new terminal window running the
	// activation script.
	LauncherScript(app *core.App, activationPath string) string

	// Ext is the file extension the scripts carry (".sh" or ".bat").
	Ext() string
}

// TemplateForOS picks the template for a GOOS value.
func TemplateForOS(goos string) Template {
	if goos == "windows" {
		return WindowsTemplate{}
	}
	return PosixTemplate{}
}
