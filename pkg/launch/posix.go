package launch

import (
	"fmt"
	"path"

	"pylauncher/pkg/core"
)

// PosixTemplate renders bash scripts. The launcher opens xterm with a
// fixed title and geometry, detached from its parent.
type PosixTemplate struct{}

func (PosixTemplate) Ext() string { return ".sh" }

func (PosixTemplate) ActivationScript(app *core.App) string {
	command := fmt.Sprintf("python3 \"%s\"", app.ScriptPath)
	if app.Args != "" {
		command += " " + app.Args
	}

	return fmt.Sprintf(`#!/bin/bash
echo "Running %s..."
echo ""

# Change to working directory
cd "%s"

# Activate virtual environment
echo "Activating virtual environment..."
source "%s"

# Run the Python script
echo "Running script: %s"
%s

# Keep terminal open
echo ""
echo "Script execution complete."
read -p "Press Enter to exit..."
`,
		app.Name,
		app.WorkDirOrDefault(),
		path.Join(app.VenvPath, "bin", "activate"),
		path.Base(app.ScriptPath),
		command,
	)
}

func (PosixTemplate) LauncherScript(app *core.App, activationPath string) string {
	return fmt.Sprintf(`#!/bin/bash
xterm -title "Running: %s" -geometry 100x30 -e "bash -i '%s'" &
`,
		app.Name,
		activationPath,
	)
}
