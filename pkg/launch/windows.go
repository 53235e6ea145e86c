package launch

import (
	"fmt"
	"strings"

	"pylauncher/pkg/core"
)

// WindowsTemplate renders batch files. The launcher opens a new
// console window via the shell's start mechanism.
type WindowsTemplate struct{}

func (WindowsTemplate) Ext() string { return ".bat" }

func (WindowsTemplate) ActivationScript(app *core.App) string {
	command := fmt.Sprintf("python \"%s\"", app.ScriptPath)
	if app.Args != "" {
		command += " " + app.Args
	}

	return fmt.Sprintf(`@echo off
echo Running %s...
echo.

REM Change to working directory
cd /D "%s"

REM Activate virtual environment
echo Activating virtual environment...
call "%s"

REM Run the Python script
echo Running script: %s
%s

REM Keep window open
echo.
echo Script execution complete.
pause
`,
		app.Name,
		app.WorkDirOrDefault(),
		app.VenvPath+`\Scripts\activate.bat`,
		winBase(app.ScriptPath),
		command,
	)
}

func (WindowsTemplate) LauncherScript(app *core.App, activationPath string) string {
	return fmt.Sprintf(`@echo off
start "Running %s" cmd /K "%s"
`,
		app.Name,
		activationPath,
	)
}

// winBase strips directories from a path with either separator.
func winBase(p string) string {
	if i := strings.LastIndexAny(p, `\/`); i >= 0 {
		return p[i+1:]
	}
	return p
}
