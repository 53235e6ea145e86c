package launch

import (
	"fmt"
	"os"
	"path/filepath"

	"pylauncher/pkg/config"
	"pylauncher/pkg/core"
)

// Generator writes the activation and launcher scripts for an app.
// Writing is a full overwrite at a path derived from the normalized
// app name, so regeneration never leaves stale artifacts behind.
type Generator struct {
	Paths    *config.Paths
	Template Template
	Log      Logger
}

func NewGenerator(paths *config.Paths, tmpl Template, logger Logger) *Generator {
	if logger == nil {
		logger = DefaultLogger
	}
	return &Generator{Paths: paths, Template: tmpl, Log: logger}
}

// WriteActivationScript renders and writes the activation script,
// returning its path.
func (g *Generator) WriteActivationScript(app *core.App) (string, error) {
	path := g.Paths.ActivationScript(app.Name)
	if err := writeExecutable(path, g.Template.ActivationScript(app)); err != nil {
		return "", fmt.Errorf("write activation script: %w", err)
	}
	g.Log.Successf("Created activation script: %s", filepath.Base(path))
	return path, nil
}

// WriteLauncherScript renders and writes the terminal-launcher script,
// returning its path.
func (g *Generator) WriteLauncherScript(app *core.App, activationPath string) (string, error) {
	path := g.Paths.LauncherScript(app.Name)
	if err := writeExecutable(path, g.Template.LauncherScript(app, activationPath)); err != nil {
		return "", fmt.Errorf("write launcher script: %w", err)
	}
	g.Log.Successf("Created launcher: %s", filepath.Base(path))
	return path, nil
}

// GenerateScripts writes both scripts and records their paths on the
// descriptor.
func (g *Generator) GenerateScripts(app *core.App) error {
	activation, err := g.WriteActivationScript(app)
	if err != nil {
		return err
	}
	launcher, err := g.WriteLauncherScript(app, activation)
	if err != nil {
		return err
	}
	app.ActivationScript = activation
	app.LauncherScript = launcher
	return nil
}

// EnsureScripts generates the script pair unless both already exist on
// disk at the paths the descriptor records.
func (g *Generator) EnsureScripts(app *core.App) error {
	if app.ActivationScript != "" && app.LauncherScript != "" {
		if fileExists(app.ActivationScript) && fileExists(app.LauncherScript) {
			return nil
		}
	}
	return g.GenerateScripts(app)
}

// writeExecutable overwrites path with content, creating parent
// directories and marking the file executable.
func writeExecutable(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(content), 0o755); err != nil {
		return err
	}
	// WriteFile's mode only applies on creation; chmod covers the
	// overwrite case.
	return os.Chmod(path, 0o755)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
