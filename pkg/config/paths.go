package config

import (
	"os"
	"path/filepath"
	"strings"
)

// EnvConfigDir overrides the default per-user configuration root.
const EnvConfigDir = "PYLAUNCHER_CONFIG_DIR"

const registryFileName = "apps.json"

// Paths is the fixed filesystem layout: where the registry, generated
// scripts, generated icons, and desktop entries live. Artifact file
// names are pure functions of the normalized application name.
type Paths struct {
	ConfigDir       string
	ScriptsDir      string
	IconsDir        string
	ApplicationsDir string

	scriptExt string
}

// NewPaths builds a layout rooted at explicit directories. scriptExt is
// the extension the active script template produces (".sh" or ".bat").
func NewPaths(configDir, iconsDir, applicationsDir, scriptExt string) *Paths {
	return &Paths{
		ConfigDir:       configDir,
		ScriptsDir:      filepath.Join(configDir, "scripts"),
		IconsDir:        iconsDir,
		ApplicationsDir: applicationsDir,
		scriptExt:       scriptExt,
	}
}

// DefaultPaths resolves the per-user layout: ~/.python_app_launcher for
// the registry and scripts (overridable via PYLAUNCHER_CONFIG_DIR),
// ~/.local/share/icons/python-launcher for generated icons, and
// ~/.local/share/applications for desktop entries.
func DefaultPaths(scriptExt string) (*Paths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	configDir := os.Getenv(EnvConfigDir)
	if configDir == "" {
		configDir = filepath.Join(home, ".python_app_launcher")
	}

	return NewPaths(
		configDir,
		filepath.Join(home, ".local", "share", "icons", "python-launcher"),
		filepath.Join(home, ".local", "share", "applications"),
		scriptExt,
	), nil
}

// Normalize lowercases a display name and replaces each space and
// hyphen with an underscore. Other punctuation is left untouched, so
// distinct display names can normalize to the same artifact name; the
// registry rejects such collisions at save time.
func Normalize(name string) string {
	n := strings.ToLower(name)
	n = strings.ReplaceAll(n, " ", "_")
	return strings.ReplaceAll(n, "-", "_")
}

// RegistryFile is the JSON document holding all saved applications.
func (p *Paths) RegistryFile() string {
	return filepath.Join(p.ConfigDir, registryFileName)
}

// ActivationScript is <scripts>/<normalized><ext>.
func (p *Paths) ActivationScript(appName string) string {
	return filepath.Join(p.ScriptsDir, Normalize(appName)+p.scriptExt)
}

// LauncherScript is <scripts>/launch_<normalized><ext>.
func (p *Paths) LauncherScript(appName string) string {
	return filepath.Join(p.ScriptsDir, "launch_"+Normalize(appName)+p.scriptExt)
}

// DesktopEntry is <applications>/<normalized>.desktop.
func (p *Paths) DesktopEntry(appName string) string {
	return filepath.Join(p.ApplicationsDir, Normalize(appName)+".desktop")
}

// GeneratedIcon is <icons>/<normalized>.png.
func (p *Paths) GeneratedIcon(appName string) string {
	return filepath.Join(p.IconsDir, Normalize(appName)+".png")
}

// EnsureDirs creates every directory of the layout. Creation is
// idempotent; existing directories are not an error.
func (p *Paths) EnsureDirs() error {
	for _, dir := range []string{p.ConfigDir, p.ScriptsDir, p.IconsDir, p.ApplicationsDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return nil
}
