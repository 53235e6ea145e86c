package core

import (
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// IconType says how an app's menu icon was sourced.
type IconType string

const (
	IconGenerated IconType = "generated"
	IconCustom    IconType = "custom"
	IconSystem    IconType = "system"
)

// IconSpec records the icon choice persisted inside the owning app.
// Exactly the fields for its Type are meaningful.
type IconSpec struct {
	Type IconType

	// Generated settings.
	BgColor   string
	TextColor string
	Bold      bool
	Gradient  bool

	// Custom source file.
	SourcePath string

	// System icon theme name.
	IconName string

	// Path is the resolved icon reference written to the desktop entry.
	Path string
}

// App is one managed launchable Python application.
type App struct {
	ID         string
	Name       string
	VenvPath   string
	ScriptPath string
	Args       string
	WorkDir    string

	CreatedAt time.Time
	LastRunAt *time.Time

	// Artifact paths, set after generation.
	ActivationScript string
	LauncherScript   string
	DesktopFile      string

	Icon *IconSpec
}

// NewApp creates a descriptor with a fresh ID and creation timestamp.
// An empty workDir defaults to the script's parent directory.
func NewApp(name, venvPath, scriptPath, args, workDir string) *App {
	if workDir == "" {
		workDir = filepath.Dir(scriptPath)
	}
	return &App{
		ID:         uuid.NewString(),
		Name:       name,
		VenvPath:   venvPath,
		ScriptPath: scriptPath,
		Args:       args,
		WorkDir:    workDir,
		CreatedAt:  time.Now(),
	}
}

// Clone returns a deep copy.
func (a *App) Clone() *App {
	clone := *a
	if a.LastRunAt != nil {
		t := *a.LastRunAt
		clone.LastRunAt = &t
	}
	if a.Icon != nil {
		ic := *a.Icon
		clone.Icon = &ic
	}
	return &clone
}

// WorkDirOrDefault is the directory the run command enters, falling
// back to the script's parent directory when unset.
func (a *App) WorkDirOrDefault() string {
	if a.WorkDir != "" {
		return a.WorkDir
	}
	return filepath.Dir(a.ScriptPath)
}
