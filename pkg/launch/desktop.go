package launch

import (
	"fmt"
	"os"

	"pylauncher/pkg/config"
	"pylauncher/pkg/core"
	"pylauncher/pkg/icon"
)

// DefaultIconName is the system icon a desktop entry falls back to
// when its requested icon cannot be resolved.
const DefaultIconName = "application-x-python"

// IconSource is how the caller asked for the entry's icon.
type IconSource string

const (
	SourceGenerate IconSource = "generate"
	SourceCustom   IconSource = "custom"
	SourceSystem   IconSource = "system"
)

// EntryOptions control one desktop-entry build.
type EntryOptions struct {
	IconSource IconSource

	// Generated icon settings (SourceGenerate). Empty colors take the
	// renderer defaults.
	BgColor   string
	TextColor string
	Bold      bool
	Gradient  bool

	// SourceCustom: the image file to reference verbatim.
	CustomIconPath string

	// SourceSystem: the theme icon name to reference verbatim.
	SystemIconName string

	Categories string
	Terminal   bool
}

// BuildResult reports what one build produced, including which icon
// fallback fired, so callers and tests can assert the resolution.
type BuildResult struct {
	Path         string
	IconRef      string
	IconFellBack bool
	Font         icon.FontResolution
}

// Builder composes desktop entries, generating scripts and icons as
// needed.
type Builder struct {
	Paths     *config.Paths
	Generator *Generator
	Renderer  *icon.Renderer
	Log       Logger
}

func NewBuilder(paths *config.Paths, gen *Generator, renderer *icon.Renderer, logger Logger) *Builder {
	if logger == nil {
		logger = DefaultLogger
	}
	if renderer == nil {
		renderer = icon.NewRenderer(icon.DefaultSize)
	}
	return &Builder{Paths: paths, Generator: gen, Renderer: renderer, Log: logger}
}

// Build writes the desktop entry for app. Invalid generated-icon
// colors are rejected before anything is written; failures after that
// point degrade per artifact (an icon failure falls back to the
// default system icon, the scripts already written stay written).
func (b *Builder) Build(app *core.App, opts EntryOptions) (BuildResult, error) {
	result := BuildResult{IconRef: DefaultIconName}

	// Validate colors up front so bad input writes nothing.
	var bg, fg icon.RGB
	if opts.IconSource == SourceGenerate {
		var err error
		if bg, err = parseColorOr(opts.BgColor, icon.DefaultBackground); err != nil {
			return result, err
		}
		if fg, err = parseColorOr(opts.TextColor, icon.DefaultText); err != nil {
			return result, err
		}
	}

	if err := b.Generator.EnsureScripts(app); err != nil {
		return result, err
	}

	switch opts.IconSource {
	case SourceGenerate:
		img, font := b.Renderer.Render(app.Name, icon.Options{
			Background: bg,
			Text:       fg,
			Bold:       opts.Bold,
			Gradient:   opts.Gradient,
		})
		result.Font = font
		iconPath := b.Paths.GeneratedIcon(app.Name)
		if err := icon.SavePNG(img, iconPath); err != nil {
			b.Log.Warnf("Could not generate icon: %v", err)
			result.IconFellBack = true
		} else {
			result.IconRef = iconPath
			app.Icon = &core.IconSpec{
				Type:      core.IconGenerated,
				BgColor:   bg.Hex(),
				TextColor: fg.Hex(),
				Bold:      opts.Bold,
				Gradient:  opts.Gradient,
				Path:      iconPath,
			}
			b.Log.Successf("Generated icon for %s: %s", app.Name, iconPath)
		}

	case SourceCustom:
		if opts.CustomIconPath != "" && fileExists(opts.CustomIconPath) {
			result.IconRef = opts.CustomIconPath
			app.Icon = &core.IconSpec{
				Type:       core.IconCustom,
				SourcePath: opts.CustomIconPath,
				Path:       opts.CustomIconPath,
			}
			b.Log.Successf("Using custom icon: %s", opts.CustomIconPath)
		} else {
			b.Log.Warnf("Custom icon not found, using default")
			result.IconFellBack = true
		}

	case SourceSystem:
		if opts.SystemIconName != "" {
			result.IconRef = opts.SystemIconName
			app.Icon = &core.IconSpec{
				Type:     core.IconSystem,
				IconName: opts.SystemIconName,
				Path:     opts.SystemIconName,
			}
			b.Log.Successf("Using system icon: %s", opts.SystemIconName)
		} else {
			b.Log.Warnf("No system icon name given, using default")
			result.IconFellBack = true
		}

	default:
		return result, fmt.Errorf("unknown icon source %q", opts.IconSource)
	}

	categories := opts.Categories
	if categories == "" {
		categories = "Development"
	}

	document := composeEntry(app, result.IconRef, categories, opts.Terminal)
	entryPath := b.Paths.DesktopEntry(app.Name)
	if err := writeExecutable(entryPath, document); err != nil {
		return result, fmt.Errorf("write desktop entry: %w", err)
	}
	app.DesktopFile = entryPath
	result.Path = entryPath
	b.Log.Successf("Created desktop file: %s", entryPath)
	return result, nil
}

func composeEntry(app *core.App, iconRef, categories string, terminal bool) string {
	return fmt.Sprintf(`[Desktop Entry]
Type=Application
Name=%s
Comment=Python application - %s
Exec=bash -i '%s'
Icon=%s
Terminal=%t
Categories=%s
StartupNotify=true
Version=1.0
Path=%s
`,
		app.Name,
		app.Name,
		app.LauncherScript,
		iconRef,
		terminal,
		categories,
		app.WorkDirOrDefault(),
	)
}

func parseColorOr(hex string, fallback icon.RGB) (icon.RGB, error) {
	if hex == "" {
		return fallback, nil
	}
	c, err := icon.ParseHex(hex)
	if err != nil {
		return icon.RGB{}, err
	}
	return c, nil
}

// RemoveIconFile best-effort deletes a generated icon; custom and
// system icons are never touched.
func RemoveIconFile(app *core.App) {
	if app.Icon == nil || app.Icon.Type != core.IconGenerated || app.Icon.Path == "" {
		return
	}
	_ = os.Remove(app.Icon.Path)
}

// RemoveApp deletes an application: its desktop entry first, then the
// descriptor and its remaining artifacts. Desktop-entry removal is
// best effort; a failure there is logged and does not stop the
// deletion.
func RemoveApp(registry *core.Registry, app *core.App, log Logger) error {
	if app.DesktopFile != "" {
		path, err := registry.RemoveDesktopEntry(app.Name)
		switch {
		case err != nil:
			log.Warnf("Could not remove desktop file: %v", err)
		case path != "":
			log.Infof("Removed desktop file: %s", path)
		}
	}

	deleted, err := registry.Remove(app.Name)
	if err != nil {
		return err
	}
	for _, path := range deleted {
		log.Infof("Removed %s", path)
	}
	log.Successf("Deleted application: %s", app.Name)
	return nil
}
