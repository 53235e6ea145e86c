package core

import (
	"encoding/json"
	"io"
	"os"
	"time"
)

// DTOs for JSON serialization

// AppDTO is the JSON shape for one saved application. The format is
// additive: records written by older versions simply lack the newer
// optional fields.
type AppDTO struct {
	ID      string `json:"id,omitempty"`
	Name    string `json:"name"`
	Venv    string `json:"venv"`
	Script  string `json:"script"`
	Args    string `json:"args"`
	Workdir string `json:"workdir"`
	Created string `json:"created"`
	LastRun string `json:"last_run,omitempty"`

	ActivationScript string `json:"activation_script,omitempty"`
	LauncherScript   string `json:"launcher_script,omitempty"`
	DesktopFile      string `json:"desktop_file,omitempty"`

	IconPath     string           `json:"icon_path,omitempty"`
	IconType     string           `json:"icon_type,omitempty"`
	IconSettings *IconSettingsDTO `json:"icon_settings,omitempty"`
	IconName     string           `json:"icon_name,omitempty"`
}

// IconSettingsDTO is the persisted form of generated-icon settings.
type IconSettingsDTO struct {
	BgColor   string `json:"bg_color"`
	TextColor string `json:"text_color"`
	Bold      bool   `json:"bold"`
	Gradient  bool   `json:"gradient"`
}

// SaveApps writes the full collection to path as a pretty JSON array.
func SaveApps(path string, apps []*App) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteApps(file, apps, true)
}

// LoadApps reads a collection from path. A missing file yields an
// empty collection.
func LoadApps(path string) ([]*App, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer file.Close()
	return ReadApps(file)
}

func WriteApps(w io.Writer, apps []*App, pretty bool) error {
	dtos := make([]AppDTO, 0, len(apps))
	for _, app := range apps {
		dtos = append(dtos, toDTO(app))
	}
	encoder := json.NewEncoder(w)
	if pretty {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(dtos)
}

func ReadApps(r io.Reader) ([]*App, error) {
	var dtos []AppDTO
	if err := json.NewDecoder(r).Decode(&dtos); err != nil {
		return nil, err
	}
	apps := make([]*App, 0, len(dtos))
	for _, dto := range dtos {
		apps = append(apps, fromDTO(dto))
	}
	return apps, nil
}

func toDTO(app *App) AppDTO {
	dto := AppDTO{
		ID:               app.ID,
		Name:             app.Name,
		Venv:             app.VenvPath,
		Script:           app.ScriptPath,
		Args:             app.Args,
		Workdir:          app.WorkDir,
		Created:          app.CreatedAt.Format(time.RFC3339),
		ActivationScript: app.ActivationScript,
		LauncherScript:   app.LauncherScript,
		DesktopFile:      app.DesktopFile,
	}
	if app.LastRunAt != nil {
		dto.LastRun = app.LastRunAt.Format(time.RFC3339)
	}
	if app.Icon != nil {
		dto.IconType = string(app.Icon.Type)
		switch app.Icon.Type {
		case IconGenerated:
			dto.IconPath = app.Icon.Path
			dto.IconSettings = &IconSettingsDTO{
				BgColor:   app.Icon.BgColor,
				TextColor: app.Icon.TextColor,
				Bold:      app.Icon.Bold,
				Gradient:  app.Icon.Gradient,
			}
		case IconCustom:
			dto.IconPath = app.Icon.SourcePath
		case IconSystem:
			dto.IconName = app.Icon.IconName
		}
	}
	return dto
}

func fromDTO(dto AppDTO) *App {
	app := &App{
		ID:               dto.ID,
		Name:             dto.Name,
		VenvPath:         dto.Venv,
		ScriptPath:       dto.Script,
		Args:             dto.Args,
		WorkDir:          dto.Workdir,
		CreatedAt:        parseTimestamp(dto.Created),
		ActivationScript: dto.ActivationScript,
		LauncherScript:   dto.LauncherScript,
		DesktopFile:      dto.DesktopFile,
	}
	if dto.LastRun != "" {
		t := parseTimestamp(dto.LastRun)
		if !t.IsZero() {
			app.LastRunAt = &t
		}
	}
	switch IconType(dto.IconType) {
	case IconGenerated:
		app.Icon = &IconSpec{Type: IconGenerated, Path: dto.IconPath}
		if dto.IconSettings != nil {
			app.Icon.BgColor = dto.IconSettings.BgColor
			app.Icon.TextColor = dto.IconSettings.TextColor
			app.Icon.Bold = dto.IconSettings.Bold
			app.Icon.Gradient = dto.IconSettings.Gradient
		}
	case IconCustom:
		app.Icon = &IconSpec{Type: IconCustom, SourcePath: dto.IconPath, Path: dto.IconPath}
	case IconSystem:
		app.Icon = &IconSpec{Type: IconSystem, IconName: dto.IconName, Path: dto.IconName}
	}
	return app
}

// parseTimestamp accepts RFC3339 and the zone-less ISO forms older
// registry files carry.
func parseTimestamp(s string) time.Time {
	for _, layout := range []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02T15:04:05.999999",
		"2006-01-02T15:04:05",
	} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
