package core

import (
	"bytes"
	"strings"
	"testing"
)

// Older registry files lack the newer optional fields; reading them
// must not fail and must leave those fields absent.
func TestReadAppsTolerantOfOldRecords(t *testing.T) {
	old := `[
  {
    "name": "Legacy",
    "venv": "/home/u/.venvs/legacy",
    "script": "/home/u/legacy/run.py",
    "args": "",
    "workdir": "/home/u/legacy",
    "created": "2023-04-01T10:30:00"
  }
]`
	apps, err := ReadApps(strings.NewReader(old))
	if err != nil {
		t.Fatalf("ReadApps failed: %v", err)
	}
	if len(apps) != 1 {
		t.Fatalf("len = %d; want 1", len(apps))
	}

	app := apps[0]
	if app.Name != "Legacy" {
		t.Errorf("Name = %q", app.Name)
	}
	if app.CreatedAt.IsZero() {
		t.Error("zone-less created timestamp not parsed")
	}
	if app.LastRunAt != nil || app.Icon != nil || app.DesktopFile != "" {
		t.Error("absent optional fields should stay absent")
	}
}

func TestWriteAppsOmitsAbsentFields(t *testing.T) {
	app := NewApp("Demo", "/venv", "/script.py", "", "")

	var buf bytes.Buffer
	if err := WriteApps(&buf, []*App{app}, true); err != nil {
		t.Fatalf("WriteApps failed: %v", err)
	}

	out := buf.String()
	for _, field := range []string{"last_run", "icon_settings", "icon_name", "desktop_file"} {
		if strings.Contains(out, field) {
			t.Errorf("output contains %q for an app that never set it:\n%s", field, out)
		}
	}
}

func TestIconVariantsRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		icon *IconSpec
	}{
		{"generated", &IconSpec{
			Type: IconGenerated, BgColor: "#4285f4", TextColor: "#ffffff",
			Bold: true, Gradient: true, Path: "/icons/a.png",
		}},
		{"custom", &IconSpec{Type: IconCustom, SourcePath: "/pics/a.png", Path: "/pics/a.png"}},
		{"system", &IconSpec{Type: IconSystem, IconName: "python", Path: "python"}},
	}

	for _, test := range tests {
		app := NewApp("App "+test.name, "/venv", "/script.py", "", "")
		app.Icon = test.icon

		var buf bytes.Buffer
		if err := WriteApps(&buf, []*App{app}, false); err != nil {
			t.Fatalf("%s: WriteApps failed: %v", test.name, err)
		}
		back, err := ReadApps(&buf)
		if err != nil {
			t.Fatalf("%s: ReadApps failed: %v", test.name, err)
		}
		got := back[0].Icon
		if got == nil || got.Type != test.icon.Type {
			t.Fatalf("%s: icon type lost: %+v", test.name, got)
		}
		switch test.icon.Type {
		case IconGenerated:
			if got.BgColor != test.icon.BgColor || !got.Bold || !got.Gradient {
				t.Errorf("%s: settings lost: %+v", test.name, got)
			}
		case IconCustom:
			if got.SourcePath != test.icon.SourcePath {
				t.Errorf("%s: source path lost: %+v", test.name, got)
			}
		case IconSystem:
			if got.IconName != test.icon.IconName {
				t.Errorf("%s: icon name lost: %+v", test.name, got)
			}
		}
	}
}
