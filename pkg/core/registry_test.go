package core

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func newTestApp(name string) *App {
	return NewApp(name, "/home/u/.venvs/demo", "/home/u/demo/app.py", "--flag", "/home/u/demo")
}

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	return NewRegistry(filepath.Join(t.TempDir(), "apps.json"))
}

func TestUpsertAppendsAndReplaces(t *testing.T) {
	r := newTestRegistry(t)

	first := newTestApp("Demo")
	if err := r.Upsert(first); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}
	if r.Len() != 1 {
		t.Fatalf("Len = %d; want 1", r.Len())
	}

	replacement := newTestApp("Demo")
	replacement.Args = "--other"
	if err := r.Upsert(replacement); err != nil {
		t.Fatalf("Upsert replacement failed: %v", err)
	}
	if r.Len() != 1 {
		t.Fatalf("Len after replace = %d; want 1 (no duplicate)", r.Len())
	}

	got, ok := r.Get("Demo")
	if !ok {
		t.Fatal("Get after replace failed")
	}
	if got.Args != "--other" {
		t.Errorf("Args = %q; want replacement's args", got.Args)
	}
	if got.ID != first.ID {
		t.Errorf("ID changed on replace: %q vs %q", got.ID, first.ID)
	}
	if !got.CreatedAt.Equal(first.CreatedAt) {
		t.Errorf("CreatedAt mutated on replace")
	}
}

func TestUpsertRejectsMissingFields(t *testing.T) {
	r := newTestRegistry(t)

	tests := []*App{
		NewApp("", "/venv", "/script.py", "", ""),
		NewApp("Demo", "", "/script.py", "", ""),
		NewApp("Demo", "/venv", "", "", ""),
	}
	for _, app := range tests {
		if err := r.Upsert(app); !errors.Is(err, ErrMissingPrerequisite) {
			t.Errorf("Upsert(%+v) = %v; want ErrMissingPrerequisite", app, err)
		}
	}
	if r.Len() != 0 {
		t.Errorf("invalid descriptors were stored")
	}
}

func TestUpsertRejectsNormalizedCollision(t *testing.T) {
	r := newTestRegistry(t)

	if err := r.Upsert(newTestApp("My App")); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}
	err := r.Upsert(newTestApp("my-app"))
	if !errors.Is(err, ErrNameCollision) {
		t.Fatalf("Upsert colliding name = %v; want ErrNameCollision", err)
	}
	if r.Len() != 1 {
		t.Errorf("collision was stored anyway")
	}
}

func TestLoadMissingFileYieldsEmpty(t *testing.T) {
	r := NewRegistry(filepath.Join(t.TempDir(), "nope", "apps.json"))
	if err := r.Load(); err != nil {
		t.Fatalf("Load of missing file failed: %v", err)
	}
	if r.Len() != 0 {
		t.Errorf("Len = %d; want 0", r.Len())
	}
}

func TestLoadCorruptFileYieldsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "apps.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	r := NewRegistry(path)
	if err := r.Load(); err != nil {
		t.Fatalf("Load of corrupt file failed: %v", err)
	}
	if r.Len() != 0 {
		t.Errorf("Len = %d; want 0", r.Len())
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "apps.json")

	r := NewRegistry(path)
	app := newTestApp("Demo")
	app.Icon = &IconSpec{
		Type:      IconGenerated,
		BgColor:   "#4285f4",
		TextColor: "#ffffff",
		Gradient:  true,
		Path:      "/icons/demo.png",
	}
	if err := r.Upsert(app); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}
	if err := r.MarkRun("Demo"); err != nil {
		t.Fatalf("MarkRun failed: %v", err)
	}

	reloaded := NewRegistry(path)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	got, ok := reloaded.Get("Demo")
	if !ok {
		t.Fatal("Demo missing after reload")
	}
	if got.VenvPath != app.VenvPath || got.ScriptPath != app.ScriptPath || got.Args != app.Args {
		t.Errorf("descriptor fields lost in round trip: %+v", got)
	}
	if got.LastRunAt == nil {
		t.Error("LastRunAt lost in round trip")
	}
	if got.Icon == nil || got.Icon.Type != IconGenerated || got.Icon.BgColor != "#4285f4" || !got.Icon.Gradient {
		t.Errorf("icon spec lost in round trip: %+v", got.Icon)
	}
}

func TestRemoveDeletesArtifacts(t *testing.T) {
	dir := t.TempDir()
	activation := filepath.Join(dir, "demo.sh")
	launcher := filepath.Join(dir, "launch_demo.sh")
	iconFile := filepath.Join(dir, "demo.png")
	for _, p := range []string{activation, launcher, iconFile} {
		if err := os.WriteFile(p, []byte("x"), 0o755); err != nil {
			t.Fatal(err)
		}
	}

	r := NewRegistry(filepath.Join(dir, "apps.json"))
	app := newTestApp("Demo")
	app.ActivationScript = activation
	app.LauncherScript = launcher
	app.Icon = &IconSpec{Type: IconGenerated, Path: iconFile}
	if err := r.Upsert(app); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	deleted, err := r.Remove("Demo")
	if err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if len(deleted) != 3 {
		t.Errorf("deleted %d artifacts; want 3", len(deleted))
	}
	for _, p := range []string{activation, launcher, iconFile} {
		if _, err := os.Stat(p); !os.IsNotExist(err) {
			t.Errorf("artifact %q still exists", p)
		}
	}
	if _, ok := r.Get("Demo"); ok {
		t.Error("descriptor still present after Remove")
	}
}

func TestRemoveLeavesCustomIcon(t *testing.T) {
	dir := t.TempDir()
	iconFile := filepath.Join(dir, "custom.png")
	if err := os.WriteFile(iconFile, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	r := NewRegistry(filepath.Join(dir, "apps.json"))
	app := newTestApp("Demo")
	app.Icon = &IconSpec{Type: IconCustom, SourcePath: iconFile, Path: iconFile}
	if err := r.Upsert(app); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	if _, err := r.Remove("Demo"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if _, err := os.Stat(iconFile); err != nil {
		t.Error("custom icon was deleted")
	}
}

func TestRemoveUnknownApp(t *testing.T) {
	r := newTestRegistry(t)
	if _, err := r.Remove("Ghost"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Remove unknown = %v; want ErrNotFound", err)
	}
}

func TestRemoveDesktopEntry(t *testing.T) {
	dir := t.TempDir()
	entry := filepath.Join(dir, "demo.desktop")
	if err := os.WriteFile(entry, []byte("[Desktop Entry]\n"), 0o755); err != nil {
		t.Fatal(err)
	}

	r := NewRegistry(filepath.Join(dir, "apps.json"))
	app := newTestApp("Demo")
	app.DesktopFile = entry
	if err := r.Upsert(app); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	removed, err := r.RemoveDesktopEntry("Demo")
	if err != nil {
		t.Fatalf("RemoveDesktopEntry failed: %v", err)
	}
	if removed != entry {
		t.Errorf("removed %q; want %q", removed, entry)
	}
	if _, err := os.Stat(entry); !os.IsNotExist(err) {
		t.Error("desktop entry still exists")
	}
	got, _ := r.Get("Demo")
	if got.DesktopFile != "" {
		t.Error("DesktopFile reference not cleared")
	}
}

func TestMarkRunSetsTimestamp(t *testing.T) {
	r := newTestRegistry(t)
	if err := r.Upsert(newTestApp("Demo")); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	before := time.Now().Add(-time.Second)
	if err := r.MarkRun("Demo"); err != nil {
		t.Fatalf("MarkRun failed: %v", err)
	}
	got, _ := r.Get("Demo")
	if got.LastRunAt == nil || got.LastRunAt.Before(before) {
		t.Errorf("LastRunAt = %v; want a recent timestamp", got.LastRunAt)
	}
}

func TestInsertionOrderPreserved(t *testing.T) {
	r := newTestRegistry(t)
	names := []string{"Charlie", "Alpha", "Bravo"}
	for _, name := range names {
		if err := r.Upsert(newTestApp(name)); err != nil {
			t.Fatalf("Upsert(%q) failed: %v", name, err)
		}
	}

	apps := r.Apps()
	for i, name := range names {
		if apps[i].Name != name {
			t.Fatalf("apps[%d] = %q; want %q", i, apps[i].Name, name)
		}
	}
}
