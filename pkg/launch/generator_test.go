package launch

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"pylauncher/pkg/config"
	"pylauncher/pkg/core"
)

type discardLogger struct{}

func (discardLogger) Infof(string, ...any)    {}
func (discardLogger) Successf(string, ...any) {}
func (discardLogger) Warnf(string, ...any)    {}
func (discardLogger) Errorf(string, ...any)   {}

func testPaths(t *testing.T) *config.Paths {
	t.Helper()
	root := t.TempDir()
	return config.NewPaths(
		filepath.Join(root, "cfg"),
		filepath.Join(root, "icons"),
		filepath.Join(root, "applications"),
		".sh",
	)
}

func testGenerator(t *testing.T) *Generator {
	t.Helper()
	return NewGenerator(testPaths(t), PosixTemplate{}, discardLogger{})
}

func TestGenerateScripts(t *testing.T) {
	gen := testGenerator(t)
	app := demoApp()

	if err := gen.GenerateScripts(app); err != nil {
		t.Fatalf("GenerateScripts: %v", err)
	}

	if app.ActivationScript != gen.Paths.ActivationScript(app.Name) {
		t.Errorf("activation path not recorded: %q", app.ActivationScript)
	}
	if app.LauncherScript != gen.Paths.LauncherScript(app.Name) {
		t.Errorf("launcher path not recorded: %q", app.LauncherScript)
	}

	for _, p := range []string{app.ActivationScript, app.LauncherScript} {
		info, err := os.Stat(p)
		if err != nil {
			t.Fatalf("stat %s: %v", p, err)
		}
		if runtime.GOOS != "windows" && info.Mode().Perm()&0o100 == 0 {
			t.Errorf("%s is not executable: %v", p, info.Mode())
		}
	}
}

func TestGenerateScriptsIdempotent(t *testing.T) {
	gen := testGenerator(t)
	app := demoApp()

	if err := gen.GenerateScripts(app); err != nil {
		t.Fatalf("first generation: %v", err)
	}
	first, err := os.ReadFile(app.ActivationScript)
	if err != nil {
		t.Fatal(err)
	}

	if err := gen.GenerateScripts(app); err != nil {
		t.Fatalf("second generation: %v", err)
	}
	second, err := os.ReadFile(app.ActivationScript)
	if err != nil {
		t.Fatal(err)
	}

	if string(first) != string(second) {
		t.Error("regeneration produced different content")
	}
}

func TestGenerateScriptsReflectsDescriptorChanges(t *testing.T) {
	gen := testGenerator(t)
	app := demoApp()

	if err := gen.GenerateScripts(app); err != nil {
		t.Fatal(err)
	}
	app.Args = "--other"
	if err := gen.GenerateScripts(app); err != nil {
		t.Fatal(err)
	}

	content, err := os.ReadFile(app.ActivationScript)
	if err != nil {
		t.Fatal(err)
	}
	if want := `python3 "/home/u/demo/app.py" --other`; !strings.Contains(string(content), want) {
		t.Errorf("regenerated script missing %q:\n%s", want, content)
	}
}

func TestEnsureScriptsSkipsExisting(t *testing.T) {
	gen := testGenerator(t)
	app := demoApp()

	if err := gen.GenerateScripts(app); err != nil {
		t.Fatal(err)
	}

	// Overwrite with a marker; EnsureScripts must leave it alone.
	if err := os.WriteFile(app.ActivationScript, []byte("marker"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := gen.EnsureScripts(app); err != nil {
		t.Fatal(err)
	}
	content, err := os.ReadFile(app.ActivationScript)
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != "marker" {
		t.Error("EnsureScripts regenerated an existing script")
	}
}

func TestEnsureScriptsRegeneratesMissing(t *testing.T) {
	gen := testGenerator(t)
	app := demoApp()

	if err := gen.GenerateScripts(app); err != nil {
		t.Fatal(err)
	}
	if err := os.Remove(app.LauncherScript); err != nil {
		t.Fatal(err)
	}
	if err := gen.EnsureScripts(app); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(app.LauncherScript); err != nil {
		t.Errorf("launcher not regenerated: %v", err)
	}
}

func TestRunRequiresExistingScript(t *testing.T) {
	runner := NewRunner(discardLogger{})

	app := demoApp()
	if err := runner.Run(app); err == nil {
		t.Error("expected error for app without activation script")
	}

	app.ActivationScript = "/nonexistent/script.sh"
	err := runner.Run(app)
	if err == nil {
		t.Fatal("expected error for missing script file")
	}
	if !errors.Is(err, core.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}
