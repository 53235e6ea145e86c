package core

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var (
	// ErrMissingPrerequisite marks an empty required descriptor field;
	// nothing is written when it fires.
	ErrMissingPrerequisite = errors.New("missing prerequisite")

	// ErrNotFound marks a referenced path that does not exist on disk.
	ErrNotFound = errors.New("not found")

	// ErrNameCollision marks two distinct display names normalizing to
	// the same artifact name.
	ErrNameCollision = errors.New("name collision")
)

// ValidateForSave checks the fields required before any artifact is
// written. Path existence is deliberately not checked here; that is
// the job of the explicit Check* calls.
func (a *App) ValidateForSave() error {
	if strings.TrimSpace(a.Name) == "" {
		return fmt.Errorf("%w: application name is empty", ErrMissingPrerequisite)
	}
	if strings.TrimSpace(a.VenvPath) == "" {
		return fmt.Errorf("%w: virtual environment path is empty", ErrMissingPrerequisite)
	}
	if strings.TrimSpace(a.ScriptPath) == "" {
		return fmt.Errorf("%w: script path is empty", ErrMissingPrerequisite)
	}
	return nil
}

// IsVirtualEnv reports whether the directory looks like a Python
// virtual environment.
func IsVirtualEnv(path string) bool {
	indicators := []string{
		filepath.Join(path, "pyvenv.cfg"),
		filepath.Join(path, "bin", "activate"),
		filepath.Join(path, "Scripts", "activate.bat"),
		filepath.Join(path, "Scripts", "activate.ps1"),
	}
	for _, indicator := range indicators {
		if _, err := os.Stat(indicator); err == nil {
			return true
		}
	}
	return false
}

// VenvCheck reports what a virtual environment inspection found.
type VenvCheck struct {
	ActivateScript string
	Interpreter    string
}

// CheckVenv verifies the venv exists and locates its activation
// mechanism and interpreter. Both POSIX and Windows layouts are
// recognized.
func CheckVenv(venvPath string) (VenvCheck, error) {
	check := VenvCheck{}

	if _, err := os.Stat(venvPath); err != nil {
		return check, fmt.Errorf("%w: virtual environment %s", ErrNotFound, venvPath)
	}

	for _, candidate := range []string{
		filepath.Join(venvPath, "bin", "activate"),
		filepath.Join(venvPath, "Scripts", "activate.bat"),
	} {
		if _, err := os.Stat(candidate); err == nil {
			check.ActivateScript = candidate
			break
		}
	}
	if check.ActivateScript == "" {
		return check, fmt.Errorf("%w: activation script in %s", ErrNotFound, venvPath)
	}

	for _, candidate := range []string{
		filepath.Join(venvPath, "bin", "python"),
		filepath.Join(venvPath, "bin", "python3"),
		filepath.Join(venvPath, "Scripts", "python.exe"),
	} {
		if _, err := os.Stat(candidate); err == nil {
			check.Interpreter = candidate
			break
		}
	}
	if check.Interpreter == "" {
		return check, fmt.Errorf("%w: python interpreter in %s", ErrNotFound, venvPath)
	}

	return check, nil
}

// ScriptCheck reports what a script inspection found.
type ScriptCheck struct {
	HasShebang  bool
	HasImports  bool
	HasPySuffix bool
}

// CheckScript verifies the target script exists and is readable, and
// sniffs for a Python shebang or import statements.
func CheckScript(path string) (ScriptCheck, error) {
	check := ScriptCheck{HasPySuffix: strings.HasSuffix(path, ".py")}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return check, fmt.Errorf("%w: script %s", ErrNotFound, path)
		}
		return check, err
	}

	content := string(data)
	check.HasShebang = strings.HasPrefix(content, "#!/usr/bin/env python")
	check.HasImports = strings.Contains(content, "import ") || strings.Contains(content, "from ")
	return check, nil
}

// FindVirtualEnvs scans common locations for virtual environments.
func FindVirtualEnvs() []string {
	var roots []string
	if home, err := os.UserHomeDir(); err == nil {
		roots = append(roots,
			home,
			filepath.Join(home, "venvs"),
			filepath.Join(home, ".virtualenvs"),
			filepath.Join(home, "Envs"),
		)
	}
	if cwd, err := os.Getwd(); err == nil {
		roots = append(roots,
			cwd,
			filepath.Join(cwd, "venv"),
			filepath.Join(cwd, ".venv"),
			filepath.Join(cwd, "env"),
		)
	}

	var venvs []string
	seen := make(map[string]bool)
	for _, root := range roots {
		entries, err := os.ReadDir(root)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			full := filepath.Join(root, entry.Name())
			if seen[full] || !IsVirtualEnv(full) {
				continue
			}
			seen[full] = true
			venvs = append(venvs, full)
		}
	}
	return venvs
}
