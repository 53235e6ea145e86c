package core

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"pylauncher/pkg/config"
)

// Registry is the durable, ordered collection of applications. It is
// the sole writer of the registry file; all mutations persist before
// returning and are serialized by one mutex, so generated artifacts
// always match the last-saved descriptor.
type Registry struct {
	mu   sync.Mutex
	path string
	apps []*App
}

// NewRegistry manages the collection persisted at path.
func NewRegistry(path string) *Registry {
	return &Registry{path: path}
}

// Load replaces the in-memory collection with the persisted one. A
// missing or unparsable file yields an empty collection rather than an
// error, so startup never blocks on a damaged registry.
func (r *Registry) Load() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	apps, err := LoadApps(r.path)
	if err != nil {
		r.apps = nil
		return nil
	}
	r.apps = apps
	return nil
}

// Save persists the current collection.
func (r *Registry) Save() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.save()
}

func (r *Registry) save() error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return err
	}
	return SaveApps(r.path, r.apps)
}

// Len is the number of saved applications.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.apps)
}

// Apps returns clones of all descriptors in insertion order.
func (r *Registry) Apps() []*App {
	r.mu.Lock()
	defer r.mu.Unlock()

	apps := make([]*App, 0, len(r.apps))
	for _, app := range r.apps {
		apps = append(apps, app.Clone())
	}
	return apps
}

// Get returns a clone of the descriptor with the exact name.
func (r *Registry) Get(name string) (*App, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if i := r.indexOf(name); i >= 0 {
		return r.apps[i].Clone(), true
	}
	return nil, false
}

// Upsert validates and saves a descriptor. An existing descriptor with
// the same name is replaced in place, keeping its identity and
// creation time; a different name that normalizes to the same artifact
// name is rejected with ErrNameCollision rather than silently sharing
// files. The collection is persisted before returning.
func (r *Registry) Upsert(app *App) error {
	if err := app.ValidateForSave(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	normalized := config.Normalize(app.Name)
	for _, existing := range r.apps {
		if existing.Name != app.Name && config.Normalize(existing.Name) == normalized {
			return fmt.Errorf("%w: %q and %q share artifact name %q",
				ErrNameCollision, app.Name, existing.Name, normalized)
		}
	}

	stored := app.Clone()
	if i := r.indexOf(app.Name); i >= 0 {
		prev := r.apps[i]
		stored.ID = prev.ID
		stored.CreatedAt = prev.CreatedAt
		if stored.LastRunAt == nil {
			stored.LastRunAt = prev.LastRunAt
		}
		r.apps[i] = stored
	} else {
		if stored.ID == "" {
			stored.ID = uuid.NewString()
		}
		if stored.CreatedAt.IsZero() {
			stored.CreatedAt = time.Now()
		}
		r.apps = append(r.apps, stored)
	}

	return r.save()
}

// Remove deletes the descriptor and best-effort removes the scripts
// and generated icon it references. Custom and system icons are never
// touched. Desktop-entry removal is a separate explicit operation. It
// returns the artifact paths that were actually deleted.
func (r *Registry) Remove(name string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(name)
	if i < 0 {
		return nil, fmt.Errorf("%w: application %q", ErrNotFound, name)
	}

	app := r.apps[i]
	artifacts := []string{app.ActivationScript, app.LauncherScript}
	if app.Icon != nil && app.Icon.Type == IconGenerated {
		artifacts = append(artifacts, app.Icon.Path)
	}

	var deleted []string
	for _, artifact := range artifacts {
		if artifact == "" {
			continue
		}
		if err := os.Remove(artifact); err == nil {
			deleted = append(deleted, artifact)
		}
	}

	r.apps = append(r.apps[:i], r.apps[i+1:]...)
	return deleted, r.save()
}

// RemoveDesktopEntry deletes the app's desktop entry file and clears
// the reference, leaving the descriptor itself in place.
func (r *Registry) RemoveDesktopEntry(name string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(name)
	if i < 0 {
		return "", fmt.Errorf("%w: application %q", ErrNotFound, name)
	}

	app := r.apps[i]
	path := app.DesktopFile
	if path == "" {
		return "", nil
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return "", err
	}
	app.DesktopFile = ""
	return path, r.save()
}

// MarkRun stamps the app's last-run time with now and persists.
func (r *Registry) MarkRun(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(name)
	if i < 0 {
		return fmt.Errorf("%w: application %q", ErrNotFound, name)
	}
	now := time.Now()
	r.apps[i].LastRunAt = &now
	return r.save()
}

// Update applies fn to the stored descriptor under the registry lock
// and persists the result. The generation pipeline uses it to record
// artifact paths.
func (r *Registry) Update(name string, fn func(*App)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(name)
	if i < 0 {
		return fmt.Errorf("%w: application %q", ErrNotFound, name)
	}
	fn(r.apps[i])
	return r.save()
}

func (r *Registry) indexOf(name string) int {
	for i, app := range r.apps {
		if app.Name == name {
			return i
		}
	}
	return -1
}
