package state

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Axis identifies one persisted mode toggle.
type Axis string

const (
	// Bypass instructs the wrapped tool to skip its own write confirmations.
	Bypass Axis = "bypass"
	// Container restricts invocations to a captured root directory.
	Container Axis = "container"
)

// ContainerConfig is the payload stored with an enabled container marker.
// Root is captured as an absolute path at the moment container mode is
// enabled and never re-derived afterwards.
type ContainerConfig struct {
	Root      string    `json:"root"`
	Allowed   []string  `json:"allowed,omitempty"`
	EnabledAt time.Time `json:"enabled_at"`
}

// marker is the payload for axes that carry no configuration.
type marker struct {
	EnabledAt time.Time `json:"enabled_at"`
}

// Store persists mode toggles as per-user marker files. Presence of a
// marker file means the axis is enabled; toggling flips presence.
type Store struct {
	dir string
	mu  sync.Mutex
}

// NewStore creates a Store backed by the given directory.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("cannot create state directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// DefaultDir returns the default per-user state directory.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "ccwrap")
	}
	return filepath.Join(home, ".ccwrap")
}

// Enabled reports whether the marker for axis exists.
func (s *Store) Enabled(axis Axis) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := os.Stat(s.path(axis))
	return err == nil
}

// Toggle flips the axis and returns the new state. Enabling writes a
// marker with the current time; disabling removes it.
func (s *Store) Toggle(axis Axis) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.path(axis)
	if _, err := os.Stat(path); err == nil {
		if err := os.Remove(path); err != nil {
			return true, fmt.Errorf("remove %s marker: %w", axis, err)
		}
		return false, nil
	}

	m := marker{EnabledAt: time.Now().UTC()}
	if err := s.writeAtomic(path, m); err != nil {
		return false, fmt.Errorf("write %s marker: %w", axis, err)
	}
	return true, nil
}

// ToggleContainer flips the container axis. When enabling, cfg is
// serialized into the marker; when disabling, cfg is ignored.
func (s *Store) ToggleContainer(cfg ContainerConfig) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.path(Container)
	if _, err := os.Stat(path); err == nil {
		if err := os.Remove(path); err != nil {
			return true, fmt.Errorf("remove container marker: %w", err)
		}
		return false, nil
	}

	if !filepath.IsAbs(cfg.Root) {
		return false, fmt.Errorf("container root must be absolute, got %q", cfg.Root)
	}
	if cfg.EnabledAt.IsZero() {
		cfg.EnabledAt = time.Now().UTC()
	}
	if err := s.writeAtomic(path, cfg); err != nil {
		return false, fmt.Errorf("write container marker: %w", err)
	}
	return true, nil
}

// ContainerConfig reads the stored container configuration.
// Returns nil when container mode is disabled.
func (s *Store) ContainerConfig() (*ContainerConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path(Container))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read container marker: %w", err)
	}
	var cfg ContainerConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse container marker: %w", err)
	}
	return &cfg, nil
}

func (s *Store) path(axis Axis) string {
	return filepath.Join(s.dir, string(axis)+".json")
}

// writeAtomic writes v as JSON via a temp file and rename, so a crashed
// invocation never leaves a half-written marker behind.
func (s *Store) writeAtomic(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, ".marker-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
