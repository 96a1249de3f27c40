package state

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestToggleBypassOnOff(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	if store.Enabled(Bypass) {
		t.Fatal("expected bypass disabled in fresh store")
	}

	on, err := store.Toggle(Bypass)
	if err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	if !on {
		t.Error("first toggle should enable")
	}
	if !store.Enabled(Bypass) {
		t.Error("expected bypass enabled after first toggle")
	}

	off, err := store.Toggle(Bypass)
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if off {
		t.Error("second toggle should disable")
	}
	if store.Enabled(Bypass) {
		t.Error("expected bypass disabled after second toggle")
	}
}

func TestDoubleToggleLeavesNoMarker(t *testing.T) {
	dir := t.TempDir()
	store, _ := NewStore(dir)

	for _, axis := range []Axis{Bypass, Container} {
		if axis == Container {
			if _, err := store.ToggleContainer(ContainerConfig{Root: "/repo"}); err != nil {
				t.Fatalf("enable container: %v", err)
			}
			if _, err := store.ToggleContainer(ContainerConfig{}); err != nil {
				t.Fatalf("disable container: %v", err)
			}
		} else {
			store.Toggle(axis)
			store.Toggle(axis)
		}
		if _, err := os.Stat(filepath.Join(dir, string(axis)+".json")); !os.IsNotExist(err) {
			t.Errorf("expected no %s marker after double toggle", axis)
		}
	}
}

func TestContainerConfigRoundTrip(t *testing.T) {
	store, _ := NewStore(t.TempDir())

	cfg := ContainerConfig{
		Root:    "/home/dev/repo",
		Allowed: []string{"~/shared", "/tmp/scratch"},
	}
	on, err := store.ToggleContainer(cfg)
	if err != nil {
		t.Fatalf("ToggleContainer: %v", err)
	}
	if !on {
		t.Fatal("expected container enabled")
	}

	got, err := store.ContainerConfig()
	if err != nil {
		t.Fatalf("ContainerConfig: %v", err)
	}
	if got == nil {
		t.Fatal("expected stored config")
	}
	if got.Root != cfg.Root {
		t.Errorf("root = %q, want %q", got.Root, cfg.Root)
	}
	if len(got.Allowed) != 2 || got.Allowed[0] != "~/shared" {
		t.Errorf("allowed = %v, want %v", got.Allowed, cfg.Allowed)
	}
	if got.EnabledAt.IsZero() {
		t.Error("expected EnabledAt to be set")
	}
}

func TestContainerConfigDisabled(t *testing.T) {
	store, _ := NewStore(t.TempDir())

	got, err := store.ContainerConfig()
	if err != nil {
		t.Fatalf("ContainerConfig: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil config when disabled, got %+v", got)
	}
}

func TestContainerRootMustBeAbsolute(t *testing.T) {
	store, _ := NewStore(t.TempDir())

	if _, err := store.ToggleContainer(ContainerConfig{Root: "repo"}); err == nil {
		t.Error("expected error for relative root")
	}
	if store.Enabled(Container) {
		t.Error("failed enable must not leave a marker")
	}
}

func TestStateSharedAcrossStoreInstances(t *testing.T) {
	dir := t.TempDir()

	first, _ := NewStore(dir)
	if _, err := first.Toggle(Bypass); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	second, _ := NewStore(dir)
	if !second.Enabled(Bypass) {
		t.Error("expected second store instance to observe enabled bypass")
	}
}

func TestToggleContainerPreservesCapturedRoot(t *testing.T) {
	store, _ := NewStore(t.TempDir())

	enabled := time.Now().UTC().Add(-time.Hour)
	if _, err := store.ToggleContainer(ContainerConfig{Root: "/repo", EnabledAt: enabled}); err != nil {
		t.Fatalf("ToggleContainer: %v", err)
	}

	got, _ := store.ContainerConfig()
	if !got.EnabledAt.Equal(enabled) {
		t.Errorf("EnabledAt = %v, want %v", got.EnabledAt, enabled)
	}
}
