package history

import (
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestRecordFillsIDAndTime(t *testing.T) {
	store := openTestStore(t)

	if err := store.Record(Entry{Kind: "prompt", Cwd: "/repo", Command: "add a logger"}); err != nil {
		t.Fatalf("Record: %v", err)
	}

	entries, err := store.Recent(10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].ID == "" {
		t.Error("expected generated ID")
	}
	if entries[0].Time.IsZero() {
		t.Error("expected generated timestamp")
	}
	if entries[0].Command != "add a logger" {
		t.Errorf("Command = %q", entries[0].Command)
	}
}

func TestRecentNewestFirst(t *testing.T) {
	store := openTestStore(t)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		err := store.Record(Entry{
			Time:    base.Add(time.Duration(i) * time.Minute),
			Kind:    "prompt",
			Cwd:     "/repo",
			Command: "cmd",
		})
		if err != nil {
			t.Fatal(err)
		}
	}

	entries, err := store.Recent(3)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if !entries[0].Time.After(entries[1].Time) || !entries[1].Time.After(entries[2].Time) {
		t.Errorf("entries not newest first: %v %v %v", entries[0].Time, entries[1].Time, entries[2].Time)
	}
}

func TestRecentEmpty(t *testing.T) {
	store := openTestStore(t)
	entries, err := store.Recent(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("expected no entries, got %d", len(entries))
	}
}

func TestReopenKeepsEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	first, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	first.Record(Entry{Kind: "wrapper", Cwd: "/", Command: "--bypass"})
	first.Close()

	second, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer second.Close()

	entries, err := second.Recent(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("expected persisted entry after reopen, got %d", len(entries))
	}
}
