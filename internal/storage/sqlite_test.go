package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "journal.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Parent directories are created on demand
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestAppendAndRecent(t *testing.T) {
	store := openTestStore(t)

	entries := []struct {
		player  string
		starter string
		ticks   uint64
	}{
		{"ash", "Red", 120},
		{"misty", "Blue", 340},
		{"brock", "Green", 95},
	}
	for _, e := range entries {
		if _, err := store.AppendJournal("nomekop", e.player, e.starter, e.ticks); err != nil {
			t.Fatalf("AppendJournal() failed: %v", err)
		}
	}

	recent, err := store.Recent(2)
	if err != nil {
		t.Fatalf("Recent() failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(recent))
	}

	// Newest first
	if recent[0].Player != "brock" || recent[0].Starter != "Green" || recent[0].Ticks != 95 {
		t.Errorf("Unexpected newest entry: %+v", recent[0])
	}
	if recent[1].Player != "misty" {
		t.Errorf("Expected misty second, got %s", recent[1].Player)
	}
	if recent[0].GameID != "nomekop" {
		t.Errorf("Expected game id nomekop, got %s", recent[0].GameID)
	}
	if recent[0].CreatedAt.IsZero() || time.Since(recent[0].CreatedAt) > 24*time.Hour {
		t.Errorf("Unexpected created_at: %v", recent[0].CreatedAt)
	}
}

func TestRecentDefaultLimit(t *testing.T) {
	store := openTestStore(t)
	for i := 0; i < 15; i++ {
		if _, err := store.AppendJournal("nomekop", "p", "Blue", uint64(i)); err != nil {
			t.Fatal(err)
		}
	}

	recent, err := store.Recent(0)
	if err != nil {
		t.Fatalf("Recent() failed: %v", err)
	}
	if len(recent) != 10 {
		t.Errorf("Expected default limit of 10, got %d", len(recent))
	}
}

func TestCountByStarter(t *testing.T) {
	store := openTestStore(t)
	for _, s := range []string{"Red", "Blue", "Red", "Green", "Red", "Blue"} {
		if _, err := store.AppendJournal("nomekop", "p", s, 1); err != nil {
			t.Fatal(err)
		}
	}

	counts, err := store.CountByStarter()
	if err != nil {
		t.Fatalf("CountByStarter() failed: %v", err)
	}

	expected := []StarterCount{{"Red", 3}, {"Blue", 2}, {"Green", 1}}
	if len(counts) != len(expected) {
		t.Fatalf("Expected %d rows, got %d", len(expected), len(counts))
	}
	for i := range expected {
		if counts[i] != expected[i] {
			t.Errorf("Row %d: expected %+v, got %+v", i, expected[i], counts[i])
		}
	}
}

func TestClear(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.AppendJournal("nomekop", "p", "Red", 1); err != nil {
		t.Fatal(err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}

	recent, err := store.Recent(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(recent) != 0 {
		t.Errorf("Expected empty journal, got %d entries", len(recent))
	}
}

func TestPersistenceAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "journal.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := store.AppendJournal("nomekop_strict", "ash", "Blue", 10); err != nil {
		t.Fatal(err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	recent, err := store.Recent(5)
	if err != nil {
		t.Fatal(err)
	}
	if len(recent) != 1 || recent[0].GameID != "nomekop_strict" {
		t.Errorf("Expected persisted entry, got %+v", recent)
	}
}
