package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
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
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreInMemory(t *testing.T) {
	store, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open(:memory:) failed: %v", err)
	}
	defer store.Close()

	if err := store.Put("k", []byte("v")); err != nil {
		t.Fatalf("Put() failed: %v", err)
	}
	got, err := store.Get("k")
	if err != nil || string(got) != "v" {
		t.Errorf("Get() = %q, %v", got, err)
	}
}

func TestStoreGetPut(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.Get("catchverse-leaderboard"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get() on empty store error = %v, expected ErrNotFound", err)
	}

	if err := store.Put("catchverse-leaderboard", []byte(`[{"name":"ada","score":3}]`)); err != nil {
		t.Fatalf("Put() failed: %v", err)
	}
	if err := store.Put("catchverse-leaderboard", []byte(`[]`)); err != nil {
		t.Fatalf("second Put() failed: %v", err)
	}

	got, err := store.Get("catchverse-leaderboard")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if string(got) != "[]" {
		t.Errorf("Get() = %q, expected the last written value", got)
	}
}

func TestStorePersistsAcrossOpen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.Put("k", []byte("kept")); err != nil {
		t.Fatalf("Put() failed: %v", err)
	}
	if _, err := store.SavePlay("ada", 12, 3); err != nil {
		t.Fatalf("SavePlay() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	if got, err := store.Get("k"); err != nil || string(got) != "kept" {
		t.Errorf("Get() after reopen = %q, %v", got, err)
	}
	if plays, err := store.RecentPlays(10); err != nil || len(plays) != 1 {
		t.Errorf("RecentPlays() after reopen = %v, %v", plays, err)
	}
}

func TestStoreRecentPlays(t *testing.T) {
	store := openTestStore(t)

	for i, name := range []string{"ada", "bob", "cy", "dee", "eve"} {
		if _, err := store.SavePlay(name, (i+1)*10, i+1); err != nil {
			t.Fatalf("SavePlay() failed: %v", err)
		}
	}

	plays, err := store.RecentPlays(3)
	if err != nil {
		t.Fatalf("RecentPlays() failed: %v", err)
	}
	if len(plays) != 3 {
		t.Fatalf("Expected 3 plays with limit, got %d", len(plays))
	}

	// Newest first
	if plays[0].Name != "eve" || plays[1].Name != "dee" || plays[2].Name != "cy" {
		t.Errorf("Plays not in expected order: %v", plays)
	}
	if plays[0].Score != 50 || plays[0].Level != 5 {
		t.Errorf("Expected eve with 50 points at level 5, got %+v", plays[0])
	}
	if plays[0].CreatedAt.IsZero() {
		t.Error("CreatedAt was not parsed")
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	// No plays yet
	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Plays != 0 || stats.HighScore != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	store.SavePlay("ada", 10, 3)
	store.SavePlay("ada", 30, 7)
	store.SavePlay("bob", 20, 5)

	stats, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Plays != 3 {
		t.Errorf("Expected 3 plays, got %d", stats.Plays)
	}
	if stats.Players != 2 {
		t.Errorf("Expected 2 players, got %d", stats.Players)
	}
	if stats.HighScore != 30 {
		t.Errorf("Expected high score of 30, got %d", stats.HighScore)
	}
	if stats.AvgScore != 20 {
		t.Errorf("Expected average of 20, got %v", stats.AvgScore)
	}
	if stats.TotalScore != 60 {
		t.Errorf("Expected total of 60, got %d", stats.TotalScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed was not parsed")
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
