package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesFile(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestSubmitScoreKeepsOnlyBest(t *testing.T) {
	store := openTestStore(t)

	newBest, err := store.SubmitScore("snake", 100)
	if err != nil {
		t.Fatalf("SubmitScore() failed: %v", err)
	}
	if !newBest {
		t.Error("First score should be a new best")
	}

	newBest, err = store.SubmitScore("snake", 50)
	if err != nil {
		t.Fatalf("SubmitScore() failed: %v", err)
	}
	if newBest {
		t.Error("Lower score should not replace the best")
	}

	newBest, err = store.SubmitScore("snake", 200)
	if err != nil {
		t.Fatalf("SubmitScore() failed: %v", err)
	}
	if !newBest {
		t.Error("Higher score should replace the best")
	}

	score, ok, err := store.Best("snake")
	if err != nil {
		t.Fatalf("Best() failed: %v", err)
	}
	if !ok || score != 200 {
		t.Errorf("Expected best 200, got %d (ok=%v)", score, ok)
	}
}

func TestEqualScoreIsNotANewBest(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SubmitScore("cooking", 320); err != nil {
		t.Fatalf("SubmitScore() failed: %v", err)
	}
	newBest, err := store.SubmitScore("cooking", 320)
	if err != nil {
		t.Fatalf("SubmitScore() failed: %v", err)
	}
	if newBest {
		t.Error("Equal score should not count as a new best")
	}
}

func TestBestForUnknownGame(t *testing.T) {
	store := openTestStore(t)

	score, ok, err := store.Best("nosuchgame")
	if err != nil {
		t.Fatalf("Best() failed: %v", err)
	}
	if ok || score != 0 {
		t.Errorf("Expected no record, got %d (ok=%v)", score, ok)
	}
}

func TestAllBestListsOnePerGame(t *testing.T) {
	store := openTestStore(t)

	for _, sub := range []struct {
		game  string
		score int
	}{
		{"snake", 120},
		{"snake", 90},
		{"cooking", 320},
		{"shop", 1402},
	} {
		if _, err := store.SubmitScore(sub.game, sub.score); err != nil {
			t.Fatalf("SubmitScore(%q) failed: %v", sub.game, err)
		}
	}

	entries, err := store.AllBest()
	if err != nil {
		t.Fatalf("AllBest() failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(entries))
	}
	// Ordered by game ID.
	if entries[0].GameID != "cooking" || entries[1].GameID != "shop" || entries[2].GameID != "snake" {
		t.Errorf("Unexpected order: %+v", entries)
	}
	if entries[2].Score != 120 {
		t.Errorf("Expected snake best 120, got %d", entries[2].Score)
	}
}
