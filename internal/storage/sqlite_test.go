package storage

import (
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

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	runs := []ScoreEntry{
		{GameID: "ztminer", Profile: "local", Score: 1200, Layer: 1},
		{GameID: "ztminer", Profile: "alice", Score: 500, Layer: 0},
		{GameID: "ztminer", Profile: "local", Score: 12050, Layer: 4, Victory: true},
		{GameID: "other", Profile: "local", Score: 9999},
	}
	for _, r := range runs {
		if _, err := store.SaveScore(r); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("ztminer", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 12050 || scores[1].Score != 1200 || scores[2].Score != 500 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
	if !scores[0].Victory || scores[0].Layer != 4 {
		t.Errorf("Top run should be a layer 4 victory, got %+v", scores[0])
	}
	if scores[2].Profile != "alice" {
		t.Errorf("Expected profile alice, got %q", scores[2].Profile)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore(ScoreEntry{GameID: "test", Score: (i + 1) * 100})
	}

	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("ztminer")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore(ScoreEntry{GameID: "ztminer", Score: 100})
	store.SaveScore(ScoreEntry{GameID: "ztminer", Score: 300})
	store.SaveScore(ScoreEntry{GameID: "ztminer", Score: 200})

	high, err = store.HighScore("ztminer")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore(ScoreEntry{GameID: "ztminer", Score: 100})
	store.SaveScore(ScoreEntry{GameID: "other", Score: 300})

	if err := store.ClearScores("ztminer"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("ztminer", 10); len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	if scores, _ := store.TopScores("other", 10); len(scores) != 1 {
		t.Errorf("Other game scores should not be affected")
	}
}

func TestStoreFlags(t *testing.T) {
	store := openTestStore(t)

	// Missing flags read as false
	seen, err := store.Flag("alice", "briefing_seen")
	if err != nil {
		t.Fatalf("Flag() failed: %v", err)
	}
	if seen {
		t.Error("Expected unset flag to read false")
	}

	if err := store.SetFlag("alice", "briefing_seen", true); err != nil {
		t.Fatalf("SetFlag() failed: %v", err)
	}
	// Idempotent upsert
	if err := store.SetFlag("alice", "briefing_seen", true); err != nil {
		t.Fatalf("second SetFlag() failed: %v", err)
	}

	if seen, _ := store.Flag("alice", "briefing_seen"); !seen {
		t.Error("Expected flag to be set for alice")
	}
	if seen, _ := store.Flag("bob", "briefing_seen"); seen {
		t.Error("Flags must be scoped per profile")
	}

	if err := store.SetFlag("alice", "briefing_seen", false); err != nil {
		t.Fatalf("SetFlag(false) failed: %v", err)
	}
	if seen, _ := store.Flag("alice", "briefing_seen"); seen {
		t.Error("Expected flag to be cleared")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore(ScoreEntry{GameID: "ztminer", Score: 1000, Layer: 2})
	store.SaveScore(ScoreEntry{GameID: "ztminer", Score: 3000, Layer: 4, Victory: true})

	stats, err := store.GetGameStats("ztminer")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 {
		t.Errorf("GamesCount = %d, want 2", stats.GamesCount)
	}
	if stats.Victories != 1 {
		t.Errorf("Victories = %d, want 1", stats.Victories)
	}
	if stats.HighScore != 3000 || stats.TotalScore != 4000 || stats.AvgScore != 2000 {
		t.Errorf("unexpected aggregates: %+v", stats)
	}
	if stats.DeepestRun != 4 {
		t.Errorf("DeepestRun = %d, want 4", stats.DeepestRun)
	}
}

func TestStoreExpandHomePath(t *testing.T) {
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
