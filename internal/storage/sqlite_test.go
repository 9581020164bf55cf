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
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

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

	results := []Result{
		{GameID: "tiles", Difficulty: "easy", Rows: 5, Columns: 3, Moves: 80, Duration: 95 * time.Second},
		{GameID: "tiles", Difficulty: "easy", Rows: 5, Columns: 3, Moves: 60, Duration: 95 * time.Second},
		{GameID: "tiles", Difficulty: "easy", Rows: 5, Columns: 3, Moves: 120, Duration: 70 * time.Second},
		{GameID: "tiles", Difficulty: "hard", Rows: 8, Columns: 5, Moves: 400, Duration: 600 * time.Second},
		{GameID: "tiles_swap", Difficulty: "easy", Rows: 5, Columns: 3, Moves: 12, Duration: 30 * time.Second},
	}
	for _, r := range results {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	easy, err := store.TopResults("tiles", "easy", 10)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}
	if len(easy) != 3 {
		t.Fatalf("Expected 3 easy results, got %d", len(easy))
	}

	// Fastest first, ties broken by fewer moves
	expected := []struct {
		seconds time.Duration
		moves   int
	}{
		{70 * time.Second, 120},
		{95 * time.Second, 60},
		{95 * time.Second, 80},
	}
	for i, e := range expected {
		if easy[i].Duration != e.seconds || easy[i].Moves != e.moves {
			t.Errorf("result %d = %v/%d moves, expected %v/%d moves",
				i, easy[i].Duration, easy[i].Moves, e.seconds, e.moves)
		}
	}

	all, err := store.TopResults("tiles", "", 10)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}
	if len(all) != 4 {
		t.Errorf("Expected 4 results across difficulties, got %d", len(all))
	}

	limited, err := store.TopResults("tiles", "", 2)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("Expected 2 results with limit, got %d", len(limited))
	}
}

func TestStoreBestResult(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestResult("tiles", "easy")
	if err != nil {
		t.Fatalf("BestResult() failed: %v", err)
	}
	if best != nil {
		t.Errorf("Expected no best result for an empty store, got %+v", best)
	}

	store.SaveResult(Result{GameID: "tiles", Difficulty: "easy", Moves: 50, Duration: 90 * time.Second})
	store.SaveResult(Result{GameID: "tiles", Difficulty: "easy", Moves: 70, Duration: 61500 * time.Millisecond})

	best, err = store.BestResult("tiles", "easy")
	if err != nil {
		t.Fatalf("BestResult() failed: %v", err)
	}
	if best == nil || best.Duration != 61*time.Second {
		t.Errorf("BestResult() = %+v, expected the 61s result", best)
	}
}

func TestStoreResultByID(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveResult(Result{GameID: "tiles_surprise", Difficulty: "medium", Rows: 7, Columns: 4, Moves: 33, Duration: 5 * time.Minute})
	if err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}
	if id == "" {
		t.Fatal("SaveResult() returned an empty id")
	}

	r, err := store.ResultByID(id)
	if err != nil {
		t.Fatalf("ResultByID() failed: %v", err)
	}
	if r == nil {
		t.Fatal("ResultByID() returned nil")
	}
	if r.GameID != "tiles_surprise" || r.Rows != 7 || r.Columns != 4 || r.Moves != 33 {
		t.Errorf("ResultByID() = %+v", r)
	}

	missing, err := store.ResultByID("nope")
	if err != nil {
		t.Fatalf("ResultByID() failed: %v", err)
	}
	if missing != nil {
		t.Errorf("Expected nil for unknown id, got %+v", missing)
	}
}

func TestStoreClearResults(t *testing.T) {
	store := openTestStore(t)

	store.SaveResult(Result{GameID: "tiles", Difficulty: "easy", Moves: 10, Duration: time.Minute})
	store.SaveResult(Result{GameID: "tiles_swap", Difficulty: "easy", Moves: 10, Duration: time.Minute})

	if err := store.ClearResults("tiles"); err != nil {
		t.Fatalf("ClearResults() failed: %v", err)
	}

	cleared, _ := store.TopResults("tiles", "", 10)
	if len(cleared) != 0 {
		t.Errorf("Expected 0 results after clear, got %d", len(cleared))
	}

	kept, _ := store.TopResults("tiles_swap", "", 10)
	if len(kept) != 1 {
		t.Errorf("Other games should keep their results, got %d", len(kept))
	}
}

func TestStoreGamesStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveResult(Result{GameID: "tiles", Difficulty: "easy", Moves: 40, Duration: 60 * time.Second})
	store.SaveResult(Result{GameID: "tiles", Difficulty: "easy", Moves: 90, Duration: 30 * time.Second})

	stats, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}

	st, ok := stats["tiles"]
	if !ok {
		t.Fatal("Expected stats for tiles")
	}
	if st.GamesCount != 2 {
		t.Errorf("GamesCount = %d, expected 2", st.GamesCount)
	}
	if st.BestTime != 30*time.Second {
		t.Errorf("BestTime = %v, expected 30s", st.BestTime)
	}
	if st.FewestMoves != 40 {
		t.Errorf("FewestMoves = %d, expected 40", st.FewestMoves)
	}
	if st.AvgTime != 45*time.Second {
		t.Errorf("AvgTime = %v, expected 45s", st.AvgTime)
	}
}
