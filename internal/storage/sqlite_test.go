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

func mustSave(t *testing.T, store *Store, r GameResult) int64 {
	t.Helper()
	id, err := store.SaveResult(r)
	if err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}
	return id
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file and its parent directory were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsResults(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	mustSave(t, store, GameResult{Mode: "2048", Outcome: OutcomeWon, MaxTile: 2048, Moves: 900, Target: 2048})
	store.Close()

	// Migration must be idempotent
	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	results, err := store.RecentResults("2048", 10)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("Expected 1 result after reopen, got %d", len(results))
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	id := mustSave(t, store, GameResult{
		Mode:    "2048",
		Outcome: OutcomeLost,
		MaxTile: 512,
		Moves:   321,
		Target:  2048,
		Player:  "alice",
	})
	if id <= 0 {
		t.Errorf("Expected positive ID, got %d", id)
	}

	results, err := store.RecentResults("2048", 10)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(results))
	}

	r := results[0]
	if r.ID != id || r.Mode != "2048" || r.Outcome != OutcomeLost ||
		r.MaxTile != 512 || r.Moves != 321 || r.Target != 2048 || r.Player != "alice" {
		t.Errorf("Unexpected result: %+v", r)
	}
	if r.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestStoreSaveInvalidOutcome(t *testing.T) {
	store := openTestStore(t)

	_, err := store.SaveResult(GameResult{Mode: "2048", Outcome: "draw"})
	if !errors.Is(err, ErrInvalidOutcome) {
		t.Errorf("SaveResult() = %v, want ErrInvalidOutcome", err)
	}
}

func TestStoreRecentResultsOrderAndLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		mustSave(t, store, GameResult{Mode: "2048_endless", Outcome: OutcomeLost, MaxTile: 64, Moves: i + 1})
	}
	mustSave(t, store, GameResult{Mode: "2048", Outcome: OutcomeQuit, MaxTile: 8, Moves: 3})

	results, err := store.RecentResults("2048_endless", 3)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("Expected 3 results with limit, got %d", len(results))
	}

	// Newest first
	if results[0].Moves != 5 || results[1].Moves != 4 || results[2].Moves != 3 {
		t.Errorf("Results not newest first: %+v", results)
	}
}

func TestStoreBestResults(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, GameResult{Mode: "2048", Outcome: OutcomeLost, MaxTile: 256, Moves: 100})
	mustSave(t, store, GameResult{Mode: "2048", Outcome: OutcomeWon, MaxTile: 2048, Moves: 1200})
	mustSave(t, store, GameResult{Mode: "2048", Outcome: OutcomeWon, MaxTile: 2048, Moves: 950})
	mustSave(t, store, GameResult{Mode: "2048", Outcome: OutcomeLost, MaxTile: 1024, Moves: 800})

	results, err := store.BestResults("2048", 0)
	if err != nil {
		t.Fatalf("BestResults() failed: %v", err)
	}
	if len(results) != 4 {
		t.Fatalf("Expected 4 results, got %d", len(results))
	}

	want := []struct{ tile, moves int }{{2048, 950}, {2048, 1200}, {1024, 800}, {256, 100}}
	for i, w := range want {
		if results[i].MaxTile != w.tile || results[i].Moves != w.moves {
			t.Errorf("results[%d] = (%d, %d), want (%d, %d)", i, results[i].MaxTile, results[i].Moves, w.tile, w.moves)
		}
	}
}

func TestStoreClearResults(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, GameResult{Mode: "2048", Outcome: OutcomeLost, MaxTile: 128, Moves: 50})
	mustSave(t, store, GameResult{Mode: "2048", Outcome: OutcomeLost, MaxTile: 256, Moves: 70})
	mustSave(t, store, GameResult{Mode: "2048_campaign", Outcome: OutcomeWon, MaxTile: 32, Moves: 20})

	// Clear only classic results
	if err := store.ClearResults("2048"); err != nil {
		t.Fatalf("ClearResults() failed: %v", err)
	}

	classic, _ := store.RecentResults("2048", 10)
	if len(classic) != 0 {
		t.Errorf("Expected 0 classic results after clear, got %d", len(classic))
	}

	campaign, _ := store.RecentResults("2048_campaign", 10)
	if len(campaign) != 1 {
		t.Errorf("Campaign results should not be affected by clearing classic")
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats("2048")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.Games != 0 || empty.BestTile != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", empty)
	}

	mustSave(t, store, GameResult{Mode: "2048", Outcome: OutcomeWon, MaxTile: 2048, Moves: 1000})
	mustSave(t, store, GameResult{Mode: "2048", Outcome: OutcomeLost, MaxTile: 512, Moves: 400})
	mustSave(t, store, GameResult{Mode: "2048", Outcome: OutcomeQuit, MaxTile: 16, Moves: 10})

	stats, err := store.Stats("2048")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Games != 3 {
		t.Errorf("Games = %d, want 3", stats.Games)
	}
	if stats.Wins != 1 {
		t.Errorf("Wins = %d, want 1", stats.Wins)
	}
	if stats.BestTile != 2048 {
		t.Errorf("BestTile = %d, want 2048", stats.BestTile)
	}
	if stats.AvgMoves != 470 {
		t.Errorf("AvgMoves = %v, want 470", stats.AvgMoves)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestOutcomeValid(t *testing.T) {
	for _, o := range []Outcome{OutcomeWon, OutcomeLost, OutcomeQuit} {
		if !o.Valid() {
			t.Errorf("%q should be valid", o)
		}
	}
	if Outcome("").Valid() {
		t.Error("empty outcome should be invalid")
	}
}
