package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/storage"
)

func TestHistoryShowsResults(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for _, r := range []storage.GameResult{
		{Mode: "2048", Outcome: storage.OutcomeWon, MaxTile: 2048, Moves: 1000, Player: "bob"},
		{Mode: "2048", Outcome: storage.OutcomeLost, MaxTile: 256, Moves: 200},
	} {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	m := NewHistoryModel(store, 100, 30)
	view := m.View()

	for _, want := range []string{"HISTORY - 2048", "Games: 2", "Wins: 1", "Best tile: 2048", "bob"} {
		if !strings.Contains(view, want) {
			t.Errorf("history view missing %q", want)
		}
	}

	// Next mode has no games
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(HistoryModel)
	if !strings.Contains(m.View(), "No games recorded yet.") {
		t.Error("empty mode should show the empty message")
	}
}

func TestHistoryWithoutStore(t *testing.T) {
	m := NewHistoryModel(nil, 60, 20)
	if !strings.Contains(m.View(), "No games yet") {
		t.Error("missing store should show no games")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(HistoryModel).IsGoingBack() {
		t.Error("esc should go back")
	}
}

func TestResultRows(t *testing.T) {
	rows := resultRows([]storage.GameResult{{Outcome: storage.OutcomeQuit, MaxTile: 8, Moves: 3}})
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
	if rows[0][0] != "quit" || rows[0][1] != "8" || rows[0][2] != "3" || rows[0][3] != "-" {
		t.Errorf("unexpected row %v", rows[0])
	}
}
