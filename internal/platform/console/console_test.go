package console

import (
	"bytes"
	"context"
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// firstCellSource always spawns a 2 on the first empty cell in row-major order.
type firstCellSource struct{}

func (firstCellSource) IntN(int) int     { return 0 }
func (firstCellSource) Float64() float64 { return 0.5 }

func play(t *testing.T, input string, src t2048.Source, target int) (Result, string) {
	t.Helper()
	var out bytes.Buffer
	res, err := New(strings.NewReader(input), &out, src, target).Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	return res, out.String()
}

func TestQuit(t *testing.T) {
	res, out := play(t, "q\n", rand.New(rand.NewPCG(1, 2)), 2048)

	if res.Outcome != storage.OutcomeQuit || res.Moves != 0 {
		t.Errorf("Result = %+v, want quit with no moves", res)
	}
	if !strings.Contains(out, "Game has been quit.") {
		t.Error("missing quit message")
	}

	// The initial board is printed as four tab-separated rows
	lines := strings.Split(out, "\n")
	for i := range t2048.BoardSize {
		if n := len(strings.Split(lines[i], "\t")); n != t2048.BoardSize {
			t.Errorf("line %d has %d fields, want %d: %q", i, n, t2048.BoardSize, lines[i])
		}
	}
	if n := t2048.BoardSize*t2048.BoardSize - len(t2048.EmptyCells(res.Board)); n != 2 {
		t.Errorf("initial board has %d tiles, want 2", n)
	}
}

func TestEndOfInputQuits(t *testing.T) {
	res, _ := play(t, "", rand.New(rand.NewPCG(1, 2)), 2048)
	if res.Outcome != storage.OutcomeQuit {
		t.Errorf("Outcome = %s, want quit", res.Outcome)
	}
}

func TestInvalidInputReprompts(t *testing.T) {
	res, out := play(t, "x\nleft\n\nq\n", rand.New(rand.NewPCG(3, 4)), 2048)

	if got := strings.Count(out, "Invalid input."); got != 3 {
		t.Errorf("invalid input messages = %d, want 3", got)
	}
	if got := strings.Count(out, "Enter move"); got != 4 {
		t.Errorf("prompts = %d, want 4", got)
	}
	if res.Moves != 0 {
		t.Errorf("Moves = %d, want 0", res.Moves)
	}
}

func TestMovesAreApplied(t *testing.T) {
	res, _ := play(t, "a\nb\n c \nd\nq\n", rand.New(rand.NewPCG(5, 6)), 2048)

	if res.Moves != 4 {
		t.Errorf("Moves = %d, want 4", res.Moves)
	}
	// Two initial tiles plus one spawn per move, minus merges
	if res.MaxTile < 2 {
		t.Errorf("MaxTile = %d, want at least 2", res.MaxTile)
	}
}

func TestScriptedWin(t *testing.T) {
	// Initial board [2,2,0,0]; a left move merges to 4 and spawns a 2 beside it.
	res, out := play(t, "a\nq\n", firstCellSource{}, 4)

	if res.Outcome != storage.OutcomeWon {
		t.Fatalf("Outcome = %s, want won", res.Outcome)
	}
	if res.Moves != 1 || res.MaxTile != 4 {
		t.Errorf("Result = %+v, want 1 move and max tile 4", res)
	}
	want := t2048.Board{{4, 2, 0, 0}}
	if res.Board != want {
		t.Errorf("Board = %v, want %v", res.Board, want)
	}
	if !strings.Contains(out, "Congrats! You've won by reaching 4.") {
		t.Error("missing win message")
	}
	if !strings.Contains(out, "4\t2\t0\t0\n") {
		t.Error("board after the move should be printed")
	}
}

func TestWinCheckedBeforePrompt(t *testing.T) {
	res, out := play(t, "", firstCellSource{}, 2)

	if res.Outcome != storage.OutcomeWon || res.Moves != 0 {
		t.Errorf("Result = %+v, want an immediate win", res)
	}
	if strings.Contains(out, "Enter move") {
		t.Error("a finished game should not prompt")
	}
}

func TestNoTargetNeverWins(t *testing.T) {
	res, _ := play(t, "a\na\nq\n", firstCellSource{}, 0)
	if res.Outcome != storage.OutcomeQuit {
		t.Errorf("Outcome = %s, want quit", res.Outcome)
	}
}

func TestCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	_, err := New(strings.NewReader("a\n"), &out, firstCellSource{}, 2048).Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() = %v, want context.Canceled", err)
	}
}
