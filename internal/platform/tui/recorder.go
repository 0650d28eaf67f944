package tui

import (
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// ResultSaver persists finished games. *storage.Store implements it.
type ResultSaver interface {
	SaveResult(r storage.GameResult) (int64, error)
}

// targeter is implemented by games that expose their current win tile.
type targeter interface {
	Target() int
}

// resultRecorder writes at most one result row per game.
type resultRecorder struct {
	saver  ResultSaver
	player string
	saved  bool
}

// reset arms the recorder for a new game.
func (r *resultRecorder) reset() {
	r.saved = false
}

// finish records a terminal state. Non-terminal states are ignored.
func (r *resultRecorder) finish(game registry.Game, state core.GameState) error {
	if !state.GameOver {
		return nil
	}
	outcome := storage.OutcomeLost
	if state.Won {
		outcome = storage.OutcomeWon
	}
	return r.save(game, state, outcome)
}

// abandon records a game left before it ended. Games without a move are not logged.
func (r *resultRecorder) abandon(game registry.Game, state core.GameState) error {
	if state.GameOver || state.Moves == 0 {
		return nil
	}
	return r.save(game, state, storage.OutcomeQuit)
}

func (r *resultRecorder) save(game registry.Game, state core.GameState, outcome storage.Outcome) error {
	if r.saved || r.saver == nil {
		return nil
	}
	r.saved = true

	result := storage.GameResult{
		Mode:    game.ID(),
		Outcome: outcome,
		MaxTile: state.MaxTile,
		Moves:   state.Moves,
		Player:  r.player,
	}
	if t, ok := game.(targeter); ok {
		result.Target = t.Target()
	}

	_, err := r.saver.SaveResult(result)
	return err
}
