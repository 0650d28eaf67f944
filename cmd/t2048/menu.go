package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a mode from a menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a mode.
After a game ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Esc          - Back
  Q            - Quit

Examples:
  t2048 menu
  t2048 menu --db ./results.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	player := playerName()

	for {
		menuResult, err := tui.RunMenu(cfg)
		if err != nil {
			logger.Error("menu failed", "error", err)
			return
		}

		cfg = menuResult.Config

		if menuResult.Quit {
			return
		}

		if menuResult.WantsHistory {
			goBack, err := tui.RunHistory(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				logger.Error("history failed", "error", err)
			}
			if goBack {
				continue
			}
			return
		}

		sel := menuResult.Selection
		game, err := registry.Create(sel.GameID)
		if err != nil {
			logger.Error("cannot create game", "error", err)
			continue
		}
		if g, ok := game.(*t2048.Game); ok && sel.StartLevel > 0 {
			g.StartAt(sel.StartLevel)
		}

		// Fresh seed for each game unless one was pinned
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		if err := tui.Run(game, tui.StoreSaver(store), cfg, player); err != nil {
			logger.Error("game ended with error", "error", err)
		}
	}
}
