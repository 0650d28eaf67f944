package main

import (
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/platform/console"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	flagPlain  bool
	flagTarget int
	flagLevel  int
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the given mode: classic (default), campaign or endless.

Controls:
  Arrows/WASD/hjkl - Slide
  P/Esc            - Pause
  R                - Restart (after the game ends)
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

With --plain the board is printed as text and moves are read line by line:
  a - left   b - right   c - up   d - down   q - quit

Examples:
  t2048 play
  t2048 play endless
  t2048 play campaign --level 3
  t2048 play --target 1024
  t2048 play --plain --seed 42`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagPlain, "plain", false, "Line-mode game on stdin/stdout")
	playCmd.Flags().IntVar(&flagTarget, "target", 0, "Win tile for classic mode (overrides config)")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Campaign start level (1-10)")
}

// resolveMode maps a mode name or registry ID to a registry ID.
func resolveMode(name string) (string, error) {
	if name == "" {
		return t2048.IDClassic, nil
	}
	if id, ok := registry.Resolve(name); ok {
		return id, nil
	}
	return "", fmt.Errorf("unknown mode %q (run 't2048 modes' to see available modes)", name)
}

func runPlay(cmd *cobra.Command, args []string) {
	name := appConfig.Game.Mode
	if len(args) > 0 {
		name = args[0]
	}
	modeID, err := resolveMode(name)
	if err != nil {
		logger.Fatal("cannot play", "error", err)
	}

	if cmd.Flags().Changed("target") {
		cfg := appConfig
		cfg.Game.Target = flagTarget
		if err := cfg.Validate(); err != nil {
			logger.Fatal("invalid --target", "error", err)
		}
		t2048.SetClassicTarget(flagTarget)
	}
	if flagLevel < 0 || flagLevel > t2048.LevelCount() {
		logger.Fatal("invalid --level", "level", flagLevel, "max", t2048.LevelCount())
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	if flagPlain {
		runPlain(cmd, modeID, store)
		return
	}

	game, err := registry.Create(modeID)
	if err != nil {
		logger.Fatal("cannot create game", "error", err)
	}
	if g, ok := game.(*t2048.Game); ok && flagLevel > 0 {
		g.StartAt(flagLevel)
	}

	logger.Debug("starting game", "mode", modeID, "seed", flagSeed)
	if err := tui.Run(game, tui.StoreSaver(store), runtimeConfig(), playerName()); err != nil {
		logger.Error("game ended with error", "error", err)
	}
}

// runPlain plays the line-mode loop. Campaign mode plays a single level.
func runPlain(cmd *cobra.Command, modeID string, store *storage.Store) {
	target := appConfig.Game.Target
	if cmd.Flags().Changed("target") {
		target = flagTarget
	}
	switch modeID {
	case t2048.IDEndless:
		target = 0
	case t2048.IDCampaign:
		level := t2048.GetLevel(max(flagLevel, 1) - 1)
		target = level.Target
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	src := rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>1|1))

	res, err := console.New(os.Stdin, os.Stdout, src, target).Run(cmd.Context())
	if err != nil {
		logger.Fatal("console game failed", "error", err)
	}

	if store == nil || (res.Outcome == storage.OutcomeQuit && res.Moves == 0) {
		return
	}
	_, err = store.SaveResult(storage.GameResult{
		Mode:    modeID,
		Outcome: res.Outcome,
		MaxTile: res.MaxTile,
		Moves:   res.Moves,
		Target:  res.Target,
		Player:  playerName(),
	})
	if err != nil {
		logger.Warn("could not save result", "error", err)
	}
}
