// t2048 is the 2048 sliding-tile puzzle for the terminal.
//
// Usage:
//
//	t2048 play [mode]        - Play classic, campaign or endless
//	t2048 play --plain       - Play the line-mode version on stdin/stdout
//	t2048 menu               - Pick a mode interactively
//	t2048 serve              - Start SSH server for remote play
//	t2048 history [mode]     - Show finished games for a mode
//	t2048 modes              - List available modes
//
// Global flags:
//
//	--config <path>    - Config file (default search: ~/.t2048/config.yaml, ./configs/t2048.yaml)
//	--seed <value>     - Set RNG seed for reproducible games
//	--db <path>        - Set database path (default: ~/.t2048/results.db)
//	--log-level <lvl>  - debug, info, warn or error
package main

import (
	"context"
	"os"
	"os/user"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string

	// Loaded in PersistentPreRun
	appConfig = config.Default()
	logger    = log.NewWithOptions(os.Stderr, log.Options{Prefix: "t2048"})
)

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		logger.Fatal("command failed", "error", err)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 - slide and merge tiles in your terminal",
	Long: `t2048 is the 2048 sliding-tile puzzle for the terminal.

Slide the board in one of four directions; equal tiles merge, and a new
2 (or occasionally 4) appears after every move. Reach the target tile
to win. The game is lost when no move can change the board.

Available commands:
  play     - Play a mode directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  history  - View finished games
  modes    - List available modes

Examples:
  t2048 play
  t2048 play endless
  t2048 play campaign --level 5
  t2048 play --plain
  t2048 serve --ssh :2222`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to results database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")

	rootCmd.AddCommand(modesCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("db") {
		cfg.Storage.DBPath = flagDBPath
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = flagLogLevel
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	logger.SetLevel(level)

	t2048.SetClassicTarget(cfg.Game.Target)
	appConfig = cfg

	logger.Debug("config loaded", "target", cfg.Game.Target, "db", cfg.Storage.DBPath, "tick_rate", cfg.Display.TickRate)
	return nil
}

// runtimeConfig builds the game runtime config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: appConfig.Display.TickRate,
		Seed:     flagSeed,
	}
}

// openStore opens the results database. Games still run without it.
func openStore() *storage.Store {
	store, err := storage.Open(appConfig.Storage.DBPath)
	if err != nil {
		logger.Warn("could not open results database", "path", appConfig.Storage.DBPath, "error", err)
		return nil
	}
	return store
}

// playerName identifies the local player in the results log.
func playerName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "local"
}
