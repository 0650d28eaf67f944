package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	flagLimit int
	flagBest  bool
	flagClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history [mode]",
	Short: "Show finished games",
	Long: `Display recent finished games for a mode, or a summary of every mode
when no mode is given.

Examples:
  t2048 history
  t2048 history classic
  t2048 history endless --best --limit 5
  t2048 history campaign --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of games to show")
	historyCmd.Flags().BoolVar(&flagBest, "best", false, "Order by highest tile instead of most recent")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all results for the mode")
}

var headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))

func runHistory(_ *cobra.Command, args []string) {
	store, err := storage.Open(appConfig.Storage.DBPath)
	if err != nil {
		logger.Fatal("cannot open results database", "error", err)
	}
	defer store.Close()

	if len(args) == 0 {
		if flagClear {
			logger.Fatal("--clear needs a mode")
		}
		printSummary(store)
		return
	}

	modeID, err := resolveMode(args[0])
	if err != nil {
		logger.Fatal("cannot show history", "error", err)
	}

	if flagClear {
		if err := store.ClearResults(modeID); err != nil {
			logger.Fatal("cannot clear results", "error", err)
		}
		logger.Info("results cleared", "mode", modeID)
		return
	}

	printResults(store, modeID)
}

// printSummary prints one stats row per registered mode.
func printSummary(store *storage.Store) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(headerRow).
		Headers("Mode", "Games", "Wins", "Best tile", "Avg moves", "Last played")

	for _, m := range registry.List() {
		stats, err := store.Stats(m.ID)
		if err != nil {
			logger.Fatal("cannot read stats", "mode", m.ID, "error", err)
		}
		last := "-"
		if !stats.LastPlayed.IsZero() {
			last = stats.LastPlayed.Format("2006-01-02 15:04")
		}
		t.Row(
			m.Title,
			strconv.Itoa(stats.Games),
			strconv.Itoa(stats.Wins),
			strconv.Itoa(stats.BestTile),
			fmt.Sprintf("%.0f", stats.AvgMoves),
			last,
		)
	}

	fmt.Println(t.Render())
}

// printResults prints the recent or best games for one mode.
func printResults(store *storage.Store, modeID string) {
	var (
		results []storage.GameResult
		err     error
		label   = "Recent games"
	)
	if flagBest {
		results, err = store.BestResults(modeID, flagLimit)
		label = "Best games"
	} else {
		results, err = store.RecentResults(modeID, flagLimit)
	}
	if err != nil {
		logger.Fatal("cannot read results", "error", err)
	}

	fmt.Println(headerStyle.Render(fmt.Sprintf("%s - %s", label, modeID)))
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Printf("Run 't2048 play %s' to play one.\n", modeID)
		return
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(headerRow).
		Headers("#", "Result", "Max tile", "Moves", "Target", "Player", "Date")

	for i, r := range results {
		target := "-"
		if r.Target > 0 {
			target = strconv.Itoa(r.Target)
		}
		t.Row(
			strconv.Itoa(i+1),
			string(r.Outcome),
			strconv.Itoa(r.MaxTile),
			strconv.Itoa(r.Moves),
			target,
			r.Player,
			r.CreatedAt.Format("2006-01-02 15:04"),
		)
	}

	fmt.Println(t.Render())
}

// headerRow styles the table header and pads every cell.
func headerRow(row, _ int) lipgloss.Style {
	if row == table.HeaderRow {
		return headerStyle.Padding(0, 1)
	}
	return lipgloss.NewStyle().Padding(0, 1)
}
