// Package console runs 2048 as a plain line-oriented loop: the board is printed
// tab-separated and each move is read as a single letter.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// Commands accepted at the prompt.
var commands = map[string]t2048.Direction{
	"a": t2048.DirLeft,
	"b": t2048.DirRight,
	"c": t2048.DirUp,
	"d": t2048.DirDown,
}

const quitCommand = "q"

// Result describes how a console game ended.
type Result struct {
	Outcome storage.Outcome
	Board   t2048.Board
	Moves   int
	MaxTile int
	Target  int
}

// Console plays one game over a reader and writer.
type Console struct {
	in     *bufio.Scanner
	out    *bufio.Writer
	engine *t2048.Engine
	target int
}

// New creates a console game. A target <= 0 disables the win check.
func New(in io.Reader, out io.Writer, src t2048.Source, target int) *Console {
	return &Console{
		in:     bufio.NewScanner(in),
		out:    bufio.NewWriter(out),
		engine: t2048.NewEngine(src),
		target: target,
	}
}

// Run plays until the board is stuck, the target is reached, the player quits,
// or input ends. End of input counts as quitting.
func (c *Console) Run(ctx context.Context) (Result, error) {
	board := c.engine.Initialize()
	res := Result{Target: c.target}

	finish := func(outcome storage.Outcome, msg string) (Result, error) {
		c.println(msg)
		res.Outcome = outcome
		res.Board = board
		res.MaxTile = t2048.MaxTile(board)
		return res, c.out.Flush()
	}

	c.display(board)
	for {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		// Loss is checked before win.
		if t2048.IsOver(board) {
			return finish(storage.OutcomeLost, "Game Over! Sorry, try again.")
		}
		if c.target > 0 && t2048.HasWon(board, c.target) {
			return finish(storage.OutcomeWon, fmt.Sprintf("Congrats! You've won by reaching %d.", c.target))
		}

		c.println("Use a, b, c, d to move or q to quit.")
		c.print("Enter move (a-left, b-right, c-up, d-down, q-quit): ")
		if err := c.out.Flush(); err != nil {
			return res, err
		}

		if !c.in.Scan() {
			if err := c.in.Err(); err != nil {
				return res, fmt.Errorf("console: read move: %w", err)
			}
			return finish(storage.OutcomeQuit, "\nGame has been quit.")
		}

		move := strings.TrimSpace(c.in.Text())
		if move == quitCommand {
			return finish(storage.OutcomeQuit, "Game has been quit.")
		}

		dir, ok := commands[move]
		if !ok {
			c.println("Invalid input. Please enter a valid move (a, b, c, d, q).")
			continue
		}

		c.engine.Move(&board, dir)
		res.Moves++
		c.display(board)
	}
}

// display prints the board one tab-separated row per line, followed by a blank line.
func (c *Console) display(board t2048.Board) {
	for _, row := range board.Rows() {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = strconv.Itoa(v)
		}
		c.println(strings.Join(cells, "\t"))
	}
	c.print("\n\n")
}

func (c *Console) print(s string) {
	//nolint:errcheck // Write errors surface on Flush
	c.out.WriteString(s)
}

func (c *Console) println(s string) {
	c.print(s + "\n")
}
