// Package t2048 implements the 2048 sliding-tile puzzle: the board engine,
// terminal-state checks, and a tick-driven game with classic, campaign and
// endless modes.
package t2048

// Level defines a campaign level with a target tile.
type Level struct {
	ID     int
	Name   string
	Target int // Target tile value to reach
}

// Levels defines the 10 campaign levels. Targets strictly increase so that
// clearing one level never clears the next on the same board.
var Levels = []Level{
	{ID: 1, Name: "Warm-up", Target: 32},
	{ID: 2, Name: "Getting Started", Target: 64},
	{ID: 3, Name: "Building Momentum", Target: 128},
	{ID: 4, Name: "The Climb", Target: 256},
	{ID: 5, Name: "Halfway There", Target: 512},
	{ID: 6, Name: "Four Digits", Target: 1024},
	{ID: 7, Name: "Classic 2048", Target: 2048},
	{ID: 8, Name: "Beyond Limits", Target: 4096},
	{ID: 9, Name: "Grandmaster", Target: 8192},
	{ID: 10, Name: "Ultimate Champion", Target: 16384},
}

// LevelCount returns the number of campaign levels.
func LevelCount() int {
	return len(Levels)
}

// GetLevel returns the level at the given index (0-based).
// Returns nil if index is out of range.
func GetLevel(index int) *Level {
	if index < 0 || index >= len(Levels) {
		return nil
	}
	return &Levels[index]
}

// LevelNames returns the names of all levels.
func LevelNames() []string {
	names := make([]string, len(Levels))
	for i, lvl := range Levels {
		names[i] = lvl.Name
	}
	return names
}

// LevelTargets returns the targets of all levels.
func LevelTargets() []int {
	targets := make([]int, len(Levels))
	for i, lvl := range Levels {
		targets[i] = lvl.Target
	}
	return targets
}
