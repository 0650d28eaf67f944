package t2048

// Spawn4Prob is the probability that a spawned tile is a 4 instead of a 2.
const Spawn4Prob = 0.10

// Source is the randomness consumed by spawning.
// *math/rand/v2.Rand satisfies it; tests substitute scripted sources.
type Source interface {
	IntN(n int) int
	Float64() float64
}

// Spawn places a 2 (90%) or 4 (10%) on a uniformly chosen empty cell.
// On a full board it does nothing and returns false.
func Spawn(b *Board, src Source) (Cell, bool) {
	empty := EmptyCells(*b)
	if len(empty) == 0 {
		return Cell{}, false
	}

	cell := empty[src.IntN(len(empty))]

	value := 2
	if src.Float64() < Spawn4Prob {
		value = 4
	}
	b[cell.Row][cell.Col] = value
	return cell, true
}

// Engine applies moves to boards using its random source for spawns.
type Engine struct {
	src Source
}

// NewEngine creates an engine that spawns tiles from src.
func NewEngine(src Source) *Engine {
	return &Engine{src: src}
}

// Initialize returns an empty board with two spawned tiles.
func (e *Engine) Initialize() Board {
	var b Board
	Spawn(&b, e.src)
	Spawn(&b, e.src)
	return b
}

// Move slides the board in dir and then spawns exactly one tile,
// whether or not the slide changed anything.
func (e *Engine) Move(b *Board, dir Direction) {
	Slide(b, dir)
	Spawn(b, e.src)
}
