package t2048

import "fmt"

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Valid reports whether d is one of the four move directions.
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirRight
}

// ParseDirection converts a user-facing name into a Direction.
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "up", "u":
		return DirUp, true
	case "down", "d":
		return DirDown, true
	case "left", "l":
		return DirLeft, true
	case "right", "r":
		return DirRight, true
	}
	return 0, false
}

// BoardSize is the fixed board dimension.
const BoardSize = 4

// Board represents a 4x4 game board. Zero is an empty cell.
type Board [BoardSize][BoardSize]int

// Line is a single row or column, possibly reversed, read in merge order.
type Line [BoardSize]int

// At returns the value at the given row and column.
func (b *Board) At(row, col int) int {
	return b[row][col]
}

// Rows returns a copy of the grid for rendering.
func (b *Board) Rows() [BoardSize][BoardSize]int {
	return *b
}

// MergeLine collapses a line toward index 0.
// Equal neighbours combine pairwise from the left, and a tile produced by a merge
// does not merge again in the same pass: [2,2,2,0] becomes [4,2,0,0].
func MergeLine(line Line) Line {
	tiles := make([]int, 0, BoardSize)
	for _, v := range line {
		if v != 0 {
			tiles = append(tiles, v)
		}
	}

	for i := 0; i < len(tiles)-1; i++ {
		if tiles[i] != 0 && tiles[i] == tiles[i+1] {
			tiles[i] *= 2
			tiles[i+1] = 0
		}
	}

	var result Line
	pos := 0
	for _, v := range tiles {
		if v != 0 {
			result[pos] = v
			pos++
		}
	}
	return result
}

// lineSpec describes how a direction reads its lines from the board.
// Vertical directions read columns; reversed directions read from the far edge.
type lineSpec struct {
	vertical bool
	reversed bool
}

var lineSpecs = map[Direction]lineSpec{
	DirLeft:  {vertical: false, reversed: false},
	DirRight: {vertical: false, reversed: true},
	DirUp:    {vertical: true, reversed: false},
	DirDown:  {vertical: true, reversed: true},
}

// cell maps position i along line n to board coordinates.
func (s lineSpec) cell(n, i int) (row, col int) {
	if s.reversed {
		i = BoardSize - 1 - i
	}
	if s.vertical {
		return i, n
	}
	return n, i
}

func (s lineSpec) read(b *Board, n int) Line {
	var line Line
	for i := range BoardSize {
		r, c := s.cell(n, i)
		line[i] = b[r][c]
	}
	return line
}

func (s lineSpec) write(b *Board, n int, line Line) {
	for i := range BoardSize {
		r, c := s.cell(n, i)
		b[r][c] = line[i]
	}
}

// Slide merges every line of the board in the given direction without spawning.
// It panics on an invalid direction.
func Slide(b *Board, dir Direction) {
	spec, ok := lineSpecs[dir]
	if !ok {
		panic(fmt.Sprintf("t2048: invalid direction %d", int(dir)))
	}
	for n := range BoardSize {
		spec.write(b, n, MergeLine(spec.read(b, n)))
	}
}

// Cell is a board coordinate.
type Cell struct{ Row, Col int }

// EmptyCells returns coordinates of all empty cells in row-major order.
func EmptyCells(board Board) []Cell {
	var cells []Cell
	for r := range BoardSize {
		for c := range BoardSize {
			if board[r][c] == 0 {
				cells = append(cells, Cell{Row: r, Col: c})
			}
		}
	}
	return cells
}

// MaxTile returns the maximum tile value on the board.
func MaxTile(board Board) int {
	maxVal := 0
	for r := range BoardSize {
		for c := range BoardSize {
			if board[r][c] > maxVal {
				maxVal = board[r][c]
			}
		}
	}
	return maxVal
}
