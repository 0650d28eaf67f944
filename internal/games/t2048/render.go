package t2048

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-2048/internal/core"
)

const (
	cellWidth  = 5 // Width of each cell (including left border)
	cellHeight = 2 // Height of each cell (including top border)
)

// tileColors maps tile values to display colors. Larger tiles fall back to magenta.
var tileColors = map[int]core.Color{
	2:    core.ColorWhite,
	4:    core.ColorBrightWhite,
	8:    core.ColorYellow,
	16:   core.ColorOrange,
	32:   core.ColorBrightRed,
	64:   core.ColorRed,
	128:  core.ColorBrightYellow,
	256:  core.ColorGreen,
	512:  core.ColorBrightGreen,
	1024: core.ColorCyan,
	2048: core.ColorBrightCyan,
}

// TileColor returns the display color for a tile value.
func TileColor(value int) core.Color {
	if c, ok := tileColors[value]; ok {
		return c
	}
	return core.ColorBrightMagenta
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	// Calculate board position (centered)
	boardW := BoardSize*cellWidth + 1  // +1 for right border
	boardH := BoardSize*cellHeight + 1 // +1 for bottom border
	hudHeight := 3

	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight + 1

	g.renderHUD(dst, boardX, boardW)
	DrawBoard(dst, g.board, boardX, boardY)
	g.renderOverlays(dst, core.NewRect(boardX, boardY, boardW, boardH))

	controls := g.Controls()
	dst.DrawTextColored((g.screenW-len(controls))/2, boardY+boardH+1, controls, core.ColorGray)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title, goal and move counter.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	title := g.Title()
	dst.DrawTextColored(boardX+(boardW-len(title))/2, 0, title, core.ColorBrightYellow)

	movesStr := fmt.Sprintf("Moves: %d", g.moves)
	dst.DrawText(boardX, 1, movesStr)

	var infoStr string
	switch g.mode {
	case ModeCampaign:
		infoStr = fmt.Sprintf("Lv %d/%d -> %d", g.levelIndex+1, LevelCount(), g.target)
	case ModeEndless:
		infoStr = fmt.Sprintf("Max: %d", MaxTile(g.board))
	default:
		infoStr = fmt.Sprintf("Goal: %d", g.target)
	}
	dst.DrawText(core.Max(boardX, boardX+boardW-len(infoStr)), 2, infoStr)
}

// DrawBoard draws the 4x4 grid with colored tiles at (boardX, boardY).
func DrawBoard(dst *core.Screen, board Board, boardX, boardY int) {
	for y := range BoardSize + 1 {
		for x := range BoardSize + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == BoardSize:
				corner = '┐'
			case y == BoardSize && x == 0:
				corner = '└'
			case y == BoardSize && x == BoardSize:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == BoardSize:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == BoardSize:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.Set(px, py, corner)

			if x < BoardSize {
				for i := 1; i < cellWidth; i++ {
					dst.Set(px+i, py, '─')
				}
			}
			if y < BoardSize {
				for i := 1; i < cellHeight; i++ {
					dst.Set(px, py+i, '│')
				}
			}
		}
	}

	for r := range BoardSize {
		for c := range BoardSize {
			val := board[r][c]
			if val == 0 {
				continue
			}

			cellX := boardX + c*cellWidth + 1
			cellY := boardY + r*cellHeight + 1

			valStr := strconv.Itoa(val)
			padLeft := core.Max(0, (cellWidth-1-len(valStr))/2)
			dst.DrawTextColored(cellX+padLeft, cellY, valStr, TileColor(val))
		}
	}
}

// renderOverlays draws game state overlays centered on the board.
func (g *Game) renderOverlays(dst *core.Screen, board core.Rect) {
	cx, cy := board.Center()

	switch {
	case g.paused:
		drawOverlay(dst, cx, cy, "PAUSED", "Press P to resume")
	case g.levelCleared:
		targetStr := fmt.Sprintf("Reached %d!", g.target)
		if g.levelIndex >= LevelCount()-1 {
			drawOverlay(dst, cx, cy, targetStr, "Final level complete!")
		} else {
			drawOverlay(dst, cx, cy, targetStr, fmt.Sprintf("Next: Level %d", g.levelIndex+2))
		}
	case g.won && g.mode == ModeCampaign:
		drawOverlay(dst, cx, cy, "CAMPAIGN COMPLETE!", "Press R to restart")
	case g.won:
		drawOverlay(dst, cx, cy, "YOU WIN!", fmt.Sprintf("Reached %d", g.target), "Press R to restart")
	case g.gameOver:
		drawOverlay(dst, cx, cy, "GAME OVER", fmt.Sprintf("Max tile: %d", MaxTile(g.board)), "Press R to restart")
	}
}

// drawOverlay draws a boxed block of centered lines.
func drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = core.Max(maxLen, len(line))
	}

	box := core.CenteredRect(centerX, centerY, maxLen+4, len(lines)+2)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	for i, line := range lines {
		dst.DrawTextColored(centerX-len(line)/2, box.Y+1+i, line, core.ColorBrightWhite)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD: Move | P: Pause | R: Restart | Q: Quit"
}
