package t2048

import (
	"math/rand/v2"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeClassic  Mode = "classic"
	ModeCampaign Mode = "campaign"
	ModeEndless  Mode = "endless"
)

// DefaultTarget is the classic win tile.
const DefaultTarget = 2048

// Registry IDs for each mode.
const (
	IDClassic  = "2048"
	IDCampaign = "2048_campaign"
	IDEndless  = "2048_endless"
)

// Game implements the 2048 puzzle game on top of Engine.
type Game struct {
	mode   Mode
	engine *Engine
	tick   uint64

	board      Board
	moves      int
	levelIndex int // Current campaign level (0-indexed)
	startLevel int // Campaign level to start from (1-indexed), 0 for the first
	target     int // Current win tile, 0 for none

	// Screen dimensions
	screenW  int
	screenH  int
	tickRate int

	// Game state flags
	gameOver        bool
	levelCleared    bool
	won             bool
	paused          bool
	tooSmall        bool
	levelClearTicks int // Ticks spent on the level-cleared banner
}

var classicTarget = DefaultTarget

// SetClassicTarget sets the win tile for classic mode. Non-positive values restore the default.
func SetClassicTarget(target int) {
	if target <= 0 {
		target = DefaultTarget
	}
	classicTarget = target
}

// New creates a new classic mode game.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewCampaign creates a new campaign mode game.
func NewCampaign() *Game {
	return &Game{mode: ModeCampaign}
}

// NewEndless creates a new endless mode game.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

func init() {
	registry.Register(IDClassic, func() registry.Game {
		return New()
	}, string(ModeClassic))
	registry.Register(IDCampaign, func() registry.Game {
		return NewCampaign()
	}, string(ModeCampaign))
	registry.Register(IDEndless, func() registry.Game {
		return NewEndless()
	}, string(ModeEndless))
}

// ID returns the game identifier.
func (g *Game) ID() string {
	switch g.mode {
	case ModeCampaign:
		return IDCampaign
	case ModeEndless:
		return IDEndless
	default:
		return IDClassic
	}
}

// Title returns the display name.
func (g *Game) Title() string {
	switch g.mode {
	case ModeCampaign:
		return "2048 (Campaign)"
	case ModeEndless:
		return "2048 (Endless)"
	default:
		return "2048"
	}
}

// Mode returns the game mode.
func (g *Game) Mode() Mode {
	return g.mode
}

// Board returns a copy of the current board.
func (g *Game) Board() Board {
	return g.board
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.engine = NewEngine(rand.New(rand.NewPCG(uint64(cfg.Seed), uint64(cfg.Seed)>>1|1)))
	g.tick = 0
	g.moves = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}
	g.gameOver = false
	g.levelCleared = false
	g.won = false
	g.paused = false
	g.levelClearTicks = 0

	if g.mode == ModeCampaign && g.startLevel > 0 && g.startLevel <= LevelCount() {
		g.levelIndex = g.startLevel - 1
	} else {
		g.levelIndex = 0
	}

	g.loadTarget()
	g.board = g.engine.Initialize()
	g.evaluate()

	g.checkScreenSize()
}

// loadTarget sets the win tile for the current mode and level.
func (g *Game) loadTarget() {
	switch g.mode {
	case ModeEndless:
		g.target = 0
	case ModeCampaign:
		level := GetLevel(g.levelIndex)
		if level == nil {
			level = GetLevel(LevelCount() - 1)
		}
		g.target = level.Target
	default:
		g.target = classicTarget
	}
}

// StartAt makes Reset begin the campaign at the given level (1-indexed).
func (g *Game) StartAt(level int) {
	g.startLevel = level
}

// Resize updates the screen dimensions without touching the board.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.checkScreenSize()
}

// Target returns the tile currently needed to win, 0 when there is none.
func (g *Game) Target() int {
	return g.target
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	// Board (21 wide, 9 tall) + HUD (3 lines) + controls line
	minW := 25
	minH := 14
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.gameOver && !g.won {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	// Restart is handled by the platform calling Reset
	if g.gameOver || g.won {
		return core.StepResult{State: g.State()}
	}

	if g.levelCleared {
		g.levelClearTicks++
		if g.levelClearTicks >= 2*g.tickRate {
			g.advanceLevel()
		}
		return core.StepResult{State: g.State()}
	}

	dir, ok := directionFromInput(in)
	if !ok {
		return core.StepResult{State: g.State()}
	}

	g.engine.Move(&g.board, dir)
	g.moves++
	g.evaluate()

	return core.StepResult{State: g.State(), Moved: true}
}

// directionFromInput picks at most one direction per tick.
func directionFromInput(in core.InputFrame) (Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return DirUp, true
	case in.Has(core.ActionDown):
		return DirDown, true
	case in.Has(core.ActionLeft):
		return DirLeft, true
	case in.Has(core.ActionRight):
		return DirRight, true
	}
	return 0, false
}

// evaluate checks the terminal conditions: a stuck board is a loss even
// if it also holds the target tile.
func (g *Game) evaluate() {
	if IsOver(g.board) {
		g.gameOver = true
		return
	}

	if g.target <= 0 || !HasWon(g.board, g.target) {
		return
	}

	if g.mode == ModeCampaign {
		g.levelCleared = true
		g.levelClearTicks = 0
		return
	}
	g.won = true
}

// advanceLevel moves to the next campaign level, keeping the board.
func (g *Game) advanceLevel() {
	g.levelCleared = false
	g.levelClearTicks = 0

	if g.levelIndex >= LevelCount()-1 {
		g.won = true
		return
	}

	g.levelIndex++
	g.loadTarget()
	g.evaluate()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		MaxTile:  MaxTile(g.board),
		Moves:    g.moves,
		Won:      g.won,
		GameOver: g.gameOver || g.won,
		Paused:   g.paused || g.tooSmall || g.levelCleared,
	}
}
