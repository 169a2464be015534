package smart

import (
	"math/rand"

	"github.com/vovakirdan/simplesmart/internal/core"
	"github.com/vovakirdan/simplesmart/internal/registry"
)

// GameID is the registry identifier of the puzzle.
const GameID = "simplesmart"

// Game is one play session: a board, a cursor and the last chain followed.
// Scores are per chain; nothing here is persisted.
type Game struct {
	rng  *rand.Rand
	seed int64
	tick uint64

	board  *Board
	cursor Cursor

	lastWalk Walk
	follows  int
	best     int

	// Screen dimensions
	screenW int
	screenH int

	paused   bool
	tooSmall bool
	rejected bool // last follow started on a colored piece

	trail trail
}

// New creates a new game. Reset must be called before use.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Simple Smart"
}

// Reset generates a fresh board from the config's seed and matrix size.
// Panics if the matrix size is not positive.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.seed = cfg.Seed
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.board = Generate(cfg.MatrixH, cfg.MatrixW, g.rng)
	g.cursor = Cursor{}
	g.lastWalk = Walk{State: WalkIdle}
	g.follows = 0
	g.best = 0
	g.paused = false
	g.rejected = false
	g.trail = trail{}

	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize updates the screen dimensions without touching the board.
func (g *Game) Resize(screenW, screenH int) {
	g.screenW = screenW
	g.screenH = screenH
	g.checkScreenSize()
}

// checkScreenSize checks if the board and HUD fit on the screen.
func (g *Game) checkScreenSize() {
	if g.board == nil {
		return
	}
	minW, minH := boardFrame(g.board)
	if minW < len(controlsHint) {
		minW = len(controlsHint)
	}
	minH += hudHeight + footerRows
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step applies one input event: a cursor move, a follow or a pause toggle.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.rejected = false

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	switch {
	case in.Has(core.ActionFollow):
		g.follow()
		return core.StepResult{State: g.State(), Walked: !g.rejected}
	case in.Has(core.ActionUp):
		g.cursor.Move(DirUp, g.board)
	case in.Has(core.ActionDown):
		g.cursor.Move(DirDown, g.board)
	case in.Has(core.ActionLeft):
		g.cursor.Move(DirLeft, g.board)
	case in.Has(core.ActionRight):
		g.cursor.Move(DirRight, g.board)
	}

	return core.StepResult{State: g.State()}
}

// follow resolves the chain from the cursor. Rejected follows leave the
// previous walk, the score and the session stats untouched.
func (g *Game) follow() {
	w := Follow(g.board, g.cursor.Position())
	if w.State == WalkRejected {
		g.rejected = true
		return
	}

	g.lastWalk = w
	g.follows++
	if w.Score > g.best {
		g.best = w.Score
	}
	g.trail.start(len(w.Path))
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:  g.lastWalk.Score,
		Best:   g.best,
		Paused: g.paused || g.tooSmall,
	}
}

// LastWalk returns the most recent chain walk.
func (g *Game) LastWalk() Walk {
	return g.lastWalk
}

// Board returns the board being played. Callers must not modify it.
func (g *Game) Board() *Board {
	return g.board
}

// Cursor returns the current cursor.
func (g *Game) Cursor() Cursor {
	return g.cursor
}
