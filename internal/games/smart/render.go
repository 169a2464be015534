package smart

import (
	"fmt"

	"github.com/vovakirdan/simplesmart/internal/core"
)

const (
	cellWidth  = 2 // glyph plus one spacer column
	hudHeight  = 3
	footerRows = 1
)

const controlsHint = "WASD/arrows: move | ;/Enter: follow | P: pause | Q: quit"

// Glyphs for each direction.
var dirGlyphs = map[Direction]rune{
	DirUp:    '^',
	DirRight: ')',
	DirDown:  'U',
	DirLeft:  'C',
	DirNone:  ' ',
}

// pieceColors maps piece colors to screen colors.
var pieceColors = map[CellColor]core.Color{
	ColorNone:  core.ColorDefault,
	ColorBlue:  core.ColorBlue,
	ColorRed:   core.ColorRed,
	ColorGreen: core.ColorGreen,
	ColorWhite: core.ColorWhite,
}

// Glyph returns the rune a direction is drawn with.
func Glyph(d Direction) rune {
	if r, ok := dirGlyphs[d]; ok {
		return r
	}
	return '?'
}

// boardFrame returns the outer width and height of the framed board.
func boardFrame(b *Board) (w, h int) {
	return b.W*cellWidth + 3, b.H + 2
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	frameW, frameH := boardFrame(g.board)
	area := core.NewRect(0, hudHeight, g.screenW, g.screenH-hudHeight-footerRows)
	frame := area.Centered(frameW, frameH)

	g.renderHUD(dst)
	dst.DrawBox(frame)
	g.renderBoard(dst, frame.X+1, frame.Y+1)
	dst.DrawTextCentered(g.screenH-1, controlsHint)

	if g.paused {
		g.drawOverlay(dst, frame, "PAUSED", "Press P to resume")
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title, the scores and the last chain's outcome.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextCentered(0, g.Title())

	stats := fmt.Sprintf("Score: %d  Best: %d  Chains: %d", g.lastWalk.Score, g.best, g.follows)
	dst.DrawTextCentered(1, stats)

	status := g.statusLine()
	x := (g.screenW - len(status)) / 2
	dst.DrawTextColored(x, 2, status, core.ColorGray)
}

// statusLine describes the most recent follow.
func (g *Game) statusLine() string {
	if g.rejected {
		return "Colored pieces can't start a chain"
	}

	w := g.lastWalk
	switch w.State {
	case WalkExited:
		return fmt.Sprintf("Chain from %s left the board after %d steps", w.Start, w.Score)
	case WalkBlocked:
		return fmt.Sprintf("Chain from %s was blocked at %s", w.Start, w.End())
	case WalkLooped:
		return fmt.Sprintf("Chain from %s looped back at %s", w.Start, w.End())
	default:
		return "Pick an uncolored piece and follow it off the board"
	}
}

// renderBoard draws the pieces, the revealed trail and the cursor.
func (g *Game) renderBoard(dst *core.Screen, originX, originY int) {
	trailCells := make(map[Position]bool, g.trail.shown)
	for _, p := range g.lastWalk.Path[:g.trail.shown] {
		trailCells[p] = true
	}

	for row := range g.board.H {
		for col := range g.board.W {
			p := Position{Row: row, Col: col}
			cell := g.board.At(p)
			x := originX + col*cellWidth + 1
			y := originY + row

			color := pieceColors[cell.Color]
			if trailCells[p] && !cell.Colored() {
				color = core.ColorYellow
			}
			dst.SetColored(x, y, Glyph(cell.Dir), color)
		}
	}

	cx := originX + g.cursor.Col*cellWidth + 1
	cy := originY + g.cursor.Row
	dst.Embolden(cx, cy)
	dst.Set(cx-1, cy, '[')
	dst.Set(cx+1, cy, ']')
}

// drawOverlay draws a centered text box over the board.
func (g *Game) drawOverlay(dst *core.Screen, over core.Rect, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}

	box := over.Centered(maxLen+4, len(lines)+2)
	for y := box.Y; y < box.Bottom(); y++ {
		for x := box.X; x < box.Right(); x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(box)

	for i, line := range lines {
		x := box.X + (box.W-len(line))/2
		dst.DrawText(x, box.Y+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return controlsHint
}
