package smart

import "github.com/vovakirdan/simplesmart/internal/core"

// Cursor is the selected position on a board.
// It always stays within 0 <= Row < H and 0 <= Col < W.
type Cursor struct {
	Row int
	Col int
}

// Position returns the cursor as a board position.
func (c Cursor) Position() Position {
	return Position{Row: c.Row, Col: c.Col}
}

// Move shifts the cursor one cell in the given direction.
// Moves past an edge are ignored; DirNone does nothing.
func (c *Cursor) Move(d Direction, b *Board) {
	dr, dc := d.Delta()
	c.Row = core.Clamp(c.Row+dr, 0, b.H-1)
	c.Col = core.Clamp(c.Col+dc, 0, b.W-1)
}
