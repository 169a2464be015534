// Package smart implements the arrow-chain puzzle: a board of directed,
// colored pieces, a cursor, and chains followed from the selected piece until
// they leave the board.
package smart

import (
	"fmt"
	"math/rand"
)

// Direction is the way a piece points.
type Direction uint8

const (
	DirUp Direction = iota
	DirRight
	DirDown
	DirLeft
	DirNone // never generated; stops a walk
)

// String returns the string representation of a direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirRight:
		return "Right"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirNone:
		return "None"
	default:
		return "Unknown"
	}
}

// Delta returns the (dRow, dCol) offset of one step in this direction.
func (d Direction) Delta() (dRow, dCol int) {
	switch d {
	case DirUp:
		return -1, 0
	case DirRight:
		return 0, 1
	case DirDown:
		return 1, 0
	case DirLeft:
		return 0, -1
	default:
		return 0, 0
	}
}

// CellColor is the color of a piece. Colored pieces cannot start a chain.
type CellColor uint8

const (
	ColorNone CellColor = iota
	ColorBlue
	ColorRed
	ColorGreen
	ColorWhite
)

// String returns the string representation of a color.
func (c CellColor) String() string {
	switch c {
	case ColorNone:
		return "None"
	case ColorBlue:
		return "Blue"
	case ColorRed:
		return "Red"
	case ColorGreen:
		return "Green"
	case ColorWhite:
		return "White"
	default:
		return "Unknown"
	}
}

// colorWeights is the discrete distribution pieces are colored with,
// indexed by CellColor.
var colorWeights = [...]int{80, 5, 5, 5, 5}

// Cell is one piece on the board.
type Cell struct {
	Dir   Direction
	Color CellColor
}

// Colored reports whether the piece has a color.
func (c Cell) Colored() bool {
	return c.Color != ColorNone
}

// Position is a (row, col) coordinate on the board.
type Position struct {
	Row int
	Col int
}

// String returns a string representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Step returns the position one step in the given direction.
func (p Position) Step(d Direction) Position {
	dr, dc := d.Delta()
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// Board is the H×W grid of pieces, stored row-major.
type Board struct {
	W     int
	H     int
	Cells []Cell
}

// NewBoard creates a board filled with the given cell.
// Panics if either dimension is less than 1.
func NewBoard(h, w int, fill Cell) *Board {
	if h < 1 || w < 1 {
		panic(fmt.Sprintf("smart: invalid board size %dx%d", h, w))
	}
	b := &Board{W: w, H: h, Cells: make([]Cell, w*h)}
	for i := range b.Cells {
		b.Cells[i] = fill
	}
	return b
}

// Generate builds an h×w board with uniformly random directions and colors
// drawn from the 80/5/5/5/5 weights. Each cell consumes two draws from rng,
// in row-major order, so a fixed seed always yields the same board.
// Panics if either dimension is less than 1.
func Generate(h, w int, rng *rand.Rand) *Board {
	b := NewBoard(h, w, Cell{})
	for i := range b.Cells {
		b.Cells[i] = Cell{
			Dir:   Direction(rng.Intn(4)),
			Color: pickColor(rng),
		}
	}
	return b
}

// pickColor draws a color from colorWeights.
func pickColor(rng *rand.Rand) CellColor {
	total := 0
	for _, w := range colorWeights {
		total += w
	}

	n := rng.Intn(total)
	for i, w := range colorWeights {
		if n < w {
			return CellColor(i)
		}
		n -= w
	}
	return ColorNone
}

// InBounds returns true if the position is on the board.
func (b *Board) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < b.H && p.Col >= 0 && p.Col < b.W
}

// At returns the cell at the given position.
// Returns a None/None cell if out of bounds.
func (b *Board) At(p Position) Cell {
	if !b.InBounds(p) {
		return Cell{Dir: DirNone}
	}
	return b.Cells[p.Row*b.W+p.Col]
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	cells := make([]Cell, len(b.Cells))
	copy(cells, b.Cells)
	return &Board{W: b.W, H: b.H, Cells: cells}
}

// Equal returns true if two boards have the same dimensions and contents.
func (b *Board) Equal(other *Board) bool {
	if b.W != other.W || b.H != other.H {
		return false
	}
	for i, c := range b.Cells {
		if c != other.Cells[i] {
			return false
		}
	}
	return true
}

// CountByColor returns how many pieces carry each color.
func (b *Board) CountByColor() map[CellColor]int {
	counts := make(map[CellColor]int)
	for _, c := range b.Cells {
		counts[c.Color]++
	}
	return counts
}
