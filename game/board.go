package game

import "fmt"

// Cell holds at most one piece. A blocked cell is a square emptied by a
// capture during the current turn.
type Cell struct {
	piece   *Piece
	blocked bool
}

func (c *Cell) HasPiece() bool {
	return c.piece != nil
}

func (c *Cell) IsEmpty() bool {
	return c.piece == nil
}

func (c *Cell) IsBlocked() bool {
	return c.blocked
}

// Board is a square grid of cells.
type Board struct {
	width int
	cells [][]Cell
}

// NewBoard creates an empty board of the given width.
func NewBoard(width int) *Board {
	cells := make([][]Cell, width)
	for i := range cells {
		cells[i] = make([]Cell, width)
	}
	return &Board{width: width, cells: cells}
}

func (b *Board) Width() int {
	return b.width
}

func (b *Board) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < b.width && c.Col >= 0 && c.Col < b.width
}

// Cell returns the cell at c. It panics when c is outside the board.
func (b *Board) Cell(c Coord) *Cell {
	if !b.InBounds(c) {
		panic(fmt.Sprintf("coordinate %s is outside a board of width %d", c, b.width))
	}
	return &b.cells[c.Row][c.Col]
}

// Piece returns the piece at c or nil.
func (b *Board) Piece(c Coord) *Piece {
	return b.Cell(c).piece
}

func (b *Board) occupy(c Coord, p *Piece) {
	b.Cell(c).piece = p
}

func (b *Board) empty(c Coord) {
	b.Cell(c).piece = nil
}

func (b *Board) block(c Coord) {
	b.Cell(c).blocked = true
}

func (b *Board) unblock(c Coord) {
	b.Cell(c).blocked = false
}

// removeAt empties the cell at c and returns the piece that was there.
func (b *Board) removeAt(c Coord) *Piece {
	cell := b.Cell(c)
	p := cell.piece
	cell.piece = nil
	return p
}

// locate scans the board for p. Prefer coordinate based access when the
// square is already known.
func (b *Board) locate(p *Piece) (Coord, bool) {
	for row := range b.cells {
		for col := range b.cells[row] {
			if b.cells[row][col].piece == p {
				return Coord{Row: row, Col: col}, true
			}
		}
	}
	return Coord{}, false
}

// each calls fn for every cell in row-major order.
func (b *Board) each(fn func(c Coord, cell *Cell)) {
	for row := range b.cells {
		for col := range b.cells[row] {
			fn(Coord{Row: row, Col: col}, &b.cells[row][col])
		}
	}
}
