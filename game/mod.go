package game

import "fmt"

const (
	Player1 = 1
	Player2 = 2
)

// Coord addresses a cell by row and column, both zero based.
type Coord struct {
	Row int
	Col int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

func (c Coord) add(d direction) Coord {
	return Coord{Row: c.Row + d.row, Col: c.Col + d.col}
}

// compareCoords orders coordinates row-major.
func compareCoords(a, b Coord) int {
	if a.Row != b.Row {
		return a.Row - b.Row
	}
	return a.Col - b.Col
}

// Step is a single atomic move of one piece. A turn is one or more steps.
type Step struct {
	From Coord
	To   Coord
}

func (s Step) String() string {
	return fmt.Sprintf("%s->%s", s.From, s.To)
}

// IsJump reports whether the step covers more than one row.
func (s Step) IsJump() bool {
	return abs(s.To.Row-s.From.Row) > 1
}

// CompareSteps orders steps by origin, then destination.
func CompareSteps(a, b Step) int {
	if c := compareCoords(a.From, b.From); c != 0 {
		return c
	}
	return compareCoords(a.To, b.To)
}

type direction struct {
	row int
	col int
}

// towards returns the unit diagonal direction from orig to dest.
func towards(orig, dest Coord) direction {
	d := direction{row: 1, col: 1}
	if dest.Row < orig.Row {
		d.row = -1
	}
	if dest.Col < orig.Col {
		d.col = -1
	}
	return d
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Evaluate scores a position from player 1's perspective.
type Evaluate func(g *Game) int
