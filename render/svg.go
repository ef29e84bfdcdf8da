package render

import (
	"bufio"
	"fmt"
	"io"

	"draughts/game"

	svg "github.com/ajstarks/svgo"
)

const (
	lightSquare   = "fill:#f0d9b5"
	darkSquare    = "fill:#b58863"
	blockedSquare = "fill:#6b6b6b"
	player1Piece  = "fill:#fafafa;stroke:#333333;stroke-width:2"
	player2Piece  = "fill:#c0392b;stroke:#333333;stroke-width:2"
	kingMark      = "fill:none;stroke:#d4af37;stroke-width:3"
	labelStyle    = "font-family:sans-serif;font-size:%dpx;fill:#333333;text-anchor:middle"
)

// SVG draws the board of g with squares of cellSize pixels, framed by the
// column letters and row numbers. It returns the first error writing to w.
func SVG(w io.Writer, g *game.Game, cellSize int) error {
	width := g.Width()
	margin := cellSize / 2
	side := width*cellSize + 2*margin

	buf := bufio.NewWriter(w)
	canvas := svg.New(buf)
	canvas.Start(side, side)
	canvas.Rect(0, 0, side, side, "fill:#ffffff")

	label := fmt.Sprintf(labelStyle, max(cellSize/4, 8))
	for i := 0; i < width; i++ {
		center := margin + i*cellSize + cellSize/2
		canvas.Text(center, margin-4, string(rune('a'+i)), label)
		canvas.Text(margin/2, center+4, fmt.Sprint(width-i), label)
	}

	for row := 0; row < width; row++ {
		for col := 0; col < width; col++ {
			c := game.Coord{Row: row, Col: col}
			x, y := margin+col*cellSize, margin+row*cellSize

			style := lightSquare
			if (row+col)%2 == 1 {
				style = darkSquare
			}
			if g.IsBlocked(c) {
				style = blockedSquare
			}
			canvas.Rect(x, y, cellSize, cellSize, style)

			p, ok := g.At(c)
			if !ok {
				continue
			}
			cx, cy, r := x+cellSize/2, y+cellSize/2, cellSize*2/5
			if p.Owner == game.Player1 {
				canvas.Circle(cx, cy, r, player1Piece)
			} else {
				canvas.Circle(cx, cy, r, player2Piece)
			}
			if p.IsKing() {
				canvas.Circle(cx, cy, r/2, kingMark)
			}
		}
	}
	canvas.End()
	return buf.Flush()
}
