// Package render draws a game for people: as plain text for the console and
// as an SVG picture.
package render

import (
	"fmt"
	"strings"

	"draughts/game"
)

// Glyph returns the character for the content of a square.
func Glyph(g *game.Game, c game.Coord) byte {
	p, ok := g.At(c)
	switch {
	case !ok && g.IsBlocked(c):
		return 'x'
	case !ok:
		return '.'
	case p.Owner == game.Player1 && p.IsKing():
		return 'W'
	case p.Owner == game.Player1:
		return 'w'
	case p.IsKing():
		return 'R'
	default:
		return 'r'
	}
}

// Text prints the board with column letters and row numbers matching the
// notation package.
func Text(g *game.Game) string {
	width := g.Width()
	var sb strings.Builder
	fmt.Fprintf(&sb, "Current player: %s\n", g.CurrentPlayer())

	letters := make([]string, width)
	for i := range letters {
		letters[i] = string(rune('a' + i))
	}
	header := fmt.Sprintf("    %s\n", strings.Join(letters, " "))
	sb.WriteString(header)
	for row := 0; row < width; row++ {
		fmt.Fprintf(&sb, "%2d  ", width-row)
		for col := 0; col < width; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte(Glyph(g, game.Coord{Row: row, Col: col}))
		}
		fmt.Fprintf(&sb, "  %d\n", width-row)
	}
	sb.WriteString(header)
	return sb.String()
}
