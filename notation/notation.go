// Package notation converts board coordinates to and from the text form used
// by the console, such as "b6" or "b6->c5". Columns are letters from the
// left, rows are numbers counted from the bottom of the printed board.
package notation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"draughts/game"
)

var (
	ErrWrongPosition   = errors.New("wrong position")
	ErrWrongMoveSyntax = errors.New("wrong move syntax, expected e.g. b6->c5")
)

// ParseCoord reads a coordinate such as "b6" on a board of the given width.
func ParseCoord(s string, width int) (game.Coord, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) < 2 {
		return game.Coord{}, fmt.Errorf("%q: %w", s, ErrWrongPosition)
	}
	col := int(s[0]) - 'a'
	if col < 0 || col >= width {
		return game.Coord{}, fmt.Errorf("%q: column out of range: %w", s, ErrWrongPosition)
	}
	n, err := strconv.Atoi(s[1:])
	if err != nil {
		return game.Coord{}, fmt.Errorf("%q: %w", s, ErrWrongPosition)
	}
	if n < 1 || n > width {
		return game.Coord{}, fmt.Errorf("%q: row out of range: %w", s, ErrWrongPosition)
	}
	return game.Coord{Row: width - n, Col: col}, nil
}

// ParseStep reads a step such as "b6->c5". Whitespace is ignored and letters
// may be in either case.
func ParseStep(s string, width int) (game.Step, error) {
	compact := strings.ToLower(strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s))
	from, to, found := strings.Cut(compact, "->")
	if !found || from == "" || to == "" {
		return game.Step{}, fmt.Errorf("%q: %w", s, ErrWrongMoveSyntax)
	}
	orig, err := ParseCoord(from, width)
	if err != nil {
		return game.Step{}, err
	}
	dest, err := ParseCoord(to, width)
	if err != nil {
		return game.Step{}, err
	}
	return game.Step{From: orig, To: dest}, nil
}

func FormatCoord(c game.Coord, width int) string {
	return fmt.Sprintf("%c%d", rune('a'+c.Col), width-c.Row)
}

func FormatStep(s game.Step, width int) string {
	return FormatCoord(s.From, width) + "->" + FormatCoord(s.To, width)
}

// FormatLine writes consecutive steps as one path, e.g. "b6 -> d4 -> f2".
// Steps that do not continue from the previous destination start a new
// path after a comma.
func FormatLine(steps []game.Step, width int) string {
	var sb strings.Builder
	for i, s := range steps {
		switch {
		case i == 0:
			sb.WriteString(FormatCoord(s.From, width))
		case steps[i-1].To != s.From:
			sb.WriteString(", ")
			sb.WriteString(FormatCoord(s.From, width))
		}
		sb.WriteString(" -> ")
		sb.WriteString(FormatCoord(s.To, width))
	}
	return sb.String()
}
