package agent

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"draughts/game"
	"draughts/notation"
	"draughts/render"
	"draughts/searcher"
)

// userErrors are reported to the player by their message alone.
var userErrors = []error{
	notation.ErrWrongPosition,
	notation.ErrWrongMoveSyntax,
	game.ErrOutOfBounds,
	game.ErrEmptyCell,
	game.ErrNotYourCell,
	game.ErrCellNotEmpty,
	game.ErrImpossibleMove,
	game.ErrMustContinue,
	game.ErrGameOver,
}

type consoleAgent struct {
	in   *bufio.Scanner
	out  io.Writer
	hint *searcher.Searcher
}

// NewConsoleAgent returns an agent reading steps such as "b6->c5" from in.
// "h", "p" or "help" lists the legal moves and, when hint is set, the move
// proposed by a search. "q", "quit" or "exit" ends the game with ErrQuit.
func NewConsoleAgent(in io.Reader, out io.Writer, hint *searcher.Searcher) Agent {
	return &consoleAgent{in: bufio.NewScanner(in), out: out, hint: hint}
}

func (a *consoleAgent) FindTurn(g *game.Game) (Turn, error) {
	live := g.Clone()
	width := live.Width()
	var steps []game.Step

	fmt.Fprint(a.out, render.Text(live))
	prompt := "Your move: "
	for {
		fmt.Fprint(a.out, prompt)
		if !a.in.Scan() {
			if err := a.in.Err(); err != nil {
				return Turn{}, fmt.Errorf("failed to read move: %w", err)
			}
			return Turn{}, ErrQuit
		}
		text := strings.TrimSpace(a.in.Text())

		switch strings.ToLower(text) {
		case "q", "quit", "exit":
			return Turn{}, ErrQuit
		case "p", "h", "help":
			a.help(live)
			continue
		case "":
			continue
		}

		step, err := notation.ParseStep(text, width)
		if err == nil {
			var more bool
			more, err = live.Play(step.From, step.To)
			if err == nil {
				steps = append(steps, step)
				if !more {
					return Turn{Steps: steps}, nil
				}
				fmt.Fprint(a.out, render.Text(live))
				prompt = "Continue your move: "
				continue
			}
		}
		fmt.Fprintf(a.out, "[%s] %s\n", text, describe(err))
	}
}

func (a *consoleAgent) help(g *game.Game) {
	width := g.Width()
	moves := g.LegalMoves(g.CurrentPlayer().ID)
	if len(moves) == 0 {
		fmt.Fprintln(a.out, "No moves possible.")
		return
	}
	formatted := make([]string, len(moves))
	for i, m := range moves {
		formatted[i] = notation.FormatLine([]game.Step{m}, width)
	}
	fmt.Fprintf(a.out, "Possible moves: %s\n", strings.Join(formatted, ", "))

	if a.hint != nil {
		result := a.hint.Search(g)
		fmt.Fprintf(a.out, "Alphabeta algorithm proposal: %s\n", notation.FormatLine(result.Turn, width))
	}
}

func describe(err error) string {
	for _, target := range userErrors {
		if errors.Is(err, target) {
			return target.Error()
		}
	}
	return err.Error()
}
