package game

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// ValidateMove checks a step proposed for the current player. It never
// mutates the game. A pending capture chain may always be finished.
func (g *Game) ValidateMove(from, to Coord) error {
	step := Step{From: from, To: to}
	if g.IsEndOfGame() && !g.mustContinue {
		return fmt.Errorf("%s: %w", step, ErrGameOver)
	}
	if !g.board.InBounds(from) || !g.board.InBounds(to) {
		return fmt.Errorf("%s: %w", step, ErrOutOfBounds)
	}
	piece := g.board.Piece(from)
	if piece == nil {
		return fmt.Errorf("%s: %w", step, ErrEmptyCell)
	}
	if piece.Owner != g.current {
		return fmt.Errorf("%s: %w", step, ErrNotYourCell)
	}
	if g.mustContinue && from != g.continueFrom {
		return fmt.Errorf("%s: continue from %s: %w", step, g.continueFrom, ErrMustContinue)
	}
	if g.board.Cell(to).HasPiece() {
		return fmt.Errorf("%s: %w", step, ErrCellNotEmpty)
	}
	if !slices.Contains(g.LegalMoves(g.current), step) {
		return fmt.Errorf("%s: %w", step, ErrImpossibleMove)
	}
	return nil
}

// Play validates and executes a step for the current player. A rejected step
// leaves the game untouched.
func (g *Game) Play(from, to Coord) (bool, error) {
	if err := g.ValidateMove(from, to); err != nil {
		return false, err
	}
	return g.Move(from, to), nil
}
