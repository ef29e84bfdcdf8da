package game

import "errors"

var (
	ErrOutOfBounds    = errors.New("incorrect position coordinates")
	ErrEmptyCell      = errors.New("cell is empty")
	ErrNotYourCell    = errors.New("cell contains enemy's piece")
	ErrCellNotEmpty   = errors.New("cell is not empty")
	ErrImpossibleMove = errors.New("impossible move")
	ErrMustContinue   = errors.New("capture must continue with the same piece")
	ErrGameOver       = errors.New("game is over")
)
