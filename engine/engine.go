package engine

import (
	"errors"

	"draughts/experiments/metrics"

	"github.com/google/uuid"
)

const DefaultMaxTurns = 300

var (
	ErrIncompleteTurn = errors.New("turn ended with a pending capture")
	ErrEmptyTurn      = errors.New("turn has no steps")
)

type Engine interface {
	// Run plays until there's a winner, a draw or the turn limit is reached
	Run() (MatchResult, error)
}

type MatchResult struct {
	ID       uuid.UUID
	Winner   string // Name of the winner, empty on a draw or an unfinished match
	IsDraw   bool
	Finished bool
	Turns    int
	Score    int // Material balance from player 1's perspective
	Game     metrics.GameMetric
	Records  []TurnRecord
}
