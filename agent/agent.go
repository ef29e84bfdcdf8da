package agent

import (
	"errors"

	"draughts/experiments/metrics"
	"draughts/game"
)

var (
	ErrQuit    = errors.New("player quit")
	ErrNoMoves = errors.New("no legal turn")
)

// Turn is a complete turn chosen by an agent and how it was found.
type Turn struct {
	Steps  []game.Step
	Metric metrics.SearchMetric
}

type Agent interface {
	// FindTurn returns every step of one turn for the player to move. The game
	// is not modified.
	FindTurn(g *game.Game) (Turn, error)
}
