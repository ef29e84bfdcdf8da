package engine

import (
	"errors"
	"fmt"
	"time"

	"draughts/agent"
	"draughts/experiments/metrics"
	"draughts/game"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type TurnRecord struct {
	Turn   int
	Player int // Player ID
	Steps  []game.Step
	Score  int
	Metric metrics.SearchMetric
}

func (r TurnRecord) TurnMetric() metrics.TurnMetric {
	return metrics.TurnMetric{
		Turn:         r.Turn,
		Player:       r.Player,
		Steps:        len(r.Steps),
		Score:        r.Score,
		SearchMetric: r.Metric,
	}
}

type Option func(e *LocalEngine)

func WithMaxTurns(turns int) Option {
	return func(e *LocalEngine) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

// WithTurnHook registers a function called after every completed turn.
func WithTurnHook(hook func(TurnRecord)) Option {
	return func(e *LocalEngine) {
		if hook != nil {
			e.hooks = append(e.hooks, hook)
		}
	}
}

// LocalEngine plays a match between two in-process agents on a live game.
type LocalEngine struct {
	id       uuid.UUID
	game     *game.Game
	agents   [2]agent.Agent
	maxTurns int
	hooks    []func(TurnRecord)
}

// New prepares a match on g. agents[0] plays for player 1.
func New(g *game.Game, agents [2]agent.Agent, options ...Option) *LocalEngine {
	if agents[0] == nil || agents[1] == nil {
		panic("need an agent for each player")
	}
	e := &LocalEngine{
		id:       uuid.New(),
		game:     g,
		agents:   agents,
		maxTurns: DefaultMaxTurns,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

func (e *LocalEngine) ID() uuid.UUID {
	return e.id
}

func (e *LocalEngine) Game() *game.Game {
	return e.game
}

// Run executes the game loop. An agent error stops the match and is returned
// together with the result so far.
func (e *LocalEngine) Run() (MatchResult, error) {
	g := e.game
	result := MatchResult{ID: e.id}
	start := time.Now()
	starting := g.CurrentPlayer()

	logger := log.With().Str("match", e.id.String()).Logger()
	logger.Info().Msgf("player %s is starting", starting)

	stalled := false
	var runErr error
	for turn := 1; !g.IsEndOfGame() && turn <= e.maxTurns; turn++ {
		player := g.CurrentPlayer()
		chosen, err := e.agents[player.ID-1].FindTurn(g)
		if errors.Is(err, agent.ErrNoMoves) && len(g.LegalMoves(player.ID)) == 0 {
			// Positions composed by hand may not have a winner yet
			stalled = true
			break
		}
		if err != nil {
			runErr = fmt.Errorf("turn %d of %s: %w", turn, player, err)
			break
		}
		if err := e.apply(chosen.Steps); err != nil {
			runErr = fmt.Errorf("turn %d of %s: %w", turn, player, err)
			break
		}
		g.NextPlayer()

		record := TurnRecord{
			Turn:   turn,
			Player: player.ID,
			Steps:  chosen.Steps,
			Score:  g.Score(game.Player1),
			Metric: chosen.Metric,
		}
		result.Records = append(result.Records, record)
		result.Turns = turn
		for _, hook := range e.hooks {
			hook(record)
		}
		logger.Debug().
			Int("turn", turn).
			Int("player", player.ID).
			Int("steps", len(chosen.Steps)).
			Int("score", record.Score).
			Msgf("%s played %v", player, chosen.Steps)
	}

	result.IsDraw = g.IsDraw()
	result.Finished = g.IsEndOfGame() || stalled
	if w := g.Winner(); w != nil {
		result.Winner = w.Name
	} else if stalled {
		result.Winner = g.Opponent(g.CurrentPlayer().ID).Name
	}
	result.Score = g.Score(game.Player1)
	end := time.Now()
	result.Game = metrics.GameMetric{
		MatchID:        e.id.String(),
		StartingPlayer: starting.ID,
		Winner:         result.Winner,
		IsDraw:         result.IsDraw,
		StartTime:      start,
		EndTime:        end,
		Duration:       end.Sub(start),
		TotalTurns:     result.Turns,
	}

	switch {
	case runErr != nil:
		logger.Error().Err(runErr).Msgf("match stopped after %d turns", result.Turns)
	case result.IsDraw:
		logger.Info().Msgf("match drawn after %d turns", result.Turns)
	case result.Winner != "":
		logger.Info().Msgf("match won by %s after %d turns", result.Winner, result.Turns)
	default:
		logger.Info().Msgf("stopped after %d turns (no winner yet)", result.Turns)
	}
	return result, runErr
}

// apply plays the steps of one turn on the live game.
func (e *LocalEngine) apply(steps []game.Step) error {
	if len(steps) == 0 {
		return ErrEmptyTurn
	}
	for _, s := range steps {
		if _, err := e.game.Play(s.From, s.To); err != nil {
			return fmt.Errorf("invalid step %s: %w", s, err)
		}
	}
	if e.game.MustContinue() {
		return ErrIncompleteTurn
	}
	return nil
}
