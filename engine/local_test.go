package engine

import (
	"testing"

	"draughts/agent"
	"draughts/game"
	"draughts/searcher"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func c(row, col int) game.Coord {
	return game.Coord{Row: row, Col: col}
}

type scriptedAgent struct {
	turns [][]game.Step
	err   error
}

func (a *scriptedAgent) FindTurn(g *game.Game) (agent.Turn, error) {
	if a.err != nil {
		return agent.Turn{}, a.err
	}
	steps := a.turns[0]
	a.turns = a.turns[1:]
	return agent.Turn{Steps: steps}, nil
}

func doubleCapture() *game.Game {
	g := game.NewGame(game.WithoutArrangement())
	g.Place(c(2, 1), game.Player1, game.Man)
	g.Place(c(3, 2), game.Player2, game.Man)
	g.Place(c(5, 4), game.Player2, game.Man)
	g.Place(c(7, 0), game.Player2, game.Man)
	return g
}

func TestRun(t *testing.T) {
	t.Run("random self play", func(t *testing.T) {
		for _, seed := range []uint64{1, 2, 3} {
			g := game.NewGame()
			hooked := 0
			e := New(g, [2]agent.Agent{agent.NewRandomAgent(seed), agent.NewRandomAgent(seed + 100)},
				WithTurnHook(func(TurnRecord) { hooked++ }))

			result, err := e.Run()

			require.NoError(t, err)
			require.NotEqual(t, uuid.Nil, result.ID)
			require.Equal(t, e.ID().String(), result.Game.MatchID)
			require.Equal(t, hooked, result.Turns, "Hook should see every turn")
			require.Len(t, result.Records, result.Turns)
			require.LessOrEqual(t, result.Turns, DefaultMaxTurns)
			if result.Finished {
				require.True(t, g.IsEndOfGame())
				require.Equal(t, result.IsDraw, result.Winner == "", "A finished match is either drawn or won")
			} else {
				require.Equal(t, DefaultMaxTurns, result.Turns)
			}
			for i, r := range result.Records {
				require.Equal(t, i+1, r.Turn)
				require.NotEmpty(t, r.Steps)
				require.Equal(t, game.Player1+i%2, r.Player, "Players should alternate")
			}
		}
	})

	t.Run("search wins with a double capture", func(t *testing.T) {
		g := game.NewGame(game.WithoutArrangement())
		g.Place(c(2, 1), game.Player1, game.Man)
		g.Place(c(3, 2), game.Player2, game.Man)
		g.Place(c(5, 4), game.Player2, game.Man)
		e := New(g, [2]agent.Agent{
			agent.NewSearchAgent(searcher.NewSearcher(searcher.WithDepth(2), searcher.WithMetrics())),
			agent.NewRandomAgent(1),
		})

		result, err := e.Run()

		require.NoError(t, err)
		require.True(t, result.Finished)
		require.Equal(t, "p1", result.Winner)
		require.Equal(t, 1, result.Turns)
		require.Positive(t, result.Records[0].Metric.Nodes)
		require.Equal(t, 2, result.Records[0].TurnMetric().Steps)
	})

	t.Run("turn limit", func(t *testing.T) {
		e := New(game.NewGame(), [2]agent.Agent{agent.NewRandomAgent(1), agent.NewRandomAgent(2)}, WithMaxTurns(2))

		result, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, 2, result.Turns)
		require.False(t, result.Finished)
		require.Empty(t, result.Winner)
		require.Equal(t, game.Player1, e.Game().CurrentPlayer().ID)
	})

	t.Run("depth zero search still plays", func(t *testing.T) {
		e := New(game.NewGame(), [2]agent.Agent{
			agent.NewSearchAgent(searcher.NewSearcher(searcher.WithDepth(0))),
			agent.NewRandomAgent(1),
		}, WithMaxTurns(4))

		result, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, 4, result.Turns)
		require.False(t, result.Finished)
		require.Empty(t, result.Winner)
	})

	t.Run("player without moves loses", func(t *testing.T) {
		g := game.NewGame(game.WithoutArrangement())
		g.Place(c(7, 0), game.Player1, game.Man)
		g.Place(c(5, 2), game.Player2, game.Man)
		e := New(g, [2]agent.Agent{agent.NewRandomAgent(1), agent.NewRandomAgent(2)})

		result, err := e.Run()

		require.NoError(t, err)
		require.True(t, result.Finished)
		require.Equal(t, "p2", result.Winner)
		require.Zero(t, result.Turns)
	})
}

func TestRunErrors(t *testing.T) {
	t.Run("incomplete chain", func(t *testing.T) {
		e := New(doubleCapture(), [2]agent.Agent{
			&scriptedAgent{turns: [][]game.Step{{{From: c(2, 1), To: c(4, 3)}}}},
			agent.NewRandomAgent(1),
		})

		_, err := e.Run()

		require.ErrorIs(t, err, ErrIncompleteTurn)
	})

	t.Run("illegal step", func(t *testing.T) {
		e := New(game.NewGame(), [2]agent.Agent{
			&scriptedAgent{turns: [][]game.Step{{{From: c(2, 1), To: c(4, 3)}}}},
			agent.NewRandomAgent(1),
		})

		result, err := e.Run()

		require.ErrorIs(t, err, game.ErrImpossibleMove)
		require.Zero(t, result.Turns)
	})

	t.Run("empty turn", func(t *testing.T) {
		e := New(game.NewGame(), [2]agent.Agent{&scriptedAgent{turns: [][]game.Step{{}}}, agent.NewRandomAgent(1)})

		_, err := e.Run()

		require.ErrorIs(t, err, ErrEmptyTurn)
	})

	t.Run("no moves claimed with legal moves left", func(t *testing.T) {
		e := New(game.NewGame(), [2]agent.Agent{&scriptedAgent{err: agent.ErrNoMoves}, agent.NewRandomAgent(1)})

		result, err := e.Run()

		require.ErrorIs(t, err, agent.ErrNoMoves)
		require.False(t, result.Finished, "A player with legal moves has not lost")
		require.Empty(t, result.Winner)
		require.Zero(t, result.Turns)
	})

	t.Run("player quits", func(t *testing.T) {
		e := New(game.NewGame(), [2]agent.Agent{&scriptedAgent{err: agent.ErrQuit}, agent.NewRandomAgent(1)})

		_, err := e.Run()

		require.ErrorIs(t, err, agent.ErrQuit)
	})
}
