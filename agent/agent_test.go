package agent

import (
	"bytes"
	"strings"
	"testing"

	"draughts/game"
	"draughts/searcher"

	"github.com/stretchr/testify/require"
)

func c(row, col int) game.Coord {
	return game.Coord{Row: row, Col: col}
}

// doubleCapture is a position where player 1 must play b6->d4->f2.
func doubleCapture() *game.Game {
	g := game.NewGame(game.WithoutArrangement())
	g.Place(c(2, 1), game.Player1, game.Man)
	g.Place(c(3, 2), game.Player2, game.Man)
	g.Place(c(5, 4), game.Player2, game.Man)
	g.Place(c(7, 0), game.Player2, game.Man)
	return g
}

func TestSearchAgent(t *testing.T) {
	t.Run("plays the whole chain", func(t *testing.T) {
		g := doubleCapture()
		a := NewSearchAgent(searcher.NewSearcher(searcher.WithDepth(2), searcher.WithMetrics()))

		turn, err := a.FindTurn(g)

		require.NoError(t, err)
		require.Equal(t, []game.Step{{From: c(2, 1), To: c(4, 3)}, {From: c(4, 3), To: c(6, 5)}}, turn.Steps)
		require.Positive(t, turn.Metric.Nodes)
		require.Equal(t, 3, g.Player(game.Player2).Pieces(), "Agent should not touch the game")
	})

	t.Run("no legal turn", func(t *testing.T) {
		g := game.NewGame(game.WithoutArrangement())
		g.Place(c(7, 0), game.Player1, game.Man)

		_, err := NewSearchAgent(searcher.NewSearcher()).FindTurn(g)

		require.ErrorIs(t, err, ErrNoMoves)
	})

	t.Run("depth zero plays the first legal turn", func(t *testing.T) {
		g := game.NewGame()

		turn, err := NewSearchAgent(searcher.NewSearcher(searcher.WithDepth(0))).FindTurn(g)

		require.NoError(t, err)
		require.Equal(t, []game.Step{{From: c(2, 1), To: c(3, 0)}}, turn.Steps)
	})

	t.Run("continues a pending chain", func(t *testing.T) {
		g := doubleCapture()
		_, err := g.Play(c(2, 1), c(4, 3))
		require.NoError(t, err)

		turn, err := NewSearchAgent(searcher.NewSearcher(searcher.WithDepth(2))).FindTurn(g)

		require.NoError(t, err)
		require.Equal(t, []game.Step{{From: c(4, 3), To: c(6, 5)}}, turn.Steps)
	})
}

func TestRandomAgent(t *testing.T) {
	t.Run("same seed same turns", func(t *testing.T) {
		g := game.NewGame()
		a1, a2 := NewRandomAgent(9), NewRandomAgent(9)

		for i := 0; i < 5; i++ {
			t1, err := a1.FindTurn(g)
			require.NoError(t, err)
			t2, err := a2.FindTurn(g)
			require.NoError(t, err)
			require.Equal(t, t1, t2)
		}
	})

	t.Run("turn is legal and complete", func(t *testing.T) {
		g := doubleCapture()

		turn, err := NewRandomAgent(1).FindTurn(g)

		require.NoError(t, err)
		require.Len(t, turn.Steps, 2, "Only the double capture is legal")
		for _, s := range turn.Steps {
			_, err := g.Play(s.From, s.To)
			require.NoError(t, err)
		}
		require.False(t, g.MustContinue())
	})
}

func TestConsoleAgent(t *testing.T) {
	t.Run("invalid input is reported until a legal move", func(t *testing.T) {
		g := game.NewGame()
		in := strings.NewReader("zz\nb6->b5\na7->b6\ne3->d4\ni1->a1\n\nB6 -> A5\n")
		var out bytes.Buffer

		turn, err := NewConsoleAgent(in, &out, nil).FindTurn(g)

		require.NoError(t, err)
		require.Equal(t, []game.Step{{From: c(2, 1), To: c(3, 0)}}, turn.Steps)
		text := out.String()
		require.Contains(t, text, "[zz] wrong move syntax")
		require.Contains(t, text, "[b6->b5] impossible move")
		require.Contains(t, text, "[a7->b6] cell is not empty")
		require.Contains(t, text, "[e3->d4] cell contains enemy's piece")
		require.Contains(t, text, "[i1->a1] wrong position")
		require.Equal(t, 1, strings.Count(text, "Current player"), "Board should be printed once for a single step")
		_, ok := g.At(c(3, 0))
		require.False(t, ok, "Agent should not touch the game")
	})

	t.Run("continuation prompt", func(t *testing.T) {
		g := doubleCapture()
		in := strings.NewReader("b6->d4\nb6->d4\nd4->f2\n")
		var out bytes.Buffer

		turn, err := NewConsoleAgent(in, &out, nil).FindTurn(g)

		require.NoError(t, err)
		require.Equal(t, []game.Step{{From: c(2, 1), To: c(4, 3)}, {From: c(4, 3), To: c(6, 5)}}, turn.Steps)
		require.Contains(t, out.String(), "Continue your move: ")
		require.Contains(t, out.String(), "[b6->d4] cell is empty")
	})

	t.Run("help lists moves and the proposal", func(t *testing.T) {
		g := game.NewGame()
		in := strings.NewReader("help\nq\n")
		var out bytes.Buffer

		_, err := NewConsoleAgent(in, &out, searcher.NewSearcher(searcher.WithDepth(1))).FindTurn(g)

		require.ErrorIs(t, err, ErrQuit)
		require.Contains(t, out.String(), "Possible moves: b6 -> a5, b6 -> c5, d6 -> c5")
		require.Contains(t, out.String(), "Alphabeta algorithm proposal: b6 -> a5")
	})

	t.Run("end of input quits", func(t *testing.T) {
		_, err := NewConsoleAgent(strings.NewReader(""), &bytes.Buffer{}, nil).FindTurn(game.NewGame())

		require.ErrorIs(t, err, ErrQuit)
	})
}
