package searcher

import (
	"testing"

	"draughts/game"

	"github.com/stretchr/testify/require"
)

func c(row, col int) game.Coord {
	return game.Coord{Row: row, Col: col}
}

func emptyGame() *game.Game {
	return game.NewGame(game.WithoutArrangement())
}

func TestNodeExpand(t *testing.T) {
	t.Run("turn with a forced continuation is one child", func(t *testing.T) {
		g := emptyGame()
		g.Place(c(2, 1), game.Player1, game.Man)
		g.Place(c(3, 2), game.Player2, game.Man)
		g.Place(c(5, 4), game.Player2, game.Man)
		g.Place(c(7, 0), game.Player2, game.Man)
		node := NewNode(g)

		children := node.Expand()

		require.Len(t, children, 1, "The double capture is the only legal turn")
		child := children[0]
		require.Equal(t, []game.Step{
			{From: c(2, 1), To: c(4, 3)},
			{From: c(4, 3), To: c(6, 5)},
		}, child.Steps())
		require.Equal(t, game.Player2, child.Game().CurrentPlayer().ID, "Child should hand the turn to the opponent")
		require.False(t, child.Game().MustContinue())
		require.False(t, child.Game().IsBlocked(c(3, 2)), "Turn boundary should release captured squares")
		require.Equal(t, 1, child.Game().Player(game.Player2).Pieces())
		require.Equal(t, 3, node.Game().Player(game.Player2).Pieces(), "Expanding should not touch the parent")
	})

	t.Run("branching continuation forks independent children", func(t *testing.T) {
		g := emptyGame()
		g.Place(c(2, 3), game.Player1, game.Man)
		g.Place(c(3, 4), game.Player2, game.Man)
		g.Place(c(5, 4), game.Player2, game.Man)
		g.Place(c(5, 6), game.Player2, game.Man)
		node := NewNode(g)

		children := node.Expand()

		require.Len(t, children, 2)
		require.Equal(t, []game.Step{{From: c(2, 3), To: c(4, 5)}, {From: c(4, 5), To: c(6, 3)}}, children[0].Steps())
		require.Equal(t, []game.Step{{From: c(2, 3), To: c(4, 5)}, {From: c(4, 5), To: c(6, 7)}}, children[1].Steps())

		_, ok := children[0].Game().At(c(5, 6))
		require.True(t, ok, "First branch should keep the piece it did not capture")
		_, ok = children[0].Game().At(c(5, 4))
		require.False(t, ok)
		_, ok = children[1].Game().At(c(5, 4))
		require.True(t, ok, "Second branch should keep the piece it did not capture")
		_, ok = children[1].Game().At(c(5, 6))
		require.False(t, ok)
	})

	t.Run("opening position", func(t *testing.T) {
		node := NewNode(game.NewGame())

		children := node.Expand()

		require.Len(t, children, 7)
		for _, child := range children {
			require.Len(t, child.Steps(), 1)
			require.Equal(t, game.Player2, child.Game().CurrentPlayer().ID)
			require.Equal(t, 0, child.Score())
		}
	})
}

func TestNodeReplay(t *testing.T) {
	g := emptyGame()
	g.Place(c(2, 1), game.Player1, game.Man)
	g.Place(c(3, 2), game.Player2, game.Man)
	g.Place(c(5, 4), game.Player2, game.Man)
	g.Place(c(7, 0), game.Player2, game.Man)
	child := NewNode(g).Expand()[0]

	err := child.Replay(g)

	require.NoError(t, err)
	require.False(t, g.MustContinue())
	p, ok := g.At(c(6, 5))
	require.True(t, ok)
	require.Equal(t, game.Player1, p.Owner)
	require.Equal(t, game.Player1, g.CurrentPlayer().ID, "Replay should leave ending the turn to the caller")

	g.NextPlayer()
	require.Equal(t, child.Score(), game.EvaluateMaterial(g))
}

func TestNodeReplayRejectsStaleSteps(t *testing.T) {
	g := game.NewGame()
	child := NewNode(g).Expand()[0]
	_, err := g.Play(c(2, 1), c(3, 0))
	require.NoError(t, err)

	err = child.Replay(g)

	require.ErrorIs(t, err, game.ErrEmptyCell)
}
