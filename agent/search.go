package agent

import (
	"draughts/game"
	"draughts/searcher"
)

type searchAgent struct {
	searcher *searcher.Searcher
}

// NewSearchAgent returns an agent playing the first turn of the alpha-beta
// line. A searcher of depth 0 never picks a turn; the agent then plays the
// first legal turn.
func NewSearchAgent(s *searcher.Searcher) Agent {
	return searchAgent{searcher: s}
}

func (a searchAgent) FindTurn(g *game.Game) (Turn, error) {
	if len(g.LegalMoves(g.CurrentPlayer().ID)) == 0 {
		return Turn{}, ErrNoMoves
	}
	result := a.searcher.Search(g)
	if len(result.Turn) == 0 {
		children := result.Root.Expand()
		return Turn{Steps: children[0].Steps(), Metric: result.Metric}, nil
	}
	return Turn{Steps: result.Turn, Metric: result.Metric}, nil
}
