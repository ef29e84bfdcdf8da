package agent

import (
	"draughts/game"
	"draughts/searcher"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns an agent picking uniformly among complete legal
// turns. Equal seeds give equal games.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindTurn(g *game.Game) (Turn, error) {
	children := searcher.NewNode(g).Expand()
	if len(children) == 0 {
		return Turn{}, ErrNoMoves
	}
	child := children[a.rng.Intn(len(children))]
	return Turn{Steps: child.Steps()}, nil
}
