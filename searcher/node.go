package searcher

import (
	"fmt"

	"draughts/game"

	"golang.org/x/exp/slices"
)

// Node is an isolated copy of a game together with the steps that produced it
// from its parent. Every child of a node is one complete turn.
type Node struct {
	game  *game.Game
	steps []game.Step
	best  *Node // Successor chosen by the search
}

func NewNode(g *game.Game) *Node {
	return &Node{game: g.Clone()}
}

func (n *Node) Game() *game.Game {
	return n.game
}

// Steps returns the steps of the turn leading to n.
func (n *Node) Steps() []game.Step {
	return n.steps
}

// Best returns the successor chosen by the last search, or nil.
func (n *Node) Best() *Node {
	return n.best
}

// Line returns the steps along the chosen successors, turn after turn.
func (n *Node) Line() []game.Step {
	var line []game.Step
	for node := n.best; node != nil; node = node.best {
		line = append(line, node.steps...)
	}
	return line
}

// Score is the material balance from player 1's perspective.
func (n *Node) Score() int {
	return game.EvaluateMaterial(n.game)
}

// Expand returns one child per full legal turn of the player to move. A
// capture chain that can go on in several ways forks into several children.
// Every child has already passed the turn to the opponent.
func (n *Node) Expand() []*Node {
	var children []*Node
	for _, step := range n.game.LegalMoves(n.game.CurrentPlayer().ID) {
		child := &Node{game: n.game.Clone()}
		children = append(children, child.play(step)...)
	}
	return children
}

// play applies step and follows the capture chain it starts. Branches are
// forked before the node is mutated so they never share state.
func (n *Node) play(step game.Step) []*Node {
	n.steps = append(n.steps, step)
	if !n.game.Move(step.From, step.To) {
		n.game.NextPlayer()
		return []*Node{n}
	}

	from, _ := n.game.ContinueFrom()
	dests, err := n.game.PossibleMoves(from)
	if err != nil {
		panic(fmt.Sprintf("continuing capture from %s: %v", from, err))
	}
	var done []*Node
	for i, dest := range dests {
		branch := n
		if i < len(dests)-1 {
			branch = n.fork()
		}
		done = append(done, branch.play(game.Step{From: from, To: dest})...)
	}
	return done
}

func (n *Node) fork() *Node {
	return &Node{game: n.game.Clone(), steps: slices.Clone(n.steps)}
}

// Replay applies the steps of n to a live game. The caller ends the turn.
func (n *Node) Replay(live *game.Game) error {
	for _, step := range n.steps {
		if _, err := live.Play(step.From, step.To); err != nil {
			return fmt.Errorf("failed to replay %s: %w", step, err)
		}
	}
	return nil
}
