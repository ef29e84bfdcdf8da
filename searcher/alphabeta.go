package searcher

import (
	"math"

	"draughts/experiments/metrics"
	"draughts/game"

	"github.com/rs/zerolog/log"
)

const DefaultDepth = 3

type Option func(s *Searcher)

// Searcher runs a depth limited minimax search with alpha-beta pruning over
// whole turns.
type Searcher struct {
	depth    int
	evaluate game.Evaluate
	metrics  metrics.Collector
}

type Result struct {
	Score  int         // Value of the root from player 1's perspective
	Turn   []game.Step // Steps of the chosen turn for the player to move
	Line   []game.Step // Steps of the whole principal line
	Root   *Node
	Metric metrics.SearchMetric
}

// WithDepth sets the number of turns to look ahead. Depth 0 only evaluates
// the current position.
func WithDepth(depth int) Option {
	return func(s *Searcher) {
		if depth >= 0 {
			s.depth = depth
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(s *Searcher) {
		if evaluate != nil {
			s.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(s *Searcher) {
		s.metrics = metrics.NewCollector()
	}
}

func NewSearcher(options ...Option) *Searcher {
	s := &Searcher{ // Default values
		depth:    DefaultDepth,
		evaluate: game.EvaluateMaterial,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *Searcher) Depth() int {
	return s.depth
}

// Search looks for the best line from the position of g. g is not modified.
func (s *Searcher) Search(g *game.Game) Result {
	root := NewNode(g)

	s.metrics.Start(s.depth)
	score := s.alphabeta(root, s.depth, math.MinInt, math.MaxInt)
	metric := s.metrics.Complete()

	result := Result{
		Score:  score,
		Line:   root.Line(),
		Root:   root,
		Metric: metric,
	}
	if root.best != nil {
		result.Turn = root.best.steps
	}

	log.Debug().
		Int("depth", s.depth).
		Int("score", score).
		Int("player", g.CurrentPlayer().ID).
		Int("nodes", metric.Nodes).
		Int("cutoffs", metric.Cutoffs).
		Dur("duration", metric.Duration).
		Msgf("search found line of %d steps", len(result.Line))
	return result
}

// alphabeta returns the value of node n searched depth turns deep. Player 1
// maximises and player 2 minimises. The child that first reaches the best
// value is recorded as the successor of n. A pending capture chain is always
// searched: the game is only decided at the end of the turn.
func (s *Searcher) alphabeta(n *Node, depth, alpha, beta int) int {
	s.metrics.AddNode()
	if depth == 0 || (n.game.IsEndOfGame() && !n.game.MustContinue()) {
		s.metrics.AddLeaf()
		return s.evaluate(n.game)
	}

	children := n.Expand()
	if len(children) == 0 {
		s.metrics.AddLeaf()
		return s.evaluate(n.game)
	}

	if n.game.CurrentPlayer().ID == game.Player1 {
		best := math.MinInt
		for _, child := range children {
			value := s.alphabeta(child, depth-1, alpha, beta)
			if value > best {
				best = value
				n.best = child
			}
			alpha = max(alpha, best)
			if alpha >= beta {
				s.metrics.AddCutoff()
				break
			}
		}
		return best
	}

	best := math.MaxInt
	for _, child := range children {
		value := s.alphabeta(child, depth-1, alpha, beta)
		if value < best {
			best = value
			n.best = child
		}
		beta = min(beta, best)
		if alpha >= beta {
			s.metrics.AddCutoff()
			break
		}
	}
	return best
}
