package game

import (
	"fmt"

	"golang.org/x/exp/slices"
)

var allDirections = []direction{{-1, -1}, {-1, 1}, {1, 1}, {1, -1}}

// forwardDirections are the quiet move directions of a man. Player 1 starts
// on the low rows and moves towards the high ones.
func forwardDirections(owner int) []direction {
	if owner == Player1 {
		return []direction{{1, -1}, {1, 1}}
	}
	return []direction{{-1, 1}, {-1, -1}}
}

// moveRules generates the destinations of a piece standing on at.
type moveRules struct {
	quiet   func(g *Game, at Coord, p *Piece) []Coord
	attacks func(g *Game, at Coord, p *Piece) []Coord
}

var rankRules = [...]moveRules{
	Man:  {quiet: manMoves, attacks: manAttacks},
	King: {quiet: kingMoves, attacks: kingAttacks},
}

// pieceMoves returns the attacks of p, or its quiet moves when it cannot
// attack.
func (g *Game) pieceMoves(at Coord, p *Piece) []Coord {
	r := rankRules[p.Rank]
	if attacks := r.attacks(g, at, p); len(attacks) > 0 {
		return attacks
	}
	return r.quiet(g, at, p)
}

func (g *Game) pieceAttacks(at Coord, p *Piece) []Coord {
	return rankRules[p.Rank].attacks(g, at, p)
}

func (g *Game) canCapture(at Coord, p *Piece) bool {
	return len(g.pieceAttacks(at, p)) > 0
}

// PossibleMoves returns the destinations of the piece on c in row-major
// order. Capturing destinations replace quiet ones whenever the piece can
// capture.
func (g *Game) PossibleMoves(c Coord) ([]Coord, error) {
	if !g.board.InBounds(c) {
		return nil, fmt.Errorf("%s: %w", c, ErrOutOfBounds)
	}
	p := g.board.Piece(c)
	if p == nil {
		return nil, fmt.Errorf("%s: %w", c, ErrEmptyCell)
	}
	moves := g.pieceMoves(c, p)
	slices.SortFunc(moves, compareCoords)
	return moves, nil
}

// CanCapture reports whether the piece on c has a capture available.
func (g *Game) CanCapture(c Coord) bool {
	p := g.board.Piece(c)
	return p != nil && g.canCapture(c, p)
}

// LegalMoves returns every step player id may play now, sorted by origin
// then destination. Captures are mandatory: when any piece of the player can
// capture, only capturing steps are returned. In the middle of a capture
// chain only the chain's piece may move.
func (g *Game) LegalMoves(id int) []Step {
	if id == g.current && g.mustContinue {
		dests, _ := g.PossibleMoves(g.continueFrom)
		steps := make([]Step, 0, len(dests))
		for _, d := range dests {
			steps = append(steps, Step{From: g.continueFrom, To: d})
		}
		return steps
	}

	var steps []Step
	isAttack := false
	g.board.each(func(c Coord, cell *Cell) {
		if cell.piece == nil || cell.piece.Owner != id {
			return
		}
		if attacks := g.pieceAttacks(c, cell.piece); len(attacks) > 0 {
			if !isAttack {
				steps = steps[:0]
				isAttack = true
			}
			for _, d := range attacks {
				steps = append(steps, Step{From: c, To: d})
			}
		} else if !isAttack {
			for _, d := range rankRules[cell.piece.Rank].quiet(g, c, cell.piece) {
				steps = append(steps, Step{From: c, To: d})
			}
		}
	})
	slices.SortFunc(steps, CompareSteps)
	return steps
}

func manMoves(g *Game, at Coord, p *Piece) []Coord {
	var moves []Coord
	for _, d := range forwardDirections(p.Owner) {
		c := at.add(d)
		if g.board.InBounds(c) && g.board.Cell(c).IsEmpty() {
			moves = append(moves, c)
		}
	}
	return moves
}

// kingMoves slides along each diagonal up to the first piece, blocked cell
// or edge.
func kingMoves(g *Game, at Coord, p *Piece) []Coord {
	var moves []Coord
	for _, d := range allDirections {
		for c := at.add(d); g.isOpen(c); c = c.add(d) {
			moves = append(moves, c)
		}
	}
	return moves
}

// isOpen reports whether c is on the board, empty and not blocked.
func (g *Game) isOpen(c Coord) bool {
	if !g.board.InBounds(c) {
		return false
	}
	cell := g.board.Cell(c)
	return cell.IsEmpty() && !cell.IsBlocked()
}

// chain describes a hypothetical capture sequence: the square the piece left
// and the squares it already jumped over.
type chain struct {
	origin Coord
	owner  int
	jumped map[Coord]struct{}
}

func (ch chain) with(c Coord) chain {
	jumped := make(map[Coord]struct{}, len(ch.jumped)+1)
	for k := range ch.jumped {
		jumped[k] = struct{}{}
	}
	jumped[c] = struct{}{}
	return chain{origin: ch.origin, owner: ch.owner, jumped: jumped}
}

func (ch chain) isJumped(c Coord) bool {
	_, ok := ch.jumped[c]
	return ok
}

// occupant is the piece on c as seen from inside the chain, where the
// moving piece has already left its origin.
func (g *Game) occupant(ch chain, c Coord) *Piece {
	if c == ch.origin {
		return nil
	}
	return g.board.Piece(c)
}

// landable reports whether the chain may land on c.
func (g *Game) landable(ch chain, c Coord) bool {
	return g.board.InBounds(c) && !ch.isJumped(c) && !g.board.Cell(c).IsBlocked() && g.occupant(ch, c) == nil
}

func (g *Game) isEnemy(ch chain, c Coord) bool {
	p := g.occupant(ch, c)
	return p != nil && p.Owner != ch.owner
}

// maxDepth keeps the landings whose chain depth equals the best seen so far.
type maxDepth struct {
	depth    int
	landings []Coord
}

func (m *maxDepth) offer(c Coord, depth int) {
	switch {
	case len(m.landings) == 0 || depth > m.depth:
		m.depth = depth
		m.landings = []Coord{c}
	case depth == m.depth:
		m.landings = append(m.landings, c)
	}
}

// manAttacks returns the landing squares of the longest capture chains of a
// man standing on at.
func manAttacks(g *Game, at Coord, p *Piece) []Coord {
	ch := chain{origin: at, owner: p.Owner}
	var best maxDepth
	for _, d := range allDirections {
		over := at.add(d)
		if !g.board.InBounds(over) || g.board.Cell(over).IsBlocked() || !g.isEnemy(ch, over) {
			continue
		}
		landing := over.add(d)
		if !g.landable(ch, landing) {
			continue
		}
		best.offer(landing, g.manChainDepth(ch.with(over), landing, 0))
	}
	return best.landings
}

// manChainDepth returns the number of further captures a man can chain from
// at.
func (g *Game) manChainDepth(ch chain, at Coord, depth int) int {
	best := depth
	for _, d := range allDirections {
		over := at.add(d)
		if !g.board.InBounds(over) || ch.isJumped(over) || g.board.Cell(over).IsBlocked() || !g.isEnemy(ch, over) {
			continue
		}
		landing := over.add(d)
		if !g.landable(ch, landing) {
			continue
		}
		best = max(best, g.manChainDepth(ch.with(over), landing, depth+1))
	}
	return best
}

// kingAttacks returns the landing squares of the longest capture chains of a
// king standing on at. A king slides to the first enemy on a diagonal and may
// land on any open square behind it.
func kingAttacks(g *Game, at Coord, p *Piece) []Coord {
	ch := chain{origin: at, owner: p.Owner}
	var best maxDepth
	for _, d := range allDirections {
		enemy, ok := g.firstEnemy(ch, at, d)
		if !ok {
			continue
		}
		next := ch.with(enemy)
		for c := enemy.add(d); g.landable(ch, c); c = c.add(d) {
			best.offer(c, g.kingChainDepth(next, c, 0))
		}
	}
	return best.landings
}

// kingChainDepth returns the number of further captures a king can chain
// from at.
func (g *Game) kingChainDepth(ch chain, at Coord, depth int) int {
	best := depth
	for _, d := range allDirections {
		enemy, ok := g.firstEnemy(ch, at, d)
		if !ok {
			continue
		}
		next := ch.with(enemy)
		for c := enemy.add(d); g.landable(ch, c); c = c.add(d) {
			best = max(best, g.kingChainDepth(next, c, depth+1))
		}
	}
	return best
}

// firstEnemy slides from at along d over open squares and returns the enemy
// piece that ends the slide. Edges, blocked cells, own pieces and pieces
// already jumped in the chain end the slide without an enemy.
func (g *Game) firstEnemy(ch chain, at Coord, d direction) (Coord, bool) {
	c := at.add(d)
	for g.board.InBounds(c) && !ch.isJumped(c) && !g.board.Cell(c).IsBlocked() && g.occupant(ch, c) == nil {
		c = c.add(d)
	}
	if !g.board.InBounds(c) || ch.isJumped(c) || g.board.Cell(c).IsBlocked() {
		return Coord{}, false
	}
	return c, g.isEnemy(ch, c)
}
