package game

import "fmt"

// Move executes a single step and reports whether the current player must
// continue capturing with the same piece. The step must come from
// LegalMoves; Move panics when the origin is empty, the destination is
// occupied or either square is off the board.
func (g *Game) Move(from, to Coord) bool {
	if !g.board.InBounds(from) || !g.board.InBounds(to) {
		panic(fmt.Sprintf("%s -> %s: coordinates outside the board", from, to))
	}
	piece := g.board.Piece(from)
	if piece == nil {
		panic(fmt.Sprintf("%s -> %s: cannot move empty cell", from, to))
	}
	if g.board.Cell(to).HasPiece() {
		panic(fmt.Sprintf("%s -> %s: cannot move into non-empty cell", from, to))
	}

	attacked := false
	if (Step{From: from, To: to}).IsJump() {
		for _, enemy := range g.enemiesBetween(from, to, piece.Owner) {
			g.RemoveAt(enemy)
			attacked = true
		}
	}
	if attacked {
		g.kingMovesSinceLastAttack = 0
	} else if piece.IsKing() {
		g.kingMovesSinceLastAttack++
	}

	g.board.empty(from)
	g.board.occupy(to, piece)

	// Promotion waits until the capture chain is over.
	g.mustContinue = attacked && g.canCapture(to, piece)
	if g.mustContinue {
		g.continueFrom = to
	} else if !piece.IsKing() && g.isFarRank(to, piece.Owner) {
		piece.promote()
	}

	g.calculateWinner()
	return g.mustContinue
}

// NextPlayer ends the turn: squares blocked by this turn's captures are
// released and the other player is to move. It panics while a capture chain
// is pending.
func (g *Game) NextPlayer() {
	if g.mustContinue {
		panic(fmt.Sprintf("%s must continue the capture from %s", g.CurrentPlayer(), g.continueFrom))
	}
	for c := range g.blockedCells {
		g.board.unblock(c)
	}
	clear(g.blockedCells)
	g.calculateWinner()
	g.current = g.Opponent(g.current).ID
}

// RemoveAt captures the piece on c: it leaves its owner's set and the
// square stays blocked until the turn ends.
func (g *Game) RemoveAt(c Coord) {
	piece := g.board.removeAt(c)
	g.board.block(c)
	g.blockedCells[c] = struct{}{}
	if piece == nil {
		return
	}
	owner := g.Player(piece.Owner)
	if owner.owns(piece) {
		owner.remove(piece)
		g.captured[playerIndex(owner.ID)]++
	}
}

// RemovePiece captures p wherever it stands. It scans the whole board, so
// RemoveAt is preferable when the square is known.
func (g *Game) RemovePiece(p *Piece) bool {
	c, ok := g.board.locate(p)
	if !ok {
		return false
	}
	g.RemoveAt(c)
	return true
}

// enemiesBetween returns the squares strictly between orig and dest that
// hold pieces not owned by owner.
func (g *Game) enemiesBetween(orig, dest Coord, owner int) []Coord {
	d := towards(orig, dest)
	var enemies []Coord
	for c := orig.add(d); c != dest; c = c.add(d) {
		if p := g.board.Piece(c); p != nil && p.Owner != owner {
			enemies = append(enemies, c)
		}
	}
	return enemies
}

// isFarRank reports whether c is on the row where owner's men promote.
func (g *Game) isFarRank(c Coord, owner int) bool {
	if owner == Player1 {
		return c.Row == g.board.Width()-1
	}
	return c.Row == 0
}
