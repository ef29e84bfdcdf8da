package game

import "fmt"

// Game is the live state of a draughts match: the board, both players and
// the bookkeeping that spans the steps of a turn.
type Game struct {
	board      *Board
	players    [2]*Player
	current    int // ID of the player to move
	winner     int // ID of the winner, 0 while undecided
	drawAmount int

	kingMovesSinceLastAttack int
	blockedCells             map[Coord]struct{} // Squares emptied by captures this turn
	mustContinue             bool
	continueFrom             Coord // Landing square of the pending capture chain
	captured                 [2]int
}

// NewGame creates a game on a standard board unless options say otherwise.
// Player 1 moves first.
func NewGame(options ...Option) *Game {
	settings := NewStandardSettings()
	for _, option := range options {
		option(&settings)
	}

	g := &Game{
		board: NewBoard(settings.Width),
		players: [2]*Player{
			NewPlayer(Player1, settings.Names[0]),
			NewPlayer(Player2, settings.Names[1]),
		},
		current:      Player1,
		drawAmount:   settings.DrawAmount,
		blockedCells: make(map[Coord]struct{}),
	}
	if settings.Arrange {
		g.arrangePieces(settings.PiecesPerPlayer)
	}
	return g
}

// arrangePieces fills the board in a zig-zag starting from player 1's side
// and mirrors every square for player 2.
func (g *Game) arrangePieces(piecesPerPlayer int) {
	width := g.board.Width()
	for p := 0; p < piecesPerPlayer; p++ {
		row := (2 * p) / width
		for row >= width {
			row--
		}
		var col int
		if row%2 == 0 {
			col = (2*p + 1) % width
		} else {
			col = (2 * p) % width
		}
		g.Place(Coord{Row: row, Col: col}, Player1, Man)
		g.Place(Coord{Row: width - 1 - row, Col: width - 1 - col}, Player2, Man)
	}
}

// Place puts a new piece on an empty square. It is meant for composing
// positions before play starts.
func (g *Game) Place(c Coord, owner int, rank Rank) {
	cell := g.board.Cell(c)
	if cell.HasPiece() {
		panic(fmt.Sprintf("cannot place a piece on occupied cell %s", c))
	}
	piece := &Piece{Owner: owner, Rank: rank}
	g.board.occupy(c, piece)
	g.Player(owner).add(piece)
}

// Clone returns a fully independent copy of the game. Pieces are copied so
// that no state is shared with the original.
func (g *Game) Clone() *Game {
	clone := &Game{
		board: NewBoard(g.board.Width()),
		players: [2]*Player{
			NewPlayer(g.players[0].ID, g.players[0].Name),
			NewPlayer(g.players[1].ID, g.players[1].Name),
		},
		current:                  g.current,
		winner:                   g.winner,
		drawAmount:               g.drawAmount,
		kingMovesSinceLastAttack: g.kingMovesSinceLastAttack,
		blockedCells:             make(map[Coord]struct{}, len(g.blockedCells)),
		mustContinue:             g.mustContinue,
		continueFrom:             g.continueFrom,
		captured:                 g.captured,
	}
	g.board.each(func(c Coord, cell *Cell) {
		if cell.blocked {
			clone.board.block(c)
		}
		if cell.piece == nil {
			return
		}
		piece := *cell.piece
		clone.board.occupy(c, &piece)
		clone.Player(piece.Owner).add(&piece)
	})
	for c := range g.blockedCells {
		clone.blockedCells[c] = struct{}{}
	}
	return clone
}

func (g *Game) Board() *Board {
	return g.board
}

func (g *Game) Width() int {
	return g.board.Width()
}

// Player returns the player with the given ID. It panics on unknown IDs.
func (g *Game) Player(id int) *Player {
	return g.players[playerIndex(id)]
}

func playerIndex(id int) int {
	switch id {
	case Player1:
		return 0
	case Player2:
		return 1
	default:
		panic(fmt.Sprintf("unknown player %d", id))
	}
}

func (g *Game) CurrentPlayer() *Player {
	return g.Player(g.current)
}

// Opponent returns the player who is not id.
func (g *Game) Opponent(id int) *Player {
	if id == Player1 {
		return g.players[1]
	}
	return g.players[0]
}

// At returns a copy of the piece on c, if any.
func (g *Game) At(c Coord) (Piece, bool) {
	p := g.board.Piece(c)
	if p == nil {
		return Piece{}, false
	}
	return *p, true
}

func (g *Game) IsBlocked(c Coord) bool {
	return g.board.Cell(c).IsBlocked()
}

// MustContinue reports whether the current player is in the middle of a
// capture chain.
func (g *Game) MustContinue() bool {
	return g.mustContinue
}

// ContinueFrom returns the square the pending capture chain continues from.
func (g *Game) ContinueFrom() (Coord, bool) {
	return g.continueFrom, g.mustContinue
}

func (g *Game) KingMovesSinceLastAttack() int {
	return g.kingMovesSinceLastAttack
}

func (g *Game) DrawAmount() int {
	return g.drawAmount
}

// Captured returns how many pieces player id has lost.
func (g *Game) Captured(id int) int {
	return g.captured[playerIndex(id)]
}

// IsDraw reports whether the non-capturing king move counter went past the
// draw threshold. A draw overrides any winner.
func (g *Game) IsDraw() bool {
	return g.kingMovesSinceLastAttack > g.drawAmount
}

// Winner returns the winning player. It returns nil while the game goes on
// and when it ended in a draw.
func (g *Game) Winner() *Player {
	if g.IsDraw() || g.winner == 0 {
		return nil
	}
	return g.Player(g.winner)
}

func (g *Game) IsEndOfGame() bool {
	return g.IsDraw() || g.winner != 0
}

// calculateWinner decides the game when a side is out of pieces or has no
// move left. It is recomputed from the board on every call.
func (g *Game) calculateWinner() {
	g.winner = 0
	current := g.CurrentPlayer()
	other := g.Opponent(g.current)
	if !other.IsAlive() {
		g.winner = current.ID
		return
	}
	if !g.canMove(other.ID) {
		g.winner = current.ID
	}
	if !g.canMove(current.ID) {
		g.winner = other.ID
	}
}

func (g *Game) canMove(id int) bool {
	can := false
	g.board.each(func(c Coord, cell *Cell) {
		if can || cell.piece == nil || cell.piece.Owner != id {
			return
		}
		can = len(g.pieceMoves(c, cell.piece)) > 0
	})
	return can
}
