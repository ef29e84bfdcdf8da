package game

// Rank is the promotion level of a piece.
type Rank int

const (
	Man Rank = iota
	King
)

func (r Rank) String() string {
	switch r {
	case Man:
		return "man"
	case King:
		return "king"
	default:
		return "unknown"
	}
}

// Value is the material worth of the rank used by the static evaluation.
func (r Rank) Value() int {
	if r == King {
		return 2
	}
	return 1
}

// Piece is a man or king owned by one player.
type Piece struct {
	Owner int
	Rank  Rank
}

func (p *Piece) IsKing() bool {
	return p.Rank == King
}

func (p *Piece) promote() {
	p.Rank = King
}
