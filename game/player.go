package game

import "fmt"

// Player is one side of the game and the set of pieces it still owns.
type Player struct {
	ID     int
	Name   string
	pieces map[*Piece]struct{}
}

// NewPlayer creates a player with an explicit id. An empty name falls back
// to "p<id>".
func NewPlayer(id int, name string) *Player {
	if name == "" {
		name = fmt.Sprintf("p%d", id)
	}
	return &Player{
		ID:     id,
		Name:   name,
		pieces: make(map[*Piece]struct{}),
	}
}

func (p *Player) String() string {
	return p.Name
}

// Pieces returns the number of pieces the player still owns.
func (p *Player) Pieces() int {
	return len(p.pieces)
}

func (p *Player) IsAlive() bool {
	return len(p.pieces) > 0
}

func (p *Player) owns(piece *Piece) bool {
	_, ok := p.pieces[piece]
	return ok
}

func (p *Player) add(piece *Piece) {
	p.pieces[piece] = struct{}{}
}

func (p *Player) remove(piece *Piece) {
	delete(p.pieces, piece)
}

// material sums the rank values of the player's pieces.
func (p *Player) material() int {
	total := 0
	for piece := range p.pieces {
		total += piece.Rank.Value()
	}
	return total
}
