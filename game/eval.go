package game

// Score returns the material balance from the perspective of player id. A man
// is worth 1 and a king 2.
func (g *Game) Score(id int) int {
	val := g.players[0].material() - g.players[1].material()
	if id == Player1 {
		return val
	}
	return -val
}

// EvaluateMaterial scores a position from player 1's perspective.
func EvaluateMaterial(g *Game) int {
	return g.Score(Player1)
}
