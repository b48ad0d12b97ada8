package chess

// Perft counts leaf positions depth plies below the current one, exploring
// with Save/Restore so the game is unchanged afterwards.
func Perft(g *Game, depth int) int64 {
	if depth <= 0 {
		return 1
	}
	moves := g.AllLegalMoves()
	if depth == 1 {
		return int64(len(moves))
	}
	root := g.Save()
	defer g.Restore(root)

	var nodes int64
	for _, mv := range moves {
		g.ApplyMove(mv.From, mv.To)
		nodes += Perft(g, depth-1)
		g.Restore(root)
	}
	return nodes
}
