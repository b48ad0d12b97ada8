package engine

import "chessgame/internal/chess"

// MateScore is the base value of a checkmate; it is multiplied by the
// remaining depth so quicker mates score further from zero.
const MateScore = 100_000

// random picks uniformly among all legal moves.
func (e *Engine) random(g *chess.Game) SearchResult {
	moves := g.AllLegalMoves()
	e.nodes += int64(len(moves))
	if len(moves) == 0 {
		return SearchResult{}
	}
	mv := moves[e.rng.Intn(len(moves))]
	return SearchResult{Move: mv, Found: true, Depth: 0}
}

// greedy plays each move, scores the resulting board statically and keeps
// the best one for the mover. Only a strictly better score replaces the
// current choice, so ties go to the earliest move generated.
func (e *Engine) greedy(g *chess.Game) SearchResult {
	moves := g.AllLegalMoves()
	if len(moves) == 0 {
		return SearchResult{}
	}
	maximize := g.Turn() == chess.White
	root := g.Save()

	best := SearchResult{Found: true, Depth: 1}
	for i, mv := range moves {
		g.ApplyMove(mv.From, mv.To)
		e.nodes++
		score := e.eval(g)
		g.Restore(root)

		if i == 0 || better(score, best.Score, maximize) {
			best.Move = mv
			best.Score = score
		}
	}
	return best
}

func (e *Engine) minimaxRoot(g *chess.Game, depth int) SearchResult {
	moves := g.AllLegalMoves()
	if len(moves) == 0 {
		return SearchResult{}
	}
	maximize := g.Turn() == chess.White
	root := g.Save()

	best := SearchResult{Found: true, Depth: depth}
	for i, mv := range moves {
		g.ApplyMove(mv.From, mv.To)
		score := e.minimax(g, 1, depth)
		g.Restore(root)

		if i == 0 || better(score, best.Score, maximize) {
			best.Move = mv
			best.Score = score
		}
	}
	return best
}

// minimax scores g, ply plies below the root, searching until depth.
func (e *Engine) minimax(g *chess.Game, ply, depth int) int {
	e.nodes++
	if g.Over() {
		return terminalScore(g.Result(), depth-ply)
	}
	if ply >= depth {
		return e.eval(g)
	}
	moves := g.AllLegalMoves()
	if len(moves) == 0 {
		// stalemate under rules that do not end the game
		return e.eval(g)
	}

	maximize := g.Turn() == chess.White
	root := g.Save()
	var best int
	for i, mv := range moves {
		g.ApplyMove(mv.From, mv.To)
		score := e.minimax(g, ply+1, depth)
		g.Restore(root)
		if i == 0 || better(score, best, maximize) {
			best = score
		}
	}
	return best
}

func terminalScore(r chess.Result, remaining int) int {
	switch r {
	case chess.WhiteWins:
		return MateScore * (remaining + 1)
	case chess.BlackWins:
		return -MateScore * (remaining + 1)
	default:
		return 0
	}
}

func better(score, best int, maximize bool) bool {
	if maximize {
		return score > best
	}
	return score < best
}
