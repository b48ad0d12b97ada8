package engine

import (
	"sort"

	"chessgame/internal/chess"
)

const (
	mateDepthCap         = 15
	mateDefaultDepth     = 5
	mateNodeBudgetBase   = 32000
	mateNodeBudgetPerPly = 8000
)

const (
	mateModeAttack uint64 = 0xA5A5A5A5A5A5A5A5
	mateModeDefend uint64 = 0x5A5A5A5A5A5A5A5A
)

type mateTTEntry struct {
	Depth  int
	Result bool
	Move   chess.Move
}

type mateContext struct {
	tt         map[uint64]mateTTEntry
	inPath     map[uint64]bool
	nodes      int
	nodeBudget int
}

// MateResult is the outcome of MateSearch. Plies counts both sides' moves
// up to and including the mating move.
type MateResult struct {
	Found bool
	Move  chess.Move
	Plies int
	Nodes int
}

// MateSearch looks for a forced mate in which every move of the side to move
// gives check. maxPlies bounds the line length; the search also stops at a
// node budget, so a false result means "none found", not "none exists".
func (e *Engine) MateSearch(g *chess.Game, maxPlies int) MateResult {
	if maxPlies <= 0 {
		maxPlies = mateDefaultDepth
	}
	if maxPlies > mateDepthCap {
		maxPlies = mateDepthCap
	}
	if g.Over() {
		return MateResult{}
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	root := g.Save()
	defer g.Restore(root)

	ctx := &mateContext{
		tt:         make(map[uint64]mateTTEntry, 1<<12),
		inPath:     make(map[uint64]bool, 1<<6),
		nodeBudget: mateNodeBudgetBase + maxPlies*mateNodeBudgetPerPly,
	}
	attacker := g.Turn()

	// attacker moves on odd plies, so deepen by two
	for d := 1; d <= maxPlies; d += 2 {
		if mv, ok := mateRoot(g, attacker, d, ctx); ok {
			return MateResult{Found: true, Move: mv, Plies: d, Nodes: ctx.nodes}
		}
		if ctx.nodes > ctx.nodeBudget {
			break
		}
	}
	return MateResult{Nodes: ctx.nodes}
}

func mateRoot(g *chess.Game, attacker chess.Color, depth int, ctx *mateContext) (chess.Move, bool) {
	root := g.Save()
	for _, mv := range checkingMoves(g, ctx) {
		g.ApplyMove(mv.From, mv.To)
		won := wins(g, attacker) || (!g.Over() && !defenderCanEscape(g, attacker, depth-1, ctx))
		g.Restore(root)
		if won {
			return mv, true
		}
	}
	return chess.Move{}, false
}

func wins(g *chess.Game, attacker chess.Color) bool {
	return g.Over() && g.Result().Winner() == attacker
}

// checkingMoves returns the side to move's checking moves, best guesses first.
func checkingMoves(g *chess.Game, ctx *mateContext) []chess.Move {
	ttMove := chess.Move{From: chess.Square{Row: -1}}
	if entry, ok := ctx.tt[g.Hash()^mateModeAttack]; ok {
		ttMove = entry.Move
	}
	root := g.Save()
	mover := g.Turn()

	type scored struct {
		mv    chess.Move
		score int
	}
	var out []scored
	for _, mv := range g.AllLegalMoves() {
		pc := g.PieceAt(mv.From)
		victim := g.PieceAt(mv.To)
		g.ApplyMove(mv.From, mv.To)
		gives := g.Check() == mover.Opposite()
		g.Restore(root)
		if !gives {
			continue
		}

		s := 0
		switch {
		case mv.From == ttMove.From && mv.To == ttMove.To:
			s = 1000
		case victim != chess.NoPiece:
			s = 100 + pieceValue[victim.Type()]/100
		}
		switch pc.Type() {
		case chess.Queen:
			s += 80
		case chess.Rook:
			s += 60
		case chess.Bishop, chess.Knight:
			s += 40
		case chess.Pawn:
			s += 20
		}
		out = append(out, scored{mv, s})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].score > out[j].score })

	moves := make([]chess.Move, len(out))
	for i, s := range out {
		moves[i] = s.mv
	}
	return moves
}

func attackerCanForce(g *chess.Game, attacker chess.Color, depth int, ctx *mateContext) bool {
	if depth <= 0 || ctx.reachNodeBudget() {
		return false
	}
	key := g.Hash() ^ mateModeAttack
	if ctx.inPath[key] {
		return false
	}
	if entry, ok := ctx.tt[key]; ok && entry.Depth >= depth {
		return entry.Result
	}
	ctx.inPath[key] = true
	defer delete(ctx.inPath, key)

	root := g.Save()
	result := false
	var best chess.Move
	for _, mv := range checkingMoves(g, ctx) {
		g.ApplyMove(mv.From, mv.To)
		won := wins(g, attacker) || (!g.Over() && !defenderCanEscape(g, attacker, depth-1, ctx))
		g.Restore(root)
		if won {
			result, best = true, mv
			break
		}
	}
	ctx.tt[key] = mateTTEntry{Depth: depth, Result: result, Move: best}
	return result
}

// defenderCanEscape reports whether the side in check has a reply after
// which the attacker cannot keep checking to mate within depth.
func defenderCanEscape(g *chess.Game, attacker chess.Color, depth int, ctx *mateContext) bool {
	if depth <= 0 || ctx.reachNodeBudget() {
		return true
	}
	key := g.Hash() ^ mateModeDefend
	if ctx.inPath[key] {
		return true
	}
	if entry, ok := ctx.tt[key]; ok && entry.Depth >= depth {
		return entry.Result
	}
	ctx.inPath[key] = true
	defer delete(ctx.inPath, key)

	root := g.Save()
	result := false
	var best chess.Move
	for _, mv := range g.AllLegalMoves() {
		g.ApplyMove(mv.From, mv.To)
		escaped := g.Over() || !attackerCanForce(g, attacker, depth-1, ctx)
		g.Restore(root)
		if escaped {
			result, best = true, mv
			break
		}
	}
	ctx.tt[key] = mateTTEntry{Depth: depth, Result: result, Move: best}
	return result
}

func (ctx *mateContext) reachNodeBudget() bool {
	ctx.nodes++
	return ctx.nodes > ctx.nodeBudget
}
