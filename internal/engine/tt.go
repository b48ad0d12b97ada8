package engine

import "chessgame/internal/chess"

const evalCacheCap = 1 << 20

// eval returns the cached static evaluation of g's position.
func (e *Engine) eval(g *chess.Game) int {
	key := g.Hash()
	if v, ok := e.cache[key]; ok {
		return v
	}
	b := g.Board()
	v := Evaluate(&b)
	if len(e.cache) >= evalCacheCap {
		e.cache = make(map[uint64]int, 1<<12)
	}
	e.cache[key] = v
	return v
}
