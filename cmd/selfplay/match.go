package main

import (
	"fmt"
	"io"

	"chessgame/internal/chess"
	"chessgame/internal/engine"
	"chessgame/internal/notation"
)

type match struct {
	e        *engine.Engine
	white    PlayerConfig
	black    PlayerConfig
	rules    chess.Rules
	maxPlies int
	watch    bool
	out      io.Writer
}

// play runs one game and returns the result and the number of plies played.
// Games that reach maxPlies, or a side without moves under rules that do not
// end the game, are scored as draws.
func (m match) play() (chess.Result, int) {
	g := chess.NewGame(m.rules)
	for ply := 0; ply < m.maxPlies; ply++ {
		if g.Over() {
			return g.Result(), ply
		}
		cfg := m.white.Cfg
		if g.Turn() == chess.Black {
			cfg = m.black.Cfg
		}

		res := m.e.ChooseMove(g, cfg)
		if !res.Found {
			return chess.Draw, ply
		}
		san := notation.Describe(g, res.Move)
		g.ApplyMove(res.Move.From, res.Move.To)

		if m.watch {
			fmt.Fprintf(m.out, "%3d. %-7s score=%-7d nodes=%-6d %v\n", ply/2+1, san, res.Score, res.Nodes, res.TimeUsed)
			printBoard(m.out, g)
		}
	}
	if g.Over() {
		return g.Result(), m.maxPlies
	}
	return chess.Draw, m.maxPlies
}
