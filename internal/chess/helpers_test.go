package chess

import "testing"

func gameFromFEN(t *testing.T, fen string, rules Rules) *Game {
	t.Helper()
	setup, err := ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q) failed: %v", fen, err)
	}
	g := NewGame(rules)
	g.Reset(setup)
	return g
}

func play(t *testing.T, g *Game, moves ...string) {
	t.Helper()
	for _, m := range moves {
		from, to := MustSquare(m[:2]), MustSquare(m[2:])
		if !containsMove(g.LegalMoves(from), from, to) {
			t.Fatalf("move %s not legal in %s", m, g.FEN())
		}
		g.ApplyMove(from, to)
	}
}

func containsMove(moves []Move, from, to Square) bool {
	for _, mv := range moves {
		if mv.From == from && mv.To == to {
			return true
		}
	}
	return false
}
