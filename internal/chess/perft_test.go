package chess

import "testing"

func TestPerftInitialPosition(t *testing.T) {
	want := []int64{1, 20, 400, 8902}
	g := NewGame(DefaultRules())
	before := g.Save()
	for depth, n := range want {
		if got := Perft(g, depth); got != n {
			t.Fatalf("perft depth %d: got %d want %d", depth, got, n)
		}
	}
	if g.Save() != before {
		t.Fatalf("perft left the game modified")
	}
}

func TestPerftDepth4(t *testing.T) {
	if testing.Short() {
		t.Skip("slow")
	}
	// No castling, en passant or promotion is reachable in four plies.
	if got := Perft(NewGame(DefaultRules()), 4); got != 197281 {
		t.Fatalf("perft depth 4: got %d want 197281", got)
	}
}
