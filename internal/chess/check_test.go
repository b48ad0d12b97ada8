package chess

import "testing"

func TestIsInCheck(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		side Color
		want bool
	}{
		{"rook on file", "4r2k/8/8/8/8/8/8/4K3 w - - 0 1", White, true},
		{"rook blocked", "4r2k/8/8/8/4P3/8/8/4K3 w - - 0 1", White, false},
		{"knight", "7k/8/8/8/8/3n4/8/4K3 w - - 0 1", White, true},
		{"pawn diagonal", "7k/8/8/8/8/8/3p4/4K3 w - - 0 1", White, true},
		{"pawn in front does not attack", "7k/8/8/8/8/8/4p3/4K3 w - - 0 1", White, false},
		{"bishop", "7k/8/8/8/8/8/8/b3K2R w - - 0 1", White, false},
		{"bishop diagonal", "7k/8/8/8/b7/8/8/3K4 w - - 0 1", White, true},
		{"black king by queen", "3k4/8/8/8/8/8/8/3QK3 b - - 0 1", Black, true},
		{"missing king", "8/8/8/8/8/8/8/r7 w - - 0 1", White, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setup, err := ParseFEN(tt.fen)
			if err != nil {
				t.Fatalf("ParseFEN: %v", err)
			}
			if got := setup.Board.IsInCheck(tt.side); got != tt.want {
				t.Fatalf("IsInCheck(%v) = %v, want %v", tt.side, got, tt.want)
			}
		})
	}
}

func TestCheckMustBeResolved(t *testing.T) {
	// White king on e1 checked by the rook on e8; the a4 rook can block on e4.
	g := gameFromFEN(t, "4r2k/8/8/8/R7/8/8/4K3 w - - 0 1", DefaultRules())
	if g.Check() != White {
		t.Fatalf("expected white in check, got %v", g.Check())
	}
	moves := g.AllLegalMoves()
	if !containsMove(moves, MustSquare("a4"), MustSquare("e4")) {
		t.Fatalf("blocking move a4e4 missing from %v", moves)
	}
	for _, mv := range moves {
		if g.PieceAt(mv.From).Type() == Rook && mv.To != MustSquare("e4") {
			t.Fatalf("rook move %v leaves the check unresolved", mv)
		}
		if mv.To == MustSquare("e2") {
			t.Fatalf("king stepped along the checking file: %v", mv)
		}
		assertKingSafeAfter(t, g, mv)
	}
	// king: d1 d2 f1 f2, rook: e4
	if len(moves) != 5 {
		t.Fatalf("got %d legal moves %v, want 5", len(moves), moves)
	}
}

func TestCheckResolvedByCapture(t *testing.T) {
	g := gameFromFEN(t, "R3r2k/8/8/8/8/8/8/4K3 w - - 0 1", DefaultRules())
	moves := g.LegalMoves(MustSquare("a8"))
	if len(moves) != 1 || moves[0].To != MustSquare("e8") || !moves[0].Capture {
		t.Fatalf("rook should only be able to capture the checker, got %v", moves)
	}
}

func TestPinnedPieceCannotLeaveLine(t *testing.T) {
	// knight on e2 is pinned against the king by the e8 rook
	g := gameFromFEN(t, "4r2k/8/8/8/8/8/4N3/4K3 w - - 0 1", DefaultRules())
	if got := g.LegalMoves(MustSquare("e2")); len(got) != 0 {
		t.Fatalf("pinned knight moved: %v", got)
	}
}

func TestKingCannotStepIntoAttack(t *testing.T) {
	g := gameFromFEN(t, "7k/8/8/8/8/8/3r4/K7 w - - 0 1", DefaultRules())
	for _, mv := range g.LegalMoves(MustSquare("a1")) {
		if mv.To.Row == MustSquare("a2").Row {
			t.Fatalf("king walked onto the attacked rank: %v", mv)
		}
	}
}

func TestLegalMovesDoNotTouchLiveBoard(t *testing.T) {
	g := gameFromFEN(t, "4r2k/8/8/8/R7/8/8/4K3 w - - 0 1", DefaultRules())
	before := g.Save()
	g.AllLegalMoves()
	if g.Save() != before {
		t.Fatalf("legal move generation mutated the game")
	}
}

func assertKingSafeAfter(t *testing.T, g *Game, mv Move) {
	t.Helper()
	c := g.Clone()
	side := c.Turn()
	c.ApplyMove(mv.From, mv.To)
	b := c.Board()
	if b.IsInCheck(side) {
		t.Fatalf("move %v leaves %v in check (%s)", mv, side, c.FEN())
	}
}
