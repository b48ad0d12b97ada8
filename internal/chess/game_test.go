package chess

import "testing"

func TestFoolsMate(t *testing.T) {
	g := NewGame(DefaultRules())
	play(t, g, "f2f3", "e7e5", "g2g4", "d8h4")
	st := g.Status()
	if !st.Over {
		t.Fatalf("expected game over after fool's mate, status=%+v", st)
	}
	if st.Result != BlackWins || st.Result.Winner() != Black {
		t.Fatalf("result: got %v want black_wins", st.Result)
	}
	if st.Check != White {
		t.Fatalf("check: got %v want white", st.Check)
	}
	if moves := g.AllLegalMoves(); len(moves) != 0 {
		t.Fatalf("mated side still has moves: %v", moves)
	}
}

func TestBackRankMate(t *testing.T) {
	g := gameFromFEN(t, "4r1k1/p4ppp/8/8/8/8/6PP/R6K w - - 0 1", DefaultRules())
	play(t, g, "a1a7")
	if g.Over() {
		t.Fatalf("game over too early")
	}
	st := g.ApplyMove(MustSquare("e8"), MustSquare("e1"))
	if !st.Over || st.Result != BlackWins {
		t.Fatalf("expected back-rank mate, got %+v", st)
	}
}

func TestStalemate(t *testing.T) {
	const fen = "7k/8/5QK1/8/8/8/8/8 w - - 0 1"

	t.Run("draw", func(t *testing.T) {
		g := gameFromFEN(t, fen, DefaultRules())
		st := g.ApplyMove(MustSquare("f6"), MustSquare("f7"))
		if !st.Over || st.Result != Draw {
			t.Fatalf("expected stalemate draw, got %+v", st)
		}
		if st.Check != NoColor {
			t.Fatalf("stalemate reported check for %v", st.Check)
		}
	})

	t.Run("not terminal without the rule", func(t *testing.T) {
		g := gameFromFEN(t, fen, Rules{StalemateDraw: false})
		st := g.ApplyMove(MustSquare("f6"), MustSquare("f7"))
		if st.Over {
			t.Fatalf("stalemate ended the game with StalemateDraw=false: %+v", st)
		}
		if len(g.AllLegalMoves()) != 0 {
			t.Fatalf("black should have no legal moves")
		}
	})
}

func TestPromotionAlwaysQueen(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		move string
		want Piece
	}{
		{"white push", "8/P6k/8/8/8/8/8/K7 w - - 0 1", "a7a8", MakePiece(White, Queen)},
		{"white capture", "1n5k/P7/8/8/8/8/8/K7 w - - 0 1", "a7b8", MakePiece(White, Queen)},
		{"black push", "k7/8/8/8/8/8/p6K/8 b - - 0 1", "a2a1", MakePiece(Black, Queen)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 3; i++ {
				g := gameFromFEN(t, tt.fen, DefaultRules())
				play(t, g, tt.move)
				if got := g.PieceAt(MustSquare(tt.move[2:])); got != tt.want {
					t.Fatalf("game %d: promoted piece %c, want %c", i, got.Letter(), tt.want.Letter())
				}
				if got := g.PieceAt(MustSquare(tt.move[:2])); got != NoPiece {
					t.Fatalf("origin square not emptied: %c", got.Letter())
				}
			}
		})
	}
}

func TestPromotionGivesCheck(t *testing.T) {
	g := gameFromFEN(t, "7k/P7/8/8/8/8/8/K7 w - - 0 1", DefaultRules())
	st := g.ApplyMove(MustSquare("a7"), MustSquare("a8"))
	if st.Check != Black {
		t.Fatalf("new queen on a8 should check h8, got check=%v", st.Check)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	g := NewGame(DefaultRules())
	play(t, g, "e2e4", "e7e5", "g1f3")
	saved := g.Save()
	want := saved.State()

	play(t, g, "b8c6", "f1b5", "a7a6", "b5c6")
	if g.Save() == saved {
		t.Fatalf("state did not change after further moves")
	}
	if saved.State() != want {
		t.Fatalf("snapshot changed after later moves")
	}

	g.Restore(saved)
	got := g.State()
	if got != want {
		t.Fatalf("restore mismatch:\n got=%+v\nwant=%+v", got, want)
	}
	if g.Turn() != Black || g.Check() != NoColor || g.Over() {
		t.Fatalf("restored flags wrong: %+v", g.Status())
	}
	if g.Save() != saved {
		t.Fatalf("restore(save()) is not identical")
	}
}

func TestResetRecomputesStatus(t *testing.T) {
	g := NewGame(DefaultRules())
	play(t, g, "e2e4")
	g.Reset(StandardSetup())
	if g.Turn() != White || g.Over() || g.Check() != NoColor {
		t.Fatalf("reset state wrong: %+v", g.Status())
	}
	if g.Hash() != NewGame(DefaultRules()).Hash() {
		t.Fatalf("reset hash differs from a fresh game")
	}

	// position where white is already mated
	setup, err := ParseFEN("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	g.Reset(setup)
	if !g.Over() || g.Result() != BlackWins {
		t.Fatalf("mated setup not detected: %+v", g.Status())
	}
}

func TestApplyMoveFromEmptySquareIsNoop(t *testing.T) {
	g := NewGame(DefaultRules())
	before := g.Save()
	g.ApplyMove(MustSquare("e4"), MustSquare("e5"))
	if g.Save() != before {
		t.Fatalf("moving from an empty square changed the game")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g := NewGame(DefaultRules())
	c := g.Clone()
	play(t, c, "e2e4")
	if g.PieceAt(MustSquare("e4")) != NoPiece || g.Turn() != White {
		t.Fatalf("clone shares state with original")
	}
}
