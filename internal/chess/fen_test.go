package chess

import (
	"errors"
	"testing"
)

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1",
		"4r1k1/p4ppp/8/8/8/8/6PP/R6K w - - 0 1",
		"7k/8/5QK1/8/8/8/8/8 b - - 0 1",
	}
	for _, fen := range fens {
		setup, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}
		if got := EncodeFEN(setup); got != fen {
			t.Fatalf("round trip: got %q want %q", got, fen)
		}
	}
}

func TestStartFEN(t *testing.T) {
	g := NewGame(DefaultRules())
	want := "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1"
	if got := g.FEN(); got != want {
		t.Fatalf("FEN: got %q want %q", got, want)
	}
}

func TestParseFENIgnoresCastlingAndEnPassant(t *testing.T) {
	setup, err := ParseFEN("rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 2")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if setup.Turn != White || setup.Board.At(MustSquare("e5")) != MakePiece(Black, Pawn) {
		t.Fatalf("unexpected setup: %s", setup.Board.String())
	}
}

func TestParseFENErrors(t *testing.T) {
	bad := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w - - 0 1",
		"rnbqkbnr/pppppppp/9/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1",
		"rnbqkbnr/ppppxppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x - - 0 1",
	}
	for _, fen := range bad {
		if _, err := ParseFEN(fen); !errors.Is(err, ErrInvalidFEN) {
			t.Fatalf("ParseFEN(%q): got err=%v want ErrInvalidFEN", fen, err)
		}
	}
}

func TestParseSquare(t *testing.T) {
	sq, err := ParseSquare("a8")
	if err != nil || sq != (Square{Row: 0, Col: 0}) {
		t.Fatalf("a8: got %v err=%v", sq, err)
	}
	sq, err = ParseSquare("H1")
	if err != nil || sq != (Square{Row: 7, Col: 7}) {
		t.Fatalf("H1: got %v err=%v", sq, err)
	}
	for _, s := range []string{"", "i1", "a9", "a0", "e22"} {
		if _, err := ParseSquare(s); !errors.Is(err, ErrInvalidSquare) {
			t.Fatalf("ParseSquare(%q): err=%v", s, err)
		}
	}
	if got := MustSquare("e4").String(); got != "e4" {
		t.Fatalf("String: got %q", got)
	}
}
