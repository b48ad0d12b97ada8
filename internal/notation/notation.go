// Package notation renders moves for display. SAN is produced by
// github.com/notnil/chess from the position before the move.
package notation

import (
	"errors"

	nchess "github.com/notnil/chess"

	"chessgame/internal/chess"
)

var ErrNoSuchMove = errors.New("move not found in position")

// UCI returns coordinate notation, e.g. "e2e4". Promotions carry no suffix
// because pawns always promote to a queen.
func UCI(m chess.Move) string {
	return m.From.String() + m.To.String()
}

func toSquare(sq chess.Square) nchess.Square {
	return nchess.Square((chess.Rows-1-sq.Row)*chess.Cols + sq.Col)
}

// SAN returns standard algebraic notation for m played from fen.
func SAN(fen string, m chess.Move) (string, error) {
	opt, err := nchess.FEN(fen)
	if err != nil {
		return "", err
	}
	g := nchess.NewGame(opt)
	pos := g.Position()
	from, to := toSquare(m.From), toSquare(m.To)
	for _, mv := range g.ValidMoves() {
		if mv.S1() != from || mv.S2() != to {
			continue
		}
		if mv.Promo() != nchess.NoPieceType && mv.Promo() != nchess.Queen {
			continue
		}
		return nchess.AlgebraicNotation{}.Encode(pos, mv), nil
	}
	return "", ErrNoSuchMove
}

// Describe is SAN with a UCI fallback, for logs and move lists.
func Describe(g *chess.Game, m chess.Move) string {
	if s, err := SAN(g.FEN(), m); err == nil {
		return s
	}
	return UCI(m)
}
