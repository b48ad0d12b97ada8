package engine

import "chessgame/internal/chess"

// Piece values in centipawns. The king is not scored; mates are handled by
// the search.
var pieceValue = [...]int{
	chess.PieceNone: 0,
	chess.Pawn:      100,
	chess.Knight:    300,
	chess.Bishop:    300,
	chess.Rook:      500,
	chess.Queen:     900,
	chess.King:      0,
}

// Evaluate scores b from White's point of view: material plus a small bonus
// for every piece standing near the centre. No mobility, no piece-square tables.
func Evaluate(b *chess.Board) int {
	score := 0
	for i, pc := range b.Squares {
		if pc == chess.NoPiece {
			continue
		}
		val := pieceValue[pc.Type()] + centerBonus(i/chess.Cols, i%chess.Cols)
		if pc.Color() == chess.White {
			score += val
		} else {
			score -= val
		}
	}
	return score
}

// centerBonus is 10 * ((3 - |row-3.5|) + (3 - |col-3.5|)), kept in integers.
func centerBonus(row, col int) int {
	return (30 - 5*abs(2*row-7)) + (30 - 5*abs(2*col-7))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
