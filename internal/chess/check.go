package chess

// IsAttacked reports whether any piece of bySide could move onto sq.
// Attack patterns are the pseudo-legal move patterns; pawns only attack
// diagonally, which genPawnMoves already encodes as captures.
func (b *Board) IsAttacked(sq Square, bySide Color) bool {
	var moves []Move
	for i, pc := range b.Squares {
		if pc == NoPiece || pc.Color() != bySide {
			continue
		}
		moves = moves[:0]
		b.appendPseudoMoves(squareAt(i), &moves)
		for _, mv := range moves {
			if mv.To == sq {
				return true
			}
		}
	}
	return false
}

// IsInCheck reports whether side's king is attacked. A board without that
// king is never in check.
func (b *Board) IsInCheck(side Color) bool {
	kingSq, ok := b.FindKing(side)
	if !ok {
		return false
	}
	return b.IsAttacked(kingSq, side.Opposite())
}
