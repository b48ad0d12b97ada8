package chess

// undo restores the two squares touched by apply.
type undo struct {
	b        *Board
	from, to Square
	moved    Piece
	captured Piece
}

func (u undo) revert() {
	u.b.Set(u.from, u.moved)
	u.b.Set(u.to, u.captured)
}

// apply moves the piece, promoting a pawn that reaches the last rank to a
// queen, and returns the token that takes the move back.
func (b *Board) apply(m Move) undo {
	moved := b.At(m.From)
	u := undo{b: b, from: m.From, to: m.To, moved: moved, captured: b.At(m.To)}
	placed := moved
	if moved.Type() == Pawn && m.To.Row == promotionRow(moved.Color()) {
		placed = MakePiece(moved.Color(), Queen)
	}
	b.Set(m.To, placed)
	b.Set(m.From, NoPiece)
	return u
}

// leavesKingSafe plays m, asks the check oracle about the mover's king and
// takes the move back before returning.
func (b *Board) leavesKingSafe(m Move) bool {
	side := b.At(m.From).Color()
	u := b.apply(m)
	defer u.revert()
	return !b.IsInCheck(side)
}

// legalMovesFrom filters the pseudo-legal moves of the piece on from
// through a scratch copy of the board.
func legalMovesFrom(b *Board, from Square, moves *[]Move) {
	var pseudo []Move
	b.appendPseudoMoves(from, &pseudo)
	if len(pseudo) == 0 {
		return
	}
	scratch := *b
	for _, mv := range pseudo {
		if scratch.leavesKingSafe(mv) {
			*moves = append(*moves, mv)
		}
	}
}

// LegalMoves returns the legal moves of the piece on sq. Off-board squares,
// empty squares and pieces of the side not to move yield nothing.
func (g *Game) LegalMoves(sq Square) []Move {
	if !sq.Valid() {
		return nil
	}
	pc := g.state.Board.At(sq)
	if pc == NoPiece || pc.Color() != g.state.Turn {
		return nil
	}
	var moves []Move
	legalMovesFrom(&g.state.Board, sq, &moves)
	return moves
}

// AllLegalMoves lists the legal moves of every piece of the side to move,
// scanning the board row by row.
func (g *Game) AllLegalMoves() []Move {
	var moves []Move
	for i, pc := range g.state.Board.Squares {
		if pc == NoPiece || pc.Color() != g.state.Turn {
			continue
		}
		legalMovesFrom(&g.state.Board, squareAt(i), &moves)
	}
	return moves
}

func hasLegalMove(b *Board, side Color) bool {
	var moves []Move
	for i, pc := range b.Squares {
		if pc == NoPiece || pc.Color() != side {
			continue
		}
		legalMovesFrom(b, squareAt(i), &moves)
		if len(moves) > 0 {
			return true
		}
	}
	return false
}
