package chess

var (
	rookDirs   = [4][2]int{{-1, 0}, {+1, 0}, {0, -1}, {0, +1}}
	bishopDirs = [4][2]int{{-1, -1}, {-1, +1}, {+1, -1}, {+1, +1}}
	queenDirs  = [8][2]int{{-1, 0}, {+1, 0}, {0, -1}, {0, +1}, {-1, -1}, {-1, +1}, {+1, -1}, {+1, +1}}

	knightJumps = [8][2]int{{-2, -1}, {-2, +1}, {-1, -2}, {-1, +2}, {+1, -2}, {+1, +2}, {+2, -1}, {+2, +1}}
	kingSteps   = queenDirs
)

// PseudoLegalMoves lists every destination reachable by the piece on from,
// ignoring whether the mover's own king is left attacked. Empty squares yield nothing.
func (b *Board) PseudoLegalMoves(from Square) []Move {
	var moves []Move
	b.appendPseudoMoves(from, &moves)
	return moves
}

func (b *Board) appendPseudoMoves(from Square, moves *[]Move) {
	pc := b.At(from)
	if pc == NoPiece {
		return
	}
	switch pc.Type() {
	case Queen:
		genSlidingMoves(b, from, queenDirs[:], moves)
	case Rook:
		genSlidingMoves(b, from, rookDirs[:], moves)
	case Bishop:
		genSlidingMoves(b, from, bishopDirs[:], moves)
	case Knight:
		genStepMoves(b, from, knightJumps[:], moves)
	case King:
		genStepMoves(b, from, kingSteps[:], moves)
	case Pawn:
		genPawnMoves(b, from, moves)
	}
}

// Sliders walk each ray until the edge or the first occupied square,
// which is kept only when it holds an enemy piece.
func genSlidingMoves(b *Board, from Square, dirs [][2]int, moves *[]Move) {
	side := b.At(from).Color()
	for _, d := range dirs {
		r, c := from.Row+d[0], from.Col+d[1]
		for onBoard(r, c) {
			to := Square{Row: r, Col: c}
			dst := b.At(to)
			if dst == NoPiece {
				*moves = append(*moves, Move{From: from, To: to})
			} else {
				if dst.Color() != side {
					*moves = append(*moves, Move{From: from, To: to, Capture: true})
				}
				break
			}
			r += d[0]
			c += d[1]
		}
	}
}

// Knight and king: each offset is checked on its own.
func genStepMoves(b *Board, from Square, offsets [][2]int, moves *[]Move) {
	side := b.At(from).Color()
	for _, d := range offsets {
		r, c := from.Row+d[0], from.Col+d[1]
		if !onBoard(r, c) {
			continue
		}
		to := Square{Row: r, Col: c}
		dst := b.At(to)
		if dst == NoPiece {
			*moves = append(*moves, Move{From: from, To: to})
		} else if dst.Color() != side {
			*moves = append(*moves, Move{From: from, To: to, Capture: true})
		}
	}
}

// Pawns push one square, two from the start row when both squares are empty,
// and capture diagonally forward. No en passant.
func genPawnMoves(b *Board, from Square, moves *[]Move) {
	side := b.At(from).Color()
	dir := pawnDir(side)

	r1 := from.Row + dir
	if !onBoard(r1, from.Col) {
		return
	}
	one := Square{Row: r1, Col: from.Col}
	if b.At(one) == NoPiece {
		*moves = append(*moves, Move{From: from, To: one})
		if from.Row == pawnStartRow(side) {
			two := Square{Row: from.Row + 2*dir, Col: from.Col}
			if b.At(two) == NoPiece {
				*moves = append(*moves, Move{From: from, To: two})
			}
		}
	}

	for _, dc := range [2]int{-1, +1} {
		c := from.Col + dc
		if !onBoard(r1, c) {
			continue
		}
		to := Square{Row: r1, Col: c}
		dst := b.At(to)
		if dst != NoPiece && dst.Color() != side {
			*moves = append(*moves, Move{From: from, To: to, Capture: true})
		}
	}
}
