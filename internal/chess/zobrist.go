package chess

import "sync"

const zobristPieceTypes = 7 // PieceType [1..6]; 0 is the empty square

var (
	zobristOnce sync.Once

	zobristPieces [2][zobristPieceTypes][NumSquares]uint64
	zobristSide   uint64
)

func initZobrist() {
	zobristOnce.Do(func() {
		// splitmix64 with a fixed seed so hashes are stable across runs
		seed := uint64(0x9E3779B97F4A7C15)
		next := func() uint64 {
			seed += 0x9E3779B97F4A7C15
			z := seed
			z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
			z = (z ^ (z >> 27)) * 0x94D049BB133111EB
			return z ^ (z >> 31)
		}
		for side := 0; side < 2; side++ {
			for pt := 1; pt < zobristPieceTypes; pt++ {
				for sq := 0; sq < NumSquares; sq++ {
					zobristPieces[side][pt][sq] = next()
				}
			}
		}
		zobristSide = next()
	})
}

func pieceHashKey(pc Piece, sq Square) uint64 {
	if pc == NoPiece || !sq.Valid() {
		return 0
	}
	initZobrist()
	pt := int(pc.Type())
	if pt <= 0 || pt >= zobristPieceTypes {
		return 0
	}
	return zobristPieces[pc.Color()][pt][sq.index()]
}

// CalculateHash computes the Zobrist hash of board and side to move from scratch.
func (s *State) CalculateHash() uint64 {
	initZobrist()
	var h uint64
	for i, pc := range s.Board.Squares {
		if pc == NoPiece {
			continue
		}
		h ^= pieceHashKey(pc, squareAt(i))
	}
	if s.Turn == Black {
		h ^= zobristSide
	}
	return h
}
