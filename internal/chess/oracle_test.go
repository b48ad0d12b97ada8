package chess

import (
	"math/rand"
	"testing"

	"github.com/dylhunn/dragontoothmg"
)

// countOracleMoves counts dragontoothmg's legal moves, folding the four
// promotion choices of a pawn move into one since promotion here is queen only.
func countOracleMoves(fen string) int {
	b := dragontoothmg.ParseFen(fen)
	seen := make(map[[2]uint8]bool)
	for _, mv := range b.GenerateLegalMoves() {
		seen[[2]uint8{mv.From(), mv.To()}] = true
	}
	return len(seen)
}

func TestLegalMovesMatchOracleOnRandomPlayouts(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	games := 20
	if testing.Short() {
		games = 5
	}
	positions := 0
	for game := 0; game < games; game++ {
		g := NewGame(DefaultRules())
		for ply := 0; ply < 100 && !g.Over(); ply++ {
			moves := g.AllLegalMoves()
			fen := g.FEN()
			if want := countOracleMoves(fen); len(moves) != want {
				t.Fatalf("game %d ply %d %s: got %d legal moves, oracle %d", game, ply, fen, len(moves), want)
			}
			for _, mv := range moves {
				assertKingSafeAfter(t, g, mv)
			}
			positions++
			if len(moves) == 0 {
				break
			}
			mv := moves[rng.Intn(len(moves))]
			g.ApplyMove(mv.From, mv.To)
		}
	}
	t.Logf("checked %d positions", positions)
}
