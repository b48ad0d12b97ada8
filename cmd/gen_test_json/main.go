// gen_test_json writes legal move fixtures from random games, for checking
// other clients of the JSON API against the Go rules.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"sort"
	"time"

	"chessgame/internal/chess"
	"chessgame/internal/notation"
)

type TestCase struct {
	FEN    string   `json:"fen"`
	Turn   string   `json:"turn"`
	Check  string   `json:"check"`
	Over   bool     `json:"over"`
	Result string   `json:"result"`
	Moves  []string `json:"moves"` // sorted UCI
}

func snapshot(g *chess.Game) TestCase {
	st := g.Status()
	tc := TestCase{
		FEN:    g.FEN(),
		Turn:   st.Turn.String(),
		Check:  st.Check.String(),
		Over:   st.Over,
		Result: st.Result.String(),
		Moves:  []string{},
	}
	for _, mv := range g.AllLegalMoves() {
		tc.Moves = append(tc.Moves, notation.UCI(mv))
	}
	sort.Strings(tc.Moves)
	return tc
}

// randomGame plays random legal moves and records every position.
func randomGame(rng *rand.Rand, maxPlies int) []TestCase {
	g := chess.NewGame(chess.DefaultRules())
	cases := []TestCase{snapshot(g)}
	for i := 0; i < maxPlies && !g.Over(); i++ {
		moves := g.AllLegalMoves()
		if len(moves) == 0 {
			break
		}
		mv := moves[rng.Intn(len(moves))]
		g.ApplyMove(mv.From, mv.To)
		cases = append(cases, snapshot(g))
	}
	return cases
}

func main() {
	games := flag.Int("games", 5, "number of random games")
	plies := flag.Int("plies", 120, "max plies per game")
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed")
	out := flag.String("o", "test_data.json", "output file")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))
	var cases []TestCase
	for i := 0; i < *games; i++ {
		cases = append(cases, randomGame(rng, *plies)...)
	}

	data, err := json.MarshalIndent(cases, "", "  ")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("wrote %d positions to %s (seed %d)\n", len(cases), *out, *seed)
}
