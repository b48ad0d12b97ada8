package main

import (
	"io"
	"testing"

	"chessgame/internal/chess"
	"chessgame/internal/engine"
)

func TestHardBeatsRandom(t *testing.T) {
	if testing.Short() {
		t.Skip("plays full games")
	}
	e := engine.NewEngine(1)
	hard := PlayerConfig{Name: "hard", Cfg: engine.SearchConfig{Difficulty: engine.Hard}}
	easy := PlayerConfig{Name: "easy", Cfg: engine.SearchConfig{Difficulty: engine.Easy}}

	m := match{e: e, white: hard, black: easy, rules: chess.DefaultRules(), maxPlies: 400, out: io.Discard}
	res, plies := m.play()
	if res == chess.BlackWins {
		t.Fatalf("random mover beat minimax in %d plies", plies)
	}
	t.Logf("result=%v plies=%d", res, plies)
}

func TestMatchStopsAtMaxPlies(t *testing.T) {
	e := engine.NewEngine(2)
	easy := PlayerConfig{Name: "easy", Cfg: engine.SearchConfig{Difficulty: engine.Easy}}
	m := match{e: e, white: easy, black: easy, rules: chess.DefaultRules(), maxPlies: 4, out: io.Discard}
	res, plies := m.play()
	if plies > 4 {
		t.Fatalf("played %d plies, limit 4", plies)
	}
	if res != chess.Draw {
		t.Fatalf("adjudicated result: got=%v want=draw", res)
	}
}
