package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/fatih/color"

	"chessgame/internal/chess"
	"chessgame/internal/engine"
	"chessgame/internal/ui"
)

type PlayerConfig struct {
	Name string
	Cfg  engine.SearchConfig
}

func player(name string, depth int) PlayerConfig {
	d, err := engine.ParseDifficulty(name)
	if err != nil {
		log.Fatalf("player %q: %v", name, err)
	}
	p := PlayerConfig{Name: d.String(), Cfg: engine.SearchConfig{Difficulty: d, MaxDepth: depth}}
	if d == engine.Hard {
		p.Name = fmt.Sprintf("hard (depth %d)", depth)
	}
	return p
}

var (
	winColor  = color.New(color.FgGreen, color.Bold)
	drawColor = color.New(color.FgYellow)
	headColor = color.New(color.FgCyan, color.Bold)
)

func main() {
	first := flag.String("a", "hard", "first player difficulty")
	second := flag.String("b", "medium", "second player difficulty")
	totalGames := flag.Int("games", 10, "number of games to play; colours alternate")
	depth := flag.Int("depth", engine.DefaultDepth, "minimax depth for hard")
	maxPlies := flag.Int("maxplies", 300, "adjudicate a draw after this many plies")
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed")
	watch := flag.Bool("watch", false, "print every move and the board")
	stalemateDraw := flag.Bool("stalemate-draw", true, "stalemate ends the game as a draw")
	flag.Parse()

	a, b := player(*first, *depth), player(*second, *depth)
	e := engine.NewEngine(*seed)
	rules := chess.Rules{StalemateDraw: *stalemateDraw}

	aWins, bWins, draws := 0, 0, 0
	for g := 0; g < *totalGames; g++ {
		white, black := a, b
		if g%2 == 1 {
			white, black = b, a
		}

		headColor.Printf("\n=== Game %d: White [%s] vs Black [%s] ===\n", g+1, white.Name, black.Name)
		m := match{e: e, white: white, black: black, rules: rules, maxPlies: *maxPlies, watch: *watch, out: os.Stdout}
		res, plies := m.play()

		aIsWhite := g%2 == 0
		switch w := res.Winner(); {
		case w == chess.NoColor:
			draws++
			drawColor.Printf("Result: Draw after %d plies\n", plies)
		case (w == chess.White) == aIsWhite:
			aWins++
			winColor.Printf("Result: %s wins in %d plies\n", a.Name, plies)
		default:
			bWins++
			winColor.Printf("Result: %s wins in %d plies\n", b.Name, plies)
		}
	}

	headColor.Printf("\n=== Final Score ===\n")
	fmt.Printf("%s: %d\n", a.Name, aWins)
	fmt.Printf("%s: %d\n", b.Name, bWins)
	fmt.Printf("Draws: %d\n", draws)
}

// printBoard is used in -watch mode.
func printBoard(out io.Writer, g *chess.Game) {
	b := g.Board()
	var hl []chess.Square
	if g.Check() != chess.NoColor {
		if sq, ok := b.FindKing(g.Check()); ok {
			hl = append(hl, sq)
		}
	}
	ui.WriteBoard(out, &b, ui.Symbols, hl...)
}
