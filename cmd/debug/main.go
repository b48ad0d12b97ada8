package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/fatih/color"

	"chessgame/internal/chess"
	"chessgame/internal/engine"
	"chessgame/internal/notation"
	"chessgame/internal/ui"
)

func main() {
	fen := flag.String("fen", "", "position to inspect (default: start position)")
	depth := flag.Int("perft", 3, "perft depth, 0 to skip")
	letters := flag.Bool("letters", false, "draw pieces as letters")
	mate := flag.Int("mate", 0, "search a forced mate by checks up to this many plies")
	flag.Parse()

	setup := chess.StandardSetup()
	if *fen != "" {
		s, err := chess.ParseFEN(*fen)
		if err != nil {
			log.Fatalf("bad FEN: %v", err)
		}
		setup = s
	}
	g := chess.NewGame(chess.DefaultRules())
	g.Reset(setup)

	style := ui.Symbols
	if *letters {
		style = ui.Letters
	}
	b := g.Board()
	ui.WriteBoard(os.Stdout, &b, style)

	fmt.Println("FEN:", g.FEN())
	fmt.Printf("Hash: %016x\n", g.Hash())
	st := g.Status()
	fmt.Printf("Turn: %v  Check: %v  Over: %v  Result: %v\n", st.Turn, st.Check, st.Over, st.Result)

	moves := g.AllLegalMoves()
	fmt.Println("Legal moves:", len(moves))
	captures := color.New(color.FgRed)
	for i, mv := range moves {
		text := notation.Describe(g, mv)
		if mv.Capture {
			captures.Printf("%-8s", text)
		} else {
			fmt.Printf("%-8s", text)
		}
		if i%8 == 7 {
			fmt.Println()
		}
	}
	fmt.Println()

	if *mate > 0 {
		res := engine.NewEngine(1).MateSearch(g, *mate)
		if res.Found {
			color.New(color.FgGreen, color.Bold).Printf("Mate in %d plies starting %s (%d nodes)\n",
				res.Plies, notation.Describe(g, res.Move), res.Nodes)
		} else {
			fmt.Printf("No mate by checks within %d plies (%d nodes)\n", *mate, res.Nodes)
		}
	}

	for d := 1; d <= *depth; d++ {
		start := time.Now()
		n := chess.Perft(g, d)
		fmt.Printf("perft(%d) = %d  (%v)\n", d, n, time.Since(start))
	}
}
