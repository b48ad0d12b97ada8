package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"golang.org/x/term"

	"chessgame/internal/applog"
	"chessgame/internal/config"
	"chessgame/internal/server/game"
	"chessgame/internal/ui"
	"chessgame/internal/ui/tui"
)

func main() {
	cfg := config.Default()
	cfg.BindTerm(flag.CommandLine)
	cfg.BindGame(flag.CommandLine)
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "chessterm needs an interactive terminal")
		os.Exit(1)
	}

	f, err := applog.InitLog(cfg.LogPath, "CLIENT: ")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer f.Close()

	prefs, err := ui.LoadPrefs(cfg.PrefsPath)
	if err != nil {
		log.Printf("using default prefs: %v", err)
	}

	log.Println("New client")
	app := tui.New(game.NewManager(cfg.GameSettings()), prefs, cfg.PrefsPath)
	if err := app.Run(); err != nil {
		log.Fatal(err)
	}
}
