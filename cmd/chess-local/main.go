package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"chessgame/internal/config"
	"chessgame/internal/server/game"
	httpserver "chessgame/internal/server/http"
)

func openBrowser(url string) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default: // linux / bsd
		cmd = exec.Command("xdg-open", url)
	}

	_ = cmd.Start() // headless machines have no browser
}

func main() {
	cfg := config.Default()
	cfg.OpenBrowser = true
	cfg.BindHTTP(flag.CommandLine)
	cfg.BindGame(flag.CommandLine)
	cfg.BindPrefs(flag.CommandLine)
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	games := game.NewManager(cfg.GameSettings())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go games.RunJanitor(ctx, cfg.IdleTTL, time.Minute)

	mux := httpserver.NewMux(games, cfg.WebDir, cfg.MobileWebDir, cfg.PrefsPath)
	log.Printf("listening on %s, serving static from %s", cfg.HTTPAddr, cfg.WebDir)

	if cfg.OpenBrowser {
		// give the listener a moment to come up
		go func() {
			time.Sleep(100 * time.Millisecond)
			host := cfg.HTTPAddr
			if strings.HasPrefix(host, ":") {
				host = "127.0.0.1" + host
			}
			openBrowser("http://" + host)
		}()
	}

	if err := http.ListenAndServe(cfg.HTTPAddr, mux); err != nil {
		log.Fatal(err)
	}
}
