//go:build !windows

package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chessgame/internal/config"
	"chessgame/internal/server/sshd"
)

func main() {
	cfg := config.Default()
	cfg.BindSSH(flag.CommandLine)
	idle := flag.Duration("idle", sshd.DefaultIdleTimeout, "disconnect idle ssh sessions after this long")
	flag.Parse()

	srv, err := sshd.New(sshd.Config{
		Addr:        cfg.SSHAddr,
		HostKeyPath: cfg.HostKeyPath,
		Binary:      cfg.TermBinary,
		Args:        flag.Args(),
		IdleTimeout: *idle,
		StateDir:    cfg.SSHStateDir,
	})
	if err != nil {
		log.Fatal(err)
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil {
			log.Printf("ssh server stopped: %v", err)
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	<-sigc

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
