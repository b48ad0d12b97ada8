//go:build !windows

// Package sshd lets players connect with any ssh client. Each session gets
// its own pty running the terminal client.
package sshd

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/creack/pty"
	"github.com/gliderlabs/ssh"
	gossh "golang.org/x/crypto/ssh"
)

const DefaultIdleTimeout = 5 * time.Minute

var ErrNoBinary = errors.New("sshd: terminal binary not set")

type Config struct {
	Addr        string
	HostKeyPath string // empty or missing file: generate an ephemeral ed25519 key
	Binary      string // terminal client to run per session
	Args        []string
	IdleTimeout time.Duration

	// StateDir holds one directory per ssh user with that user's prefs and
	// log. Empty leaves the client on its own defaults.
	StateDir string
}

type Server struct {
	cfg Config
	srv *ssh.Server
}

func New(cfg Config) (*Server, error) {
	if cfg.Binary == "" {
		return nil, ErrNoBinary
	}
	if cfg.IdleTimeout <= 0 {
		cfg.IdleTimeout = DefaultIdleTimeout
	}
	s := &Server{cfg: cfg}
	s.srv = &ssh.Server{
		Addr:        cfg.Addr,
		IdleTimeout: cfg.IdleTimeout,
		Handler:     s.handle,
		PtyCallback: func(ctx ssh.Context, p ssh.Pty) bool { return true },
	}

	if _, err := os.Stat(cfg.HostKeyPath); cfg.HostKeyPath != "" && err == nil {
		if err := s.srv.SetOption(ssh.HostKeyFile(cfg.HostKeyPath)); err != nil {
			return nil, fmt.Errorf("sshd: host key %s: %w", cfg.HostKeyPath, err)
		}
	} else {
		signer, err := GenerateHostKey()
		if err != nil {
			return nil, err
		}
		log.Printf("[sshd] no host key at %q, using ephemeral %s key", cfg.HostKeyPath, signer.PublicKey().Type())
		s.srv.AddHostKey(signer)
	}
	return s, nil
}

// GenerateHostKey returns a fresh ed25519 signer.
func GenerateHostKey() (gossh.Signer, error) {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("sshd: generate host key: %w", err)
	}
	return gossh.NewSignerFromKey(priv)
}

func (s *Server) ListenAndServe() error {
	log.Printf("[sshd] listening on %s, serving %s", s.cfg.Addr, s.cfg.Binary)
	return s.srv.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

// sessionArgs points the client's prefs and log at user's directory.
func (s *Server) sessionArgs(user string) []string {
	if s.cfg.StateDir == "" {
		return nil
	}
	dir := filepath.Join(s.cfg.StateDir, userDir(user))
	return []string{
		"-prefs", filepath.Join(dir, "prefs.json"),
		"-log", filepath.Join(dir, "chessterm.log"),
	}
}

// userDir maps an ssh user name to a single safe path element.
func userDir(user string) string {
	clean := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_', r == '.':
			return r
		}
		return '_'
	}, user)
	if strings.Trim(clean, ".") == "" {
		return "anonymous"
	}
	return clean
}

func (s *Server) command(ctx context.Context, term, user string) *exec.Cmd {
	args := append(s.sessionArgs(user), s.cfg.Args...)
	cmd := exec.CommandContext(ctx, s.cfg.Binary, args...)
	cmd.Env = append(os.Environ(), "TERM="+term)
	return cmd
}

func (s *Server) handle(sess ssh.Session) {
	ptyReq, winCh, isPty := sess.Pty()
	if !isPty {
		io.WriteString(sess, "non-interactive terminals are not supported\n")
		sess.Exit(1)
		return
	}

	ctx, cancel := context.WithCancel(sess.Context())
	defer cancel()

	cmd := s.command(ctx, ptyReq.Term, sess.User())
	f, err := pty.Start(cmd)
	if err != nil {
		fmt.Fprintf(sess, "failed to initialize pseudo-terminal: %s\n", err)
		sess.Exit(1)
		return
	}
	defer f.Close()
	log.Printf("[sshd] %s@%s connected", sess.User(), sess.RemoteAddr())

	setSize(f, ptyReq.Window)
	go func() {
		for win := range winCh {
			setSize(f, win)
		}
	}()
	go func() {
		io.Copy(f, sess)
	}()
	io.Copy(sess, f)

	cancel()
	cmd.Wait()
	log.Printf("[sshd] %s@%s disconnected", sess.User(), sess.RemoteAddr())
}

func setSize(f *os.File, w ssh.Window) {
	if w.Width <= 0 || w.Height <= 0 {
		return
	}
	pty.Setsize(f, &pty.Winsize{Rows: uint16(w.Height), Cols: uint16(w.Width)})
}
