// Package config holds the settings shared by the commands. Each command
// binds the subset it needs onto its own flag set.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"chessgame/internal/chess"
	"chessgame/internal/server/game"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	HTTPAddr     string
	WebDir       string
	MobileWebDir string
	OpenBrowser  bool

	SSHAddr     string
	HostKeyPath string
	TermBinary  string
	SSHStateDir string // per-user prefs and logs of ssh players

	LogPath   string
	PrefsPath string

	Depth         int
	EasyDelay     time.Duration
	MediumDelay   time.Duration
	HardDelay     time.Duration
	StalemateDraw bool
	IdleTTL       time.Duration
}

func Default() Config {
	return Config{
		HTTPAddr:      ":2888",
		WebDir:        "./web",
		SSHAddr:       ":2222",
		TermBinary:    "chessterm",
		SSHStateDir:   filepath.Join(os.TempDir(), "chess-ssh"),
		LogPath:       filepath.Join(os.TempDir(), "chessterm.log"),
		PrefsPath:     defaultPrefsPath(),
		Depth:         2,
		EasyDelay:     400 * time.Millisecond,
		MediumDelay:   400 * time.Millisecond,
		HardDelay:     600 * time.Millisecond,
		StalemateDraw: true,
		IdleTTL:       2 * time.Hour,
	}
}

func defaultPrefsPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "chess-prefs.json"
	}
	return filepath.Join(dir, "chessgame", "prefs.json")
}

// BindGame registers the rules and engine flags.
func (c *Config) BindGame(fs *flag.FlagSet) {
	fs.IntVar(&c.Depth, "depth", c.Depth, "minimax search depth in plies (hard)")
	fs.DurationVar(&c.EasyDelay, "delay-easy", c.EasyDelay, "computer move delay at easy")
	fs.DurationVar(&c.MediumDelay, "delay-medium", c.MediumDelay, "computer move delay at medium")
	fs.DurationVar(&c.HardDelay, "delay-hard", c.HardDelay, "computer move delay at hard")
	fs.BoolVar(&c.StalemateDraw, "stalemate-draw", c.StalemateDraw, "end the game as a draw when the side to move has no legal move")
}

// BindHTTP registers the local web server flags.
func (c *Config) BindHTTP(fs *flag.FlagSet) {
	fs.StringVar(&c.HTTPAddr, "addr", c.HTTPAddr, "listen address")
	fs.StringVar(&c.WebDir, "web", c.WebDir, "directory with index.html / js / css")
	fs.StringVar(&c.MobileWebDir, "web-mobile", c.MobileWebDir, "directory with mobile assets (defaults to -web)")
	fs.BoolVar(&c.OpenBrowser, "open", c.OpenBrowser, "open the default browser after start")
	fs.DurationVar(&c.IdleTTL, "idle-ttl", c.IdleTTL, "drop games idle for longer than this (0 keeps them)")
}

// BindSSH registers the ssh front door flags.
func (c *Config) BindSSH(fs *flag.FlagSet) {
	fs.StringVar(&c.SSHAddr, "ssh-addr", c.SSHAddr, "ssh listen address")
	fs.StringVar(&c.HostKeyPath, "host-key", c.HostKeyPath, "ssh host key file (generated when missing)")
	fs.StringVar(&c.TermBinary, "term-binary", c.TermBinary, "terminal client started for every ssh session")
	fs.StringVar(&c.SSHStateDir, "state-dir", c.SSHStateDir, "directory for each ssh user's prefs and log (empty: shared defaults)")
}

// BindTerm registers the terminal client flags.
func (c *Config) BindTerm(fs *flag.FlagSet) {
	fs.StringVar(&c.LogPath, "log", c.LogPath, "log file")
	c.BindPrefs(fs)
}

// BindPrefs registers the preferences file flag alone, for hosts that keep
// prefs but log elsewhere.
func (c *Config) BindPrefs(fs *flag.FlagSet) {
	fs.StringVar(&c.PrefsPath, "prefs", c.PrefsPath, "preferences file")
}

// Bind registers every flag.
func (c *Config) Bind(fs *flag.FlagSet) {
	c.BindGame(fs)
	c.BindHTTP(fs)
	c.BindSSH(fs)
	c.BindTerm(fs)
}

func (c Config) Validate() error {
	if c.Depth < 1 || c.Depth > 6 {
		return fmt.Errorf("%w: depth %d out of range 1..6", ErrInvalidConfig, c.Depth)
	}
	for name, d := range map[string]time.Duration{"delay-easy": c.EasyDelay, "delay-medium": c.MediumDelay, "delay-hard": c.HardDelay, "idle-ttl": c.IdleTTL} {
		if d < 0 {
			return fmt.Errorf("%w: %s must not be negative", ErrInvalidConfig, name)
		}
	}
	return nil
}

// GameSettings converts the config into settings for a game.Manager.
func (c Config) GameSettings() game.Settings {
	return game.Settings{
		Rules:       chess.Rules{StalemateDraw: c.StalemateDraw},
		Depth:       c.Depth,
		EasyDelay:   c.EasyDelay,
		MediumDelay: c.MediumDelay,
		HardDelay:   c.HardDelay,
	}
}
