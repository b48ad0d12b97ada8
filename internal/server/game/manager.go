package game

import (
	"context"
	"log"
	"sync"
	"time"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/google/uuid"

	"chessgame/internal/chess"
	"chessgame/internal/engine"
)

// Settings are shared by every session of a Manager.
type Settings struct {
	Rules chess.Rules
	Depth int // minimax depth; 0 uses engine.DefaultDepth

	EasyDelay   time.Duration
	MediumDelay time.Duration
	HardDelay   time.Duration

	// Seed for the engines' random source. 0 seeds from the clock.
	Seed int64
}

func DefaultSettings() Settings {
	return Settings{
		Rules:       chess.DefaultRules(),
		Depth:       engine.DefaultDepth,
		EasyDelay:   400 * time.Millisecond,
		MediumDelay: 400 * time.Millisecond,
		HardDelay:   600 * time.Millisecond,
	}
}

// Delay is how long the computer waits before moving, so the human's move
// is drawn first.
func (s Settings) Delay(d engine.Difficulty) time.Duration {
	switch d {
	case engine.Hard:
		return s.HardDelay
	case engine.Medium:
		return s.MediumDelay
	default:
		return s.EasyDelay
	}
}

type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	settings Settings
	seeds    int64
}

func NewManager(settings Settings) *Manager {
	seed := settings.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Manager{
		sessions: make(map[string]*Session),
		settings: settings,
		seeds:    seed,
	}
}

func (m *Manager) Settings() Settings { return m.settings }

// NewGame starts a session from the standard position.
func (m *Manager) NewGame(opts Options) *Session {
	return m.NewGameFrom(opts, chess.StandardSetup())
}

func (m *Manager) NewGameFrom(opts Options, setup chess.Setup) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := uuid.NewString()
	m.seeds++
	s := newSession(id, petname.Generate(2, "-"), m.settings, opts, setup, engine.NewEngine(m.seeds))
	m.sessions[id] = s
	return s
}

func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}

func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	s, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()
	if !ok {
		return ErrNotFound
	}
	s.Close()
	return nil
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// CleanIdle removes sessions untouched since before now-ttl and returns how
// many were dropped.
func (m *Manager) CleanIdle(now time.Time, ttl time.Duration) int {
	m.mu.Lock()
	var stale []*Session
	for id, s := range m.sessions {
		if now.Sub(s.LastActive()) > ttl {
			stale = append(stale, s)
			delete(m.sessions, id)
		}
	}
	m.mu.Unlock()

	for _, s := range stale {
		s.Close()
	}
	return len(stale)
}

// RunJanitor calls CleanIdle every interval until ctx is done.
func (m *Manager) RunJanitor(ctx context.Context, ttl, interval time.Duration) {
	if ttl <= 0 || interval <= 0 {
		return
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			if n := m.CleanIdle(now, ttl); n > 0 {
				log.Printf("[manager] dropped %d idle games", n)
			}
		}
	}
}
