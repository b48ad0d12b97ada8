package game

import (
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"chessgame/internal/chess"
	"chessgame/internal/engine"
	"chessgame/internal/notation"
)

var (
	ErrNotFound    = errors.New("game not found")
	ErrIllegalMove = errors.New("illegal move")
	ErrGameOver    = errors.New("game is over")
	ErrNotYourTurn = errors.New("not your turn")
)

type Mode int

const (
	PvP Mode = iota // two humans at the same board
	VsAI
)

func (m Mode) String() string {
	if m == VsAI {
		return "ai"
	}
	return "pvp"
}

func ParseMode(s string) (Mode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pvp", "":
		return PvP, true
	case "ai", "pve", "computer":
		return VsAI, true
	default:
		return PvP, false
	}
}

// Options describe who plays. Human is ignored in PvP mode.
type Options struct {
	Mode       Mode
	Human      chess.Color
	Difficulty engine.Difficulty
}

func DefaultOptions() Options {
	return Options{Mode: PvP, Human: chess.White, Difficulty: engine.Easy}
}

// Computer returns the colour played by the engine, or NoColor in PvP.
func (o Options) Computer() chess.Color {
	if o.Mode != VsAI {
		return chess.NoColor
	}
	return o.Human.Opposite()
}

// View is a read-only copy of a session for renderers and the API.
type View struct {
	ID         string
	Name       string
	Options    Options
	Board      chess.Board
	FEN        string
	Status     chess.Status
	Thinking   bool
	LastMove   *chess.Move
	LastSAN    string
	MoveNumber int
	UpdatedAt  time.Time
}

// Session hosts one game. It validates human moves against the legal move
// list and plays the computer side after a short delay.
type Session struct {
	ID        string
	Name      string
	CreatedAt time.Time

	mu        sync.Mutex
	settings  Settings
	opts      Options
	game      *chess.Game
	eng       *engine.Engine
	epoch     uint64
	timer     *time.Timer
	thinking  bool
	lastMove  *chess.Move
	lastSAN   string
	plies     int
	updatedAt time.Time

	listeners map[int]func(View)
	nextSub   int
}

func newSession(id, name string, settings Settings, opts Options, setup chess.Setup, eng *engine.Engine) *Session {
	now := time.Now()
	s := &Session{
		ID:        id,
		Name:      name,
		CreatedAt: now,
		settings:  settings,
		opts:      opts,
		game:      chess.NewGame(settings.Rules),
		eng:       eng,
		updatedAt: now,
		listeners: make(map[int]func(View)),
	}
	s.game.Reset(setup)
	s.mu.Lock()
	s.scheduleAILocked()
	s.mu.Unlock()
	return s
}

func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

func (s *Session) viewLocked() View {
	v := View{
		ID:         s.ID,
		Name:       s.Name,
		Options:    s.opts,
		Board:      s.game.Board(),
		FEN:        s.game.FEN(),
		Status:     s.game.Status(),
		Thinking:   s.thinking,
		LastSAN:    s.lastSAN,
		MoveNumber: s.plies/2 + 1,
		UpdatedAt:  s.updatedAt,
	}
	if s.lastMove != nil {
		mv := *s.lastMove
		v.LastMove = &mv
	}
	return v
}

func (s *Session) LastActive() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updatedAt
}

// LegalMoves lists moves from sq for the side to move. Selecting an empty
// square or an opponent piece yields nothing.
func (s *Session) LegalMoves(sq chess.Square) []chess.Move {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.LegalMoves(sq)
}

// ViewWithMoves returns the view and the legal moves of the same position.
func (s *Session) ViewWithMoves() (View, []chess.Move) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked(), s.game.AllLegalMoves()
}

// Owns reports whether sq holds a piece of the side to move.
func (s *Session) Owns(sq chess.Square) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	pc := s.game.PieceAt(sq)
	return pc != chess.NoPiece && pc.Color() == s.game.Turn()
}

// CanMove reports whether a human may move now.
func (s *Session) CanMove() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.humanTurnLocked() == nil
}

func (s *Session) humanTurnLocked() error {
	if s.game.Over() {
		return ErrGameOver
	}
	if s.opts.Mode == VsAI && (s.game.Turn() != s.opts.Human || s.thinking) {
		return ErrNotYourTurn
	}
	return nil
}

// Play applies a human move. The move must be one of LegalMoves(from).
func (s *Session) Play(from, to chess.Square) (chess.Status, error) {
	s.mu.Lock()
	if err := s.humanTurnLocked(); err != nil {
		st := s.game.Status()
		s.mu.Unlock()
		return st, err
	}
	var found *chess.Move
	for _, mv := range s.game.LegalMoves(from) {
		if mv.To == to {
			found = &mv
			break
		}
	}
	if found == nil {
		st := s.game.Status()
		s.mu.Unlock()
		return st, ErrIllegalMove
	}
	st := s.applyLocked(*found)
	s.scheduleAILocked()
	v, ls := s.viewLocked(), s.listenersLocked()
	s.mu.Unlock()

	notify(ls, v)
	return st, nil
}

func (s *Session) applyLocked(mv chess.Move) chess.Status {
	s.lastSAN = notation.Describe(s.game, mv)
	st := s.game.ApplyMove(mv.From, mv.To)
	s.lastMove = &mv
	s.plies++
	s.updatedAt = time.Now()
	return st
}

// Reset starts a new game with opts from setup. Any pending computer move is
// cancelled.
func (s *Session) Reset(opts Options, setup chess.Setup) {
	s.mu.Lock()
	s.cancelAILocked()
	s.opts = opts
	s.game.Reset(setup)
	s.lastMove = nil
	s.lastSAN = ""
	s.plies = 0
	s.updatedAt = time.Now()
	s.scheduleAILocked()
	v, ls := s.viewLocked(), s.listenersLocked()
	s.mu.Unlock()

	notify(ls, v)
}

// Close cancels any pending computer move.
func (s *Session) Close() {
	s.mu.Lock()
	s.cancelAILocked()
	s.mu.Unlock()
}

// Hint asks the engine for a move for the side to move without playing it.
func (s *Session) Hint() (engine.SearchResult, string) {
	s.mu.Lock()
	d := s.opts.Difficulty
	s.mu.Unlock()
	return s.HintAt(d)
}

// HintAt is Hint with an explicit difficulty.
func (s *Session) HintAt(d engine.Difficulty) (engine.SearchResult, string) {
	s.mu.Lock()
	g := s.game.Clone()
	s.mu.Unlock()

	res := s.eng.ChooseMove(g, s.searchConfig(d))
	if !res.Found {
		return res, ""
	}
	return res, notation.Describe(g, res.Move)
}

func (s *Session) searchConfig(d engine.Difficulty) engine.SearchConfig {
	return engine.SearchConfig{Difficulty: d, MaxDepth: s.settings.Depth}
}

// Subscribe registers fn to be called after every change. The returned func
// removes it.
func (s *Session) Subscribe(fn func(View)) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.listeners[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

func (s *Session) listenersLocked() []func(View) {
	out := make([]func(View), 0, len(s.listeners))
	for _, fn := range s.listeners {
		out = append(out, fn)
	}
	return out
}

func notify(ls []func(View), v View) {
	for _, fn := range ls {
		fn(v)
	}
}

func (s *Session) cancelAILocked() {
	s.epoch++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.thinking = false
}

// scheduleAILocked arms the computer move if it is the computer's turn. The
// task carries the current epoch; a reset in between makes it a no-op.
func (s *Session) scheduleAILocked() {
	if s.opts.Mode != VsAI || s.game.Over() || s.game.Turn() != s.opts.Computer() {
		return
	}
	s.thinking = true
	epoch := s.epoch
	s.timer = time.AfterFunc(s.settings.Delay(s.opts.Difficulty), func() {
		s.runAI(epoch)
	})
}

func (s *Session) runAI(epoch uint64) {
	s.mu.Lock()
	if epoch != s.epoch {
		s.mu.Unlock()
		log.Printf("[game %s] discarding stale computer move (epoch %d, now %d)", s.ID, epoch, s.epoch)
		return
	}
	s.timer = nil
	s.thinking = false
	if s.game.Over() {
		s.mu.Unlock()
		return
	}

	res := s.eng.ChooseMove(s.game, s.searchConfig(s.opts.Difficulty))
	if !res.Found {
		v, ls := s.viewLocked(), s.listenersLocked()
		s.mu.Unlock()
		log.Printf("[game %s] computer has no move", s.ID)
		notify(ls, v)
		return
	}
	s.applyLocked(res.Move)
	log.Printf("[game %s] computer plays %s (%s) score=%d nodes=%d time=%s",
		s.ID, s.lastSAN, s.opts.Difficulty, res.Score, res.Nodes, res.TimeUsed)
	v, ls := s.viewLocked(), s.listenersLocked()
	s.mu.Unlock()

	notify(ls, v)
}
