package game

import (
	"context"
	"errors"
	"testing"
	"time"

	"chessgame/internal/chess"
	"chessgame/internal/engine"
)

func testSettings(delay time.Duration) Settings {
	s := DefaultSettings()
	s.EasyDelay, s.MediumDelay, s.HardDelay = delay, delay, delay
	s.Seed = 1
	return s
}

func sq(s string) chess.Square { return chess.MustSquare(s) }

func waitFor(t *testing.T, ch <-chan View, cond func(View) bool) View {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for {
		select {
		case v := <-ch:
			if cond(v) {
				return v
			}
		case <-deadline:
			t.Fatalf("timed out waiting for session update")
		}
	}
}

func subscribe(s *Session) (<-chan View, func()) {
	ch := make(chan View, 16)
	cancel := s.Subscribe(func(v View) {
		select {
		case ch <- v:
		default:
		}
	})
	return ch, cancel
}

func TestManagerNewGetDelete(t *testing.T) {
	m := NewManager(testSettings(0))
	s := m.NewGame(DefaultOptions())
	if s.ID == "" || s.Name == "" {
		t.Fatalf("session missing id or name: %+v", s)
	}
	got, err := m.Get(s.ID)
	if err != nil || got != s {
		t.Fatalf("Get: got=%v err=%v", got, err)
	}
	if _, err := m.Get("nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get unknown: err=%v want ErrNotFound", err)
	}
	if err := m.Delete(s.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := m.Delete(s.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second Delete: err=%v", err)
	}
	if m.Len() != 0 {
		t.Fatalf("Len: got=%d want=0", m.Len())
	}
}

func TestManagerIDsAreUnique(t *testing.T) {
	m := NewManager(testSettings(0))
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		s := m.NewGame(DefaultOptions())
		if seen[s.ID] {
			t.Fatalf("duplicate id %s", s.ID)
		}
		seen[s.ID] = true
	}
}

func TestCleanIdle(t *testing.T) {
	m := NewManager(testSettings(0))
	old := m.NewGame(DefaultOptions())
	m.NewGame(DefaultOptions())

	if n := m.CleanIdle(time.Now(), time.Hour); n != 0 {
		t.Fatalf("fresh sessions dropped: %d", n)
	}
	old.mu.Lock()
	old.updatedAt = time.Now().Add(-2 * time.Hour)
	old.mu.Unlock()

	if n := m.CleanIdle(time.Now(), time.Hour); n != 1 {
		t.Fatalf("CleanIdle: got=%d want=1", n)
	}
	if _, err := m.Get(old.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("idle session still present")
	}
}

func TestRunJanitorStopsWithContext(t *testing.T) {
	m := NewManager(testSettings(0))
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		m.RunJanitor(ctx, time.Hour, time.Millisecond)
		close(done)
	}()
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("janitor did not stop")
	}
}

func TestPlayValidatesAgainstLegalMoves(t *testing.T) {
	s := NewManager(testSettings(0)).NewGame(DefaultOptions())

	if _, err := s.Play(sq("e2"), sq("e5")); !errors.Is(err, ErrIllegalMove) {
		t.Fatalf("e2e5: err=%v want ErrIllegalMove", err)
	}
	if _, err := s.Play(sq("e7"), sq("e5")); !errors.Is(err, ErrIllegalMove) {
		t.Fatalf("black piece on white's turn: err=%v", err)
	}
	if _, err := s.Play(sq("e4"), sq("e5")); !errors.Is(err, ErrIllegalMove) {
		t.Fatalf("empty square: err=%v", err)
	}
	st, err := s.Play(sq("e2"), sq("e4"))
	if err != nil {
		t.Fatalf("e2e4: %v", err)
	}
	if st.Turn != chess.Black {
		t.Fatalf("turn after e2e4: got=%v want=black", st.Turn)
	}
	v := s.View()
	if v.LastMove == nil || v.LastMove.To != sq("e4") || v.LastSAN != "e4" {
		t.Fatalf("last move not recorded: %+v %q", v.LastMove, v.LastSAN)
	}
}

func TestPlayAfterGameOver(t *testing.T) {
	s := NewManager(testSettings(0)).NewGame(DefaultOptions())
	for _, m := range []string{"f2f3", "e7e5", "g2g4", "d8h4"} {
		if _, err := s.Play(sq(m[:2]), sq(m[2:])); err != nil {
			t.Fatalf("%s: %v", m, err)
		}
	}
	v := s.View()
	if !v.Status.Over || v.Status.Result != chess.BlackWins {
		t.Fatalf("fool's mate not detected: %+v", v.Status)
	}
	if _, err := s.Play(sq("a2"), sq("a3")); !errors.Is(err, ErrGameOver) {
		t.Fatalf("move after mate: err=%v want ErrGameOver", err)
	}
}

func TestComputerReplies(t *testing.T) {
	s := NewManager(testSettings(0)).NewGame(Options{Mode: VsAI, Human: chess.White, Difficulty: engine.Medium})
	ch, cancel := subscribe(s)
	defer cancel()

	if _, err := s.Play(sq("e2"), sq("e4")); err != nil {
		t.Fatalf("e2e4: %v", err)
	}
	v := waitFor(t, ch, func(v View) bool { return v.Status.Turn == chess.White && !v.Thinking })
	if v.LastMove == nil || v.Board.At(v.LastMove.To).Color() != chess.Black {
		t.Fatalf("computer did not move a black piece: %+v", v.LastMove)
	}
}

func TestComputerMovesFirstWhenHumanIsBlack(t *testing.T) {
	s := NewManager(testSettings(20*time.Millisecond)).NewGame(Options{Mode: VsAI, Human: chess.Black, Difficulty: engine.Easy})
	ch, cancel := subscribe(s)
	defer cancel()

	if _, err := s.Play(sq("e7"), sq("e5")); !errors.Is(err, ErrNotYourTurn) {
		t.Fatalf("human moved on the computer's turn: err=%v", err)
	}
	waitFor(t, ch, func(v View) bool { return v.Status.Turn == chess.Black })
	if !s.CanMove() {
		t.Fatalf("human cannot move after the computer's reply")
	}
}

func TestResetDiscardsPendingComputerMove(t *testing.T) {
	s := NewManager(testSettings(50*time.Millisecond)).NewGame(Options{Mode: VsAI, Human: chess.White, Difficulty: engine.Easy})
	if _, err := s.Play(sq("d2"), sq("d4")); err != nil {
		t.Fatalf("d2d4: %v", err)
	}
	if !s.View().Thinking {
		t.Fatalf("computer move not pending")
	}
	s.mu.Lock()
	stale := s.epoch
	s.mu.Unlock()

	s.Reset(DefaultOptions(), chess.StandardSetup())
	// fire the old task by hand as if the timer had already started
	s.runAI(stale)
	time.Sleep(100 * time.Millisecond)

	v := s.View()
	if v.Status.Turn != chess.White || v.LastMove != nil || v.Thinking {
		t.Fatalf("stale computer move applied after reset: %+v", v)
	}
	if v.Board != chess.StandardSetup().Board {
		t.Fatalf("board changed after reset")
	}
}

func TestHintDoesNotMutate(t *testing.T) {
	s := NewManager(testSettings(0)).NewGame(Options{Mode: PvP, Difficulty: engine.Hard})
	before := s.View()
	res, san := s.Hint()
	if !res.Found || san == "" {
		t.Fatalf("no hint from the start position")
	}
	after := s.View()
	if after.Board != before.Board || after.Status != before.Status {
		t.Fatalf("hint changed the game")
	}
}

func TestSubscribeCancel(t *testing.T) {
	s := NewManager(testSettings(0)).NewGame(DefaultOptions())
	calls := 0
	cancel := s.Subscribe(func(View) { calls++ })
	s.Play(sq("e2"), sq("e4"))
	cancel()
	s.Play(sq("e7"), sq("e5"))
	if calls != 1 {
		t.Fatalf("listener calls: got=%d want=1", calls)
	}
}

func TestParseMode(t *testing.T) {
	if m, ok := ParseMode("AI"); !ok || m != VsAI {
		t.Fatalf("ParseMode(AI) = %v, %v", m, ok)
	}
	if _, ok := ParseMode("chess960"); ok {
		t.Fatalf("unknown mode accepted")
	}
	if (Options{Mode: VsAI, Human: chess.Black}).Computer() != chess.White {
		t.Fatalf("computer colour wrong")
	}
	if (Options{Mode: PvP}).Computer() != chess.NoColor {
		t.Fatalf("pvp has no computer")
	}
}

func TestViewWithMovesMatchesPosition(t *testing.T) {
	m := NewManager(testSettings(0))
	s := m.NewGame(Options{Mode: VsAI, Human: chess.White, Difficulty: engine.Easy})
	defer s.Close()

	for i := 0; i < 400; i++ {
		v, moves := s.ViewWithMoves()
		if v.Status.Over {
			break
		}
		for _, mv := range moves {
			if pc := v.Board.At(mv.From); pc.Color() != v.Status.Turn {
				t.Fatalf("iteration %d: move %v starts on %c but %v is to move (%s)", i, mv, pc.Letter(), v.Status.Turn, v.FEN)
			}
		}
		if len(moves) > 0 && v.Status.Turn == chess.White {
			s.Play(moves[0].From, moves[0].To)
		}
	}
}

func TestOwns(t *testing.T) {
	s := NewManager(testSettings(time.Hour)).NewGame(DefaultOptions())
	defer s.Close()
	if !s.Owns(sq("e2")) || !s.Owns(sq("a1")) {
		t.Fatalf("white pieces not owned at the start")
	}
	if s.Owns(sq("e7")) || s.Owns(sq("e4")) {
		t.Fatalf("black piece or empty square reported as owned")
	}
	if _, err := s.Play(sq("e2"), sq("e4")); err != nil {
		t.Fatalf("play: %v", err)
	}
	if !s.Owns(sq("e7")) || s.Owns(sq("e4")) {
		t.Fatalf("ownership did not follow the turn")
	}
}
