package chess

// Rules selects between rule variants the engine supports.
type Rules struct {
	// StalemateDraw ends the game as a draw when the side to move has no
	// legal move and is not in check. When false such positions stay in
	// progress.
	StalemateDraw bool
}

func DefaultRules() Rules {
	return Rules{StalemateDraw: true}
}

// State is the full game tuple owned by Game.
type State struct {
	Board  Board
	Turn   Color
	Check  Color // side currently in check, NoColor if none
	Over   bool
	Result Result
	Hash   uint64
}

// Snapshot is an opaque deep copy of a Game's state.
type Snapshot struct {
	state State
}

// Status is what hosts need after a move to refresh their display.
type Status struct {
	Turn   Color  `json:"turn"`
	Check  Color  `json:"check"`
	Over   bool   `json:"over"`
	Result Result `json:"result"`
}

// Game is the state machine: the only writer of the board, the side to
// move and the check/terminal flags.
type Game struct {
	state State
	rules Rules
}

func NewGame(rules Rules) *Game {
	g := &Game{rules: rules}
	g.Reset(StandardSetup())
	return g
}

// Reset replaces the whole state with setup and recomputes check and
// game-over flags, so a setup that is already mate starts finished.
func (g *Game) Reset(setup Setup) {
	turn := setup.Turn
	if turn != White && turn != Black {
		turn = White
	}
	g.state = State{
		Board:  setup.Board,
		Turn:   turn,
		Check:  NoColor,
		Result: ResultNone,
	}
	g.state.Hash = g.state.CalculateHash()
	g.updateStatus()
}

// ApplyMove plays from->to for the side to move. The move must come from
// LegalMoves; it is not validated again. Moving from an empty square is a no-op.
func (g *Game) ApplyMove(from, to Square) Status {
	b := &g.state.Board
	moved := b.At(from)
	if moved == NoPiece || !to.Valid() {
		return g.Status()
	}
	captured := b.At(to)

	b.apply(Move{From: from, To: to})
	placed := b.At(to)

	h := g.state.Hash
	h ^= pieceHashKey(moved, from)
	if captured != NoPiece {
		h ^= pieceHashKey(captured, to)
	}
	h ^= pieceHashKey(placed, to)
	h ^= zobristSide
	g.state.Hash = h

	g.state.Turn = g.state.Turn.Opposite()
	g.updateStatus()
	return g.Status()
}

func (g *Game) updateStatus() {
	side := g.state.Turn
	b := &g.state.Board

	g.state.Check = NoColor
	g.state.Over = false
	g.state.Result = ResultNone

	inCheck := b.IsInCheck(side)
	if inCheck {
		g.state.Check = side
	}
	if !inCheck && !g.rules.StalemateDraw {
		return
	}
	if hasLegalMove(b, side) {
		return
	}
	g.state.Over = true
	switch {
	case inCheck && side == White:
		g.state.Result = BlackWins
	case inCheck:
		g.state.Result = WhiteWins
	default:
		g.state.Result = Draw
	}
}

// Save takes a deep copy of the state.
func (g *Game) Save() Snapshot {
	return Snapshot{state: g.state}
}

// Restore replaces the live state wholesale with s.
func (g *Game) Restore(s Snapshot) {
	g.state = s.state
}

// Clone returns an independent game with the same state and rules.
func (g *Game) Clone() *Game {
	c := *g
	return &c
}

func (g *Game) Status() Status {
	return Status{
		Turn:   g.state.Turn,
		Check:  g.state.Check,
		Over:   g.state.Over,
		Result: g.state.Result,
	}
}

// Board returns a copy of the current board.
func (g *Game) Board() Board { return g.state.Board }

// PieceAt reads a single square of the live board.
func (g *Game) PieceAt(sq Square) Piece { return g.state.Board.At(sq) }

func (g *Game) Turn() Color     { return g.state.Turn }
func (g *Game) Check() Color    { return g.state.Check }
func (g *Game) Over() bool      { return g.state.Over }
func (g *Game) Result() Result  { return g.state.Result }
func (g *Game) Hash() uint64    { return g.state.Hash }
func (g *Game) Rules() Rules    { return g.rules }
func (g *Game) State() State    { return g.state }
func (s Snapshot) State() State { return s.state }
