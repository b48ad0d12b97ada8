package chess

import "strings"

type Color int8

const (
	NoColor Color = -1
	White   Color = 0
	Black   Color = 1
)

func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	default:
		return "none"
	}
}

// ParseColor accepts "white"/"w" and "black"/"b".
func ParseColor(s string) (Color, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "white", "w":
		return White, true
	case "black", "b":
		return Black, true
	default:
		return NoColor, false
	}
}

// Opposite returns the other side; NoColor stays NoColor.
func (c Color) Opposite() Color {
	switch c {
	case White:
		return Black
	case Black:
		return White
	default:
		return NoColor
	}
}

type PieceType int8

const (
	PieceNone PieceType = iota
	King
	Queen
	Rook
	Bishop
	Knight
	Pawn
)

func (pt PieceType) String() string {
	switch pt {
	case King:
		return "king"
	case Queen:
		return "queen"
	case Rook:
		return "rook"
	case Bishop:
		return "bishop"
	case Knight:
		return "knight"
	case Pawn:
		return "pawn"
	default:
		return "none"
	}
}

// Piece packs type and colour: 0 empty, >0 white, <0 black, abs = PieceType.
type Piece int8

const NoPiece Piece = 0

func MakePiece(c Color, pt PieceType) Piece {
	if pt == PieceNone || c == NoColor {
		return NoPiece
	}
	if c == White {
		return Piece(pt)
	}
	return -Piece(pt)
}

func (p Piece) Type() PieceType {
	if p < 0 {
		return PieceType(-p)
	}
	return PieceType(p)
}

func (p Piece) Color() Color {
	if p == NoPiece {
		return NoColor
	}
	if p > 0 {
		return White
	}
	return Black
}

// Move is produced by generation and consumed by application; it is never stored.
type Move struct {
	From    Square `json:"from"`
	To      Square `json:"to"`
	Capture bool   `json:"capture"`
}

func (m Move) String() string {
	return m.From.String() + m.To.String()
}

type Result int8

const (
	ResultNone Result = iota
	WhiteWins
	BlackWins
	Draw
)

func (r Result) String() string {
	switch r {
	case WhiteWins:
		return "white_wins"
	case BlackWins:
		return "black_wins"
	case Draw:
		return "draw"
	default:
		return "none"
	}
}

// Winner returns the winning colour, or NoColor for draws and unfinished games.
func (r Result) Winner() Color {
	switch r {
	case WhiteWins:
		return White
	case BlackWins:
		return Black
	default:
		return NoColor
	}
}
