package chess

import (
	"errors"
	"strings"
)

var ErrInvalidFEN = errors.New("invalid FEN")

// FEN encodes the position. Castling and en-passant are not part of these
// rules and are always written as "-".
func (g *Game) FEN() string {
	return EncodeFEN(Setup{Board: g.state.Board, Turn: g.state.Turn})
}

func EncodeFEN(s Setup) string {
	var sb strings.Builder
	for r := 0; r < Rows; r++ {
		if r > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for c := 0; c < Cols; c++ {
			pc := s.Board.Squares[r*Cols+c]
			if pc == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteRune(pc.Letter())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}
	if s.Turn == Black {
		sb.WriteString(" b")
	} else {
		sb.WriteString(" w")
	}
	sb.WriteString(" - - 0 1")
	return sb.String()
}

// ParseFEN reads piece placement and side to move; remaining fields are ignored.
func ParseFEN(fen string) (Setup, error) {
	parts := strings.Fields(fen)
	if len(parts) < 2 {
		return Setup{}, ErrInvalidFEN
	}
	rows := strings.Split(parts[0], "/")
	if len(rows) != Rows {
		return Setup{}, ErrInvalidFEN
	}
	var b Board
	for r, row := range rows {
		c := 0
		for _, ch := range row {
			if c >= Cols {
				return Setup{}, ErrInvalidFEN
			}
			if ch >= '1' && ch <= '8' {
				c += int(ch - '0')
				continue
			}
			pc, ok := pieceFromLetter(ch)
			if !ok {
				return Setup{}, ErrInvalidFEN
			}
			b.Squares[r*Cols+c] = pc
			c++
		}
		if c != Cols {
			return Setup{}, ErrInvalidFEN
		}
	}
	var turn Color
	switch parts[1] {
	case "w":
		turn = White
	case "b":
		turn = Black
	default:
		return Setup{}, ErrInvalidFEN
	}
	return Setup{Board: b, Turn: turn}, nil
}
