package chess

import (
	"errors"
	"strings"
	"unicode"
)

const (
	Rows       = 8
	Cols       = 8
	NumSquares = Rows * Cols
)

var ErrInvalidSquare = errors.New("invalid square")

// Square is a (row, column) pair. Row 0 is rank 8 (Black's back rank),
// row 7 is rank 1 (White's back rank).
type Square struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func onBoard(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Cols
}

func (s Square) Valid() bool { return onBoard(s.Row, s.Col) }

func (s Square) index() int { return s.Row*Cols + s.Col }

func squareAt(idx int) Square { return Square{Row: idx / Cols, Col: idx % Cols} }

// String returns algebraic coordinates, e.g. "e2".
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{byte('a' + s.Col), byte('1' + (Rows - 1 - s.Row))})
}

// ParseSquare accepts algebraic coordinates such as "e2" (case-insensitive).
func ParseSquare(s string) (Square, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != 2 {
		return Square{}, ErrInvalidSquare
	}
	col := int(s[0]) - 'a'
	rank := int(s[1]) - '1'
	sq := Square{Row: Rows - 1 - rank, Col: col}
	if !sq.Valid() {
		return Square{}, ErrInvalidSquare
	}
	return sq, nil
}

// MustSquare is ParseSquare for literals known to be valid.
func MustSquare(s string) Square {
	sq, err := ParseSquare(s)
	if err != nil {
		panic("chess: bad square literal " + s)
	}
	return sq
}

// Board is pure data: an 8x8 grid of optional pieces. Copying a Board copies the grid.
type Board struct {
	Squares [NumSquares]Piece
}

// At returns the piece on sq; off-board squares read as empty.
func (b *Board) At(sq Square) Piece {
	if !sq.Valid() {
		return NoPiece
	}
	return b.Squares[sq.index()]
}

func (b *Board) Set(sq Square, p Piece) {
	if !sq.Valid() {
		return
	}
	b.Squares[sq.index()] = p
}

// FindKing returns the square of c's king.
func (b *Board) FindKing(c Color) (Square, bool) {
	king := MakePiece(c, King)
	for i, pc := range b.Squares {
		if pc == king {
			return squareAt(i), true
		}
	}
	return Square{}, false
}

// pawn direction: white moves up the rows (-1), black down (+1)
func pawnDir(c Color) int {
	if c == White {
		return -1
	}
	return +1
}

func pawnStartRow(c Color) int {
	if c == White {
		return Rows - 2
	}
	return 1
}

func promotionRow(c Color) int {
	if c == White {
		return 0
	}
	return Rows - 1
}

var letterToPieceType = map[rune]PieceType{
	'k': King,
	'q': Queen,
	'r': Rook,
	'b': Bishop,
	'n': Knight,
	'p': Pawn,
}

var pieceTypeToLetter = map[PieceType]rune{
	King:   'k',
	Queen:  'q',
	Rook:   'r',
	Bishop: 'b',
	Knight: 'n',
	Pawn:   'p',
}

// Letter returns the FEN letter: upper case for white, lower case for black, '.' for empty.
func (p Piece) Letter() rune {
	if p == NoPiece {
		return '.'
	}
	r, ok := pieceTypeToLetter[p.Type()]
	if !ok {
		return '.'
	}
	if p.Color() == White {
		return unicode.ToUpper(r)
	}
	return r
}

func pieceFromLetter(ch rune) (Piece, bool) {
	pt, ok := letterToPieceType[unicode.ToLower(ch)]
	if !ok {
		return NoPiece, false
	}
	c := Black
	if unicode.IsUpper(ch) {
		c = White
	}
	return MakePiece(c, pt), true
}

// Standard orientation: Black on rows 0-1, White on rows 6-7.
const initialBoardString = `rnbqkbnr
pppppppp
........
........
........
........
PPPPPPPP
RNBQKBNR`

func parseBoardString(s string) Board {
	var b Board
	lines := make([]string, 0, Rows)
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if len(lines) != Rows {
		panic("chess: board string must have 8 rows")
	}
	for r, line := range lines {
		if len(line) != Cols {
			panic("chess: board row must have 8 columns")
		}
		for c, ch := range line {
			if ch == '.' {
				continue
			}
			pc, ok := pieceFromLetter(ch)
			if !ok {
				panic("chess: unknown piece letter " + string(ch))
			}
			b.Squares[r*Cols+c] = pc
		}
	}
	return b
}

// Setup is a starting point for a game: a board and the side to move.
type Setup struct {
	Board Board
	Turn  Color
}

// StandardSetup is the usual starting position with White to move.
func StandardSetup() Setup {
	return Setup{Board: parseBoardString(initialBoardString), Turn: White}
}

// String draws the board one row per line, rank 8 first.
func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			sb.WriteRune(b.Squares[r*Cols+c].Letter())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
