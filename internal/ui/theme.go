package ui

import (
	"sort"

	"github.com/gdamore/tcell/v2"

	"chessgame/internal/chess"
)

// BoardTheme colours the board. Light and dark squares come from the four
// board palettes; the highlight colours are shared.
type BoardTheme struct {
	Name    string
	Light   tcell.Color
	Dark    tcell.Color
	Border  tcell.Color
	Select  tcell.Color
	Move    tcell.Color
	Capture tcell.Color
	Check   tcell.Color
	White   tcell.Color
	Black   tcell.Color
}

// BoardThemeHex is the serialisable form of a BoardTheme.
type BoardThemeHex struct {
	Name   string `json:"name"`
	Light  string `json:"light"`
	Dark   string `json:"dark"`
	Border string `json:"border"`
}

const (
	selectHex  = "#f6f669"
	moveHex    = "#a9d18e"
	captureHex = "#e57373"
	checkHex   = "#ff4d4d"
)

func (t BoardThemeHex) Theme() BoardTheme {
	return BoardTheme{
		Name:    t.Name,
		Light:   tcell.GetColor(t.Light),
		Dark:    tcell.GetColor(t.Dark),
		Border:  tcell.GetColor(t.Border),
		Select:  tcell.GetColor(selectHex),
		Move:    tcell.GetColor(moveHex),
		Capture: tcell.GetColor(captureHex),
		Check:   tcell.GetColor(checkHex),
		White:   tcell.ColorWhite,
		Black:   tcell.ColorBlack,
	}
}

const DefaultBoardTheme = "green"

var boardThemeOrder = []string{"red", "green", "blue", "yellow"}

var boardThemes = map[string]BoardThemeHex{
	"red":    {"red", "#e8c4c4", "#c47a7a", "#8b4545"},
	"green":  {"green", "#c4e8c4", "#7ac47a", "#458b45"},
	"blue":   {"blue", "#c4d4e8", "#7aa0c4", "#45688b"},
	"yellow": {"yellow", "#e8e4c4", "#c4b87a", "#8b8245"},
}

// LookupBoardTheme falls back to the default theme for unknown names.
func LookupBoardTheme(name string) BoardTheme {
	if t, ok := boardThemes[name]; ok {
		return t.Theme()
	}
	return boardThemes[DefaultBoardTheme].Theme()
}

// Highlights are the square highlight colours shared by every board theme.
func Highlights() map[string]string {
	return map[string]string{
		"select":  selectHex,
		"move":    moveHex,
		"capture": captureHex,
		"check":   checkHex,
	}
}

// BoardThemeHexes lists the board palettes in menu order.
func BoardThemeHexes() []BoardThemeHex {
	out := make([]BoardThemeHex, 0, len(boardThemeOrder))
	for _, n := range boardThemeOrder {
		out = append(out, boardThemes[n])
	}
	return out
}

func BoardThemeNames() []string {
	names := make([]string, 0, len(boardThemes))
	for n := range boardThemes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// SquareColor is the plain square colour; a1 is dark.
func (t BoardTheme) SquareColor(sq chess.Square) tcell.Color {
	if (sq.Row+sq.Col)%2 == 0 {
		return t.Light
	}
	return t.Dark
}

type PieceStyle string

const (
	Symbols PieceStyle = "symbols"
	Letters PieceStyle = "letters"
)

func PieceStyles() []PieceStyle { return []PieceStyle{Symbols, Letters} }

func ParsePieceStyle(s string) (PieceStyle, bool) {
	switch PieceStyle(s) {
	case Symbols, Letters:
		return PieceStyle(s), true
	default:
		return Symbols, false
	}
}

var symbolGlyphs = map[chess.PieceType][2]string{
	chess.King:   {"♔", "♚"},
	chess.Queen:  {"♕", "♛"},
	chess.Rook:   {"♖", "♜"},
	chess.Bishop: {"♗", "♝"},
	chess.Knight: {"♘", "♞"},
	chess.Pawn:   {"♙", "♟"},
}

// Glyph returns the text drawn for p, or a space for an empty square.
func (ps PieceStyle) Glyph(p chess.Piece) string {
	if p == chess.NoPiece {
		return " "
	}
	if ps == Letters {
		return string(p.Letter())
	}
	g := symbolGlyphs[p.Type()]
	if p.Color() == chess.White {
		return g[0]
	}
	return g[1]
}
