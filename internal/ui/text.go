package ui

import (
	"io"
	"strings"

	"github.com/fatih/color"

	"chessgame/internal/chess"
)

var (
	lightSquare = color.New(color.BgHiWhite, color.FgBlack)
	darkSquare  = color.New(color.BgGreen, color.FgBlack)
	hlSquare    = color.New(color.BgYellow, color.FgBlack)
	coordColor  = color.New(color.FgHiBlack)
)

// WriteBoard prints b with rank and file labels. Squares in highlight are
// drawn in a separate colour. Colour is dropped automatically when out is
// not a terminal (see color.NoColor).
func WriteBoard(out io.Writer, b *chess.Board, style PieceStyle, highlight ...chess.Square) {
	marked := make(map[chess.Square]bool, len(highlight))
	for _, sq := range highlight {
		marked[sq] = true
	}
	for r := 0; r < chess.Rows; r++ {
		coordColor.Fprintf(out, "%d ", chess.Rows-r)
		for c := 0; c < chess.Cols; c++ {
			sq := chess.Square{Row: r, Col: c}
			paint := lightSquare
			switch {
			case marked[sq]:
				paint = hlSquare
			case (r+c)%2 == 1:
				paint = darkSquare
			}
			paint.Fprintf(out, " %s ", style.Glyph(b.At(sq)))
		}
		io.WriteString(out, "\n")
	}
	coordColor.Fprintf(out, "   %s\n", strings.Join(strings.Split("abcdefgh", ""), "  "))
}
