package ui

import (
	"chessgame/internal/chess"
	"chessgame/internal/server/game"
)

// StatusLine is the text under the board: whose turn, check, result and
// whether the computer is thinking.
func StatusLine(lang Lang, v game.View) string {
	st := v.Status
	if st.Over {
		switch st.Result {
		case chess.WhiteWins:
			return T(lang, "gameOver") + " - " + T(lang, "whiteWins")
		case chess.BlackWins:
			return T(lang, "gameOver") + " - " + T(lang, "blackWins")
		default:
			return T(lang, "gameOver") + " - " + T(lang, "draw")
		}
	}
	s := T(lang, "whiteTurn")
	if st.Turn == chess.Black {
		s = T(lang, "blackTurn")
	}
	if st.Check != chess.NoColor {
		s += " " + T(lang, "check")
	}
	if v.Thinking {
		s += T(lang, "aiThinking")
	}
	return s
}
