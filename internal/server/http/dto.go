package httpserver

import (
	"chessgame/internal/chess"
	"chessgame/internal/server/game"
	"chessgame/internal/ui"
)

// Squares travel as algebraic coordinates ("e2").
type MoveDTO struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Capture bool   `json:"capture,omitempty"`
}

func moveToDTO(m chess.Move) MoveDTO {
	return MoveDTO{From: m.From.String(), To: m.To.String(), Capture: m.Capture}
}

func movesToDTO(ms []chess.Move) []MoveDTO {
	out := make([]MoveDTO, len(ms))
	for i, m := range ms {
		out[i] = moveToDTO(m)
	}
	return out
}

// NewGameRequest: every field is optional. Mode "pvp" or "ai", Human "white"
// or "black", Difficulty "easy"/"medium"/"hard", FEN a custom start position.
type NewGameRequest struct {
	Mode       string `json:"mode"`
	Human      string `json:"human"`
	Difficulty string `json:"difficulty"`
	FEN        string `json:"fen"`
}

// ResetRequest restarts an existing game with new options.
type ResetRequest struct {
	GameID string `json:"game_id"`
	NewGameRequest
}

type StateRequest struct {
	GameID string `json:"game_id"`
}

type LegalMovesRequest struct {
	GameID string `json:"game_id"`
	Square string `json:"square"`
}

type LegalMovesResponse struct {
	Square string    `json:"square"`
	Moves  []MoveDTO `json:"moves"`
}

type PlayRequest struct {
	GameID string  `json:"game_id"`
	Move   MoveDTO `json:"move"`
}

// StateResponse is returned by new_game, state, play and reset.
type StateResponse struct {
	GameID     string    `json:"game_id"`
	Name       string    `json:"name"`
	Position   string    `json:"position"` // FEN
	Board      []string  `json:"board"`    // 8 rows from rank 8, FEN letters, '.' for empty
	ToMove     string    `json:"to_move"`
	Check      string    `json:"check"`
	Over       bool      `json:"over"`
	Result     string    `json:"result"`
	Status     string    `json:"status"` // "ongoing" / "checkmate" / "draw"
	Mode       string    `json:"mode"`
	Human      string    `json:"human,omitempty"`
	Difficulty string    `json:"difficulty"`
	Thinking   bool      `json:"thinking"`
	LastMove   *MoveDTO  `json:"last_move,omitempty"`
	LastSAN    string    `json:"last_san,omitempty"`
	MoveNumber int       `json:"move_number"`
	LegalMoves []MoveDTO `json:"legal_moves"`
}

// AiMoveRequest asks for a suggestion for the side to move. The game is not
// changed.
type AiMoveRequest struct {
	GameID     string `json:"game_id"`
	Difficulty string `json:"difficulty"` // optional override
}

type AiMoveResponse struct {
	BestMove *MoveDTO `json:"best_move,omitempty"`
	SAN      string   `json:"san,omitempty"`
	Score    int      `json:"score"`
	Depth    int      `json:"depth"`
	Nodes    int64    `json:"nodes"`
	TimeMs   int64    `json:"time_ms"`
	Status   string   `json:"status"` // "ok" / "no_moves"
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func boardRows(b chess.Board) []string {
	rows := make([]string, chess.Rows)
	for r := 0; r < chess.Rows; r++ {
		line := make([]rune, chess.Cols)
		for c := 0; c < chess.Cols; c++ {
			line[c] = b.At(chess.Square{Row: r, Col: c}).Letter()
		}
		rows[r] = string(line)
	}
	return rows
}

func statusText(st chess.Status) string {
	switch {
	case !st.Over:
		return "ongoing"
	case st.Result == chess.Draw:
		return "draw"
	default:
		return "checkmate"
	}
}

func viewToState(v game.View, legal []chess.Move) StateResponse {
	resp := StateResponse{
		GameID:     v.ID,
		Name:       v.Name,
		Position:   v.FEN,
		Board:      boardRows(v.Board),
		ToMove:     v.Status.Turn.String(),
		Check:      v.Status.Check.String(),
		Over:       v.Status.Over,
		Result:     v.Status.Result.String(),
		Status:     statusText(v.Status),
		Mode:       v.Options.Mode.String(),
		Difficulty: v.Options.Difficulty.String(),
		Thinking:   v.Thinking,
		LastSAN:    v.LastSAN,
		MoveNumber: v.MoveNumber,
		LegalMoves: movesToDTO(legal),
	}
	if v.Options.Mode == game.VsAI {
		resp.Human = v.Options.Human.String()
	}
	if v.LastMove != nil {
		mv := moveToDTO(*v.LastMove)
		resp.LastMove = &mv
	}
	return resp
}

type LangDTO struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// UIConfigResponse carries the tables the web client draws with, so the
// browser and the terminal share one set of themes and translations.
type UIConfigResponse struct {
	Langs       []LangDTO                    `json:"langs"`
	DefaultLang string                       `json:"default_lang"`
	Messages    map[string]map[string]string `json:"messages"`
	BoardThemes []ui.BoardThemeHex           `json:"board_themes"`
	Highlights  map[string]string            `json:"highlights"`
	PieceStyles map[string]map[string]string `json:"piece_styles"` // style -> FEN letter -> glyph
	Tracks      []ui.Track                   `json:"tracks"`
}

var pieceTypes = []chess.PieceType{chess.King, chess.Queen, chess.Rook, chess.Bishop, chess.Knight, chess.Pawn}

func uiConfig() UIConfigResponse {
	resp := UIConfigResponse{
		DefaultLang: string(ui.DefaultLang),
		Messages:    make(map[string]map[string]string),
		BoardThemes: ui.BoardThemeHexes(),
		Highlights:  ui.Highlights(),
		PieceStyles: make(map[string]map[string]string),
		Tracks:      ui.Tracks(),
	}
	for _, l := range ui.Langs() {
		resp.Langs = append(resp.Langs, LangDTO{Code: string(l), Name: ui.T(l, "langName")})
		resp.Messages[string(l)] = ui.Messages(l)
	}
	for _, style := range ui.PieceStyles() {
		glyphs := make(map[string]string, 2*len(pieceTypes))
		for _, pt := range pieceTypes {
			for _, c := range []chess.Color{chess.White, chess.Black} {
				p := chess.MakePiece(c, pt)
				glyphs[string(p.Letter())] = style.Glyph(p)
			}
		}
		resp.PieceStyles[string(style)] = glyphs
	}
	return resp
}
