package httpserver

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"sync"

	"chessgame/internal/chess"
	"chessgame/internal/engine"
	"chessgame/internal/server/game"
	"chessgame/internal/ui"
)

var errBadRequest = errors.New("bad request")

// Handler serves /api/*. All endpoints take and return JSON via POST.
type Handler struct {
	games *game.Manager

	prefsMu   sync.Mutex
	prefsPath string // empty: prefs are not persisted
}

func NewHandler(m *game.Manager, prefsPath string) *Handler {
	return &Handler{games: m, prefsPath: prefsPath}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	switch r.URL.Path {
	case "/api/new_game":
		h.handleNewGame(w, r)
	case "/api/state":
		h.handleState(w, r)
	case "/api/legal_moves":
		h.handleLegalMoves(w, r)
	case "/api/play":
		h.handlePlay(w, r)
	case "/api/ai_move":
		h.handleAiMove(w, r)
	case "/api/reset":
		h.handleReset(w, r)
	case "/api/ui_config":
		h.handleUIConfig(w, r)
	case "/api/prefs":
		h.handlePrefs(w, r)
	case "/api/save_prefs":
		h.handleSavePrefs(w, r)
	default:
		http.NotFound(w, r)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println("writeJSON error:", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, game.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, game.ErrGameOver), errors.Is(err, game.ErrNotYourTurn):
		code = http.StatusConflict
	case errors.Is(err, game.ErrIllegalMove),
		errors.Is(err, chess.ErrInvalidSquare),
		errors.Is(err, chess.ErrInvalidFEN),
		errors.Is(err, engine.ErrUnknownDifficulty),
		errors.Is(err, errBadRequest):
		code = http.StatusBadRequest
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error()}); err != nil {
		log.Println("writeError error:", err)
	}
}

func decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errBadRequest
	}
	return nil
}

// parseOptions fills unset fields from defaults.
func parseOptions(req NewGameRequest) (game.Options, chess.Setup, error) {
	opts := game.DefaultOptions()
	if req.Mode != "" {
		m, ok := game.ParseMode(req.Mode)
		if !ok {
			return opts, chess.Setup{}, errBadRequest
		}
		opts.Mode = m
	}
	if req.Human != "" {
		c, ok := chess.ParseColor(req.Human)
		if !ok {
			return opts, chess.Setup{}, errBadRequest
		}
		opts.Human = c
	}
	if req.Difficulty != "" {
		d, err := engine.ParseDifficulty(req.Difficulty)
		if err != nil {
			return opts, chess.Setup{}, err
		}
		opts.Difficulty = d
	}
	setup := chess.StandardSetup()
	if req.FEN != "" {
		s, err := chess.ParseFEN(req.FEN)
		if err != nil {
			return opts, chess.Setup{}, err
		}
		setup = s
	}
	return opts, setup, nil
}

func (h *Handler) session(id string) (*game.Session, error) {
	return h.games.Get(id)
}

func stateOf(s *game.Session) StateResponse {
	return viewToState(s.ViewWithMoves())
}

func (h *Handler) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req NewGameRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	opts, setup, err := parseOptions(req)
	if err != nil {
		writeError(w, err)
		return
	}
	s := h.games.NewGameFrom(opts, setup)
	log.Printf("[api] new game %s (%s) mode=%s", s.ID, s.Name, opts.Mode)
	writeJSON(w, stateOf(s))
}

func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	var req StateRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	s, err := h.session(req.GameID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, stateOf(s))
}

func (h *Handler) handleLegalMoves(w http.ResponseWriter, r *http.Request) {
	var req LegalMovesRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	s, err := h.session(req.GameID)
	if err != nil {
		writeError(w, err)
		return
	}
	sq, err := chess.ParseSquare(req.Square)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, LegalMovesResponse{Square: sq.String(), Moves: movesToDTO(s.LegalMoves(sq))})
}

func (h *Handler) handlePlay(w http.ResponseWriter, r *http.Request) {
	var req PlayRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	s, err := h.session(req.GameID)
	if err != nil {
		writeError(w, err)
		return
	}
	from, err := chess.ParseSquare(req.Move.From)
	if err != nil {
		writeError(w, err)
		return
	}
	to, err := chess.ParseSquare(req.Move.To)
	if err != nil {
		writeError(w, err)
		return
	}
	if _, err := s.Play(from, to); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, stateOf(s))
}

func (h *Handler) handleAiMove(w http.ResponseWriter, r *http.Request) {
	var req AiMoveRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	s, err := h.session(req.GameID)
	if err != nil {
		writeError(w, err)
		return
	}

	var (
		res engine.SearchResult
		san string
	)
	if req.Difficulty != "" {
		d, err := engine.ParseDifficulty(req.Difficulty)
		if err != nil {
			writeError(w, err)
			return
		}
		res, san = s.HintAt(d)
	} else {
		res, san = s.Hint()
	}

	resp := AiMoveResponse{
		Score:  res.Score,
		Depth:  res.Depth,
		Nodes:  res.Nodes,
		TimeMs: res.TimeUsed.Milliseconds(),
		Status: "no_moves",
	}
	if res.Found {
		mv := moveToDTO(res.Move)
		resp.BestMove = &mv
		resp.SAN = san
		resp.Status = "ok"
	}
	writeJSON(w, resp)
}

func (h *Handler) handleReset(w http.ResponseWriter, r *http.Request) {
	var req ResetRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	s, err := h.session(req.GameID)
	if err != nil {
		writeError(w, err)
		return
	}
	opts, setup, err := parseOptions(req.NewGameRequest)
	if err != nil {
		writeError(w, err)
		return
	}
	s.Reset(opts, setup)
	writeJSON(w, stateOf(s))
}

func (h *Handler) handleUIConfig(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, uiConfig())
}

func (h *Handler) handlePrefs(w http.ResponseWriter, r *http.Request) {
	if h.prefsPath == "" {
		writeJSON(w, ui.DefaultPrefs())
		return
	}
	h.prefsMu.Lock()
	p, err := ui.LoadPrefs(h.prefsPath)
	h.prefsMu.Unlock()
	if err != nil {
		log.Printf("[api] prefs %s: %v", h.prefsPath, err)
	}
	writeJSON(w, p)
}

// handleSavePrefs stores the posted prefs and answers with what was kept
// after unknown values were replaced by defaults.
func (h *Handler) handleSavePrefs(w http.ResponseWriter, r *http.Request) {
	p := ui.DefaultPrefs()
	if err := decode(r, &p); err != nil {
		writeError(w, err)
		return
	}
	p = p.Normalize()
	if h.prefsPath != "" {
		h.prefsMu.Lock()
		err := ui.SavePrefs(h.prefsPath, p)
		h.prefsMu.Unlock()
		if err != nil {
			writeError(w, err)
			return
		}
	}
	writeJSON(w, p)
}
