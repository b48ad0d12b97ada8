package engine

import (
	"errors"
	"math/rand"
	"strings"
	"sync"
	"time"

	"chessgame/internal/chess"
)

type Difficulty int

const (
	Easy   Difficulty = iota // uniform random legal move
	Medium                   // best static evaluation one ply ahead
	Hard                     // minimax, two plies by default
)

var ErrUnknownDifficulty = errors.New("unknown difficulty")

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return "unknown"
	}
}

func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy", "random":
		return Easy, nil
	case "medium", "greedy":
		return Medium, nil
	case "hard", "minimax":
		return Hard, nil
	default:
		return Easy, ErrUnknownDifficulty
	}
}

// Engine picks moves for the computer side. One Engine may serve many games;
// searches are serialised.
type Engine struct {
	mu    sync.Mutex
	rng   *rand.Rand
	cache map[uint64]int // static evaluations keyed by position hash
	nodes int64
}

func NewEngine(seed int64) *Engine {
	return &Engine{
		rng:   rand.New(rand.NewSource(seed)),
		cache: make(map[uint64]int, 1<<12),
	}
}

// SearchConfig selects the strategy.
type SearchConfig struct {
	Difficulty Difficulty
	MaxDepth   int // minimax depth in plies; 0 means DefaultDepth
}

const DefaultDepth = 2

// SearchResult describes the chosen move. Found is false only when the side
// to move has no legal move.
type SearchResult struct {
	Move     chess.Move
	Found    bool
	Score    int // centipawns, positive favours White
	Depth    int
	Nodes    int64
	TimeUsed time.Duration
}

// ChooseMove selects a move for the side to move in g. The game is explored
// through Save/Restore and is left exactly as it was passed in.
func (e *Engine) ChooseMove(g *chess.Game, cfg SearchConfig) SearchResult {
	e.mu.Lock()
	defer e.mu.Unlock()

	start := time.Now()
	e.nodes = 0

	root := g.Save()
	defer g.Restore(root)

	var res SearchResult
	switch cfg.Difficulty {
	case Easy:
		res = e.random(g)
	case Medium:
		res = e.greedy(g)
	default:
		depth := cfg.MaxDepth
		if depth <= 0 {
			depth = DefaultDepth
		}
		res = e.minimaxRoot(g, depth)
	}
	res.Nodes = e.nodes
	res.TimeUsed = time.Since(start)
	return res
}
