// Package ui holds the presentation pieces shared by the terminal front ends:
// click handling, themes, translations and saved preferences.
package ui

import "chessgame/internal/chess"

// Host is what the dispatcher needs from a game session.
type Host interface {
	CanMove() bool
	Owns(sq chess.Square) bool
	LegalMoves(sq chess.Square) []chess.Move
	Play(from, to chess.Square) (chess.Status, error)
}

type ClickResult int

const (
	Cleared ClickResult = iota
	Selected
	Moved
)

// Selector turns board clicks into move requests. A destination is only
// accepted when it is in the legal move list of the selected piece.
type Selector struct {
	from    chess.Square
	active  bool
	targets []chess.Move
}

// Click handles a click on sq:
// a highlighted destination plays the move, a piece of the side to move is
// selected (even one without moves), anything else clears the selection.
func (s *Selector) Click(h Host, sq chess.Square) (ClickResult, error) {
	if !h.CanMove() || !sq.Valid() {
		s.Clear()
		return Cleared, nil
	}
	if mv, ok := s.Target(sq); ok && s.active {
		from := s.from
		s.Clear()
		if _, err := h.Play(from, mv.To); err != nil {
			return Cleared, err
		}
		return Moved, nil
	}
	if !h.Owns(sq) {
		s.Clear()
		return Cleared, nil
	}
	s.from, s.active, s.targets = sq, true, h.LegalMoves(sq)
	return Selected, nil
}

func (s *Selector) Clear() {
	s.active = false
	s.targets = nil
}

// Selection returns the selected square, if any.
func (s *Selector) Selection() (chess.Square, bool) {
	return s.from, s.active
}

// Target reports whether sq is a destination of the selected piece.
func (s *Selector) Target(sq chess.Square) (chess.Move, bool) {
	for _, mv := range s.targets {
		if mv.To == sq {
			return mv, true
		}
	}
	return chess.Move{}, false
}

func (s *Selector) Targets() []chess.Move { return s.targets }
