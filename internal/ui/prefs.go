package ui

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"chessgame/internal/chess"
	"chessgame/internal/engine"
	"chessgame/internal/server/game"
)

// Prefs are the player's saved choices.
type Prefs struct {
	Lang       Lang       `json:"lang"`
	BoardTheme string     `json:"board_theme"`
	PieceStyle PieceStyle `json:"piece_style"`
	Mode       string     `json:"mode"`
	Side       string     `json:"side"`
	Difficulty string     `json:"difficulty"`

	// Background music, used by the web client only.
	Music  bool    `json:"music"`
	Volume float64 `json:"volume"` // 0..1
	Track  string  `json:"track"`
}

func DefaultPrefs() Prefs {
	return Prefs{
		Lang:       DefaultLang,
		BoardTheme: DefaultBoardTheme,
		PieceStyle: Symbols,
		Mode:       game.PvP.String(),
		Side:       chess.White.String(),
		Difficulty: engine.Easy.String(),
		Music:      true,
		Volume:     DefaultVolume,
		Track:      tracks[0].ID,
	}
}

// Normalize replaces unknown values with defaults.
func (p Prefs) Normalize() Prefs {
	def := DefaultPrefs()
	if _, ok := ParseLang(string(p.Lang)); !ok {
		p.Lang = def.Lang
	}
	if _, ok := boardThemes[p.BoardTheme]; !ok {
		p.BoardTheme = def.BoardTheme
	}
	if _, ok := ParsePieceStyle(string(p.PieceStyle)); !ok {
		p.PieceStyle = def.PieceStyle
	}
	if _, ok := game.ParseMode(p.Mode); !ok || p.Mode == "" {
		p.Mode = def.Mode
	}
	if _, ok := chess.ParseColor(p.Side); !ok {
		p.Side = def.Side
	}
	if _, err := engine.ParseDifficulty(p.Difficulty); err != nil {
		p.Difficulty = def.Difficulty
	}
	if !(p.Volume >= 0 && p.Volume <= 1) {
		p.Volume = def.Volume
	}
	if !knownTrack(p.Track) {
		p.Track = def.Track
	}
	return p
}

// Options converts the saved mode, side and difficulty for a new session.
func (p Prefs) Options() game.Options {
	p = p.Normalize()
	mode, _ := game.ParseMode(p.Mode)
	side, _ := chess.ParseColor(p.Side)
	diff, _ := engine.ParseDifficulty(p.Difficulty)
	return game.Options{Mode: mode, Human: side, Difficulty: diff}
}

// LoadPrefs reads path. A missing file gives the defaults, and so do fields
// missing from the file.
func LoadPrefs(path string) (Prefs, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultPrefs(), nil
	}
	if err != nil {
		return DefaultPrefs(), err
	}
	p := DefaultPrefs()
	if err := json.Unmarshal(data, &p); err != nil {
		return DefaultPrefs(), fmt.Errorf("prefs %s: %w", path, err)
	}
	return p.Normalize(), nil
}

func SavePrefs(path string, p Prefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p.Normalize(), "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
