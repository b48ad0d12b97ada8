// Package tui is the terminal board: a tview table for the squares, a status
// line and a setup form.
package tui

import (
	"log"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"chessgame/internal/chess"
	"chessgame/internal/engine"
	"chessgame/internal/server/game"
	"chessgame/internal/ui"
)

const (
	labelCol = 0 // rank labels
	labelRow = chess.Rows
)

type App struct {
	App    *tview.Application
	Board  *tview.Table
	Status *tview.TextView
	Info   *tview.TextView
	Form   *tview.Form
	Layout *tview.Flex

	games     *game.Manager
	session   *game.Session
	unsub     func()
	sel       ui.Selector
	prefs     ui.Prefs
	prefsPath string
	theme     ui.BoardTheme
	message   string
}

func New(games *game.Manager, prefs ui.Prefs, prefsPath string) *App {
	a := &App{
		App:       tview.NewApplication(),
		Board:     tview.NewTable(),
		Status:    tview.NewTextView(),
		Info:      tview.NewTextView().SetDynamicColors(false),
		Form:      tview.NewForm(),
		games:     games,
		prefs:     prefs.Normalize(),
		prefsPath: prefsPath,
	}
	a.theme = ui.LookupBoardTheme(a.prefs.BoardTheme)

	a.Board.SetSelectable(true, true)
	a.Board.SetDoneFunc(func(key tcell.Key) {
		if key == tcell.KeyEscape {
			a.App.Stop()
		}
	}).SetSelectedFunc(a.handleSelect)
	a.Status.SetBorder(true)
	a.Info.SetBorder(true)

	side := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(a.Status, 3, 0, false).
		AddItem(a.Info, 4, 0, false).
		AddItem(a.Form, 0, 1, false)
	a.Layout = tview.NewFlex().
		AddItem(a.Board, 30, 0, true).
		AddItem(side, 0, 1, false)

	a.App.SetInputCapture(func(ev *tcell.EventKey) *tcell.EventKey {
		if ev.Key() == tcell.KeyTab {
			if a.Board.HasFocus() {
				a.App.SetFocus(a.Form)
			} else {
				a.App.SetFocus(a.Board)
			}
			return nil
		}
		return ev
	})

	a.newGame()
	a.buildForm()
	return a
}

func (a *App) Run() error {
	defer a.close()
	return a.App.SetRoot(a.Layout, true).EnableMouse(true).Run()
}

func (a *App) close() {
	if a.unsub != nil {
		a.unsub()
		a.unsub = nil
	}
	if a.session != nil {
		a.games.Delete(a.session.ID)
		a.session = nil
	}
}

// newGame replaces the current session with a fresh one from the prefs.
func (a *App) newGame() {
	a.close()
	a.sel.Clear()
	a.message = ""
	a.session = a.games.NewGame(a.prefs.Options())
	a.unsub = a.session.Subscribe(func(game.View) {
		go a.App.QueueUpdateDraw(a.render)
	})
	log.Printf("new game %s (%s) %+v", a.session.ID, a.session.Name, a.prefs)
	a.render()
}

// flipped shows Black at the bottom when the human plays Black in the
// running game.
func (a *App) flipped() bool {
	opts := a.session.View().Options
	return opts.Mode == game.VsAI && opts.Human == chess.Black
}

// cellSquare maps a table cell to a board square. Label cells are off-board.
func cellSquare(row, col int, flipped bool) chess.Square {
	if row >= chess.Rows || col == labelCol {
		return chess.Square{Row: -1, Col: -1}
	}
	sq := chess.Square{Row: row, Col: col - 1}
	if flipped {
		sq = chess.Square{Row: chess.Rows - 1 - sq.Row, Col: chess.Cols - 1 - sq.Col}
	}
	return sq
}

func (a *App) handleSelect(row, col int) {
	sq := cellSquare(row, col, a.flipped())
	res, err := a.sel.Click(a.session, sq)
	if err != nil {
		a.message = err.Error()
		log.Printf("move rejected: %v", err)
	} else if res == ui.Moved {
		a.message = ""
	}
	a.render()
}

func (a *App) render() {
	v := a.session.View()
	flip := a.flipped()
	style := a.prefs.PieceStyle

	from, selected := a.sel.Selection()
	var checkSq chess.Square
	inCheck := false
	if v.Status.Check != chess.NoColor {
		checkSq, inCheck = v.Board.FindKing(v.Status.Check)
	}

	for r := 0; r <= chess.Rows; r++ {
		for c := 0; c <= chess.Cols; c++ {
			if r == labelRow || c == labelCol {
				a.Board.SetCell(r, c, a.labelCell(r, c, flip))
				continue
			}
			sq := cellSquare(r, c, flip)
			bg := a.theme.SquareColor(sq)
			if mv, ok := a.sel.Target(sq); ok {
				bg = a.theme.Move
				if mv.Capture {
					bg = a.theme.Capture
				}
			}
			if selected && sq == from {
				bg = a.theme.Select
			}
			if inCheck && sq == checkSq {
				bg = a.theme.Check
			}
			pc := v.Board.At(sq)
			fg := a.theme.Black
			if pc != chess.NoPiece && pc.Color() == chess.White && style == ui.Letters {
				fg = a.theme.White
			}
			a.Board.SetCell(r, c, tview.NewTableCell(" "+style.Glyph(pc)+" ").
				SetAlign(tview.AlignCenter).
				SetTextColor(fg).
				SetBackgroundColor(bg))
		}
	}

	lang := a.prefs.Lang
	a.Status.SetText(ui.StatusLine(lang, v))
	info := ui.T(lang, "lastMove") + v.LastSAN
	if a.message != "" {
		info += "\n" + a.message
	}
	a.Info.SetText(info)
}

func (a *App) labelCell(r, c int, flip bool) *tview.TableCell {
	text := ""
	switch {
	case r == labelRow && c != labelCol:
		sq := cellSquare(0, c, flip)
		text = string(rune('a' + sq.Col))
	case c == labelCol && r != labelRow:
		sq := cellSquare(r, 1, flip)
		text = string(rune('1' + chess.Rows - 1 - sq.Row))
	}
	return tview.NewTableCell(text).
		SetAlign(tview.AlignCenter).
		SetTextColor(a.theme.Border).
		SetSelectable(false)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func indexOf(options []string, want string) int {
	for i, o := range options {
		if o == want {
			return i
		}
	}
	return 0
}

// buildForm (re)creates the setup form in the current language.
func (a *App) buildForm() {
	lang := a.prefs.Lang
	a.Form.Clear(true)
	a.Form.SetBorder(true).SetTitle(ui.T(lang, "title"))

	modes := []string{game.PvP.String(), game.VsAI.String()}
	modeLabels := []string{ui.T(lang, "modePvp"), ui.T(lang, "modeAi")}
	a.Form.AddDropDown(ui.T(lang, "modeLabel"), modeLabels, indexOf(modes, a.prefs.Mode), func(_ string, i int) {
		if i >= 0 {
			a.prefs.Mode = modes[i]
		}
	})

	sides := []string{chess.White.String(), chess.Black.String()}
	sideLabels := []string{ui.T(lang, "sideWhite"), ui.T(lang, "sideBlack")}
	a.Form.AddDropDown(ui.T(lang, "sideLabel"), sideLabels, indexOf(sides, a.prefs.Side), func(_ string, i int) {
		if i >= 0 {
			a.prefs.Side = sides[i]
		}
	})

	diffs := []string{engine.Easy.String(), engine.Medium.String(), engine.Hard.String()}
	diffLabels := []string{ui.T(lang, "diffEasy"), ui.T(lang, "diffMedium"), ui.T(lang, "diffHard")}
	a.Form.AddDropDown(ui.T(lang, "difficultyLabel"), diffLabels, indexOf(diffs, a.prefs.Difficulty), func(_ string, i int) {
		if i >= 0 {
			a.prefs.Difficulty = diffs[i]
		}
	})

	var langs []string
	for _, l := range ui.Langs() {
		langs = append(langs, string(l))
	}
	a.Form.AddDropDown(ui.T(lang, "langLabel"), langs, indexOf(langs, string(lang)), func(opt string, i int) {
		if i < 0 || ui.Lang(opt) == a.prefs.Lang {
			return
		}
		a.prefs.Lang = ui.Lang(opt)
		a.savePrefs()
		// rebuilding inside the dropdown callback would free the widget in use
		go a.App.QueueUpdateDraw(func() {
			a.buildForm()
			a.render()
		})
	})

	themes := ui.BoardThemeNames()
	themeLabels := make([]string, len(themes))
	for i, n := range themes {
		themeLabels[i] = ui.T(lang, "board"+capitalize(n))
	}
	a.Form.AddDropDown(ui.T(lang, "themeBoard"), themeLabels, indexOf(themes, a.prefs.BoardTheme), func(_ string, i int) {
		if i < 0 || themes[i] == a.prefs.BoardTheme {
			return
		}
		a.prefs.BoardTheme = themes[i]
		a.theme = ui.LookupBoardTheme(themes[i])
		a.savePrefs()
		a.render()
	})

	styles := ui.PieceStyles()
	styleNames := make([]string, len(styles))
	styleLabels := make([]string, len(styles))
	for i, s := range styles {
		styleNames[i] = string(s)
		styleLabels[i] = ui.T(lang, "piece"+capitalize(string(s)))
	}
	a.Form.AddDropDown(ui.T(lang, "themePieces"), styleLabels, indexOf(styleNames, string(a.prefs.PieceStyle)), func(_ string, i int) {
		if i < 0 || styles[i] == a.prefs.PieceStyle {
			return
		}
		a.prefs.PieceStyle = styles[i]
		a.savePrefs()
		a.render()
	})

	a.Form.AddButton(ui.T(lang, "btnReset"), func() {
		a.savePrefs()
		a.newGame()
		a.App.SetFocus(a.Board)
	})
	a.Form.AddButton(ui.T(lang, "btnQuit"), a.App.Stop)
}

func (a *App) savePrefs() {
	if a.prefsPath == "" {
		return
	}
	if err := ui.SavePrefs(a.prefsPath, a.prefs); err != nil {
		log.Printf("saving prefs: %v", err)
	}
}
