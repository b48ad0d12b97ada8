package ui

import "sort"

type Lang string

const (
	LangZH Lang = "zh"
	LangEN Lang = "en"

	DefaultLang = LangEN
)

var messages = map[Lang]map[string]string{
	LangZH: {
		"langLabel":       "语言",
		"title":           "国际象棋",
		"modeLabel":       "模式：",
		"modePvp":         "双人对战",
		"modeAi":          "人机对战",
		"sideLabel":       "执棋：",
		"sideWhite":       "白方（先手）",
		"sideBlack":       "黑方（后手）",
		"difficultyLabel": "难度：",
		"diffEasy":        "简单",
		"diffMedium":      "中等",
		"diffHard":        "困难",
		"btnReset":        "重新开始",
		"btnQuit":         "退出",
		"gameOver":        "游戏结束",
		"whiteWins":       "白方胜（将死）",
		"blackWins":       "黑方胜（将死）",
		"draw":            "和棋",
		"whiteTurn":       "白方回合",
		"blackTurn":       "黑方回合",
		"check":           "将军！",
		"aiThinking":      "（电脑思考中…）",
		"themeBoard":      "棋盘",
		"themePieces":     "棋子",
		"boardRed":        "红",
		"boardGreen":      "绿",
		"boardBlue":       "蓝",
		"boardYellow":     "黄",
		"pieceSymbols":    "符号",
		"pieceLetters":    "字母",
		"lastMove":        "上一步：",
		"langName":        "中文",
		"musicOn":         "背景音乐 开",
		"musicOff":        "背景音乐 关",
		"musicVolume":     "音量",
		"musicTrack":      "曲目",
		"trackSpring":     "春",
		"trackSummer":     "夏",
		"trackAutumn":     "秋",
		"trackWinter":     "冬",
	},
	LangEN: {
		"langLabel":       "Language",
		"title":           "Chess",
		"modeLabel":       "Mode: ",
		"modePvp":         "Two Player",
		"modeAi":          "vs Computer",
		"sideLabel":       "Play as: ",
		"sideWhite":       "White (first)",
		"sideBlack":       "Black (second)",
		"difficultyLabel": "Difficulty: ",
		"diffEasy":        "Easy",
		"diffMedium":      "Medium",
		"diffHard":        "Hard",
		"btnReset":        "New Game",
		"btnQuit":         "Quit",
		"gameOver":        "Game Over",
		"whiteWins":       "White wins (checkmate)",
		"blackWins":       "Black wins (checkmate)",
		"draw":            "Draw",
		"whiteTurn":       "White's turn",
		"blackTurn":       "Black's turn",
		"check":           "Check!",
		"aiThinking":      " (Thinking...)",
		"themeBoard":      "Board",
		"themePieces":     "Pieces",
		"boardRed":        "Red",
		"boardGreen":      "Green",
		"boardBlue":       "Blue",
		"boardYellow":     "Yellow",
		"pieceSymbols":    "Symbols",
		"pieceLetters":    "Letters",
		"lastMove":        "Last move: ",
		"langName":        "English",
		"musicOn":         "Music on",
		"musicOff":        "Music off",
		"musicVolume":     "Volume",
		"musicTrack":      "Track",
		"trackSpring":     "Spring",
		"trackSummer":     "Summer",
		"trackAutumn":     "Autumn",
		"trackWinter":     "Winter",
	},
}

// T translates key. Unknown languages use DefaultLang, unknown keys are
// returned as is.
func T(lang Lang, key string) string {
	table, ok := messages[lang]
	if !ok {
		table = messages[DefaultLang]
	}
	if s, ok := table[key]; ok {
		return s
	}
	return key
}

// Messages returns a copy of lang's table.
func Messages(lang Lang) map[string]string {
	table, ok := messages[lang]
	if !ok {
		table = messages[DefaultLang]
	}
	out := make(map[string]string, len(table))
	for k, v := range table {
		out[k] = v
	}
	return out
}

func ParseLang(s string) (Lang, bool) {
	if _, ok := messages[Lang(s)]; ok {
		return Lang(s), true
	}
	return DefaultLang, false
}

func Langs() []Lang {
	out := make([]Lang, 0, len(messages))
	for l := range messages {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
