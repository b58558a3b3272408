package display

import "strings"

// Labels holds the user-facing strings of one language
type Labels struct {
	Focus      string
	Break      string
	Paused     string
	Help       string
	Prompt     string
	Saved      string
	SaveFailed string
	Goodbye    string
}

var languages = map[string]Labels{
	"en": {
		Focus:      "Focus",
		Break:      "Break",
		Paused:     "paused",
		Help:       "Keys: [s] start  [p] pause/resume  [l] save log  [q] quit",
		Prompt:     "What are you working on? ",
		Saved:      "Log saved: %s",
		SaveFailed: "Failed to save log: %v",
		Goodbye:    "Finished.",
	},
	"ja": {
		Focus:      "集中",
		Break:      "休憩",
		Paused:     "一時停止中",
		Help:       "操作: [s]開始  [p]一時停止/再開  [l]ログ保存  [q]終了",
		Prompt:     "作業名を入力してください: ",
		Saved:      "ログを保存しました: %s",
		SaveFailed: "ログの保存に失敗しました: %v",
		Goodbye:    "終了しました。",
	},
}

// DefaultLanguage is used when the configured language is unknown
const DefaultLanguage = "en"

// LabelsFor returns the labels for lang and whether lang is supported
func LabelsFor(lang string) (Labels, bool) {
	l, ok := languages[strings.ToLower(lang)]
	if !ok {
		return languages[DefaultLanguage], false
	}
	return l, true
}

// Languages lists the supported language codes
func Languages() []string {
	return []string{"en", "ja"}
}
