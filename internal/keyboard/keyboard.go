// Package keyboard builds the language-specific reply keyboard and maps
// button labels back to the actions they trigger.
package keyboard

import (
	"github.com/go-telegram/bot/models"

	"github.com/ibarberis/hablabot/internal/lang"
)

// Action identifies the behavior bound to a menu button.
type Action string

const (
	ActionInfo           Action = "info"
	ActionContact        Action = "contact"
	ActionProducts       Action = "products"
	ActionSupport        Action = "support"
	ActionToggleLanguage Action = "toggle_language"
	ActionStats          Action = "stats"
)

// labels holds the 3x2 button grid per language. The grid shape is
// invariant across languages; only the text changes.
var labels = map[lang.Language][][]string{
	lang.Spanish: {
		{"ℹ️ Información", "📞 Contacto"},
		{"💼 Servicios", "🆘 Soporte"},
		{"🌐 Cambiar idioma", "📊 Estadísticas"},
	},
	lang.English: {
		{"ℹ️ Information", "📞 Contact"},
		{"💼 Services", "🆘 Support"},
		{"🌐 Change language", "📊 Statistics"},
	},
}

// actionGrid mirrors the label grid positionally, binding each button to
// its action regardless of language.
var actionGrid = [][]Action{
	{ActionInfo, ActionContact},
	{ActionProducts, ActionSupport},
	{ActionToggleLanguage, ActionStats},
}

// actions is the exact-match label lookup table, duplicated per language.
var actions = func() map[string]Action {
	m := make(map[string]Action)
	for _, grid := range labels {
		for i, row := range grid {
			for j, label := range row {
				m[label] = actionGrid[i][j]
			}
		}
	}
	return m
}()

// Build returns the main reply keyboard for l: three rows of two buttons,
// resized to fit the chat. Pure, no failure path.
func Build(l lang.Language) *models.ReplyKeyboardMarkup {
	grid := labels[l]
	rows := make([][]models.KeyboardButton, len(grid))
	for i, row := range grid {
		buttons := make([]models.KeyboardButton, len(row))
		for j, label := range row {
			buttons[j] = models.KeyboardButton{Text: label}
		}
		rows[i] = buttons
	}
	return &models.ReplyKeyboardMarkup{
		Keyboard:       rows,
		ResizeKeyboard: true,
	}
}

// Labels returns the button grid for l. Exposed for shape checks in tests.
func Labels(l lang.Language) [][]string {
	return labels[l]
}

// ActionFor resolves free text to a button action by exact string match.
// A lookup miss is authoritative: the text is not a menu button.
func ActionFor(text string) (Action, bool) {
	a, ok := actions[text]
	return a, ok
}
