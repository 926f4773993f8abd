// Package lang defines the two languages supported by the bot and the
// operations over them. Spanish is the default for users without a stored
// preference.
package lang

import "strings"

// Language identifies one of the two supported reply languages.
type Language string

const (
	Spanish Language = "spanish"
	English Language = "english"
)

// Default is the language assumed for users without a stored profile.
const Default = Spanish

// startArgMarker selects English when present in the /start arguments.
const startArgMarker = "english"

// Toggle returns the complement of l. Exactly two languages exist, so the
// result is always the other one; unrecognized values map to English since
// only Spanish toggles away from the default.
func (l Language) Toggle() Language {
	if l == Spanish {
		return English
	}
	return Spanish
}

// String returns the stored representation of l.
func (l Language) String() string {
	return string(l)
}

// Parse converts a stored value into a Language. The second return value
// reports whether the input named a supported language.
func Parse(s string) (Language, bool) {
	switch Language(s) {
	case Spanish:
		return Spanish, true
	case English:
		return English, true
	}
	return Default, false
}

// FromStartArgs derives the initial language from the raw argument text of
// a /start command. The arguments are lower-cased and scanned for the
// English marker token; absence selects Spanish.
func FromStartArgs(args string) Language {
	if strings.Contains(strings.ToLower(args), startArgMarker) {
		return English
	}
	return Spanish
}
