package messages_test

import (
	"strings"
	"testing"

	"github.com/ibarberis/hablabot/internal/lang"
	"github.com/ibarberis/hablabot/internal/messages"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	if err := messages.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
}

func TestRenderCompleteness(t *testing.T) {
	t.Parallel()

	for _, l := range []lang.Language{lang.Spanish, lang.English} {
		for _, id := range messages.All {
			text, _ := messages.Render(l, id, nil)
			if text == "" {
				t.Errorf("Render(%s, %s) returned empty text", l, id)
			}
		}
	}
}

func TestRenderSubstitution(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		language lang.Language
		id       messages.ID
		vars     map[string]string
		contains []string
	}{
		{
			name:     "welcome name spanish",
			language: lang.Spanish,
			id:       messages.Welcome,
			vars:     map[string]string{"name": "Juan"},
			contains: []string{"¡Hola Juan!"},
		},
		{
			name:     "welcome name english",
			language: lang.English,
			id:       messages.Welcome,
			vars:     map[string]string{"name": "Jane"},
			contains: []string{"Hello Jane!"},
		},
		{
			name:     "stats variables",
			language: lang.English,
			id:       messages.Stats,
			vars:     map[string]string{"date": "Julio 2025", "users": "7", "update": "01/09/2026"},
			contains: []string{"Bot active since: Julio 2025", "Registered users: 7", "Last update: 01/09/2026"},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			text, _ := messages.Render(tc.language, tc.id, tc.vars)
			for _, want := range tc.contains {
				if !strings.Contains(text, want) {
					t.Errorf("Render(%s, %s) = %q, missing %q", tc.language, tc.id, text, want)
				}
			}
			if strings.Contains(text, "{") {
				t.Errorf("Render(%s, %s) left an unsubstituted placeholder: %q", tc.language, tc.id, text)
			}
		})
	}
}

// The markup hint is a per-message attribute: the language-change
// confirmation and the unknown reply are sent plain, everything else
// carries Markdown.
func TestRenderMarkdownHint(t *testing.T) {
	t.Parallel()

	plain := map[messages.ID]bool{
		messages.LanguageChanged: true,
		messages.Unknown:         true,
	}

	for _, l := range []lang.Language{lang.Spanish, lang.English} {
		for _, id := range messages.All {
			_, markdown := messages.Render(l, id, nil)
			if want := !plain[id]; markdown != want {
				t.Errorf("Render(%s, %s) markdown hint = %v, want %v", l, id, markdown, want)
			}
		}
	}
}
