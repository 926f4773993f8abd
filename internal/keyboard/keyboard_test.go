package keyboard_test

import (
	"testing"

	"github.com/ibarberis/hablabot/internal/keyboard"
	"github.com/ibarberis/hablabot/internal/lang"
)

func TestBuildShape(t *testing.T) {
	t.Parallel()

	for _, l := range []lang.Language{lang.Spanish, lang.English} {
		markup := keyboard.Build(l)
		if !markup.ResizeKeyboard {
			t.Errorf("Build(%s) should request a resized keyboard", l)
		}
		if len(markup.Keyboard) != 3 {
			t.Fatalf("Build(%s) rows = %d, want 3", l, len(markup.Keyboard))
		}
		for i, row := range markup.Keyboard {
			if len(row) != 2 {
				t.Errorf("Build(%s) row %d has %d buttons, want 2", l, i, len(row))
			}
			for j, button := range row {
				if button.Text == "" {
					t.Errorf("Build(%s) button (%d,%d) has empty text", l, i, j)
				}
			}
		}
	}
}

func TestLabelsDistinct(t *testing.T) {
	t.Parallel()

	for _, l := range []lang.Language{lang.Spanish, lang.English} {
		seen := make(map[string]bool)
		for _, row := range keyboard.Labels(l) {
			for _, label := range row {
				if seen[label] {
					t.Errorf("Labels(%s) repeats %q", l, label)
				}
				seen[label] = true
			}
		}
		if len(seen) != 6 {
			t.Errorf("Labels(%s) has %d distinct labels, want 6", l, len(seen))
		}
	}
}

func TestActionFor(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		text   string
		want   keyboard.Action
		wantOK bool
	}{
		{name: "info spanish", text: "ℹ️ Información", want: keyboard.ActionInfo, wantOK: true},
		{name: "info english", text: "ℹ️ Information", want: keyboard.ActionInfo, wantOK: true},
		{name: "contact spanish", text: "📞 Contacto", want: keyboard.ActionContact, wantOK: true},
		{name: "contact english", text: "📞 Contact", want: keyboard.ActionContact, wantOK: true},
		{name: "products spanish", text: "💼 Servicios", want: keyboard.ActionProducts, wantOK: true},
		{name: "products english", text: "💼 Services", want: keyboard.ActionProducts, wantOK: true},
		{name: "support spanish", text: "🆘 Soporte", want: keyboard.ActionSupport, wantOK: true},
		{name: "support english", text: "🆘 Support", want: keyboard.ActionSupport, wantOK: true},
		{name: "toggle spanish", text: "🌐 Cambiar idioma", want: keyboard.ActionToggleLanguage, wantOK: true},
		{name: "toggle english", text: "🌐 Change language", want: keyboard.ActionToggleLanguage, wantOK: true},
		{name: "stats spanish", text: "📊 Estadísticas", want: keyboard.ActionStats, wantOK: true},
		{name: "stats english", text: "📊 Statistics", want: keyboard.ActionStats, wantOK: true},
		{name: "free text", text: "hola", wantOK: false},
		{name: "label without emoji", text: "Contacto", wantOK: false},
		{name: "label with padding", text: " 📞 Contacto ", wantOK: false},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, ok := keyboard.ActionFor(tc.text)
			if ok != tc.wantOK {
				t.Fatalf("ActionFor(%q) ok = %v, want %v", tc.text, ok, tc.wantOK)
			}
			if ok && got != tc.want {
				t.Errorf("ActionFor(%q) = %s, want %s", tc.text, got, tc.want)
			}
		})
	}
}

// Every built button must resolve back to an action; the toggle action
// keeps its position across languages so muscle memory survives a switch.
func TestGridActionBinding(t *testing.T) {
	t.Parallel()

	for _, l := range []lang.Language{lang.Spanish, lang.English} {
		for i, row := range keyboard.Labels(l) {
			for j, label := range row {
				if _, ok := keyboard.ActionFor(label); !ok {
					t.Errorf("label %q at (%d,%d) for %s resolves to no action", label, i, j, l)
				}
			}
		}

		toggleLabel := keyboard.Labels(l)[2][0]
		if a, _ := keyboard.ActionFor(toggleLabel); a != keyboard.ActionToggleLanguage {
			t.Errorf("bottom-left button for %s is %s, want %s", l, a, keyboard.ActionToggleLanguage)
		}
	}
}
