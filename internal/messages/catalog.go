// Package messages holds the static bilingual reply catalog and renders
// templates from it. The catalog is process-wide immutable state: it is
// fully enumerated at build time and validated once at startup, so a lookup
// miss at request time is a programming error, not a runtime condition.
package messages

import (
	"fmt"
	"strings"

	"github.com/ibarberis/hablabot/internal/lang"
)

// ID names one canned reply in the catalog.
type ID string

const (
	Welcome         ID = "welcome"
	Help            ID = "help"
	LanguageChanged ID = "language_changed"
	Info            ID = "info"
	Contact         ID = "contact"
	Products        ID = "products"
	Support         ID = "support"
	Stats           ID = "stats"
	Unknown         ID = "unknown"
)

// All lists every message ID used by the bot's actions. Validate checks the
// catalog against this list for both languages.
var All = []ID{Welcome, Help, LanguageChanged, Info, Contact, Products, Support, Stats, Unknown}

// Template is one localized reply. Markdown records whether the transport
// should render the light markup the text carries; the reference catalog
// sets it per message, not uniformly (language_changed and unknown are sent
// plain).
type Template struct {
	Text     string
	Markdown bool
}

// ErrorReply is the fixed bilingual apology used when handling an update
// fails. It is intentionally independent of the user's stored language,
// since the failure may sit in the language-resolution path itself.
const ErrorReply = "❌ Ha ocurrido un error. Por favor, inténtalo de nuevo.\n" +
	"❌ An error occurred. Please try again."

var catalog = map[lang.Language]map[ID]Template{
	lang.Spanish: {
		Welcome: {
			Text:     "¡Hola {name}! 👋\n\nSoy tu bot asistente bilingüe. Puedo ayudarte con:\n\n🔹 Información general\n🔹 Soporte técnico\n🔹 Cambiar idioma\n🔹 Y mucho más!\n\nUsa los botones de abajo o escribe /help para ver todos los comandos.",
			Markdown: true,
		},
		Help: {
			Text:     "📋 *COMANDOS DISPONIBLES:*\n\n/start - Iniciar bot\n/help - Mostrar ayuda\n/idioma - Cambiar idioma\n/info - Información del bot\n/contacto - Datos de contacto\n/productos - Nuestros servicios\n/soporte - Obtener soporte\n/stats - Estadísticas\n\n¿En qué puedo ayudarte?",
			Markdown: true,
		},
		LanguageChanged: {
			Text: "✅ Idioma cambiado a Español\n\n¡Perfecto! Ahora te responderé en español.",
		},
		Info: {
			Text:     "🤖 *INFORMACIÓN DEL BOT*\n\nVersión: 2.0\nDesarrollado por: Ignacio Barberis\nSoporte: Español e Inglés\nFunciones: Más de 10 comandos\n\n🔧 Bot profesional para empresas",
			Markdown: true,
		},
		Contact: {
			Text:     "📞 *CONTACTO*\n\n📧 Email: tu@email.com\n💼 LinkedIn: /in/ignacio-barberis\n🐱 GitHub: @IgnacioBarberis\n🌐 Web: tu-portfolio.com\n\n⚡ Respuesta en menos de 24h",
			Markdown: true,
		},
		Products: {
			Text:     "💼 *NUESTROS SERVICIOS*\n\n🤖 Bots personalizados\n🕷️ Web scraping\n📧 Automatización emails\n📊 Dashboards con IA\n💰 Apps financieras\n\n💵 Desde $50 - ¡Cotiza gratis!",
			Markdown: true,
		},
		Support: {
			Text:     "🆘 *SOPORTE TÉCNICO*\n\nDescribe tu consulta y te ayudaré:\n\n1️⃣ Problemas técnicos\n2️⃣ Dudas sobre servicios\n3️⃣ Cotizaciones\n4️⃣ Personalización\n\nEscribe tu consulta...",
			Markdown: true,
		},
		Stats: {
			Text:     "📊 *ESTADÍSTICAS*\n\nBot activo desde: {date}\nUsuarios registrados: {users}\nIdioma actual: Español\nÚltima actualización: {update}\n\n✅ Sistema funcionando correctamente",
			Markdown: true,
		},
		Unknown: {
			Text: "❓ No entiendo ese comando.\n\nUsa /help para ver comandos disponibles o utiliza los botones del menú.",
		},
	},
	lang.English: {
		Welcome: {
			Text:     "Hello {name}! 👋\n\nI'm your bilingual assistant bot. I can help you with:\n\n🔹 General information\n🔹 Technical support\n🔹 Language switching\n🔹 And much more!\n\nUse the buttons below or type /help to see all commands.",
			Markdown: true,
		},
		Help: {
			Text:     "📋 *AVAILABLE COMMANDS:*\n\n/start - Start bot\n/help - Show help\n/idioma - Change language\n/info - Bot information\n/contacto - Contact info\n/productos - Our services\n/soporte - Get support\n/stats - Statistics\n\nHow can I help you?",
			Markdown: true,
		},
		LanguageChanged: {
			Text: "✅ Language changed to English\n\nPerfect! I'll now respond in English.",
		},
		Info: {
			Text:     "🤖 *BOT INFORMATION*\n\nVersion: 2.0\nDeveloped by: Ignacio Barberis\nSupport: Spanish & English\nFeatures: 10+ commands\n\n🔧 Professional bot for businesses",
			Markdown: true,
		},
		Contact: {
			Text:     "📞 *CONTACT*\n\n📧 Email: tu@email.com\n💼 LinkedIn: /in/ignacio-barberis\n🐱 GitHub: @IgnacioBarberis\n🌐 Web: tu-portfolio.com\n\n⚡ Response in less than 24h",
			Markdown: true,
		},
		Products: {
			Text:     "💼 *OUR SERVICES*\n\n🤖 Custom bots\n🕷️ Web scraping\n📧 Email automation\n📊 AI dashboards\n💰 Financial apps\n\n💵 From $50 - Free quote!",
			Markdown: true,
		},
		Support: {
			Text:     "🆘 *TECHNICAL SUPPORT*\n\nDescribe your inquiry and I'll help:\n\n1️⃣ Technical issues\n2️⃣ Service questions\n3️⃣ Quotes\n4️⃣ Customization\n\nWrite your inquiry...",
			Markdown: true,
		},
		Stats: {
			Text:     "📊 *STATISTICS*\n\nBot active since: {date}\nRegistered users: {users}\nCurrent language: English\nLast update: {update}\n\n✅ System working correctly",
			Markdown: true,
		},
		Unknown: {
			Text: "❓ I don't understand that command.\n\nUse /help to see available commands or use the menu buttons.",
		},
	},
}

// Render looks up the template for (language, id), substitutes the named
// {placeholder} variables when vars is non-empty, and returns the final
// text together with its Markdown hint. The catalog is validated at
// startup, so a miss here means Validate was skipped; the unknown template
// text is returned as a last resort to keep the dispatch loop alive.
func Render(l lang.Language, id ID, vars map[string]string) (string, bool) {
	tmpl, ok := catalog[l][id]
	if !ok {
		return catalog[lang.Default][Unknown].Text, false
	}

	text := tmpl.Text
	if len(vars) > 0 {
		pairs := make([]string, 0, len(vars)*2)
		for k, v := range vars {
			pairs = append(pairs, "{"+k+"}", v)
		}
		text = strings.NewReplacer(pairs...).Replace(text)
	}
	return text, tmpl.Markdown
}

// Validate checks that every message ID has a non-empty template for both
// supported languages. It must run at startup; a failure is a build-time
// defect in the catalog, not a runtime condition.
func Validate() error {
	for _, l := range []lang.Language{lang.Spanish, lang.English} {
		table, ok := catalog[l]
		if !ok {
			return fmt.Errorf("message catalog missing language %q", l)
		}
		for _, id := range All {
			tmpl, ok := table[id]
			if !ok {
				return fmt.Errorf("message catalog missing template for (%s, %s)", l, id)
			}
			if tmpl.Text == "" {
				return fmt.Errorf("message catalog has empty template for (%s, %s)", l, id)
			}
		}
	}
	return nil
}
