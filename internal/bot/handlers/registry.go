package handlers

import (
	tgbot "github.com/go-telegram/bot"

	"github.com/ibarberis/hablabot/internal/messages"
)

// RegisteredHandler represents a command handler with its registration
// pattern and middleware. It encapsulates all information needed to
// register and document a command.
type RegisteredHandler struct {
	HandlerType tgbot.HandlerType
	Pattern     string
	Handler     tgbot.HandlerFunc
	Middleware  []tgbot.Middleware
	MatchType   tgbot.MatchType
	Description string
}

// RegisterAllCommands initializes and returns a map of all available bot
// commands. Command names match the reference catalog exactly and are
// matched case-sensitively at the start of the message.
func RegisterAllCommands(deps HandlerDeps) map[string]RegisteredHandler {
	handlers := make(map[string]RegisteredHandler)

	handlers["/start"] = RegisteredHandler{
		HandlerType: tgbot.HandlerTypeMessageText,
		Pattern:     "start",
		Handler:     NewStartHandler(deps),
		MatchType:   tgbot.MatchTypeCommandStartOnly,
		Description: "Iniciar bot / Start bot",
	}
	handlers["/help"] = RegisteredHandler{
		HandlerType: tgbot.HandlerTypeMessageText,
		Pattern:     "help",
		Handler:     NewCatalogHandler(deps, messages.Help),
		MatchType:   tgbot.MatchTypeCommandStartOnly,
		Description: "Mostrar ayuda / Show help",
	}
	handlers["/idioma"] = RegisteredHandler{
		HandlerType: tgbot.HandlerTypeMessageText,
		Pattern:     "idioma",
		Handler:     NewLanguageHandler(deps),
		MatchType:   tgbot.MatchTypeCommandStartOnly,
		Description: "Cambiar idioma / Change language",
	}
	handlers["/info"] = RegisteredHandler{
		HandlerType: tgbot.HandlerTypeMessageText,
		Pattern:     "info",
		Handler:     NewCatalogHandler(deps, messages.Info),
		MatchType:   tgbot.MatchTypeCommandStartOnly,
		Description: "Información del bot / Bot information",
	}
	handlers["/contacto"] = RegisteredHandler{
		HandlerType: tgbot.HandlerTypeMessageText,
		Pattern:     "contacto",
		Handler:     NewCatalogHandler(deps, messages.Contact),
		MatchType:   tgbot.MatchTypeCommandStartOnly,
		Description: "Datos de contacto / Contact info",
	}
	handlers["/productos"] = RegisteredHandler{
		HandlerType: tgbot.HandlerTypeMessageText,
		Pattern:     "productos",
		Handler:     NewCatalogHandler(deps, messages.Products),
		MatchType:   tgbot.MatchTypeCommandStartOnly,
		Description: "Nuestros servicios / Our services",
	}
	handlers["/soporte"] = RegisteredHandler{
		HandlerType: tgbot.HandlerTypeMessageText,
		Pattern:     "soporte",
		Handler:     NewCatalogHandler(deps, messages.Support),
		MatchType:   tgbot.MatchTypeCommandStartOnly,
		Description: "Obtener soporte / Get support",
	}
	handlers["/stats"] = RegisteredHandler{
		HandlerType: tgbot.HandlerTypeMessageText,
		Pattern:     "stats",
		Handler:     NewStatsHandler(deps),
		MatchType:   tgbot.MatchTypeCommandStartOnly,
		Description: "Estadísticas / Statistics",
	}

	return handlers
}
