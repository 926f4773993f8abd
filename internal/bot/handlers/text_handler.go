package handlers

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/ibarberis/hablabot/internal/keyboard"
	"github.com/ibarberis/hablabot/internal/messages"
)

// NewTextHandler returns the default handler for updates no command
// matched. Free text is looked up byte-for-byte in the bilingual
// button-label table and dispatched to the bound action; anything else is
// answered with the unknown template in the user's stored language. An
// exact-lookup miss is a normal terminal classification, not an error, and
// causes no store mutation.
func NewTextHandler(deps HandlerDeps) bot.HandlerFunc {
	h := textHandler{deps: deps, actions: actionHandlers(deps)}
	return h.Handle
}

// actionHandlers binds every menu button action to its handler. The table
// must stay total over the keyboard's actions.
func actionHandlers(deps HandlerDeps) map[keyboard.Action]bot.HandlerFunc {
	return map[keyboard.Action]bot.HandlerFunc{
		keyboard.ActionInfo:           NewCatalogHandler(deps, messages.Info),
		keyboard.ActionContact:        NewCatalogHandler(deps, messages.Contact),
		keyboard.ActionProducts:       NewCatalogHandler(deps, messages.Products),
		keyboard.ActionSupport:        NewCatalogHandler(deps, messages.Support),
		keyboard.ActionToggleLanguage: NewLanguageHandler(deps),
		keyboard.ActionStats:          NewStatsHandler(deps),
	}
}

type textHandler struct {
	deps    HandlerDeps
	actions map[keyboard.Action]bot.HandlerFunc
}

func (h textHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "text")

	if update.Message == nil || update.Message.From == nil || update.Message.Text == "" {
		log.DebugContext(ctx, "Ignoring update without message text", "update_id", update.ID)
		return
	}

	if action, ok := keyboard.ActionFor(update.Message.Text); ok {
		log.InfoContext(ctx, "Dispatching menu button",
			"chat_id", update.Message.Chat.ID,
			"user_id", update.Message.From.ID,
			"action", action)
		h.actions[action](ctx, b, update)
		return
	}

	log.InfoContext(ctx, "Unrecognized input",
		"chat_id", update.Message.Chat.ID,
		"user_id", update.Message.From.ID)

	l := h.deps.Users.Resolve(ctx, update.Message.From.ID)
	text, markdown := messages.Render(l, messages.Unknown, nil)
	sendReply(ctx, b, log, update.Message.Chat.ID, reply{Text: text, Markdown: markdown})
}
