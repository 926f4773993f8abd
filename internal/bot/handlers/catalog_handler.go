package handlers

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/ibarberis/hablabot/internal/messages"
)

// NewCatalogHandler returns a handler that answers with a fixed catalog
// message in the user's resolved language. It backs /help, /info,
// /contacto, /productos and /soporte, and their menu buttons. These replies
// keep whatever keyboard the chat already shows.
func NewCatalogHandler(deps HandlerDeps, id messages.ID) bot.HandlerFunc {
	return catalogHandler{deps: deps, id: id}.Handle
}

type catalogHandler struct {
	deps HandlerDeps
	id   messages.ID
}

func (h catalogHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", string(h.id))

	if update.Message == nil || update.Message.From == nil {
		log.WarnContext(ctx, "Catalog handler received update with nil message or sender", "update_id", update.ID)
		return
	}

	log.InfoContext(ctx, "Handling catalog reply", "chat_id", update.Message.Chat.ID, "user_id", update.Message.From.ID)

	sendReply(ctx, b, log, update.Message.Chat.ID, h.build(ctx, update.Message.From.ID))
}

// build resolves the user's language and renders the canned message.
// Resolution never fails, so neither does the build.
func (h catalogHandler) build(ctx context.Context, userID int64) reply {
	l := h.deps.Users.Resolve(ctx, userID)
	text, markdown := messages.Render(l, h.id, nil)
	return reply{Text: text, Markdown: markdown}
}
