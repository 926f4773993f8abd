package handlers

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/ibarberis/hablabot/internal/keyboard"
	"github.com/ibarberis/hablabot/internal/messages"
)

// NewLanguageHandler returns a handler for the /idioma command and the
// change-language menu button.
func NewLanguageHandler(deps HandlerDeps) bot.HandlerFunc {
	return languageHandler{deps}.Handle
}

// languageHandler flips the user's stored language and confirms in the new
// language, with the matching keyboard.
type languageHandler struct {
	deps HandlerDeps
}

func (h languageHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "language")

	if update.Message == nil || update.Message.From == nil {
		log.WarnContext(ctx, "Language handler received update with nil message or sender", "update_id", update.ID)
		return
	}

	userID, username, firstName := senderOf(update.Message)
	log.InfoContext(ctx, "Handling language toggle", "chat_id", update.Message.Chat.ID, "user_id", userID)

	r, err := h.build(ctx, userID, username, firstName)
	if err != nil {
		log.ErrorContext(ctx, "Failed to toggle language", "error", err, "user_id", userID)
		sendErrorReply(ctx, b, log, update)
		return
	}

	sendReply(ctx, b, log, update.Message.Chat.ID, r)
}

// build toggles the stored language and renders the confirmation in the
// language that was just selected.
func (h languageHandler) build(ctx context.Context, userID int64, username, firstName string) (reply, error) {
	next, err := h.deps.Users.Toggle(ctx, userID, username, firstName)
	if err != nil {
		return reply{}, err
	}

	text, markdown := messages.Render(next, messages.LanguageChanged, nil)
	return reply{
		Text:     text,
		Markdown: markdown,
		Keyboard: keyboard.Build(next),
	}, nil
}
