package handlers

import (
	"context"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/ibarberis/hablabot/internal/keyboard"
	"github.com/ibarberis/hablabot/internal/lang"
	"github.com/ibarberis/hablabot/internal/messages"
)

// NewStartHandler returns a handler for the /start command.
func NewStartHandler(deps HandlerDeps) bot.HandlerFunc {
	return startHandler{deps}.Handle
}

// startHandler bootstraps the user's profile and sends the welcome reply
// with the language-appropriate keyboard.
type startHandler struct {
	deps HandlerDeps
}

func (h startHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "start")

	if update.Message == nil || update.Message.From == nil {
		log.WarnContext(ctx, "Start handler received update with nil message or sender", "update_id", update.ID)
		return
	}

	userID, username, firstName := senderOf(update.Message)
	args := strings.TrimSpace(strings.TrimPrefix(update.Message.Text, "/start"))

	log.InfoContext(ctx, "Handling /start command", "chat_id", update.Message.Chat.ID, "user_id", userID)

	r, err := h.build(ctx, userID, username, firstName, args)
	if err != nil {
		log.ErrorContext(ctx, "Failed to bootstrap user", "error", err, "user_id", userID)
		sendErrorReply(ctx, b, log, update)
		return
	}

	sendReply(ctx, b, log, update.Message.Chat.ID, r)
}

// build derives the requested language from the command arguments, upserts
// the profile, and renders the welcome reply.
func (h startHandler) build(ctx context.Context, userID int64, username, firstName, args string) (reply, error) {
	requested := lang.FromStartArgs(args)

	if err := h.deps.Users.Bootstrap(ctx, userID, username, firstName, requested); err != nil {
		return reply{}, err
	}

	text, markdown := messages.Render(requested, messages.Welcome, map[string]string{"name": firstName})
	return reply{
		Text:     text,
		Markdown: markdown,
		Keyboard: keyboard.Build(requested),
	}, nil
}
