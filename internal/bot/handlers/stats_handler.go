package handlers

import (
	"context"
	"strconv"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/ibarberis/hablabot/internal/messages"
)

// NewStatsHandler returns a handler for the /stats command and the
// statistics menu button.
func NewStatsHandler(deps HandlerDeps) bot.HandlerFunc {
	return statsHandler{deps}.Handle
}

// statsHandler renders usage statistics. The registered-user count is read
// from the store at render time, never cached, and the action works for
// users without a stored profile.
type statsHandler struct {
	deps HandlerDeps
}

func (h statsHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "stats")

	if update.Message == nil || update.Message.From == nil {
		log.WarnContext(ctx, "Stats handler received update with nil message or sender", "update_id", update.ID)
		return
	}

	log.InfoContext(ctx, "Handling /stats command", "chat_id", update.Message.Chat.ID, "user_id", update.Message.From.ID)

	r, err := h.build(ctx, update.Message.From.ID)
	if err != nil {
		log.ErrorContext(ctx, "Failed to build stats reply", "error", err, "user_id", update.Message.From.ID)
		sendErrorReply(ctx, b, log, update)
		return
	}

	sendReply(ctx, b, log, update.Message.Chat.ID, r)
}

func (h statsHandler) build(ctx context.Context, userID int64) (reply, error) {
	l := h.deps.Users.Resolve(ctx, userID)

	count, err := h.deps.Users.CountUsers(ctx)
	if err != nil {
		return reply{}, err
	}

	text, markdown := messages.Render(l, messages.Stats, map[string]string{
		"date":   h.deps.Config.Stats.ActiveSince,
		"users":  strconv.FormatInt(count, 10),
		"update": h.deps.StartedAt.Format("02/01/2006"),
	})
	return reply{Text: text, Markdown: markdown}, nil
}
