// Package handlers contains Telegram bot command and message handlers,
// along with their registration logic. Each handler builds a reply from the
// message catalog and sends it; reply construction is separated from
// sending so the dispatch logic is testable without the transport.
package handlers

import (
	"context"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/ibarberis/hablabot/internal/messages"
)

// reply is one outgoing message: final text, an optional reply keyboard,
// and the light-markup hint the transport needs to render bold/italic
// markers.
type reply struct {
	Text     string
	Markdown bool
	Keyboard *models.ReplyKeyboardMarkup
}

// sendReply delivers r to chatID. Delivery failure is logged and not
// retried; it is the transport's concern from here on.
func sendReply(ctx context.Context, b *bot.Bot, log *slog.Logger, chatID int64, r reply) {
	params := &bot.SendMessageParams{
		ChatID: chatID,
		Text:   r.Text,
	}
	if r.Markdown {
		params.ParseMode = models.ParseModeMarkdown
	}
	if r.Keyboard != nil {
		params.ReplyMarkup = r.Keyboard
	}

	if _, err := b.SendMessage(ctx, params); err != nil {
		log.ErrorContext(ctx, "Failed to send reply", "error", err, "chat_id", chatID)
	}
}

// sendErrorReply sends the fixed bilingual apology for a failed action.
// The apology deliberately ignores the user's stored language, since the
// failure may be in the language-resolution path itself. Guarded against a
// missing originating message so it can never fail destructively.
func sendErrorReply(ctx context.Context, b *bot.Bot, log *slog.Logger, update *models.Update) {
	if update == nil || update.Message == nil {
		log.WarnContext(ctx, "Cannot send error reply, no originating message")
		return
	}
	sendReply(ctx, b, log, update.Message.Chat.ID, reply{Text: messages.ErrorReply})
}

// placeholderFirstName substitutes for an absent Telegram first name, both
// in the stored profile and in {name} template substitution.
const placeholderFirstName = "Usuario"

// senderOf extracts the originating user's identity from a message update,
// applying the first-name placeholder.
func senderOf(msg *models.Message) (userID int64, username, firstName string) {
	userID = msg.From.ID
	username = msg.From.Username
	firstName = msg.From.FirstName
	if firstName == "" {
		firstName = placeholderFirstName
	}
	return userID, username, firstName
}
