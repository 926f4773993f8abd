package handlers

import (
	"log/slog"
	"time"

	"github.com/ibarberis/hablabot/internal/config"
	"github.com/ibarberis/hablabot/internal/users"
)

// HandlerDeps provides dependencies for Telegram command handlers.
type HandlerDeps struct {
	Logger    *slog.Logger
	Config    *config.Config
	Users     *users.Service
	StartedAt time.Time
}
