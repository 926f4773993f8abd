// Package users implements the per-user language state: resolving the
// active language from the store and mutating it on /start and toggle.
package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/ibarberis/hablabot/internal/database"
	"github.com/ibarberis/hablabot/internal/lang"
)

// Service reads and mutates per-user language state through the Store.
type Service struct {
	store  database.Store
	logger *slog.Logger
}

// NewService creates a Service backed by the given store.
func NewService(store database.Store, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{
		store:  store,
		logger: logger.With("component", "users"),
	}
}

// Resolve returns the active language for userID. It never fails: unknown
// users resolve to the default language without a profile being created,
// and store read faults degrade to the default as well (logged, not
// surfaced to the user).
func (s *Service) Resolve(ctx context.Context, userID int64) lang.Language {
	stored, err := s.store.GetUserLanguage(ctx, userID)
	if err != nil {
		if !errors.Is(err, database.ErrUserNotFound) {
			s.logger.WarnContext(ctx, "Store read failed, defaulting language",
				"user_id", userID, "error", err)
		}
		return lang.Default
	}

	l, ok := lang.Parse(stored)
	if !ok {
		s.logger.WarnContext(ctx, "Stored language value unrecognized, defaulting",
			"user_id", userID, "value", stored)
		return lang.Default
	}
	return l
}

// Bootstrap creates or fully overwrites the profile for userID with the
// requested language. Used only by the /start action.
func (s *Service) Bootstrap(ctx context.Context, userID int64, username, firstName string, requested lang.Language) error {
	user := &database.User{
		UserID:    userID,
		Username:  nullString(username),
		FirstName: firstName,
		Language:  requested.String(),
	}
	if err := s.store.SaveUser(ctx, user); err != nil {
		return fmt.Errorf("failed to bootstrap user %d: %w", userID, err)
	}

	s.logger.InfoContext(ctx, "User bootstrapped",
		"user_id", userID, "language", requested)
	return nil
}

// Toggle flips the stored language of userID to its binary complement,
// persists the profile with a refreshed last_active, and returns the new
// language so the caller can render the confirmation and matching keyboard.
func (s *Service) Toggle(ctx context.Context, userID int64, username, firstName string) (lang.Language, error) {
	current := s.Resolve(ctx, userID)
	next := current.Toggle()

	user := &database.User{
		UserID:    userID,
		Username:  nullString(username),
		FirstName: firstName,
		Language:  next.String(),
	}
	if err := s.store.SaveUser(ctx, user); err != nil {
		return current, fmt.Errorf("failed to persist language toggle for user %d: %w", userID, err)
	}

	s.logger.InfoContext(ctx, "User language toggled",
		"user_id", userID, "from", current, "to", next)
	return next, nil
}

// CountUsers reports the current number of persisted profiles. The count
// always reflects live store cardinality.
func (s *Service) CountUsers(ctx context.Context) (int64, error) {
	return s.store.CountUsers(ctx)
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
