package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"
)

// ErrUserNotFound is returned by point lookups when no profile row exists
// for the requested user ID. Absence of data is not a storage fault.
var ErrUserNotFound = errors.New("user not found")

// Store defines the interface for database operations. Methods accept
// context.Context for cancellation and timeouts.
type Store interface {
	// Ping checks the database connection.
	Ping(ctx context.Context) error

	// SaveUser inserts or replaces a user profile by primary key. The
	// created_at of an existing row is preserved; last_active is always
	// refreshed.
	SaveUser(ctx context.Context, user *User) error

	// GetUserLanguage retrieves the stored language for a user ID.
	// Returns ErrUserNotFound when no profile exists.
	GetUserLanguage(ctx context.Context, userID int64) (string, error)

	// CountUsers returns the total number of persisted user profiles.
	CountUsers(ctx context.Context) (int64, error)

	// RunSQLMaintenance performs database maintenance tasks like VACUUM.
	RunSQLMaintenance(ctx context.Context) error
}

// sqlxStore provides an implementation of the Store interface using sqlx.
type sqlxStore struct {
	db     *sqlx.DB
	logger *slog.Logger
}

// NewStore creates a new Store implementation backed by sqlx.
// It requires a connected sqlx.DB instance and a logger.
func NewStore(db *sqlx.DB, logger *slog.Logger) Store {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &sqlxStore{
		db:     db,
		logger: logger.With("component", "store"),
	}
}

// Ping checks the database connection.
func (s *sqlxStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// SaveUser upserts a user profile keyed by user_id.
func (s *sqlxStore) SaveUser(ctx context.Context, user *User) error {
	if user == nil {
		return fmt.Errorf("cannot save nil user")
	}
	if user.UserID == 0 {
		return fmt.Errorf("user must have a non-zero user_id")
	}
	if user.Language == "" {
		return fmt.Errorf("user must have a non-empty language")
	}

	now := time.Now().UTC()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.LastActive = now

	query := `
        INSERT INTO users (user_id, username, first_name, language, created_at, last_active)
        VALUES (:user_id, :username, :first_name, :language, :created_at, :last_active)
        ON CONFLICT(user_id) DO UPDATE SET
            username    = excluded.username,
            first_name  = excluded.first_name,
            language    = excluded.language,
            last_active = excluded.last_active;
    `

	result, err := s.db.NamedExecContext(ctx, query, user)
	if err != nil {
		s.logger.ErrorContext(ctx, "Error saving user", "user_id", user.UserID, "error", err)
		return fmt.Errorf("failed to save user %d: %w", user.UserID, err)
	}

	if affected, err := result.RowsAffected(); err == nil && affected != 1 {
		s.logger.WarnContext(ctx, "Unexpected number of rows affected when saving user",
			"user_id", user.UserID, "affected", affected)
	}

	s.logger.DebugContext(ctx, "User saved successfully",
		"user_id", user.UserID, "language", user.Language)
	return nil
}

// GetUserLanguage retrieves the stored language for a user by primary key.
func (s *sqlxStore) GetUserLanguage(ctx context.Context, userID int64) (string, error) {
	if userID == 0 {
		return "", fmt.Errorf("user_id cannot be zero")
	}
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	var language string
	query := `SELECT language FROM users WHERE user_id = ?`

	err := s.db.GetContext(ctx, &language, query, userID)

	switch {
	case errors.Is(err, sql.ErrNoRows):
		s.logger.DebugContext(ctx, "No user profile found", "user_id", userID)
		return "", ErrUserNotFound

	case errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled):
		s.logger.WarnContext(ctx, "Context timeout or cancellation while fetching user language",
			"user_id", userID, "error", err)
		return "", err

	case err != nil:
		s.logger.ErrorContext(ctx, "Error getting user language", "user_id", userID, "error", err)
		return "", fmt.Errorf("failed to get language for user %d: %w", userID, err)
	}

	return language, nil
}

// CountUsers returns the total row count of the users table. The count is
// computed at call time, never cached.
func (s *sqlxStore) CountUsers(ctx context.Context) (int64, error) {
	if ctx.Err() != nil {
		return 0, ctx.Err()
	}

	var count int64
	err := s.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM users`)
	if err != nil {
		s.logger.ErrorContext(ctx, "Error counting users", "error", err)
		return 0, fmt.Errorf("failed to count users: %w", err)
	}

	s.logger.DebugContext(ctx, "Counted users", "count", count)
	return count, nil
}

// RunSQLMaintenance executes a VACUUM command on the SQLite database.
func (s *sqlxStore) RunSQLMaintenance(ctx context.Context) error {
	if ctx.Err() != nil {
		s.logger.WarnContext(ctx, "Context cancelled or timed out before starting VACUUM", "error", ctx.Err())
		return ctx.Err()
	}

	s.logger.InfoContext(ctx, "Starting database maintenance (VACUUM)...")

	// VACUUM must run outside a transaction in SQLite.
	_, err := s.db.ExecContext(ctx, "VACUUM;")

	switch {
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled):
		s.logger.WarnContext(ctx, "VACUUM operation timed out or was cancelled", "error", err)
		return fmt.Errorf("database maintenance (VACUUM) timed out: %w", err)

	case err != nil:
		s.logger.ErrorContext(ctx, "Database maintenance (VACUUM) failed", "error", err)
		return fmt.Errorf("failed to execute VACUUM: %w", err)

	default:
		s.logger.InfoContext(ctx, "Database maintenance (VACUUM) completed successfully")
	}

	return nil
}
