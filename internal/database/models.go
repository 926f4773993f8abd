package database

import (
	"database/sql"
	"time"
)

// User is the persisted profile of one chat participant. A row exists only
// for users that ran /start or toggled their language at least once;
// language lookups for unknown users fall back to the default without
// creating a record.
type User struct {
	UserID     int64          `db:"user_id"`
	Username   sql.NullString `db:"username"`
	FirstName  string         `db:"first_name"`
	Language   string         `db:"language"`
	CreatedAt  time.Time      `db:"created_at"`
	LastActive time.Time      `db:"last_active"`
}
