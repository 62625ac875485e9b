package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ericfisherdev/smartbrain/internal/domain/model"
	"github.com/ericfisherdev/smartbrain/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.AccountStore = (*AccountRepo)(nil)

// AccountRepo is the SQLite implementation of the AccountStore port interface.
type AccountRepo struct {
	db *DB
}

// NewAccountRepo creates a new AccountRepo backed by the given DB.
func NewAccountRepo(db *DB) *AccountRepo {
	return &AccountRepo{db: db}
}

// GetByID retrieves an account by its numeric id. Returns nil, nil if the
// account does not exist.
func (r *AccountRepo) GetByID(ctx context.Context, id int64) (*model.User, error) {
	const query = `SELECT id, identity, display_name, joined_at, engagement_count FROM users WHERE id = ?`

	user, err := scanUser(r.db.Reader.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get account %d: %w", id, err)
	}

	return user, nil
}

// GetByIdentity retrieves an account by its identity. Returns nil, nil if the
// account does not exist.
func (r *AccountRepo) GetByIdentity(ctx context.Context, identity string) (*model.User, error) {
	const query = `SELECT id, identity, display_name, joined_at, engagement_count FROM users WHERE identity = ?`

	user, err := scanUser(r.db.Reader.QueryRowContext(ctx, query, identity))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get account %q: %w", identity, err)
	}

	return user, nil
}

// IncrementEngagement atomically increments the engagement counter and returns
// the post-increment value. The increment and the read of the new value are a
// single UPDATE ... RETURNING statement on the writer connection, so
// concurrent increments for the same account never lose an update and each
// caller observes its own resulting count.
func (r *AccountRepo) IncrementEngagement(ctx context.Context, id int64) (int64, error) {
	const query = `UPDATE users SET engagement_count = engagement_count + 1 WHERE id = ? RETURNING engagement_count`

	var count int64
	err := r.db.Writer.QueryRowContext(ctx, query, id).Scan(&count)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("increment engagement for account %d: %w", id, driven.ErrAccountNotFound)
	}
	if err != nil {
		return 0, fmt.Errorf("increment engagement for account %d: %w", id, err)
	}

	return count, nil
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanUser(s scanner) (*model.User, error) {
	var user model.User
	var joinedAt string

	err := s.Scan(&user.ID, &user.Identity, &user.DisplayName, &joinedAt, &user.EngagementCount)
	if err != nil {
		return nil, err
	}

	user.JoinedAt, err = parseTime(joinedAt)
	if err != nil {
		return nil, fmt.Errorf("parse joined_at: %w", err)
	}

	return &user, nil
}

// parseTime tries multiple SQLite datetime formats.
func parseTime(s string) (time.Time, error) {
	formats := []string{
		"2006-01-02T15:04:05Z",
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05.000",
		time.RFC3339,
		time.RFC3339Nano,
	}

	for _, format := range formats {
		if t, err := time.Parse(format, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized time format: %s", s)
}
