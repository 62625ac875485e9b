package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ericfisherdev/smartbrain/internal/domain/model"
	"github.com/ericfisherdev/smartbrain/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.Registrar = (*Registrar)(nil)

// Registrar is the SQLite implementation of the Registrar port interface.
// Both inserts run in one transaction on the writer connection; the identity
// uniqueness constraints on both tables serialize concurrent registrations so
// a second attempt for the same identity fails instead of overwriting.
type Registrar struct {
	db *DB
}

// NewRegistrar creates a new Registrar backed by the given DB.
func NewRegistrar(db *DB) *Registrar {
	return &Registrar{db: db}
}

// CreateAccount inserts the credential and account rows atomically and
// returns the new account. On any failure the transaction is rolled back in
// full, so an orphan credential without an account (or vice versa) is never
// observable. A duplicate identity maps to driven.ErrIdentityTaken.
func (r *Registrar) CreateAccount(ctx context.Context, identity, secretHash, displayName string) (*model.User, error) {
	tx, err := r.db.Writer.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin registration for %q: %w", identity, err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	// Timestamps are stored as RFC3339 text; binding a time.Time directly
	// would store Go's default String() form, which reads cannot parse.
	now := time.Now().UTC().Truncate(time.Second)
	stamp := now.Format(time.RFC3339)

	const insertCredential = `INSERT INTO credentials (identity, secret_hash, created_at) VALUES (?, ?, ?)`
	if _, err := tx.ExecContext(ctx, insertCredential, identity, secretHash, stamp); err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint") {
			return nil, fmt.Errorf("register %q: %w", identity, driven.ErrIdentityTaken)
		}
		return nil, fmt.Errorf("insert credential for %q: %w", identity, err)
	}

	const insertUser = `INSERT INTO users (identity, display_name, joined_at, engagement_count) VALUES (?, ?, ?, 0)`
	result, err := tx.ExecContext(ctx, insertUser, identity, displayName, stamp)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint") {
			return nil, fmt.Errorf("register %q: %w", identity, driven.ErrIdentityTaken)
		}
		return nil, fmt.Errorf("insert account for %q: %w", identity, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("account id for %q: %w", identity, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit registration for %q: %w", identity, err)
	}

	return &model.User{
		ID:              id,
		Identity:        identity,
		DisplayName:     displayName,
		JoinedAt:        now,
		EngagementCount: 0,
	}, nil
}
