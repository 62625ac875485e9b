package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ericfisherdev/smartbrain/internal/domain/model"
	"github.com/ericfisherdev/smartbrain/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.CredentialStore = (*CredentialRepo)(nil)

// CredentialRepo is the SQLite implementation of the CredentialStore port
// interface. Rows hold bcrypt hashes, never plaintext secrets; inserts happen
// only through the Registrar.
type CredentialRepo struct {
	db *DB
}

// NewCredentialRepo creates a new CredentialRepo backed by the given DB.
func NewCredentialRepo(db *DB) *CredentialRepo {
	return &CredentialRepo{db: db}
}

// GetByIdentity retrieves the credential for the given identity.
// Returns nil, nil if no credential exists for that identity.
func (r *CredentialRepo) GetByIdentity(ctx context.Context, identity string) (*model.Credential, error) {
	const query = `SELECT id, identity, secret_hash, created_at FROM credentials WHERE identity = ?`

	var cred model.Credential
	var createdAt string
	err := r.db.Reader.QueryRowContext(ctx, query, identity).Scan(&cred.ID, &cred.Identity, &cred.SecretHash, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get credential %q: %w", identity, err)
	}

	cred.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return nil, fmt.Errorf("parse created_at for credential %q: %w", identity, err)
	}

	return &cred, nil
}
