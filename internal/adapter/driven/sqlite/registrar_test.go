package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/smartbrain/internal/domain/port/driven"
)

func TestRegistrar_CreateAccount(t *testing.T) {
	db := setupTestDB(t)
	registrar := NewRegistrar(db)
	ctx := context.Background()

	user, err := registrar.CreateAccount(ctx, "ann@x.com", "$2a$10$fakehash", "Ann")
	require.NoError(t, err)
	require.NotNil(t, user)

	assert.NotZero(t, user.ID)
	assert.Equal(t, "ann@x.com", user.Identity)
	assert.Equal(t, "Ann", user.DisplayName)
	assert.EqualValues(t, 0, user.EngagementCount)
	assert.False(t, user.JoinedAt.IsZero())

	// Both rows landed.
	assert.Equal(t, 1, countRows(t, db, "users"))
	assert.Equal(t, 1, countRows(t, db, "credentials"))
}

func TestRegistrar_CreateAccount_PersistsBothRows(t *testing.T) {
	db := setupTestDB(t)
	registrar := NewRegistrar(db)
	ctx := context.Background()

	created, err := registrar.CreateAccount(ctx, "ann@x.com", "$2a$10$fakehash", "Ann")
	require.NoError(t, err)

	account, err := NewAccountRepo(db).GetByIdentity(ctx, "ann@x.com")
	require.NoError(t, err)
	require.NotNil(t, account)
	assert.Equal(t, created.ID, account.ID)

	cred, err := NewCredentialRepo(db).GetByIdentity(ctx, "ann@x.com")
	require.NoError(t, err)
	require.NotNil(t, cred)
	assert.Equal(t, "$2a$10$fakehash", cred.SecretHash)
}

func TestRegistrar_CreateAccount_TimestampsRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	registrar := NewRegistrar(db)
	ctx := context.Background()

	created, err := registrar.CreateAccount(ctx, "ann@x.com", "$2a$10$fakehash", "Ann")
	require.NoError(t, err)
	require.False(t, created.JoinedAt.IsZero())

	// Reads must parse what CreateAccount stored and land on the same
	// instant; a mismatch means the insert bound an unreadable form.
	account, err := NewAccountRepo(db).GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, account)
	assert.True(t, account.JoinedAt.Equal(created.JoinedAt),
		"stored %v, read back %v", created.JoinedAt, account.JoinedAt)

	cred, err := NewCredentialRepo(db).GetByIdentity(ctx, "ann@x.com")
	require.NoError(t, err)
	require.NotNil(t, cred)
	assert.True(t, cred.CreatedAt.Equal(created.JoinedAt),
		"stored %v, read back %v", created.JoinedAt, cred.CreatedAt)
}

func TestRegistrar_CreateAccount_DuplicateIdentity(t *testing.T) {
	db := setupTestDB(t)
	registrar := NewRegistrar(db)
	ctx := context.Background()

	_, err := registrar.CreateAccount(ctx, "ann@x.com", "$2a$10$fakehash", "Ann")
	require.NoError(t, err)

	usersBefore := countRows(t, db, "users")
	credsBefore := countRows(t, db, "credentials")

	_, err = registrar.CreateAccount(ctx, "ann@x.com", "$2a$10$otherhash", "Imposter")
	require.ErrorIs(t, err, driven.ErrIdentityTaken)

	// Failed attempt leaves zero new rows in either table.
	assert.Equal(t, usersBefore, countRows(t, db, "users"))
	assert.Equal(t, credsBefore, countRows(t, db, "credentials"))
}

func TestRegistrar_CreateAccount_RollbackLeavesNoOrphanCredential(t *testing.T) {
	db := setupTestDB(t)
	registrar := NewRegistrar(db)
	ctx := context.Background()

	// Seed a users row without a credential so the second insert of the
	// registration transaction hits the users.identity UNIQUE constraint
	// after the credentials insert already succeeded.
	_, err := db.Writer.ExecContext(ctx,
		`INSERT INTO users (identity, display_name, joined_at, engagement_count) VALUES (?, ?, ?, 0)`,
		"ghost@x.com", "Ghost", "2026-01-15T10:00:00Z")
	require.NoError(t, err)

	_, err = registrar.CreateAccount(ctx, "ghost@x.com", "$2a$10$fakehash", "Ghost")
	require.ErrorIs(t, err, driven.ErrIdentityTaken)

	// The credential insert must have been rolled back.
	assert.Equal(t, 0, countRows(t, db, "credentials"))
}
