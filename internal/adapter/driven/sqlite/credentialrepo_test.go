package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentialRepo_GetByIdentity(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCredentialRepo(db)
	ctx := context.Background()

	seedAccount(t, db, "ann@x.com", "Ann")

	cred, err := repo.GetByIdentity(ctx, "ann@x.com")
	require.NoError(t, err)
	require.NotNil(t, cred)

	assert.Equal(t, "ann@x.com", cred.Identity)
	assert.Equal(t, "$2a$10$fakehash", cred.SecretHash)
	assert.False(t, cred.CreatedAt.IsZero())
}

func TestCredentialRepo_GetByIdentity_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCredentialRepo(db)

	cred, err := repo.GetByIdentity(context.Background(), "nobody@x.com")
	require.NoError(t, err)
	assert.Nil(t, cred, "missing credential should return nil without error")
}
