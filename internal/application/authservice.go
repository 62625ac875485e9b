package application

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/ericfisherdev/smartbrain/internal/domain/model"
	"github.com/ericfisherdev/smartbrain/internal/domain/port/driven"
)

// AuthService verifies presented secrets against stored hashes and returns
// the matching account profile.
type AuthService struct {
	credentials driven.CredentialStore
	accounts    driven.AccountStore
}

// NewAuthService creates an AuthService with the required dependencies.
func NewAuthService(credentials driven.CredentialStore, accounts driven.AccountStore) *AuthService {
	return &AuthService{credentials: credentials, accounts: accounts}
}

// Authenticate verifies secret against the stored hash for identity and
// returns the full account on success. Unknown identity, wrong secret, and a
// missing account row all surface as the same ErrAuthFailed so a caller
// cannot enumerate registered identities. Storage errors are returned as-is;
// they describe an unavailable backend, not a rejected sign-in.
func (s *AuthService) Authenticate(ctx context.Context, identity, secret string) (*model.User, error) {
	cred, err := s.credentials.GetByIdentity(ctx, identity)
	if err != nil {
		return nil, fmt.Errorf("look up credential: %w", err)
	}
	if cred == nil {
		return nil, ErrAuthFailed
	}

	if bcrypt.CompareHashAndPassword([]byte(cred.SecretHash), []byte(secret)) != nil {
		return nil, ErrAuthFailed
	}

	user, err := s.accounts.GetByIdentity(ctx, identity)
	if err != nil {
		return nil, fmt.Errorf("look up account: %w", err)
	}
	if user == nil {
		// A credential without an account breaks the pairing invariant the
		// registration transaction maintains; externally it is still just a
		// failed sign-in.
		return nil, ErrAuthFailed
	}

	return user, nil
}
