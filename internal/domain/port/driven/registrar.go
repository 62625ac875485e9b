package driven

import (
	"context"
	"errors"

	"github.com/ericfisherdev/smartbrain/internal/domain/model"
)

// ErrIdentityTaken indicates a credential or account row already exists for
// the identity. The registration service folds this into its generic failure
// before it reaches a caller, so the HTTP surface never reveals whether an
// identity is registered.
var ErrIdentityTaken = errors.New("identity already registered")

// Registrar defines the driven port for the two-table registration write.
// Implementations must insert the credential and account rows in a single
// transaction: on any failure (including a uniqueness violation) no partial
// state may remain observable.
type Registrar interface {
	// CreateAccount inserts a credential row {identity, secretHash} and an
	// account row {identity, displayName, joined now, engagement 0} atomically
	// and returns the new account. Returns ErrIdentityTaken on a duplicate
	// identity.
	CreateAccount(ctx context.Context, identity, secretHash, displayName string) (*model.User, error)
}
