package driven

import (
	"context"
	"errors"

	"github.com/ericfisherdev/smartbrain/internal/domain/model"
)

// ErrAccountNotFound indicates the requested account does not exist.
var ErrAccountNotFound = errors.New("account not found")

// AccountStore defines the driven port for account profile persistence.
// Account rows are created only through the Registrar; this port is read-only
// except for the engagement counter.
type AccountStore interface {
	// GetByID retrieves an account by its numeric id.
	// Returns nil, nil if no such account exists.
	GetByID(ctx context.Context, id int64) (*model.User, error)

	// GetByIdentity retrieves an account by its identity (email).
	// Returns nil, nil if no such account exists.
	GetByIdentity(ctx context.Context, identity string) (*model.User, error)

	// IncrementEngagement atomically increments the engagement counter for the
	// given account and returns the post-increment value. The increment is a
	// single storage-level statement, so concurrent calls never lose updates.
	// Returns ErrAccountNotFound if the account does not exist.
	IncrementEngagement(ctx context.Context, id int64) (int64, error)
}
