package driven

import (
	"context"

	"github.com/ericfisherdev/smartbrain/internal/domain/model"
)

// CredentialStore defines the driven port for credential persistence.
// Rows are written only by the Registrar as part of the registration
// transaction; this port only reads them back for verification.
type CredentialStore interface {
	// GetByIdentity retrieves the credential for the given identity.
	// Returns nil, nil if no credential exists for that identity.
	GetByIdentity(ctx context.Context, identity string) (*model.Credential, error)
}
