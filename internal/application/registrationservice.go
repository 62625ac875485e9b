package application

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/ericfisherdev/smartbrain/internal/domain/model"
	"github.com/ericfisherdev/smartbrain/internal/domain/port/driven"
)

// bcryptCost is the fixed cost factor for secret hashing.
const bcryptCost = 10

// RegistrationService creates accounts. The credential and account rows are
// written by the Registrar in a single transaction, so a failed registration
// leaves zero new rows.
type RegistrationService struct {
	registrar driven.Registrar
}

// NewRegistrationService creates a RegistrationService with the required dependencies.
func NewRegistrationService(registrar driven.Registrar) *RegistrationService {
	return &RegistrationService{registrar: registrar}
}

// Register hashes the secret and creates the paired credential and account
// rows, returning the new account. Empty identity or secret is ErrValidation.
// Every other failure, including a duplicate identity, folds into
// ErrRegistrationFailed; the underlying cause is kept in the error text for
// logs but is not distinguishable by kind.
func (s *RegistrationService) Register(ctx context.Context, displayName, identity, secret string) (*model.User, error) {
	if identity == "" || secret == "" {
		return nil, fmt.Errorf("%w: identity and secret are required", ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRegistrationFailed, err)
	}

	user, err := s.registrar.CreateAccount(ctx, identity, string(hash), displayName)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRegistrationFailed, err)
	}

	return user, nil
}
