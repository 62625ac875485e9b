package application

import (
	"context"

	"github.com/ericfisherdev/smartbrain/internal/domain/port/driven"
)

// EngagementService increments the per-account engagement counter.
type EngagementService struct {
	accounts driven.AccountStore
}

// NewEngagementService creates an EngagementService with the required dependencies.
func NewEngagementService(accounts driven.AccountStore) *EngagementService {
	return &EngagementService{accounts: accounts}
}

// Increment bumps the engagement counter for the given account and returns
// the post-increment value. The store performs the increment as one atomic
// statement, so concurrent calls never lose updates. Returns
// driven.ErrAccountNotFound if the account does not exist.
func (s *EngagementService) Increment(ctx context.Context, accountID int64) (int64, error) {
	return s.accounts.IncrementEngagement(ctx, accountID)
}
