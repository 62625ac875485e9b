package application_test

import (
	"context"
	"fmt"
	"time"

	"github.com/ericfisherdev/smartbrain/internal/domain/model"
	"github.com/ericfisherdev/smartbrain/internal/domain/port/driven"
)

// --- Mock implementations ---

// memStore is an in-memory Registrar + CredentialStore + AccountStore,
// mimicking the transactional pairing invariant of the SQLite adapter.
type memStore struct {
	nextID      int64
	users       map[string]*model.User       // keyed by identity
	credentials map[string]*model.Credential // keyed by identity
	increments  map[int64]int64              // engagement counts keyed by account id
}

func newMemStore() *memStore {
	return &memStore{
		users:       make(map[string]*model.User),
		credentials: make(map[string]*model.Credential),
		increments:  make(map[int64]int64),
	}
}

func (m *memStore) CreateAccount(_ context.Context, identity, secretHash, displayName string) (*model.User, error) {
	if _, exists := m.credentials[identity]; exists {
		return nil, fmt.Errorf("register %q: %w", identity, driven.ErrIdentityTaken)
	}

	m.nextID++
	now := time.Now().UTC()
	user := &model.User{ID: m.nextID, Identity: identity, DisplayName: displayName, JoinedAt: now}
	m.users[identity] = user
	m.credentials[identity] = &model.Credential{ID: m.nextID, Identity: identity, SecretHash: secretHash, CreatedAt: now}
	return user, nil
}

func (m *memStore) GetByIdentity(_ context.Context, identity string) (*model.User, error) {
	return m.users[identity], nil
}

func (m *memStore) GetByID(_ context.Context, id int64) (*model.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (m *memStore) IncrementEngagement(_ context.Context, id int64) (int64, error) {
	user, _ := m.GetByID(context.Background(), id)
	if user == nil {
		return 0, driven.ErrAccountNotFound
	}
	m.increments[id]++
	user.EngagementCount = m.increments[id]
	return m.increments[id], nil
}

// credStoreView exposes only the CredentialStore port of a memStore so the
// auth service sees the same interface split as production wiring.
type credStoreView struct {
	store *memStore
}

func (v credStoreView) GetByIdentity(_ context.Context, identity string) (*model.Credential, error) {
	return v.store.credentials[identity], nil
}

// failingCredStore returns err from every lookup.
type failingCredStore struct {
	err error
}

func (s failingCredStore) GetByIdentity(_ context.Context, _ string) (*model.Credential, error) {
	return nil, s.err
}

// failingAccountStore wraps a memStore and fails account lookups by identity.
type failingAccountStore struct {
	*memStore
	err error
}

func (s failingAccountStore) GetByIdentity(_ context.Context, _ string) (*model.User, error) {
	return nil, s.err
}

// mockVisionClient records calls and returns canned results.
type mockVisionClient struct {
	calls   int
	regions []model.Region
	err     error
}

func (m *mockVisionClient) DetectFaces(_ context.Context, _ string) ([]model.Region, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.regions, nil
}
