package mocks

import (
	"context"

	"github.com/google/uuid"

	"github.com/rathoremon/car-repair-sub000/domain"
)

// MockProviderProfileRepository implements domain.ProviderProfileRepository for testing
type MockProviderProfileRepository struct {
	CreateFunc          func(ctx context.Context, profile *domain.ProviderProfile) error
	FindByAccountIDFunc func(ctx context.Context, accountID string) (*domain.ProviderProfile, error)
	EnsureFunc          func(ctx context.Context, accountID string) (*domain.ProviderProfile, error)
}

// NewMockProviderProfileRepository creates a new mock with default behaviors
func NewMockProviderProfileRepository() *MockProviderProfileRepository {
	return &MockProviderProfileRepository{}
}

func (m *MockProviderProfileRepository) Create(ctx context.Context, profile *domain.ProviderProfile) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, profile)
	}
	profile.ID = uuid.NewString()
	return nil
}

func (m *MockProviderProfileRepository) FindByAccountID(ctx context.Context, accountID string) (*domain.ProviderProfile, error) {
	if m.FindByAccountIDFunc != nil {
		return m.FindByAccountIDFunc(ctx, accountID)
	}
	return nil, domain.ErrProfileNotFound
}

func (m *MockProviderProfileRepository) Ensure(ctx context.Context, accountID string) (*domain.ProviderProfile, error) {
	if m.EnsureFunc != nil {
		return m.EnsureFunc(ctx, accountID)
	}
	return &domain.ProviderProfile{ID: uuid.NewString(), AccountID: accountID, KYCStatus: domain.KYCPending}, nil
}

// MockMechanicProfileRepository implements domain.MechanicProfileRepository for testing
type MockMechanicProfileRepository struct {
	CreateFunc                func(ctx context.Context, profile *domain.MechanicProfile) error
	FindByAccountIDFunc       func(ctx context.Context, accountID string) (*domain.MechanicProfile, error)
	MarkCredentialRotatedFunc func(ctx context.Context, accountID string) error
}

// NewMockMechanicProfileRepository creates a new mock with default behaviors
func NewMockMechanicProfileRepository() *MockMechanicProfileRepository {
	return &MockMechanicProfileRepository{}
}

func (m *MockMechanicProfileRepository) Create(ctx context.Context, profile *domain.MechanicProfile) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, profile)
	}
	profile.ID = uuid.NewString()
	return nil
}

func (m *MockMechanicProfileRepository) FindByAccountID(ctx context.Context, accountID string) (*domain.MechanicProfile, error) {
	if m.FindByAccountIDFunc != nil {
		return m.FindByAccountIDFunc(ctx, accountID)
	}
	return nil, domain.ErrProfileNotFound
}

func (m *MockMechanicProfileRepository) MarkCredentialRotated(ctx context.Context, accountID string) error {
	if m.MarkCredentialRotatedFunc != nil {
		return m.MarkCredentialRotatedFunc(ctx, accountID)
	}
	return nil
}
