package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/rathoremon/car-repair-sub000/domain"
)

// MockAccountRepository implements domain.AccountRepository for testing
type MockAccountRepository struct {
	CreateFunc               func(ctx context.Context, account *domain.Account) error
	CreateWithProviderFunc   func(ctx context.Context, account *domain.Account, profile *domain.ProviderProfile) error
	FindByIDFunc             func(ctx context.Context, id string) (*domain.Account, error)
	FindByPhoneFunc          func(ctx context.Context, phone string) (*domain.Account, error)
	FindByEmailFunc          func(ctx context.Context, email string) (*domain.Account, error)
	UpdatePasswordFunc       func(ctx context.Context, id, passwordHash string) error
	MarkOtpVerifiedFunc      func(ctx context.Context, id string, at time.Time) error
	ClearOtpVerificationFunc func(ctx context.Context, id string) error
}

// NewMockAccountRepository creates a new MockAccountRepository with default behaviors
func NewMockAccountRepository() *MockAccountRepository {
	return &MockAccountRepository{}
}

func (m *MockAccountRepository) Create(ctx context.Context, account *domain.Account) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, account)
	}
	// Default behavior: assign an id and succeed
	account.ID = uuid.NewString()
	return nil
}

func (m *MockAccountRepository) CreateWithProvider(ctx context.Context, account *domain.Account, profile *domain.ProviderProfile) error {
	if m.CreateWithProviderFunc != nil {
		return m.CreateWithProviderFunc(ctx, account, profile)
	}
	account.ID = uuid.NewString()
	profile.ID = uuid.NewString()
	profile.AccountID = account.ID
	return nil
}

func (m *MockAccountRepository) FindByID(ctx context.Context, id string) (*domain.Account, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrAccountNotFound
}

func (m *MockAccountRepository) FindByPhone(ctx context.Context, phone string) (*domain.Account, error) {
	if m.FindByPhoneFunc != nil {
		return m.FindByPhoneFunc(ctx, phone)
	}
	return nil, domain.ErrAccountNotFound
}

func (m *MockAccountRepository) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, domain.ErrAccountNotFound
}

func (m *MockAccountRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	if m.UpdatePasswordFunc != nil {
		return m.UpdatePasswordFunc(ctx, id, passwordHash)
	}
	return nil
}

func (m *MockAccountRepository) MarkOtpVerified(ctx context.Context, id string, at time.Time) error {
	if m.MarkOtpVerifiedFunc != nil {
		return m.MarkOtpVerifiedFunc(ctx, id, at)
	}
	return nil
}

func (m *MockAccountRepository) ClearOtpVerification(ctx context.Context, id string) error {
	if m.ClearOtpVerificationFunc != nil {
		return m.ClearOtpVerificationFunc(ctx, id)
	}
	return nil
}
