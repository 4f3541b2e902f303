package mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/rathoremon/car-repair-sub000/domain"
)

// MockPasswordHasher implements domain.PasswordHasher for testing
type MockPasswordHasher struct {
	HashFunc   func(password string) (string, error)
	VerifyFunc func(passwordHash, password string) bool
}

func NewMockPasswordHasher() *MockPasswordHasher {
	return &MockPasswordHasher{}
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(password)
	}
	return "hashed_" + password, nil
}

func (m *MockPasswordHasher) Verify(passwordHash, password string) bool {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(passwordHash, password)
	}
	return passwordHash == "hashed_"+password
}

// MockTokenService implements domain.TokenService for testing
type MockTokenService struct {
	GenerateFunc func(accountID string, role domain.Role) (string, error)
	ValidateFunc func(token string) (*domain.TokenClaims, error)
}

func NewMockTokenService() *MockTokenService {
	return &MockTokenService{}
}

func (m *MockTokenService) Generate(accountID string, role domain.Role) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(accountID, role)
	}
	return fmt.Sprintf("token_%s_%s", accountID, role), nil
}

func (m *MockTokenService) Validate(token string) (*domain.TokenClaims, error) {
	if m.ValidateFunc != nil {
		return m.ValidateFunc(token)
	}
	return nil, domain.ErrTokenInvalid
}

// MockIdentityVerifier implements domain.IdentityVerifier for testing
type MockIdentityVerifier struct {
	VerifyPhoneAssertionFunc func(ctx context.Context, assertion string) (string, error)
}

func NewMockIdentityVerifier() *MockIdentityVerifier {
	return &MockIdentityVerifier{}
}

func (m *MockIdentityVerifier) VerifyPhoneAssertion(ctx context.Context, assertion string) (string, error) {
	if m.VerifyPhoneAssertionFunc != nil {
		return m.VerifyPhoneAssertionFunc(ctx, assertion)
	}
	return "", domain.ErrInvalidAssertion
}

// MockNotificationService implements domain.NotificationService for testing
type MockNotificationService struct {
	SendSMSFunc func(to, message string) error
	Sent        []string
}

func NewMockNotificationService() *MockNotificationService {
	return &MockNotificationService{}
}

func (m *MockNotificationService) SendSMS(to, message string) error {
	if m.SendSMSFunc != nil {
		return m.SendSMSFunc(to, message)
	}
	m.Sent = append(m.Sent, to)
	return nil
}

// MockDraftStore implements domain.DraftStore for testing
type MockDraftStore struct {
	GetFunc func(ctx context.Context, providerID string) ([]byte, error)
	PutFunc func(ctx context.Context, providerID string, draft []byte) error
}

func NewMockDraftStore() *MockDraftStore {
	return &MockDraftStore{}
}

func (m *MockDraftStore) Get(ctx context.Context, providerID string) ([]byte, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, providerID)
	}
	return nil, domain.ErrDraftNotFound
}

func (m *MockDraftStore) Put(ctx context.Context, providerID string, draft []byte) error {
	if m.PutFunc != nil {
		return m.PutFunc(ctx, providerID, draft)
	}
	return nil
}

// MockAuthService implements domain.AuthService for handler tests
type MockAuthService struct {
	RegisterFunc       func(ctx context.Context, in domain.RegisterInput) (*domain.Account, domain.NextStep, error)
	LoginFunc          func(ctx context.Context, phone, email, password string) (*domain.AuthResult, error)
	VerifyOtpFunc      func(ctx context.Context, assertion string) (*domain.AuthResult, error)
	CurrentSessionFunc func(ctx context.Context, accountID string) (*domain.SessionSnapshot, error)
	SetNewPasswordFunc func(ctx context.Context, accountID, newPassword, target string) error
}

func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

func (m *MockAuthService) Register(ctx context.Context, in domain.RegisterInput) (*domain.Account, domain.NextStep, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, in)
	}
	now := time.Now()
	return &domain.Account{ID: "acc-1", Name: in.Name, Phone: in.Phone, Role: domain.Role(in.Role), CreatedAt: now, UpdatedAt: now}, domain.NextVerifyOtp, nil
}

func (m *MockAuthService) Login(ctx context.Context, phone, email, password string) (*domain.AuthResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, phone, email, password)
	}
	return nil, domain.ErrAccountNotFound
}

func (m *MockAuthService) VerifyOtp(ctx context.Context, assertion string) (*domain.AuthResult, error) {
	if m.VerifyOtpFunc != nil {
		return m.VerifyOtpFunc(ctx, assertion)
	}
	return nil, domain.ErrInvalidAssertion
}

func (m *MockAuthService) CurrentSession(ctx context.Context, accountID string) (*domain.SessionSnapshot, error) {
	if m.CurrentSessionFunc != nil {
		return m.CurrentSessionFunc(ctx, accountID)
	}
	return nil, domain.ErrAccountNotFound
}

func (m *MockAuthService) SetNewPassword(ctx context.Context, accountID, newPassword, target string) error {
	if m.SetNewPasswordFunc != nil {
		return m.SetNewPasswordFunc(ctx, accountID, newPassword, target)
	}
	return nil
}

// MockOnboardingService implements domain.OnboardingService for handler tests
type MockOnboardingService struct {
	DraftFunc     func(ctx context.Context, accountID string) ([]byte, error)
	SaveDraftFunc func(ctx context.Context, accountID string, draft []byte) error
}

func NewMockOnboardingService() *MockOnboardingService {
	return &MockOnboardingService{}
}

func (m *MockOnboardingService) Draft(ctx context.Context, accountID string) ([]byte, error) {
	if m.DraftFunc != nil {
		return m.DraftFunc(ctx, accountID)
	}
	return nil, domain.ErrDraftNotFound
}

func (m *MockOnboardingService) SaveDraft(ctx context.Context, accountID string, draft []byte) error {
	if m.SaveDraftFunc != nil {
		return m.SaveDraftFunc(ctx, accountID, draft)
	}
	return nil
}
