package domain

import (
	"context"
	"time"
)

// AccountRepository defines account data access operations.
type AccountRepository interface {
	Create(ctx context.Context, account *Account) error
	// CreateWithProvider creates the account and its provider profile in one
	// transaction; a provider account must never exist without its profile.
	CreateWithProvider(ctx context.Context, account *Account, profile *ProviderProfile) error
	FindByID(ctx context.Context, id string) (*Account, error)
	FindByPhone(ctx context.Context, phone string) (*Account, error)
	FindByEmail(ctx context.Context, email string) (*Account, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	MarkOtpVerified(ctx context.Context, id string, at time.Time) error
	ClearOtpVerification(ctx context.Context, id string) error
}

// ProviderProfileRepository defines provider profile data access operations.
type ProviderProfileRepository interface {
	Create(ctx context.Context, profile *ProviderProfile) error
	FindByAccountID(ctx context.Context, accountID string) (*ProviderProfile, error)
	// Ensure creates a pending profile for the account if none exists and
	// returns the surviving row. Safe under concurrent callers: the loser of
	// the unique-constraint race re-reads instead of failing.
	Ensure(ctx context.Context, accountID string) (*ProviderProfile, error)
}

// MechanicProfileRepository defines mechanic profile data access operations.
type MechanicProfileRepository interface {
	Create(ctx context.Context, profile *MechanicProfile) error
	FindByAccountID(ctx context.Context, accountID string) (*MechanicProfile, error)
	// MarkCredentialRotated records that the mechanic replaced the
	// provider-issued temporary password, retiring the first-use state.
	MarkCredentialRotated(ctx context.Context, accountID string) error
}

// PasswordHasher defines one-way password hashing operations.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(passwordHash, password string) bool
}

// TokenService signs and validates session tokens binding {accountId, role}.
type TokenService interface {
	Generate(accountID string, role Role) (string, error)
	Validate(token string) (*TokenClaims, error)
}

// IdentityVerifier validates an externally issued identity assertion and
// extracts the verified phone number it carries.
type IdentityVerifier interface {
	VerifyPhoneAssertion(ctx context.Context, assertion string) (string, error)
}

// NotificationService defines outbound notification operations.
type NotificationService interface {
	SendSMS(to, message string) error
}

// DraftStore is an externally owned key-value store for provider onboarding
// drafts, keyed by provider profile id.
type DraftStore interface {
	Get(ctx context.Context, providerID string) ([]byte, error)
	Put(ctx context.Context, providerID string, draft []byte) error
}

// AuthService defines the authentication use cases.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*Account, NextStep, error)
	Login(ctx context.Context, phone, email, password string) (*AuthResult, error)
	VerifyOtp(ctx context.Context, assertion string) (*AuthResult, error)
	CurrentSession(ctx context.Context, accountID string) (*SessionSnapshot, error)
	SetNewPassword(ctx context.Context, accountID, newPassword, target string) error
}

// OnboardingService exposes provider onboarding draft persistence.
type OnboardingService interface {
	Draft(ctx context.Context, accountID string) ([]byte, error)
	SaveDraft(ctx context.Context, accountID string, draft []byte) error
}
