package domain

import "time"

// Account is the identity record shared by every role.
type Account struct {
	ID                 string
	Name               string
	Email              string
	Phone              string
	PasswordHash       string
	Role               Role
	OtpVerified        bool
	OtpVerifiedAt      *time.Time
	OnboardingComplete bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// ProviderProfile extends a provider account. Every provider account must end
// up with exactly one; legacy rows missing it are healed lazily at login.
type ProviderProfile struct {
	ID        string
	AccountID string
	KYCStatus KYCStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// MechanicProfile extends a mechanic account and records which provider
// provisioned it. CredentialRotated stays false until the mechanic replaces
// the provider-issued temporary password via SetNewPassword.
type MechanicProfile struct {
	ID                string
	AccountID         string
	ProviderID        string
	CredentialRotated bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// RoleResolution is the per-request output of the role-resolution engine.
// ClearOtpState instructs the caller to persist otpVerified=false before
// responding; nothing in here is ever stored.
type RoleResolution struct {
	HasProviderProfile           bool
	HasMechanicProfile           bool
	IsDualRole                   bool
	OtpExpired                   bool
	IsFirstUseMechanicCredential bool
	RequiresPasswordReset        bool
	ClearOtpState                bool
	Next                         NextStep
}

// AuthResult bundles everything a credential-bearing operation returns.
type AuthResult struct {
	Account    *Account
	Provider   *ProviderProfile
	Mechanic   *MechanicProfile
	Resolution *RoleResolution
	Token      string
}

// SessionSnapshot is the read-only view served by GET /auth/me. Unlike login,
// building it never mutates OTP state or creates profiles.
type SessionSnapshot struct {
	Account               *Account
	Provider              *ProviderProfile
	Mechanic              *MechanicProfile
	RequiresPasswordReset bool
}

// RegisterInput carries the public registration payload.
type RegisterInput struct {
	Name     string
	Phone    string
	Password string
	Role     string
	Email    string
}

// TokenClaims is the decoded payload of a session token.
type TokenClaims struct {
	AccountID string
	Role      Role
	IssuedAt  int64
	ExpiresAt int64
}
