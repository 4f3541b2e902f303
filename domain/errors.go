package domain

import "errors"

// Account errors
var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrAccountExists      = errors.New("account already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrRoleNotAllowed     = errors.New("role not allowed for registration")
	ErrInvalidPhone       = errors.New("invalid phone number")
)

// Profile errors
var (
	ErrProfileNotFound   = errors.New("profile not found")
	ErrNoMechanicProfile = errors.New("no mechanic profile for account")
)

// Identity assertion errors
var (
	ErrInvalidAssertion = errors.New("invalid identity assertion")
	ErrAssertionNoPhone = errors.New("identity assertion carries no phone number")
)

// Token errors
var (
	ErrTokenInvalid   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenMalformed = errors.New("malformed token")
)

// Password errors
var (
	ErrPasswordRequired = errors.New("password is required")
	ErrNotMechanic      = errors.New("mechanic password change requires a mechanic account")
)

// Onboarding errors
var (
	ErrDraftNotFound = errors.New("onboarding draft not found")
)
