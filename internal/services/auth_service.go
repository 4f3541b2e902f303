package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rathoremon/car-repair-sub000/domain"
)

// AuthServiceImpl implements domain.AuthService
type AuthServiceImpl struct {
	accounts  domain.AccountRepository
	providers domain.ProviderProfileRepository
	mechanics domain.MechanicProfileRepository
	hasher    domain.PasswordHasher
	tokens    domain.TokenService
	verifier  domain.IdentityVerifier
	notifier  domain.NotificationService
	defaultCC string
}

// NewAuthService creates a new auth service
func NewAuthService(
	accounts domain.AccountRepository,
	providers domain.ProviderProfileRepository,
	mechanics domain.MechanicProfileRepository,
	hasher domain.PasswordHasher,
	tokens domain.TokenService,
	verifier domain.IdentityVerifier,
	notifier domain.NotificationService,
	defaultCountryCode string,
) domain.AuthService {
	return &AuthServiceImpl{
		accounts:  accounts,
		providers: providers,
		mechanics: mechanics,
		hasher:    hasher,
		tokens:    tokens,
		verifier:  verifier,
		notifier:  notifier,
		defaultCC: defaultCountryCode,
	}
}

// Register implements domain.AuthService. Mechanic and admin accounts are
// provisioned elsewhere; only customers and providers self-register. No
// session token is issued here: the client must verify the phone first.
func (s *AuthServiceImpl) Register(ctx context.Context, in domain.RegisterInput) (*domain.Account, domain.NextStep, error) {
	role, ok := domain.ParseRole(in.Role)
	if !ok || !role.SelfRegisterable() {
		return nil, domain.NextNone, domain.ErrRoleNotAllowed
	}

	phone, err := domain.NormalizePhone(in.Phone, s.defaultCC)
	if err != nil {
		return nil, domain.NextNone, err
	}

	if existing, err := s.accounts.FindByPhone(ctx, phone); err == nil && existing != nil {
		return nil, domain.NextNone, domain.ErrAccountExists
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, domain.NextNone, fmt.Errorf("failed to hash password: %w", err)
	}

	acc := &domain.Account{
		Name:         in.Name,
		Email:        in.Email,
		Phone:        phone,
		PasswordHash: hash,
		Role:         role,
		OtpVerified:  false,
	}

	if role == domain.RoleProvider {
		profile := &domain.ProviderProfile{KYCStatus: domain.KYCPending}
		if err := s.accounts.CreateWithProvider(ctx, acc, profile); err != nil {
			return nil, domain.NextNone, s.mapCreateErr(err)
		}
	} else {
		if err := s.accounts.Create(ctx, acc); err != nil {
			return nil, domain.NextNone, s.mapCreateErr(err)
		}
	}

	if s.notifier != nil {
		msg := fmt.Sprintf("Welcome to the garage, %s! Verify your phone number to get started.", acc.Name)
		if err := s.notifier.SendSMS(acc.Phone, msg); err != nil {
			log.Printf("WELCOME_SMS_FAILED: account_id=%s error=%v", acc.ID, err)
		}
	}

	return acc, domain.NextVerifyOtp, nil
}

func (s *AuthServiceImpl) mapCreateErr(err error) error {
	if errors.Is(err, domain.ErrAccountExists) {
		return err
	}
	return fmt.Errorf("failed to create account: %w", err)
}

// Login implements domain.AuthService. A token is issued on every successful
// credential check regardless of OTP state; the next value tells the client
// what the token may be used for.
func (s *AuthServiceImpl) Login(ctx context.Context, phone, email, password string) (*domain.AuthResult, error) {
	var (
		acc *domain.Account
		err error
	)
	if phone != "" {
		normalized, perr := domain.NormalizePhone(phone, s.defaultCC)
		if perr != nil {
			return nil, perr
		}
		acc, err = s.accounts.FindByPhone(ctx, normalized)
	} else {
		acc, err = s.accounts.FindByEmail(ctx, email)
	}
	if err != nil {
		return nil, err
	}

	if !s.hasher.Verify(acc.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}

	provider, mechanic, err := s.loadProfiles(ctx, acc, true)
	if err != nil {
		return nil, err
	}

	res, err := ResolveRoles(acc, provider, mechanic, time.Now())
	if err != nil {
		return nil, err
	}

	if res.ClearOtpState {
		if err := s.accounts.ClearOtpVerification(ctx, acc.ID); err != nil {
			return nil, fmt.Errorf("failed to clear otp state: %w", err)
		}
		acc.OtpVerified = false
		acc.OtpVerifiedAt = nil
	}

	token, err := s.tokens.Generate(acc.ID, acc.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	return &domain.AuthResult{
		Account:    acc,
		Provider:   provider,
		Mechanic:   mechanic,
		Resolution: res,
		Token:      token,
	}, nil
}

// VerifyOtp implements domain.AuthService. The assertion is an ID token from
// the external phone-auth provider; its verified phone number identifies the
// account.
func (s *AuthServiceImpl) VerifyOtp(ctx context.Context, assertion string) (*domain.AuthResult, error) {
	phone, err := s.verifier.VerifyPhoneAssertion(ctx, assertion)
	if err != nil {
		return nil, err
	}

	acc, err := s.accounts.FindByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if err := s.accounts.MarkOtpVerified(ctx, acc.ID, now); err != nil {
		return nil, fmt.Errorf("failed to mark otp verified: %w", err)
	}
	acc.OtpVerified = true
	acc.OtpVerifiedAt = &now

	provider, mechanic, err := s.loadProfiles(ctx, acc, true)
	if err != nil {
		return nil, err
	}

	// Resolution runs on the just-updated state, so otpExpired is false here
	// and only the first-use / dual-role / role-literal branches apply.
	res, err := ResolveRoles(acc, provider, mechanic, now)
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.Generate(acc.ID, acc.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	log.Printf("PHONE_VERIFIED: account_id=%s phone=%s role=%s", acc.ID, acc.Phone, acc.Role)

	return &domain.AuthResult{
		Account:    acc,
		Provider:   provider,
		Mechanic:   mechanic,
		Resolution: res,
		Token:      token,
	}, nil
}

// CurrentSession implements domain.AuthService. Read-only: no OTP mutation
// and no lazy profile creation happen on this path.
func (s *AuthServiceImpl) CurrentSession(ctx context.Context, accountID string) (*domain.SessionSnapshot, error) {
	acc, err := s.accounts.FindByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	provider, mechanic, err := s.loadProfiles(ctx, acc, false)
	if err != nil {
		return nil, err
	}

	return &domain.SessionSnapshot{
		Account:               acc,
		Provider:              provider,
		Mechanic:              mechanic,
		RequiresPasswordReset: RequiresPasswordReset(acc, provider, mechanic),
	}, nil
}

// SetNewPassword implements domain.AuthService. For mechanics this also
// flips the credential-rotation flag so the first-use state is never
// reported again.
func (s *AuthServiceImpl) SetNewPassword(ctx context.Context, accountID, newPassword, target string) error {
	if newPassword == "" {
		return domain.ErrPasswordRequired
	}

	acc, err := s.accounts.FindByID(ctx, accountID)
	if err != nil {
		return err
	}

	if target == string(domain.RoleMechanic) && acc.Role != domain.RoleMechanic {
		return domain.ErrNotMechanic
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.accounts.UpdatePassword(ctx, acc.ID, hash); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	if acc.Role == domain.RoleMechanic {
		if err := s.mechanics.MarkCredentialRotated(ctx, acc.ID); err != nil && !errors.Is(err, domain.ErrProfileNotFound) {
			return fmt.Errorf("failed to mark credential rotated: %w", err)
		}
	}

	if s.notifier != nil {
		if err := s.notifier.SendSMS(acc.Phone, "Your account password was just changed. Contact support if this wasn't you."); err != nil {
			log.Printf("PASSWORD_SMS_FAILED: account_id=%s error=%v", acc.ID, err)
		}
	}

	log.Printf("PASSWORD_CHANGED: account_id=%s role=%s target=%s", acc.ID, acc.Role, target)
	return nil
}

// loadProfiles fetches both optional profiles concurrently. When heal is set,
// a provider account missing its profile gets one created through the upsert
// path; losers of the create race re-read the surviving row.
func (s *AuthServiceImpl) loadProfiles(ctx context.Context, acc *domain.Account, heal bool) (*domain.ProviderProfile, *domain.MechanicProfile, error) {
	var (
		provider *domain.ProviderProfile
		mechanic *domain.MechanicProfile
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := s.providers.FindByAccountID(gctx, acc.ID)
		if err != nil {
			if !errors.Is(err, domain.ErrProfileNotFound) {
				return err
			}
			if heal && acc.Role == domain.RoleProvider {
				p, err = s.providers.Ensure(gctx, acc.ID)
				if err != nil {
					return fmt.Errorf("failed to ensure provider profile: %w", err)
				}
				provider = p
			}
			return nil
		}
		provider = p
		return nil
	})
	g.Go(func() error {
		m, err := s.mechanics.FindByAccountID(gctx, acc.ID)
		if err != nil {
			if errors.Is(err, domain.ErrProfileNotFound) {
				return nil
			}
			return err
		}
		mechanic = m
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return provider, mechanic, nil
}
