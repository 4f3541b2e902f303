package services

import (
	"errors"
	"testing"
	"time"

	"github.com/rathoremon/car-repair-sub000/domain"
)

func ts(t time.Time) *time.Time { return &t }

func verifiedAccount(role domain.Role, at time.Time) *domain.Account {
	return &domain.Account{
		ID:            "acc-1",
		Role:          role,
		OtpVerified:   true,
		OtpVerifiedAt: ts(at),
	}
}

func TestOtpExpired_CalendarDayBoundary(t *testing.T) {
	endOfDay := time.Date(2026, 8, 30, 23, 59, 59, 0, time.Local)
	justAfterMidnight := time.Date(2026, 8, 31, 0, 0, 1, 0, time.Local)

	acc := verifiedAccount(domain.RoleCustomer, endOfDay)

	if OtpExpired(acc, endOfDay) {
		t.Error("verification at 23:59:59 must still be fresh at 23:59:59 the same day")
	}
	if !OtpExpired(acc, justAfterMidnight) {
		t.Error("verification at 23:59:59 must be expired at 00:00:01 the next day")
	}
}

func TestOtpExpired_UnverifiedStates(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.Local)

	if !OtpExpired(&domain.Account{OtpVerified: false}, now) {
		t.Error("unverified account must be expired")
	}
	if !OtpExpired(&domain.Account{OtpVerified: true, OtpVerifiedAt: nil}, now) {
		t.Error("verified flag without timestamp must be expired")
	}
	if OtpExpired(verifiedAccount(domain.RoleCustomer, now.Add(-2*time.Hour)), now) {
		t.Error("same-day verification must be fresh")
	}
}

func TestResolveRoles(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.Local)
	fresh := now.Add(-1 * time.Hour)
	stale := now.AddDate(0, 0, -1)

	ownProvider := &domain.ProviderProfile{ID: "prov-1", AccountID: "acc-1", KYCStatus: domain.KYCPending}
	invitedMechanic := func(rotated bool) *domain.MechanicProfile {
		return &domain.MechanicProfile{ID: "mech-1", AccountID: "acc-1", ProviderID: "prov-other", CredentialRotated: rotated}
	}
	selfMechanic := &domain.MechanicProfile{ID: "mech-1", AccountID: "acc-1", ProviderID: "prov-1"}

	tests := []struct {
		name      string
		account   *domain.Account
		provider  *domain.ProviderProfile
		mechanic  *domain.MechanicProfile
		wantErr   error
		wantNext  domain.NextStep
		wantClear bool
		wantReset bool
		wantDual  bool
	}{
		{
			name:     "mechanic without profile fails",
			account:  verifiedAccount(domain.RoleMechanic, fresh),
			wantErr:  domain.ErrNoMechanicProfile,
			wantNext: domain.NextNone,
		},
		{
			name:      "mechanic stale otp first use goes straight to set-password",
			account:   verifiedAccount(domain.RoleMechanic, stale),
			mechanic:  invitedMechanic(false),
			wantNext:  domain.NextSetPassword,
			wantClear: true,
			wantReset: true,
		},
		{
			name:      "mechanic stale otp rotated credential re-verifies",
			account:   verifiedAccount(domain.RoleMechanic, stale),
			mechanic:  invitedMechanic(true),
			wantNext:  domain.NextVerifyOtp,
			wantClear: true,
		},
		{
			name:      "mechanic fresh otp first use sets password",
			account:   verifiedAccount(domain.RoleMechanic, fresh),
			mechanic:  invitedMechanic(false),
			wantNext:  domain.NextSetPassword,
			wantReset: true,
		},
		{
			name:     "mechanic fresh otp rotated credential lands home",
			account:  verifiedAccount(domain.RoleMechanic, fresh),
			mechanic: invitedMechanic(true),
			wantNext: domain.NextMechanic,
		},
		{
			name:      "provider stale otp re-verifies",
			account:   verifiedAccount(domain.RoleProvider, stale),
			provider:  ownProvider,
			wantNext:  domain.NextVerifyOtp,
			wantClear: true,
		},
		{
			name:     "provider fresh otp with invited mechanic selects role",
			account:  verifiedAccount(domain.RoleProvider, fresh),
			provider: ownProvider,
			mechanic: invitedMechanic(true),
			wantNext: domain.NextSelectRole,
			wantDual: true,
		},
		{
			name:     "self-mechanic never selects role nor resets password",
			account:  verifiedAccount(domain.RoleProvider, fresh),
			provider: ownProvider,
			mechanic: selfMechanic,
			wantNext: domain.NextProvider,
		},
		{
			name:     "provider fresh otp alone lands home",
			account:  verifiedAccount(domain.RoleProvider, fresh),
			provider: ownProvider,
			wantNext: domain.NextProvider,
		},
		{
			name:     "customer lands home even with stale otp",
			account:  verifiedAccount(domain.RoleCustomer, stale),
			wantNext: domain.NextCustomer,
		},
		{
			name:     "admin lands home",
			account:  verifiedAccount(domain.RoleAdmin, fresh),
			wantNext: domain.NextAdmin,
		},
		{
			name:     "unrecognized role yields no next step",
			account:  &domain.Account{ID: "acc-1", Role: domain.Role("ghost")},
			wantNext: domain.NextNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := ResolveRoles(tt.account, tt.provider, tt.mechanic, now)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Next != tt.wantNext {
				t.Errorf("next: got %q, want %q", res.Next, tt.wantNext)
			}
			if res.ClearOtpState != tt.wantClear {
				t.Errorf("clearOtpState: got %v, want %v", res.ClearOtpState, tt.wantClear)
			}
			if res.RequiresPasswordReset != tt.wantReset {
				t.Errorf("requiresPasswordReset: got %v, want %v", res.RequiresPasswordReset, tt.wantReset)
			}
			if res.IsDualRole != tt.wantDual {
				t.Errorf("isDualRole: got %v, want %v", res.IsDualRole, tt.wantDual)
			}
		})
	}
}

func TestResolveRoles_Deterministic(t *testing.T) {
	// Two concurrent logins observing the same stale state must produce the
	// same instruction; the resulting clear writes are idempotent.
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.Local)
	acc := verifiedAccount(domain.RoleProvider, now.AddDate(0, 0, -3))
	provider := &domain.ProviderProfile{ID: "prov-1", AccountID: acc.ID}

	first, err := ResolveRoles(acc, provider, nil, now)
	if err != nil {
		t.Fatal(err)
	}
	second, err := ResolveRoles(acc, provider, nil, now)
	if err != nil {
		t.Fatal(err)
	}
	if *first != *second {
		t.Errorf("resolutions differ: %+v vs %+v", first, second)
	}
	if !first.ClearOtpState || first.Next != domain.NextVerifyOtp {
		t.Errorf("stale provider must clear otp and re-verify, got %+v", first)
	}
}

func TestRequiresPasswordReset_RetiredAfterRotation(t *testing.T) {
	acc := &domain.Account{ID: "acc-1", Role: domain.RoleMechanic}
	mech := &domain.MechanicProfile{ID: "mech-1", AccountID: "acc-1", ProviderID: "prov-other"}

	if !RequiresPasswordReset(acc, nil, mech) {
		t.Fatal("unrotated invited mechanic must require a password reset")
	}
	mech.CredentialRotated = true
	if RequiresPasswordReset(acc, nil, mech) {
		t.Error("rotated credential must not require a password reset again")
	}
}
