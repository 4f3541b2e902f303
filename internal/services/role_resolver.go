package services

import (
	"time"

	"github.com/rathoremon/car-repair-sub000/domain"
)

// ResolveRoles is the role-resolution engine: a pure decision over an account
// and its already-fetched profiles. It never performs I/O; when OTP state must
// be cleared it sets ClearOtpState and leaves the write to the caller so the
// caller can persist it together with the read that triggered it.
func ResolveRoles(acc *domain.Account, provider *domain.ProviderProfile, mechanic *domain.MechanicProfile, now time.Time) (*domain.RoleResolution, error) {
	self := IsSelfMechanic(acc, provider, mechanic)

	res := &domain.RoleResolution{
		HasProviderProfile:           provider != nil,
		HasMechanicProfile:           mechanic != nil,
		OtpExpired:                   OtpExpired(acc, now),
		IsFirstUseMechanicCredential: isFirstUseMechanicCredential(acc, mechanic, self),
	}
	res.RequiresPasswordReset = res.IsFirstUseMechanicCredential && !self
	res.IsDualRole = res.HasProviderProfile && res.HasMechanicProfile && !self

	switch acc.Role {
	case domain.RoleMechanic:
		if mechanic == nil {
			return nil, domain.ErrNoMechanicProfile
		}
		switch {
		case res.OtpExpired:
			res.ClearOtpState = true
			if res.RequiresPasswordReset {
				res.Next = domain.NextSetPassword
			} else {
				res.Next = domain.NextVerifyOtp
			}
		case res.RequiresPasswordReset:
			res.Next = domain.NextSetPassword
		default:
			res.Next = domain.NextMechanic
		}
	case domain.RoleProvider:
		switch {
		case res.OtpExpired:
			res.ClearOtpState = true
			res.Next = domain.NextVerifyOtp
		case res.IsDualRole:
			res.Next = domain.NextSelectRole
		default:
			res.Next = domain.NextProvider
		}
	case domain.RoleCustomer:
		if res.IsDualRole {
			res.Next = domain.NextSelectRole
		} else {
			res.Next = domain.NextCustomer
		}
	case domain.RoleAdmin:
		if res.IsDualRole {
			res.Next = domain.NextSelectRole
		} else {
			res.Next = domain.NextAdmin
		}
	default:
		res.Next = domain.NextNone
	}

	return res, nil
}

// OtpExpired reports whether the account's phone verification has lapsed.
// Verification is trusted only through the end of the calendar day it was
// performed, in server-local time. Not a rolling 24h window: users re-verify
// once per day.
func OtpExpired(acc *domain.Account, now time.Time) bool {
	if !acc.OtpVerified || acc.OtpVerifiedAt == nil {
		return true
	}
	vy, vm, vd := acc.OtpVerifiedAt.In(now.Location()).Date()
	ny, nm, nd := now.Date()
	return vy != ny || vm != nm || vd != nd
}

// IsSelfMechanic detects a provider operating as their own mechanic under a
// single login: the mechanic profile belongs to this account and is owned by
// this account's own provider profile. Distinguished from a mechanic invited
// by a different provider.
func IsSelfMechanic(acc *domain.Account, provider *domain.ProviderProfile, mechanic *domain.MechanicProfile) bool {
	return mechanic != nil && provider != nil &&
		mechanic.AccountID == acc.ID &&
		mechanic.ProviderID == provider.ID
}

// RequiresPasswordReset reports whether the account must set a permanent
// password before using the app. Used standalone by the read-only session
// snapshot.
func RequiresPasswordReset(acc *domain.Account, provider *domain.ProviderProfile, mechanic *domain.MechanicProfile) bool {
	self := IsSelfMechanic(acc, provider, mechanic)
	return isFirstUseMechanicCredential(acc, mechanic, self) && !self
}

func isFirstUseMechanicCredential(acc *domain.Account, mechanic *domain.MechanicProfile, self bool) bool {
	return mechanic != nil && !self &&
		acc.Role == domain.RoleMechanic &&
		!mechanic.CredentialRotated
}
