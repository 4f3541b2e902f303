package domain

// Role is the closed set of application roles. An account's role is fixed at
// creation; mechanic and admin accounts are provisioned, never self-registered.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleProvider Role = "provider"
	RoleMechanic Role = "mechanic"
	RoleAdmin    Role = "admin"
)

// ParseRole maps a raw string onto the Role enum.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleCustomer, RoleProvider, RoleMechanic, RoleAdmin:
		return Role(s), true
	}
	return "", false
}

// SelfRegisterable reports whether accounts with this role may be created
// through the public registration endpoint.
func (r Role) SelfRegisterable() bool {
	return r == RoleCustomer || r == RoleProvider
}

// NextStep is the routing token returned to clients after every auth
// operation. The literal role values double as "land on your home screen".
type NextStep string

const (
	NextNone        NextStep = ""
	NextVerifyOtp   NextStep = "verify-otp"
	NextSetPassword NextStep = "set-password"
	NextSelectRole  NextStep = "select-role"
	NextCustomer    NextStep = NextStep(RoleCustomer)
	NextProvider    NextStep = NextStep(RoleProvider)
	NextMechanic    NextStep = NextStep(RoleMechanic)
	NextAdmin       NextStep = NextStep(RoleAdmin)
)

// KYCStatus tracks provider verification progress.
type KYCStatus string

const (
	KYCPending  KYCStatus = "pending"
	KYCVerified KYCStatus = "verified"
	KYCRejected KYCStatus = "rejected"
)
