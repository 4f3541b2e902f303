package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rathoremon/car-repair-sub000/domain"
)

// AuthHandlers handles authentication HTTP requests
type AuthHandlers struct {
	authSvc domain.AuthService
}

// NewAuthHandlers creates new auth handlers
func NewAuthHandlers(authSvc domain.AuthService) *AuthHandlers {
	return &AuthHandlers{authSvc: authSvc}
}

// RegisterRequest represents registration request
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"required"`
	Email    string `json:"email" binding:"omitempty,email"`
}

// LoginRequest represents login request; phone or email identifies the account
type LoginRequest struct {
	Phone    string `json:"phone"`
	Email    string `json:"email" binding:"omitempty,email"`
	Password string `json:"password" binding:"required"`
}

// VerifyOtpRequest represents OTP verification request
type VerifyOtpRequest struct {
	IdentityAssertion string `json:"identityAssertion" binding:"required"`
}

// SetPasswordRequest represents password change request
type SetPasswordRequest struct {
	Password string `json:"password" binding:"required,min=6"`
}

// accountView is the client-facing account shape: never the hash, always the
// derived profile flags.
func accountView(acc *domain.Account, provider *domain.ProviderProfile, mechanic *domain.MechanicProfile, requiresReset bool) gin.H {
	view := gin.H{
		"id":                    acc.ID,
		"name":                  acc.Name,
		"email":                 acc.Email,
		"phone":                 acc.Phone,
		"role":                  acc.Role,
		"otpVerified":           acc.OtpVerified,
		"onboardingComplete":    acc.OnboardingComplete,
		"hasProviderProfile":    provider != nil,
		"hasMechanicProfile":    mechanic != nil,
		"requiresPasswordReset": requiresReset,
		"createdAt":             acc.CreatedAt,
		"updatedAt":             acc.UpdatedAt,
	}
	if provider != nil {
		view["provider"] = gin.H{
			"id":        provider.ID,
			"kycStatus": provider.KYCStatus,
		}
	}
	return view
}

// nextValue maps the empty next step to an explicit JSON null.
func nextValue(next domain.NextStep) interface{} {
	if next == domain.NextNone {
		return nil
	}
	return next
}

// Register handles account registration. No token is issued here; the client
// must verify the phone first.
func (h *AuthHandlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	acc, next, err := h.authSvc.Register(c.Request.Context(), domain.RegisterInput{
		Name:     req.Name,
		Phone:    req.Phone,
		Password: req.Password,
		Role:     req.Role,
		Email:    req.Email,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRoleNotAllowed):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Role must be customer or provider"})
		case errors.Is(err, domain.ErrInvalidPhone):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid phone number"})
		case errors.Is(err, domain.ErrAccountExists):
			c.JSON(http.StatusConflict, gin.H{"error": "An account with this phone already exists"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    accountView(acc, nil, nil, false),
		"next":    nextValue(next),
	})
}

// Login handles credential login
func (h *AuthHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Phone == "" && req.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Phone or email is required"})
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), req.Phone, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidPhone):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid phone number"})
		case errors.Is(err, domain.ErrAccountNotFound):
			// Known enumeration trade-off: unknown identifiers 404 rather
			// than folding into the generic 401.
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		case errors.Is(err, domain.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		case errors.Is(err, domain.ErrNoMechanicProfile):
			c.JSON(http.StatusBadRequest, gin.H{"error": "No mechanic profile for this account"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   result.Token,
		"user":    accountView(result.Account, result.Provider, result.Mechanic, result.Resolution.RequiresPasswordReset),
		"next":    nextValue(result.Resolution.Next),
	})
}

// VerifyOtp handles phone verification via an external identity assertion
func (h *AuthHandlers) VerifyOtp(c *gin.Context) {
	var req VerifyOtpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.authSvc.VerifyOtp(c.Request.Context(), req.IdentityAssertion)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidAssertion):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid identity assertion"})
		case errors.Is(err, domain.ErrAssertionNoPhone):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Identity assertion carries no phone number"})
		case errors.Is(err, domain.ErrAccountNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Verification failed"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   result.Token,
		"user":    accountView(result.Account, result.Provider, result.Mechanic, result.Resolution.RequiresPasswordReset),
		"next":    nextValue(result.Resolution.Next),
	})
}

// Me handles the authenticated session snapshot
func (h *AuthHandlers) Me(c *gin.Context) {
	accountID := c.GetString("account_id")
	if accountID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	snap, err := h.authSvc.CurrentSession(c.Request.Context(), accountID)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    accountView(snap.Account, snap.Provider, snap.Mechanic, snap.RequiresPasswordReset),
	})
}

// SetPassword handles authenticated password changes. ?target=mechanic
// restricts the change to mechanic accounts.
func (h *AuthHandlers) SetPassword(c *gin.Context) {
	accountID := c.GetString("account_id")
	if accountID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req SetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.authSvc.SetNewPassword(c.Request.Context(), accountID, req.Password, c.Query("target"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPasswordRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Password is required"})
		case errors.Is(err, domain.ErrNotMechanic):
			c.JSON(http.StatusForbidden, gin.H{"error": "Only mechanics can set a mechanic password"})
		case errors.Is(err, domain.ErrAccountNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update password"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Password updated successfully",
	})
}
