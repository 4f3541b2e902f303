package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rathoremon/car-repair-sub000/domain"
)

// OnboardingHandlers handles provider onboarding draft requests
type OnboardingHandlers struct {
	onboardingSvc domain.OnboardingService
}

// NewOnboardingHandlers creates new onboarding handlers
func NewOnboardingHandlers(onboardingSvc domain.OnboardingService) *OnboardingHandlers {
	return &OnboardingHandlers{onboardingSvc: onboardingSvc}
}

// GetDraft returns the caller's saved onboarding draft
func (h *OnboardingHandlers) GetDraft(c *gin.Context) {
	draft, err := h.onboardingSvc.Draft(c.Request.Context(), c.GetString("account_id"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDraftNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "No draft saved"})
		case errors.Is(err, domain.ErrProfileNotFound):
			c.JSON(http.StatusForbidden, gin.H{"error": "Onboarding drafts are for providers"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load draft"})
		}
		return
	}
	c.Data(http.StatusOK, "application/json", draft)
}

// PutDraft stores the caller's onboarding draft as-is
func (h *OnboardingHandlers) PutDraft(c *gin.Context) {
	draft, err := io.ReadAll(c.Request.Body)
	if err != nil || len(draft) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Draft body is required"})
		return
	}

	if err := h.onboardingSvc.SaveDraft(c.Request.Context(), c.GetString("account_id"), draft); err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Onboarding drafts are for providers"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save draft"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Draft saved"})
}
