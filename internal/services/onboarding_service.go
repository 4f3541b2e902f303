package services

import (
	"context"

	"github.com/rathoremon/car-repair-sub000/domain"
)

// OnboardingServiceImpl implements domain.OnboardingService. Drafts live in
// an external key-value store keyed by provider profile id; there is no
// in-process cache.
type OnboardingServiceImpl struct {
	drafts    domain.DraftStore
	providers domain.ProviderProfileRepository
}

// NewOnboardingService creates a new onboarding service
func NewOnboardingService(drafts domain.DraftStore, providers domain.ProviderProfileRepository) domain.OnboardingService {
	return &OnboardingServiceImpl{drafts: drafts, providers: providers}
}

// Draft implements domain.OnboardingService
func (s *OnboardingServiceImpl) Draft(ctx context.Context, accountID string) ([]byte, error) {
	profile, err := s.providers.FindByAccountID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return s.drafts.Get(ctx, profile.ID)
}

// SaveDraft implements domain.OnboardingService
func (s *OnboardingServiceImpl) SaveDraft(ctx context.Context, accountID string, draft []byte) error {
	profile, err := s.providers.FindByAccountID(ctx, accountID)
	if err != nil {
		return err
	}
	return s.drafts.Put(ctx, profile.ID, draft)
}
